package view_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/supernode/builder"
	"github.com/katalvlaran/supernode/layout"
	"github.com/katalvlaran/supernode/view"
)

func simScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	require.NoError(t, s.Init())
	s.SetSize(40, 12)
	t.Cleanup(s.Fini)
	return s
}

func placed(t *testing.T) *layout.Layout {
	t.Helper()
	g, err := builder.BuildGraph(builder.Star(5))
	require.NoError(t, err)
	_, err = g.Merge(1, 2)
	require.NoError(t, err)
	l, err := layout.Compute(g)
	require.NoError(t, err)
	return l
}

func screenText(s tcell.SimulationScreen) []string {
	cells, w, h := s.GetContents()
	rows := make([]string, h)
	for y := 0; y < h; y++ {
		var b strings.Builder
		for x := 0; x < w; x++ {
			runes := cells[y*w+x].Runes
			if len(runes) == 0 {
				b.WriteRune(' ')
				continue
			}
			b.WriteRune(runes[0])
		}
		rows[y] = b.String()
	}
	return rows
}

func TestRender(t *testing.T) {
	s := simScreen(t)
	view.Render(s, placed(t), "star5 fake=1")

	rows := screenText(s)
	assert.True(t, strings.HasPrefix(rows[0], "star5 fake=1"))
	body := strings.Join(rows[1:], "\n")
	assert.Contains(t, body, "2(2)", "merged supernode shows its member count")
	for _, label := range []string{"0", "3", "4"} {
		assert.Contains(t, body, label)
	}
}

func TestRender_NilLayout(t *testing.T) {
	s := simScreen(t)
	view.Render(s, nil, "empty")
	assert.True(t, strings.HasPrefix(screenText(s)[0], "empty"))
}

func TestRun_QuitKeys(t *testing.T) {
	for _, key := range []struct {
		name string
		k    tcell.Key
		r    rune
	}{
		{"q", tcell.KeyRune, 'q'},
		{"esc", tcell.KeyEscape, 0},
	} {
		t.Run(key.name, func(t *testing.T) {
			s := simScreen(t)
			l := placed(t)
			s.InjectKey(key.k, key.r, tcell.ModNone)

			done := make(chan error, 1)
			go func() { done <- view.Run(context.Background(), s, l, "t") }()
			select {
			case err := <-done:
				assert.NoError(t, err)
			case <-time.After(5 * time.Second):
				t.Fatal("viewer did not quit")
			}
		})
	}
}

func TestRun_ContextCancel(t *testing.T) {
	s := simScreen(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, view.Run(ctx, s, placed(t), "t"))
}
