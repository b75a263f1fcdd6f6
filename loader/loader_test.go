package loader_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/supernode/builder"
	"github.com/katalvlaran/supernode/core"
	"github.com/katalvlaran/supernode/loader"
)

func TestRead_Deduplicates(t *testing.T) {
	g, err := loader.Read(strings.NewReader("4\n0 1\n1 0\n0 1 2 3\n\n1 2"))
	require.NoError(t, err)
	assert.Equal(t, 4, g.Size())
	assert.Equal(t, 3, g.OriginalEdgeCount())
	assert.Equal(t, []core.Edge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 3}}, g.OriginalEdges())
}

func TestRead_SkipsSelfLoops(t *testing.T) {
	g, err := loader.Read(strings.NewReader("3 0 0 1 2"))
	require.NoError(t, err)
	assert.Equal(t, 1, g.OriginalEdgeCount())
}

func TestRead_SkippedInputLogsAtDebug(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	g, err := loader.Read(strings.NewReader("3 0 0 1 2 2 1"), loader.WithLogger(logger))
	require.NoError(t, err)
	assert.Equal(t, 1, g.OriginalEdgeCount())

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.Equal(t, logrus.DebugLevel, e.Level, e.Message)
	}
	assert.Equal(t, "skipping self-loop on 0", entries[0].Message)
	assert.Equal(t, 1, entries[1].Data["duplicates"])
}

func TestRead_Errors(t *testing.T) {
	tests := []struct {
		name, in string
		want     error
	}{
		{"empty", "", loader.ErrBadHeader},
		{"word header", "four 0 1", loader.ErrBadHeader},
		{"negative header", "-2", loader.ErrBadHeader},
		{"dangling", "3 0 1 2", loader.ErrBadEdge},
		{"word edge", "3 0 x", loader.ErrBadEdge},
		{"out of range", "3 0 3", loader.ErrBadEdge},
	}
	for _, tc := range tests {
		_, err := loader.Read(strings.NewReader(tc.in))
		assert.ErrorIs(t, err, tc.want, tc.name)
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	src, err := builder.BuildGraph(builder.Grid(3, 3))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, loader.Write(&buf, src))
	assert.True(t, strings.HasPrefix(buf.String(), "9\n0 1\n0 3\n"))

	back, err := loader.Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, src.String(), back.String())
}

func TestFile_RoundTrip(t *testing.T) {
	src, err := builder.BuildGraph(builder.Wheel(7))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "wheel.dat")
	require.NoError(t, loader.WriteFile(path, src))
	back, err := loader.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, src.OriginalEdges(), back.OriginalEdges())

	_, err = loader.ReadFile(filepath.Join(t.TempDir(), "missing.dat"))
	assert.Error(t, err)
}
