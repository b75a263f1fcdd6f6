// Package view draws a placed contracted graph in the terminal.
package view

import (
	"context"
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/katalvlaran/supernode/layout"
)

// Screen is the part of tcell.Screen that Render draws on.
type Screen interface {
	Size() (width, height int)
	Clear()
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Show()
}

var (
	titleStyle  = tcell.StyleDefault.Bold(true)
	edgeStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	fakeStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	nodeStyle   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	mergedStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
)

const margin = 2

// Render draws l with title on the first row. Real edges are dotted, fake
// links are red, and supernodes holding more than one member are green.
func Render(s Screen, l *layout.Layout, title string) {
	s.Clear()
	w, h := s.Size()
	drawText(s, 0, 0, title, titleStyle)
	if l == nil || w <= 2*margin || h <= 3 {
		s.Show()
		return
	}

	cell := func(p layout.Point) (int, int) {
		x := margin + int(math.Round(p.X*float64(w-1-2*margin)))
		y := 2 + int(math.Round(p.Y*float64(h-3)))
		return x, y
	}
	line := func(a, b int, r rune, style tcell.Style) {
		pa, okA := l.Position(a)
		pb, okB := l.Position(b)
		if !okA || !okB {
			return
		}
		x0, y0 := cell(pa)
		x1, y1 := cell(pb)
		drawLine(s, x0, y0, x1, y1, r, style)
	}

	for _, e := range l.Edges {
		line(e.From, e.To, '·', edgeStyle)
	}
	for _, e := range l.Fake {
		line(e.From, e.To, ':', fakeStyle)
	}
	for _, n := range l.Nodes {
		x, y := cell(n.Pos)
		label, style := fmt.Sprint(n.ID), nodeStyle
		if len(n.Members) > 1 {
			label, style = fmt.Sprintf("%d(%d)", n.ID, len(n.Members)), mergedStyle
		}
		if x+len(label) > w {
			x = w - len(label)
		}
		drawText(s, x, y, label, style)
	}
	s.Show()
}

func drawText(s Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

// drawLine is Bresenham between two cells, endpoints excluded.
func drawLine(s Screen, x0, y0, x1, y1 int, r rune, style tcell.Style) {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := sign(x1-x0), sign(y1-y0)
	e := dx + dy
	x, y := x0, y0
	for !(x == x1 && y == y1) {
		if !(x == x0 && y == y0) {
			s.SetContent(x, y, r, nil, style)
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x += sx
		}
		if e2 <= dx {
			e += dx
			y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

// Run renders l on an initialised screen and redraws on resize until Esc,
// q, Ctrl-C or ctx is done. It does not finalise the screen.
func Run(ctx context.Context, screen tcell.Screen, l *layout.Layout, title string) error {
	Render(screen, l, title)

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if quits(ev) {
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
				Render(screen, l, title)
			}
		}
	}
}

func quits(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

// Show opens the terminal, runs the viewer and restores the terminal.
func Show(ctx context.Context, l *layout.Layout, title string) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "failed to open terminal")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "failed to initialise terminal")
	}
	defer screen.Fini()

	return Run(ctx, screen, l, title)
}
