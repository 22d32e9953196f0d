package renderer

import (
	"github.com/dshills/termkit/internal/component"
	"github.com/dshills/termkit/internal/core"
	"github.com/dshills/termkit/internal/renderer/backend"
	rcore "github.com/dshills/termkit/internal/renderer/core"
)

// Painter draws a component tree onto a backend.
type Painter struct {
	out backend.Backend
}

// NewPainter creates a painter for out.
func NewPainter(out backend.Backend) *Painter {
	return &Painter{out: out}
}

// Paint clears the screen and paints windows in order, bottom first.
// Hidden or detached windows are skipped. Show is left to the caller so
// the cursor can be placed first.
func (p *Painter) Paint(tree *component.Tree, windows []core.Handle) {
	p.out.Clear()
	w, h := p.out.Size()
	screen := NewSurface(p.out, core.NewRect(0, 0, w, h))
	for _, win := range windows {
		if !tree.IsShowing(win) {
			continue
		}
		paintTree(tree, win, screen)
	}
}

// paintTree paints h and its visible descendants clipped to s.
func paintTree(tree *component.Tree, h core.Handle, s *Surface) {
	if !tree.Visible(h) {
		return
	}
	sub := s.Sub(tree.Bounds(h))
	if sub.Clip().IsEmpty() {
		return
	}
	if tree.IsWindow(h) {
		sub.Fill(sub.Clip(), ' ', rcore.DefaultStyle())
	}
	if pw, ok := tree.Widget(h).(component.Paintable); ok {
		pw.Paint(sub, sub.Clip())
	}
	for _, c := range tree.Children(h) {
		paintTree(tree, c, sub)
	}
}

// SetCursor shows the cursor at pos or hides it. It implements
// focus.CursorSink.
func (p *Painter) SetCursor(pos core.Point, visible bool) {
	if visible {
		p.out.ShowCursor(pos.X, pos.Y)
		return
	}
	p.out.HideCursor()
}

// Show flushes the backend.
func (p *Painter) Show() {
	p.out.Show()
}
