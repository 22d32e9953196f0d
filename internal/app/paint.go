package app

import (
	"slices"

	"github.com/dshills/termkit/internal/core"
	"github.com/dshills/termkit/internal/layout"
)

// paint redraws the base window and the open popups, places the cursor
// and flushes the terminal. It runs after every loop batch.
func (a *Application) paint() {
	p := a.currentPainter()
	if p == nil || a.root == nil {
		return
	}
	windows := a.popups.Windows()
	slices.Reverse(windows)
	p.Paint(a.tree, windows)
	if c := a.fm.ActiveController(); c != nil {
		c.PlaceCursor()
	} else {
		p.SetCursor(core.Point{}, false)
	}
	p.Show()
}

// SetCursor implements focus.CursorSink.
func (a *Application) SetCursor(pos core.Point, visible bool) {
	if p := a.currentPainter(); p != nil {
		p.SetCursor(pos, visible)
	}
}

// resize fits the root window to a width x height terminal.
func (a *Application) resize(width, height int) {
	if a.root == nil {
		return
	}
	a.root.SetBounds(core.NewRect(0, 0, width, height))
	layout.Apply(a.tree, a.root.Handle())
	a.log.Debug("resized", "width", width, "height", height)
}
