package widget

import (
	"github.com/dshills/termkit/internal/component"
	"github.com/dshills/termkit/internal/core"
	"github.com/dshills/termkit/internal/input/keymap"
	"github.com/dshills/termkit/internal/layout"
)

// frame is the container plumbing shared by windows and panels.
type frame struct {
	Base
	title  string
	border bool
	layout layout.Manager
}

// Add appends children in order.
func (f *frame) Add(children ...Widget) error {
	return add(f.tree(), f.h, children)
}

// Remove detaches child.
func (f *frame) Remove(child Widget) {
	f.tree().Remove(child.Handle())
	f.host.Focus().Revalidate()
}

// Title returns the title drawn in the border.
func (f *frame) Title() string { return f.title }

// SetTitle sets the title drawn in the border.
func (f *frame) SetTitle(title string) { f.title = title }

// SetBorder turns the border on or off. A box layout's insets follow it.
func (f *frame) SetBorder(border bool) {
	f.border = border
	if box, ok := f.layout.(*layout.Box); ok {
		box.Insets = borderInsets(border)
	}
}

// SetLayout replaces the layout manager.
func (f *frame) SetLayout(m layout.Manager) { f.layout = m }

// LayoutChildren implements component.Container.
func (f *frame) LayoutChildren() {
	if f.layout != nil {
		f.layout.Layout(f.tree(), f.h)
	}
}

// PreferredSize implements component.Container.
func (f *frame) PreferredSize() core.Size {
	if f.layout == nil {
		return f.Bounds().Size()
	}
	return f.layout.MinimumSize(f.tree(), f.h)
}

func borderInsets(border bool) layout.Insets {
	if border {
		return layout.Insets{Top: 1, Left: 1, Bottom: 1, Right: 1}
	}
	return layout.Insets{}
}

func newVerticalBox(border bool) *layout.Box {
	box := layout.NewBox(core.Vertical)
	box.Insets = borderInsets(border)
	return box
}

// Window is a top-level window. The application's root window and
// dialogs are windows.
type Window struct {
	frame
}

// NewWindow creates a detached, borderless window with a vertical box
// layout.
func NewWindow(host Host, title string) *Window {
	w := &Window{}
	w.initWindow(host, w)
	w.title = title
	w.layout = newVerticalBox(false)
	w.InstallUI()
	return w
}

// Class implements component.Classed.
func (w *Window) Class() string { return keymap.ClassWindow }

// Paint implements component.Paintable.
func (w *Window) Paint(s component.Surface, clip core.Rect) {
	if w.border {
		drawBox(s, w.Bounds(), w.title, styleNormal)
	}
}

// Panel groups children under a layout manager.
type Panel struct {
	frame
}

// NewPanel creates a panel. A nil manager selects a vertical box.
func NewPanel(host Host, m layout.Manager) *Panel {
	p := &Panel{}
	p.init(host, p)
	if m == nil {
		m = newVerticalBox(false)
	}
	p.layout = m
	return p
}

// Paint implements component.Paintable.
func (p *Panel) Paint(s component.Surface, clip core.Rect) {
	if p.border {
		drawBox(s, p.Bounds(), p.title, styleNormal)
	}
}

// popupWindow is the bordered window behind drop-down lists.
type popupWindow struct {
	frame
}

func newPopupWindow(host Host) *popupWindow {
	w := &popupWindow{}
	w.initWindow(host, w)
	w.border = true
	w.layout = newVerticalBox(true)
	w.tree().SetVisible(w.h, false)
	return w
}

// Paint implements component.Paintable.
func (w *popupWindow) Paint(s component.Surface, clip core.Rect) {
	drawBox(s, w.Bounds(), w.title, styleNormal)
}
