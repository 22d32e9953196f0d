package component

import (
	"github.com/dshills/termkit/internal/core"
	"github.com/dshills/termkit/internal/input/key"
)

// Enabled reports the enabled flag of h.
func (t *Tree) Enabled(h core.Handle) bool {
	n := t.get(h)
	return n != nil && n.enabled
}

// SetEnabled changes the enabled flag of h.
func (t *Tree) SetEnabled(h core.Handle, enabled bool) {
	if n := t.get(h); n != nil {
		n.enabled = enabled
	}
}

// FocusTraversable reports whether h takes part in focus traversal.
func (t *Tree) FocusTraversable(h core.Handle) bool {
	n := t.get(h)
	return n != nil && n.traversable
}

// SetFocusTraversable changes whether h takes part in focus traversal.
func (t *Tree) SetFocusTraversable(h core.Handle, traversable bool) {
	if n := t.get(h); n != nil {
		n.traversable = traversable
	}
}

// Visible reports the visible flag of h.
func (t *Tree) Visible(h core.Handle) bool {
	n := t.get(h)
	return n != nil && n.visible
}

// SetVisible changes the visible flag of h.
func (t *Tree) SetVisible(h core.Handle, visible bool) {
	if n := t.get(h); n != nil {
		n.visible = visible
	}
}

// IsShowing reports whether h and all its ancestors are visible and h is
// in a displayable window.
func (t *Tree) IsShowing(h core.Handle) bool {
	n := t.get(h)
	if n == nil || !n.attached {
		return false
	}
	for cur := h; cur != core.NoHandle; cur = t.Parent(cur) {
		if !t.Visible(cur) {
			return false
		}
	}
	return true
}

// CanFocus reports whether h may hold focus: showing, enabled along its
// ancestor chain, and focus traversable.
func (t *Tree) CanFocus(h core.Handle) bool {
	if !t.FocusTraversable(h) || !t.IsShowing(h) {
		return false
	}
	for cur := h; cur != core.NoHandle; cur = t.Parent(cur) {
		if !t.Enabled(cur) {
			return false
		}
	}
	return true
}

// Mnemonic returns the mnemonic key code of h, or CodeNone.
func (t *Tree) Mnemonic(h core.Handle) key.Code {
	if n := t.get(h); n != nil {
		return n.mnemonic
	}
	return key.CodeNone
}

// SetMnemonic sets the mnemonic key code of h.
func (t *Tree) SetMnemonic(h core.Handle, code key.Code) {
	if n := t.get(h); n != nil {
		n.mnemonic = code
	}
}

// Bounds returns the screen rectangle of h. Bounds are owned by layout.
func (t *Tree) Bounds(h core.Handle) core.Rect {
	if n := t.get(h); n != nil {
		return n.bounds
	}
	return core.Rect{}
}

// SetBounds sets the screen rectangle of h.
func (t *Tree) SetBounds(h core.Handle, r core.Rect) {
	if n := t.get(h); n != nil {
		n.bounds = r
	}
}

// ComponentAt returns the deepest visible component under root whose
// bounds contain p, or NoHandle. Later children are on top.
func (t *Tree) ComponentAt(root core.Handle, p core.Point) core.Handle {
	n := t.get(root)
	if n == nil || !n.visible || !n.bounds.Contains(p) {
		return core.NoHandle
	}
	for i := len(n.children) - 1; i >= 0; i-- {
		if hit := t.ComponentAt(n.children[i], p); hit != core.NoHandle {
			return hit
		}
	}
	return root
}
