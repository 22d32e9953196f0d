// Package layout positions children inside containers.
package layout

import (
	"github.com/dshills/termkit/internal/component"
	"github.com/dshills/termkit/internal/core"
)

// Manager lays out the children of a container.
type Manager interface {
	// MinimumSize returns the smallest size that fits h's children.
	MinimumSize(tree *component.Tree, h core.Handle) core.Size

	// Layout sets the bounds of h's children inside h's bounds.
	Layout(tree *component.Tree, h core.Handle)
}

// Sizer widgets report the size they would like.
type Sizer interface {
	PreferredSize() core.Size
}

// PreferredSize returns the preferred size of h's widget, or zero.
func PreferredSize(tree *component.Tree, h core.Handle) core.Size {
	if s, ok := tree.Widget(h).(Sizer); ok {
		return s.PreferredSize()
	}
	return core.Size{}
}

// Apply lays out root's subtree: every Container widget in it, top down,
// positions its children.
func Apply(tree *component.Tree, root core.Handle) {
	tree.Walk(root, func(h core.Handle) bool {
		if !tree.Visible(h) {
			return false
		}
		if c, ok := tree.Widget(h).(component.Container); ok {
			c.LayoutChildren()
		}
		return true
	})
}
