package focus

import (
	"github.com/dshills/termkit/internal/component"
	"github.com/dshills/termkit/internal/core"
)

// Policy computes the traversal order of a window.
type Policy interface {
	// Order returns the components under root that may take focus, in
	// traversal order.
	Order(t *component.Tree, root core.Handle) []core.Handle
}

// PreOrder traverses focusable components in tree pre-order. Hidden
// subtrees are skipped.
type PreOrder struct{}

// Order implements Policy.
func (PreOrder) Order(t *component.Tree, root core.Handle) []core.Handle {
	var out []core.Handle
	t.Walk(root, func(h core.Handle) bool {
		if !t.Visible(h) {
			return false
		}
		if t.CanFocus(h) {
			out = append(out, h)
		}
		return true
	})
	return out
}
