// Package binding implements key-binding resolution for the focused
// component.
//
// Resolution tries the three binding scopes in a fixed order and stops at
// the first binding that resolves to an enabled action:
//
//  1. the focused component's WhenFocused map
//  2. each ancestor's WhenAncestorOfFocusedComponent map, nearest first,
//     stopping below the top-level window
//  3. the WhenInFocusedWindow registrations of the window, through the
//     keyboard.Manager
//
// A binding whose action is missing or disabled does not stop resolution.
// Unconsumed events go on to widget key handlers, the popup stack and focus
// traversal.
package binding

import (
	"fmt"

	"github.com/dshills/termkit/internal/component"
	"github.com/dshills/termkit/internal/core"
	"github.com/dshills/termkit/internal/keyboard"
)

// Outcome reports which scope consumed an event.
type Outcome int

const (
	Unconsumed Outcome = iota
	ConsumedFocused
	ConsumedAncestor
	ConsumedWindow
)

func (o Outcome) String() string {
	switch o {
	case Unconsumed:
		return "unconsumed"
	case ConsumedFocused:
		return "focused"
	case ConsumedAncestor:
		return "ancestor"
	case ConsumedWindow:
		return "window"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Consumed reports whether a binding fired.
func (o Outcome) Consumed() bool {
	return o != Unconsumed
}

// Resolver resolves key events against a tree's input maps.
type Resolver struct {
	tree     *component.Tree
	keyboard *keyboard.Manager
}

// NewResolver creates a resolver over tree and its keyboard registry.
func NewResolver(tree *component.Tree, km *keyboard.Manager) *Resolver {
	return &Resolver{tree: tree, keyboard: km}
}

// Resolve runs the scope chain for ev received by focused. An event that
// is already consumed is left alone.
func (r *Resolver) Resolve(focused core.Handle, ev *core.KeyEvent) Outcome {
	if ev.IsConsumed() || !r.tree.Contains(focused) {
		return Unconsumed
	}
	s := ev.Stroke()

	if r.tree.ProcessKeyBinding(focused, s, ev, core.WhenFocused) {
		return ConsumedFocused
	}

	top := r.tree.Window(focused)
	for a := r.tree.Parent(focused); a != core.NoHandle && a != top; a = r.tree.Parent(a) {
		if r.tree.ProcessKeyBinding(a, s, ev, core.WhenAncestorOfFocusedComponent) {
			return ConsumedAncestor
		}
	}

	if top != core.NoHandle && r.keyboard != nil && r.keyboard.FireKeyboardAction(r.tree, ev, top) {
		return ConsumedWindow
	}
	return Unconsumed
}
