// Package keyboard provides the registry behind WhenInFocusedWindow key
// bindings.
//
// A Manager maps each stroke to the components whose window-scope input map
// binds it. It is owned by one application and handed to the component tree
// as its Registrar; there is no package-level instance.
package keyboard

import (
	"sort"

	"github.com/dshills/termkit/internal/component"
	"github.com/dshills/termkit/internal/core"
	"github.com/dshills/termkit/internal/input/key"
)

// Manager tracks window-scope stroke registrations.
// It is not safe for concurrent use.
type Manager struct {
	registry map[key.Stroke][]core.Handle
}

// NewManager creates an empty registry.
func NewManager() *Manager {
	return &Manager{
		registry: make(map[key.Stroke][]core.Handle),
	}
}

// RegisterKeyStroke records that h binds s at window scope.
// Registering the same pair twice has no further effect.
func (m *Manager) RegisterKeyStroke(s key.Stroke, h core.Handle) {
	for _, existing := range m.registry[s] {
		if existing == h {
			return
		}
	}
	m.registry[s] = append(m.registry[s], h)
}

// UnregisterKeyStroke removes the registration of h for s.
func (m *Manager) UnregisterKeyStroke(s key.Stroke, h core.Handle) {
	list := m.registry[s]
	for i, existing := range list {
		if existing == h {
			list = append(list[:i:i], list[i+1:]...)
			break
		}
	}
	if len(list) == 0 {
		delete(m.registry, s)
		return
	}
	m.registry[s] = list
}

// Registered returns the components registered for s in registration order.
func (m *Manager) Registered(s key.Stroke) []core.Handle {
	return append([]core.Handle(nil), m.registry[s]...)
}

// Len returns the number of distinct registered strokes.
func (m *Manager) Len() int {
	return len(m.registry)
}

// FireKeyboardAction offers ev to the window-scope bindings of the
// components registered for its stroke that live in window top. The
// deepest component is tried first; at equal depth the most recently
// registered wins. Components that are not showing or are disabled are
// skipped. Returns whether a binding consumed the event.
func (m *Manager) FireKeyboardAction(t *component.Tree, ev *core.KeyEvent, top core.Handle) bool {
	s := ev.Stroke()
	list := m.registry[s]
	if len(list) == 0 {
		return false
	}

	candidates := make([]core.Handle, 0, len(list))
	for i := len(list) - 1; i >= 0; i-- {
		h := list[i]
		if t.IsSameOrAncestor(top, h) && t.IsShowing(h) && t.Enabled(h) {
			candidates = append(candidates, h)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return t.Depth(candidates[i]) > t.Depth(candidates[j])
	})

	for _, h := range candidates {
		if t.ProcessKeyBinding(h, s, ev, core.WhenInFocusedWindow) {
			return true
		}
	}
	return false
}
