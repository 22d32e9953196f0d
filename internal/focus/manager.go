package focus

import (
	"github.com/dshills/termkit/internal/component"
	"github.com/dshills/termkit/internal/core"
)

// Manager holds one Controller per window and tracks the active window,
// the one receiving keyboard input.
type Manager struct {
	tree        *component.Tree
	opts        []Option
	controllers map[core.Handle]*Controller
	active      core.Handle
}

// NewManager creates a manager. opts apply to every controller it creates.
func NewManager(tree *component.Tree, opts ...Option) *Manager {
	return &Manager{
		tree:        tree,
		opts:        opts,
		controllers: make(map[core.Handle]*Controller),
	}
}

// Controller returns the controller of window, creating it on first use.
// Returns nil if window is not a top-level window.
func (m *Manager) Controller(window core.Handle) *Controller {
	if c, ok := m.controllers[window]; ok {
		return c
	}
	if !m.tree.IsWindow(window) {
		return nil
	}
	c := NewController(m.tree, window, m.opts...)
	c.active = func() bool { return m.active == window }
	m.controllers[window] = c
	return c
}

// Active returns the active window.
func (m *Manager) Active() core.Handle {
	return m.active
}

// ActiveController returns the controller of the active window, or nil.
func (m *Manager) ActiveController() *Controller {
	if m.active == core.NoHandle {
		return nil
	}
	return m.Controller(m.active)
}

// SetActive makes window the active window, delivering WINDOW_DEACTIVATED
// and WINDOW_ACTIVATED and restoring the window's cursor.
func (m *Manager) SetActive(window core.Handle) {
	if window == m.active {
		return
	}
	prev := m.active
	m.active = window
	if prev != core.NoHandle && m.tree.Contains(prev) {
		m.tree.FireWindow(prev, core.WindowEvent{ID: core.WindowDeactivated, Source: prev})
	}
	if window != core.NoHandle {
		m.tree.FireWindow(window, core.WindowEvent{ID: core.WindowActivated, Source: window})
		if c := m.Controller(window); c != nil {
			c.PlaceCursor()
		}
	}
}

// FocusOwner returns the focused component of the active window.
func (m *Manager) FocusOwner() core.Handle {
	if c := m.ActiveController(); c != nil {
		return c.Focused()
	}
	return core.NoHandle
}

// RequestFocus routes a focus request to the controller of h's window.
func (m *Manager) RequestFocus(h core.Handle) bool {
	c := m.Controller(m.tree.Window(h))
	if c == nil {
		return false
	}
	return c.RequestFocus(h)
}

// Forget drops the controller of a closed window.
func (m *Manager) Forget(window core.Handle) {
	delete(m.controllers, window)
	if m.active == window {
		m.active = core.NoHandle
	}
}

// Revalidate enforces the focus invariant on every window.
func (m *Manager) Revalidate() {
	for win, c := range m.controllers {
		if !m.tree.Contains(win) {
			delete(m.controllers, win)
			continue
		}
		c.Revalidate()
	}
}
