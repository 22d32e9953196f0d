package component

import (
	"github.com/dshills/termkit/internal/action"
	"github.com/dshills/termkit/internal/core"
	"github.com/dshills/termkit/internal/input/key"
	"github.com/dshills/termkit/internal/input/keymap"
)

// InputMap returns the input map of h for scope, creating it on first use.
// The WhenInFocusedWindow map is always a *keymap.ComponentInputMap.
// An invalid scope panics.
func (t *Tree) InputMap(h core.Handle, scope core.Scope) keymap.Inputs {
	scope.Validate()
	n := t.get(h)
	if n == nil {
		return keymap.NewInputMap()
	}
	if n.inputMaps[scope] == nil {
		if scope == core.WhenInFocusedWindow {
			cm := keymap.NewComponentInputMap(h)
			cm.OnChange(t.syncRegistrations)
			n.inputMaps[scope] = cm
		} else {
			n.inputMaps[scope] = keymap.NewInputMap()
		}
	}
	return n.inputMaps[scope]
}

// WindowInputMap returns the WhenInFocusedWindow map of h.
func (t *Tree) WindowInputMap(h core.Handle) *keymap.ComponentInputMap {
	m, _ := t.InputMap(h, core.WhenInFocusedWindow).(*keymap.ComponentInputMap)
	return m
}

// SetInputMap replaces the input map of h for scope. For
// WhenInFocusedWindow m must be a *keymap.ComponentInputMap bound to h;
// anything else is a programming error and panics immediately.
func (t *Tree) SetInputMap(h core.Handle, scope core.Scope, m keymap.Inputs) {
	scope.Validate()
	if scope == core.WhenInFocusedWindow && m != nil {
		cm, ok := m.(*keymap.ComponentInputMap)
		if !ok {
			core.PanicUsage("SetInputMap", "WHEN_IN_FOCUSED_WINDOW map must be a ComponentInputMap, got %T", m)
		}
		if cm.Component() != h {
			core.PanicUsage("SetInputMap", "map bound to component %d, installing on %d", cm.Component(), h)
		}
	}
	n := t.get(h)
	if n == nil {
		return
	}
	n.inputMaps[scope] = m
	t.hookChain(m)
	if scope == core.WhenInFocusedWindow {
		t.syncRegistrations(h)
	}
}

func (t *Tree) hookChain(m keymap.Inputs) {
	for cur := m; cur != nil; cur = cur.Parent() {
		if cm, ok := cur.(*keymap.ComponentInputMap); ok {
			cm.OnChange(t.syncRegistrations)
		}
	}
}

// ActionMap returns the action map of h, creating it on first use.
func (t *Tree) ActionMap(h core.Handle) *keymap.ActionMap {
	n := t.get(h)
	if n == nil {
		return keymap.NewActionMap()
	}
	if n.actionMap == nil {
		n.actionMap = keymap.NewActionMap()
	}
	return n.actionMap
}

// SetActionMap replaces the action map of h.
func (t *Tree) SetActionMap(h core.Handle, m *keymap.ActionMap) {
	if n := t.get(h); n != nil {
		n.actionMap = m
	}
}

// InstallUIMaps installs the registry's bindings for h's class as the UI
// part of each input map chain, and ui (if not nil) as the UI part of its
// action map chain. Application entries are preserved. Calling it again
// swaps in the current registry contents.
func (t *Tree) InstallUIMaps(h core.Handle, reg *keymap.Registry, ui *keymap.ActionMap) {
	n := t.get(h)
	if n == nil || reg == nil {
		return
	}
	if n.class != "" {
		for _, scope := range []core.Scope{core.WhenFocused, core.WhenAncestorOfFocusedComponent} {
			if len(reg.Bindings(n.class, scope)) == 0 && n.inputMaps[scope] == nil {
				continue
			}
			keymap.ReplaceUIInputMap(t.InputMap(h, scope), reg.UIInputMap(n.class, scope))
		}
		if len(reg.Bindings(n.class, core.WhenInFocusedWindow)) > 0 || n.inputMaps[core.WhenInFocusedWindow] != nil {
			uiWin := reg.UIComponentInputMap(n.class, h)
			uiWin.OnChange(t.syncRegistrations)
			keymap.ReplaceUIInputMap(t.InputMap(h, core.WhenInFocusedWindow), uiWin)
		}
	}
	if ui != nil {
		keymap.ReplaceUIActionMap(t.ActionMap(h), ui)
	}
}

// ProcessKeyBinding looks s up in h's map for scope and, if it resolves to
// an enabled action, performs it and consumes ev. A binding whose action
// is missing or disabled does not count.
func (t *Tree) ProcessKeyBinding(h core.Handle, s key.Stroke, ev *core.KeyEvent, scope core.Scope) bool {
	scope.Validate()
	n := t.get(h)
	if n == nil || n.inputMaps[scope] == nil || n.actionMap == nil {
		return false
	}
	k, ok := n.inputMaps[scope].Get(s)
	if !ok {
		return false
	}
	a, ok := n.actionMap.Get(k)
	if !ok || !a.Enabled() {
		return false
	}

	cmd := action.Command(a)
	if cmd == "" {
		cmd = k
	}
	t.run(func() {
		a.Perform(core.ActionEvent{Source: h, Command: cmd, Modifiers: ev.Modifiers})
	})
	ev.Consume()
	return true
}

func (t *Tree) run(fn func()) {
	if t.guard != nil {
		t.guard(fn)
		return
	}
	fn()
}
