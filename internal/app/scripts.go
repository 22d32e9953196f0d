package app

import (
	"github.com/dshills/termkit/internal/input/keymap"
	"github.com/dshills/termkit/internal/script"
)

var _ script.UI = (*Application)(nil)

// installScripts compiles the configured script actions into am. Actions
// that fail to compile are logged and skipped.
func (a *Application) installScripts(am *keymap.ActionMap) {
	actions := a.cfg.ScriptActions()
	for _, name := range a.cfg.ScriptActionNames() {
		s, err := a.scripts.Action(name, actions[name])
		if err != nil {
			a.log.Error("script action skipped", "action", name, "err", err)
			continue
		}
		am.Put(name, s)
	}
}

// FocusNext implements script.UI.
func (a *Application) FocusNext() bool {
	if c := a.fm.ActiveController(); c != nil {
		return c.NextFocus()
	}
	return false
}

// FocusPrevious implements script.UI.
func (a *Application) FocusPrevious() bool {
	if c := a.fm.ActiveController(); c != nil {
		return c.PreviousFocus()
	}
	return false
}

// ClosePopup implements script.UI.
func (a *Application) ClosePopup() bool {
	if a.popups.Len() == 0 {
		return false
	}
	return a.popups.Pop()
}

// Beep implements script.UI.
func (a *Application) Beep() {
	if b := a.currentBackend(); b != nil {
		b.Beep()
	}
}
