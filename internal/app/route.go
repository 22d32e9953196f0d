package app

import (
	"github.com/dshills/termkit/internal/core"
)

// deliver is the loop's event handler.
func (a *Application) deliver(ev core.Event) {
	switch e := ev.(type) {
	case *core.KeyEvent:
		a.router.Key(e)
	case *core.MouseEvent:
		a.router.Mouse(e)
	case core.ActionEvent:
		a.tree.FireAction(e.Source, e)
	case core.ItemEvent:
		a.tree.FireItem(e.Source, e)
	case core.WindowEvent:
		a.tree.FireWindow(e.Source, e)
	case core.FocusEvent:
		a.tree.FireFocus(e.Source, e)
	default:
		a.log.Debug("event dropped", "type", ev)
	}
}
