package app

import (
	"github.com/dshills/termkit/internal/core"
	"github.com/dshills/termkit/internal/input/key"
	"github.com/dshills/termkit/internal/renderer/backend"
)

// translator turns raw terminal events into toolkit events. It tracks the
// held mouse button so motion reports are not mistaken for new presses.
type translator struct {
	held backend.MouseButton
}

// translate converts ev. A printable character without Ctrl or Alt yields
// a KEY_PRESSED for its key code followed by a KEY_TYPED; every other key
// yields a KEY_PRESSED only. Focus, paste and interrupt events yield
// nothing.
func (t *translator) translate(ev backend.Event) []core.Event {
	switch ev.Type {
	case backend.EventKey:
		return translateKey(ev)
	case backend.EventMouse:
		if e := t.translateMouse(ev); e != nil {
			return []core.Event{e}
		}
	}
	return nil
}

func translateKey(ev backend.Event) []core.Event {
	if ev.Code != key.CodeNone {
		return []core.Event{core.NewKeyPressed(ev.Code, ev.Mods)}
	}
	if ev.Rune == 0 {
		return nil
	}

	code := key.CodeForRune(ev.Rune)
	if ev.Mods.Has(key.ModCtrl) || ev.Mods.Has(key.ModAlt) {
		if code == key.CodeNone {
			return nil
		}
		return []core.Event{core.NewKeyPressed(code, ev.Mods)}
	}

	typed := core.NewKeyTyped(ev.Rune)
	if code == key.CodeNone {
		return []core.Event{typed}
	}
	return []core.Event{core.NewKeyPressed(code, ev.Mods), typed}
}

func (t *translator) translateMouse(ev backend.Event) *core.MouseEvent {
	out := &core.MouseEvent{Pos: core.Point{X: ev.MouseX, Y: ev.MouseY}, Modifiers: ev.Mods}
	switch ev.Button {
	case backend.MouseWheelUp, backend.MouseWheelDown:
		out.ID = core.MouseWheel
		out.Button = core.WheelUp
		if ev.Button == backend.MouseWheelDown {
			out.Button = core.WheelDown
		}
		return out
	case backend.MouseNone:
		if t.held == backend.MouseNone {
			return nil
		}
		out.ID = core.MouseReleased
		out.Button = mouseButton(t.held)
		t.held = backend.MouseNone
		return out
	}

	if t.held == ev.Button {
		return nil
	}
	t.held = ev.Button
	out.ID = core.MousePressed
	out.Button = mouseButton(ev.Button)
	return out
}

func mouseButton(b backend.MouseButton) core.MouseButton {
	switch b {
	case backend.MouseLeft:
		return core.ButtonLeft
	case backend.MouseMiddle:
		return core.ButtonMiddle
	case backend.MouseRight:
		return core.ButtonRight
	}
	return core.ButtonNone
}
