package component

import (
	"github.com/dshills/termkit/internal/core"
)

type entry[F any] struct {
	id core.ListenerID
	fn F
}

type listenerSet struct {
	key    []entry[func(*core.KeyEvent)]
	mouse  []entry[func(*core.MouseEvent)]
	focus  []entry[func(core.FocusEvent)]
	action []entry[func(core.ActionEvent)]
	item   []entry[func(core.ItemEvent)]
	window []entry[func(core.WindowEvent)]
}

func removeEntry[F any](list []entry[F], id core.ListenerID) ([]entry[F], bool) {
	for i, e := range list {
		if e.id == id {
			return append(list[:i:i], list[i+1:]...), true
		}
	}
	return list, false
}

func (t *Tree) newListenerID() core.ListenerID {
	t.nextID++
	return t.nextID
}

// AddKeyListener registers fn for key events delivered to h.
// Key listeners run in registration order before any binding.
func (t *Tree) AddKeyListener(h core.Handle, fn func(*core.KeyEvent)) core.ListenerID {
	n := t.get(h)
	if n == nil {
		return 0
	}
	id := t.newListenerID()
	n.listeners.key = append(n.listeners.key, entry[func(*core.KeyEvent)]{id, fn})
	return id
}

// AddMouseListener registers fn for mouse events delivered to h.
func (t *Tree) AddMouseListener(h core.Handle, fn func(*core.MouseEvent)) core.ListenerID {
	n := t.get(h)
	if n == nil {
		return 0
	}
	id := t.newListenerID()
	n.listeners.mouse = append(n.listeners.mouse, entry[func(*core.MouseEvent)]{id, fn})
	return id
}

// AddFocusListener registers fn for focus transitions of h.
func (t *Tree) AddFocusListener(h core.Handle, fn func(core.FocusEvent)) core.ListenerID {
	n := t.get(h)
	if n == nil {
		return 0
	}
	id := t.newListenerID()
	n.listeners.focus = append(n.listeners.focus, entry[func(core.FocusEvent)]{id, fn})
	return id
}

// AddActionListener registers fn for action events of h. Action listeners
// fire last-registered first.
func (t *Tree) AddActionListener(h core.Handle, fn func(core.ActionEvent)) core.ListenerID {
	n := t.get(h)
	if n == nil {
		return 0
	}
	id := t.newListenerID()
	n.listeners.action = append(n.listeners.action, entry[func(core.ActionEvent)]{id, fn})
	return id
}

// AddItemListener registers fn for item events of h. Item listeners fire
// last-registered first.
func (t *Tree) AddItemListener(h core.Handle, fn func(core.ItemEvent)) core.ListenerID {
	n := t.get(h)
	if n == nil {
		return 0
	}
	id := t.newListenerID()
	n.listeners.item = append(n.listeners.item, entry[func(core.ItemEvent)]{id, fn})
	return id
}

// AddWindowListener registers fn for window events of window h.
func (t *Tree) AddWindowListener(h core.Handle, fn func(core.WindowEvent)) core.ListenerID {
	n := t.get(h)
	if n == nil {
		return 0
	}
	id := t.newListenerID()
	n.listeners.window = append(n.listeners.window, entry[func(core.WindowEvent)]{id, fn})
	return id
}

// RemoveListener unregisters listener id of any kind from h.
// Unknown ids are ignored.
func (t *Tree) RemoveListener(h core.Handle, id core.ListenerID) {
	n := t.get(h)
	if n == nil {
		return
	}
	l := &n.listeners
	var ok bool
	if l.key, ok = removeEntry(l.key, id); ok {
		return
	}
	if l.mouse, ok = removeEntry(l.mouse, id); ok {
		return
	}
	if l.focus, ok = removeEntry(l.focus, id); ok {
		return
	}
	if l.action, ok = removeEntry(l.action, id); ok {
		return
	}
	if l.item, ok = removeEntry(l.item, id); ok {
		return
	}
	l.window, _ = removeEntry(l.window, id)
}

// FireKey delivers ev to h's key listeners in registration order.
func (t *Tree) FireKey(h core.Handle, ev *core.KeyEvent) {
	n := t.get(h)
	if n == nil {
		return
	}
	for _, e := range append([]entry[func(*core.KeyEvent)](nil), n.listeners.key...) {
		t.run(func() { e.fn(ev) })
	}
}

// FireMouse delivers ev to h's mouse listeners in registration order.
func (t *Tree) FireMouse(h core.Handle, ev *core.MouseEvent) {
	n := t.get(h)
	if n == nil {
		return
	}
	for _, e := range append([]entry[func(*core.MouseEvent)](nil), n.listeners.mouse...) {
		t.run(func() { e.fn(ev) })
	}
}

// FireFocus delivers ev to the widget's FocusHandler, then to h's focus
// listeners in registration order.
func (t *Tree) FireFocus(h core.Handle, ev core.FocusEvent) {
	n := t.get(h)
	if n == nil {
		return
	}
	if fh, ok := n.widget.(FocusHandler); ok {
		t.run(func() { fh.FocusChanged(ev) })
	}
	for _, e := range append([]entry[func(core.FocusEvent)](nil), n.listeners.focus...) {
		t.run(func() { e.fn(ev) })
	}
}

// FireAction delivers ev to h's action listeners, last registered first.
func (t *Tree) FireAction(h core.Handle, ev core.ActionEvent) {
	n := t.get(h)
	if n == nil {
		return
	}
	list := append([]entry[func(core.ActionEvent)](nil), n.listeners.action...)
	for i := len(list) - 1; i >= 0; i-- {
		fn := list[i].fn
		t.run(func() { fn(ev) })
	}
}

// FireItem delivers ev to h's item listeners, last registered first.
func (t *Tree) FireItem(h core.Handle, ev core.ItemEvent) {
	n := t.get(h)
	if n == nil {
		return
	}
	list := append([]entry[func(core.ItemEvent)](nil), n.listeners.item...)
	for i := len(list) - 1; i >= 0; i-- {
		fn := list[i].fn
		t.run(func() { fn(ev) })
	}
}

// FireWindow delivers ev to h's window listeners in registration order.
func (t *Tree) FireWindow(h core.Handle, ev core.WindowEvent) {
	n := t.get(h)
	if n == nil {
		return
	}
	for _, e := range append([]entry[func(core.WindowEvent)](nil), n.listeners.window...) {
		t.run(func() { e.fn(ev) })
	}
}
