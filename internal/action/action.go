// Package action provides command objects decoupled from the widgets that
// trigger them. An Action carries an enabled flag that gates whether a key
// binding or button resolving to it actually fires.
package action

import (
	"github.com/dshills/termkit/internal/core"
)

// ChangeFunc is notified when a property of an Action changes.
type ChangeFunc func(k ValueKey, v Value)

// Action is a named, enable-gated command.
type Action interface {
	Enabled() bool
	SetEnabled(enabled bool)
	Perform(ev core.ActionEvent)
	Value(k ValueKey) (Value, bool)
	PutValue(k ValueKey, v Value)
	AddChangeListener(fn ChangeFunc) core.ListenerID
	RemoveChangeListener(id core.ListenerID)
}

type changeListener struct {
	id core.ListenerID
	fn ChangeFunc
}

// Base implements everything in Action except Perform. Embed it.
// The zero Base is disabled; use Init or NewFunc to enable it.
type Base struct {
	enabled   bool
	values    map[ValueKey]Value
	listeners []changeListener
	nextID    core.ListenerID
}

// Init sets the name and enables the action.
func (b *Base) Init(name string) {
	b.enabled = true
	if name != "" {
		b.PutValue(Name, String(name))
	}
}

// Enabled reports whether the action may fire.
func (b *Base) Enabled() bool { return b.enabled }

// SetEnabled changes the enabled flag and notifies listeners on change.
func (b *Base) SetEnabled(enabled bool) {
	if b.enabled == enabled {
		return
	}
	b.enabled = enabled
	b.fire(Enabled, Bool(enabled))
}

// Value returns the stored value for k.
func (b *Base) Value(k ValueKey) (Value, bool) {
	if k == Enabled {
		return Bool(b.enabled), true
	}
	v, ok := b.values[k]
	return v, ok
}

// PutValue stores v under k and notifies listeners.
func (b *Base) PutValue(k ValueKey, v Value) {
	if k == Enabled {
		if on, ok := v.AsBool(); ok {
			b.SetEnabled(on)
		}
		return
	}
	if b.values == nil {
		b.values = make(map[ValueKey]Value)
	}
	if old, ok := b.values[k]; ok && old == v {
		return
	}
	b.values[k] = v
	b.fire(k, v)
}

// AddChangeListener registers fn and returns its id.
func (b *Base) AddChangeListener(fn ChangeFunc) core.ListenerID {
	b.nextID++
	b.listeners = append(b.listeners, changeListener{id: b.nextID, fn: fn})
	return b.nextID
}

// RemoveChangeListener unregisters a listener. Unknown ids are ignored.
func (b *Base) RemoveChangeListener(id core.ListenerID) {
	for i, l := range b.listeners {
		if l.id == id {
			b.listeners = append(b.listeners[:i], b.listeners[i+1:]...)
			return
		}
	}
}

// Name returns the Name value or "".
func (b *Base) Name() string {
	v, _ := b.values[Name].AsString()
	return v
}

func (b *Base) fire(k ValueKey, v Value) {
	for i := len(b.listeners) - 1; i >= 0; i-- {
		b.listeners[i].fn(k, v)
	}
}

// Func is an Action backed by a closure.
type Func struct {
	Base
	fn func(core.ActionEvent)
}

// NewFunc creates an enabled action named name that runs fn.
func NewFunc(name string, fn func(core.ActionEvent)) *Func {
	a := &Func{fn: fn}
	a.Init(name)
	return a
}

// Perform runs the closure. Callers check Enabled first.
func (a *Func) Perform(ev core.ActionEvent) {
	if a.fn != nil {
		a.fn(ev)
	}
}

// Command returns the ActionCommand value, falling back to Name.
func Command(a Action) string {
	if v, ok := a.Value(ActionCommand); ok {
		if s, ok := v.AsString(); ok {
			return s
		}
	}
	if v, ok := a.Value(Name); ok {
		if s, ok := v.AsString(); ok {
			return s
		}
	}
	return ""
}
