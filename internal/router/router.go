// Package router delivers key and mouse events to the component tree.
//
// A key event goes to the focus owner of the active window (or the window
// itself when nothing is focused) and is offered, in order, to
//
//  1. the key listeners of the target
//  2. the binding scopes, through binding.Resolver
//  3. component.KeyHandler implementations from the target up to its window
//  4. the popup stack (ESCAPE and BACKSPACE close popups)
//  5. focus traversal on TAB and SHIFT+TAB
//
// The first consumer stops the chain.
//
// A mouse event first lets the popup stack dismiss popups on outside
// presses, then goes to the topmost component under the pointer, popups
// before the base window. A press focuses that component when it can take
// focus.
package router

import (
	"log/slog"

	"github.com/dshills/termkit/internal/binding"
	"github.com/dshills/termkit/internal/component"
	"github.com/dshills/termkit/internal/core"
	"github.com/dshills/termkit/internal/focus"
	"github.com/dshills/termkit/internal/input/key"
	"github.com/dshills/termkit/internal/popup"
)

// Option configures a Router.
type Option func(*Router)

// WithLogger sets the router's logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Router) { r.logger = l }
}

// Router routes input events. It must only be used on the UI thread.
type Router struct {
	tree     *component.Tree
	focus    *focus.Manager
	popups   *popup.Stack
	resolver *binding.Resolver
	logger   *slog.Logger
}

// New creates a Router over the given UI state.
func New(tree *component.Tree, fm *focus.Manager, popups *popup.Stack, resolver *binding.Resolver, opts ...Option) *Router {
	r := &Router{
		tree:     tree,
		focus:    fm,
		popups:   popups,
		resolver: resolver,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Key routes ev and reports whether anything handled it.
func (r *Router) Key(ev *core.KeyEvent) bool {
	target := r.focus.FocusOwner()
	if target == core.NoHandle {
		target = r.focus.Active()
	}
	if target == core.NoHandle {
		return false
	}
	ev.Source = target

	r.tree.FireKey(target, ev)
	if ev.IsConsumed() {
		return true
	}
	if r.resolver.Resolve(target, ev).Consumed() {
		return true
	}
	for c := target; c != core.NoHandle; c = r.tree.Parent(c) {
		if kh, ok := r.tree.Widget(c).(component.KeyHandler); ok {
			kh.HandleKey(ev)
			if ev.IsConsumed() {
				return true
			}
		}
	}
	if r.popups.HandleKey(ev) {
		return true
	}
	if ev.ID == core.KeyPressed && ev.Code == key.CodeTab {
		if c := r.focus.ActiveController(); c != nil {
			if ev.Modifiers.Has(key.ModShift) {
				c.PreviousFocus()
			} else {
				c.NextFocus()
			}
		}
		return true
	}
	r.logger.Debug("key unhandled", "event", ev.String())
	return false
}

// Mouse routes ev and reports whether it reached a component or closed a
// popup.
func (r *Router) Mouse(ev *core.MouseEvent) bool {
	if r.popups.HandleMouse(ev) {
		return true
	}
	target := core.NoHandle
	for _, win := range r.popups.Windows() {
		if target = r.tree.ComponentAt(win, ev.Pos); target != core.NoHandle {
			break
		}
	}
	if target == core.NoHandle {
		return false
	}
	if ev.ID == core.MousePressed && r.tree.CanFocus(target) {
		r.focus.RequestFocus(target)
	}
	ev.Source = target
	r.tree.FireMouse(target, ev)
	if ev.IsConsumed() {
		return true
	}
	if mh, ok := r.tree.Widget(target).(component.MouseHandler); ok {
		mh.HandleMouse(ev)
	}
	return true
}
