// Package focus tracks the focused component of each top-level window and
// performs focus traversal.
//
// A window's focus state is either NoFocus (Focused() == core.NoHandle) or
// focused on one component that can take focus: showing, enabled along its
// ancestor chain, focus traversable and inside that window. Requests that
// would break this are rejected silently and emit no events.
package focus

import (
	"log/slog"

	"github.com/dshills/termkit/internal/component"
	"github.com/dshills/termkit/internal/core"
)

// CursorSink receives terminal cursor placement.
type CursorSink interface {
	SetCursor(p core.Point, visible bool)
}

// Option configures a Controller or Manager.
type Option func(*options)

type options struct {
	policy Policy
	cursor CursorSink
	logger *slog.Logger
}

// WithPolicy sets the traversal policy. The default is PreOrder.
func WithPolicy(p Policy) Option {
	return func(o *options) { o.policy = p }
}

// WithCursorSink sets where focused widgets place the cursor.
func WithCursorSink(s CursorSink) Option {
	return func(o *options) { o.cursor = s }
}

// WithLogger sets the logger for rejected requests and transitions.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

func buildOptions(opts []Option) options {
	o := options{policy: PreOrder{}, logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Controller owns the focus state of one window.
type Controller struct {
	tree    *component.Tree
	window  core.Handle
	focused core.Handle
	opts    options

	// active reports whether the window owns the terminal cursor.
	active func() bool
}

// NewController creates a controller for window with no focus.
func NewController(tree *component.Tree, window core.Handle, opts ...Option) *Controller {
	return &Controller{
		tree:   tree,
		window: window,
		opts:   buildOptions(opts),
	}
}

// Window returns the window this controller serves.
func (c *Controller) Window() core.Handle {
	return c.window
}

// Focused returns the focused component, or NoHandle for NoFocus.
func (c *Controller) Focused() core.Handle {
	return c.focused
}

// HasFocus reports whether some component is focused.
func (c *Controller) HasFocus() bool {
	return c.focused != core.NoHandle
}

// eligible reports whether h may hold this window's focus.
func (c *Controller) eligible(h core.Handle) bool {
	return c.tree.Window(h) == c.window && c.tree.CanFocus(h)
}

// RequestFocus moves focus to h. It returns false, changing nothing and
// emitting nothing, if h is detached, disabled, hidden, not focus
// traversable or outside the window. On success FOCUS_LOST is delivered to
// the previous holder, then FOCUS_GAINED to h, then the cursor is placed.
func (c *Controller) RequestFocus(h core.Handle) bool {
	if !c.eligible(h) {
		c.opts.logger.Debug("focus request rejected", "component", c.tree.Name(h), "window", c.window)
		return false
	}
	if h == c.focused {
		return true
	}

	prev := c.focused
	c.focused = h
	c.opts.logger.Debug("focus changed", "from", c.tree.Name(prev), "to", c.tree.Name(h))

	if prev != core.NoHandle && c.tree.Contains(prev) {
		c.tree.FireFocus(prev, core.FocusEvent{ID: core.FocusLost, Source: prev, Opposite: h})
	}
	if c.focused == h {
		c.tree.FireFocus(h, core.FocusEvent{ID: core.FocusGained, Source: h, Opposite: prev})
	}
	c.PlaceCursor()
	return true
}

// ClearFocus moves the window to NoFocus, delivering FOCUS_LOST.
func (c *Controller) ClearFocus() {
	prev := c.focused
	if prev == core.NoHandle {
		return
	}
	c.focused = core.NoHandle
	if c.tree.Contains(prev) {
		c.tree.FireFocus(prev, core.FocusEvent{ID: core.FocusLost, Source: prev})
	}
	c.PlaceCursor()
}

// NextFocus moves focus forward in traversal order, wrapping from the last
// component to the first. From NoFocus it focuses the first component.
// With no focusable component it does nothing and returns false.
func (c *Controller) NextFocus() bool {
	return c.step(1)
}

// PreviousFocus moves focus backward, wrapping from the first component
// to the last. From NoFocus it focuses the last component.
func (c *Controller) PreviousFocus() bool {
	return c.step(-1)
}

func (c *Controller) step(dir int) bool {
	order := c.opts.policy.Order(c.tree, c.window)
	n := len(order)
	if n == 0 {
		return false
	}

	idx := -1
	for i, h := range order {
		if h == c.focused {
			idx = i
			break
		}
	}

	var next int
	switch {
	case idx < 0 && dir > 0:
		next = 0
	case idx < 0:
		next = n - 1
	default:
		next = ((idx+dir)%n + n) % n
	}
	return c.RequestFocus(order[next])
}

// FocusFirst focuses the first component in traversal order.
func (c *Controller) FocusFirst() bool {
	order := c.opts.policy.Order(c.tree, c.window)
	if len(order) == 0 {
		return false
	}
	return c.RequestFocus(order[0])
}

// Order returns the window's current traversal order.
func (c *Controller) Order() []core.Handle {
	return c.opts.policy.Order(c.tree, c.window)
}

// Revalidate clears focus if the focused component can no longer hold it.
func (c *Controller) Revalidate() {
	if c.focused != core.NoHandle && !c.eligible(c.focused) {
		c.opts.logger.Debug("focused component became ineligible", "component", c.tree.Name(c.focused))
		c.ClearFocus()
	}
}

// PlaceCursor asks the focused widget where the cursor belongs and tells
// the cursor sink. The cursor is hidden when the widget does not place it.
func (c *Controller) PlaceCursor() {
	if c.opts.cursor == nil || (c.active != nil && !c.active()) {
		return
	}
	if cp, ok := c.tree.Widget(c.focused).(component.CursorPlacer); ok && c.focused != core.NoHandle {
		p, visible := cp.CursorPosition()
		c.opts.cursor.SetCursor(p, visible)
		return
	}
	c.opts.cursor.SetCursor(core.Point{}, false)
}
