package component

import (
	"errors"
	"fmt"

	"github.com/dshills/termkit/internal/core"
	"github.com/dshills/termkit/internal/input/key"
	"github.com/dshills/termkit/internal/input/keymap"
)

// Tree errors.
var (
	// ErrUnknownComponent indicates a handle that does not resolve.
	ErrUnknownComponent = errors.New("unknown component")

	// ErrHasParent indicates a child that already belongs to a container.
	ErrHasParent = errors.New("component already has a parent")

	// ErrWindowChild indicates an attempt to nest a top-level window.
	ErrWindowChild = errors.New("window cannot be a child")

	// ErrCycle indicates an attempt to add a component below itself.
	ErrCycle = errors.New("component would become its own ancestor")
)

// Registrar receives the window-scope strokes of attached components.
type Registrar interface {
	RegisterKeyStroke(s key.Stroke, h core.Handle)
	UnregisterKeyStroke(s key.Stroke, h core.Handle)
}

type node struct {
	widget any
	name   string
	class  string

	parent   core.Handle
	children []core.Handle

	enabled     bool
	traversable bool
	visible     bool
	mnemonic    key.Code
	bounds      core.Rect

	window   bool
	attached bool

	inputMaps  [3]keymap.Inputs
	actionMap  *keymap.ActionMap
	registered []key.Stroke

	listeners listenerSet
}

// Tree is the component arena. It is not safe for concurrent use; all
// access happens on the UI goroutine.
type Tree struct {
	nodes     []*node
	registrar Registrar
	guard     func(fn func())
	nextID    core.ListenerID
}

// NewTree creates an empty tree. reg may be nil.
func NewTree(reg Registrar) *Tree {
	return &Tree{
		nodes:     []*node{nil}, // handle 0 is NoHandle
		registrar: reg,
	}
}

// SetRegistrar replaces the keyboard registrar.
func (t *Tree) SetRegistrar(reg Registrar) {
	t.registrar = reg
}

// SetListenerGuard installs a wrapper run around every listener call.
// The application uses it to recover listener panics.
func (t *Tree) SetListenerGuard(guard func(fn func())) {
	t.guard = guard
}

func (t *Tree) get(h core.Handle) *node {
	if int(h) <= 0 || int(h) >= len(t.nodes) {
		return nil
	}
	return t.nodes[h]
}

func (t *Tree) mustGet(op string, h core.Handle) *node {
	n := t.get(h)
	if n == nil {
		panic(fmt.Errorf("%s: %w: %d", op, ErrUnknownComponent, h))
	}
	return n
}

// Create adds a detached component for widget w and returns its handle.
func (t *Tree) Create(w any) core.Handle {
	n := &node{
		widget:  w,
		enabled: true,
		visible: true,
	}
	if f, ok := w.(Focusable); ok {
		n.traversable = f.AcceptsFocus()
	}
	if c, ok := w.(Classed); ok {
		n.class = c.Class()
	}
	t.nodes = append(t.nodes, n)
	return core.Handle(len(t.nodes) - 1)
}

// CreateWindow adds a top-level window. Windows are roots; they become
// attached with Attach.
func (t *Tree) CreateWindow(w any) core.Handle {
	h := t.Create(w)
	t.nodes[h].window = true
	return h
}

// Contains reports whether h resolves to a live component.
func (t *Tree) Contains(h core.Handle) bool {
	return t.get(h) != nil
}

// Widget returns the widget value of h, or nil.
func (t *Tree) Widget(h core.Handle) any {
	if n := t.get(h); n != nil {
		return n.widget
	}
	return nil
}

// Class returns the keymap class of h.
func (t *Tree) Class(h core.Handle) string {
	if n := t.get(h); n != nil {
		return n.class
	}
	return ""
}

// Name returns the debugging name of h.
func (t *Tree) Name(h core.Handle) string {
	n := t.get(h)
	if n == nil {
		return ""
	}
	if n.name != "" {
		return n.name
	}
	if n.class != "" {
		return fmt.Sprintf("%s#%d", n.class, h)
	}
	return fmt.Sprintf("#%d", h)
}

// SetName sets the debugging name of h.
func (t *Tree) SetName(h core.Handle, name string) {
	if n := t.get(h); n != nil {
		n.name = name
	}
}

// Add appends child to parent's children. If parent is attached the child
// subtree is attached too.
func (t *Tree) Add(parent, child core.Handle) error {
	p := t.get(parent)
	c := t.get(child)
	if p == nil || c == nil {
		return fmt.Errorf("add %d to %d: %w", child, parent, ErrUnknownComponent)
	}
	if c.window {
		return fmt.Errorf("add %d: %w", child, ErrWindowChild)
	}
	if c.parent != core.NoHandle {
		return fmt.Errorf("add %d: %w", child, ErrHasParent)
	}
	if child == parent || t.IsAncestor(child, parent) {
		return fmt.Errorf("add %d to %d: %w", child, parent, ErrCycle)
	}

	c.parent = parent
	p.children = append(p.children, child)
	if p.attached {
		t.addNotify(child)
	}
	return nil
}

// Remove detaches child from its parent, unregistering its subtree. The
// component stays alive and may be added again.
func (t *Tree) Remove(child core.Handle) {
	c := t.get(child)
	if c == nil || c.parent == core.NoHandle {
		return
	}
	if c.attached {
		t.removeNotify(child)
	}
	p := t.nodes[c.parent]
	for i, h := range p.children {
		if h == child {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	c.parent = core.NoHandle
}

// Destroy removes h and frees its whole subtree.
func (t *Tree) Destroy(h core.Handle) {
	n := t.get(h)
	if n == nil {
		return
	}
	if n.window && n.attached {
		t.removeNotify(h)
	}
	t.Remove(h)
	t.free(h)
}

func (t *Tree) free(h core.Handle) {
	n := t.nodes[h]
	for _, c := range n.children {
		t.free(c)
	}
	t.nodes[h] = nil
}

// Attach makes window h displayable, registering the window-scope
// bindings of every component in it.
func (t *Tree) Attach(h core.Handle) {
	n := t.mustGet("Attach", h)
	if !n.window {
		core.PanicUsage("Tree.Attach", "component %d is not a window", h)
	}
	if !n.attached {
		t.addNotify(h)
	}
}

// Detach makes window h non-displayable.
func (t *Tree) Detach(h core.Handle) {
	if n := t.get(h); n != nil && n.window && n.attached {
		t.removeNotify(h)
	}
}

func (t *Tree) addNotify(h core.Handle) {
	n := t.nodes[h]
	n.attached = true
	t.syncRegistrations(h)
	for _, c := range n.children {
		t.addNotify(c)
	}
}

func (t *Tree) removeNotify(h core.Handle) {
	n := t.nodes[h]
	for _, c := range n.children {
		t.removeNotify(c)
	}
	if t.registrar != nil {
		for _, s := range n.registered {
			t.registrar.UnregisterKeyStroke(s, h)
		}
	}
	n.registered = nil
	n.attached = false
}

// syncRegistrations re-registers the window-scope strokes of h.
func (t *Tree) syncRegistrations(h core.Handle) {
	n := t.get(h)
	if n == nil || !n.attached || t.registrar == nil {
		return
	}
	for _, s := range n.registered {
		t.registrar.UnregisterKeyStroke(s, h)
	}
	n.registered = nil
	if m := n.inputMaps[core.WhenInFocusedWindow]; m != nil {
		n.registered = m.ResolvedKeys()
		for _, s := range n.registered {
			t.registrar.RegisterKeyStroke(s, h)
		}
	}
}

// IsAttached reports whether h is in a displayable window.
func (t *Tree) IsAttached(h core.Handle) bool {
	n := t.get(h)
	return n != nil && n.attached
}

// IsWindow reports whether h is a top-level window.
func (t *Tree) IsWindow(h core.Handle) bool {
	n := t.get(h)
	return n != nil && n.window
}

// Parent returns the parent of h or NoHandle.
func (t *Tree) Parent(h core.Handle) core.Handle {
	if n := t.get(h); n != nil {
		return n.parent
	}
	return core.NoHandle
}

// Children returns a copy of h's children in z-order (last on top).
func (t *Tree) Children(h core.Handle) []core.Handle {
	n := t.get(h)
	if n == nil {
		return nil
	}
	return append([]core.Handle(nil), n.children...)
}

// Window returns the top-level window containing h (h itself for a
// window), or NoHandle if h is not in a window.
func (t *Tree) Window(h core.Handle) core.Handle {
	for cur := h; cur != core.NoHandle; {
		n := t.get(cur)
		if n == nil {
			return core.NoHandle
		}
		if n.window {
			return cur
		}
		cur = n.parent
	}
	return core.NoHandle
}

// IsAncestor reports whether a is a strict ancestor of d.
func (t *Tree) IsAncestor(a, d core.Handle) bool {
	if a == core.NoHandle {
		return false
	}
	for cur := t.Parent(d); cur != core.NoHandle; cur = t.Parent(cur) {
		if cur == a {
			return true
		}
	}
	return false
}

// IsSameOrAncestor reports whether a == d or a is an ancestor of d.
func (t *Tree) IsSameOrAncestor(a, d core.Handle) bool {
	return a != core.NoHandle && (a == d || t.IsAncestor(a, d))
}

// Depth returns the number of ancestors of h.
func (t *Tree) Depth(h core.Handle) int {
	d := 0
	for cur := t.Parent(h); cur != core.NoHandle; cur = t.Parent(cur) {
		d++
	}
	return d
}

// Walk visits root and its descendants in pre-order. Returning false from
// fn skips the node's children.
func (t *Tree) Walk(root core.Handle, fn func(h core.Handle) bool) {
	n := t.get(root)
	if n == nil {
		return
	}
	if !fn(root) {
		return
	}
	for _, c := range append([]core.Handle(nil), n.children...) {
		t.Walk(c, fn)
	}
}

// Windows returns every live top-level window.
func (t *Tree) Windows() []core.Handle {
	var out []core.Handle
	for i, n := range t.nodes {
		if n != nil && n.window {
			out = append(out, core.Handle(i))
		}
	}
	return out
}
