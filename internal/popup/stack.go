package popup

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dshills/termkit/internal/component"
	"github.com/dshills/termkit/internal/core"
	"github.com/dshills/termkit/internal/focus"
	"github.com/dshills/termkit/internal/input/key"
)

// Stack errors.
var (
	// ErrNotWindow indicates an attempt to push a component that is not a
	// top-level window.
	ErrNotWindow = errors.New("popup is not a window")

	// ErrAlreadyOpen indicates a window that is already on the stack.
	ErrAlreadyOpen = errors.New("popup already open")
)

// CloseOperation selects what a modal dialog does on WINDOW_CLOSING.
type CloseOperation int

const (
	// HideOnClose pops the dialog.
	HideOnClose CloseOperation = iota
	// DoNothingOnClose keeps the dialog open; listeners decide.
	DoNothingOnClose
)

func (op CloseOperation) String() string {
	switch op {
	case HideOnClose:
		return "HIDE_ON_CLOSE"
	case DoNothingOnClose:
		return "DO_NOTHING_ON_CLOSE"
	default:
		return fmt.Sprintf("CloseOperation(%d)", int(op))
	}
}

// Options describes a popup being pushed.
type Options struct {
	// Invoker is the component that opened the popup. Clicks on it are
	// not outside clicks.
	Invoker core.Handle

	// Modal marks a dialog: it ignores outside clicks and BACKSPACE.
	Modal bool

	// CloseOperation applies to modal dialogs.
	CloseOperation CloseOperation

	// Focus is the component to focus initially. Zero focuses the first
	// traversable component of the popup.
	Focus core.Handle

	// OnClose runs after the popup is popped with the close key, or
	// key.CodeNone for a plain Pop.
	OnClose func(code key.Code)
}

// Entry is one open popup.
type Entry struct {
	ID      uuid.UUID
	Window  core.Handle
	Invoker core.Handle
	Modal   bool
	Close   CloseOperation

	restore   core.Handle
	onClose   func(key.Code)
	closingID core.ListenerID
}

// Option configures a Stack.
type Option func(*Stack)

// WithLogger sets the stack's logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Stack) { s.logger = l }
}

// WithPoster routes WINDOW_CLOSING requests through post, normally the
// event loop's Post. Without it they are delivered synchronously.
func WithPoster(post func(core.Event)) Option {
	return func(s *Stack) { s.post = post }
}

// Stack is the popup stack over one base window. It is used only on the
// UI goroutine.
type Stack struct {
	tree    *component.Tree
	focus   *focus.Manager
	base    core.Handle
	entries []*Entry
	post    func(core.Event)
	logger  *slog.Logger
}

// NewStack creates an empty stack over base.
func NewStack(tree *component.Tree, fm *focus.Manager, base core.Handle, opts ...Option) *Stack {
	s := &Stack{
		tree:   tree,
		focus:  fm,
		base:   base,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Base returns the window beneath every popup.
func (s *Stack) Base() core.Handle {
	return s.base
}

// SetBase replaces the base window. Open popups are popped first.
func (s *Stack) SetBase(base core.Handle) {
	s.PopAll()
	s.base = base
}

// Len returns the number of open popups.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Top returns the topmost entry, or nil.
func (s *Stack) Top() *Entry {
	if len(s.entries) == 0 {
		return nil
	}
	return s.entries[len(s.entries)-1]
}

// TopWindow returns the window receiving input: the topmost popup or the
// base window.
func (s *Stack) TopWindow() core.Handle {
	if e := s.Top(); e != nil {
		return e.Window
	}
	return s.base
}

// Windows returns the open popup windows from the top down, followed by
// the base window. Mouse hit-testing walks it in order.
func (s *Stack) Windows() []core.Handle {
	out := make([]core.Handle, 0, len(s.entries)+1)
	for i := len(s.entries) - 1; i >= 0; i-- {
		out = append(out, s.entries[i].Window)
	}
	if s.base != core.NoHandle {
		out = append(out, s.base)
	}
	return out
}

// Find returns the entry showing win, or nil.
func (s *Stack) Find(win core.Handle) *Entry {
	for _, e := range s.entries {
		if e.Window == win {
			return e
		}
	}
	return nil
}

// Push shows win on top of the stack, saving the current focus owner and
// moving focus into the popup.
func (s *Stack) Push(win core.Handle, opts Options) (*Entry, error) {
	if !s.tree.IsWindow(win) {
		return nil, fmt.Errorf("push %d: %w", win, ErrNotWindow)
	}
	if win == s.base || s.Find(win) != nil {
		return nil, fmt.Errorf("push %d: %w", win, ErrAlreadyOpen)
	}

	e := &Entry{
		ID:      uuid.New(),
		Window:  win,
		Invoker: opts.Invoker,
		Modal:   opts.Modal,
		Close:   opts.CloseOperation,
		restore: s.focus.FocusOwner(),
		onClose: opts.OnClose,
	}
	s.entries = append(s.entries, e)

	if e.Modal {
		e.closingID = s.tree.AddWindowListener(win, func(ev core.WindowEvent) {
			if ev.ID == core.WindowClosing && e.Close == HideOnClose {
				s.PopTo(e)
			}
		})
	}

	s.tree.SetVisible(win, true)
	s.tree.Attach(win)
	s.focus.SetActive(win)

	c := s.focus.Controller(win)
	c.ClearFocus()
	if opts.Focus == core.NoHandle || !c.RequestFocus(opts.Focus) {
		c.FocusFirst()
	}

	s.logger.Debug("popup pushed", "id", e.ID, "window", s.tree.Name(win), "modal", e.Modal, "depth", len(s.entries))
	s.tree.FireWindow(win, core.WindowEvent{ID: core.WindowOpened, Source: win})
	return e, nil
}

// Pop closes the topmost popup. It reports false on an empty stack.
func (s *Stack) Pop() bool {
	return s.PopWithKey(key.CodeNone)
}

// PopWithKey closes the topmost popup and hands code to its OnClose
// callback.
func (s *Stack) PopWithKey(code key.Code) bool {
	e := s.Top()
	if e == nil {
		return false
	}
	s.entries = s.entries[:len(s.entries)-1]

	if e.closingID != 0 {
		s.tree.RemoveListener(e.Window, e.closingID)
	}
	s.focus.Controller(e.Window).ClearFocus()
	s.tree.SetVisible(e.Window, false)
	s.tree.Detach(e.Window)

	beneath := s.TopWindow()
	s.focus.SetActive(beneath)
	if e.restore == core.NoHandle || !s.focus.RequestFocus(e.restore) {
		s.focus.Controller(beneath).Revalidate()
	}

	s.logger.Debug("popup popped", "id", e.ID, "window", s.tree.Name(e.Window), "key", code, "depth", len(s.entries))
	s.tree.FireWindow(e.Window, core.WindowEvent{ID: core.WindowClosed, Source: e.Window})
	if e.onClose != nil {
		e.onClose(code)
	}
	return true
}

// PopTo closes every popup above e and then e itself. It reports false if
// e is not on the stack.
func (s *Stack) PopTo(e *Entry) bool {
	idx := -1
	for i, cur := range s.entries {
		if cur == e {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	for len(s.entries) > idx {
		s.Pop()
	}
	return true
}

// PopAll closes every popup, innermost first.
func (s *Stack) PopAll() {
	for s.Pop() {
	}
}

// IsOutside reports whether a click at ev misses the topmost popup. A click
// on the popup's invoker, or inside it, is not outside.
func (s *Stack) IsOutside(ev *core.MouseEvent) bool {
	e := s.Top()
	if e == nil {
		return false
	}
	if s.tree.Bounds(e.Window).Contains(ev.Pos) {
		return false
	}
	owner := s.base
	if len(s.entries) > 1 {
		owner = s.entries[len(s.entries)-2].Window
	}
	hit := s.tree.ComponentAt(owner, ev.Pos)
	return !(e.Invoker != core.NoHandle && hit != core.NoHandle && s.tree.IsSameOrAncestor(e.Invoker, hit))
}

// HandleMouse applies outside-click dismissal for a mouse press. Outside
// clicks pop non-modal popups until the click lands inside one. A modal
// dialog swallows clicks outside its bounds. It reports whether ev was
// consumed.
func (s *Stack) HandleMouse(ev *core.MouseEvent) bool {
	if ev.ID != core.MousePressed {
		return false
	}
	for {
		e := s.Top()
		if e == nil {
			return false
		}
		if e.Modal {
			if !s.tree.Bounds(e.Window).Contains(ev.Pos) {
				ev.Consume()
				return true
			}
			return false
		}
		if !s.IsOutside(ev) {
			return false
		}
		s.Pop()
	}
}

// HandleKey closes the topmost popup on ESCAPE or BACKSPACE. On a modal
// dialog ESCAPE requests WINDOW_CLOSING instead and BACKSPACE is ignored.
// It reports whether ev was consumed.
func (s *Stack) HandleKey(ev *core.KeyEvent) bool {
	e := s.Top()
	if e == nil || ev.ID != core.KeyPressed || ev.Modifiers != key.ModNone {
		return false
	}
	switch ev.Code {
	case key.CodeEscape:
		if e.Modal {
			s.requestClose(e)
		} else {
			s.PopWithKey(ev.Code)
		}
	case key.CodeBackspace:
		if e.Modal {
			return false
		}
		s.PopWithKey(ev.Code)
	default:
		return false
	}
	ev.Consume()
	return true
}

func (s *Stack) requestClose(e *Entry) {
	ev := core.WindowEvent{ID: core.WindowClosing, Source: e.Window}
	if s.post != nil {
		s.post(ev)
		return
	}
	s.tree.FireWindow(e.Window, ev)
}
