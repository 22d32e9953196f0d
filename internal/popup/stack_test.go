package popup

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/dshills/termkit/internal/component"
	"github.com/dshills/termkit/internal/core"
	"github.com/dshills/termkit/internal/focus"
	"github.com/dshills/termkit/internal/input/key"
)

type item struct{}

func (item) AcceptsFocus() bool { return true }

type env struct {
	tree    *component.Tree
	fm      *focus.Manager
	stack   *Stack
	base    core.Handle
	button  core.Handle
	field   core.Handle
	menu    core.Handle
	menuRow core.Handle
	sub     core.Handle
	subRow  core.Handle
}

func newEnv(t *testing.T, opts ...Option) *env {
	t.Helper()
	tr := component.NewTree(nil)
	e := &env{tree: tr, fm: focus.NewManager(tr)}

	e.base = tr.CreateWindow(nil)
	tr.SetBounds(e.base, core.NewRect(0, 0, 80, 24))
	e.button = tr.Create(item{})
	tr.SetBounds(e.button, core.NewRect(0, 0, 10, 1))
	e.field = tr.Create(item{})
	tr.SetBounds(e.field, core.NewRect(0, 5, 20, 1))
	require.NoError(t, tr.Add(e.base, e.button))
	require.NoError(t, tr.Add(e.base, e.field))
	tr.Attach(e.base)

	e.menu, e.menuRow = newPopupWindow(t, tr, core.NewRect(0, 1, 12, 4))
	e.sub, e.subRow = newPopupWindow(t, tr, core.NewRect(12, 2, 12, 4))

	e.fm.SetActive(e.base)
	require.True(t, e.fm.RequestFocus(e.button))
	e.stack = NewStack(tr, e.fm, e.base, opts...)
	return e
}

func newPopupWindow(t *testing.T, tr *component.Tree, r core.Rect) (core.Handle, core.Handle) {
	t.Helper()
	win := tr.CreateWindow(nil)
	tr.SetBounds(win, r)
	row := tr.Create(item{})
	tr.SetBounds(row, core.NewRect(r.X, r.Y, r.Width, 1))
	require.NoError(t, tr.Add(win, row))
	return win, row
}

func TestPushPopRestoresFocus(t *testing.T) {
	e := newEnv(t)

	entry, err := e.stack.Push(e.menu, Options{Invoker: e.button})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, entry.ID)
	require.Equal(t, e.menu, e.fm.Active())
	require.Equal(t, e.menuRow, e.fm.FocusOwner())

	second := e.tree.Create(item{})
	e.tree.SetBounds(second, core.NewRect(0, 2, 12, 1))
	require.NoError(t, e.tree.Add(e.menu, second))
	require.True(t, e.fm.RequestFocus(second))

	_, err = e.stack.Push(e.sub, Options{Invoker: second})
	require.NoError(t, err)
	require.Equal(t, 2, e.stack.Len())
	require.Equal(t, e.subRow, e.fm.FocusOwner())

	require.True(t, e.stack.Pop())
	require.Equal(t, e.menu, e.fm.Active())
	require.Equal(t, second, e.fm.FocusOwner())

	require.True(t, e.stack.Pop())
	require.Equal(t, e.base, e.fm.Active())
	require.Equal(t, e.button, e.fm.FocusOwner())
	require.False(t, e.tree.IsShowing(e.menuRow))

	require.False(t, e.stack.Pop(), "pop on empty stack")
}

func TestPushErrors(t *testing.T) {
	e := newEnv(t)

	_, err := e.stack.Push(e.button, Options{})
	require.ErrorIs(t, err, ErrNotWindow)

	_, err = e.stack.Push(e.menu, Options{})
	require.NoError(t, err)
	_, err = e.stack.Push(e.menu, Options{})
	require.ErrorIs(t, err, ErrAlreadyOpen)
	_, err = e.stack.Push(e.base, Options{})
	require.ErrorIs(t, err, ErrAlreadyOpen)
}

func TestPushInitialFocus(t *testing.T) {
	e := newEnv(t)
	second := e.tree.Create(item{})
	require.NoError(t, e.tree.Add(e.menu, second))

	_, err := e.stack.Push(e.menu, Options{Focus: second})
	require.NoError(t, err)
	require.Equal(t, second, e.fm.FocusOwner())
}

func TestPopRestoresWhenSavedFocusGone(t *testing.T) {
	e := newEnv(t)
	_, err := e.stack.Push(e.menu, Options{})
	require.NoError(t, err)

	e.tree.SetEnabled(e.button, false)
	require.True(t, e.stack.Pop())
	require.Equal(t, core.NoHandle, e.fm.FocusOwner())
}

func TestPopWithKey(t *testing.T) {
	e := newEnv(t)
	var got []key.Code
	_, err := e.stack.Push(e.menu, Options{OnClose: func(code key.Code) { got = append(got, code) }})
	require.NoError(t, err)

	require.True(t, e.stack.PopWithKey(key.CodeRight))
	require.Equal(t, []key.Code{key.CodeRight}, got)
}

func TestPopTo(t *testing.T) {
	e := newEnv(t)
	first, err := e.stack.Push(e.menu, Options{})
	require.NoError(t, err)
	_, err = e.stack.Push(e.sub, Options{})
	require.NoError(t, err)

	require.True(t, e.stack.PopTo(first))
	require.Zero(t, e.stack.Len())
	require.Equal(t, e.button, e.fm.FocusOwner())
	require.False(t, e.stack.PopTo(first))
}

func TestHandleKey(t *testing.T) {
	tests := []struct {
		name     string
		modal    bool
		ev       *core.KeyEvent
		consumed bool
		open     int
	}{
		{"escape closes menu", false, core.NewKeyPressed(key.CodeEscape, key.ModNone), true, 0},
		{"backspace closes menu", false, core.NewKeyPressed(key.CodeBackspace, key.ModNone), true, 0},
		{"other key ignored", false, core.NewKeyPressed(key.CodeDown, key.ModNone), false, 1},
		{"typed ignored", false, core.NewKeyTyped('x'), false, 1},
		{"modified escape ignored", false, core.NewKeyPressed(key.CodeEscape, key.ModCtrl), false, 1},
		{"backspace keeps dialog", true, core.NewKeyPressed(key.CodeBackspace, key.ModNone), false, 1},
		{"escape hides dialog", true, core.NewKeyPressed(key.CodeEscape, key.ModNone), true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnv(t)
			_, err := e.stack.Push(e.menu, Options{Modal: tt.modal})
			require.NoError(t, err)

			require.Equal(t, tt.consumed, e.stack.HandleKey(tt.ev))
			require.Equal(t, tt.consumed, tt.ev.IsConsumed())
			require.Equal(t, tt.open, e.stack.Len())
		})
	}
}

func TestModalCloseOperation(t *testing.T) {
	var posted []core.Event
	e := newEnv(t, WithPoster(func(ev core.Event) { posted = append(posted, ev) }))

	_, err := e.stack.Push(e.menu, Options{Modal: true, CloseOperation: DoNothingOnClose})
	require.NoError(t, err)

	var closing int
	e.tree.AddWindowListener(e.menu, func(ev core.WindowEvent) {
		if ev.ID == core.WindowClosing {
			closing++
		}
	})

	require.True(t, e.stack.HandleKey(core.NewKeyPressed(key.CodeEscape, key.ModNone)))
	require.Len(t, posted, 1)
	require.Equal(t, core.WindowEvent{ID: core.WindowClosing, Source: e.menu}, posted[0])

	// the loop delivers the posted event
	e.tree.FireWindow(e.menu, posted[0].(core.WindowEvent))
	require.Equal(t, 1, closing)
	require.Equal(t, 1, e.stack.Len(), "DO_NOTHING_ON_CLOSE keeps the dialog")

	e.stack.Top().Close = HideOnClose
	e.tree.FireWindow(e.menu, core.WindowEvent{ID: core.WindowClosing, Source: e.menu})
	require.Zero(t, e.stack.Len())
	require.Equal(t, e.button, e.fm.FocusOwner())
}

func TestWindowLifecycleEvents(t *testing.T) {
	e := newEnv(t)
	var got []core.WindowEventID
	e.tree.AddWindowListener(e.menu, func(ev core.WindowEvent) { got = append(got, ev.ID) })

	_, err := e.stack.Push(e.menu, Options{})
	require.NoError(t, err)
	e.stack.Pop()

	require.Equal(t, []core.WindowEventID{core.WindowActivated, core.WindowOpened, core.WindowDeactivated, core.WindowClosed}, got)
}

func TestIsOutside(t *testing.T) {
	e := newEnv(t)
	_, err := e.stack.Push(e.menu, Options{Invoker: e.button})
	require.NoError(t, err)

	tests := []struct {
		name    string
		at      core.Point
		outside bool
	}{
		{"inside popup", core.Point{X: 2, Y: 2}, false},
		{"on invoker", core.Point{X: 3, Y: 0}, false},
		{"on other component", core.Point{X: 3, Y: 5}, true},
		{"on empty window area", core.Point{X: 50, Y: 20}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := core.NewMousePressed(core.ButtonLeft, tt.at.X, tt.at.Y)
			require.Equal(t, tt.outside, e.stack.IsOutside(ev))
		})
	}
}

func TestHandleMouse(t *testing.T) {
	t.Run("outside click closes the chain", func(t *testing.T) {
		e := newEnv(t)
		_, err := e.stack.Push(e.menu, Options{Invoker: e.button})
		require.NoError(t, err)
		_, err = e.stack.Push(e.sub, Options{Invoker: e.menuRow})
		require.NoError(t, err)

		ev := core.NewMousePressed(core.ButtonLeft, 3, 5)
		require.False(t, e.stack.HandleMouse(ev), "click continues to its target")
		require.Zero(t, e.stack.Len())
	})

	t.Run("click in parent menu closes only the submenu", func(t *testing.T) {
		e := newEnv(t)
		_, err := e.stack.Push(e.menu, Options{Invoker: e.button})
		require.NoError(t, err)
		_, err = e.stack.Push(e.sub, Options{Invoker: e.menuRow})
		require.NoError(t, err)

		e.stack.HandleMouse(core.NewMousePressed(core.ButtonLeft, 2, 3))
		require.Equal(t, 1, e.stack.Len())
		require.Equal(t, e.menu, e.stack.TopWindow())
	})

	t.Run("modal swallows outside clicks", func(t *testing.T) {
		e := newEnv(t)
		_, err := e.stack.Push(e.menu, Options{Modal: true})
		require.NoError(t, err)

		ev := core.NewMousePressed(core.ButtonLeft, 40, 20)
		require.True(t, e.stack.HandleMouse(ev))
		require.True(t, ev.IsConsumed())
		require.Equal(t, 1, e.stack.Len())
	})
}

func TestWindowsTopDown(t *testing.T) {
	e := newEnv(t)
	require.Equal(t, []core.Handle{e.base}, e.stack.Windows())

	_, err := e.stack.Push(e.menu, Options{Invoker: e.button})
	require.NoError(t, err)
	_, err = e.stack.Push(e.sub, Options{Invoker: e.menuRow})
	require.NoError(t, err)
	require.Equal(t, []core.Handle{e.sub, e.menu, e.base}, e.stack.Windows())
}
