package router

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dshills/termkit/internal/action"
	"github.com/dshills/termkit/internal/binding"
	"github.com/dshills/termkit/internal/component"
	"github.com/dshills/termkit/internal/core"
	"github.com/dshills/termkit/internal/focus"
	"github.com/dshills/termkit/internal/input/key"
	"github.com/dshills/termkit/internal/keyboard"
	"github.com/dshills/termkit/internal/popup"
)

// recorder is a focusable widget that logs the events its handlers see.
type recorder struct {
	name    string
	log     *[]string
	consume bool
}

func (recorder) AcceptsFocus() bool { return true }

func (r recorder) HandleKey(ev *core.KeyEvent) {
	*r.log = append(*r.log, r.name+":key")
	if r.consume {
		ev.Consume()
	}
}

func (r recorder) HandleMouse(*core.MouseEvent) {
	*r.log = append(*r.log, r.name+":mouse")
}

type panel struct {
	log     *[]string
	consume bool
}

func (p panel) HandleKey(ev *core.KeyEvent) {
	*p.log = append(*p.log, "panel:key")
	if p.consume {
		ev.Consume()
	}
}

type fixture struct {
	tree   *component.Tree
	fm     *focus.Manager
	popups *popup.Stack
	router *Router
	win    core.Handle
	panel  core.Handle
	a, b   core.Handle
	log    []string
}

// newFixture builds win > panel > [a, b] with a focused.
func newFixture(t *testing.T, consumeA, consumePanel bool) *fixture {
	t.Helper()
	km := keyboard.NewManager()
	tr := component.NewTree(km)
	f := &fixture{tree: tr, fm: focus.NewManager(tr)}

	f.win = tr.CreateWindow(nil)
	tr.SetBounds(f.win, core.NewRect(0, 0, 20, 10))
	f.panel = tr.Create(panel{log: &f.log, consume: consumePanel})
	tr.SetBounds(f.panel, core.NewRect(0, 0, 20, 2))
	f.a = tr.Create(recorder{name: "a", log: &f.log, consume: consumeA})
	tr.SetBounds(f.a, core.NewRect(0, 0, 10, 1))
	f.b = tr.Create(recorder{name: "b", log: &f.log})
	tr.SetBounds(f.b, core.NewRect(0, 1, 10, 1))
	require.NoError(t, tr.Add(f.win, f.panel))
	require.NoError(t, tr.Add(f.panel, f.a))
	require.NoError(t, tr.Add(f.panel, f.b))
	tr.Attach(f.win)

	f.fm.SetActive(f.win)
	require.True(t, f.fm.RequestFocus(f.a))
	f.popups = popup.NewStack(tr, f.fm, f.win)
	f.router = New(tr, f.fm, f.popups, binding.NewResolver(tr, km))
	return f
}

func (f *fixture) bind(h core.Handle, stroke key.Stroke, name string) {
	f.tree.ActionMap(h).Put(name, action.NewFunc(name, func(core.ActionEvent) { f.log = append(f.log, name) }))
	f.tree.InputMap(h, core.WhenFocused).Put(stroke, name)
}

func TestKeyOrder(t *testing.T) {
	ctrlK := key.Pressed('K', key.ModCtrl)
	tests := []struct {
		name         string
		consumeA     bool
		consumePanel bool
		listener     bool
		binding      bool
		want         []string
		handled      bool
	}{
		{name: "listener stops the chain", listener: true, binding: true, want: []string{"listener"}, handled: true},
		{name: "binding before handlers", binding: true, want: []string{"bound"}, handled: true},
		{name: "focus owner handler", consumeA: true, want: []string{"a:key"}, handled: true},
		{name: "ancestor handler", consumePanel: true, want: []string{"a:key", "panel:key"}, handled: true},
		{name: "unhandled", want: []string{"a:key", "panel:key"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.consumeA, tt.consumePanel)
			if tt.listener {
				f.tree.AddKeyListener(f.a, func(ev *core.KeyEvent) {
					f.log = append(f.log, "listener")
					ev.Consume()
				})
			}
			if tt.binding {
				f.bind(f.a, ctrlK, "bound")
			}

			ev := core.NewKeyPressed('K', key.ModCtrl)
			require.Equal(t, tt.handled, f.router.Key(ev))
			require.Equal(t, tt.want, f.log)
			require.Equal(t, f.a, ev.Source)
		})
	}
}

func TestKeyTabTraversal(t *testing.T) {
	f := newFixture(t, false, false)

	require.True(t, f.router.Key(core.NewKeyPressed(key.CodeTab, key.ModNone)))
	require.Equal(t, f.b, f.fm.FocusOwner())

	require.True(t, f.router.Key(core.NewKeyPressed(key.CodeTab, key.ModShift)))
	require.Equal(t, f.a, f.fm.FocusOwner())
}

func TestKeyWithoutFocusGoesToWindow(t *testing.T) {
	f := newFixture(t, false, false)
	f.fm.ActiveController().ClearFocus()

	var got core.Handle
	f.tree.AddKeyListener(f.win, func(ev *core.KeyEvent) { got = ev.Source })
	require.False(t, f.router.Key(core.NewKeyPressed(key.CodeF5, key.ModNone)))
	require.Equal(t, f.win, got)
	require.Empty(t, f.log)
}

func TestKeyEscapeClosesPopup(t *testing.T) {
	f := newFixture(t, false, false)
	menu := f.tree.CreateWindow(nil)
	f.tree.SetBounds(menu, core.NewRect(10, 5, 5, 2))
	_, err := f.popups.Push(menu, popup.Options{Invoker: f.a})
	require.NoError(t, err)

	require.True(t, f.router.Key(core.NewKeyPressed(key.CodeEscape, key.ModNone)))
	require.Zero(t, f.popups.Len())
	require.Equal(t, f.a, f.fm.FocusOwner())
}

func TestMouse(t *testing.T) {
	f := newFixture(t, false, false)

	var fired []core.Handle
	f.tree.AddMouseListener(f.b, func(ev *core.MouseEvent) { fired = append(fired, ev.Source) })

	require.True(t, f.router.Mouse(core.NewMousePressed(core.ButtonLeft, 2, 1)))
	require.Equal(t, f.b, f.fm.FocusOwner())
	require.Equal(t, []core.Handle{f.b}, fired)
	require.Equal(t, []string{"b:mouse"}, f.log)

	require.True(t, f.router.Mouse(core.NewMousePressed(core.ButtonLeft, 15, 8)))
	require.Equal(t, f.b, f.fm.FocusOwner())

	require.False(t, f.router.Mouse(core.NewMousePressed(core.ButtonLeft, 25, 12)))
	require.Equal(t, []string{"b:mouse"}, f.log)
}

func TestMouseOutsidePopupDismissesAndPassesThrough(t *testing.T) {
	f := newFixture(t, false, false)
	menu := f.tree.CreateWindow(nil)
	f.tree.SetBounds(menu, core.NewRect(10, 5, 5, 2))
	_, err := f.popups.Push(menu, popup.Options{Invoker: f.a})
	require.NoError(t, err)

	require.True(t, f.router.Mouse(core.NewMousePressed(core.ButtonLeft, 2, 1)))
	require.Zero(t, f.popups.Len())
	require.Equal(t, f.b, f.fm.FocusOwner())
	require.Equal(t, []string{"b:mouse"}, f.log)
}
