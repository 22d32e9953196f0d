package keyboard

import (
	"testing"

	"github.com/dshills/termkit/internal/action"
	"github.com/dshills/termkit/internal/component"
	"github.com/dshills/termkit/internal/core"
	"github.com/dshills/termkit/internal/input/key"
)

var f5 = key.Pressed(key.CodeF5, key.ModNone)

type fixture struct {
	km    *Manager
	tree  *component.Tree
	win   core.Handle
	fired []string
}

func newFixture() *fixture {
	km := NewManager()
	tr := component.NewTree(km)
	win := tr.CreateWindow(nil)
	tr.SetBounds(win, core.NewRect(0, 0, 80, 24))
	return &fixture{km: km, tree: tr, win: win}
}

// bind gives h a window-scope F5 binding that records name when fired.
func (f *fixture) bind(h core.Handle, name string, enabled bool) {
	a := action.NewFunc(name, func(core.ActionEvent) { f.fired = append(f.fired, name) })
	a.SetEnabled(enabled)
	f.tree.ActionMap(h).Put(name, a)
	f.tree.InputMap(h, core.WhenInFocusedWindow).Put(f5, name)
}

func (f *fixture) child(parent core.Handle) core.Handle {
	h := f.tree.Create(nil)
	if err := f.tree.Add(parent, h); err != nil {
		panic(err)
	}
	return h
}

func TestRegisterUnregister(t *testing.T) {
	km := NewManager()
	km.RegisterKeyStroke(f5, 1)
	km.RegisterKeyStroke(f5, 1)
	km.RegisterKeyStroke(f5, 2)

	if got := km.Registered(f5); len(got) != 2 {
		t.Fatalf("Registered() = %v, want 2 handles", got)
	}
	km.UnregisterKeyStroke(f5, 1)
	km.UnregisterKeyStroke(f5, 9)
	if got := km.Registered(f5); len(got) != 1 || got[0] != 2 {
		t.Errorf("Registered() = %v, want [2]", got)
	}
	km.UnregisterKeyStroke(f5, 2)
	if km.Len() != 0 {
		t.Errorf("Len() = %d, want 0", km.Len())
	}
}

func TestFireDeepestFirst(t *testing.T) {
	f := newFixture()
	outer := f.child(f.win)
	inner := f.child(outer)
	f.bind(outer, "outer", true)
	f.bind(inner, "inner", true)
	f.tree.Attach(f.win)

	ev := core.NewKeyPressed(key.CodeF5, key.ModNone)
	if !f.km.FireKeyboardAction(f.tree, ev, f.win) {
		t.Fatal("FireKeyboardAction() = false, want true")
	}
	if len(f.fired) != 1 || f.fired[0] != "inner" {
		t.Errorf("fired = %v, want [inner]", f.fired)
	}
	if !ev.IsConsumed() {
		t.Error("event not consumed")
	}
}

func TestFireTieMostRecentFirst(t *testing.T) {
	f := newFixture()
	a := f.child(f.win)
	b := f.child(f.win)
	f.tree.Attach(f.win)
	f.bind(a, "a", true)
	f.bind(b, "b", true)

	f.km.FireKeyboardAction(f.tree, core.NewKeyPressed(key.CodeF5, key.ModNone), f.win)
	if len(f.fired) != 1 || f.fired[0] != "b" {
		t.Errorf("fired = %v, want [b]", f.fired)
	}
}

func TestFireSkipsDisabledAction(t *testing.T) {
	f := newFixture()
	outer := f.child(f.win)
	inner := f.child(outer)
	f.bind(outer, "outer", true)
	f.bind(inner, "inner", false)
	f.tree.Attach(f.win)

	if !f.km.FireKeyboardAction(f.tree, core.NewKeyPressed(key.CodeF5, key.ModNone), f.win) {
		t.Fatal("disabled inner action should fall through to outer")
	}
	if len(f.fired) != 1 || f.fired[0] != "outer" {
		t.Errorf("fired = %v, want [outer]", f.fired)
	}
}

func TestFireOtherWindowIgnored(t *testing.T) {
	f := newFixture()
	other := f.tree.CreateWindow(nil)
	h := f.child(other)
	f.bind(h, "other", true)
	f.tree.Attach(other)
	f.tree.Attach(f.win)

	if f.km.FireKeyboardAction(f.tree, core.NewKeyPressed(key.CodeF5, key.ModNone), f.win) {
		t.Error("binding in another window fired")
	}
	if !f.km.FireKeyboardAction(f.tree, core.NewKeyPressed(key.CodeF5, key.ModNone), other) {
		t.Error("binding in its own window did not fire")
	}
}

func TestFireSkipsHiddenAndDisabledComponents(t *testing.T) {
	f := newFixture()
	hidden := f.child(f.win)
	disabled := f.child(f.win)
	f.bind(hidden, "hidden", true)
	f.bind(disabled, "disabled", true)
	f.tree.Attach(f.win)
	f.tree.SetVisible(hidden, false)
	f.tree.SetEnabled(disabled, false)

	if f.km.FireKeyboardAction(f.tree, core.NewKeyPressed(key.CodeF5, key.ModNone), f.win) {
		t.Errorf("fired = %v, want nothing", f.fired)
	}
}

func TestTypedAndPressedAreDistinct(t *testing.T) {
	f := newFixture()
	h := f.child(f.win)
	a := action.NewFunc("typed", func(core.ActionEvent) { f.fired = append(f.fired, "typed") })
	f.tree.ActionMap(h).Put("typed", a)
	f.tree.InputMap(h, core.WhenInFocusedWindow).Put(key.Typed('e'), "typed")
	f.tree.Attach(f.win)

	if f.km.FireKeyboardAction(f.tree, core.NewKeyPressed('E', key.ModNone), f.win) {
		t.Error("pressed E matched a typed binding")
	}
	if !f.km.FireKeyboardAction(f.tree, core.NewKeyTyped('e'), f.win) {
		t.Error("typed e did not match")
	}
}
