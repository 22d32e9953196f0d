package widget

import (
	"github.com/dshills/termkit/internal/action"
	"github.com/dshills/termkit/internal/component"
	"github.com/dshills/termkit/internal/core"
	"github.com/dshills/termkit/internal/event"
	"github.com/dshills/termkit/internal/focus"
	"github.com/dshills/termkit/internal/input/key"
	"github.com/dshills/termkit/internal/input/keymap"
	"github.com/dshills/termkit/internal/popup"
)

// Host provides the shared UI state widgets are built on. The application
// implements it.
type Host interface {
	Tree() *component.Tree
	Focus() *focus.Manager
	Popups() *popup.Stack
	Loop() *event.Loop
	Keymaps() *keymap.Registry
}

// Widget is anything that owns a component node.
type Widget interface {
	Handle() core.Handle
}

// Base carries the plumbing shared by all widgets.
type Base struct {
	host Host
	h    core.Handle
	ui   *keymap.ActionMap

	mnemonic      rune
	mnemonicAlt   key.Stroke
	mnemonicBound bool
}

func (b *Base) init(host Host, self any) {
	b.host = host
	b.h = host.Tree().Create(self)
	b.ui = keymap.NewUIActionMap()
}

func (b *Base) initWindow(host Host, self any) {
	b.host = host
	b.h = host.Tree().CreateWindow(self)
	b.ui = keymap.NewUIActionMap()
}

// Handle returns the widget's component handle.
func (b *Base) Handle() core.Handle { return b.h }

func (b *Base) tree() *component.Tree { return b.host.Tree() }

// Enabled reports whether the widget is enabled.
func (b *Base) Enabled() bool { return b.tree().Enabled(b.h) }

// SetEnabled enables or disables the widget. Disabling the focused widget
// clears its window's focus.
func (b *Base) SetEnabled(enabled bool) {
	b.tree().SetEnabled(b.h, enabled)
	if !enabled {
		b.host.Focus().Revalidate()
	}
}

// Visible reports the widget's visible flag.
func (b *Base) Visible() bool { return b.tree().Visible(b.h) }

// SetVisible shows or hides the widget.
func (b *Base) SetVisible(visible bool) {
	b.tree().SetVisible(b.h, visible)
	if !visible {
		b.host.Focus().Revalidate()
	}
}

// Bounds returns the widget's screen rectangle.
func (b *Base) Bounds() core.Rect { return b.tree().Bounds(b.h) }

// SetBounds sets the widget's screen rectangle.
func (b *Base) SetBounds(r core.Rect) { b.tree().SetBounds(b.h, r) }

// SetName sets the name used in logs.
func (b *Base) SetName(name string) { b.tree().SetName(b.h, name) }

// HasFocus reports whether the widget is the focus owner of the active
// window.
func (b *Base) HasFocus() bool {
	return b.host.Focus().FocusOwner() == b.h
}

// RequestFocus asks the widget's window to focus it.
func (b *Base) RequestFocus() bool {
	return b.host.Focus().RequestFocus(b.h)
}

// AddActionListener registers fn for the widget's action events. Action
// listeners fire last-registered first.
func (b *Base) AddActionListener(fn func(core.ActionEvent)) core.ListenerID {
	return b.tree().AddActionListener(b.h, fn)
}

// AddItemListener registers fn for the widget's item events.
func (b *Base) AddItemListener(fn func(core.ItemEvent)) core.ListenerID {
	return b.tree().AddItemListener(b.h, fn)
}

// RemoveListener removes a listener registered on the widget.
func (b *Base) RemoveListener(id core.ListenerID) {
	b.tree().RemoveListener(b.h, id)
}

// InstallUI installs the registry's bindings for the widget's class and
// the widget's UI actions. It is called by constructors and again after
// keymaps are reloaded.
func (b *Base) InstallUI() {
	b.tree().InstallUIMaps(b.h, b.host.Keymaps(), b.ui)
}

// putUI adds a UI action running fn under actionKey.
func (b *Base) putUI(actionKey string, fn func(core.ActionEvent)) {
	b.ui.Put(actionKey, action.NewFunc(actionKey, fn))
}

// Mnemonic returns the mnemonic character, or 0.
func (b *Base) Mnemonic() rune { return b.mnemonic }

// bindMnemonic sets the mnemonic and binds Alt+<key> in the window scope
// to actionKey. r == 0 removes the mnemonic.
func (b *Base) bindMnemonic(r rune, actionKey string) {
	wm := b.tree().WindowInputMap(b.h)
	if b.mnemonicBound {
		wm.Remove(b.mnemonicAlt)
		b.mnemonicBound = false
	}
	b.mnemonic = r
	code := key.CodeForRune(r)
	b.tree().SetMnemonic(b.h, code)
	if r == 0 || code == key.CodeNone {
		return
	}
	b.mnemonicAlt = key.Pressed(code, key.ModAlt)
	b.mnemonicBound = true
	wm.Put(b.mnemonicAlt, actionKey)
}

// InstallUITree reinstalls the UI maps of every widget under root.
func InstallUITree(tree *component.Tree, root core.Handle) {
	tree.Walk(root, func(h core.Handle) bool {
		if w, ok := tree.Widget(h).(interface{ InstallUI() }); ok {
			w.InstallUI()
		}
		return true
	})
}

// add attaches children to parent in order.
func add(tree *component.Tree, parent core.Handle, children []Widget) error {
	for _, c := range children {
		if err := tree.Add(parent, c.Handle()); err != nil {
			return err
		}
	}
	return nil
}
