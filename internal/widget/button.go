package widget

import (
	"github.com/dshills/termkit/internal/action"
	"github.com/dshills/termkit/internal/component"
	"github.com/dshills/termkit/internal/core"
	"github.com/dshills/termkit/internal/input/keymap"
	rcore "github.com/dshills/termkit/internal/renderer/core"
)

// buttonBase is shared by Button and CheckBox.
type buttonBase struct {
	Base
	text    string
	command string

	act         action.Action
	actListener core.ListenerID
	actChange   core.ListenerID

	onClick func(ev core.ActionEvent)
}

func (b *buttonBase) setup() {
	b.putUI(keymap.ActPress, func(ev core.ActionEvent) { b.click(ev) })
	b.InstallUI()
}

// Text returns the button text.
func (b *buttonBase) Text() string { return b.text }

// SetText replaces the button text.
func (b *buttonBase) SetText(text string) { b.text = text }

// ActionCommand returns the command reported in action events. It
// defaults to the text.
func (b *buttonBase) ActionCommand() string {
	if b.command != "" {
		return b.command
	}
	return b.text
}

// SetActionCommand sets the command reported in action events.
func (b *buttonBase) SetActionCommand(cmd string) { b.command = cmd }

// SetMnemonic sets the mnemonic; Alt+<mnemonic> anywhere in the window
// clicks the button. 0 removes it.
func (b *buttonBase) SetMnemonic(r rune) { b.bindMnemonic(r, keymap.ActPress) }

// AcceptsFocus implements component.Focusable.
func (b *buttonBase) AcceptsFocus() bool { return true }

// DoClick activates the button as if the user pressed it. Disabled
// buttons ignore it.
func (b *buttonBase) DoClick() {
	b.click(core.ActionEvent{Source: b.h})
}

func (b *buttonBase) click(ev core.ActionEvent) {
	if !b.Enabled() {
		return
	}
	if b.onClick != nil {
		b.onClick(ev)
	}
	b.tree().FireAction(b.h, core.ActionEvent{
		Source:    b.h,
		Command:   b.ActionCommand(),
		Modifiers: ev.Modifiers,
	})
}

// Action returns the action set with SetAction, or nil.
func (b *buttonBase) Action() action.Action { return b.act }

// SetAction makes a perform on every click. The button takes its text,
// action command and mnemonic from a and mirrors a's enabled state. The
// action is registered as an action listener at the time of the call, so
// listeners added later fire before it. nil removes the action.
func (b *buttonBase) SetAction(a action.Action) {
	if b.act != nil {
		b.RemoveListener(b.actListener)
		b.act.RemoveChangeListener(b.actChange)
	}
	b.act = a
	if a == nil {
		return
	}

	if v, ok := a.Value(action.Name); ok {
		if s, ok := v.AsString(); ok {
			b.text = s
		}
	}
	if v, ok := a.Value(action.ActionCommand); ok {
		if s, ok := v.AsString(); ok {
			b.command = s
		}
	}
	if v, ok := a.Value(action.Mnemonic); ok {
		if r, ok := v.AsRune(); ok {
			b.SetMnemonic(r)
		}
	}
	b.SetEnabled(a.Enabled())

	b.actListener = b.AddActionListener(func(ev core.ActionEvent) {
		if a.Enabled() {
			a.Perform(ev)
		}
	})
	b.actChange = a.AddChangeListener(func(k action.ValueKey, v action.Value) {
		switch k {
		case action.Enabled:
			on, _ := v.AsBool()
			b.SetEnabled(on)
		case action.Name:
			b.text, _ = v.AsString()
		case action.Mnemonic:
			r, _ := v.AsRune()
			b.SetMnemonic(r)
		}
	})
}

// HandleMouse implements component.MouseHandler.
func (b *buttonBase) HandleMouse(ev *core.MouseEvent) {
	if ev.ID == core.MousePressed && ev.Button == core.ButtonLeft {
		b.DoClick()
		ev.Consume()
	}
}

func (b *buttonBase) style() rcore.Style {
	switch {
	case !b.Enabled():
		return styleDisabled
	case b.HasFocus():
		return styleFocused
	default:
		return styleNormal
	}
}

// Button is a push button.
type Button struct {
	buttonBase
	isDefault bool
}

// NewButton creates a button.
func NewButton(host Host, text string) *Button {
	b := &Button{}
	b.text = text
	b.init(host, b)
	b.setup()
	return b
}

// Class implements component.Classed.
func (b *Button) Class() string { return keymap.ClassButton }

// IsDefault reports whether the button is its dialog's default button.
func (b *Button) IsDefault() bool { return b.isDefault }

// PreferredSize implements layout.Sizer.
func (b *Button) PreferredSize() core.Size {
	return core.Size{Width: textWidth(b.text) + 4, Height: 1}
}

// Paint implements component.Paintable.
func (b *Button) Paint(s component.Surface, clip core.Rect) {
	r := b.Bounds()
	st := b.style()
	open, shut := "[ ", " ]"
	if b.isDefault {
		open, shut = "[>", "<]"
	}
	x := r.X + s.DrawText(r.X, r.Y, open, st)
	x += drawMnemonicText(s, x, r.Y, b.text, b.mnemonic, st)
	s.DrawText(x, r.Y, shut, st)
}

// CheckBox is a two-state toggle. Clicking it flips the state and fires an
// item event, then an action event.
type CheckBox struct {
	buttonBase
	selected bool
}

// NewCheckBox creates an unselected check box.
func NewCheckBox(host Host, text string) *CheckBox {
	c := &CheckBox{}
	c.text = text
	c.init(host, c)
	c.onClick = func(core.ActionEvent) { c.SetSelected(!c.selected) }
	c.setup()
	return c
}

// Class implements component.Classed.
func (c *CheckBox) Class() string { return keymap.ClassCheckBox }

// Selected reports the check state.
func (c *CheckBox) Selected() bool { return c.selected }

// SetSelected changes the check state, firing an item event on change.
func (c *CheckBox) SetSelected(selected bool) {
	if c.selected == selected {
		return
	}
	c.selected = selected
	id := core.ItemDeselected
	if selected {
		id = core.ItemSelected
	}
	c.tree().FireItem(c.h, core.ItemEvent{ID: id, Source: c.h, Item: c.text})
}

// PreferredSize implements layout.Sizer.
func (c *CheckBox) PreferredSize() core.Size {
	return core.Size{Width: textWidth(c.text) + 4, Height: 1}
}

// Paint implements component.Paintable.
func (c *CheckBox) Paint(s component.Surface, clip core.Rect) {
	r := c.Bounds()
	st := c.style()
	mark := "[ ] "
	if c.selected {
		mark = "[x] "
	}
	x := r.X + s.DrawText(r.X, r.Y, mark, st)
	drawMnemonicText(s, x, r.Y, c.text, c.mnemonic, st)
}
