package widget

import (
	"github.com/dshills/termkit/internal/component"
	"github.com/dshills/termkit/internal/core"
	"github.com/dshills/termkit/internal/input/key"
	"github.com/dshills/termkit/internal/input/keymap"
	"github.com/dshills/termkit/internal/layout"
	"github.com/dshills/termkit/internal/popup"
)

// Dialog is a modal window. While it is open, input reaches only the
// dialog and what it opens. Escape requests WINDOW_CLOSING; with
// popup.HideOnClose, the default, that closes it.
type Dialog struct {
	frame
	closeOp       popup.CloseOperation
	defaultButton *Button
	entry         *popup.Entry
}

// NewDialog creates a hidden, bordered dialog.
func NewDialog(host Host, title string) *Dialog {
	d := &Dialog{}
	d.initWindow(host, d)
	d.title = title
	d.border = true
	d.layout = newVerticalBox(true)
	d.tree().SetVisible(d.h, false)

	d.putUI(keymap.ActPressDefault, func(core.ActionEvent) {
		if d.defaultButton != nil {
			d.defaultButton.DoClick()
		}
	})
	d.InstallUI()
	return d
}

// Class implements component.Classed.
func (d *Dialog) Class() string { return keymap.ClassDialog }

// CloseOperation returns what the dialog does on WINDOW_CLOSING.
func (d *Dialog) CloseOperation() popup.CloseOperation { return d.closeOp }

// SetCloseOperation sets what the dialog does on WINDOW_CLOSING. It takes
// effect immediately on an open dialog.
func (d *Dialog) SetCloseOperation(op popup.CloseOperation) {
	d.closeOp = op
	if d.entry != nil {
		d.entry.Close = op
	}
}

// DefaultButton returns the button clicked by Enter, or nil.
func (d *Dialog) DefaultButton() *Button { return d.defaultButton }

// SetDefaultButton makes b the button clicked by Enter anywhere in the
// dialog. nil clears it.
func (d *Dialog) SetDefaultButton(b *Button) {
	if d.defaultButton != nil {
		d.defaultButton.isDefault = false
	}
	d.defaultButton = b
	if b != nil {
		b.isDefault = true
	}
}

// AddWindowListener registers fn for the dialog's window events.
func (d *Dialog) AddWindowListener(fn func(core.WindowEvent)) core.ListenerID {
	return d.tree().AddWindowListener(d.h, fn)
}

// IsOpen reports whether the dialog is on the popup stack.
func (d *Dialog) IsOpen() bool { return d.entry != nil }

// Show centers the dialog over the base window at its preferred size and
// opens it modally. Showing an open dialog does nothing.
func (d *Dialog) Show() error {
	if d.entry != nil {
		return nil
	}
	base := d.tree().Bounds(d.host.Popups().Base())
	size := d.PreferredSize()
	size.Width = max(size.Width, textWidth(d.title)+4)
	size.Width = min(size.Width, base.Width)
	size.Height = min(size.Height, base.Height)
	d.SetBounds(core.NewRect(
		base.X+(base.Width-size.Width)/2,
		base.Y+(base.Height-size.Height)/2,
		size.Width, size.Height,
	))

	e, err := d.host.Popups().Push(d.h, popup.Options{
		Modal:          true,
		CloseOperation: d.closeOp,
		OnClose:        func(key.Code) { d.entry = nil },
	})
	if err != nil {
		return err
	}
	d.entry = e
	layout.Apply(d.tree(), d.h)
	return nil
}

// Hide closes the dialog and anything opened above it.
func (d *Dialog) Hide() {
	if d.entry != nil {
		d.host.Popups().PopTo(d.entry)
	}
}

// Paint implements component.Paintable.
func (d *Dialog) Paint(s component.Surface, clip core.Rect) {
	r := d.Bounds()
	s.Fill(r, ' ', styleNormal)
	drawBox(s, r, d.title, styleNormal)
}
