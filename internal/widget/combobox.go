package widget

import (
	"github.com/dshills/termkit/internal/component"
	"github.com/dshills/termkit/internal/core"
	"github.com/dshills/termkit/internal/input/key"
	"github.com/dshills/termkit/internal/input/keymap"
	"github.com/dshills/termkit/internal/layout"
	"github.com/dshills/termkit/internal/popup"
)

// ComboBoxChanged is the command of a combo box's action events.
const ComboBoxChanged = "comboBoxChanged"

// ComboBox shows the selected row of a ListModel and opens a drop-down
// list to change it. Choosing a row in the list closes the drop-down,
// fires item events for the old and new row and then an action event.
type ComboBox struct {
	Base
	model    ListModel
	selected int
	rows     int

	drop  *popupWindow
	list  *List
	entry *popup.Entry
}

// NewComboBox creates a combo box with nothing selected.
func NewComboBox(host Host, model ListModel) *ComboBox {
	if model == nil {
		model = StringModel(nil)
	}
	c := &ComboBox{model: model, selected: -1, rows: 8}
	c.init(host, c)

	c.drop = newPopupWindow(host)
	c.drop.SetName("combo-popup")
	c.list = NewList(host, model, c.rows)
	c.list.SetSelectionMode(SingleSelection)
	c.list.AddActionListener(func(core.ActionEvent) { c.accept() })
	_ = c.drop.Add(c.list)

	c.putUI(keymap.ActTogglePopup, func(core.ActionEvent) { c.TogglePopup() })
	c.InstallUI()
	return c
}

// Class implements component.Classed.
func (c *ComboBox) Class() string { return keymap.ClassComboBox }

// AcceptsFocus implements component.Focusable.
func (c *ComboBox) AcceptsFocus() bool { return true }

// List returns the drop-down list.
func (c *ComboBox) List() *List { return c.list }

// SelectedIndex returns the selected row, or -1.
func (c *ComboBox) SelectedIndex() int { return c.selected }

// SelectedValue returns the text of the selected row.
func (c *ComboBox) SelectedValue() (string, bool) {
	if c.selected < 0 || c.selected >= c.model.Len() {
		return "", false
	}
	return c.model.At(c.selected), true
}

// SetSelectedIndex selects row i, firing a deselect event for the old row
// and a select event for the new one. Out of range values select nothing.
func (c *ComboBox) SetSelectedIndex(i int) {
	if i < 0 || i >= c.model.Len() {
		i = -1
	}
	if i == c.selected {
		return
	}
	old := c.selected
	c.selected = i
	if old >= 0 {
		c.tree().FireItem(c.h, core.ItemEvent{ID: core.ItemDeselected, Source: c.h, Item: c.model.At(old)})
	}
	if i >= 0 {
		c.tree().FireItem(c.h, core.ItemEvent{ID: core.ItemSelected, Source: c.h, Item: c.model.At(i)})
	}
}

// IsPopupVisible reports whether the drop-down is open.
func (c *ComboBox) IsPopupVisible() bool { return c.entry != nil }

// TogglePopup opens the drop-down if it is closed and closes it otherwise.
func (c *ComboBox) TogglePopup() {
	if c.entry != nil {
		c.ClosePopup()
		return
	}
	c.OpenPopup()
}

// OpenPopup shows the drop-down under the combo box with the selected row
// as the list's lead. An empty model never opens.
func (c *ComboBox) OpenPopup() bool {
	if c.entry != nil || c.model.Len() == 0 {
		return false
	}
	r := c.Bounds()
	rows := min(c.rows, c.model.Len())
	c.drop.SetBounds(core.NewRect(r.X, r.Y+1, max(r.Width, c.list.PreferredSize().Width+2), rows+2))
	if c.selected >= 0 {
		c.list.SetSelectedIndex(c.selected)
	} else {
		c.list.SetSelectedIndex(0)
	}

	e, err := c.host.Popups().Push(c.drop.Handle(), popup.Options{
		Invoker: c.h,
		Focus:   c.list.Handle(),
		OnClose: func(key.Code) { c.entry = nil },
	})
	if err != nil {
		return false
	}
	c.entry = e
	layout.Apply(c.tree(), c.drop.Handle())
	c.list.ensureVisible(c.list.LeadIndex())
	return true
}

// ClosePopup hides the drop-down and anything opened above it.
func (c *ComboBox) ClosePopup() {
	if c.entry != nil {
		c.host.Popups().PopTo(c.entry)
	}
}

func (c *ComboBox) accept() {
	i := c.list.LeadIndex()
	c.ClosePopup()
	if i < 0 {
		return
	}
	c.SetSelectedIndex(i)
	c.tree().FireAction(c.h, core.ActionEvent{Source: c.h, Command: ComboBoxChanged})
}

// HandleMouse implements component.MouseHandler: a click toggles the
// drop-down.
func (c *ComboBox) HandleMouse(ev *core.MouseEvent) {
	if ev.ID != core.MousePressed || ev.Button != core.ButtonLeft {
		return
	}
	c.RequestFocus()
	c.TogglePopup()
	ev.Consume()
}

// PreferredSize implements layout.Sizer.
func (c *ComboBox) PreferredSize() core.Size {
	return core.Size{Width: c.list.PreferredSize().Width + 2, Height: 1}
}

// Paint implements component.Paintable.
func (c *ComboBox) Paint(s component.Surface, clip core.Rect) {
	r := c.Bounds()
	style := styleNormal
	switch {
	case !c.Enabled():
		style = styleDisabled
	case c.HasFocus():
		style = styleFocused
	}
	value, _ := c.SelectedValue()
	s.DrawText(r.X, r.Y, pad(value, max(0, r.Width-2)), style)
	s.DrawText(r.X+max(0, r.Width-2), r.Y, " ▼", style)
}
