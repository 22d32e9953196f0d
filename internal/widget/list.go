package widget

import (
	"fmt"
	"sort"

	"github.com/dshills/termkit/internal/component"
	"github.com/dshills/termkit/internal/core"
	"github.com/dshills/termkit/internal/input/key"
	"github.com/dshills/termkit/internal/input/keymap"
)

// ListModel provides the rows of a List. The list only reads it.
type ListModel interface {
	Len() int
	At(i int) string
}

// StringModel is a ListModel over a fixed slice.
type StringModel []string

// Len implements ListModel.
func (m StringModel) Len() int { return len(m) }

// At implements ListModel.
func (m StringModel) At(i int) string { return m[i] }

// SelectionMode restricts which sets of rows may be selected.
type SelectionMode int

const (
	// SingleSelection allows at most one selected row.
	SingleSelection SelectionMode = iota
	// SingleIntervalSelection allows one contiguous range.
	SingleIntervalSelection
	// MultipleIntervalSelection allows any set of rows.
	MultipleIntervalSelection
)

func (m SelectionMode) String() string {
	switch m {
	case SingleSelection:
		return "SINGLE_SELECTION"
	case SingleIntervalSelection:
		return "SINGLE_INTERVAL_SELECTION"
	case MultipleIntervalSelection:
		return "MULTIPLE_INTERVAL_SELECTION"
	default:
		return fmt.Sprintf("SelectionMode(%d)", int(m))
	}
}

// Validate panics with a UsageError if m is not a known mode.
func (m SelectionMode) Validate() {
	if m < SingleSelection || m > MultipleIntervalSelection {
		core.PanicUsage("SelectionMode", "invalid selection mode %d", int(m))
	}
}

// List shows the rows of a ListModel and tracks their selection. Item
// events report rows entering and leaving the selection; the Item is the
// row index. Enter and mouse clicks fire an action event.
type List struct {
	Base
	model    ListModel
	mode     SelectionMode
	selected map[int]bool
	lead     int
	anchor   int
	top      int
	rows     int
}

// NewList creates a list over model showing rows rows.
func NewList(host Host, model ListModel, rows int) *List {
	if model == nil {
		model = StringModel(nil)
	}
	l := &List{
		model:    model,
		mode:     MultipleIntervalSelection,
		selected: make(map[int]bool),
		lead:     -1,
		anchor:   -1,
		rows:     rows,
	}
	l.init(host, l)

	l.putUI(keymap.ActSelectPreviousRow, func(core.ActionEvent) { l.moveLead(l.lead-1, false) })
	l.putUI(keymap.ActSelectNextRow, func(core.ActionEvent) { l.moveLead(l.lead+1, false) })
	l.putUI(keymap.ActSelectPreviousRowExtend, func(core.ActionEvent) { l.moveLead(l.lead-1, true) })
	l.putUI(keymap.ActSelectNextRowExtend, func(core.ActionEvent) { l.moveLead(l.lead+1, true) })
	l.putUI(keymap.ActSelectFirstRow, func(core.ActionEvent) { l.moveLead(0, false) })
	l.putUI(keymap.ActSelectLastRow, func(core.ActionEvent) { l.moveLead(l.model.Len()-1, false) })
	l.putUI(keymap.ActToggleSelection, func(core.ActionEvent) { l.toggleLead() })
	l.putUI(keymap.ActSelectAll, func(core.ActionEvent) {
		if l.mode != SingleSelection && l.model.Len() > 0 {
			l.SetSelectionInterval(0, l.model.Len()-1)
		}
	})
	l.putUI(keymap.ActActivateRow, func(ev core.ActionEvent) { l.activate(ev.Modifiers) })
	l.InstallUI()
	return l
}

// Class implements component.Classed.
func (l *List) Class() string { return keymap.ClassList }

// AcceptsFocus implements component.Focusable.
func (l *List) AcceptsFocus() bool { return true }

// Model returns the list model.
func (l *List) Model() ListModel { return l.model }

// SetModel replaces the model and clears the selection.
func (l *List) SetModel(m ListModel) {
	l.ClearSelection()
	l.model = m
	l.lead, l.anchor, l.top = -1, -1, 0
}

// SelectionMode returns the selection mode.
func (l *List) SelectionMode() SelectionMode { return l.mode }

// SetSelectionMode changes the mode. Switching to SingleSelection keeps
// only the lead row selected; other switches keep the selection as it is.
// An invalid mode panics.
func (l *List) SetSelectionMode(m SelectionMode) {
	m.Validate()
	l.mode = m
	if m != SingleSelection {
		return
	}
	keep := map[int]bool{}
	if l.lead >= 0 && l.selected[l.lead] {
		keep[l.lead] = true
	}
	l.apply(keep)
}

// LeadIndex returns the lead row, or -1.
func (l *List) LeadIndex() int { return l.lead }

// IsSelected reports whether row i is selected.
func (l *List) IsSelected(i int) bool { return l.selected[i] }

// SelectedIndex returns the lowest selected row, or -1.
func (l *List) SelectedIndex() int {
	if idx := l.SelectedIndices(); len(idx) > 0 {
		return idx[0]
	}
	return -1
}

// SelectedIndices returns the selected rows in ascending order.
func (l *List) SelectedIndices() []int {
	out := make([]int, 0, len(l.selected))
	for i := range l.selected {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// SelectedValue returns the text of the lowest selected row.
func (l *List) SelectedValue() (string, bool) {
	i := l.SelectedIndex()
	if i < 0 {
		return "", false
	}
	return l.model.At(i), true
}

// ClearSelection deselects every row.
func (l *List) ClearSelection() {
	l.apply(map[int]bool{})
}

// SetSelectedIndex selects only row i and makes it the lead and anchor.
func (l *List) SetSelectedIndex(i int) {
	l.SetSelectionInterval(i, i)
}

// SetSelectionInterval replaces the selection with rows a..b. In
// SingleSelection mode only b is selected. b becomes the lead and a the
// anchor.
func (l *List) SetSelectionInterval(a, b int) {
	if !l.valid(a) || !l.valid(b) {
		return
	}
	if l.mode == SingleSelection {
		a = b
	}
	next := map[int]bool{}
	for i := min(a, b); i <= max(a, b); i++ {
		next[i] = true
	}
	l.anchor, l.lead = a, b
	l.apply(next)
}

// AddSelectionInterval adds rows a..b. SingleSelection and
// SingleIntervalSelection replace the selection instead.
func (l *List) AddSelectionInterval(a, b int) {
	if l.mode != MultipleIntervalSelection {
		l.SetSelectionInterval(a, b)
		return
	}
	if !l.valid(a) || !l.valid(b) {
		return
	}
	next := l.copySelection()
	for i := min(a, b); i <= max(a, b); i++ {
		next[i] = true
	}
	l.anchor, l.lead = a, b
	l.apply(next)
}

// RemoveSelectionInterval deselects rows a..b.
func (l *List) RemoveSelectionInterval(a, b int) {
	next := l.copySelection()
	for i := min(a, b); i <= max(a, b); i++ {
		delete(next, i)
	}
	l.apply(next)
}

func (l *List) valid(i int) bool {
	return i >= 0 && i < l.model.Len()
}

func (l *List) copySelection() map[int]bool {
	out := make(map[int]bool, len(l.selected))
	for i := range l.selected {
		out[i] = true
	}
	return out
}

// apply installs next as the selection and fires item events: removed
// rows first, then added rows, each in ascending order.
func (l *List) apply(next map[int]bool) {
	var removed, added []int
	for i := range l.selected {
		if !next[i] {
			removed = append(removed, i)
		}
	}
	for i := range next {
		if !l.selected[i] {
			added = append(added, i)
		}
	}
	l.selected = next
	sort.Ints(removed)
	sort.Ints(added)
	for _, i := range removed {
		l.tree().FireItem(l.h, core.ItemEvent{ID: core.ItemDeselected, Source: l.h, Item: i})
	}
	for _, i := range added {
		l.tree().FireItem(l.h, core.ItemEvent{ID: core.ItemSelected, Source: l.h, Item: i})
	}
}

// moveLead moves the lead to i. Without extend the lead row alone is
// selected; with extend the range from the anchor is selected.
func (l *List) moveLead(i int, extend bool) {
	n := l.model.Len()
	if n == 0 {
		return
	}
	i = max(0, min(i, n-1))
	if extend && l.mode != SingleSelection && l.anchor >= 0 {
		l.SetSelectionInterval(l.anchor, i)
	} else {
		l.SetSelectedIndex(i)
	}
	l.ensureVisible(i)
}

func (l *List) toggleLead() {
	if !l.valid(l.lead) {
		if l.model.Len() == 0 {
			return
		}
		l.lead = 0
	}
	switch {
	case l.mode == MultipleIntervalSelection && l.selected[l.lead]:
		l.RemoveSelectionInterval(l.lead, l.lead)
		l.anchor = l.lead
	case l.mode == MultipleIntervalSelection:
		l.AddSelectionInterval(l.lead, l.lead)
	default:
		l.SetSelectedIndex(l.lead)
	}
}

func (l *List) activate(mods key.Modifier) {
	if !l.valid(l.lead) {
		return
	}
	l.tree().FireAction(l.h, core.ActionEvent{Source: l.h, Command: l.model.At(l.lead), Modifiers: mods})
}

// visibleRows is the number of rows that fit in the bounds.
func (l *List) visibleRows() int {
	if h := l.Bounds().Height; h > 0 {
		return h
	}
	return l.rows
}

func (l *List) ensureVisible(i int) {
	rows := l.visibleRows()
	if rows <= 0 {
		return
	}
	if i < l.top {
		l.top = i
	}
	if i >= l.top+rows {
		l.top = i - rows + 1
	}
}

// HandleMouse implements component.MouseHandler. A click selects the row
// under the pointer and fires an action event; both happen in a deferred
// task so selection listeners never run inside mouse dispatch. The wheel
// scrolls.
func (l *List) HandleMouse(ev *core.MouseEvent) {
	switch {
	case ev.Button == core.WheelUp || ev.Button == core.WheelDown:
		if ev.Button == core.WheelUp {
			l.top = max(0, l.top-1)
		} else if l.top+l.visibleRows() < l.model.Len() {
			l.top++
		}
		ev.Consume()
	case ev.ID == core.MousePressed && ev.Button == core.ButtonLeft:
		row := l.top + ev.Pos.Y - l.Bounds().Y
		if !l.valid(row) {
			return
		}
		l.RequestFocus()
		mods := ev.Modifiers
		_ = l.host.Loop().InvokeLater(func() {
			l.SetSelectedIndex(row)
			l.activate(mods)
		})
		ev.Consume()
	}
}

// PreferredSize implements layout.Sizer.
func (l *List) PreferredSize() core.Size {
	w := 1
	for i := 0; i < l.model.Len(); i++ {
		w = max(w, textWidth(l.model.At(i)))
	}
	return core.Size{Width: w + 2, Height: l.rows}
}

// Paint implements component.Paintable.
func (l *List) Paint(s component.Surface, clip core.Rect) {
	r := l.Bounds()
	focused := l.HasFocus()
	for y := 0; y < r.Height; y++ {
		i := l.top + y
		if i >= l.model.Len() {
			break
		}
		style := styleNormal
		if l.selected[i] {
			style = styleSelected
		}
		marker := "  "
		if i == l.lead && focused {
			marker = "> "
		}
		s.DrawText(r.X, r.Y+y, pad(marker+l.model.At(i), r.Width), style)
	}
}
