package widget

import (
	"unicode"

	"github.com/dshills/termkit/internal/component"
	"github.com/dshills/termkit/internal/core"
	"github.com/dshills/termkit/internal/input/key"
	"github.com/dshills/termkit/internal/input/keymap"
	rcore "github.com/dshills/termkit/internal/renderer/core"
)

// TextField is a single-line text editor. Typed characters insert at the
// caret; Enter fires an action event carrying the text.
type TextField struct {
	Base
	text    []rune
	caret   int
	offset  int
	columns int
	maxLen  int
}

// NewTextField creates a field columns cells wide.
func NewTextField(host Host, columns int) *TextField {
	f := &TextField{columns: columns}
	f.init(host, f)

	f.putUI(keymap.ActCaretBackward, func(core.ActionEvent) { f.SetCaret(f.caret - 1) })
	f.putUI(keymap.ActCaretForward, func(core.ActionEvent) { f.SetCaret(f.caret + 1) })
	f.putUI(keymap.ActCaretBegin, func(core.ActionEvent) { f.SetCaret(0) })
	f.putUI(keymap.ActCaretEnd, func(core.ActionEvent) { f.SetCaret(len(f.text)) })
	f.putUI(keymap.ActDeletePrevious, func(core.ActionEvent) {
		if f.caret > 0 {
			f.text = append(f.text[:f.caret-1], f.text[f.caret:]...)
			f.SetCaret(f.caret - 1)
		}
	})
	f.putUI(keymap.ActDeleteNext, func(core.ActionEvent) {
		if f.caret < len(f.text) {
			f.text = append(f.text[:f.caret], f.text[f.caret+1:]...)
		}
	})
	f.putUI(keymap.ActNotifyField, func(ev core.ActionEvent) {
		f.tree().FireAction(f.h, core.ActionEvent{Source: f.h, Command: f.Text(), Modifiers: ev.Modifiers})
	})
	f.InstallUI()
	return f
}

// Class implements component.Classed.
func (f *TextField) Class() string { return keymap.ClassTextField }

// AcceptsFocus implements component.Focusable.
func (f *TextField) AcceptsFocus() bool { return true }

// Text returns the field contents.
func (f *TextField) Text() string { return string(f.text) }

// SetText replaces the contents and moves the caret to the end.
func (f *TextField) SetText(text string) {
	f.text = []rune(text)
	if f.maxLen > 0 && len(f.text) > f.maxLen {
		f.text = f.text[:f.maxLen]
	}
	f.offset = 0
	f.SetCaret(len(f.text))
}

// SetMaxLength limits the number of characters; 0 means unlimited.
func (f *TextField) SetMaxLength(n int) { f.maxLen = n }

// Caret returns the caret position in characters.
func (f *TextField) Caret() int { return f.caret }

// SetCaret moves the caret, clamped to the text.
func (f *TextField) SetCaret(pos int) {
	f.caret = max(0, min(pos, len(f.text)))
	f.scroll()
}

// Insert inserts r at the caret. It reports false when the field is full.
func (f *TextField) Insert(r rune) bool {
	if f.maxLen > 0 && len(f.text) >= f.maxLen {
		return false
	}
	f.text = append(f.text, 0)
	copy(f.text[f.caret+1:], f.text[f.caret:])
	f.text[f.caret] = r
	f.SetCaret(f.caret + 1)
	return true
}

// HandleKey implements component.KeyHandler: typed printable characters
// without Ctrl or Alt are inserted.
func (f *TextField) HandleKey(ev *core.KeyEvent) {
	if ev.ID != core.KeyTyped || ev.Modifiers.Has(key.ModCtrl) || ev.Modifiers.Has(key.ModAlt) {
		return
	}
	if !unicode.IsPrint(ev.Char) {
		return
	}
	f.Insert(ev.Char)
	ev.Consume()
}

// HandleMouse implements component.MouseHandler: a click moves the caret.
func (f *TextField) HandleMouse(ev *core.MouseEvent) {
	if ev.ID != core.MousePressed || ev.Button != core.ButtonLeft {
		return
	}
	f.RequestFocus()
	col := ev.Pos.X - f.Bounds().X
	f.SetCaret(f.offset + f.runesIn(f.offset, col))
	ev.Consume()
}

// width is the number of visible cells.
func (f *TextField) width() int {
	if w := f.Bounds().Width; w > 0 {
		return w
	}
	return f.columns
}

// runesIn counts the runes from start that fit in cols cells.
func (f *TextField) runesIn(start, cols int) int {
	n, used := 0, 0
	for _, r := range f.text[start:] {
		w := rcore.RuneWidth(r)
		if used+w > cols {
			break
		}
		used += w
		n++
	}
	return n
}

// scroll keeps the caret inside the visible window.
func (f *TextField) scroll() {
	w := f.width()
	if w <= 0 {
		return
	}
	if f.caret < f.offset {
		f.offset = f.caret
	}
	for f.offset < f.caret && rcore.StringWidth(string(f.text[f.offset:f.caret])) >= w {
		f.offset++
	}
}

// CursorPosition implements component.CursorPlacer.
func (f *TextField) CursorPosition() (core.Point, bool) {
	r := f.Bounds()
	col := rcore.StringWidth(string(f.text[f.offset:f.caret]))
	return core.Point{X: r.X + col, Y: r.Y}, true
}

// PreferredSize implements layout.Sizer.
func (f *TextField) PreferredSize() core.Size {
	return core.Size{Width: f.columns, Height: 1}
}

// Paint implements component.Paintable.
func (f *TextField) Paint(s component.Surface, clip core.Rect) {
	r := f.Bounds()
	style := styleNormal.Underline()
	if !f.Enabled() {
		style = styleDisabled
	}
	s.DrawText(r.X, r.Y, rcore.PadRight(string(f.text[f.offset:]), r.Width), style)
}
