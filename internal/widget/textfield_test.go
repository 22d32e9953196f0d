package widget

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dshills/termkit/internal/core"
	"github.com/dshills/termkit/internal/input/key"
)

func TestTextFieldEditing(t *testing.T) {
	h := newTestHost(t)
	f := NewTextField(h, 20)
	h.add(f)
	require.True(t, f.RequestFocus())

	h.typeString("hello")
	require.Equal(t, "hello", f.Text())
	require.Equal(t, 5, f.Caret())

	h.press(key.CodeLeft, key.ModNone)
	h.press(key.CodeLeft, key.ModNone)
	h.press(key.CodeBackspace, key.ModNone)
	require.Equal(t, "helo", f.Text())
	require.Equal(t, 2, f.Caret())

	h.typeRune('X')
	require.Equal(t, "heXlo", f.Text())

	h.press(key.CodeHome, key.ModNone)
	h.press(key.CodeDelete, key.ModNone)
	require.Equal(t, "eXlo", f.Text())

	h.press(key.CodeForRune('e'), key.ModCtrl)
	require.Equal(t, 4, f.Caret())
	h.press(key.CodeForRune('a'), key.ModCtrl)
	require.Equal(t, 0, f.Caret())

	var got string
	f.AddActionListener(func(ev core.ActionEvent) { got = ev.Command })
	h.press(key.CodeEnter, key.ModNone)
	require.Equal(t, "eXlo", got)
}

func TestTextFieldIgnoresControlCharacters(t *testing.T) {
	h := newTestHost(t)
	f := NewTextField(h, 20)
	h.add(f)
	require.True(t, f.RequestFocus())

	ev := core.NewKeyTyped('x')
	ev.Modifiers = key.ModCtrl
	h.dispatch(ev)
	h.dispatch(core.NewKeyTyped('\t'))
	require.Equal(t, "", f.Text())
}

func TestTextFieldMaxLength(t *testing.T) {
	tests := []struct {
		name  string
		max   int
		input string
		want  string
	}{
		{"unlimited", 0, "abcdef", "abcdef"},
		{"limited", 3, "abcdef", "abc"},
		{"exact", 6, "abcdef", "abcdef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHost(t)
			f := NewTextField(h, 10)
			f.SetMaxLength(tt.max)
			h.add(f)
			require.True(t, f.RequestFocus())

			h.typeString(tt.input)
			if got := f.Text(); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTextFieldScrollsToCaret(t *testing.T) {
	h := newTestHost(t)
	f := NewTextField(h, 5)
	h.add(f)
	f.SetBounds(core.NewRect(2, 3, 5, 1))
	require.True(t, f.RequestFocus())

	h.typeString("abcdefgh")
	p, ok := f.CursorPosition()
	require.True(t, ok)
	require.Equal(t, core.Point{X: 6, Y: 3}, p)

	f.SetCaret(0)
	p, _ = f.CursorPosition()
	require.Equal(t, core.Point{X: 2, Y: 3}, p)
}

func TestTextFieldClickMovesCaret(t *testing.T) {
	h := newTestHost(t)
	f := NewTextField(h, 20)
	h.add(f)
	f.SetText("hello world")

	r := f.Bounds()
	h.click(r.X+3, r.Y)
	require.True(t, f.HasFocus())
	require.Equal(t, 3, f.Caret())
}

func TestLabelForFocusesTarget(t *testing.T) {
	h := newTestHost(t)
	label := NewLabel(h, "Name")
	field := NewTextField(h, 10)
	other := NewButton(h, "Other")
	label.SetMnemonic('n')
	label.SetLabelFor(field)
	h.add(label, field, other)
	require.True(t, other.RequestFocus())

	h.press(key.CodeForRune('n'), key.ModAlt)
	require.True(t, field.HasFocus())
	require.Equal(t, field.Handle(), label.LabelFor())
}
