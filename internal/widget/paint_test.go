package widget

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPad(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"abc", 5, "abc  "},
		{"abcdef", 4, "abc…"},
		{"abc", 3, "abc"},
		{"abc", 0, ""},
	}
	for _, tt := range tests {
		if got := pad(tt.text, tt.width); got != tt.want {
			t.Errorf("pad(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}

func TestMnemonicIndex(t *testing.T) {
	tests := []struct {
		text     string
		mnemonic rune
		want     int
	}{
		{"Save", 's', 0},
		{"Save As", 'A', 1},
		{"Open", 'x', -1},
		{"Open", 0, -1},
	}
	for _, tt := range tests {
		if got := mnemonicIndex(tt.text, tt.mnemonic); got != tt.want {
			t.Errorf("mnemonicIndex(%q, %q) = %d, want %d", tt.text, tt.mnemonic, got, tt.want)
		}
	}
}

func TestPaintWidgets(t *testing.T) {
	h := newTestHost(t)
	ok := NewButton(h, "OK")
	check := NewCheckBox(h, "Wrap")
	field := NewTextField(h, 10)
	h.add(ok, check, field)
	check.SetSelected(true)
	field.SetText("hello")

	rows := h.screen()
	require.Equal(t, "[ OK ]", rows[0])
	require.Equal(t, "[x] Wrap", rows[1])
	require.Equal(t, "hello", rows[2])
}

func TestPaintMenus(t *testing.T) {
	f := newMenuFixture(t)

	rows := f.screen()
	require.Equal(t, 1, strings.Index(rows[0], "File"))
	require.Equal(t, 8, strings.Index(rows[0], "Edit"))
	require.Equal(t, 15, strings.Index(rows[0], "Help"))

	require.True(t, f.file.Open())
	rows = f.screen()
	require.Contains(t, rows[2], "New")
	require.Contains(t, rows[3], "Open")
	require.Contains(t, rows[4], "Recent")
	require.Contains(t, rows[6], "Quit")
}

func TestPaintDialogTitle(t *testing.T) {
	f := newDialogFixture(t)
	require.NoError(t, f.dialog.Show())

	rows := f.screen()
	r := f.dialog.Bounds()
	require.Contains(t, rows[r.Y], " Confirm ")
	require.Contains(t, rows[r.Y+1], "Really?")
	require.Contains(t, rows[r.Y+2], "[>OK<]")
	require.Contains(t, rows[r.Y+3], "[ Cancel ]")
}
