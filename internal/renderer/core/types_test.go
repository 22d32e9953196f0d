package core

import "testing"

func TestAttribute(t *testing.T) {
	a := AttrNone.With(AttrBold).With(AttrReverse)
	if !a.Has(AttrBold) || !a.Has(AttrReverse) || a.Has(AttrUnderline) {
		t.Errorf("attribute set = %b", a)
	}
	if a.Without(AttrBold).Has(AttrBold) {
		t.Error("Without(AttrBold) kept bold")
	}
}

func TestStyle(t *testing.T) {
	s := DefaultStyle()
	if !s.IsDefault() {
		t.Error("DefaultStyle().IsDefault() = false")
	}

	focused := s.Reverse().Bold()
	if focused.IsDefault() || !focused.Attributes.Has(AttrReverse) {
		t.Errorf("focused style = %+v", focused)
	}

	merged := s.WithForeground(ColorRed).Merge(DefaultStyle().WithBackground(ColorBlue).Underline())
	want := Style{Foreground: ColorRed, Background: ColorBlue, Attributes: AttrUnderline}
	if merged != want {
		t.Errorf("Merge() = %+v, want %+v", merged, want)
	}
}

func TestRuneWidth(t *testing.T) {
	tests := []struct {
		r    rune
		want int
	}{
		{'a', 1},
		{' ', 1},
		{'\t', 0},
		{0x7f, 0},
		{'世', 2},
		{'é', 1},
	}
	for _, tt := range tests {
		if got := RuneWidth(tt.r); got != tt.want {
			t.Errorf("RuneWidth(%q) = %d, want %d", tt.r, got, tt.want)
		}
	}
}

func TestTruncateAndPad(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		trunc string
		pad   string
	}{
		{"fits", "File", 6, "File", "File  "},
		{"exact", "Edit", 4, "Edit", "Edit"},
		{"cut", "Preferences", 6, "Prefe…", "Prefer"},
		{"zero", "x", 0, "", ""},
		{"wide", "世界x", 3, "世…", "世 "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.in, tt.width, "…"); got != tt.trunc {
				t.Errorf("Truncate() = %q, want %q", got, tt.trunc)
			}
			if got := PadRight(tt.in, tt.width); got != tt.pad {
				t.Errorf("PadRight() = %q, want %q", got, tt.pad)
			}
		})
	}
}

func TestCellsRoundTrip(t *testing.T) {
	cells := CellsFromString("a世b", DefaultStyle())
	if len(cells) != 4 {
		t.Fatalf("len(cells) = %d, want 4", len(cells))
	}
	if !cells[2].IsContinuation() {
		t.Error("cell after wide rune is not a continuation")
	}
	if got := StringFromCells(cells); got != "a世b" {
		t.Errorf("StringFromCells() = %q", got)
	}
}
