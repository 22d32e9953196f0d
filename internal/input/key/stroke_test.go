package key

import "testing"

func TestStrokeEquality(t *testing.T) {
	tests := []struct {
		name string
		a, b Stroke
		want bool
	}{
		{"same typed", Typed('a'), Typed('a'), true},
		{"typed case differs", Typed('a'), Typed('A'), false},
		{"same pressed", Pressed(CodeEnter, ModNone), Pressed(CodeEnter, ModNone), true},
		{"modifier differs", Pressed('S', ModCtrl), Pressed('S', ModNone), false},
		{"release flag differs", Pressed(CodeEnter, ModNone), Released(CodeEnter, ModNone), false},
		{"char vs code same key", Typed('a'), Pressed(CodeForRune('a'), ModNone), false},
		{"char vs code upper", Typed('A'), Pressed('A', ModNone), false},
		{"space char vs code", Typed(' '), Pressed(CodeSpace, ModNone), false},
		{"New matches Pressed", New(CodeTab, ModShift, false), Pressed(CodeTab, ModShift), true},
	}

	for _, tt := range tests {
		if got := tt.a == tt.b; got != tt.want {
			t.Errorf("%s: (%v == %v) = %v, want %v", tt.name, tt.a, tt.b, got, tt.want)
		}
	}
}

func TestStrokeAsMapKey(t *testing.T) {
	m := map[Stroke]string{
		Typed('e'):            "typed",
		Pressed('E', ModNone): "pressed",
	}
	if got := m[Typed('e')]; got != "typed" {
		t.Errorf("m[Typed('e')] = %q, want %q", got, "typed")
	}
	if got := m[Pressed(CodeForRune('e'), ModNone)]; got != "pressed" {
		t.Errorf("m[Pressed('E')] = %q, want %q", got, "pressed")
	}
	if _, ok := m[Released('E', ModNone)]; ok {
		t.Error("released stroke should not match pressed entry")
	}
}

func TestStrokeString(t *testing.T) {
	tests := []struct {
		stroke Stroke
		want   string
	}{
		{Typed('a'), "typed a"},
		{Typed(' '), "typed space"},
		{Pressed(CodeEnter, ModNone), "Enter"},
		{Pressed('S', ModCtrl), "Ctrl+S"},
		{Pressed('A', ModNone), "pressed A"},
		{Pressed(CodeTab, ModShift), "Shift+Tab"},
		{Released(CodeEnter, ModNone), "released Enter"},
		{TypedWith('x', ModAlt), "typed Alt+x"},
	}

	for _, tt := range tests {
		if got := tt.stroke.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestStrokeStringRoundTrip(t *testing.T) {
	strokes := []Stroke{
		Typed('a'),
		Typed('+'),
		Typed('<'),
		Pressed('A', ModNone),
		Pressed('-', ModCtrl),
		Pressed(CodeSpace, ModNone),
		Pressed(CodeF5, ModCtrl|ModShift),
		Released(CodeEscape, ModAlt),
	}

	for _, s := range strokes {
		got, err := Parse(s.String())
		if err != nil {
			t.Errorf("Parse(%q) error = %v", s.String(), err)
			continue
		}
		if got != s {
			t.Errorf("Parse(%q) = %#v, want %#v", s.String(), got, s)
		}
	}
}

func TestCodeForRune(t *testing.T) {
	tests := []struct {
		r    rune
		want Code
	}{
		{'a', 'A'},
		{'Z', 'Z'},
		{'7', '7'},
		{' ', CodeSpace},
		{'/', '/'},
		{'é', CodeNone},
		{'\t', CodeNone},
	}

	for _, tt := range tests {
		if got := CodeForRune(tt.r); got != tt.want {
			t.Errorf("CodeForRune(%q) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestCodePredicates(t *testing.T) {
	if !CodeLeft.IsArrowKey() || CodeHome.IsArrowKey() {
		t.Error("IsArrowKey mismatch")
	}
	if !CodePageDown.IsNavigationKey() || CodeEnter.IsNavigationKey() {
		t.Error("IsNavigationKey mismatch")
	}
	if !CodeF12.IsFunctionKey() || CodeSpace.IsFunctionKey() {
		t.Error("IsFunctionKey mismatch")
	}
	if Code('A').IsSpecial() || !CodeEscape.IsSpecial() {
		t.Error("IsSpecial mismatch")
	}
}
