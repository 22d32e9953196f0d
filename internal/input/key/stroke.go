package key

// Kind distinguishes the two constructor forms of a Stroke.
type Kind uint8

const (
	// KindCode is a stroke identified by a key code (pressed or released).
	KindCode Kind = iota
	// KindChar is a stroke identified by the character typed.
	KindChar
)

// Stroke identifies one key action: a character, or a key code with a
// modifier mask and a release flag.
//
// Stroke is a comparable value and is used directly as a map key. Two
// strokes are equal iff every field matches, so Typed('a') never equals
// Pressed('A', ModNone) even though both come from the same key cap.
type Stroke struct {
	Kind      Kind
	Char      rune
	Code      Code
	Modifiers Modifier
	OnRelease bool
}

// Typed returns the character form of a stroke.
func Typed(r rune) Stroke {
	return Stroke{Kind: KindChar, Char: r}
}

// TypedWith returns the character form of a stroke with modifiers held.
func TypedWith(r rune, mods Modifier) Stroke {
	return Stroke{Kind: KindChar, Char: r, Modifiers: mods}
}

// New returns the code form of a stroke.
func New(code Code, mods Modifier, onRelease bool) Stroke {
	return Stroke{Kind: KindCode, Code: code, Modifiers: mods, OnRelease: onRelease}
}

// Pressed returns the code form of a stroke fired when the key goes down.
func Pressed(code Code, mods Modifier) Stroke {
	return New(code, mods, false)
}

// Released returns the code form of a stroke fired when the key comes up.
func Released(code Code, mods Modifier) Stroke {
	return New(code, mods, true)
}

// IsZero reports whether s is the zero stroke.
func (s Stroke) IsZero() bool {
	return s == Stroke{}
}

// IsTyped reports whether s is in character form.
func (s Stroke) IsTyped() bool {
	return s.Kind == KindChar
}

// String returns the canonical spec for s; Parse(s.String()) == s.
func (s Stroke) String() string {
	var prefix, body string
	switch {
	case s.Kind == KindChar:
		prefix = "typed "
		body = charName(s.Char)
	case s.OnRelease:
		prefix = "released "
		body = s.Code.String()
	default:
		body = s.Code.String()
		if !s.Code.IsSpecial() && s.Modifiers == ModNone {
			prefix = "pressed "
		}
	}
	if s.Modifiers != ModNone {
		body = s.Modifiers.String() + "+" + body
	}
	return prefix + body
}

func charName(r rune) string {
	for name, c := range charAliases {
		if c == r {
			return name
		}
	}
	return string(r)
}
