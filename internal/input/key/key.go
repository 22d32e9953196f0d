package key

import (
	"fmt"
	"strings"
	"unicode"
)

// Code identifies a physical key independent of the character it produces.
//
// Letters and digits use the upper-case ASCII value of the key cap, so
// CodeForRune('s') == CodeForRune('S') == 'S'. Printable ASCII punctuation
// uses its own character value. Keys that produce no character live above
// 0x100 and can never collide with a character code.
type Code uint16

// CodeNone is the zero code; it identifies no key.
const CodeNone Code = 0

// Special keys.
const (
	CodeEscape Code = 0x100 + iota
	CodeEnter
	CodeTab
	CodeBackspace
	CodeDelete
	CodeInsert
	CodeHome
	CodeEnd
	CodePageUp
	CodePageDown
	CodeUp
	CodeDown
	CodeLeft
	CodeRight
	CodeF1
	CodeF2
	CodeF3
	CodeF4
	CodeF5
	CodeF6
	CodeF7
	CodeF8
	CodeF9
	CodeF10
	CodeF11
	CodeF12
	CodeSpace
)

var codeNames = map[Code]string{
	CodeNone:      "None",
	CodeEscape:    "Escape",
	CodeEnter:     "Enter",
	CodeTab:       "Tab",
	CodeBackspace: "Backspace",
	CodeDelete:    "Delete",
	CodeInsert:    "Insert",
	CodeHome:      "Home",
	CodeEnd:       "End",
	CodePageUp:    "PageUp",
	CodePageDown:  "PageDown",
	CodeUp:        "Up",
	CodeDown:      "Down",
	CodeLeft:      "Left",
	CodeRight:     "Right",
	CodeF1:        "F1",
	CodeF2:        "F2",
	CodeF3:        "F3",
	CodeF4:        "F4",
	CodeF5:        "F5",
	CodeF6:        "F6",
	CodeF7:        "F7",
	CodeF8:        "F8",
	CodeF9:        "F9",
	CodeF10:       "F10",
	CodeF11:       "F11",
	CodeF12:       "F12",
	CodeSpace:     "Space",
}

// String returns a human-readable name for the code.
func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	switch c {
	case '+':
		return "Plus"
	case '-':
		return "Minus"
	}
	if c > 0x20 && c < 0x7f {
		return string(rune(c))
	}
	return fmt.Sprintf("Code(%#x)", uint16(c))
}

// IsSpecial reports whether the code belongs to a non-character key.
func (c Code) IsSpecial() bool {
	return c >= CodeEscape
}

// IsFunctionKey reports whether this is F1-F12.
func (c Code) IsFunctionKey() bool {
	return c >= CodeF1 && c <= CodeF12
}

// IsArrowKey reports whether this is an arrow key.
func (c Code) IsArrowKey() bool {
	return c >= CodeUp && c <= CodeRight
}

// IsNavigationKey reports whether this is an arrow, Home, End, PageUp or PageDown.
func (c Code) IsNavigationKey() bool {
	return c.IsArrowKey() || (c >= CodeHome && c <= CodePageDown)
}

// CodeForRune returns the key code whose cap carries r.
// Returns CodeNone when r has no single-key code.
func CodeForRune(r rune) Code {
	switch {
	case r == ' ':
		return CodeSpace
	case r >= 'a' && r <= 'z':
		return Code(unicode.ToUpper(r))
	case r > 0x20 && r < 0x7f:
		return Code(r)
	}
	return CodeNone
}

// keyNameMap maps lower-case key names to codes.
var keyNameMap = map[string]Code{
	"escape":    CodeEscape,
	"esc":       CodeEscape,
	"enter":     CodeEnter,
	"return":    CodeEnter,
	"cr":        CodeEnter,
	"tab":       CodeTab,
	"backspace": CodeBackspace,
	"bs":        CodeBackspace,
	"delete":    CodeDelete,
	"del":       CodeDelete,
	"insert":    CodeInsert,
	"ins":       CodeInsert,
	"home":      CodeHome,
	"end":       CodeEnd,
	"pageup":    CodePageUp,
	"pgup":      CodePageUp,
	"pagedown":  CodePageDown,
	"pgdn":      CodePageDown,
	"up":        CodeUp,
	"down":      CodeDown,
	"left":      CodeLeft,
	"right":     CodeRight,
	"f1":        CodeF1,
	"f2":        CodeF2,
	"f3":        CodeF3,
	"f4":        CodeF4,
	"f5":        CodeF5,
	"f6":        CodeF6,
	"f7":        CodeF7,
	"f8":        CodeF8,
	"f9":        CodeF9,
	"f10":       CodeF10,
	"f11":       CodeF11,
	"f12":       CodeF12,
	"space":     CodeSpace,
}

// CodeFromName returns the code for a key name (case-insensitive).
// Returns CodeNone if the name is not recognized.
func CodeFromName(name string) Code {
	name = strings.ToLower(strings.TrimSpace(name))
	if c, ok := keyNameMap[name]; ok {
		return c
	}
	return CodeNone
}
