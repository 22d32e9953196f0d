package action

import (
	"fmt"

	"github.com/dshills/termkit/internal/input/key"
)

// ValueKey names one property of an Action.
type ValueKey int

const (
	Name ValueKey = iota
	ShortDescription
	LongDescription
	ActionCommand
	Mnemonic
	Accelerator
	Selected
	// Enabled mirrors Enabled()/SetEnabled(); storing it changes the
	// enabled flag.
	Enabled
)

func (k ValueKey) String() string {
	switch k {
	case Name:
		return "Name"
	case ShortDescription:
		return "ShortDescription"
	case LongDescription:
		return "LongDescription"
	case ActionCommand:
		return "ActionCommand"
	case Mnemonic:
		return "Mnemonic"
	case Accelerator:
		return "Accelerator"
	case Selected:
		return "Selected"
	case Enabled:
		return "Enabled"
	default:
		return fmt.Sprintf("ValueKey(%d)", int(k))
	}
}

// Kind is the type tag of a Value.
type Kind int

const (
	KindNone Kind = iota
	KindString
	KindRune
	KindInt
	KindBool
	KindStroke
)

// Value is a tagged union holding one property value.
type Value struct {
	kind   Kind
	str    string
	num    int
	flag   bool
	stroke key.Stroke
}

// String creates a string value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Rune creates a rune value (mnemonics).
func Rune(r rune) Value { return Value{kind: KindRune, num: int(r)} }

// Int creates an integer value.
func Int(n int) Value { return Value{kind: KindInt, num: n} }

// Bool creates a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, flag: b} }

// Stroke creates a key stroke value (accelerators).
func Stroke(s key.Stroke) Value { return Value{kind: KindStroke, stroke: s} }

// Kind returns the type tag.
func (v Value) Kind() Kind { return v.kind }

// AsString returns the string held by v.
func (v Value) AsString() (string, bool) { return v.str, v.kind == KindString }

// AsRune returns the rune held by v.
func (v Value) AsRune() (rune, bool) { return rune(v.num), v.kind == KindRune }

// AsInt returns the integer held by v.
func (v Value) AsInt() (int, bool) { return v.num, v.kind == KindInt }

// AsBool returns the boolean held by v.
func (v Value) AsBool() (bool, bool) { return v.flag, v.kind == KindBool }

// AsStroke returns the stroke held by v.
func (v Value) AsStroke() (key.Stroke, bool) { return v.stroke, v.kind == KindStroke }

func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindRune:
		return string(rune(v.num))
	case KindInt:
		return fmt.Sprint(v.num)
	case KindBool:
		return fmt.Sprint(v.flag)
	case KindStroke:
		return v.stroke.String()
	default:
		return "<none>"
	}
}
