package core

import (
	"fmt"

	"github.com/dshills/termkit/internal/input/key"
)

// Event is anything that can be posted to the event queue.
type Event interface {
	// EventSource returns the component the event is addressed to.
	// NoHandle means the event is routed by the application (raw input).
	EventSource() Handle
}

// KeyEventID distinguishes the three kinds of key event.
type KeyEventID int

const (
	KeyPressed KeyEventID = iota
	KeyTyped
	KeyReleased
)

func (id KeyEventID) String() string {
	switch id {
	case KeyPressed:
		return "KEY_PRESSED"
	case KeyTyped:
		return "KEY_TYPED"
	case KeyReleased:
		return "KEY_RELEASED"
	default:
		return fmt.Sprintf("KeyEventID(%d)", int(id))
	}
}

// KeyEvent is a single keyboard event. Typed events carry Char; pressed and
// released events carry Code.
type KeyEvent struct {
	ID        KeyEventID
	Source    Handle
	Code      key.Code
	Char      rune
	Modifiers key.Modifier

	consumed bool
}

// NewKeyPressed creates a KEY_PRESSED event.
func NewKeyPressed(code key.Code, mods key.Modifier) *KeyEvent {
	return &KeyEvent{ID: KeyPressed, Code: code, Modifiers: mods}
}

// NewKeyReleased creates a KEY_RELEASED event.
func NewKeyReleased(code key.Code, mods key.Modifier) *KeyEvent {
	return &KeyEvent{ID: KeyReleased, Code: code, Modifiers: mods}
}

// NewKeyTyped creates a KEY_TYPED event.
func NewKeyTyped(r rune) *KeyEvent {
	return &KeyEvent{ID: KeyTyped, Char: r}
}

// EventSource implements Event.
func (e *KeyEvent) EventSource() Handle { return e.Source }

// Consume marks the event as handled.
func (e *KeyEvent) Consume() { e.consumed = true }

// IsConsumed reports whether a handler consumed the event.
func (e *KeyEvent) IsConsumed() bool { return e.consumed }

// Stroke returns the canonical stroke for the event: the character form for
// typed events and the code form for pressed and released events. Shift is
// dropped from typed strokes since the character already reflects it.
func (e *KeyEvent) Stroke() key.Stroke {
	switch e.ID {
	case KeyTyped:
		return key.TypedWith(e.Char, e.Modifiers.Without(key.ModShift))
	case KeyReleased:
		return key.Released(e.Code, e.Modifiers)
	default:
		return key.Pressed(e.Code, e.Modifiers)
	}
}

func (e *KeyEvent) String() string {
	return fmt.Sprintf("%s %s src=%d", e.ID, e.Stroke(), e.Source)
}

// MouseEventID distinguishes mouse events.
type MouseEventID int

const (
	MousePressed MouseEventID = iota
	MouseReleased
	MouseWheel
)

// MouseButton identifies a mouse button or wheel direction.
type MouseButton int

const (
	ButtonNone MouseButton = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
	WheelUp
	WheelDown
)

// MouseEvent is a mouse action at a screen position.
type MouseEvent struct {
	ID        MouseEventID
	Source    Handle
	Button    MouseButton
	Pos       Point
	Modifiers key.Modifier

	consumed bool
}

// NewMousePressed creates a MOUSE_PRESSED event.
func NewMousePressed(button MouseButton, x, y int) *MouseEvent {
	return &MouseEvent{ID: MousePressed, Button: button, Pos: Point{X: x, Y: y}}
}

// EventSource implements Event.
func (e *MouseEvent) EventSource() Handle { return e.Source }

// Consume marks the event as handled.
func (e *MouseEvent) Consume() { e.consumed = true }

// IsConsumed reports whether a handler consumed the event.
func (e *MouseEvent) IsConsumed() bool { return e.consumed }

// FocusEventID distinguishes focus transitions.
type FocusEventID int

const (
	FocusGained FocusEventID = iota
	FocusLost
)

func (id FocusEventID) String() string {
	if id == FocusGained {
		return "FOCUS_GAINED"
	}
	return "FOCUS_LOST"
}

// FocusEvent reports a focus transition. Opposite is the component losing
// focus (for FocusGained) or gaining it (for FocusLost), if any.
type FocusEvent struct {
	ID       FocusEventID
	Source   Handle
	Opposite Handle
}

// EventSource implements Event.
func (e FocusEvent) EventSource() Handle { return e.Source }

// ActionEvent reports that a component performed its action.
type ActionEvent struct {
	Source    Handle
	Command   string
	Modifiers key.Modifier
}

// EventSource implements Event.
func (e ActionEvent) EventSource() Handle { return e.Source }

// ItemEventID distinguishes item state changes.
type ItemEventID int

const (
	ItemSelected ItemEventID = iota
	ItemDeselected
)

// ItemEvent reports a selection state change on an item of a component.
type ItemEvent struct {
	ID     ItemEventID
	Source Handle
	Item   any
}

// EventSource implements Event.
func (e ItemEvent) EventSource() Handle { return e.Source }

// WindowEventID distinguishes window lifecycle events.
type WindowEventID int

const (
	WindowOpened WindowEventID = iota
	WindowClosing
	WindowClosed
	WindowActivated
	WindowDeactivated
)

func (id WindowEventID) String() string {
	switch id {
	case WindowOpened:
		return "WINDOW_OPENED"
	case WindowClosing:
		return "WINDOW_CLOSING"
	case WindowClosed:
		return "WINDOW_CLOSED"
	case WindowActivated:
		return "WINDOW_ACTIVATED"
	case WindowDeactivated:
		return "WINDOW_DEACTIVATED"
	default:
		return fmt.Sprintf("WindowEventID(%d)", int(id))
	}
}

// WindowEvent reports a window lifecycle change or request.
type WindowEvent struct {
	ID     WindowEventID
	Source Handle
}

// EventSource implements Event.
func (e WindowEvent) EventSource() Handle { return e.Source }
