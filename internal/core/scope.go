package core

import "fmt"

// Scope is the breadth at which a key binding is eligible to fire relative
// to the focused component.
type Scope int

const (
	// WhenFocused bindings fire only while the component itself has focus.
	WhenFocused Scope = iota
	// WhenAncestorOfFocusedComponent bindings fire while focus is on a
	// descendant of the component.
	WhenAncestorOfFocusedComponent
	// WhenInFocusedWindow bindings fire while focus is anywhere in the
	// component's window. They are resolved through the keyboard manager.
	WhenInFocusedWindow
)

// Scopes lists every scope in resolution order.
var Scopes = []Scope{WhenFocused, WhenAncestorOfFocusedComponent, WhenInFocusedWindow}

// Validate panics with a UsageError if s is not a known scope.
func (s Scope) Validate() {
	if s < WhenFocused || s > WhenInFocusedWindow {
		PanicUsage("scope", "invalid scope constant %d", int(s))
	}
}

func (s Scope) String() string {
	switch s {
	case WhenFocused:
		return "WHEN_FOCUSED"
	case WhenAncestorOfFocusedComponent:
		return "WHEN_ANCESTOR_OF_FOCUSED_COMPONENT"
	case WhenInFocusedWindow:
		return "WHEN_IN_FOCUSED_WINDOW"
	default:
		return fmt.Sprintf("Scope(%d)", int(s))
	}
}
