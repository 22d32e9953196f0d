package app

import (
	"errors"
	"testing"
)

func TestOperationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *OperationError
		expected string
	}{
		{"nil error", nil, ""},
		{"op only", &OperationError{Op: "load"}, "load"},
		{"op and target", &OperationError{Op: "load", Target: "keys.toml"}, "load keys.toml"},
		{"with cause", NewOperationError("load", "keys.toml", errors.New("eof")), "load keys.toml: eof"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestComponentError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ComponentError
		expected string
	}{
		{"nil error", nil, ""},
		{"component only", &ComponentError{Component: "backend"}, "backend"},
		{"with action", &ComponentError{Component: "backend", Action: "init"}, "backend: init"},
		{"with cause", NewComponentError("backend", "init", errors.New("no tty")), "backend: init: no tty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestErrorsUnwrap(t *testing.T) {
	cause := errors.New("cause")

	var op error = NewOperationError("shutdown", "scripts", cause)
	if !errors.Is(op, cause) {
		t.Error("OperationError does not unwrap to its cause")
	}

	var comp error = NewComponentError("keymap", "load defaults", cause)
	if !errors.Is(comp, cause) {
		t.Error("ComponentError does not unwrap to its cause")
	}
	var target *ComponentError
	if !errors.As(comp, &target) || target.Component != "keymap" {
		t.Errorf("errors.As = %+v", target)
	}

	if (*OperationError)(nil).Unwrap() != nil || (*ComponentError)(nil).Unwrap() != nil {
		t.Error("nil errors unwrap to non-nil")
	}
}
