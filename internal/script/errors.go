package script

import "errors"

var (
	// ErrEngineClosed is returned when the engine has been closed.
	ErrEngineClosed = errors.New("script engine closed")

	// ErrEmptyName is returned for an action without a name.
	ErrEmptyName = errors.New("script action name is empty")
)
