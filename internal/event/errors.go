package event

import "errors"

// Loop errors.
var (
	// ErrLoopStopped is returned for work submitted after Stop, and to
	// waiters whose task was discarded by Stop.
	ErrLoopStopped = errors.New("event loop stopped")

	// ErrAlreadyRunning is returned when Run is called on a running loop.
	ErrAlreadyRunning = errors.New("event loop already running")

	// ErrOnUIThread is returned by InvokeAndWait on the UI goroutine.
	ErrOnUIThread = errors.New("InvokeAndWait called on the UI goroutine")
)
