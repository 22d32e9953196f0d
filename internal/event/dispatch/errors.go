package dispatch

import (
	"errors"
	"fmt"
)

// ErrPanicked is wrapped by the error PanicError returns.
var ErrPanicked = errors.New("handler panicked")

// PanicError converts a panicked Result into an error, or returns nil.
func PanicError(r Result) error {
	if !r.Panicked {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrPanicked, r.PanicValue)
}
