package dispatch

import (
	"context"
	"time"
)

// Handler processes one work item.
type Handler interface {
	Handle(ctx context.Context, item any) error
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, item any) error

// Handle implements Handler.
func (f HandlerFunc) Handle(ctx context.Context, item any) error {
	return f(ctx, item)
}

// Func adapts a plain function to Handler.
func Func(fn func()) Handler {
	return HandlerFunc(func(context.Context, any) error {
		fn()
		return nil
	})
}

// Dispatcher runs handlers.
type Dispatcher interface {
	Dispatch(ctx context.Context, item any, handler Handler) Result
}

// Result is the outcome of running one handler.
type Result struct {
	// Success is true if the handler returned nil without panicking.
	Success bool

	// Error is the handler's error or the context error for a skipped item.
	Error error

	Panicked   bool
	PanicValue any
	PanicStack []byte

	Duration time.Duration

	// Skipped is true if the context was done before the handler ran.
	Skipped bool
}

// IsSuccess reports whether the handler completed normally.
func (r Result) IsSuccess() bool {
	return r.Success && !r.Panicked && r.Error == nil
}

// IsError reports whether the handler returned an error.
func (r Result) IsError() bool {
	return r.Error != nil && !r.Panicked
}

// IsPanic reports whether the handler panicked.
func (r Result) IsPanic() bool {
	return r.Panicked
}

// PanicHandler receives recovered panics with the item being processed.
type PanicHandler func(item any, panicValue any, stack []byte)
