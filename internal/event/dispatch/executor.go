package dispatch

import (
	"context"
	"runtime/debug"
	"time"
)

// Executor runs handlers, recovering panics and timing them.
type Executor struct {
	panicHandler PanicHandler
}

// ExecutorOption configures an Executor.
type ExecutorOption func(*Executor)

// WithExecutorPanicHandler sets the panic handler.
func WithExecutorPanicHandler(h PanicHandler) ExecutorOption {
	return func(e *Executor) {
		e.panicHandler = h
	}
}

// NewExecutor creates an executor. Without a panic handler panics are
// recovered silently.
func NewExecutor(opts ...ExecutorOption) *Executor {
	e := &Executor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Execute runs handler with item. If ctx is already done the handler is
// skipped.
func (e *Executor) Execute(ctx context.Context, item any, handler Handler) (result Result) {
	if err := ctx.Err(); err != nil {
		return Result{Error: err, Skipped: true}
	}

	start := time.Now()
	defer func() {
		result.Duration = time.Since(start)
		r := recover()
		if r == nil {
			return
		}
		stack := debug.Stack()
		result.Success = false
		result.Panicked = true
		result.PanicValue = r
		result.PanicStack = stack
		e.report(item, r, stack)
	}()

	if err := handler.Handle(ctx, item); err != nil {
		result.Error = err
		return result
	}
	result.Success = true
	return result
}

// Run executes fn with panic recovery.
func (e *Executor) Run(item any, fn func()) Result {
	return e.Execute(context.Background(), item, Func(fn))
}

// report calls the panic handler, which must not bring the loop down
// either.
func (e *Executor) report(item, v any, stack []byte) {
	if e.panicHandler == nil {
		return
	}
	defer func() { _ = recover() }()
	e.panicHandler(item, v, stack)
}
