package dispatch

import (
	"context"
	"sync/atomic"
	"time"
)

// SyncDispatcher runs handlers on the caller's goroutine and counts the
// outcomes.
type SyncDispatcher struct {
	executor *Executor

	dispatched  atomic.Uint64
	succeeded   atomic.Uint64
	failed      atomic.Uint64
	panicked    atomic.Uint64
	skipped     atomic.Uint64
	totalTimeNs atomic.Int64
}

// SyncOption configures a SyncDispatcher.
type SyncOption func(*SyncDispatcher)

// WithPanicHandler sets the panic handler.
func WithPanicHandler(h PanicHandler) SyncOption {
	return func(d *SyncDispatcher) {
		d.executor = NewExecutor(WithExecutorPanicHandler(h))
	}
}

// NewSyncDispatcher creates a dispatcher.
func NewSyncDispatcher(opts ...SyncOption) *SyncDispatcher {
	d := &SyncDispatcher{executor: NewExecutor()}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch runs handler with item and records the outcome.
func (d *SyncDispatcher) Dispatch(ctx context.Context, item any, handler Handler) Result {
	d.dispatched.Add(1)
	result := d.executor.Execute(ctx, item, handler)
	d.totalTimeNs.Add(result.Duration.Nanoseconds())

	switch {
	case result.Skipped:
		d.skipped.Add(1)
	case result.Panicked:
		d.panicked.Add(1)
	case result.Error != nil:
		d.failed.Add(1)
	default:
		d.succeeded.Add(1)
	}
	return result
}

// Run dispatches a plain function.
func (d *SyncDispatcher) Run(item any, fn func()) Result {
	return d.Dispatch(context.Background(), item, Func(fn))
}

// Stats is a snapshot of dispatch counters.
type Stats struct {
	Dispatched    uint64
	Succeeded     uint64
	Failed        uint64
	Panicked      uint64
	Skipped       uint64
	TotalDuration time.Duration
	AvgDuration   time.Duration
}

// Stats returns the current counters. Fields are loaded independently.
func (d *SyncDispatcher) Stats() Stats {
	n := d.dispatched.Load()
	total := d.totalTimeNs.Load()
	var avg int64
	if n > 0 {
		avg = total / int64(n)
	}
	return Stats{
		Dispatched:    n,
		Succeeded:     d.succeeded.Load(),
		Failed:        d.failed.Load(),
		Panicked:      d.panicked.Load(),
		Skipped:       d.skipped.Load(),
		TotalDuration: time.Duration(total),
		AvgDuration:   time.Duration(avg),
	}
}

// ResetStats zeroes the counters.
func (d *SyncDispatcher) ResetStats() {
	d.dispatched.Store(0)
	d.succeeded.Store(0)
	d.failed.Store(0)
	d.panicked.Store(0)
	d.skipped.Store(0)
	d.totalTimeNs.Store(0)
}
