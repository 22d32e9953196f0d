package event

import (
	"context"
	"sync/atomic"
	"time"
)

// Periodic calls fn on the UI goroutine every interval until ctx ends or
// the returned stop function is called. The ticker goroutine only ever
// enqueues; a tick is skipped while the previous one is still queued.
func (l *Loop) Periodic(ctx context.Context, interval time.Duration, fn func()) (stop func()) {
	ctx, cancel := context.WithCancel(ctx)
	if interval <= 0 {
		cancel()
		return cancel
	}

	var pending atomic.Bool
	tick := func() {
		pending.Store(false)
		if ctx.Err() == nil {
			fn()
		}
	}

	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				if !pending.CompareAndSwap(false, true) {
					continue
				}
				if err := l.InvokeLater(tick); err != nil {
					cancel()
					return
				}
			}
		}
	}()
	return cancel
}
