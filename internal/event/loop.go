package event

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/dshills/termkit/internal/core"
	"github.com/dshills/termkit/internal/event/dispatch"
)

type item struct {
	ev   core.Event
	task func()
	done chan error
}

// Loop is the UI event loop.
type Loop struct {
	mu      sync.Mutex
	queue   []item
	stopped bool
	stopCh  chan struct{}
	wake    chan struct{}

	running atomic.Bool
	owner   atomic.Uint64

	handler    func(core.Event)
	afterBatch func()
	logger     *slog.Logger
	dispatcher *dispatch.SyncDispatcher
}

// NewLoop creates a loop. Without WithHandler posted events are dropped.
func NewLoop(opts ...Option) *Loop {
	l := &Loop{
		stopCh: make(chan struct{}),
		wake:   make(chan struct{}, 1),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.dispatcher = dispatch.NewSyncDispatcher(dispatch.WithPanicHandler(l.logPanic))
	return l
}

func (l *Loop) logPanic(item any, v any, stack []byte) {
	l.logger.Error("recovered panic on UI goroutine",
		"item", fmt.Sprintf("%T", item),
		"panic", v,
		"stack", string(stack))
}

// SetHandler replaces the event handler. Call before Run.
func (l *Loop) SetHandler(fn func(core.Event)) {
	l.handler = fn
}

// SetAfterBatch replaces the after-batch hook. Call before Run.
func (l *Loop) SetAfterBatch(fn func()) {
	l.afterBatch = fn
}

func (l *Loop) enqueue(it item) error {
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return ErrLoopStopped
	}
	l.queue = append(l.queue, it)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
	return nil
}

func (l *Loop) next() (item, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.queue) == 0 || l.stopped {
		return item{}, false
	}
	it := l.queue[0]
	l.queue[0] = item{}
	l.queue = l.queue[1:]
	return it, true
}

// Post enqueues ev for delivery on the UI goroutine.
func (l *Loop) Post(ev core.Event) error {
	if ev == nil {
		return nil
	}
	return l.enqueue(item{ev: ev})
}

// InvokeLater enqueues fn to run on the UI goroutine.
func (l *Loop) InvokeLater(fn func()) error {
	if fn == nil {
		return nil
	}
	return l.enqueue(item{task: fn})
}

// InvokeAndWait runs fn on the UI goroutine and waits for it. If ctx ends
// first it returns ctx.Err() and fn may still run later. A panic in fn is
// returned as an error wrapping dispatch.ErrPanicked.
func (l *Loop) InvokeAndWait(ctx context.Context, fn func()) error {
	if l.IsUIThread() {
		return ErrOnUIThread
	}
	done := make(chan error, 1)
	if err := l.enqueue(item{task: fn, done: done}); err != nil {
		return err
	}
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// IsUIThread reports whether the caller is the goroutine draining the loop.
func (l *Loop) IsUIThread() bool {
	owner := l.owner.Load()
	return owner != 0 && owner == goid()
}

// Guard runs fn with panic recovery. It is installed as the component
// tree's listener guard.
func (l *Loop) Guard(fn func()) {
	l.dispatcher.Run("listener", fn)
}

func (l *Loop) process(ctx context.Context, it item) {
	var res dispatch.Result
	if it.ev != nil {
		ev := it.ev
		res = l.dispatcher.Dispatch(ctx, ev, dispatch.HandlerFunc(func(context.Context, any) error {
			if l.handler != nil {
				l.handler(ev)
			}
			return nil
		}))
	} else {
		res = l.dispatcher.Dispatch(ctx, it.task, dispatch.Func(it.task))
	}

	if it.done != nil {
		err := res.Error
		if res.Panicked {
			err = dispatch.PanicError(res)
		}
		it.done <- err
	}
}

// claim marks the calling goroutine as the UI goroutine and returns a
// function restoring the previous owner.
func (l *Loop) claim() func() {
	prev := l.owner.Swap(goid())
	return func() { l.owner.Store(prev) }
}

// Step processes one queued item. It reports false if the queue was empty.
func (l *Loop) Step() bool {
	defer l.claim()()
	it, ok := l.next()
	if !ok {
		return false
	}
	l.process(context.Background(), it)
	return true
}

// Drain processes queued items, including those enqueued while draining,
// until the queue is empty, then runs the after-batch hook. It returns
// the number of items processed.
func (l *Loop) Drain() int {
	defer l.claim()()
	n := l.drain(context.Background(), -1)
	l.runAfterBatch()
	return n
}

// drain processes up to limit items, or all of them for a negative limit.
func (l *Loop) drain(ctx context.Context, limit int) int {
	n := 0
	for limit < 0 || n < limit {
		it, ok := l.next()
		if !ok {
			break
		}
		l.process(ctx, it)
		n++
	}
	return n
}

func (l *Loop) runAfterBatch() {
	if l.afterBatch != nil {
		l.dispatcher.Run("afterBatch", l.afterBatch)
	}
}

// Len returns the number of queued items.
func (l *Loop) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queue)
}

// Run drains the queue on the calling goroutine until ctx ends or Stop is
// called. Each batch is the set of items queued when it starts; the
// after-batch hook runs when a batch processed anything.
func (l *Loop) Run(ctx context.Context) error {
	if !l.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer l.running.Store(false)
	defer l.claim()()

	l.logger.Debug("event loop started")
	for {
		if n := l.drain(ctx, l.Len()); n > 0 {
			l.runAfterBatch()
		}
		if l.Len() > 0 {
			continue
		}

		select {
		case <-ctx.Done():
			l.shutdown()
			l.logger.Debug("event loop cancelled")
			return ctx.Err()
		case <-l.stopCh:
			l.shutdown()
			l.logger.Debug("event loop stopped")
			return nil
		case <-l.wake:
		}
	}
}

// IsRunning reports whether Run is active.
func (l *Loop) IsRunning() bool {
	return l.running.Load()
}

// Stop ends Run after the current item. Queued items are discarded and
// their waiters receive ErrLoopStopped. Later submissions fail with
// ErrLoopStopped.
func (l *Loop) Stop() {
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return
	}
	l.stopped = true
	close(l.stopCh)
	l.mu.Unlock()

	if !l.running.Load() {
		l.shutdown()
	}
}

func (l *Loop) shutdown() {
	l.mu.Lock()
	l.stopped = true
	pending := l.queue
	l.queue = nil
	l.mu.Unlock()

	for _, it := range pending {
		if it.done != nil {
			it.done <- ErrLoopStopped
		}
	}
}

// Stats returns counters of processed items.
func (l *Loop) Stats() dispatch.Stats {
	return l.dispatcher.Stats()
}
