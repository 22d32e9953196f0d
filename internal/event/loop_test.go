package event

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dshills/termkit/internal/core"
	"github.com/dshills/termkit/internal/event/dispatch"
)

// named is a test event.
type named string

func (named) EventSource() core.Handle { return core.NoHandle }

type recorder struct {
	mu  sync.Mutex
	log []string
}

func (r *recorder) add(s string) {
	r.mu.Lock()
	r.log = append(r.log, s)
	r.mu.Unlock()
}

func (r *recorder) get() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.log...)
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestLoopOrdering(t *testing.T) {
	rec := &recorder{}
	var l *Loop
	l = NewLoop(WithHandler(func(ev core.Event) {
		name := string(ev.(named))
		rec.add(name)
		if name == "e1" {
			// e2 is already queued, e3 is posted after the task
			_ = l.InvokeLater(func() { rec.add("task") })
			_ = l.Post(named("e3"))
		}
	}))

	_ = l.Post(named("e1"))
	_ = l.Post(named("e2"))
	if n := l.Drain(); n != 4 {
		t.Errorf("Drain() = %d, want 4", n)
	}

	want := []string{"e1", "e2", "task", "e3"}
	if got := rec.get(); !equal(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestLoopTaskQueuedByTask(t *testing.T) {
	rec := &recorder{}
	l := NewLoop()
	_ = l.InvokeLater(func() {
		rec.add("a")
		_ = l.InvokeLater(func() { rec.add("c") })
	})
	_ = l.InvokeLater(func() { rec.add("b") })
	l.Drain()

	if got, want := rec.get(), []string{"a", "b", "c"}; !equal(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestLoopStep(t *testing.T) {
	l := NewLoop()
	if l.Step() {
		t.Error("Step() on empty queue = true")
	}
	ran := 0
	_ = l.InvokeLater(func() { ran++ })
	_ = l.InvokeLater(func() { ran++ })
	if !l.Step() || ran != 1 || l.Len() != 1 {
		t.Errorf("after Step(): ran = %d, Len() = %d", ran, l.Len())
	}
}

func TestLoopRecoversPanics(t *testing.T) {
	rec := &recorder{}
	l := NewLoop(WithHandler(func(ev core.Event) {
		if ev.(named) == "bad" {
			panic("listener failed")
		}
		rec.add(string(ev.(named)))
	}))

	_ = l.Post(named("bad"))
	_ = l.Post(named("good"))
	_ = l.InvokeLater(func() { panic("task failed") })
	_ = l.InvokeLater(func() { rec.add("after") })
	l.Drain()

	if got, want := rec.get(), []string{"good", "after"}; !equal(got, want) {
		t.Errorf("delivered = %v, want %v", got, want)
	}
	if s := l.Stats(); s.Panicked != 2 {
		t.Errorf("Stats().Panicked = %d, want 2", s.Panicked)
	}
}

func TestLoopGuard(t *testing.T) {
	l := NewLoop()
	ran := false
	l.Guard(func() { panic("x") })
	l.Guard(func() { ran = true })
	if !ran {
		t.Error("Guard() did not run after a panic")
	}
}

func TestLoopAfterBatch(t *testing.T) {
	calls := 0
	l := NewLoop(WithAfterBatch(func() { calls++ }))
	_ = l.InvokeLater(func() {})
	l.Drain()
	if calls != 1 {
		t.Errorf("afterBatch calls = %d, want 1", calls)
	}
}

func startLoop(t *testing.T, l *Loop) (cancel func(), done <-chan error) {
	t.Helper()
	ctx, cancelFn := context.WithCancel(context.Background())
	ch := make(chan error, 1)
	go func() { ch <- l.Run(ctx) }()

	// wait until Run owns the loop
	if err := l.InvokeAndWait(context.Background(), func() {}); err != nil {
		t.Fatalf("InvokeAndWait() = %v", err)
	}
	return cancelFn, ch
}

func TestLoopRun(t *testing.T) {
	rec := &recorder{}
	l := NewLoop(WithHandler(func(ev core.Event) { rec.add(string(ev.(named))) }))
	cancel, done := startLoop(t, l)

	if err := l.Run(context.Background()); !errors.Is(err, ErrAlreadyRunning) {
		t.Errorf("second Run() = %v, want ErrAlreadyRunning", err)
	}

	_ = l.Post(named("x"))
	var onUI bool
	if err := l.InvokeAndWait(context.Background(), func() { onUI = l.IsUIThread() }); err != nil {
		t.Fatalf("InvokeAndWait() = %v", err)
	}
	if !onUI {
		t.Error("task did not run on the UI goroutine")
	}
	if got := rec.get(); !equal(got, []string{"x"}) {
		t.Errorf("delivered = %v, want [x]", got)
	}
	if l.IsUIThread() {
		t.Error("IsUIThread() = true on the test goroutine")
	}

	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Errorf("Run() = %v, want context.Canceled", err)
	}
}

func TestInvokeAndWaitOnUIThread(t *testing.T) {
	l := NewLoop()
	var err error
	_ = l.InvokeLater(func() {
		err = l.InvokeAndWait(context.Background(), func() {})
	})
	l.Drain()
	if !errors.Is(err, ErrOnUIThread) {
		t.Errorf("InvokeAndWait() on UI goroutine = %v, want ErrOnUIThread", err)
	}
}

func TestInvokeAndWaitPanic(t *testing.T) {
	l := NewLoop()
	cancel, done := startLoop(t, l)
	defer func() {
		cancel()
		<-done
	}()

	err := l.InvokeAndWait(context.Background(), func() { panic("boom") })
	if !errors.Is(err, dispatch.ErrPanicked) {
		t.Errorf("InvokeAndWait() = %v, want ErrPanicked", err)
	}
}

func TestInvokeAndWaitTimeout(t *testing.T) {
	l := NewLoop()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if err := l.InvokeAndWait(ctx, func() {}); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("InvokeAndWait() = %v, want DeadlineExceeded", err)
	}
}

func TestLoopStop(t *testing.T) {
	l := NewLoop()
	waitErr := make(chan error, 1)
	go func() {
		waitErr <- l.InvokeAndWait(context.Background(), func() {})
	}()

	// let the waiter enqueue
	deadline := time.Now().Add(time.Second)
	for l.Len() == 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}

	l.Stop()
	if err := <-waitErr; !errors.Is(err, ErrLoopStopped) {
		t.Errorf("waiter got %v, want ErrLoopStopped", err)
	}
	if err := l.Post(named("late")); !errors.Is(err, ErrLoopStopped) {
		t.Errorf("Post() after Stop = %v, want ErrLoopStopped", err)
	}
	if err := l.Run(context.Background()); err != nil {
		t.Errorf("Run() after Stop = %v, want nil", err)
	}
}

func TestPeriodic(t *testing.T) {
	l := NewLoop()
	cancel, done := startLoop(t, l)
	defer func() {
		cancel()
		<-done
	}()

	ticks := make(chan bool, 16)
	stop := l.Periodic(context.Background(), time.Millisecond, func() {
		select {
		case ticks <- l.IsUIThread():
		default:
		}
	})

	for i := 0; i < 3; i++ {
		select {
		case onUI := <-ticks:
			if !onUI {
				t.Fatal("periodic fn ran off the UI goroutine")
			}
		case <-time.After(2 * time.Second):
			t.Fatal("periodic fn did not run")
		}
	}
	stop()

	// a tick queued before stop must not call fn
	_ = l.InvokeAndWait(context.Background(), func() {})
	for len(ticks) > 0 {
		<-ticks
	}
	time.Sleep(10 * time.Millisecond)
	_ = l.InvokeAndWait(context.Background(), func() {})
	if len(ticks) != 0 {
		t.Errorf("periodic fn ran %d times after stop", len(ticks))
	}
}
