// Package event implements the UI event loop.
//
// A Loop owns one FIFO queue holding both posted events and deferred tasks.
// The goroutine that calls Run (the UI goroutine) drains it; all component
// state is touched only there. Post and InvokeLater are safe from any
// goroutine.
//
// # Ordering
//
// Items run strictly in enqueue order. A task enqueued while event N is
// being processed runs after N and before any event enqueued after the
// task. A task enqueued by a task runs after everything already queued.
//
// # Waiting
//
// InvokeAndWait blocks a background goroutine until its function has run
// on the UI goroutine. Called on the UI goroutine itself it returns
// ErrOnUIThread rather than deadlocking.
//
// # Panics
//
// Items run through a dispatch.SyncDispatcher. A panicking listener or
// task is logged and the loop continues with the next item.
package event
