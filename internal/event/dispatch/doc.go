// Package dispatch runs UI work items with panic recovery.
//
// Every event delivery, listener call and deferred task on the UI
// goroutine goes through an Executor. A panicking item is recovered,
// reported to the PanicHandler with its stack, and turned into a failed
// Result, so one faulty listener never stops the event loop.
//
// SyncDispatcher wraps an Executor with counters the application exposes
// for diagnostics:
//
//	d := dispatch.NewSyncDispatcher(
//	    dispatch.WithPanicHandler(func(item any, v any, stack []byte) {
//	        logger.Error("listener panic", "item", item, "panic", v)
//	    }),
//	)
//	res := d.Dispatch(ctx, ev, handler)
package dispatch
