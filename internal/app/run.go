package app

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/dshills/termkit/internal/config"
	"github.com/dshills/termkit/internal/core"
	"github.com/dshills/termkit/internal/renderer/backend"
)

// Run initializes the terminal and processes input until Quit is called,
// the terminal closes or ctx ends. It returns nil after Quit and ctx's
// error after cancellation. An application runs once.
func (a *Application) Run(ctx context.Context) error {
	if !a.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer a.running.Store(false)

	b := a.currentBackend()
	if b == nil {
		return ErrNoBackend
	}
	if a.root == nil {
		return ErrNoRoot
	}

	if err := b.Init(); err != nil {
		return NewComponentError("backend", "init", err)
	}
	defer b.Shutdown()
	if a.cfg.Mouse() {
		b.EnableMouse()
	}

	runCtx, cancel := context.WithCancel(ctx)
	a.mu.Lock()
	a.cancel = cancel
	a.mu.Unlock()
	defer func() {
		cancel()
		a.mu.Lock()
		a.cancel = nil
		a.mu.Unlock()
	}()
	if a.quitting.Load() {
		cancel()
	}

	if a.cfg.WatchKeymaps() {
		w, err := a.cfg.WatchKeymapFiles(a.log.WithComponent("watcher").Slog(), func(path string) {
			_ = a.loop.InvokeLater(func() { a.reloadKeymap(path) })
		})
		switch {
		case errors.Is(err, config.ErrNoWatchFiles):
		case err != nil:
			a.log.Warn("keymap watcher not started", "err", err)
		default:
			defer w.Close()
		}
	}

	a.log.Info("application started")
	g, gctx := errgroup.WithContext(runCtx)
	g.Go(func() error {
		return a.loop.Run(gctx)
	})
	g.Go(func() error {
		a.poll(gctx, b)
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		b.PostEvent(backend.Event{Type: backend.EventInterrupt})
		return nil
	})

	// Lay out for the current size and paint the first frame.
	width, height := b.Size()
	_ = a.loop.InvokeLater(func() { a.resize(width, height) })

	err := g.Wait()
	a.log.Info("application stopped")
	switch {
	case a.quitting.Load():
		return nil
	case ctx.Err() != nil:
		return ctx.Err()
	case errors.Is(err, context.Canceled):
		return nil
	}
	return err
}

// poll reads terminal events and posts them to the loop until ctx ends.
func (a *Application) poll(ctx context.Context, b backend.Backend) {
	var tr translator
	for {
		ev := b.PollEvent()
		if ctx.Err() != nil {
			return
		}
		switch ev.Type {
		case backend.EventNone:
			a.log.Debug("terminal closed")
			a.Quit()
			return
		case backend.EventResize:
			w, h := ev.Width, ev.Height
			_ = a.loop.InvokeLater(func() { a.resize(w, h) })
			continue
		}
		for _, e := range tr.translate(ev) {
			if err := a.loop.Post(e); err != nil {
				return
			}
		}
	}
}

// Dispatch delivers ev synchronously. Call it on the UI goroutine.
func (a *Application) Dispatch(ev core.Event) {
	a.deliver(ev)
}

// Shutdown closes the popups and the script engine and stops the loop.
func (a *Application) Shutdown() error {
	a.Quit()
	a.loop.Guard(func() {
		if a.popups.Len() > 0 {
			a.popups.PopAll()
		}
	})
	a.loop.Stop()
	if err := a.scripts.Close(); err != nil {
		return NewOperationError("shutdown", "scripts", err)
	}
	return nil
}
