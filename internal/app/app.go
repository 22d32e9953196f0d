// Package app wires the toolkit together: it owns the component tree,
// focus, popups, key bindings, the event loop and the terminal, and routes
// terminal input to widgets on the UI goroutine.
package app

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/dshills/termkit/internal/action"
	"github.com/dshills/termkit/internal/binding"
	"github.com/dshills/termkit/internal/component"
	"github.com/dshills/termkit/internal/config"
	"github.com/dshills/termkit/internal/core"
	"github.com/dshills/termkit/internal/event"
	"github.com/dshills/termkit/internal/focus"
	"github.com/dshills/termkit/internal/input/keymap"
	"github.com/dshills/termkit/internal/keyboard"
	"github.com/dshills/termkit/internal/layout"
	"github.com/dshills/termkit/internal/popup"
	"github.com/dshills/termkit/internal/renderer"
	"github.com/dshills/termkit/internal/renderer/backend"
	"github.com/dshills/termkit/internal/router"
	"github.com/dshills/termkit/internal/script"
	"github.com/dshills/termkit/internal/widget"
)

// Application implements widget.Host.
type Application struct {
	mu sync.Mutex

	cfg *config.Config
	log *Logger

	tree     *component.Tree
	kbd      *keyboard.Manager
	fm       *focus.Manager
	popups   *popup.Stack
	router   *router.Router
	keymaps  *keymap.Registry
	kmLoader *keymap.Loader
	kmFiles  map[string][]keymapID
	loop     *event.Loop
	scripts  *script.Engine

	backend backend.Backend
	painter *renderer.Painter
	root    *widget.Window

	running  atomic.Bool
	quitting atomic.Bool
	cancel   context.CancelFunc
}

var _ widget.Host = (*Application)(nil)

// Option configures an Application.
type Option func(*Application)

// WithConfig sets the configuration. It should already be loaded.
func WithConfig(cfg *config.Config) Option {
	return func(a *Application) { a.cfg = cfg }
}

// WithLogger sets the logger.
func WithLogger(l *Logger) Option {
	return func(a *Application) {
		if l != nil {
			a.log = l
		}
	}
}

// WithBackend sets the terminal.
func WithBackend(b backend.Backend) Option {
	return func(a *Application) { a.setBackend(b) }
}

// New builds an application with the default keymaps plus the configured
// keymap files and script actions. Keymap and script errors are logged
// and skipped.
func New(opts ...Option) (*Application, error) {
	a := &Application{log: NullLogger, kmFiles: make(map[string][]keymapID)}
	for _, opt := range opts {
		opt(a)
	}
	if a.cfg == nil {
		a.cfg = config.New()
	}

	a.kbd = keyboard.NewManager()
	a.tree = component.NewTree(a.kbd)
	a.loop = event.NewLoop(
		event.WithLogger(a.log.WithComponent("loop").Slog()),
		event.WithHandler(a.deliver),
		event.WithAfterBatch(a.paint),
	)
	a.tree.SetListenerGuard(a.loop.Guard)
	a.fm = focus.NewManager(a.tree,
		focus.WithCursorSink(a),
		focus.WithLogger(a.log.WithComponent("focus").Slog()),
	)
	a.popups = popup.NewStack(a.tree, a.fm, core.NoHandle,
		popup.WithLogger(a.log.WithComponent("popup").Slog()),
		popup.WithPoster(func(ev core.Event) { _ = a.loop.Post(ev) }),
	)
	a.router = router.New(a.tree, a.fm, a.popups, binding.NewResolver(a.tree, a.kbd),
		router.WithLogger(a.log.WithComponent("router").Slog()),
	)

	a.keymaps = keymap.NewRegistry()
	if err := keymap.LoadDefaults(a.keymaps); err != nil {
		return nil, NewComponentError("keymap", "load defaults", err)
	}
	a.kmLoader = keymap.NewLoader()
	for _, path := range a.cfg.KeymapFiles() {
		if err := a.loadKeymapFile(path); err != nil {
			a.log.Error("keymap file skipped", "path", path, "err", err)
		}
	}

	a.scripts = script.NewEngine(a, script.WithLogger(a.log.WithComponent("script").Slog()))
	return a, nil
}

// Tree implements widget.Host.
func (a *Application) Tree() *component.Tree { return a.tree }

// Focus implements widget.Host.
func (a *Application) Focus() *focus.Manager { return a.fm }

// Popups implements widget.Host.
func (a *Application) Popups() *popup.Stack { return a.popups }

// Loop implements widget.Host.
func (a *Application) Loop() *event.Loop { return a.loop }

// Keymaps implements widget.Host.
func (a *Application) Keymaps() *keymap.Registry { return a.keymaps }

// Config returns the configuration.
func (a *Application) Config() *config.Config { return a.cfg }

// Logger returns the application logger.
func (a *Application) Logger() *Logger { return a.log }

// Scripts returns the script engine.
func (a *Application) Scripts() *script.Engine { return a.scripts }

// Root returns the root window, or nil before SetRoot.
func (a *Application) Root() *widget.Window { return a.root }

// SetBackend sets the terminal. It fails while running.
func (a *Application) SetBackend(b backend.Backend) error {
	if a.running.Load() {
		return ErrAlreadyRunning
	}
	a.setBackend(b)
	return nil
}

func (a *Application) setBackend(b backend.Backend) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.backend = b
	a.painter = nil
	if b != nil {
		a.painter = renderer.NewPainter(b)
	}
}

// SetRoot makes w the base window: it is attached, sized to the terminal,
// laid out and activated, and its action map receives the quit action and
// the configured script actions. Call it on the UI goroutine.
func (a *Application) SetRoot(w *widget.Window) {
	if a.root != nil {
		a.popups.PopAll()
		a.tree.Detach(a.root.Handle())
		a.fm.Forget(a.root.Handle())
	}
	a.root = w
	h := w.Handle()
	a.tree.Attach(h)
	a.popups.SetBase(h)

	if b := a.currentBackend(); b != nil {
		width, height := b.Size()
		w.SetBounds(core.NewRect(0, 0, width, height))
	}
	layout.Apply(a.tree, h)
	a.fm.SetActive(h)
	if c := a.fm.ActiveController(); c != nil && !c.HasFocus() {
		c.FocusFirst()
	}

	am := a.tree.ActionMap(h)
	am.Put(keymap.ActQuit, action.NewFunc(keymap.ActQuit, func(core.ActionEvent) { a.Quit() }))
	a.installScripts(am)
}

func (a *Application) currentBackend() backend.Backend {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.backend
}

func (a *Application) currentPainter() *renderer.Painter {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.painter
}

// Quit ends Run. It is safe from any goroutine.
func (a *Application) Quit() {
	a.quitting.Store(true)
	a.mu.Lock()
	cancel := a.cancel
	a.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// IsRunning reports whether Run is active.
func (a *Application) IsRunning() bool { return a.running.Load() }
