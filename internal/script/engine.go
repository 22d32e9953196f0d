package script

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/termkit/internal/action"
	"github.com/dshills/termkit/internal/core"
)

// DefaultTimeout bounds a single script run.
const DefaultTimeout = time.Second

// UI is the part of the application scripts can drive.
type UI interface {
	FocusNext() bool
	FocusPrevious() bool
	ClosePopup() bool
	Beep()
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used by ui.log, print and failed runs.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithTimeout sets the per-run time limit. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.timeout = d
		}
	}
}

// Engine compiles and runs script actions in one Lua state.
type Engine struct {
	mu      sync.Mutex
	L       *lua.LState
	ui      UI
	logger  *slog.Logger
	timeout time.Duration
	chunks  map[string]*lua.LFunction
	closed  bool
}

// NewEngine creates an engine whose ui table calls ui.
func NewEngine(ui UI, opts ...Option) *Engine {
	e := &Engine{
		ui:      ui,
		logger:  slog.New(slog.DiscardHandler),
		timeout: DefaultTimeout,
		chunks:  make(map[string]*lua.LFunction),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.L = newSandboxedState(e.logger)
	e.L.SetGlobal("ui", e.uiTable())
	return e
}

func (e *Engine) uiTable() *lua.LTable {
	return e.L.SetFuncs(e.L.NewTable(), map[string]lua.LGFunction{
		"focus_next": func(L *lua.LState) int {
			L.Push(lua.LBool(e.ui.FocusNext()))
			return 1
		},
		"focus_previous": func(L *lua.LState) int {
			L.Push(lua.LBool(e.ui.FocusPrevious()))
			return 1
		},
		"close_popup": func(L *lua.LState) int {
			L.Push(lua.LBool(e.ui.ClosePopup()))
			return 1
		},
		"beep": func(L *lua.LState) int {
			e.ui.Beep()
			return 0
		},
		"log": func(L *lua.LState) int {
			e.logger.Info("script log", "msg", L.CheckString(1))
			return 0
		},
	})
}

// Compile parses source and stores it under name, replacing any previous
// chunk with that name.
func (e *Engine) Compile(name, source string) error {
	if name == "" {
		return ErrEmptyName
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrEngineClosed
	}
	fn, err := e.L.Load(strings.NewReader(source), name)
	if err != nil {
		return errors.Wrapf(err, "compile script %q", name)
	}
	e.chunks[name] = fn
	return nil
}

// Run executes the chunk stored under name with ev exposed as the event
// global.
func (e *Engine) Run(name string, ev core.ActionEvent) (err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrEngineClosed
	}
	fn, ok := e.chunks[name]
	if !ok {
		return errors.Errorf("script %q not compiled", name)
	}

	ctx, cancel := context.WithTimeout(context.Background(), e.timeout)
	defer cancel()
	e.L.SetContext(ctx)
	defer e.L.RemoveContext()

	evt := e.L.NewTable()
	evt.RawSetString("command", lua.LString(ev.Command))
	evt.RawSetString("modifiers", lua.LString(ev.Modifiers.String()))
	e.L.SetGlobal("event", evt)
	defer e.L.SetGlobal("event", lua.LNil)

	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("script %q panicked: %v", name, r)
		}
	}()

	top := e.L.GetTop()
	e.L.Push(fn)
	if err := e.L.PCall(0, lua.MultRet, nil); err != nil {
		e.L.SetTop(top)
		return errors.Wrapf(err, "run script %q", name)
	}
	e.L.SetTop(top)
	return nil
}

// Action compiles source and returns an enabled action named name that
// runs it. Run failures are logged, not returned.
func (e *Engine) Action(name, source string) (*Script, error) {
	if err := e.Compile(name, source); err != nil {
		return nil, err
	}
	s := &Script{engine: e, name: name}
	s.Init(name)
	return s, nil
}

// Names returns the compiled chunk names in sorted order.
func (e *Engine) Names() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]string, 0, len(e.chunks))
	for n := range e.chunks {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Close releases the Lua state. It is safe to call more than once.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return nil
	}
	e.closed = true
	e.chunks = nil
	e.L.Close()
	return nil
}

// Script is an action backed by a compiled chunk.
type Script struct {
	action.Base
	engine *Engine
	name   string
}

var _ action.Action = (*Script)(nil)

// Perform runs the chunk.
func (s *Script) Perform(ev core.ActionEvent) {
	if err := s.engine.Run(s.name, ev); err != nil {
		s.engine.logger.Error("script action failed", "action", s.name, "err", err)
	}
}
