package event

import (
	"log/slog"

	"github.com/dshills/termkit/internal/core"
)

// Option configures a Loop.
type Option func(*Loop)

// WithHandler sets the function events are delivered to.
func WithHandler(fn func(core.Event)) Option {
	return func(l *Loop) { l.handler = fn }
}

// WithAfterBatch sets a function run after each drained batch, normally
// the repaint.
func WithAfterBatch(fn func()) Option {
	return func(l *Loop) { l.afterBatch = fn }
}

// WithLogger sets the loop's logger. Recovered panics are logged at error
// level.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loop) { l.logger = logger }
}
