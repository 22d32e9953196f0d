package config

import (
	"log/slog"

	"github.com/pkg/errors"

	"github.com/dshills/termkit/internal/config/watcher"
)

// WatchKeymapFiles starts a watcher over keymaps.files and calls fn with
// each changed path. fn runs on the watcher goroutine. The caller closes
// the returned watcher.
func (c *Config) WatchKeymapFiles(logger *slog.Logger, fn func(path string)) (*watcher.Watcher, error) {
	files := c.KeymapFiles()
	if len(files) == 0 {
		return nil, ErrNoWatchFiles
	}
	w, err := watcher.New(watcher.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		if err := w.Watch(f); err != nil {
			_ = w.Close()
			return nil, errors.Wrapf(err, "watching keymap file %s", f)
		}
	}
	w.OnChange(func(ev watcher.Event) {
		logger.Debug("keymap file changed", "path", ev.Path, "op", ev.Op.String())
		fn(ev.Path)
	})
	return w, nil
}
