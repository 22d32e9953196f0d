package app

import (
	"github.com/pkg/errors"

	"github.com/dshills/termkit/internal/widget"
)

// keymapID identifies a registered keymap.
type keymapID struct {
	class  string
	source string
}

// loadKeymapFile registers the keymaps in path, replacing those an
// earlier load of the same path registered. On error the earlier keymaps
// stay in place.
func (a *Application) loadKeymapFile(path string) error {
	kms, err := a.kmLoader.LoadFile(path)
	if err != nil {
		return err
	}

	for _, id := range a.kmFiles[path] {
		a.keymaps.Unregister(id.class, id.source)
	}
	ids := make([]keymapID, 0, len(kms))
	var firstErr error
	for _, km := range kms {
		if err := a.keymaps.Register(km); err != nil {
			if firstErr == nil {
				firstErr = errors.Wrapf(err, "keymap file %s", path)
			}
			continue
		}
		ids = append(ids, keymapID{class: km.Name, source: km.Source})
	}
	a.kmFiles[path] = ids
	a.log.Debug("keymap file loaded", "path", path, "keymaps", len(ids))
	return firstErr
}

// reloadKeymap reloads path and reinstalls the UI maps of every window.
// It runs on the UI goroutine.
func (a *Application) reloadKeymap(path string) {
	if err := a.loadKeymapFile(path); err != nil {
		a.log.Error("keymap reload failed", "path", path, "err", err)
		return
	}
	a.reinstallUI()
	a.log.Info("keymap reloaded", "path", path)
}

// reinstallUI rebuilds the UI input maps of every attached window.
func (a *Application) reinstallUI() {
	for _, win := range a.tree.Windows() {
		widget.InstallUITree(a.tree, win)
	}
}
