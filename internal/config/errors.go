package config

import (
	"errors"
	"fmt"
)

var (
	// ErrTypeMismatch is returned when a setting holds the wrong type.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrNoWatchFiles is returned by Watch when there is nothing to watch.
	ErrNoWatchFiles = errors.New("no files to watch")
)

// SettingError ties an error to a setting path.
type SettingError struct {
	Path string
	Err  error
}

func (e *SettingError) Error() string {
	return fmt.Sprintf("setting %s: %v", e.Path, e.Err)
}

func (e *SettingError) Unwrap() error { return e.Err }
