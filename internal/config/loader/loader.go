// Package loader reads configuration sources into nested maps.
//
// TOML files may pull in other files with an @include key; environment
// variables with the TERMKIT_ prefix map onto setting paths.
package loader

import (
	"io/fs"
	"os"
)

// Loader reads one configuration source. A missing source yields nil, nil.
type Loader interface {
	Load() (map[string]any, error)
}

// FileSystem is the file access a loader needs.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	Stat(path string) (fs.FileInfo, error)
}

// OSFS reads from the real file system.
type OSFS struct{}

func (OSFS) ReadFile(path string) ([]byte, error) { return os.ReadFile(path) }

func (OSFS) Stat(path string) (fs.FileInfo, error) { return os.Stat(path) }
