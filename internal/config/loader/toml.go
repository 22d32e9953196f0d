package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	pkgerrors "github.com/pkg/errors"
)

// MaxIncludeDepth bounds nested @include chains.
const MaxIncludeDepth = 8

// ErrIncludeDepth is returned when @include nests deeper than allowed.
var ErrIncludeDepth = errors.New("include depth exceeded")

// TOMLLoader loads a TOML file and its includes.
type TOMLLoader struct {
	fs   FileSystem
	path string
}

// NewTOMLLoader creates a loader for path on the OS file system.
func NewTOMLLoader(path string) *TOMLLoader {
	return &TOMLLoader{fs: OSFS{}, path: path}
}

// NewTOMLLoaderWithFS creates a loader reading from fsys.
func NewTOMLLoaderWithFS(fsys FileSystem, path string) *TOMLLoader {
	return &TOMLLoader{fs: fsys, path: path}
}

// Path returns the file the loader reads.
func (l *TOMLLoader) Path() string { return l.path }

// Load reads the file and resolves @include entries. Included files are
// merged underneath the including file.
func (l *TOMLLoader) Load() (map[string]any, error) {
	return l.load(l.path, MaxIncludeDepth)
}

// Files returns the file and every file it includes, in load order. Missing
// files are skipped.
func (l *TOMLLoader) Files() ([]string, error) {
	var out []string
	var walk func(path string, depth int) error
	walk = func(path string, depth int) error {
		if depth <= 0 {
			return pkgerrors.Wrapf(ErrIncludeDepth, "%s", path)
		}
		data, err := l.read(path)
		if err != nil || data == nil {
			return err
		}
		out = append(out, path)
		incs, err := includes(data["@include"])
		if err != nil {
			return pkgerrors.Wrapf(err, "%s", path)
		}
		for _, inc := range incs {
			if err := walk(resolve(path, inc), depth-1); err != nil {
				return err
			}
		}
		return nil
	}
	err := walk(l.path, MaxIncludeDepth)
	return out, err
}

func (l *TOMLLoader) load(path string, depth int) (map[string]any, error) {
	if depth <= 0 {
		return nil, pkgerrors.Wrapf(ErrIncludeDepth, "%s", path)
	}
	data, err := l.read(path)
	if err != nil || data == nil {
		return nil, err
	}

	raw, ok := data["@include"]
	if !ok {
		return data, nil
	}
	delete(data, "@include")
	incs, err := includes(raw)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "%s", path)
	}

	merged := map[string]any{}
	for _, inc := range incs {
		sub, err := l.load(resolve(path, inc), depth-1)
		if err != nil {
			return nil, pkgerrors.Wrapf(err, "include %s", inc)
		}
		merged = DeepMerge(merged, sub)
	}
	return DeepMerge(merged, data), nil
}

func (l *TOMLLoader) read(path string) (map[string]any, error) {
	data, err := l.fs.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "reading config file %s", path)
	}
	return Parse(path, data)
}

// Parse decodes TOML data. source names the data in errors.
func Parse(source string, data []byte) (map[string]any, error) {
	out := map[string]any{}
	if err := toml.Unmarshal(data, &out); err != nil {
		perr := &ParseError{Path: source, Message: err.Error(), Err: err}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			perr.Line, perr.Column = derr.Position()
		}
		return nil, perr
	}
	return out, nil
}

func includes(v any) ([]string, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case string:
		return []string{v}, nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("@include entries must be strings, got %T", item)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("@include must be a string or an array of strings, got %T", v)
	}
}

func resolve(from, inc string) string {
	if filepath.IsAbs(inc) {
		return inc
	}
	return filepath.Join(filepath.Dir(from), inc)
}

// ParseError reports a malformed configuration file.
type ParseError struct {
	Path    string
	Line    int
	Column  int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error { return e.Err }
