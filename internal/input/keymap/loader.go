package keymap

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for keymap files with an unsupported extension.
var ErrUnknownFormat = errors.New("unknown keymap file format")

// Loader loads keymaps from TOML, YAML or JSON files.
type Loader struct {
	// searchPaths are directories to search for keymap files.
	searchPaths []string

	// readFile is os.ReadFile outside tests.
	readFile func(string) ([]byte, error)
}

// NewLoader creates a new keymap loader.
func NewLoader() *Loader {
	return &Loader{
		searchPaths: make([]string, 0),
		readFile:    os.ReadFile,
	}
}

// AddSearchPath adds a directory to search for keymap files.
func (l *Loader) AddSearchPath(path string) {
	l.searchPaths = append(l.searchPaths, path)
}

// LoadFile loads every keymap in a file. The format follows the extension.
// Keymaps without a source are tagged "user:<path>".
func (l *Loader) LoadFile(path string) ([]*Keymap, error) {
	data, err := l.readFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading keymap file %s", path)
	}

	kms, err := Decode(Format(path), data)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding keymap file %s", path)
	}
	for _, km := range kms {
		if km.Source == "" {
			km.Source = "user:" + path
		}
	}
	return kms, nil
}

// Format returns "toml", "yaml" or "json" for a path, or "" if unknown.
func Format(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return "toml"
	case ".yaml", ".yml":
		return "yaml"
	case ".json":
		return "json"
	}
	return ""
}

// Decode parses keymap file content in the named format.
func Decode(format string, data []byte) ([]*Keymap, error) {
	var cfg fileConfig
	var err error
	switch format {
	case "toml":
		err = toml.Unmarshal(data, &cfg)
	case "yaml":
		err = yaml.Unmarshal(data, &cfg)
	case "json":
		err = json.Unmarshal(data, &cfg)
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "format %q", format)
	}
	if err != nil {
		return nil, err
	}

	out := make([]*Keymap, 0, len(cfg.Keymaps))
	for _, kc := range cfg.Keymaps {
		km := &Keymap{
			Name:     kc.Name,
			Priority: kc.Priority,
			Source:   kc.Source,
			Bindings: make([]Binding, 0, len(kc.Bindings)),
		}
		for _, bc := range kc.Bindings {
			km.Bindings = append(km.Bindings, Binding(bc))
		}
		out = append(out, km)
	}
	return out, nil
}

// LoadAll loads all keymap files from the search paths. Files that fail
// to load are reported in the returned error list and skipped.
func (l *Loader) LoadAll() ([]*Keymap, []error) {
	keymaps := make([]*Keymap, 0)
	var errs []error

	for _, dir := range l.searchPaths {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if e.IsDir() || Format(e.Name()) == "" {
				continue
			}
			kms, err := l.LoadFile(filepath.Join(dir, e.Name()))
			if err != nil {
				errs = append(errs, err)
				continue
			}
			keymaps = append(keymaps, kms...)
		}
	}

	return keymaps, errs
}

// LoadAndRegister loads the given files and registers their keymaps.
func (l *Loader) LoadAndRegister(registry *Registry, paths ...string) error {
	for _, p := range paths {
		kms, err := l.LoadFile(p)
		if err != nil {
			return err
		}
		for _, km := range kms {
			if err := registry.Register(km); err != nil {
				return errors.Wrapf(err, "registering keymap %q from %s", km.Name, p)
			}
		}
	}
	return nil
}

// fileConfig is the on-disk structure shared by all formats.
type fileConfig struct {
	Keymaps []keymapConfig `json:"keymaps" toml:"keymaps" yaml:"keymaps"`
}

type keymapConfig struct {
	Name     string          `json:"name" toml:"name" yaml:"name"`
	Priority int             `json:"priority,omitempty" toml:"priority,omitempty" yaml:"priority,omitempty"`
	Source   string          `json:"source,omitempty" toml:"source,omitempty" yaml:"source,omitempty"`
	Bindings []bindingConfig `json:"bindings" toml:"bindings" yaml:"bindings"`
}

type bindingConfig struct {
	Keys        string `json:"keys" toml:"keys" yaml:"keys"`
	Action      string `json:"action" toml:"action" yaml:"action"`
	Scope       string `json:"scope,omitempty" toml:"scope,omitempty" yaml:"scope,omitempty"`
	Description string `json:"description,omitempty" toml:"description,omitempty" yaml:"description,omitempty"`
	Category    string `json:"category,omitempty" toml:"category,omitempty" yaml:"category,omitempty"`
}
