package config

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/dshills/termkit/internal/config/layer"
	"github.com/dshills/termkit/internal/config/loader"
)

// Layer names.
const (
	LayerDefaults = "defaults"
	LayerFile     = "file"
	LayerEnv      = "environment"
	LayerFlags    = "flags"
)

// Config is the merged view of every settings layer.
type Config struct {
	mu    sync.RWMutex
	stack *layer.Stack
	path  string
	fs    loader.FileSystem
	env   *loader.EnvLoader
	files []string
}

// Option configures a Config.
type Option func(*Config)

// WithPath sets the config file. An empty path skips the file layer.
func WithPath(path string) Option {
	return func(c *Config) { c.path = path }
}

// WithFS sets the file system the config file is read from.
func WithFS(fsys loader.FileSystem) Option {
	return func(c *Config) { c.fs = fsys }
}

// WithEnv replaces the environment loader.
func WithEnv(env *loader.EnvLoader) Option {
	return func(c *Config) { c.env = env }
}

// New creates a Config holding only the defaults. Call Load to read the
// file and environment.
func New(opts ...Option) *Config {
	c := &Config{
		stack: layer.NewStack(),
		fs:    loader.OSFS{},
		env:   loader.NewEnvLoader(loader.EnvPrefix),
	}
	for _, opt := range opts {
		opt(c)
	}
	def := layer.New(LayerDefaults, layer.SourceBuiltin)
	def.Data = defaults()
	c.stack.Set(def)
	return c
}

// DefaultPath returns $XDG_CONFIG_HOME/termkit/config.toml, falling back
// to the platform user config directory.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		var err error
		if dir, err = os.UserConfigDir(); err != nil {
			return ""
		}
	}
	return filepath.Join(dir, "termkit", "config.toml")
}

// Path returns the config file path.
func (c *Config) Path() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.path
}

// Files returns the config file and its includes as of the last Load.
func (c *Config) Files() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string(nil), c.files...)
}

// Load reads the file and environment layers and validates the result.
// Flag values set earlier are kept. A missing config file is not an error.
func (c *Config) Load(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	path := c.path
	c.mu.Unlock()

	if path != "" {
		tl := loader.NewTOMLLoaderWithFS(c.fs, path)
		data, err := tl.Load()
		if err != nil {
			return errors.Wrap(err, "loading config file")
		}
		files, err := tl.Files()
		if err != nil {
			return errors.Wrap(err, "listing config files")
		}
		l := layer.New(LayerFile, layer.SourceFile)
		l.Path = path
		if data != nil {
			l.Data = data
		}
		c.stack.Set(l)
		c.mu.Lock()
		c.files = files
		c.mu.Unlock()
	}

	data, err := c.env.Load()
	if err != nil {
		return errors.Wrap(err, "loading environment")
	}
	l := layer.New(LayerEnv, layer.SourceEnv)
	l.Data = data
	c.stack.Set(l)

	return c.Validate()
}

// SetFlag records a command-line override for path.
func (c *Config) SetFlag(path string, v any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	l := c.stack.Layer(LayerFlags)
	if l == nil {
		l = layer.New(LayerFlags, layer.SourceFlags)
	} else {
		l = &layer.Layer{Name: l.Name, Source: l.Source, Data: loader.Clone(l.Data)}
	}
	loader.SetByPath(l.Data, path, v)
	c.stack.Set(l)
}

// Get returns the merged value at path.
func (c *Config) Get(path string) (any, bool) {
	return c.stack.Get(path)
}

// Source returns the name of the layer that supplies path.
func (c *Config) Source(path string) string {
	if l, ok := c.stack.SourceOf(path); ok {
		return l.Name
	}
	return ""
}

// Validate checks the type of every known setting.
func (c *Config) Validate() error {
	checks := []func() error{
		func() error { _, err := c.stringAt("log.level"); return err },
		func() error { _, err := c.stringAt("log.file"); return err },
		func() error { _, err := c.boolAt("ui.mouse"); return err },
		func() error { _, err := c.durationAt("ui.progressInterval"); return err },
		func() error { _, err := c.stringsAt("keymaps.files"); return err },
		func() error { _, err := c.boolAt("keymaps.watch"); return err },
		func() error { _, err := c.stringMapAt("scripts.actions"); return err },
	}
	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

// LogLevel returns log.level.
func (c *Config) LogLevel() string {
	s, err := c.stringAt("log.level")
	if err != nil || s == "" {
		return DefaultLogLevel
	}
	return s
}

// LogFile returns log.file.
func (c *Config) LogFile() string {
	s, _ := c.stringAt("log.file")
	return s
}

// Mouse returns ui.mouse.
func (c *Config) Mouse() bool {
	b, err := c.boolAt("ui.mouse")
	return b || err != nil
}

// ProgressInterval returns ui.progressInterval.
func (c *Config) ProgressInterval() time.Duration {
	d, err := c.durationAt("ui.progressInterval")
	if err != nil || d <= 0 {
		return DefaultProgressInterval
	}
	return d
}

// KeymapFiles returns keymaps.files. Relative entries are resolved against
// the config file's directory.
func (c *Config) KeymapFiles() []string {
	files, _ := c.stringsAt("keymaps.files")
	base := filepath.Dir(c.Path())
	out := make([]string, 0, len(files))
	for _, f := range files {
		if !filepath.IsAbs(f) && c.Path() != "" {
			f = filepath.Join(base, f)
		}
		out = append(out, f)
	}
	return out
}

// WatchKeymaps returns keymaps.watch.
func (c *Config) WatchKeymaps() bool {
	b, _ := c.boolAt("keymaps.watch")
	return b
}

// ScriptActions returns scripts.actions.
func (c *Config) ScriptActions() map[string]string {
	m, _ := c.stringMapAt("scripts.actions")
	return m
}

// ScriptActionNames returns the script action names, sorted.
func (c *Config) ScriptActionNames() []string {
	m := c.ScriptActions()
	names := make([]string, 0, len(m))
	for n := range m {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (c *Config) mismatch(path string, v any, want string) error {
	return &SettingError{Path: path, Err: errors.Wrapf(ErrTypeMismatch, "want %s, got %T", want, v)}
}

func (c *Config) stringAt(path string) (string, error) {
	v, ok := c.Get(path)
	if !ok {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", c.mismatch(path, v, "string")
	}
	return s, nil
}

func (c *Config) boolAt(path string) (bool, error) {
	v, ok := c.Get(path)
	if !ok {
		return false, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, c.mismatch(path, v, "bool")
	}
	return b, nil
}

func (c *Config) durationAt(path string) (time.Duration, error) {
	v, ok := c.Get(path)
	if !ok {
		return 0, nil
	}
	switch v := v.(type) {
	case time.Duration:
		return v, nil
	case int64:
		return time.Duration(v) * time.Millisecond, nil
	case string:
		d, err := time.ParseDuration(v)
		if err != nil {
			return 0, &SettingError{Path: path, Err: err}
		}
		return d, nil
	default:
		return 0, c.mismatch(path, v, "duration")
	}
}

func (c *Config) stringsAt(path string) ([]string, error) {
	v, ok := c.Get(path)
	if !ok {
		return nil, nil
	}
	switch v := v.(type) {
	case string:
		return []string{v}, nil
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			s, ok := e.(string)
			if !ok {
				return nil, c.mismatch(path, e, "string list")
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, c.mismatch(path, v, "string list")
	}
}

func (c *Config) stringMapAt(path string) (map[string]string, error) {
	v, ok := c.Get(path)
	if !ok {
		return map[string]string{}, nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, c.mismatch(path, v, "table")
	}
	out := make(map[string]string, len(m))
	for k, e := range m {
		s, ok := e.(string)
		if !ok {
			return nil, c.mismatch(path+"."+k, e, "string")
		}
		out[k] = s
	}
	return out, nil
}
