package loader

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// EnvPrefix is the prefix of every variable EnvLoader reads.
const EnvPrefix = "TERMKIT_"

type envSetting struct {
	path string
	list bool
}

// EnvLoader maps TERMKIT_* environment variables onto setting paths.
type EnvLoader struct {
	prefix  string
	mapping map[string]envSetting
	environ func() []string
}

// NewEnvLoader creates a loader for variables starting with prefix.
func NewEnvLoader(prefix string) *EnvLoader {
	return &EnvLoader{
		prefix: prefix,
		mapping: map[string]envSetting{
			prefix + "LOG_LEVEL":         {path: "log.level"},
			prefix + "LOG_FILE":          {path: "log.file"},
			prefix + "MOUSE":             {path: "ui.mouse"},
			prefix + "PROGRESS_INTERVAL": {path: "ui.progressInterval"},
			prefix + "KEYMAPS":           {path: "keymaps.files", list: true},
			prefix + "KEYMAPS_WATCH":     {path: "keymaps.watch"},
		},
		environ: os.Environ,
	}
}

// WithEnviron replaces os.Environ as the variable source.
func (l *EnvLoader) WithEnviron(fn func() []string) *EnvLoader {
	l.environ = fn
	return l
}

// Load returns the settings found in the environment. Variables with the
// prefix but no explicit mapping become section.camelCase paths, so
// TERMKIT_UI_PROGRESS_INTERVAL sets ui.progressInterval.
func (l *EnvLoader) Load() (map[string]any, error) {
	out := map[string]any{}
	for _, kv := range l.environ() {
		name, val, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, l.prefix) {
			continue
		}
		if s, mapped := l.mapping[name]; mapped {
			if s.list {
				SetByPath(out, s.path, splitList(val))
			} else {
				SetByPath(out, s.path, ParseValue(val))
			}
			continue
		}
		if path := l.envToPath(name); path != "" {
			SetByPath(out, path, ParseValue(val))
		}
	}
	return out, nil
}

func (l *EnvLoader) envToPath(name string) string {
	parts := strings.Split(strings.ToLower(strings.TrimPrefix(name, l.prefix)), "_")
	if len(parts) < 2 || parts[0] == "" {
		return ""
	}
	setting := parts[1]
	for _, p := range parts[2:] {
		if p != "" {
			setting += strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return parts[0] + "." + setting
}

// ParseValue converts an environment or flag string to a bool, int64,
// float64 or duration when it looks like one.
func ParseValue(s string) any {
	switch strings.ToLower(s) {
	case "true", "yes", "on":
		return true
	case "false", "no", "off":
		return false
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if strings.Contains(s, ".") {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	return s
}

func splitList(s string) []any {
	var out []any
	for _, p := range filepath.SplitList(s) {
		for _, q := range strings.Split(p, ",") {
			if q = strings.TrimSpace(q); q != "" {
				out = append(out, q)
			}
		}
	}
	return out
}
