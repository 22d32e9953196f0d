package config

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dshills/termkit/internal/config/loader"
)

type memFS map[string]string

func (m memFS) ReadFile(path string) ([]byte, error) {
	s, ok := m[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return []byte(s), nil
}

func (m memFS) Stat(string) (fs.FileInfo, error) { return nil, fs.ErrNotExist }

func env(vars ...string) Option {
	return WithEnv(loader.NewEnvLoader(loader.EnvPrefix).WithEnviron(func() []string { return vars }))
}

func TestDefaults(t *testing.T) {
	c := New(env())
	require.NoError(t, c.Load(context.Background()))

	require.Equal(t, "info", c.LogLevel())
	require.Empty(t, c.LogFile())
	require.True(t, c.Mouse())
	require.Equal(t, DefaultProgressInterval, c.ProgressInterval())
	require.Empty(t, c.KeymapFiles())
	require.False(t, c.WatchKeymaps())
	require.Empty(t, c.ScriptActions())
	require.Equal(t, LayerDefaults, c.Source("log.level"))
}

func TestLayerPrecedence(t *testing.T) {
	fsys := memFS{"/home/u/.config/termkit/config.toml": `
[log]
level = "debug"
file = "/tmp/termkit.log"

[ui]
mouse = false
progressInterval = "250ms"

[keymaps]
files = ["keys.toml", "/etc/termkit/extra.yaml"]
watch = true

[scripts.actions]
hop = "ui.focus_next() ui.focus_next()"
`}
	c := New(
		WithPath("/home/u/.config/termkit/config.toml"),
		WithFS(fsys),
		env("TERMKIT_LOG_LEVEL=warn", "TERMKIT_PROGRESS_INTERVAL=75ms"),
	)
	c.SetFlag("log.level", "error")
	require.NoError(t, c.Load(context.Background()))

	require.Equal(t, "error", c.LogLevel())
	require.Equal(t, LayerFlags, c.Source("log.level"))
	require.Equal(t, "/tmp/termkit.log", c.LogFile())
	require.False(t, c.Mouse())
	require.Equal(t, 75*time.Millisecond, c.ProgressInterval())
	require.Equal(t, LayerEnv, c.Source("ui.progressInterval"))
	require.Equal(t, []string{
		"/home/u/.config/termkit/keys.toml",
		"/etc/termkit/extra.yaml",
	}, c.KeymapFiles())
	require.True(t, c.WatchKeymaps())
	require.Equal(t, map[string]string{"hop": "ui.focus_next() ui.focus_next()"}, c.ScriptActions())
	require.Equal(t, []string{"hop"}, c.ScriptActionNames())
	require.Equal(t, []string{"/home/u/.config/termkit/config.toml"}, c.Files())
}

func TestMissingFileIsNotAnError(t *testing.T) {
	c := New(WithPath("/nope/config.toml"), WithFS(memFS{}), env())
	require.NoError(t, c.Load(context.Background()))
	require.Equal(t, "info", c.LogLevel())
	require.Empty(t, c.Files())
}

func TestTypeMismatch(t *testing.T) {
	tests := []struct {
		name, body string
	}{
		{"mouse", "[ui]\nmouse = \"sometimes\""},
		{"interval", "[ui]\nprogressInterval = \"soon\""},
		{"files", "[keymaps]\nfiles = [1, 2]"},
		{"actions", "[scripts]\nactions = \"x\""},
		{"action body", "[scripts.actions]\nx = 3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(WithPath("/c.toml"), WithFS(memFS{"/c.toml": tt.body}), env())
			err := c.Load(context.Background())
			require.Error(t, err)
			var serr *SettingError
			require.ErrorAs(t, err, &serr)
		})
	}
}

func TestParseErrorSurfaces(t *testing.T) {
	c := New(WithPath("/c.toml"), WithFS(memFS{"/c.toml": "[ui\n"}), env())
	err := c.Load(context.Background())
	var perr *loader.ParseError
	require.ErrorAs(t, err, &perr)
}

func TestLoadHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, New(env()).Load(ctx), context.Canceled)
}

func TestSetFlagDoesNotMutatePreviousLayer(t *testing.T) {
	c := New(env())
	c.SetFlag("ui.mouse", false)
	before := c.stack.Layer(LayerFlags)
	c.SetFlag("log.level", "debug")
	_, ok := loader.GetByPath(before.Data, "log.level")
	require.False(t, ok)
	require.False(t, c.Mouse())
	require.Equal(t, "debug", c.LogLevel())
}

func TestWatchKeymapFiles(t *testing.T) {
	dir := t.TempDir()
	keys := filepath.Join(dir, "keys.toml")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
[keymaps]
files = ["keys.toml"]
watch = true
`), 0o644))
	require.NoError(t, os.WriteFile(keys, []byte(""), 0o644))

	c := New(WithPath(filepath.Join(dir, "config.toml")), env())
	require.NoError(t, c.Load(context.Background()))

	changed := make(chan string, 8)
	w, err := c.WatchKeymapFiles(discardLogger(), func(p string) { changed <- p })
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(keys, []byte("keymaps = []"), 0o644))
	select {
	case p := <-changed:
		require.Equal(t, keys, p)
	case <-time.After(3 * time.Second):
		t.Fatal("no change reported")
	}
}

func TestWatchKeymapFilesNothingToWatch(t *testing.T) {
	c := New(env())
	_, err := c.WatchKeymapFiles(discardLogger(), func(string) {})
	require.ErrorIs(t, err, ErrNoWatchFiles)
}

func discardLogger() *slog.Logger { return slog.New(slog.DiscardHandler) }
