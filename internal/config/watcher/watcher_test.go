package watcher

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *recorder) handle(ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recorder) paths() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, ev := range r.events {
		out = append(out, ev.Path)
	}
	return out
}

func newWatcher(t *testing.T, opts ...Option) (*Watcher, *recorder) {
	t.Helper()
	w, err := New(opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })
	r := &recorder{}
	w.OnChange(r.handle)
	return w, r
}

func TestOperationString(t *testing.T) {
	tests := []struct {
		op   Operation
		want string
	}{
		{OpWrite, "write"},
		{OpCreate, "create"},
		{OpRemove, "remove"},
		{OpRename, "rename"},
		{Operation(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.op, got, tt.want)
		}
	}
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	keys := filepath.Join(dir, "keys.toml")
	other := filepath.Join(dir, "other.toml")
	require.NoError(t, os.WriteFile(keys, []byte("a"), 0o644))

	w, r := newWatcher(t, WithDebounce(20*time.Millisecond))
	require.NoError(t, w.Watch(keys))
	require.Equal(t, []string{keys}, w.Files())

	require.NoError(t, os.WriteFile(other, []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(keys, []byte("b"), 0o644))

	require.Eventually(t, func() bool { return len(r.paths()) > 0 }, 2*time.Second, 10*time.Millisecond)
	for _, p := range r.paths() {
		require.Equal(t, keys, p)
	}
}

func TestWatcherDebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	keys := filepath.Join(dir, "keys.toml")
	require.NoError(t, os.WriteFile(keys, []byte("a"), 0o644))

	w, r := newWatcher(t, WithDebounce(300*time.Millisecond))
	require.NoError(t, w.Watch(keys))

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(keys, []byte{byte('a' + i)}, 0o644))
	}
	require.Eventually(t, func() bool { return len(r.paths()) > 0 }, 3*time.Second, 10*time.Millisecond)
	time.Sleep(400 * time.Millisecond)
	require.Len(t, r.paths(), 1)
}

func TestWatcherSeesCreation(t *testing.T) {
	dir := t.TempDir()
	later := filepath.Join(dir, "later.yaml")

	w, r := newWatcher(t, WithDebounce(10*time.Millisecond))
	require.NoError(t, w.Watch(later))
	require.NoError(t, os.WriteFile(later, []byte("keymaps: []"), 0o644))

	require.Eventually(t, func() bool { return len(r.paths()) > 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestWatcherUnwatch(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.toml")
	b := filepath.Join(dir, "b.toml")

	w, r := newWatcher(t, WithDebounce(10*time.Millisecond))
	require.NoError(t, w.Watch(a))
	require.NoError(t, w.Watch(b))
	require.NoError(t, w.Unwatch(a))
	require.NoError(t, w.Unwatch(a))
	require.Equal(t, []string{b}, w.Files())

	require.NoError(t, os.WriteFile(a, []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("b"), 0o644))
	require.Eventually(t, func() bool { return len(r.paths()) > 0 }, 2*time.Second, 10*time.Millisecond)
	require.NotContains(t, r.paths(), a)
}

func TestWatcherClose(t *testing.T) {
	w, err := New()
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
	require.ErrorIs(t, w.Watch(filepath.Join(t.TempDir(), "x")), ErrWatcherClosed)
}
