package keymap

import (
	"fmt"
	"sort"
	"sync"

	"github.com/dshills/termkit/internal/core"
	"github.com/dshills/termkit/internal/input/key"
)

// Registry holds the keymaps of every widget class and builds the UI input
// maps widgets install for themselves.
type Registry struct {
	mu sync.RWMutex

	// keymaps holds the registered keymaps per class in registration order.
	keymaps map[string][]*ParsedKeymap
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		keymaps: make(map[string][]*ParsedKeymap),
	}
}

// Register adds a keymap. A keymap with the same name and source is
// replaced.
func (r *Registry) Register(km *Keymap) error {
	if km == nil {
		return fmt.Errorf("cannot register nil keymap")
	}

	parsed, err := km.Parse()
	if err != nil {
		return fmt.Errorf("parsing keymap %q: %w", km.Name, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.unregisterLocked(km.Name, km.Source)
	r.keymaps[km.Name] = append(r.keymaps[km.Name], parsed)
	return nil
}

// Unregister removes the keymap for class name from source.
func (r *Registry) Unregister(name, source string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.unregisterLocked(name, source)
}

// UnregisterSource removes every keymap contributed by source.
func (r *Registry) UnregisterSource(source string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for name := range r.keymaps {
		r.unregisterLocked(name, source)
	}
}

// unregisterLocked removes a keymap without acquiring the lock.
// Caller must hold the write lock.
func (r *Registry) unregisterLocked(name, source string) {
	list := r.keymaps[name]
	for i, km := range list {
		if km.Source == source {
			r.keymaps[name] = append(list[:i], list[i+1:]...)
			break
		}
	}
	if len(r.keymaps[name]) == 0 {
		delete(r.keymaps, name)
	}
}

// Classes returns the names of every class with at least one keymap.
func (r *Registry) Classes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.keymaps))
	for name := range r.keymaps {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Bindings returns the effective stroke-to-action table for a class and
// scope. Keymaps are applied in ascending priority, registration order
// breaking ties, so later entries override earlier ones.
func (r *Registry) Bindings(class string, scope core.Scope) map[key.Stroke]string {
	scope.Validate()

	r.mu.RLock()
	list := append([]*ParsedKeymap(nil), r.keymaps[class]...)
	r.mu.RUnlock()

	sort.SliceStable(list, func(i, j int) bool { return list[i].Priority < list[j].Priority })

	out := make(map[key.Stroke]string)
	for _, km := range list {
		for _, pb := range km.ParsedBindings {
			if pb.Scope == scope {
				out[pb.Stroke] = pb.Action
			}
		}
	}
	return out
}

// UIInputMap builds a UI resource map for the focused or ancestor scope.
func (r *Registry) UIInputMap(class string, scope core.Scope) *InputMap {
	if scope == core.WhenInFocusedWindow {
		core.PanicUsage("Registry.UIInputMap", "window scope needs UIComponentInputMap")
	}
	m := NewUIInputMap()
	for s, a := range r.Bindings(class, scope) {
		m.Put(s, a)
	}
	return m
}

// UIComponentInputMap builds a UI resource map for the window scope of h.
func (r *Registry) UIComponentInputMap(class string, h core.Handle) *ComponentInputMap {
	m := NewUIComponentInputMap(h)
	for s, a := range r.Bindings(class, core.WhenInFocusedWindow) {
		m.InputMap.Put(s, a)
	}
	return m
}

// Describe returns every binding of a class for display, defaults first.
func (r *Registry) Describe(class string) []Binding {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Binding
	for _, km := range r.keymaps[class] {
		out = append(out, km.Bindings...)
	}
	return out
}
