package keymap

import (
	"sort"

	"github.com/dshills/termkit/internal/action"
)

// ActionMap maps action keys to actions, with the same parent delegation
// as InputMap. The zero ActionMap is empty and ready to use.
type ActionMap struct {
	entries map[string]action.Action
	parent  *ActionMap
	ui      bool
}

// NewActionMap creates an empty application map.
func NewActionMap() *ActionMap {
	return &ActionMap{}
}

// NewUIActionMap creates an empty map flagged as installed by the UI.
func NewUIActionMap() *ActionMap {
	return &ActionMap{ui: true}
}

// Get resolves k locally, then through the parent chain.
func (m *ActionMap) Get(k string) (action.Action, bool) {
	for cur := m; cur != nil; cur = cur.parent {
		if a, ok := cur.entries[k]; ok {
			return a, true
		}
	}
	return nil, false
}

// Put binds k to a. A nil action removes the entry.
func (m *ActionMap) Put(k string, a action.Action) {
	if a == nil {
		m.Remove(k)
		return
	}
	if m.entries == nil {
		m.entries = make(map[string]action.Action)
	}
	m.entries[k] = a
}

// Remove deletes the map's own entry for k.
func (m *ActionMap) Remove(k string) {
	delete(m.entries, k)
}

// Clear deletes all of the map's own entries.
func (m *ActionMap) Clear() {
	m.entries = nil
}

// Keys returns the map's own keys, sorted.
func (m *ActionMap) Keys() []string {
	out := make([]string, 0, len(m.entries))
	for k := range m.entries {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// ResolvedKeys returns the keys of the map and every parent, sorted.
func (m *ActionMap) ResolvedKeys() []string {
	seen := make(map[string]struct{})
	for cur := m; cur != nil; cur = cur.parent {
		for k := range cur.entries {
			seen[k] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Size returns the number of the map's own entries.
func (m *ActionMap) Size() int {
	return len(m.entries)
}

// Parent returns the parent map or nil.
func (m *ActionMap) Parent() *ActionMap {
	return m.parent
}

// SetParent replaces the parent. The map's own entries are never touched.
func (m *ActionMap) SetParent(parent *ActionMap) {
	m.parent = parent
}

// UIResource reports whether the map was installed by the UI.
func (m *ActionMap) UIResource() bool {
	return m.ui
}

// ReplaceUIActionMap installs ui as the UI sub-chain of owner, keeping
// every application map above it.
func ReplaceUIActionMap(owner, ui *ActionMap) {
	for m := owner; m != nil; m = m.parent {
		if m.parent == nil || m.parent.ui {
			m.parent = ui
			return
		}
	}
}
