package keymap

import (
	"sort"

	"github.com/dshills/termkit/internal/core"
	"github.com/dshills/termkit/internal/input/key"
)

// Inputs is a stroke to action-key mapping with parent delegation.
// InputMap and ComponentInputMap implement it.
type Inputs interface {
	// Get resolves s locally, then through the parent chain.
	Get(s key.Stroke) (string, bool)
	Put(s key.Stroke, actionKey string)
	Remove(s key.Stroke)
	Clear()
	// Keys returns the map's own strokes, not its parents'.
	Keys() []key.Stroke
	// ResolvedKeys returns the strokes of the map and every parent.
	ResolvedKeys() []key.Stroke
	Size() int
	Parent() Inputs
	SetParent(parent Inputs)
	// UIResource reports whether the map was installed by the UI
	// rather than by application code.
	UIResource() bool
}

// InputMap maps key strokes to action keys.
// The zero InputMap is empty and ready to use.
type InputMap struct {
	entries map[key.Stroke]string
	parent  Inputs
	ui      bool
}

// NewInputMap creates an empty application map.
func NewInputMap() *InputMap {
	return &InputMap{}
}

// NewUIInputMap creates an empty map flagged as installed by the UI.
func NewUIInputMap() *InputMap {
	return &InputMap{ui: true}
}

// Get implements Inputs.
func (m *InputMap) Get(s key.Stroke) (string, bool) {
	if v, ok := m.entries[s]; ok {
		return v, true
	}
	if m.parent != nil {
		return m.parent.Get(s)
	}
	return "", false
}

// Put implements Inputs. An empty action key removes the entry.
func (m *InputMap) Put(s key.Stroke, actionKey string) {
	if actionKey == "" {
		m.Remove(s)
		return
	}
	if m.entries == nil {
		m.entries = make(map[key.Stroke]string)
	}
	m.entries[s] = actionKey
}

// Remove implements Inputs. Only the map's own entry is removed.
func (m *InputMap) Remove(s key.Stroke) {
	delete(m.entries, s)
}

// Clear implements Inputs.
func (m *InputMap) Clear() {
	m.entries = nil
}

// Keys implements Inputs.
func (m *InputMap) Keys() []key.Stroke {
	return sortedStrokes(m.entries)
}

// ResolvedKeys implements Inputs.
func (m *InputMap) ResolvedKeys() []key.Stroke {
	seen := make(map[key.Stroke]string)
	for cur := Inputs(m); cur != nil; cur = cur.Parent() {
		for _, s := range cur.Keys() {
			seen[s] = ""
		}
	}
	return sortedStrokes(seen)
}

// Size implements Inputs.
func (m *InputMap) Size() int {
	return len(m.entries)
}

// Parent implements Inputs.
func (m *InputMap) Parent() Inputs {
	return m.parent
}

// SetParent implements Inputs. The map's own entries are never touched.
func (m *InputMap) SetParent(parent Inputs) {
	m.parent = nilIfTypedNil(parent)
}

// UIResource implements Inputs.
func (m *InputMap) UIResource() bool {
	return m.ui
}

// ComponentInputMap is an InputMap bound to one component. It is the only
// map accepted for the WhenInFocusedWindow scope; changes to it are
// reported so the keyboard manager registrations can be kept in sync.
type ComponentInputMap struct {
	InputMap
	component core.Handle
	onChange  func(core.Handle)
}

// NewComponentInputMap creates an application map bound to h.
func NewComponentInputMap(h core.Handle) *ComponentInputMap {
	return &ComponentInputMap{component: h}
}

// NewUIComponentInputMap creates a UI map bound to h.
func NewUIComponentInputMap(h core.Handle) *ComponentInputMap {
	return &ComponentInputMap{InputMap: InputMap{ui: true}, component: h}
}

// Component returns the handle the map is bound to.
func (m *ComponentInputMap) Component() core.Handle {
	return m.component
}

// OnChange installs the hook run after every mutation of this map.
func (m *ComponentInputMap) OnChange(fn func(core.Handle)) {
	m.onChange = fn
}

// Put implements Inputs.
func (m *ComponentInputMap) Put(s key.Stroke, actionKey string) {
	m.InputMap.Put(s, actionKey)
	m.changed()
}

// Remove implements Inputs.
func (m *ComponentInputMap) Remove(s key.Stroke) {
	m.InputMap.Remove(s)
	m.changed()
}

// Clear implements Inputs.
func (m *ComponentInputMap) Clear() {
	m.InputMap.Clear()
	m.changed()
}

// SetParent implements Inputs. The parent must be a ComponentInputMap bound
// to the same component; anything else panics with a core.UsageError.
func (m *ComponentInputMap) SetParent(parent Inputs) {
	parent = nilIfTypedNil(parent)
	if parent != nil {
		cp, ok := parent.(*ComponentInputMap)
		if !ok {
			core.PanicUsage("ComponentInputMap.SetParent", "parent must be a ComponentInputMap, got %T", parent)
		}
		if cp.component != m.component {
			core.PanicUsage("ComponentInputMap.SetParent",
				"parent bound to component %d, map bound to %d", cp.component, m.component)
		}
	}
	m.InputMap.SetParent(parent)
	m.changed()
}

func (m *ComponentInputMap) changed() {
	if m.onChange != nil {
		m.onChange(m.component)
	}
}

// ReplaceUIInputMap installs ui as the UI sub-chain of owner. It walks the
// owner chain to the first parent that is nil or a UI resource and swaps
// that parent for ui. Application entries anywhere above it are kept.
func ReplaceUIInputMap(owner, ui Inputs) {
	for m := owner; m != nil; {
		p := m.Parent()
		if p == nil || p.UIResource() {
			m.SetParent(ui)
			return
		}
		m = p
	}
}

func nilIfTypedNil(m Inputs) Inputs {
	switch v := m.(type) {
	case *InputMap:
		if v == nil {
			return nil
		}
	case *ComponentInputMap:
		if v == nil {
			return nil
		}
	}
	return m
}

func sortedStrokes[V any](m map[key.Stroke]V) []key.Stroke {
	out := make([]key.Stroke, 0, len(m))
	for s := range m {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}
