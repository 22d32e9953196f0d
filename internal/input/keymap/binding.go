package keymap

import (
	"fmt"
	"strings"

	"github.com/dshills/termkit/internal/core"
	"github.com/dshills/termkit/internal/input/key"
)

// Binding is a single stroke-to-action mapping as written in a keymap.
type Binding struct {
	// Keys is the stroke spec, e.g. "Enter", "Ctrl+S", "typed a".
	Keys string

	// Action is the action key looked up in the component's ActionMap.
	// Examples: "pressed", "selectNextRow", "cancel"
	Action string

	// Scope is "focused" (default), "ancestor" or "window".
	Scope string

	// Description provides documentation for the binding.
	Description string

	// Category groups bindings for display purposes.
	Category string
}

// NewBinding creates a focused-scope binding.
func NewBinding(keys, actionKey string) Binding {
	return Binding{Keys: keys, Action: actionKey}
}

// InScope returns a copy of b with the scope set.
func (b Binding) InScope(scope string) Binding {
	b.Scope = scope
	return b
}

// WithDescription returns a copy of b with the description set.
func (b Binding) WithDescription(desc string) Binding {
	b.Description = desc
	return b
}

// ParsedBinding is a binding with its stroke and scope resolved.
type ParsedBinding struct {
	Binding
	Stroke key.Stroke
	Scope  core.Scope
}

// Parse resolves the stroke spec and scope name.
func (b Binding) Parse() (ParsedBinding, error) {
	if b.Action == "" {
		return ParsedBinding{}, fmt.Errorf("binding %q: empty action", b.Keys)
	}
	s, err := key.Parse(b.Keys)
	if err != nil {
		return ParsedBinding{}, fmt.Errorf("binding %q: %w", b.Keys, err)
	}
	scope, err := ParseScope(b.Scope)
	if err != nil {
		return ParsedBinding{}, fmt.Errorf("binding %q: %w", b.Keys, err)
	}
	return ParsedBinding{Binding: b, Stroke: s, Scope: scope}, nil
}

// ParseScope maps a scope name used in keymap files to a core.Scope.
// The empty name means WhenFocused.
func ParseScope(name string) (core.Scope, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "focused", "when_focused":
		return core.WhenFocused, nil
	case "ancestor", "when_ancestor_of_focused_component":
		return core.WhenAncestorOfFocusedComponent, nil
	case "window", "when_in_focused_window":
		return core.WhenInFocusedWindow, nil
	}
	return 0, fmt.Errorf("unknown scope %q", name)
}

// ScopeName returns the keymap file name of s.
func ScopeName(s core.Scope) string {
	switch s {
	case core.WhenAncestorOfFocusedComponent:
		return "ancestor"
	case core.WhenInFocusedWindow:
		return "window"
	default:
		return "focused"
	}
}

// BindingCategory represents a category of bindings for display.
type BindingCategory struct {
	Name     string
	Bindings []Binding
}

// GroupByCategory groups bindings by their category, keeping first-seen order.
func GroupByCategory(bindings []Binding) []BindingCategory {
	categoryMap := make(map[string][]Binding)
	order := make([]string, 0)

	for _, b := range bindings {
		cat := b.Category
		if cat == "" {
			cat = "Other"
		}
		if _, exists := categoryMap[cat]; !exists {
			order = append(order, cat)
		}
		categoryMap[cat] = append(categoryMap[cat], b)
	}

	result := make([]BindingCategory, 0, len(order))
	for _, name := range order {
		result = append(result, BindingCategory{Name: name, Bindings: categoryMap[name]})
	}
	return result
}
