package keymap

import (
	"fmt"
)

// Keymap holds the bindings one source contributes to one widget class.
type Keymap struct {
	// Name is the widget class the keymap applies to, e.g. "Button".
	Name string

	// Bindings are the stroke-to-action mappings.
	Bindings []Binding

	// Priority orders keymaps of the same class; higher wins on conflict.
	Priority int

	// Source indicates where this keymap was defined.
	// Examples: "default", "user:/home/me/.config/termkit/keys.toml"
	Source string
}

// NewKeymap creates a new keymap for a widget class.
func NewKeymap(name string) *Keymap {
	return &Keymap{
		Name:     name,
		Bindings: make([]Binding, 0),
	}
}

// WithPriority sets the priority for this keymap.
func (k *Keymap) WithPriority(priority int) *Keymap {
	k.Priority = priority
	return k
}

// WithSource sets the source for this keymap.
func (k *Keymap) WithSource(source string) *Keymap {
	k.Source = source
	return k
}

// Add adds a focused-scope binding.
func (k *Keymap) Add(keys, actionKey string) *Keymap {
	k.Bindings = append(k.Bindings, NewBinding(keys, actionKey))
	return k
}

// AddBinding adds a fully configured binding.
func (k *Keymap) AddBinding(b Binding) *Keymap {
	k.Bindings = append(k.Bindings, b)
	return k
}

// Validate checks that all bindings in the keymap are valid.
func (k *Keymap) Validate() error {
	_, err := k.Parse()
	return err
}

// ParsedKeymap is a keymap with pre-parsed bindings.
type ParsedKeymap struct {
	*Keymap
	ParsedBindings []ParsedBinding
}

// Parse parses all bindings in the keymap.
func (k *Keymap) Parse() (*ParsedKeymap, error) {
	if k.Name == "" {
		return nil, fmt.Errorf("keymap from %q: empty name", k.Source)
	}
	parsed := &ParsedKeymap{
		Keymap:         k,
		ParsedBindings: make([]ParsedBinding, 0, len(k.Bindings)),
	}
	for i, b := range k.Bindings {
		pb, err := b.Parse()
		if err != nil {
			return nil, fmt.Errorf("keymap %q binding %d: %w", k.Name, i, err)
		}
		parsed.ParsedBindings = append(parsed.ParsedBindings, pb)
	}
	return parsed, nil
}
