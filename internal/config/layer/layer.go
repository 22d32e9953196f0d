// Package layer merges configuration sources by priority.
package layer

import (
	"sort"
	"sync"

	"github.com/dshills/termkit/internal/config/loader"
)

// Source says where a layer came from.
type Source uint8

const (
	SourceBuiltin Source = iota
	SourceFile
	SourceEnv
	SourceFlags
)

func (s Source) String() string {
	switch s {
	case SourceBuiltin:
		return "builtin"
	case SourceFile:
		return "file"
	case SourceEnv:
		return "environment"
	case SourceFlags:
		return "flags"
	default:
		return "unknown"
	}
}

// Priority returns the merge order of a source; higher wins.
func (s Source) Priority() int {
	return int(s) * 100
}

// Layer is one named source of settings.
type Layer struct {
	Name   string
	Source Source
	Path   string
	Data   map[string]any
}

// New creates an empty layer.
func New(name string, src Source) *Layer {
	return &Layer{Name: name, Source: src, Data: map[string]any{}}
}

// Stack holds layers and merges them on demand.
type Stack struct {
	mu     sync.RWMutex
	layers []*Layer
	merged map[string]any
}

// NewStack creates an empty stack.
func NewStack() *Stack {
	return &Stack{}
}

// Set adds l, replacing any layer with the same name.
func (s *Stack) Set(l *Layer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, old := range s.layers {
		if old.Name == l.Name {
			s.layers[i] = l
			s.sortLocked()
			return
		}
	}
	s.layers = append(s.layers, l)
	s.sortLocked()
}

// Remove drops the named layer and reports whether it existed.
func (s *Stack) Remove(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, l := range s.layers {
		if l.Name == name {
			s.layers = append(s.layers[:i], s.layers[i+1:]...)
			s.merged = nil
			return true
		}
	}
	return false
}

// Layer returns the named layer or nil.
func (s *Stack) Layer(name string) *Layer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, l := range s.layers {
		if l.Name == name {
			return l
		}
	}
	return nil
}

// Names returns the layer names from lowest to highest priority.
func (s *Stack) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.layers))
	for i, l := range s.layers {
		out[i] = l.Name
	}
	return out
}

// Merge returns a copy of all layers merged lowest priority first.
func (s *Stack) Merge() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return loader.Clone(s.mergedLocked())
}

// Get resolves a dot-separated path against the merged settings.
func (s *Stack) Get(path string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return loader.GetByPath(s.mergedLocked(), path)
}

// SourceOf returns the highest priority layer that defines path.
func (s *Stack) SourceOf(path string) (*Layer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := len(s.layers) - 1; i >= 0; i-- {
		if _, ok := loader.GetByPath(s.layers[i].Data, path); ok {
			return s.layers[i], true
		}
	}
	return nil, false
}

func (s *Stack) mergedLocked() map[string]any {
	if s.merged == nil {
		m := map[string]any{}
		for _, l := range s.layers {
			m = loader.DeepMerge(m, l.Data)
		}
		s.merged = m
	}
	return s.merged
}

func (s *Stack) sortLocked() {
	sort.SliceStable(s.layers, func(i, j int) bool {
		return s.layers[i].Source.Priority() < s.layers[j].Source.Priority()
	})
	s.merged = nil
}
