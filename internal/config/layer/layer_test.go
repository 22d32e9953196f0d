package layer

import (
	"reflect"
	"testing"
)

func TestSourceOrder(t *testing.T) {
	order := []Source{SourceBuiltin, SourceFile, SourceEnv, SourceFlags}
	for i := 1; i < len(order); i++ {
		if order[i-1].Priority() >= order[i].Priority() {
			t.Errorf("%s should rank below %s", order[i-1], order[i])
		}
	}
	if got := Source(9).String(); got != "unknown" {
		t.Errorf("String() = %q, want unknown", got)
	}
}

func TestStackMergesByPriority(t *testing.T) {
	s := NewStack()

	flags := New("flags", SourceFlags)
	flags.Data["log"] = map[string]any{"level": "error"}
	s.Set(flags)

	def := New("defaults", SourceBuiltin)
	def.Data["log"] = map[string]any{"level": "info", "file": ""}
	def.Data["ui"] = map[string]any{"mouse": true}
	s.Set(def)

	file := New("user", SourceFile)
	file.Data["ui"] = map[string]any{"mouse": false}
	file.Data["log"] = map[string]any{"level": "debug"}
	s.Set(file)

	if got, want := s.Names(), []string{"defaults", "user", "flags"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Names = %v, want %v", got, want)
	}

	tests := []struct {
		path  string
		want  any
		layer string
	}{
		{"log.level", "error", "flags"},
		{"log.file", "", "defaults"},
		{"ui.mouse", false, "user"},
	}
	for _, tt := range tests {
		if got, _ := s.Get(tt.path); got != tt.want {
			t.Errorf("Get(%s) = %v, want %v", tt.path, got, tt.want)
		}
		if l, _ := s.SourceOf(tt.path); l == nil || l.Name != tt.layer {
			t.Errorf("SourceOf(%s) = %v, want %s", tt.path, l, tt.layer)
		}
	}
}

func TestStackReplaceAndRemove(t *testing.T) {
	s := NewStack()
	a := New("user", SourceFile)
	a.Data["x"] = int64(1)
	s.Set(a)
	if got, _ := s.Get("x"); got != int64(1) {
		t.Fatalf("x = %v", got)
	}

	b := New("user", SourceFile)
	b.Data["x"] = int64(2)
	s.Set(b)
	if got, _ := s.Get("x"); got != int64(2) {
		t.Fatalf("after replace x = %v", got)
	}
	if len(s.Names()) != 1 {
		t.Fatalf("Names = %v", s.Names())
	}

	m := s.Merge()
	m["x"] = int64(9)
	if got, _ := s.Get("x"); got != int64(2) {
		t.Error("Merge returned shared state")
	}

	if !s.Remove("user") || s.Remove("user") {
		t.Error("Remove should succeed once")
	}
	if _, ok := s.Get("x"); ok {
		t.Error("removed layer still visible")
	}
	if s.Layer("user") != nil {
		t.Error("Layer(user) after remove")
	}
}
