package core

import (
	"reflect"
	"testing"
)

func TestTableOrder(t *testing.T) {
	table := NewTable()
	table.Set("name", "pkg")
	table.Set("version", "1.0")
	table.Set("description", "text")
	table.Set("name", "pkg2") // overwrite keeps position

	want := []string{"name", "version", "description"}
	if got := table.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected keys %v, got %v", want, got)
	}
	if v, _ := table.Get("name"); v != "pkg2" {
		t.Errorf("expected overwritten value, got %v", v)
	}
}

func TestTableDelete(t *testing.T) {
	table := NewTable()
	table.Set("a", 1)
	table.Set("b", 2)
	table.Set("c", 3)
	table.Delete("b")
	table.Delete("missing")

	want := []string{"a", "c"}
	if got := table.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected keys %v, got %v", want, got)
	}
	if _, ok := table.Get("b"); ok {
		t.Error("expected b to be deleted")
	}
}

func TestTableFromMap(t *testing.T) {
	table := TableFromMap(map[string]any{
		"b": map[string]any{"x": "1"},
		"a": []any{map[string]any{"y": "2"}},
	})

	want := []string{"a", "b"}
	if got := table.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected sorted keys %v, got %v", want, got)
	}
	if sub := table.Table("b"); sub == nil {
		t.Fatal("expected nested map to convert to *Table")
	}
	raw, _ := table.Get("a")
	list, ok := raw.([]any)
	if !ok || len(list) != 1 {
		t.Fatalf("unexpected list value: %#v", raw)
	}
	if _, ok := list[0].(*Table); !ok {
		t.Errorf("expected list element to convert to *Table, got %T", list[0])
	}
}

func TestTableCopyIsShallow(t *testing.T) {
	table := NewTable()
	table.Set("a", 1)
	dup := table.Copy()
	dup.Set("b", 2)
	dup.Delete("a")

	if _, ok := table.Get("a"); !ok {
		t.Error("mutating the copy must not affect the original")
	}
	if _, ok := table.Get("b"); ok {
		t.Error("mutating the copy must not affect the original")
	}
}

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Home-Page", "home_page"},
		{"requires-python", "requires_python"},
		{"already_normal", "already_normal"},
		{"MIXED-Case-Key", "mixed_case_key"},
	}
	for _, tt := range tests {
		if got := NormalizeKey(tt.input); got != tt.want {
			t.Errorf("NormalizeKey(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
