package core

import "sort"

// Table is a string-keyed mapping that remembers insertion order.
// pyproject.toml semantics make iteration order a guarantee, not a
// convenience: later fields may overwrite earlier model state, so the
// translation pass must see keys in document order.
//
// Values are scalars (string, int64, float64, bool), []any, or nested
// *Table.
type Table struct {
	keys   []string
	values map[string]any
}

// NewTable returns an empty ordered table.
func NewTable() *Table {
	return &Table{values: make(map[string]any)}
}

// TableFromMap builds a Table from a plain map. Keys are inserted in
// sorted order so the result is deterministic; nested maps are converted
// recursively. Intended for programmatic construction, where the caller
// has no document order to preserve.
func TableFromMap(m map[string]any) *Table {
	t := NewTable()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		t.Set(k, convertValue(m[k]))
	}
	return t
}

func convertValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return TableFromMap(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = convertValue(item)
		}
		return out
	default:
		return v
	}
}

// Set stores a value, appending the key to the iteration order if it is
// not already present.
func (t *Table) Set(key string, value any) {
	if _, ok := t.values[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.values[key] = value
}

// Get returns the value for key and whether it was present.
func (t *Table) Get(key string) (any, bool) {
	v, ok := t.values[key]
	return v, ok
}

// Delete removes a key, preserving the relative order of the rest.
func (t *Table) Delete(key string) {
	if _, ok := t.values[key]; !ok {
		return
	}
	delete(t.values, key)
	for i, k := range t.keys {
		if k == key {
			t.keys = append(t.keys[:i], t.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the keys in insertion order. The returned slice is a
// copy; mutating it does not affect the table.
func (t *Table) Keys() []string {
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}

// Len returns the number of keys.
func (t *Table) Len() int {
	return len(t.keys)
}

// Table returns the nested table stored under key, or nil if the key is
// absent or not a table.
func (t *Table) Table(key string) *Table {
	if v, ok := t.values[key]; ok {
		if sub, ok := v.(*Table); ok {
			return sub
		}
	}
	return nil
}

// Copy returns a shallow copy: nested tables and slices are shared.
func (t *Table) Copy() *Table {
	out := &Table{
		keys:   make([]string, len(t.keys)),
		values: make(map[string]any, len(t.values)),
	}
	copy(out.keys, t.keys)
	for k, v := range t.values {
		out.values[k] = v
	}
	return out
}

// Map returns the table as a plain map, converting nested tables
// recursively. Key order is lost.
func (t *Table) Map() map[string]any {
	out := make(map[string]any, len(t.values))
	for k, v := range t.values {
		if sub, ok := v.(*Table); ok {
			out[k] = sub.Map()
		} else {
			out[k] = v
		}
	}
	return out
}
