package pyproject

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/git-pkgs/pyproject/internal/core"
)

// ReadConfiguration reads a pyproject.toml file into an ordered
// document table. Document key order is preserved, since the
// translation pass iterates tables in their given order. The document
// must contain a project table.
func ReadConfiguration(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := DecodeConfiguration(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// DecodeConfiguration parses pyproject.toml contents into an ordered
// document table.
func DecodeConfiguration(data string) (*Table, error) {
	var raw map[string]any
	meta, err := toml.Decode(data, &raw)
	if err != nil {
		return nil, err
	}

	order := make(map[string]int, len(meta.Keys()))
	for i, key := range meta.Keys() {
		order[strings.Join(key, "\x00")] = i
	}

	doc := buildTable(raw, order, nil)
	if doc.Table("project") == nil {
		return nil, core.ConfigError("project", "table is missing")
	}
	return doc, nil
}

// buildTable converts a decoded map into an ordered Table, using the
// parser's key positions to recover document order. Keys with no
// recorded position (e.g. inside inline tables) sort after positioned
// ones, alphabetically.
func buildTable(m map[string]any, order map[string]int, prefix []string) *core.Table {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.SliceStable(keys, func(i, j int) bool {
		oi, oki := order[strings.Join(append(prefix, keys[i]), "\x00")]
		oj, okj := order[strings.Join(append(prefix, keys[j]), "\x00")]
		switch {
		case oki && okj:
			return oi < oj
		case oki:
			return true
		case okj:
			return false
		default:
			return keys[i] < keys[j]
		}
	})

	t := core.NewTable()
	for _, k := range keys {
		t.Set(k, buildValue(m[k], order, append(prefix, k)))
	}
	return t
}

func buildValue(v any, order map[string]int, prefix []string) any {
	switch val := v.(type) {
	case map[string]any:
		return buildTable(val, order, prefix)
	case []map[string]any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = buildTable(item, order, prefix)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = buildValue(item, order, prefix)
		}
		return out
	default:
		return v
	}
}
