// Package formats provides the named boolean format predicates the
// external schema validator consumes (PEP 440 versions, PEP 508
// requirements, SPDX expressions, trove classifiers, ...), plus the
// extra whole-document validations applied after schema checking and
// before translation.
//
// Checks register themselves by name so the validator can look them up;
// the names match the ones the reference validator uses.
package formats

import (
	"sort"
	"sync"
)

// Func is a format predicate: it reports whether the value conforms.
type Func func(value string) bool

var (
	checks = make(map[string]Func)
	mu     sync.RWMutex
)

// Register adds a named format check. Later registrations replace
// earlier ones.
func Register(name string, fn Func) {
	mu.Lock()
	defer mu.Unlock()
	checks[name] = fn
}

// Lookup returns the check registered under name.
func Lookup(name string) (Func, bool) {
	mu.RLock()
	defer mu.RUnlock()
	fn, ok := checks[name]
	return fn, ok
}

// Names returns all registered check names, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(checks))
	for name := range checks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
