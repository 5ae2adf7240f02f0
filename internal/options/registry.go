// Package options validates free-form build-tool command options against
// the options each registered command actually accepts, and records them
// into the distribution model. Validation is best-effort: unknown
// options are warned about, never rejected.
package options

import (
	"sort"
	"sync"
)

// Option describes one accepted command option. Name is the declaration
// name, using "flag=" style when the option takes a value.
type Option struct {
	Name  string
	Short string
	Help  string
}

// Provider supplies the option descriptors for one command. A provider
// that fails (e.g. a plugin whose backing command cannot load) is
// skipped with a logged warning; load failure is never fatal.
type Provider func() ([]Option, error)

var (
	providers = make(map[string]Provider)
	mu        sync.RWMutex
)

// Register adds a command provider to the package registry. Later
// registrations for the same command replace earlier ones.
func Register(name string, provider Provider) {
	mu.Lock()
	defer mu.Unlock()
	providers[name] = provider
}

// Static wraps a fixed descriptor list as an always-successful Provider.
func Static(opts []Option) Provider {
	return func() ([]Option, error) { return opts, nil }
}

// RegisteredCommands returns the names of all registered commands,
// sorted.
func RegisteredCommands() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func registered() map[string]Provider {
	mu.RLock()
	defer mu.RUnlock()
	out := make(map[string]Provider, len(providers))
	for name, p := range providers {
		out[name] = p
	}
	return out
}
