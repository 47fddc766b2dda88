package commands

import (
	"fmt"
	"sort"
	"sync"
)

// Registry maps verbs to commands. Every verb file registers itself with the
// default registry from init(), so importing this package brings the whole
// surface along.
type Registry struct {
	mu    sync.RWMutex
	verbs map[string]Command // primary names and aliases both resolve here
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{verbs: make(map[string]Command)}
}

// Register adds a command under its name and aliases. A verb may only be
// claimed once across the whole surface.
func (r *Registry) Register(c Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	claimed := append([]string{c.Name()}, c.Aliases()...)
	for _, verb := range claimed {
		if _, taken := r.verbs[verb]; taken {
			return fmt.Errorf("verb %q claimed twice", verb)
		}
	}
	for _, verb := range claimed {
		r.verbs[verb] = c
	}
	return nil
}

// Find resolves a verb, primary name or alias, to its command.
func (r *Registry) Find(verb string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, ok := r.verbs[verb]
	return cmd, ok
}

// All returns every registered command once, sorted by primary name.
func (r *Registry) All() []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byName := make(map[string]Command)
	for _, cmd := range r.verbs {
		byName[cmd.Name()] = cmd
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	all := make([]Command, len(names))
	for i, name := range names {
		all[i] = byName[name]
	}
	return all
}

// DefaultRegistry is the registry the dispatcher runs against.
var DefaultRegistry = NewRegistry()

// Register adds a command to the default registry, panicking on a duplicate
// verb: that is a programming error caught at init time, not a runtime
// condition.
func Register(c Command) {
	if err := DefaultRegistry.Register(c); err != nil {
		panic(err)
	}
}
