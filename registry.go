package latvian

import (
	"sort"
	"sync"
)

// Registry maps exact lowercase base words to their special-case overrides.
// It is safe for concurrent use; lookups take a read lock.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]SpecialCase
}

// NewRegistry returns a registry seeded with the built-in irregular words,
// pronouns and numerals.
func NewRegistry() *Registry {
	r := NewEmptyRegistry()
	for word, entry := range builtinSpecialCases {
		r.entries[word] = entry
	}
	return r
}

// NewEmptyRegistry returns a registry without any built-in data.
func NewEmptyRegistry() *Registry {
	return &Registry{entries: make(map[string]SpecialCase)}
}

// defaultRegistry is the process-wide registry used by NewNoun.
var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// RegisterSpecialCase adds or replaces an entry in the process-wide
// registry. Nouns already analyzed keep their previous result.
func RegisterSpecialCase(word string, entry SpecialCase) {
	defaultRegistry.Register(word, entry)
}

// registryKey normalizes a word the way NewNoun normalizes its base form.
func registryKey(word string) string {
	return toLower(Compose(word))
}

// Register adds or replaces the entry for word.
func (r *Registry) Register(word string, entry SpecialCase) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[registryKey(word)] = entry
}

// Lookup returns the entry registered for the exact base word.
func (r *Registry) Lookup(word string) (SpecialCase, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[word]
	return entry, ok
}

// Len returns the number of registered words.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Words returns the registered words in sorted order.
func (r *Registry) Words() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	words := make([]string, 0, len(r.entries))
	for w := range r.entries {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// Clone returns an independent copy of the registry.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c := NewEmptyRegistry()
	for w, e := range r.entries {
		c.entries[w] = e
	}
	return c
}

// registerAll stores every entry under a single write lock.
func (r *Registry) registerAll(entries map[string]SpecialCase) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for w, e := range entries {
		r.entries[registryKey(w)] = e
	}
}
