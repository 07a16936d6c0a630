package binding

import (
	"sort"
	"sync"
)

// RequestSet is the live set of unresolved placeholder requests for one page
// hydration. Keys are placeholder names, optionally of the prefix@rest form;
// each key maps to the document targets awaiting its value.
//
// Crawl completions for distinct URLs run on separate goroutines, so every
// mutation is guarded and Resolve is an atomic check-and-remove: two racing
// completions can never both resolve the same key.
type RequestSet struct {
	mu      sync.Mutex
	entries map[string][]Target
}

func NewRequestSet(placeholders map[string][]Target) *RequestSet {
	entries := make(map[string][]Target, len(placeholders))
	for key, targets := range placeholders {
		entries[key] = append([]Target(nil), targets...)
	}
	return &RequestSet{entries: entries}
}

// Keys returns a sorted snapshot of the unresolved keys. Crawl iterates the
// snapshot so concurrent resolution never invalidates the walk.
func (s *RequestSet) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys := make([]string, 0, len(s.entries))
	for key := range s.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Resolve removes the key and returns its targets. The second of two racing
// callers gets ok=false and must not render.
func (s *RequestSet) Resolve(key string) ([]Target, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	targets, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	delete(s.entries, key)
	return targets, true
}

// Rename moves the targets of oldKey under newKey, preserving any targets
// already requested under newKey. Used by prefix descent to rewrite
// prefix@rest into rest.
func (s *RequestSet) Rename(oldKey string, newKey string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	targets, ok := s.entries[oldKey]
	if !ok {
		return false
	}
	delete(s.entries, oldKey)
	s.entries[newKey] = append(s.entries[newKey], targets...)
	return true
}

func (s *RequestSet) Empty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries) == 0
}

func (s *RequestSet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Remaining returns the keys that never resolved, sorted.
func (s *RequestSet) Remaining() []string {
	return s.Keys()
}
