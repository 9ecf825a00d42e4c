package lazy

import (
	"maps"
	"slices"

	"github.com/google/uuid"
	"github.com/rickb777/date/v2/timespan"
)

// entry is a derived value together with the span during which it was derived.
type entry struct {
	value any
	span  timespan.TimeSpan
}

// Store is the per-instance field storage that computed values are pinned into.
// The zero value is ready to use.
//
// IMPORTANT:
// Store is intentionally NOT thread-safe. It belongs to exactly one host
// instance and assumes a single writer at a time.
type Store struct {
	id      string
	entries map[string]entry
}

// ID returns a stable identifier for this store, used to correlate log lines.
func (s *Store) ID() string {
	if s.id == "" {
		s.id = uuid.New().String()
	}
	return s.id
}

// Lookup returns the value stored under name.
func (s *Store) Lookup(name string) (any, bool) {
	e, ok := s.entries[name]
	return e.value, ok
}

// Span returns when the value under name was derived.
func (s *Store) Span(name string) (timespan.TimeSpan, bool) {
	e, ok := s.entries[name]
	return e.span, ok
}

func (s *Store) set(name string, value any, span timespan.TimeSpan) {
	if s.entries == nil {
		s.entries = make(map[string]entry)
	}
	s.entries[name] = entry{value: value, span: span}
}

// Delete removes the value under name and reports whether there was one.
func (s *Store) Delete(name string) bool {
	if _, ok := s.entries[name]; !ok {
		return false
	}
	delete(s.entries, name)
	return true
}

// Clear removes every stored value.
func (s *Store) Clear() {
	clear(s.entries)
}

// Len returns the number of stored values.
func (s *Store) Len() int {
	return len(s.entries)
}

// Names returns the names of the stored values in sorted order.
func (s *Store) Names() []string {
	return slices.Sorted(maps.Keys(s.entries))
}

// Holder is implemented by any host whose computed attributes live in a Store.
type Holder interface {
	LazyStore() *Store
}
