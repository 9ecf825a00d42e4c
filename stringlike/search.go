package stringlike

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"
)

// span resolves optional start and end bounds against a string of n code
// points. Defaults are 0 and math.MaxInt. Negative bounds count from the end
// and are clamped at 0; end is clamped at n. start is left past n on purpose:
// a search starting beyond the end finds nothing, not even the empty string.
func span(bounds []int, n int) (start, end int) {
	start, end = 0, math.MaxInt
	switch len(bounds) {
	case 0:
	case 1:
		start = bounds[0]
	case 2:
		start, end = bounds[0], bounds[1]
	default:
		panic(fmt.Sprintf("stringlike: at most start and end bounds allowed, got %d", len(bounds)))
	}

	if end > n {
		end = n
	} else if end < 0 {
		end = max(end+n, 0)
	}
	if start < 0 {
		start = max(start+n, 0)
	}
	return start, end
}

// byteOffset returns the byte offset of code point i in s, or len(s) when i
// is at or past the end. An invalid byte counts as one code point.
func byteOffset(s string, i int) int {
	for off := range s {
		if i == 0 {
			return off
		}
		i--
	}
	return len(s)
}

// window returns s restricted to the code points in [start, end), or
// ok=false when fewer than need code points fit in the bounds.
func window(s string, start, end, need int) (string, bool) {
	if end-start < need {
		return "", false
	}
	return s[byteOffset(s, start):byteOffset(s, end)], true
}

// bounded resolves bounds against the canonical string and returns the window
// that fits sub, with its starting code point.
func (m Mixin[T]) bounded(sub string, bounds []int) (w string, start int, ok bool) {
	key := m.key()
	start, end := span(bounds, utf8.RuneCountInString(key))
	w, ok = window(key, start, end, utf8.RuneCountInString(sub))
	return w, start, ok
}

// Contains reports whether sub occurs anywhere in the string.
func (m Mixin[T]) Contains(sub string) bool {
	return strings.Contains(m.key(), sub)
}

// Find returns the position of the first occurrence of sub within the optional
// [start, end) bounds, or -1.
func (m Mixin[T]) Find(sub string, bounds ...int) int {
	w, start, ok := m.bounded(sub, bounds)
	if !ok {
		return -1
	}
	i := strings.Index(w, sub)
	if i < 0 {
		return -1
	}
	return start + utf8.RuneCountInString(w[:i])
}

// RFind returns the position of the last occurrence of sub within the optional
// [start, end) bounds, or -1.
func (m Mixin[T]) RFind(sub string, bounds ...int) int {
	w, start, ok := m.bounded(sub, bounds)
	if !ok {
		return -1
	}
	i := strings.LastIndex(w, sub)
	if i < 0 {
		return -1
	}
	return start + utf8.RuneCountInString(w[:i])
}

// Index is Find that fails with ErrSubstringNotFound instead of returning -1.
func (m Mixin[T]) Index(sub string, bounds ...int) (int, error) {
	if i := m.Find(sub, bounds...); i >= 0 {
		return i, nil
	}
	return -1, fmt.Errorf("%w: %q", ErrSubstringNotFound, sub)
}

// RIndex is RFind that fails with ErrSubstringNotFound instead of returning -1.
func (m Mixin[T]) RIndex(sub string, bounds ...int) (int, error) {
	if i := m.RFind(sub, bounds...); i >= 0 {
		return i, nil
	}
	return -1, fmt.Errorf("%w: %q", ErrSubstringNotFound, sub)
}

// StartsWith reports whether the bounded string begins with prefix.
func (m Mixin[T]) StartsWith(prefix string, bounds ...int) bool {
	w, _, ok := m.bounded(prefix, bounds)
	return ok && strings.HasPrefix(w, prefix)
}

// EndsWith reports whether the bounded string ends with suffix.
func (m Mixin[T]) EndsWith(suffix string, bounds ...int) bool {
	w, _, ok := m.bounded(suffix, bounds)
	return ok && strings.HasSuffix(w, suffix)
}

// HasPrefix is an alias of StartsWith.
func (m Mixin[T]) HasPrefix(prefix string, bounds ...int) bool {
	return m.StartsWith(prefix, bounds...)
}

// HasSuffix is an alias of EndsWith.
func (m Mixin[T]) HasSuffix(suffix string, bounds ...int) bool {
	return m.EndsWith(suffix, bounds...)
}
