package stringlike

import (
	"errors"
	"fmt"
	"iter"
	"unicode/utf8"

	"github.com/on-the-ground/textblob_go/shared/helper"
)

var (
	// ErrNotImplemented is raised when a Mixin is used without a bound host.
	ErrNotImplemented = errors.New("stringlike: host must implement StringKey")

	// ErrIndexOutOfRange is returned by At for positions outside the string.
	ErrIndexOutOfRange = errors.New("stringlike: string index out of range")

	// ErrSubstringNotFound is returned by Index and RIndex.
	ErrSubstringNotFound = errors.New("stringlike: substring not found")
)

// Keyer exposes the canonical string of a text-like value.
type Keyer interface {
	StringKey() string
}

// Host is a Keyer that can be rebuilt from a single string.
type Host[T any] interface {
	Keyer
	FromString(s string) T
}

// Mixin implements the string operations for a bound host of type T.
// The zero Mixin has no host; every operation on it panics with
// ErrNotImplemented.
type Mixin[T any] struct {
	host Host[T]
}

// Bind returns a Mixin operating on host.
func Bind[T any](host Host[T]) Mixin[T] {
	return Mixin[T]{host: host}
}

func (m Mixin[T]) key() string {
	if m.host == nil {
		panic(ErrNotImplemented)
	}
	return m.host.StringKey()
}

func (m Mixin[T]) wrap(s string) T {
	return m.host.FromString(s)
}

// String returns the canonical string.
func (m Mixin[T]) String() string {
	return m.key()
}

// Repr returns the debugging form, e.g. Blob("hello").
func (m Mixin[T]) Repr() string {
	return fmt.Sprintf(`%s("%s")`, helper.TypeName(m.host), m.key())
}

// GoString makes %#v print Repr.
func (m Mixin[T]) GoString() string {
	return m.Repr()
}

// Len returns the number of code points.
func (m Mixin[T]) Len() int {
	return utf8.RuneCountInString(m.key())
}

// All iterates over the characters as one-character strings.
func (m Mixin[T]) All() iter.Seq[string] {
	key := m.key()
	return func(yield func(string) bool) {
		for _, r := range key {
			if !yield(string(r)) {
				return
			}
		}
	}
}

// At returns the character at position i. Negative positions count from the end.
func (m Mixin[T]) At(i int) (string, error) {
	rs := []rune(m.key())
	pos := i
	if pos < 0 {
		pos += len(rs)
	}
	if pos < 0 || pos >= len(rs) {
		return "", fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	return string(rs[pos]), nil
}

// Slice returns a new host holding the characters in [start, end).
// Bounds follow slice semantics: negative values count from the end and
// out-of-range values are clamped, so Slice never fails.
func (m Mixin[T]) Slice(start, end int) T {
	rs := []rune(m.key())
	start, end = clampSlice(start, len(rs)), clampSlice(end, len(rs))
	if end < start {
		end = start
	}
	return m.wrap(string(rs[start:end]))
}

func clampSlice(i, n int) int {
	if i < 0 {
		i += n
		if i < 0 {
			return 0
		}
		return i
	}
	return min(i, n)
}
