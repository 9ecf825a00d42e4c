package order

import (
	"slices"
	"sort"
)

// Sort sorts items in place by their derived order, keeping equal items in
// their original order. If any pair turns out to be incomparable the first such
// error is returned and the resulting order is unspecified.
func Sort[T any](items []T) error {
	var firstErr error
	slices.SortStableFunc(items, func(a, b T) int {
		c, err := Cmp(a, b)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		return c
	})
	return firstErr
}

// SortedList keeps values ordered as they are inserted.
//
// IMPORTANT:
// SortedList is NOT thread-safe.
type SortedList[T any] struct {
	data []T
}

// NewSortedList returns an empty list with room for capacity values.
func NewSortedList[T any](capacity int) *SortedList[T] {
	return &SortedList[T]{data: make([]T, 0, max(capacity, 0))}
}

// Insert places val after every value that is not greater than it.
// Nothing is inserted if val cannot be ordered against the list's values.
func (l *SortedList[T]) Insert(val T) error {
	var insertErr error
	idx := sort.Search(len(l.data), func(i int) bool {
		if insertErr != nil {
			return true
		}
		gt, err := Gt(l.data[i], val)
		if err != nil {
			insertErr = err
			return true
		}
		return gt
	})
	if insertErr != nil {
		return insertErr
	}

	l.data = append(l.data, val)
	copy(l.data[idx+1:], l.data[idx:])
	l.data[idx] = val
	return nil
}

// Len returns the number of values.
func (l *SortedList[T]) Len() int { return len(l.data) }

// At returns the i-th smallest value.
func (l *SortedList[T]) At(i int) T { return l.data[i] }

// Items returns a copy of the values in order.
func (l *SortedList[T]) Items() []T { return slices.Clone(l.data) }
