package lazy

// Slot is an explicit Unset | Value cell for a single computed field.
// The zero value is unset.
//
// Like Store, a Slot is NOT thread-safe.
type Slot[T any] struct {
	value T
	set   bool
}

// Get returns the held value, calling derive to fill the slot when it is unset.
// A derive error leaves the slot unset.
func (s *Slot[T]) Get(derive func() (T, error)) (T, error) {
	if s.set {
		return s.value, nil
	}
	v, err := derive()
	if err != nil {
		var zero T
		return zero, err
	}
	s.value, s.set = v, true
	return v, nil
}

// Peek returns the held value without deriving.
func (s *Slot[T]) Peek() (T, bool) {
	return s.value, s.set
}

// Set fills the slot directly.
func (s *Slot[T]) Set(v T) {
	s.value, s.set = v, true
}

// IsSet reports whether the slot holds a value.
func (s *Slot[T]) IsSet() bool { return s.set }

// Reset empties the slot and reports whether it held a value.
func (s *Slot[T]) Reset() bool {
	was := s.set
	var zero T
	s.value, s.set = zero, false
	return was
}
