package order

import (
	"errors"
	"fmt"
)

var (
	// ErrNotImplemented is raised by hosts that embed Unimplemented without
	// providing CompareKey.
	ErrNotImplemented = errors.New("order: host must implement CompareKey")

	// ErrUnorderable is returned when neither operand can order the pair.
	ErrUnorderable = errors.New("order: unorderable types")
)

// Ordering is the outcome of a three-way comparison, plus Incomparable for
// operands that cannot be ordered against each other.
type Ordering int

const (
	Less Ordering = iota - 1
	Equal
	Greater
	Incomparable
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	default:
		return "incomparable"
	}
}

// Reverse returns the ordering seen from the other operand.
func (o Ordering) Reverse() Ordering {
	switch o {
	case Less:
		return Greater
	case Greater:
		return Less
	default:
		return o
	}
}

// Int returns -1, 0 or +1. It panics for Incomparable.
func (o Ordering) Int() int {
	if o == Incomparable {
		panic(fmt.Errorf("%w: incomparable has no integer form", ErrUnorderable))
	}
	return int(o)
}

func fromInt(c int) Ordering {
	switch {
	case c < 0:
		return Less
	case c > 0:
		return Greater
	default:
		return Equal
	}
}

// Keyed is implemented by hosts that have a sort identity.
// CompareKey must be a pure function of the host's current state.
type Keyed interface {
	CompareKey() any
}

// BlobComparable is a Keyed host that also compares against raw strings and
// byte slices. Hosts opt in by embedding BlobMixin.
type BlobComparable interface {
	Keyed
	comparesRaw()
}

// BlobMixin marks the embedding host as BlobComparable.
type BlobMixin struct{}

func (BlobMixin) comparesRaw() {}

// Unimplemented can be embedded by hosts that are still missing CompareKey.
// Calling it panics with ErrNotImplemented.
type Unimplemented struct{}

func (Unimplemented) CompareKey() any {
	panic(ErrNotImplemented)
}
