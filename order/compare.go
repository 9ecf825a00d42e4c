package order

import (
	"fmt"
	"reflect"

	"github.com/on-the-ground/textblob_go/shared/helper"
)

// Compare orders a against b by their comparison keys.
// It returns Incomparable when either side is not Keyed or the keys cannot be
// compared.
func Compare(a, b any) Ordering {
	ka, ok := a.(Keyed)
	if !ok {
		return Incomparable
	}
	kb, ok := b.(Keyed)
	if !ok {
		return Incomparable
	}
	return CompareKeys(ka.CompareKey(), kb.CompareKey())
}

// CompareBlob orders a against b, where b may also be a raw string or byte
// slice. Raw values are compared as is against a's key; anything else goes
// through Compare.
func CompareBlob(a Keyed, b any) Ordering {
	switch raw := b.(type) {
	case string, []byte:
		return CompareKeys(a.CompareKey(), raw)
	default:
		return Compare(a, b)
	}
}

// compareFrom asks a to order itself against b.
func compareFrom(a, b any) Ordering {
	if blob, ok := a.(BlobComparable); ok {
		return CompareBlob(blob, b)
	}
	return Compare(a, b)
}

// resolve tries a's comparison first and b's reflected comparison second.
func resolve(a, b any) Ordering {
	if o := compareFrom(a, b); o != Incomparable {
		return o
	}
	return compareFrom(b, a).Reverse()
}

func unorderable(op string, a, b any) error {
	return fmt.Errorf("%w: '%s' %s '%s'", ErrUnorderable, helper.TypeName(a), op, helper.TypeName(b))
}

func ordered(op string, a, b any, test func(Ordering) bool) (bool, error) {
	o := resolve(a, b)
	if o == Incomparable {
		return false, unorderable(op, a, b)
	}
	return test(o), nil
}

// Lt reports whether a < b.
func Lt(a, b any) (bool, error) {
	return ordered("<", a, b, func(o Ordering) bool { return o == Less })
}

// Le reports whether a <= b.
func Le(a, b any) (bool, error) {
	return ordered("<=", a, b, func(o Ordering) bool { return o != Greater })
}

// Gt reports whether a > b.
func Gt(a, b any) (bool, error) {
	return ordered(">", a, b, func(o Ordering) bool { return o == Greater })
}

// Ge reports whether a >= b.
func Ge(a, b any) (bool, error) {
	return ordered(">=", a, b, func(o Ordering) bool { return o != Less })
}

// Eq reports whether a == b. Operands that cannot be compared by key are equal
// only if they are the same value.
func Eq(a, b any) bool {
	if o := resolve(a, b); o != Incomparable {
		return o == Equal
	}
	return identical(a, b)
}

// Ne reports whether a != b.
func Ne(a, b any) bool {
	return !Eq(a, b)
}

// Cmp returns -1, 0 or +1 for use with slices.SortFunc and friends.
func Cmp(a, b any) (int, error) {
	o := resolve(a, b)
	if o == Incomparable {
		return 0, unorderable("cmp", a, b)
	}
	return o.Int(), nil
}

func identical(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}
