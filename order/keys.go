package order

import (
	"bytes"
	"math"
	"math/big"
	"reflect"
	"strings"
)

// CompareKeys compares two comparison keys.
//
//   - strings compare lexicographically by bytes, which for valid UTF-8 is
//     code point order;
//   - byte slices compare lexicographically;
//   - booleans, integers and floats compare numerically with each other,
//     exactly, and NaN is incomparable;
//   - slices and arrays compare element by element, then by length.
//
// Keys from different families, and any other kind, are Incomparable.
func CompareKeys(a, b any) Ordering {
	return compareValues(reflect.ValueOf(a), reflect.ValueOf(b))
}

func compareValues(a, b reflect.Value) Ordering {
	if !a.IsValid() || !b.IsValid() {
		return Incomparable
	}
	if a.Kind() == reflect.Interface {
		return compareValues(a.Elem(), b)
	}
	if b.Kind() == reflect.Interface {
		return compareValues(a, b.Elem())
	}

	switch {
	case a.Kind() == reflect.String:
		if b.Kind() != reflect.String {
			return Incomparable
		}
		return fromInt(strings.Compare(a.String(), b.String()))

	case isBytes(a):
		if !isBytes(b) {
			return Incomparable
		}
		return fromInt(bytes.Compare(a.Bytes(), b.Bytes()))

	case isSequence(a):
		if !isSequence(b) || isBytes(b) {
			return Incomparable
		}
		return compareSequences(a, b)
	}

	na, ok := toNumber(a)
	if !ok {
		return Incomparable
	}
	nb, ok := toNumber(b)
	if !ok {
		return Incomparable
	}
	return fromInt(na.Cmp(nb))
}

func isBytes(v reflect.Value) bool {
	return v.Kind() == reflect.Slice && v.Type().Elem().Kind() == reflect.Uint8
}

func isSequence(v reflect.Value) bool {
	return v.Kind() == reflect.Slice || v.Kind() == reflect.Array
}

func compareSequences(a, b reflect.Value) Ordering {
	n := min(a.Len(), b.Len())
	for i := 0; i < n; i++ {
		if o := compareValues(a.Index(i), b.Index(i)); o != Equal {
			return o
		}
	}
	return fromInt(a.Len() - b.Len())
}

// toNumber converts any numeric or boolean value into an exact big.Float.
func toNumber(v reflect.Value) (*big.Float, bool) {
	switch v.Kind() {
	case reflect.Bool:
		if v.Bool() {
			return big.NewFloat(1), true
		}
		return big.NewFloat(0), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return new(big.Float).SetInt64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return new(big.Float).SetUint64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		if math.IsNaN(f) {
			return nil, false
		}
		return new(big.Float).SetFloat64(f), true
	default:
		return nil, false
	}
}
