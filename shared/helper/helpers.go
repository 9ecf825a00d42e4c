package helper

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// ErrUnexpectedType is returned when a looked-up value is not of the requested type.
var ErrUnexpectedType = errors.New("unexpected type")

// LookupAs runs getFn and asserts its result to T.
// found reports whether getFn produced a value at all; err is non-nil only when
// a value was found but is not a T.
func LookupAs[T any](getFn func() (any, bool)) (res T, found bool, err error) {
	raw, found := getFn()
	if !found {
		return res, false, nil
	}
	res, ok := raw.(T)
	if !ok {
		return res, true, fmt.Errorf("%w: %T", ErrUnexpectedType, raw)
	}
	return res, true, nil
}

// TypeName returns the bare name of v's dynamic type, dereferencing pointers.
// Unnamed types fall back to their literal form.
func TypeName(v any) string {
	t := reflect.TypeOf(v)
	if t == nil {
		return "nil"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if name := t.Name(); name != "" {
		if i := strings.IndexByte(name, '['); i >= 0 {
			return name[:i]
		}
		return name
	}
	return t.String()
}

