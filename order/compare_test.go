package order_test

import (
	"math"
	"testing"

	"github.com/on-the-ground/textblob_go/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct{ key any }

func (i item) CompareKey() any { return i.key }

type rawItem struct {
	order.BlobMixin
	key any
}

func (r rawItem) CompareKey() any { return r.key }

type unkeyed struct{ n int }

func TestCompareKeys(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want order.Ordering
	}{
		{"strings less", "apple", "banana", order.Less},
		{"strings equal", "same", "same", order.Equal},
		{"strings greater", "b", "a", order.Greater},
		{"bytes", []byte("ab"), []byte("aa"), order.Greater},
		{"string vs bytes", "ab", []byte("ab"), order.Incomparable},
		{"ints", 1, 2, order.Less},
		{"int vs float", 2, 1.5, order.Greater},
		{"int vs equal float", 3, 3.0, order.Equal},
		{"uint vs negative int", uint64(math.MaxUint64), int64(-1), order.Greater},
		{"bool counts as int", true, 1, order.Equal},
		{"nan", math.NaN(), 1.0, order.Incomparable},
		{"string vs int", "1", 1, order.Incomparable},
		{"tuples", []any{1, "b"}, []any{1, "c"}, order.Less},
		{"tuple prefix is smaller", []any{1}, []any{1, 0}, order.Less},
		{"tuple mixed element", []any{1, "a"}, []any{1, 2}, order.Incomparable},
		{"typed slices", []string{"a", "b"}, []string{"a", "b"}, order.Equal},
		{"arrays", [2]int{1, 2}, [2]int{1, 3}, order.Less},
		{"nil", nil, 1, order.Incomparable},
		{"struct", struct{}{}, struct{}{}, order.Incomparable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, order.CompareKeys(tt.a, tt.b))
		})
	}
}

func TestOperators_Totality(t *testing.T) {
	pairs := [][2]any{
		{"a", "b"},
		{1, 2},
		{[]any{"x", 1}, []any{"x", 2}},
		{[]byte{0}, []byte{0, 0}},
	}
	for _, p := range pairs {
		a, b := item{p[0]}, item{p[1]}

		lt, err := order.Lt(a, b)
		require.NoError(t, err)
		assert.True(t, lt)

		ltBA, err := order.Lt(b, a)
		require.NoError(t, err)
		assert.False(t, ltBA)

		assert.False(t, order.Eq(a, b))
		assert.True(t, order.Ne(a, b))

		gt, _ := order.Gt(a, b)
		le, _ := order.Le(a, b)
		ge, _ := order.Ge(a, b)
		assert.False(t, gt)
		assert.True(t, le)
		assert.False(t, ge)

		count := 0
		for _, ok := range []bool{lt, order.Eq(a, b), gt} {
			if ok {
				count++
			}
		}
		assert.Equal(t, 1, count, "exactly one of <, ==, > must hold")
	}
}

func TestOperators_EqualKeys(t *testing.T) {
	a, b := item{"k"}, item{"k"}
	assert.True(t, order.Eq(a, b))
	le, err := order.Le(a, b)
	require.NoError(t, err)
	assert.True(t, le)
	ge, err := order.Ge(a, b)
	require.NoError(t, err)
	assert.True(t, ge)
	assert.Equal(t, order.Equal, order.Compare(a, b))
}

func TestBlobComparable_AgainstRawString(t *testing.T) {
	x := rawItem{key: "x"}

	assert.True(t, order.Eq(x, "x"))
	assert.True(t, order.Eq("x", x), "reflected comparison from the raw side")
	assert.False(t, order.Eq(x, []byte("x")), "string key never equals bytes")

	lt, err := order.Lt(x, "y")
	require.NoError(t, err)
	assert.True(t, lt)

	gt, err := order.Gt("y", x)
	require.NoError(t, err)
	assert.True(t, gt)

	assert.Equal(t, order.Less, order.CompareBlob(x, "y"))
	assert.Equal(t, order.Equal, order.CompareBlob(x, item{"x"}))
}

func TestBlobComparable_AgainstIncomparableType(t *testing.T) {
	x := rawItem{key: "x"}

	_, err := order.Lt(x, 3.5)
	assert.ErrorIs(t, err, order.ErrUnorderable)
	assert.False(t, order.Eq(x, 3.5))
	assert.True(t, order.Ne(x, 3.5))
}

func TestPlainKeyed_DoesNotCompareWithRawString(t *testing.T) {
	x := item{"x"}
	assert.Equal(t, order.Incomparable, order.Compare(x, "x"))
	assert.False(t, order.Eq(x, "x"))

	_, err := order.Le(x, "x")
	assert.ErrorIs(t, err, order.ErrUnorderable)
}

func TestEq_FallsBackToIdentity(t *testing.T) {
	u := &unkeyed{n: 1}
	assert.True(t, order.Eq(u, u))
	assert.False(t, order.Eq(u, &unkeyed{n: 1}))
	assert.True(t, order.Eq(nil, nil))
	assert.False(t, order.Eq([]int{1}, []int{1}), "uncomparable values are never identical")

	_, err := order.Lt(u, u)
	assert.ErrorIs(t, err, order.ErrUnorderable)
	assert.Contains(t, err.Error(), "'unkeyed' < 'unkeyed'")
}

func TestIncompatibleKeys_AreUnorderable(t *testing.T) {
	a, b := item{"a"}, item{1}
	assert.Equal(t, order.Incomparable, order.Compare(a, b))
	_, err := order.Gt(a, b)
	assert.ErrorIs(t, err, order.ErrUnorderable)
	assert.False(t, order.Eq(a, b))
}

type missingKey struct {
	order.Unimplemented
}

func TestUnimplemented_Panics(t *testing.T) {
	assert.PanicsWithValue(t, order.ErrNotImplemented, func() {
		order.Compare(missingKey{}, item{"a"})
	})
}

func TestOrdering_Helpers(t *testing.T) {
	assert.Equal(t, order.Greater, order.Less.Reverse())
	assert.Equal(t, order.Incomparable, order.Incomparable.Reverse())
	assert.Equal(t, -1, order.Less.Int())
	assert.Equal(t, "incomparable", order.Incomparable.String())
	assert.Panics(t, func() { order.Incomparable.Int() })
}
