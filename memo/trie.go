package memo

import (
	"sync"
	"sync/atomic"
)

// Trie is a bounded map from key paths to values, keeping two generations.
// It is safe for concurrent use; concurrent stores of the same path may race
// and the last one wins.
type Trie[O any] struct {
	memos   [2]atomic.Pointer[sync.Map]
	headIdx atomic.Uint32
	size    atomic.Uint32
	maxSize uint32
}

// NewTrie returns a trie that rotates generations every maxSize stores.
// It panics if maxSize is 0.
func NewTrie[O any](maxSize uint32) *Trie[O] {
	if maxSize == 0 {
		panic("memo: maxSize should be greater than 0")
	}
	t := &Trie[O]{maxSize: maxSize}
	t.memos[0].Store(&sync.Map{})
	t.memos[1].Store(&sync.Map{})
	return t
}

// Load looks keys up in the current generation, then in the previous one.
// It panics on an empty key path.
func (t *Trie[O]) Load(keys []string) (O, bool) {
	headIdx := t.headIdx.Load()
	if v, ok := load(t.memos[headIdx].Load(), keys); ok {
		return v.(O), true
	}
	if v, ok := load(t.memos[1-headIdx].Load(), keys); ok {
		return v.(O), true
	}
	var zero O
	return zero, false
}

// Store saves value under keys in the current generation, rotating first if
// the generation is full.
func (t *Trie[O]) Store(keys []string, value O) {
	if len(keys) == 0 {
		panic("memo: empty keys")
	}
	if t.size.CompareAndSwap(t.maxSize, 0) {
		t.rotate()
	}
	m, k := traverse(t.memos[t.headIdx.Load()].Load(), keys, true)
	m.Store(k, value)
	t.size.Add(1)
}

// rotate drops the previous generation and makes it the new, empty head.
// Only the store that reset the size counter rotates.
func (t *Trie[O]) rotate() {
	next := 1 - t.headIdx.Load()
	t.memos[next].Store(&sync.Map{})
	t.headIdx.Store(next)
}

func load(root *sync.Map, keys []string) (any, bool) {
	m, k := traverse(root, keys, false)
	if m == nil {
		return nil, false
	}
	return m.Load(k)
}

// traverse walks every key but the last and returns the map holding the last
// one. With create=false a missing branch yields a nil map.
func traverse(m *sync.Map, keys []string, create bool) (*sync.Map, string) {
	length := len(keys)
	if length == 0 {
		panic("memo: empty keys")
	}

	for _, k := range keys[:length-1] {
		v, ok := m.Load(k)
		if !ok {
			if !create {
				return nil, ""
			}
			v, _ = m.LoadOrStore(k, &sync.Map{})
		}
		m = v.(*sync.Map)
	}
	return m, keys[length-1]
}
