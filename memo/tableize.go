package memo

import "github.com/cespare/xxhash/v2"

type table[O any] struct {
	shards []*Trie[O]
}

func newTable[O any](cfg Config) table[O] {
	cfg = NewConfig(cfg.MaxSize, cfg.NumShards)
	shards := make([]*Trie[O], cfg.NumShards)
	for i := range shards {
		shards[i] = NewTrie[O](cfg.shardSize())
	}
	return table[O]{shards: shards}
}

func (t table[O]) shard(keys []string) *Trie[O] {
	if len(t.shards) == 1 {
		return t.shards[0]
	}
	return t.shards[xxhash.Sum64String(keys[0])%uint64(len(t.shards))]
}

func (t table[O]) call(keys []string, fn func() (O, error)) (O, error) {
	trie := t.shard(keys)
	if v, ok := trie.Load(keys); ok {
		return v, nil
	}
	v, err := fn()
	if err != nil {
		return v, err
	}
	trie.Store(keys, v)
	return v, nil
}

// Tableize memoizes a pure analysis of a text. Failed calls are not memoized.
func Tableize[O any](pureFn func(string) (O, error), cfg Config) func(string) (O, error) {
	t := newTable[O](cfg)
	return func(text string) (O, error) {
		return t.call([]string{text}, func() (O, error) {
			return pureFn(text)
		})
	}
}

// TableizeI2O1 memoizes a pure analysis of two texts, e.g. a text and a
// language or model name.
func TableizeI2O1[O any](pureFn func(string, string) (O, error), cfg Config) func(string, string) (O, error) {
	t := newTable[O](cfg)
	return func(a, b string) (O, error) {
		return t.call([]string{a, b}, func() (O, error) {
			return pureFn(a, b)
		})
	}
}
