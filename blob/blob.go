package blob

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/on-the-ground/textblob_go/lazy"
	"github.com/on-the-ground/textblob_go/order"
	"github.com/on-the-ground/textblob_go/stringlike"
	"github.com/on-the-ground/textblob_go/textutil"
)

// Blob is an immutable text with lazily derived analyses.
//
// String operations come from the embedded stringlike.Mixin and return new
// Blobs sharing this one's collaborators. A Blob orders by its text and also
// compares against raw strings. Byte slices are never equal to a Blob and
// cannot be ordered against one.
//
// IMPORTANT:
// Blob is intentionally NOT thread-safe. Derived analyses are pinned into the
// Blob on first use without synchronization.
type Blob struct {
	stringlike.Mixin[*Blob]
	order.BlobMixin

	raw   string
	opts  options
	store lazy.Store
}

var (
	_ stringlike.Host[*Blob] = (*Blob)(nil)
	_ order.BlobComparable   = (*Blob)(nil)
	_ lazy.Holder            = (*Blob)(nil)
)

// New returns a Blob holding text.
func New(text string, opts ...Option) *Blob {
	return newBlob(text, newOptions(opts))
}

// ErrNotText is returned by From for sources that are not text.
var ErrNotText = errors.New("blob: source must be a string, byte slice or reader")

// From returns a Blob holding the text of src, which may be a string, a byte
// slice or an io.Reader read to the end.
func From(src any, opts ...Option) (*Blob, error) {
	switch v := src.(type) {
	case string:
		return New(v, opts...), nil
	case []byte:
		return New(string(v), opts...), nil
	}
	if !textutil.IsFileLike(src) {
		return nil, fmt.Errorf("%w: got %T", ErrNotText, src)
	}
	data, err := io.ReadAll(src.(io.Reader))
	if err != nil {
		return nil, err
	}
	return New(string(data), opts...), nil
}

func newBlob(text string, o options) *Blob {
	b := &Blob{raw: text, opts: o}
	b.Mixin = stringlike.Bind[*Blob](b)
	return b
}

// Raw returns the text the Blob was built from.
func (b *Blob) Raw() string { return b.raw }

func (b *Blob) StringKey() string { return b.raw }

// FromString returns a Blob holding s with the same collaborators as b.
func (b *Blob) FromString(s string) *Blob {
	return newBlob(s, b.opts)
}

func (b *Blob) CompareKey() any { return b.raw }

func (b *Blob) LazyStore() *lazy.Store { return &b.store }

// Hash returns the xxhash of the text. Equal blobs hash alike.
func (b *Blob) Hash() uint64 {
	return xxhash.Sum64String(b.raw)
}

// Equal reports whether b equals other, which may be a Blob or a string.
func (b *Blob) Equal(other any) bool {
	return order.Eq(b, other)
}

// Less reports whether b sorts before other.
func (b *Blob) Less(other any) (bool, error) {
	return order.Lt(b, other)
}

// Cmp returns -1, 0 or +1 comparing b to other.
func (b *Blob) Cmp(other any) (int, error) {
	return order.Cmp(b, other)
}

var (
	tokens = lazy.NewProperty("tokens", func(b *Blob) ([]string, error) {
		return b.opts.tokenizer(b.raw)
	}, lazy.WithDoc("Tokens of the text, punctuation included."))

	words = lazy.NewProperty("words", func(b *Blob) ([]string, error) {
		toks, err := b.Tokens()
		if err != nil {
			return nil, err
		}
		out := make([]string, 0, len(toks))
		for _, t := range toks {
			if w := textutil.StripPunc(t, false); w != "" {
				out = append(out, w)
			}
		}
		return out, nil
	}, lazy.WithDoc("Tokens with surrounding punctuation removed; pure punctuation is dropped."))

	tags = lazy.NewProperty("tags", func(b *Blob) ([]textutil.Tagged, error) {
		return b.opts.tagger(b.raw)
	}, lazy.WithDoc("Tokens labelled by the tagger."))

	phrases = lazy.NewProperty("phrases", func(b *Blob) ([]string, error) {
		tagged, err := b.Tags()
		if err != nil {
			return nil, err
		}
		var out []string
		for _, chunk := range nounChunks(tagged) {
			if sig := textutil.FilterInsignificant(chunk); len(sig) > 0 {
				out = append(out, strings.ToLower(textutil.TreeToString(sig)))
			}
		}
		return out, nil
	}, lazy.WithDoc("Lower-cased noun phrases built from the tags."))
)

// Properties lists the lazily derived analyses of a Blob, for use with
// lazy.Warm.
func Properties() []lazy.Prefetcher[*Blob] {
	return []lazy.Prefetcher[*Blob]{tokens, words, tags, phrases}
}

// Tokens returns the tokens of the text, punctuation included.
func (b *Blob) Tokens() ([]string, error) { return tokens.Get(b) }

// Words returns the tokens without punctuation.
func (b *Blob) Words() ([]string, error) { return words.Get(b) }

// Tags returns the tagged tokens. Without a usable tagger the error is a
// *corpus.MissingCorpusError.
func (b *Blob) Tags() ([]textutil.Tagged, error) { return tags.Get(b) }

// Phrases returns the noun phrases of the text.
func (b *Blob) Phrases() ([]string, error) { return phrases.Get(b) }

// Warm derives every analysis, collecting all failures.
func (b *Blob) Warm() error {
	return lazy.Warm(b, Properties()...)
}

// nounChunks groups runs of determiners, adjectives and nouns that contain at
// least one noun.
func nounChunks(tagged []textutil.Tagged) [][]textutil.Tagged {
	var chunks [][]textutil.Tagged
	var cur []textutil.Tagged
	hasNoun := false
	flush := func() {
		if hasNoun {
			chunks = append(chunks, cur)
		}
		cur, hasNoun = nil, false
	}
	for _, t := range tagged {
		switch {
		case strings.HasPrefix(t.Tag, "NN"):
			cur = append(cur, t)
			hasNoun = true
		case t.Tag == "DT" || strings.HasPrefix(t.Tag, "JJ"):
			if hasNoun {
				flush()
			}
			cur = append(cur, t)
		default:
			flush()
		}
	}
	flush()
	return chunks
}
