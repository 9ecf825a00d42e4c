package blob_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/on-the-ground/textblob_go/blob"
	"github.com/on-the-ground/textblob_go/corpus"
	"github.com/on-the-ground/textblob_go/memo"
	"github.com/on-the-ground/textblob_go/order"
	"github.com/on-the-ground/textblob_go/textutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestBlob_StringProxy(t *testing.T) {
	b := blob.New("hello")

	ch, err := b.At(0)
	require.NoError(t, err)
	assert.Equal(t, "h", ch)

	sub := b.Slice(1, 3)
	assert.IsType(t, &blob.Blob{}, sub)
	assert.Equal(t, "el", sub.Raw())

	assert.Equal(t, 5, b.Len())
	assert.Equal(t, `Blob("hello")`, b.Repr())
	assert.Equal(t, "hello", fmt.Sprint(b))
}

func TestBlob_TransformsKeepCollaborators(t *testing.T) {
	calls := 0
	b := blob.New("  Hello World  ", blob.WithTokenizer(func(s string) ([]string, error) {
		calls++
		return strings.Fields(s), nil
	}))

	up := b.Strip().Upper()
	assert.Equal(t, "HELLO WORLD", up.Raw())

	toks, err := up.Tokens()
	require.NoError(t, err)
	assert.Equal(t, []string{"HELLO", "WORLD"}, toks)
	assert.Equal(t, 1, calls)
}

func TestBlob_StripIsIdempotent(t *testing.T) {
	once := blob.New("\t text \n").Strip()
	twice := once.Strip()
	assert.True(t, once.Equal(twice))
	assert.Equal(t, "text", twice.Raw())
}

func TestBlob_Comparison(t *testing.T) {
	x := blob.New("x")

	assert.True(t, x.Equal("x"))
	assert.False(t, x.Equal([]byte("x")), "text never equals bytes")
	assert.True(t, x.Equal(blob.New("x")))
	assert.False(t, x.Equal("y"))
	assert.True(t, order.Eq("x", x), "reflected comparison")

	less, err := blob.New("apple").Less("banana")
	require.NoError(t, err)
	assert.True(t, less)

	c, err := blob.New("b").Cmp(blob.New("a"))
	require.NoError(t, err)
	assert.Equal(t, 1, c)

	_, err = x.Less(1.5)
	assert.ErrorIs(t, err, order.ErrUnorderable)
	assert.False(t, x.Equal(1.5))
}

func TestBlob_BytesAreUnorderable(t *testing.T) {
	x := blob.New("x")

	assert.False(t, x.Equal([]byte("x")))
	assert.Equal(t, order.Incomparable, order.CompareBlob(x, []byte("x")))

	_, err := x.Less([]byte("y"))
	assert.ErrorIs(t, err, order.ErrUnorderable)
	assert.Contains(t, err.Error(), "'Blob' < '[]uint8'")

	_, err = x.Cmp([]byte("x"))
	assert.ErrorIs(t, err, order.ErrUnorderable)
}

func TestBlob_HashFollowsText(t *testing.T) {
	assert.Equal(t, blob.New("same").Hash(), blob.New("same").Hash())
	assert.NotEqual(t, blob.New("same").Hash(), blob.New("other").Hash())
}

func TestBlob_SortsWithOrder(t *testing.T) {
	items := []*blob.Blob{blob.New("pear"), blob.New("apple"), blob.New("fig")}
	require.NoError(t, order.Sort(items))
	assert.Equal(t, "apple", items[0].Raw())
	assert.Equal(t, "fig", items[1].Raw())
	assert.Equal(t, "pear", items[2].Raw())
}

func TestBlob_WordsAreMemoized(t *testing.T) {
	calls := 0
	b := blob.New("Hello, world!", blob.WithTokenizer(func(s string) ([]string, error) {
		calls++
		return blob.Tokenize(s)
	}))

	for i := 0; i < 3; i++ {
		words, err := b.Words()
		require.NoError(t, err)
		assert.Equal(t, []string{"Hello", "world"}, words)
	}
	toks, err := b.Tokens()
	require.NoError(t, err)
	assert.Equal(t, []string{"Hello", ",", "world", "!"}, toks)
	assert.Equal(t, 1, calls)
}

func TestBlob_TagsWithoutTaggerIsMissingCorpus(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	b := blob.New("hello", blob.WithLogger(zap.New(core)))

	_, err := b.Tags()
	require.Error(t, err)
	assert.ErrorIs(t, err, corpus.ErrMissingCorpus)

	var missing *corpus.MissingCorpusError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, blob.TaggerResource, missing.Resource)
	assert.Equal(t, 1, logs.Len())
}

func TestBlob_TaggerLookupFailureIsTranslated(t *testing.T) {
	b := blob.New("hello", blob.WithTagger(func(string) ([]textutil.Tagged, error) {
		return nil, fmt.Errorf("model file: %w", corpus.ErrLookup)
	}, "taggers/custom"))

	_, err := b.Phrases()
	var missing *corpus.MissingCorpusError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "taggers/custom", missing.Resource)
	assert.ErrorIs(t, err, corpus.ErrLookup)
}

func TestBlob_OtherTaggerErrorsPassThrough(t *testing.T) {
	boom := errors.New("boom")
	b := blob.New("hello", blob.WithTagger(func(string) ([]textutil.Tagged, error) {
		return nil, boom
	}))

	_, err := b.Tags()
	assert.Equal(t, boom, err)
}

func fixedTagger(string) ([]textutil.Tagged, error) {
	return []textutil.Tagged{
		{Word: "The", Tag: "DT"},
		{Word: "beautiful", Tag: "JJ"},
		{Word: "Dashboard", Tag: "NN"},
		{Word: "is", Tag: "VBZ"},
		{Word: "fast", Tag: "JJ"},
		{Word: "and", Tag: "CC"},
		{Word: "it", Tag: "PRP"},
		{Word: "ships", Tag: "VBZ"},
		{Word: "new", Tag: "JJ"},
		{Word: "reports", Tag: "NNS"},
	}, nil
}

func TestBlob_Phrases(t *testing.T) {
	b := blob.New("The beautiful Dashboard is fast and it ships new reports", blob.WithTagger(fixedTagger))

	phrases, err := b.Phrases()
	require.NoError(t, err)
	assert.Equal(t, []string{"beautiful dashboard", "new reports"}, phrases)
}

func TestBlob_WarmCollectsFailures(t *testing.T) {
	b := blob.New("hello world")

	err := b.Warm()
	require.Error(t, err)
	// tags and phrases fail; tokens and words succeed.
	assert.Len(t, multierr.Errors(err), 2)

	words, err := b.Words()
	require.NoError(t, err)
	assert.Equal(t, []string{"hello", "world"}, words)
}

func TestMemoizedTagger_SharesAcrossBlobs(t *testing.T) {
	calls := 0
	tagger := blob.MemoizedTagger(func(s string) ([]textutil.Tagged, error) {
		calls++
		return fixedTagger(s)
	}, memo.NewConfig(16, 1))

	for i := 0; i < 3; i++ {
		_, err := blob.New("same text", blob.WithTagger(tagger)).Tags()
		require.NoError(t, err)
	}
	_, err := blob.New("other text", blob.WithTagger(tagger)).Tags()
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestMemoizedTokenizer(t *testing.T) {
	calls := 0
	tok := blob.MemoizedTokenizer(func(s string) ([]string, error) {
		calls++
		return blob.Tokenize(s)
	}, memo.Config{})

	a, _ := blob.New("a b", blob.WithTokenizer(tok)).Words()
	b, _ := blob.New("a b", blob.WithTokenizer(tok)).Words()
	assert.Equal(t, a, b)
	assert.Equal(t, 1, calls)
}

func TestBlob_LocatorGuardsTagger(t *testing.T) {
	tagger := blob.WithTagger(fixedTagger)

	_, err := blob.New("hello", tagger, blob.WithLocator(corpus.MapLocator{})).Tags()
	var missing *corpus.MissingCorpusError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, blob.TaggerResource, missing.Resource)

	loc := corpus.MapLocator{blob.TaggerResource: "/models/tagger"}
	tags, err := blob.New("hello", tagger, blob.WithLocator(loc)).Tags()
	require.NoError(t, err)
	assert.NotEmpty(t, tags)
}

func TestFrom(t *testing.T) {
	b, err := blob.From("text")
	require.NoError(t, err)
	assert.Equal(t, "text", b.Raw())

	b, err = blob.From([]byte("bytes"))
	require.NoError(t, err)
	assert.Equal(t, "bytes", b.Raw())

	b, err = blob.From(strings.NewReader("reader"))
	require.NoError(t, err)
	assert.Equal(t, "reader", b.Raw())

	_, err = blob.From(42)
	assert.ErrorIs(t, err, blob.ErrNotText)
}
