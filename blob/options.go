package blob

import (
	"fmt"

	"github.com/on-the-ground/textblob_go/corpus"
	"github.com/on-the-ground/textblob_go/internal/logging"
	"github.com/on-the-ground/textblob_go/memo"
	"github.com/on-the-ground/textblob_go/textutil"
	"go.uber.org/zap"
)

// TaggerResource is the corpus resource a Tagger is assumed to load.
const TaggerResource = "taggers/averaged_perceptron_tagger"

// Tokenizer splits a text into tokens, punctuation included.
type Tokenizer func(text string) ([]string, error)

// Tagger labels every token of a text.
type Tagger func(text string) ([]textutil.Tagged, error)

type options struct {
	tokenizer Tokenizer
	tagger    Tagger
	resource  string
	locator   corpus.Locator
	logger    *zap.Logger
}

// Option configures a Blob.
type Option func(*options)

// WithTokenizer replaces the default whitespace and punctuation tokenizer.
func WithTokenizer(t Tokenizer) Option {
	return func(o *options) {
		if t != nil {
			o.tokenizer = t
		}
	}
}

// WithTagger sets the tagger. Resource names the corpus it depends on and
// defaults to TaggerResource.
func WithTagger(t Tagger, resource ...string) Option {
	return func(o *options) {
		o.tagger = t
		if len(resource) > 0 {
			o.resource = resource[0]
		}
	}
}

// WithLocator makes tagging check that the tagger's resource can be located
// first. A lookup failure surfaces from Tags as *corpus.MissingCorpusError.
func WithLocator(loc corpus.Locator) Option {
	return func(o *options) { o.locator = loc }
}

// WithLogger sets the logger used for corpus failures. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) { o.logger = logging.OrNop(logger) }
}

func newOptions(opts []Option) options {
	o := options{
		tokenizer: Tokenize,
		resource:  TaggerResource,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	tagger := o.tagger
	if tagger == nil {
		tagger = noTagger
	}
	if o.locator != nil {
		tagger = located(tagger, o.locator, o.resource)
	}
	o.tagger = corpus.Requires[string, []textutil.Tagged](tagger,
		corpus.WithResource(o.resource),
		corpus.WithLogger(o.logger),
	)
	return o
}

func located(t Tagger, loc corpus.Locator, resource string) Tagger {
	return func(text string) ([]textutil.Tagged, error) {
		if _, err := loc.Locate(resource); err != nil {
			return nil, err
		}
		return t(text)
	}
}

func noTagger(string) ([]textutil.Tagged, error) {
	return nil, fmt.Errorf("%w: no tagger configured", corpus.ErrLookup)
}

// MemoizedTokenizer shares tokenizations of identical texts across blobs.
// The returned slices are shared and must not be modified.
func MemoizedTokenizer(t Tokenizer, cfg memo.Config) Tokenizer {
	return memo.Tableize[[]string](t, cfg)
}

// MemoizedTagger shares taggings of identical texts across blobs.
// The returned slices are shared and must not be modified.
func MemoizedTagger(t Tagger, cfg memo.Config) Tagger {
	return memo.Tableize[[]textutil.Tagged](t, cfg)
}
