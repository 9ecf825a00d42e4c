package corpus

import (
	"github.com/on-the-ground/textblob_go/internal/logging"
	"go.uber.org/zap"
)

type options struct {
	resource string
	logger   *zap.Logger
}

// Option configures Requires.
type Option func(*options)

// WithResource names the resource the wrapped function depends on.
func WithResource(name string) Option {
	return func(o *options) { o.resource = name }
}

// WithLogger logs every translated lookup failure at warn level.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) { o.logger = logging.OrNop(logger) }
}

func newOptions(opts []Option) options {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) translate(err error) error {
	if !IsLookupFailure(err) {
		return err
	}
	o.logger.Warn("required corpus is missing",
		zap.String("resource", o.resource),
		zap.Error(err),
	)
	return &MissingCorpusError{Resource: o.resource, Err: err}
}

// Requires wraps fn so that a lookup failure surfaces as *MissingCorpusError.
// Arguments, results and any other error pass through unchanged.
func Requires[I, O any](fn func(I) (O, error), opts ...Option) func(I) (O, error) {
	o := newOptions(opts)
	return func(i I) (O, error) {
		res, err := fn(i)
		return res, o.translate(err)
	}
}

// RequiresI2O1 is Requires for two-argument functions.
func RequiresI2O1[I1, I2, O any](fn func(I1, I2) (O, error), opts ...Option) func(I1, I2) (O, error) {
	o := newOptions(opts)
	return func(i1 I1, i2 I2) (O, error) {
		res, err := fn(i1, i2)
		return res, o.translate(err)
	}
}

// RequiresI0 is Requires for functions that only report an error.
func RequiresI0(fn func() error, opts ...Option) func() error {
	o := newOptions(opts)
	return func() error {
		return o.translate(fn())
	}
}
