package lazy

import (
	"errors"
	"fmt"
	"time"

	"github.com/on-the-ground/textblob_go/internal/logging"
	"github.com/on-the-ground/textblob_go/shared/helper"
	"github.com/rickb777/date/v2/timespan"
	"go.uber.org/zap"
)

var (
	// ErrNilStore is returned when a host hands out a nil Store.
	ErrNilStore = errors.New("lazy: host has no store")

	// ErrTypeMismatch is returned when the value stored under a property's name
	// is not of the property's type.
	ErrTypeMismatch = errors.New("lazy: stored value has the wrong type")
)

// Property is a memoizing computed attribute for hosts of type E.
//
// A Property holds the recipe only; each instance's result lives in that
// instance's Store under Name().
type Property[E Holder, T any] struct {
	name   string
	doc    string
	derive func(E) (T, error)
	logger *zap.Logger
}

type options struct {
	doc    string
	logger *zap.Logger
}

// Option configures a Property.
type Option func(*options)

// WithDoc attaches a documentation string.
func WithDoc(doc string) Option {
	return func(o *options) { o.doc = doc }
}

// WithLogger sets the logger for compute and reset events. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) { o.logger = logging.OrNop(logger) }
}

// NewProperty declares a computed attribute called name.
// It panics if name is empty or derive is nil.
func NewProperty[E Holder, T any](name string, derive func(E) (T, error), opts ...Option) *Property[E, T] {
	if name == "" {
		panic("lazy: property name must not be empty")
	}
	if derive == nil {
		panic("lazy: property derive function must not be nil")
	}
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Property[E, T]{
		name:   name,
		doc:    o.doc,
		derive: derive,
		logger: o.logger,
	}
}

// Name returns the attribute name the value is stored under.
func (p *Property[E, T]) Name() string { return p.name }

// Doc returns the documentation string.
func (p *Property[E, T]) Doc() string { return p.doc }

func (p *Property[E, T]) String() string {
	return fmt.Sprintf("lazy.Property(%s)", p.name)
}

// Get returns the value for e, deriving and storing it on the first call.
// An error from the derivation is returned as is and nothing is stored.
func (p *Property[E, T]) Get(e E) (T, error) {
	var zero T
	store := e.LazyStore()
	if store == nil {
		return zero, fmt.Errorf("%w: %s", ErrNilStore, p.name)
	}

	v, found, err := helper.LookupAs[T](func() (any, bool) {
		return store.Lookup(p.name)
	})
	if err != nil {
		return zero, fmt.Errorf("%w: %s: %w", ErrTypeMismatch, p.name, err)
	}
	if found {
		return v, nil
	}

	start := time.Now()
	v, err = p.derive(e)
	end := time.Now()
	if err != nil {
		p.logger.Debug("property derivation failed",
			zap.String("property", p.name),
			zap.String("store", store.ID()),
			zap.Error(err),
		)
		return zero, err
	}

	store.set(p.name, v, timespan.BetweenTimes(start, end))
	p.logger.Debug("property computed",
		zap.String("property", p.name),
		zap.String("store", store.ID()),
		zap.Duration("elapsed", end.Sub(start)),
	)
	return v, nil
}

// MustGet is the panic-on-failure variant of Get.
func (p *Property[E, T]) MustGet(e E) T {
	v, err := p.Get(e)
	if err != nil {
		panic(err)
	}
	return v
}

// Prefetch derives the value for e if needed, discarding it.
func (p *Property[E, T]) Prefetch(e E) error {
	_, err := p.Get(e)
	return err
}

// Reset drops e's stored value so the next Get derives it again.
// It reports whether a value was stored.
func (p *Property[E, T]) Reset(e E) bool {
	store := e.LazyStore()
	if store == nil || !store.Delete(p.name) {
		return false
	}
	p.logger.Debug("property reset",
		zap.String("property", p.name),
		zap.String("store", store.ID()),
	)
	return true
}

// Cached reports whether e currently holds a value for this property.
func (p *Property[E, T]) Cached(e E) bool {
	store := e.LazyStore()
	if store == nil {
		return false
	}
	_, ok := store.Lookup(p.name)
	return ok
}

// ComputedDuring returns the span during which e's current value was derived.
func (p *Property[E, T]) ComputedDuring(e E) (timespan.TimeSpan, bool) {
	store := e.LazyStore()
	if store == nil {
		return timespan.TimeSpan{}, false
	}
	return store.Span(p.name)
}
