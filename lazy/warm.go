package lazy

import "go.uber.org/multierr"

// Prefetcher is a computed attribute that can be evaluated for its side effect
// of filling the host's store.
type Prefetcher[E Holder] interface {
	Name() string
	Prefetch(e E) error
}

// Warm evaluates every property on e. It does not stop at the first failure;
// all derivation errors are combined into the returned error.
func Warm[E Holder](e E, props ...Prefetcher[E]) error {
	var err error
	for _, p := range props {
		err = multierr.Append(err, p.Prefetch(e))
	}
	return err
}
