package corpus

import (
	"errors"
	"fmt"
	"io/fs"
)

var (
	// ErrLookup is the generic signal that a named resource could not be found.
	ErrLookup = errors.New("corpus: lookup failed")

	// ErrMissingCorpus matches every *MissingCorpusError.
	ErrMissingCorpus = errors.New("corpus: missing required data")
)

// MissingCorpusError reports that a feature needed an external resource that
// is not installed.
type MissingCorpusError struct {
	Resource string // name of the missing resource, if known
	Err      error  // the lookup failure that triggered this error
}

func (e *MissingCorpusError) Error() string {
	if e.Resource != "" {
		return fmt.Sprintf("corpus: missing required data %q for this feature: %v", e.Resource, e.Err)
	}
	return fmt.Sprintf("corpus: missing required data for this feature: %v", e.Err)
}

func (e *MissingCorpusError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrMissingCorpus) hold for any MissingCorpusError.
func (e *MissingCorpusError) Is(target error) bool {
	return target == ErrMissingCorpus
}

// IsLookupFailure reports whether err signals a missing resource that has not
// been translated yet.
func IsLookupFailure(err error) bool {
	if err == nil {
		return false
	}
	var missing *MissingCorpusError
	if errors.As(err, &missing) {
		return false
	}
	return errors.Is(err, ErrLookup) || errors.Is(err, fs.ErrNotExist)
}
