package corpus

import (
	"fmt"
	"os"
	"path/filepath"
)

// Locator finds named resources. A missing resource is reported with an error
// wrapping ErrLookup.
type Locator interface {
	Locate(name string) (string, error)
}

// DirLocator finds resources as files or directories under Root.
type DirLocator struct {
	Root string
}

// Locate returns the path of name under Root.
func (d DirLocator) Locate(name string) (string, error) {
	path := filepath.Join(d.Root, filepath.FromSlash(name))
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrLookup, name, err)
	}
	return path, nil
}

// MapLocator resolves names from a fixed table.
type MapLocator map[string]string

// Locate returns the location registered for name.
func (m MapLocator) Locate(name string) (string, error) {
	loc, ok := m[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrLookup, name)
	}
	return loc, nil
}

var (
	_ Locator = DirLocator{}
	_ Locator = MapLocator{}
)
