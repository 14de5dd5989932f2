// Package cfgtree provides read-only access to hierarchical configuration stores
// such as the Windows registry.
package cfgtree

import (
	"errors"
	"strings"

	"go.uber.org/multierr"
)

// MaxKeyNameLen is the longest sub key name an enumeration step accepts.
// A longer name ends the enumeration.
const MaxKeyNameLen = 255

// Separator joins path segments
const Separator = `\`

var (
	// ErrNotFound is returned for a missing key or value
	ErrNotFound = errors.New("cfgtree: not found")
	// ErrUnavailable is returned by stores with no backing tree on this platform
	ErrUnavailable = errors.New("cfgtree: store unavailable")
)

// Key is an open node of the tree
type Key interface {
	// SubKeyNames lists direct children in store order
	SubKeyNames() ([]string, error)

	// Open opens a direct or nested child, segments joined by Separator
	Open(path string) (Key, error)

	// Binary reads a binary value
	Binary(name string) ([]byte, error)

	// Integer reads a numeric value
	Integer(name string) (uint64, error)

	Close() error
}

// Store opens keys by absolute path
type Store interface {
	Open(path string) (Key, error)
}

// Filter selects sub keys by name. A nil Filter selects every key.
type Filter func(name string) bool

// PrefixFold selects names beginning with prefix, ignoring case
func PrefixFold(prefix string) Filter {
	return func(name string) bool {
		return len(name) >= len(prefix) && strings.EqualFold(name[:len(prefix)], prefix)
	}
}

// Search opens each sub key of k accepted by filter and passes it to visit,
// closing it afterwards. It stops as soon as visit returns true and reports
// whether that happened. Keys that fail to open are skipped.
func Search(k Key, filter Filter, visit func(name string, sub Key) bool) (found bool, err error) {
	names, err := k.SubKeyNames()
	if err != nil {
		return false, err
	}

	for _, name := range names {
		if len(name) > MaxKeyNameLen {
			break
		}
		if filter != nil && !filter(name) {
			continue
		}

		sub, openErr := k.Open(name)
		if openErr != nil {
			continue
		}
		found = visit(name, sub)
		err = multierr.Append(err, sub.Close())
		if found {
			return true, err
		}
	}
	return false, err
}
