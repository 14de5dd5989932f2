//go:build !windows
// +build !windows

package cfgtree

// unavailableStore stands in for the registry on platforms without one
type unavailableStore struct{}

// NewSystemStore returns a store whose every Open fails with ErrUnavailable
func NewSystemStore() Store {
	return unavailableStore{}
}

func (unavailableStore) Open(string) (Key, error) {
	return nil, ErrUnavailable
}
