package cfgtree

import (
	"fmt"
	"strings"
)

// MemStore is an in-memory tree. Children keep their insertion order.
type MemStore struct {
	root *MemKey
}

// NewMemStore creates an empty in-memory tree
func NewMemStore() *MemStore {
	return &MemStore{root: newMemKey()}
}

// Open returns the key at path, or ErrNotFound
func (s *MemStore) Open(path string) (Key, error) {
	return s.root.Open(path)
}

// Key returns the key at path, creating missing segments
func (s *MemStore) Key(path string) *MemKey {
	k := s.root
	for _, seg := range splitPath(path) {
		child, ok := k.children[strings.ToLower(seg)]
		if !ok {
			child = newMemKey()
			k.children[strings.ToLower(seg)] = child
			k.order = append(k.order, seg)
		}
		k = child
	}
	return k
}

// MemKey is a node of a MemStore
type MemKey struct {
	children map[string]*MemKey
	order    []string
	values   map[string]any
	// OpenErr, when set, is returned by Open for every child of this key
	OpenErr error
	// CloseErr is returned by Close
	CloseErr error
}

func newMemKey() *MemKey {
	return &MemKey{
		children: make(map[string]*MemKey),
		values:   make(map[string]any),
	}
}

// SetBinary stores a binary value
func (k *MemKey) SetBinary(name string, data []byte) *MemKey {
	k.values[strings.ToLower(name)] = data
	return k
}

// SetInteger stores a numeric value
func (k *MemKey) SetInteger(name string, v uint64) *MemKey {
	k.values[strings.ToLower(name)] = v
	return k
}

// SubKeyNames lists children in insertion order
func (k *MemKey) SubKeyNames() ([]string, error) {
	return append([]string(nil), k.order...), nil
}

// Open resolves a child path, case-insensitively like the registry
func (k *MemKey) Open(path string) (Key, error) {
	cur := k
	for _, seg := range splitPath(path) {
		if cur.OpenErr != nil {
			return nil, cur.OpenErr
		}
		child, ok := cur.children[strings.ToLower(seg)]
		if !ok {
			return nil, fmt.Errorf("open %s: %w", path, ErrNotFound)
		}
		cur = child
	}
	return cur, nil
}

// Binary reads a value stored with SetBinary
func (k *MemKey) Binary(name string) ([]byte, error) {
	v, ok := k.values[strings.ToLower(name)].([]byte)
	if !ok {
		return nil, fmt.Errorf("value %s: %w", name, ErrNotFound)
	}
	return v, nil
}

// Integer reads a value stored with SetInteger
func (k *MemKey) Integer(name string) (uint64, error) {
	v, ok := k.values[strings.ToLower(name)].(uint64)
	if !ok {
		return 0, fmt.Errorf("value %s: %w", name, ErrNotFound)
	}
	return v, nil
}

// Close returns CloseErr
func (k *MemKey) Close() error {
	return k.CloseErr
}

func splitPath(path string) []string {
	var segs []string
	for _, s := range strings.Split(path, Separator) {
		if s != "" {
			segs = append(segs, s)
		}
	}
	return segs
}
