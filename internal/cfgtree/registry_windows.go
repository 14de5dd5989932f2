//go:build windows
// +build windows

package cfgtree

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/sys/windows/registry"
)

// registryStore reads a hive of the Windows registry
type registryStore struct {
	root registry.Key
}

// NewSystemStore opens HKEY_LOCAL_MACHINE for reading
func NewSystemStore() Store {
	return &registryStore{root: registry.LOCAL_MACHINE}
}

// Open opens a key below the hive root
func (s *registryStore) Open(path string) (Key, error) {
	return openRegistryKey(s.root, path)
}

type registryKey struct {
	k registry.Key
}

func openRegistryKey(parent registry.Key, path string) (Key, error) {
	k, err := registry.OpenKey(parent, path, registry.QUERY_VALUE|registry.ENUMERATE_SUB_KEYS)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, mapRegistryErr(err))
	}
	return &registryKey{k: k}, nil
}

// SubKeyNames reads every child name at full length. Search applies MaxKeyNameLen.
func (r *registryKey) SubKeyNames() ([]string, error) {
	info, err := r.k.Stat()
	if err != nil {
		return nil, mapRegistryErr(err)
	}
	if info.SubKeyCount == 0 {
		return nil, nil
	}

	names, err := r.k.ReadSubKeyNames(int(info.SubKeyCount))
	if err != nil && !errors.Is(err, io.EOF) {
		return names, mapRegistryErr(err)
	}
	return names, nil
}

func (r *registryKey) Open(path string) (Key, error) {
	return openRegistryKey(r.k, path)
}

func (r *registryKey) Binary(name string) ([]byte, error) {
	v, _, err := r.k.GetBinaryValue(name)
	if err != nil {
		return nil, fmt.Errorf("value %s: %w", name, mapRegistryErr(err))
	}
	return v, nil
}

func (r *registryKey) Integer(name string) (uint64, error) {
	v, _, err := r.k.GetIntegerValue(name)
	if err != nil {
		return 0, fmt.Errorf("value %s: %w", name, mapRegistryErr(err))
	}
	return v, nil
}

func (r *registryKey) Close() error {
	return r.k.Close()
}

func mapRegistryErr(err error) error {
	if errors.Is(err, registry.ErrNotExist) {
		return ErrNotFound
	}
	return err
}
