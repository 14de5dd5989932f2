package cfgtree

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrefixFold(t *testing.T) {
	tests := []struct {
		prefix   string
		name     string
		expected bool
	}{
		{"DEL4067", "DEL4067", true},
		{"DEL4067", "del40670_01_07E4_2A^ABCDEF", true},
		{"DEL4067", "DEL", false},
		{"DEL4067", "GSM5B7F", false},
		{"", "anything", true},
	}

	for _, tt := range tests {
		t.Run(tt.prefix+"/"+tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PrefixFold(tt.prefix)(tt.name))
		})
	}
}

func TestSearchStopsAtFirstHit(t *testing.T) {
	store := NewMemStore()
	store.Key(`Root\A`).SetInteger("v", 1)
	store.Key(`Root\B`).SetInteger("v", 2)
	store.Key(`Root\C`).SetInteger("v", 3)

	root, err := store.Open("Root")
	require.NoError(t, err)

	var visited []string
	found, err := Search(root, nil, func(name string, sub Key) bool {
		visited = append(visited, name)
		v, _ := sub.Integer("v")
		return v == 2
	})

	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"A", "B"}, visited)
}

func TestSearchAppliesFilter(t *testing.T) {
	store := NewMemStore()
	store.Key(`Root\GSM5B7F`)
	store.Key(`Root\DEL4067`)
	store.Key(`Root\del1234`)

	root, err := store.Open("Root")
	require.NoError(t, err)

	var visited []string
	found, err := Search(root, PrefixFold("DEL"), func(name string, _ Key) bool {
		visited = append(visited, name)
		return false
	})

	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, []string{"DEL4067", "del1234"}, visited)
}

func TestSearchStopsOnOverlongName(t *testing.T) {
	store := NewMemStore()
	store.Key(`Root\First`)
	store.Key(`Root\` + strings.Repeat("x", MaxKeyNameLen+1))
	store.Key(`Root\Last`)

	root, err := store.Open("Root")
	require.NoError(t, err)

	var visited []string
	found, err := Search(root, nil, func(name string, _ Key) bool {
		visited = append(visited, name)
		return false
	})

	require.NoError(t, err, "an overlong name ends enumeration without an error")
	assert.False(t, found)
	assert.Equal(t, []string{"First"}, visited)
}

func TestSearchSkipsUnopenableKeys(t *testing.T) {
	store := NewMemStore()
	root := store.Key("Root")
	store.Key(`Root\Locked`)
	root.OpenErr = errors.New("access denied")

	rootKey, err := store.Open("Root")
	require.NoError(t, err)

	called := false
	found, err := Search(rootKey, nil, func(string, Key) bool {
		called = true
		return true
	})

	require.NoError(t, err)
	assert.False(t, found)
	assert.False(t, called)
}

func TestSearchCollectsCloseErrors(t *testing.T) {
	store := NewMemStore()
	store.Key(`Root\A`).CloseErr = errors.New("close A")
	store.Key(`Root\B`).CloseErr = errors.New("close B")

	root, err := store.Open("Root")
	require.NoError(t, err)

	found, err := Search(root, nil, func(string, Key) bool { return false })

	assert.False(t, found)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "close A")
	assert.Contains(t, err.Error(), "close B")
}

func TestMemStoreLookups(t *testing.T) {
	store := NewMemStore()
	store.Key(`SYSTEM\Enum\DISPLAY\DEL4067`).SetBinary("EDID", []byte{1, 2, 3})

	k, err := store.Open(`system\enum\display\del4067`)
	require.NoError(t, err)

	data, err := k.Binary("edid")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, data)

	_, err = k.Integer("EDID")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.Open(`SYSTEM\Missing`)
	assert.ErrorIs(t, err, ErrNotFound)
}
