package collections_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-transformers/collections"
)

func TestHashSet_Basics(t *testing.T) {
	s := collections.NewHashSet(1, 2, 2, 3)
	assert.Equal(t, 3, s.Len())

	added, err := s.Add(3)
	require.NoError(t, err)
	assert.False(t, added)
	added, err = s.Add(4)
	require.NoError(t, err)
	assert.True(t, added)

	assert.True(t, s.Contains(4))
	assert.False(t, s.Contains("4"))
	assert.False(t, s.Contains(nil))

	removed, err := s.Remove(1)
	require.NoError(t, err)
	assert.True(t, removed)
	removed, err = s.Remove("2")
	require.NoError(t, err)
	assert.False(t, removed)

	assert.ElementsMatch(t, []int{2, 3, 4}, s.ToSlice())
}

func TestHashSet_IteratorRemove(t *testing.T) {
	s := collections.NewHashSet("a", "b", "c")
	it := s.Iterator()
	assert.ErrorIs(t, it.Remove(), collections.ErrIllegalState)

	for it.HasNext() {
		e, _ := it.Next()
		if e == "b" {
			require.NoError(t, it.Remove())
		}
	}
	assert.ElementsMatch(t, []string{"a", "c"}, s.ToSlice())
}

func TestHashSet_Equal(t *testing.T) {
	s := collections.NewHashSet(1, 2, 3)
	assert.True(t, s.Equal(collections.NewHashSet(3, 2, 1)))
	assert.True(t, s.Equal(collections.NewTreeSet(1, 2, 3)))
	assert.False(t, s.Equal(collections.NewHashSet(1, 2)))
	assert.False(t, s.Equal(collections.NewArrayList(1, 2, 3)), "a list is not a set")
}

func TestHashSet_Clear(t *testing.T) {
	s := collections.NewHashSet(1, 2)
	require.NoError(t, s.Clear())
	assert.True(t, s.IsEmpty())
	assert.Equal(t, "[]", s.String())
}
