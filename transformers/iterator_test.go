package transformers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-transformers/collections"
	"github.com/hasbyte1/go-transformers/transformers"
)

func TestOfIterator(t *testing.T) {
	s := collections.NewTreeSet(1, 2, 3)
	it := transformers.OfIterator(s.Iterator(), codes)

	var got []string
	for it.HasNext() {
		e, ok := it.Next()
		require.True(t, ok)
		got = append(got, e)
		if e == "b" {
			require.NoError(t, it.Remove())
		}
	}
	assert.Equal(t, []string{"a", "b", "c"}, got)
	assert.Equal(t, []int{1, 3}, s.ToSlice())

	_, ok := it.Next()
	assert.False(t, ok)
}

func TestOfIterator_Degenerate(t *testing.T) {
	assert.Nil(t, transformers.OfIterator[string, int](nil, codes))

	it := collections.NewTreeSet(1).Iterator()
	assert.True(t, it == transformers.OfIterator(it, transformers.Identity[int]()))

	// A list iterator keeps its extra capabilities.
	li := transformers.OfIterator(collections.NewArrayList(1).Iterator(), codes)
	_, ok := li.(collections.ListIterator[string])
	assert.True(t, ok)
}

func TestOfListIterator(t *testing.T) {
	l := collections.NewArrayList(1, 2, 3)
	it := transformers.OfListIterator(l.ListIterator(), codes)

	assert.False(t, it.HasPrevious())
	e, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, "a", e)

	require.NoError(t, it.Set("d"))
	require.NoError(t, it.Add("e"))
	assert.Equal(t, []int{4, 5, 2, 3}, l.ToSlice())
	assert.Equal(t, 2, it.NextIndex())
	assert.Equal(t, 1, it.PreviousIndex())

	e, ok = it.Next()
	require.True(t, ok)
	assert.Equal(t, "b", e)

	e, ok = it.Previous()
	require.True(t, ok)
	assert.Equal(t, "b", e)
	require.NoError(t, it.Remove())
	assert.Equal(t, []int{4, 5, 3}, l.ToSlice())

	assert.ErrorIs(t, it.Set("z"), collections.ErrIllegalState)
}

func TestOfEnumeration(t *testing.T) {
	e := transformers.OfEnumeration[string, int](collections.NewSliceEnumeration(1, 2, 3), codes)

	first, ok := e.NextElement()
	require.True(t, ok)
	assert.Equal(t, "a", first)

	it := e.(interface {
		Iterator() collections.Iterator[string]
	}).Iterator()
	assert.ErrorIs(t, it.Remove(), collections.ErrUnsupported)

	var rest []string
	for it.HasNext() {
		s, _ := it.Next()
		rest = append(rest, s)
	}
	assert.Equal(t, []string{"b", "c"}, rest)
	assert.False(t, e.HasMoreElements())

	_, ok = e.NextElement()
	assert.False(t, ok)

	assert.Nil(t, transformers.OfEnumeration[string, int](nil, codes))
}
