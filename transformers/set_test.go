package transformers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-transformers/collections"
	"github.com/hasbyte1/go-transformers/transformers"
)

func TestOfNavigableSet_Labels(t *testing.T) {
	codeSet := collections.NewTreeSet(1, 2, 3)
	labels := transformers.OfNavigableSet[string, int](codeSet, codes)

	first, ok := labels.First()
	require.True(t, ok)
	assert.Equal(t, "a", first)
	last, ok := labels.Last()
	require.True(t, ok)
	assert.Equal(t, "c", last)

	assert.True(t, labels.Contains("b"))
	assert.False(t, labels.Contains("z"))

	removed, err := labels.Remove("b")
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, []int{1, 3}, codeSet.ToSlice())
}

func TestOfNavigableSet_Navigation(t *testing.T) {
	v := transformers.OfNavigableSet[string, int](collections.NewTreeSet(2, 4, 6), codes)

	tests := []struct {
		name string
		op   func(string) (string, bool)
		in   string
		want string
		ok   bool
	}{
		{"lower", v.Lower, "d", "b", true},
		{"lower none", v.Lower, "b", "", false},
		{"floor", v.Floor, "d", "d", true},
		{"floor between", v.Floor, "e", "d", true},
		{"ceiling", v.Ceiling, "c", "d", true},
		{"ceiling none", v.Ceiling, "g", "", false},
		{"higher", v.Higher, "d", "f", true},
		{"higher none", v.Higher, "f", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.op(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOfNavigableSet_Poll(t *testing.T) {
	s := collections.NewTreeSet(1, 2, 3)
	v := transformers.OfNavigableSet[string, int](s, codes)

	e, err := v.PollFirst()
	require.NoError(t, err)
	assert.Equal(t, "a", e)
	e, err = v.PollLast()
	require.NoError(t, err)
	assert.Equal(t, "c", e)
	assert.Equal(t, []int{2}, s.ToSlice())

	require.NoError(t, v.Clear())
	_, err = v.PollFirst()
	assert.ErrorIs(t, err, collections.ErrNoSuchElement)
	_, ok := v.First()
	assert.False(t, ok)
}

func TestOfNavigableSet_Descending(t *testing.T) {
	s := collections.NewTreeSet(1, 2, 3)
	v := transformers.OfNavigableSet[string, int](s, codes)

	desc := v.DescendingSet()
	assert.Same(t, desc, v.DescendingSet(), "descending set is cached")
	assert.Equal(t, []string{"c", "b", "a"}, desc.ToSlice())

	first, _ := desc.First()
	assert.Equal(t, "c", first)
	higher, _ := desc.Higher("b")
	assert.Equal(t, "a", higher)

	var got []string
	for it := v.DescendingIterator(); it.HasNext(); {
		e, _ := it.Next()
		got = append(got, e)
	}
	assert.Equal(t, []string{"c", "b", "a"}, got)

	_, err := s.Add(4)
	require.NoError(t, err)
	assert.Equal(t, []string{"d", "c", "b", "a"}, desc.ToSlice(), "descending set is live")
}

func TestOfNavigableSet_SubSets(t *testing.T) {
	s := collections.NewTreeSet(1, 2, 3, 4, 5)
	v := transformers.OfNavigableSet[string, int](s, codes)

	sub, err := v.NavigableSubSet("a", true, "c", false)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, sub.ToSlice())

	head, err := v.NavigableHeadSet("b", true)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, head.ToSlice())

	tail, err := v.NavigableTailSet("d", false)
	require.NoError(t, err)
	assert.Equal(t, []string{"e"}, tail.ToSlice())

	sorted, err := v.SubSet("b", "d")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, sorted.ToSlice())

	h, err := v.HeadSet("c")
	require.NoError(t, err)
	assert.Equal(t, 2, h.Len())
	tl, err := v.TailSet("c")
	require.NoError(t, err)
	assert.Equal(t, 3, tl.Len())

	// Sub-sets are live in both directions.
	_, err = sub.Remove("a")
	require.NoError(t, err)
	assert.False(t, s.Contains(1))
	_, err = s.Add(1)
	require.NoError(t, err)
	assert.True(t, sub.Contains("a"))

	_, err = sub.Add("z")
	assert.ErrorIs(t, err, collections.ErrKeyOutOfRange)

	_, err = v.SubSet("c", "a")
	assert.ErrorIs(t, err, collections.ErrInvalidRange)
}

func TestOfSortedSet_Comparator(t *testing.T) {
	v := transformers.OfSortedSet[string, int](collections.NewTreeSet(1, 2), codes)

	c := v.Comparator()
	assert.Same(t, c, v.Comparator(), "comparator is built once")
	assert.Negative(t, c.Compare("a", "b"))
	assert.Positive(t, c.Compare("z", "b"))

	_, ok := v.(collections.NavigableSet[string])
	assert.True(t, ok, "a navigable set stays navigable")
}

func TestOfSet(t *testing.T) {
	s := collections.NewHashSet(1, 2)
	v := transformers.OfSet[string, int](s, codes)

	added, err := v.Add("a")
	require.NoError(t, err)
	assert.False(t, added)
	added, err = v.Add("c")
	require.NoError(t, err)
	assert.True(t, added)
	assert.ElementsMatch(t, []string{"a", "b", "c"}, v.ToSlice())

	_, sorted := v.(collections.SortedSet[string])
	assert.False(t, sorted)

	assert.True(t, v.Equal(v))
	assert.True(t, v.Equal(collections.NewHashSet("c", "b", "a")))
	assert.True(t, v.Equal(collections.NewTreeSet("a", "b", "c")))
	assert.False(t, v.Equal(collections.NewHashSet("a", "b")))
	assert.False(t, v.Equal(collections.NewArrayList("a", "b", "c")))

	assert.Nil(t, transformers.OfSet[string, int](nil, codes))
	var id collections.Set[int] = s
	assert.True(t, id == transformers.OfSet(id, transformers.Identity[int]()))
}

func TestOfNavigableSet_CustomOrder(t *testing.T) {
	s := collections.NewTreeSetFunc(collections.Reverse(collections.NaturalOrder[int]()), 1, 2, 3)
	v := transformers.OfNavigableSet[string, int](s, codes)

	assert.Equal(t, []string{"c", "b", "a"}, v.ToSlice())
	lower, ok := v.Lower("b")
	require.True(t, ok)
	assert.Equal(t, "c", lower)
	assert.Positive(t, v.Comparator().Compare("a", "b"))
}
