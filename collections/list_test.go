package collections_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-transformers/collections"
)

// ──────────────────────────────────────────────────────────────────────────────
// ArrayList
// ──────────────────────────────────────────────────────────────────────────────

func TestArrayList_CopiesItems(t *testing.T) {
	items := []string{"a", "b"}
	l := collections.NewArrayList(items...)
	items[0] = "z"

	got, err := l.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "a", got)
}

func TestArrayList_PositionalOperations(t *testing.T) {
	l := collections.NewArrayList("a", "b", "c")

	require.NoError(t, l.Insert(1, "x"))
	assert.Equal(t, []string{"a", "x", "b", "c"}, l.ToSlice())

	old, err := l.Set(0, "A")
	require.NoError(t, err)
	assert.Equal(t, "a", old)

	removed, err := l.RemoveAt(2)
	require.NoError(t, err)
	assert.Equal(t, "b", removed)
	assert.Equal(t, []string{"A", "x", "c"}, l.ToSlice())

	changed, err := l.InsertAll(3, collections.NewArrayList("d", "e"))
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, []string{"A", "x", "c", "d", "e"}, l.ToSlice())
	assert.Equal(t, "[A, x, c, d, e]", l.String())
}

func TestArrayList_IndexErrors(t *testing.T) {
	l := collections.NewArrayList(1, 2, 3)
	tests := []struct {
		name string
		call func() error
	}{
		{"Get negative", func() error { _, err := l.Get(-1); return err }},
		{"Get past end", func() error { _, err := l.Get(3); return err }},
		{"Set past end", func() error { _, err := l.Set(3, 0); return err }},
		{"Insert past end", func() error { return l.Insert(4, 0) }},
		{"RemoveAt past end", func() error { _, err := l.RemoveAt(3); return err }},
		{"ListIteratorAt past end", func() error { _, err := l.ListIteratorAt(4); return err }},
		{"SubList past end", func() error { _, err := l.SubList(0, 4); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.call(), collections.ErrIndexOutOfRange)
		})
	}

	_, err := l.SubList(2, 1)
	assert.ErrorIs(t, err, collections.ErrInvalidRange)
	assert.Equal(t, []int{1, 2, 3}, l.ToSlice())
}

func TestArrayList_Search(t *testing.T) {
	l := collections.NewArrayList(1, 2, 1, 3)
	assert.Equal(t, 0, l.IndexOf(1))
	assert.Equal(t, 2, l.LastIndexOf(1))
	assert.Equal(t, -1, l.IndexOf(4))
	assert.Equal(t, -1, l.IndexOf("1"), "a string is never an int")
	assert.True(t, l.Contains(3))
	assert.False(t, l.Contains(int64(3)))
}

func TestArrayList_BulkOperations(t *testing.T) {
	l := collections.NewArrayList(1, 2, 3, 4, 5, 6)

	changed, err := l.RemoveIf(func(n int) bool { return n%2 == 0 })
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, []int{1, 3, 5}, l.ToSlice())

	changed, err = l.RemoveAll(collections.NewHashSet(1, 9))
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, []int{3, 5}, l.ToSlice())

	changed, err = l.RetainAll(collections.NewHashSet(5))
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, []int{5}, l.ToSlice())

	changed, err = l.AddAll(l)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, []int{5, 5}, l.ToSlice())

	assert.True(t, l.ContainsAll(collections.NewArrayList(5)))
	assert.False(t, l.ContainsAll(collections.NewArrayList(5, 6)))

	require.NoError(t, l.ReplaceAll(func(n int) int { return n * 10 }))
	assert.Equal(t, []int{50, 50}, l.ToSlice())

	require.NoError(t, l.Clear())
	assert.True(t, l.IsEmpty())
}

func TestArrayList_Sort(t *testing.T) {
	l := collections.NewArrayList(3, 1, 2)
	require.NoError(t, l.Sort(collections.NaturalOrder[int]()))
	assert.Equal(t, []int{1, 2, 3}, l.ToSlice())

	require.NoError(t, l.Sort(collections.Reverse(collections.NaturalOrder[int]())))
	assert.Equal(t, []int{3, 2, 1}, l.ToSlice())

	assert.ErrorIs(t, l.Sort(nil), collections.ErrUnsupported)
}

func TestArrayList_SubListIsLive(t *testing.T) {
	l := collections.NewArrayList("a", "b", "c", "d")
	sub, err := l.SubList(1, 3)
	require.NoError(t, err)

	_, isRA := sub.(collections.RandomAccess)
	assert.True(t, isRA)
	assert.Equal(t, []string{"b", "c"}, sub.ToSlice())

	_, err = sub.Set(0, "B")
	require.NoError(t, err)
	_, err = sub.Add("x")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "B", "c", "x", "d"}, l.ToSlice())
	assert.Equal(t, 3, sub.Len())

	require.NoError(t, sub.Clear())
	assert.Equal(t, []string{"a", "d"}, l.ToSlice())
	assert.Equal(t, 0, sub.Len())
}

func TestArrayList_ListIterator(t *testing.T) {
	l := collections.NewArrayList(1, 2, 3)
	it := l.ListIterator()

	assert.ErrorIs(t, it.Remove(), collections.ErrIllegalState)
	assert.ErrorIs(t, it.Set(0), collections.ErrIllegalState)

	n, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, 1, n)
	require.NoError(t, it.Set(10))

	require.NoError(t, it.Add(15))
	assert.Equal(t, 2, it.NextIndex())
	assert.Equal(t, 1, it.PreviousIndex())

	n, ok = it.Next()
	require.True(t, ok)
	assert.Equal(t, 2, n)
	require.NoError(t, it.Remove())
	assert.ErrorIs(t, it.Remove(), collections.ErrIllegalState)

	n, ok = it.Previous()
	require.True(t, ok)
	assert.Equal(t, 15, n)
	assert.Equal(t, []int{10, 15, 3}, l.ToSlice())

	it, err := l.ListIteratorAt(3)
	require.NoError(t, err)
	assert.False(t, it.HasNext())
	_, ok = it.Next()
	assert.False(t, ok)
}

func TestArrayList_All(t *testing.T) {
	l := collections.NewArrayList(1, 2, 3, 4)
	var got []int
	for n := range l.All() {
		if n == 3 {
			break
		}
		got = append(got, n)
	}
	assert.Equal(t, []int{1, 2}, got)
}

func TestArrayList_Equal(t *testing.T) {
	a := collections.NewArrayList(1, 2, 3)
	assert.True(t, a.Equal(collections.NewArrayList(1, 2, 3)))
	assert.True(t, a.Equal(collections.NewLinkedList(1, 2, 3)))
	assert.True(t, a.Equal(collections.NewImmutableList(1, 2, 3)))
	assert.False(t, a.Equal(collections.NewArrayList(1, 3, 2)))
	assert.False(t, a.Equal(collections.NewArrayList(1, 2)))
	assert.False(t, a.Equal(collections.NewHashSet(1, 2, 3)))
	assert.False(t, a.Equal([]int{1, 2, 3}))
}

// ──────────────────────────────────────────────────────────────────────────────
// ImmutableList
// ──────────────────────────────────────────────────────────────────────────────

func TestImmutableList_RejectsMutation(t *testing.T) {
	l := collections.NewImmutableList("a", "b", "c")
	var _ collections.RandomAccess = l

	tests := []struct {
		name string
		call func() error
	}{
		{"Add", func() error { _, err := l.Add("d"); return err }},
		{"Remove", func() error { _, err := l.Remove("a"); return err }},
		{"Set", func() error { _, err := l.Set(0, "z"); return err }},
		{"Insert", func() error { return l.Insert(0, "z") }},
		{"RemoveAt", func() error { _, err := l.RemoveAt(0); return err }},
		{"Clear", func() error { return l.Clear() }},
		{"Sort", func() error { return l.Sort(collections.NaturalOrder[string]()) }},
		{"ReplaceAll", func() error { return l.ReplaceAll(func(s string) string { return s }) }},
		{"iterator Remove", func() error {
			it := l.Iterator()
			it.Next()
			return it.Remove()
		}},
		{"sub-list Add", func() error {
			sub, err := l.SubList(0, 1)
			if err != nil {
				return err
			}
			_, err = sub.Add("z")
			return err
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.call(), collections.ErrUnsupported)
		})
	}
	assert.Equal(t, []string{"a", "b", "c"}, l.ToSlice())
}

func TestImmutableList_Reads(t *testing.T) {
	l := collections.NewImmutableList(3, 1, 2)
	got, err := l.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 1, got)
	assert.Equal(t, 2, l.IndexOf(2))

	sub, err := l.SubList(1, 3)
	require.NoError(t, err)
	_, isImmutable := sub.(*collections.ImmutableList[int])
	assert.True(t, isImmutable)
	assert.Equal(t, []int{1, 2}, sub.ToSlice())
}
