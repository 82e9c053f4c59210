package collections_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-transformers/collections"
)

func TestValuesEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"equal ints", 1, 1, true},
		{"different ints", 1, 2, false},
		{"different types", 1, int64(1), false},
		{"both nil", nil, nil, true},
		{"one nil", nil, 0, false},
		{"slices are never equal", []int{1}, []int{1}, false},
		{"maps are never equal", map[int]int{}, map[int]int{}, false},
		{"Equal method decides", collections.NewArrayList(1), collections.NewLinkedList(1), true},
		{"entries", collections.NewSimpleEntry("k", 1), collections.NewReadOnlyEntry("k", 1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, collections.ValuesEqual(tt.a, tt.b))
		})
	}
}

func TestSimpleEntry(t *testing.T) {
	e := collections.NewSimpleEntry("k", 1)
	old, err := e.SetValue(2)
	require.NoError(t, err)
	assert.Equal(t, 1, old)
	assert.Equal(t, 2, e.Value())
	assert.Equal(t, "(k, 2)", e.String())

	ro := collections.NewReadOnlyEntry("k", 2)
	_, err = ro.SetValue(3)
	assert.ErrorIs(t, err, collections.ErrUnsupported)
	assert.True(t, ro.Equal(e))
	assert.False(t, ro.Equal(collections.NewSimpleEntry("k", "2")))
}

func TestComparators(t *testing.T) {
	natural := collections.NaturalOrder[int]()
	assert.Negative(t, natural.Compare(1, 2))
	assert.Zero(t, natural.Compare(2, 2))

	rev := collections.Reverse(natural)
	assert.Positive(t, rev.Compare(1, 2))
	assert.Equal(t, natural, collections.Reverse(rev), "reversing twice gives the original")

	byLen := collections.ComparatorFunc[string](func(a, b string) int { return len(a) - len(b) })
	assert.Negative(t, byLen.Compare("a", "bb"))
}

func TestEnumerations(t *testing.T) {
	var got []string
	for e := collections.NewSliceEnumeration("a", "b"); e.HasMoreElements(); {
		s, _ := e.NextElement()
		got = append(got, s)
	}
	assert.Equal(t, []string{"a", "b"}, got)

	en := collections.Enumerate(collections.NewArrayList(1, 2).Iterator())
	n, ok := en.NextElement()
	require.True(t, ok)
	assert.Equal(t, 1, n)
	assert.True(t, en.HasMoreElements())

	assert.Nil(t, collections.Enumerate[int](nil))
}

func TestToSeq(t *testing.T) {
	var got []int
	for n := range collections.ToSeq[int](collections.NewTreeSet(3, 1, 2)) {
		got = append(got, n)
	}
	assert.Equal(t, []int{1, 2, 3}, got)

	for range collections.ToSeq[int](nil) {
		t.Fatal("a nil iterable yields nothing")
	}
}
