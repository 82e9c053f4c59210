package collections

import (
	"cmp"
	"sync"
)

// TreeSet is a [NavigableSet] ordered by a [Comparator]. It is the key set
// of a private [TreeMap], so its sub-sets and descending set are live views
// and its iterators tolerate concurrent modification in the same way.
//
//	s := collections.NewTreeSet(5, 1, 3)
//	s.First()    // 1, true
//	s.Ceiling(2) // 3, true
type TreeSet[T any] struct {
	*treeKeySet[T, struct{}]
}

// NewTreeSet returns a TreeSet in the natural order of T holding items.
func NewTreeSet[T cmp.Ordered](items ...T) *TreeSet[T] {
	return NewTreeSetFunc[T](NaturalOrder[T](), items...)
}

// NewTreeSetFunc returns a TreeSet ordered by c holding items.
func NewTreeSetFunc[T any](c Comparator[T], items ...T) *TreeSet[T] {
	m := NewTreeMapFunc[T, struct{}](c)
	for _, e := range items {
		m.root.m = m.root.m.Set(e, struct{}{})
	}
	return &TreeSet[T]{treeKeySet: newTreeKeySet(m, true)}
}

// treeKeySet is the navigable key set of a TreeMap. Adding is only allowed
// when the set owns the map, as a TreeSet does.
type treeKeySet[K, V any] struct {
	collection[K]
	t       *TreeMap[K, V]
	addable bool

	descending func() NavigableSet[K]
}

func newTreeKeySet[K, V any](t *TreeMap[K, V], addable bool) *treeKeySet[K, V] {
	s := &treeKeySet[K, V]{t: t, addable: addable}
	s.self = s
	s.descending = sync.OnceValue(func() NavigableSet[K] {
		if addable {
			return newTreeKeySet(t.descending(), true)
		}
		return t.descending().navKeys()
	})
	return s
}

// Len returns the number of elements.
func (s *treeKeySet[K, V]) Len() int { return s.t.Len() }

// Iterator walks the elements in order.
func (s *treeKeySet[K, V]) Iterator() Iterator[K] {
	return &projectIter[K, V, K]{it: s.t.entries(), get: Entry[K, V].Key}
}

// Contains reports whether o is an element.
func (s *treeKeySet[K, V]) Contains(o any) bool { return s.t.ContainsKey(o) }

// Add adds e, reporting whether it was absent. Key sets of a map reject it.
func (s *treeKeySet[K, V]) Add(e K) (bool, error) {
	if !s.addable {
		return false, ErrUnsupported
	}
	if _, ok := s.t.lookup(e); ok {
		return false, nil
	}
	var zero V
	if _, _, err := s.t.store(e, zero); err != nil {
		return false, err
	}
	return true, nil
}

// Remove removes o, reporting whether it was present.
func (s *treeKeySet[K, V]) Remove(o any) (bool, error) {
	_, ok, err := s.t.Remove(o)
	return ok, err
}

// Clear removes every element.
func (s *treeKeySet[K, V]) Clear() error { return s.t.Clear() }

// Distinct marks the set as a set.
func (*treeKeySet[K, V]) Distinct() {}

// Equal reports whether o is a set holding the same elements.
func (s *treeKeySet[K, V]) Equal(o any) bool { return EqualSets[K](s, o) }

// Comparator returns the order of the elements.
func (s *treeKeySet[K, V]) Comparator() Comparator[K] { return s.t.Comparator() }

// First returns the lowest element.
func (s *treeKeySet[K, V]) First() (K, bool) { return s.t.FirstKey() }

// Last returns the highest element.
func (s *treeKeySet[K, V]) Last() (K, bool) { return s.t.LastKey() }

// Lower returns the greatest element below e.
func (s *treeKeySet[K, V]) Lower(e K) (K, bool) { return s.t.LowerKey(e) }

// Floor returns the greatest element at or below e.
func (s *treeKeySet[K, V]) Floor(e K) (K, bool) { return s.t.FloorKey(e) }

// Ceiling returns the least element at or above e.
func (s *treeKeySet[K, V]) Ceiling(e K) (K, bool) { return s.t.CeilingKey(e) }

// Higher returns the least element above e.
func (s *treeKeySet[K, V]) Higher(e K) (K, bool) { return s.t.HigherKey(e) }

// PollFirst removes and returns the first element, or fails with [ErrNoSuchElement].
func (s *treeKeySet[K, V]) PollFirst() (K, error) { return pollKey[K, V](s.t.PollFirstEntry()) }

// PollLast removes and returns the last element, or fails with [ErrNoSuchElement].
func (s *treeKeySet[K, V]) PollLast() (K, error) { return pollKey[K, V](s.t.PollLastEntry()) }

func pollKey[K, V any](e Entry[K, V], err error) (K, error) {
	if err != nil {
		var zero K
		return zero, err
	}
	return e.Key(), nil
}

// DescendingSet returns a live view in reverse order.
func (s *treeKeySet[K, V]) DescendingSet() NavigableSet[K] { return s.descending() }

// DescendingIterator iterates in reverse order.
func (s *treeKeySet[K, V]) DescendingIterator() Iterator[K] { return s.descending().Iterator() }

// SubSet returns a live view of the elements in [from, to).
func (s *treeKeySet[K, V]) SubSet(from, to K) (SortedSet[K], error) {
	return s.NavigableSubSet(from, true, to, false)
}

// HeadSet returns a live view of the elements below to.
func (s *treeKeySet[K, V]) HeadSet(to K) (SortedSet[K], error) {
	return s.NavigableHeadSet(to, false)
}

// TailSet returns a live view of the elements at or above from.
func (s *treeKeySet[K, V]) TailSet(from K) (SortedSet[K], error) {
	return s.NavigableTailSet(from, true)
}

// NavigableSubSet returns a live view of the elements between from and to.
func (s *treeKeySet[K, V]) NavigableSubSet(from K, fromInclusive bool, to K, toInclusive bool) (NavigableSet[K], error) {
	return s.over(s.t.subMap(from, fromInclusive, to, toInclusive))
}

// NavigableHeadSet returns a live view of the elements before to.
func (s *treeKeySet[K, V]) NavigableHeadSet(to K, inclusive bool) (NavigableSet[K], error) {
	return s.over(s.t.headMap(to, inclusive))
}

// NavigableTailSet returns a live view of the elements after from.
func (s *treeKeySet[K, V]) NavigableTailSet(from K, inclusive bool) (NavigableSet[K], error) {
	return s.over(s.t.tailMap(from, inclusive))
}

// over returns the key set of a sub-map, keeping s's addability.
func (s *treeKeySet[K, V]) over(t *TreeMap[K, V], err error) (NavigableSet[K], error) {
	if err != nil {
		return nil, err
	}
	if s.addable {
		return newTreeKeySet(t, true), nil
	}
	return t.navKeys(), nil
}
