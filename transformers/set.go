package transformers

import (
	"sync"

	"github.com/hasbyte1/go-transformers/collections"
)

type setView[E, W any] struct {
	*collectionView[E, W]
	s collections.Set[W]
}

// OfSet returns a view of s over E. The result is a SortedSet or a
// NavigableSet when s is, and a Deque when s is one.
func OfSet[E, W any](s collections.Set[W], t Transformer[E, W]) collections.Set[E] {
	if absent(s) {
		return nil
	}
	if id, ok := same[E, W, collections.Set[E]](t, s); ok {
		return id
	}
	if v, ok := specialize[E, W](s, t).(collections.Set[E]); ok {
		return v
	}
	c := newCollectionView[E, W](s, t)
	v := newSetView[E, W](c, s)
	c.self = v
	return v
}

func newSetView[E, W any](c *collectionView[E, W], s collections.Set[W]) *setView[E, W] {
	return &setView[E, W]{collectionView: c, s: s}
}

func (*setView[E, W]) Distinct() {}

func (v *setView[E, W]) Equal(o any) bool {
	if o == v.self {
		return true
	}
	if other, ok := o.(collections.Set[E]); ok {
		return v.s.Equal(OfSet(other, v.t.Invert()))
	}
	return v.s.Equal(o)
}

// ─────────────────────────────────────────────────────────────────────────────
// Sorted sets
// ─────────────────────────────────────────────────────────────────────────────

type sortedSetView[E, W any] struct {
	*setView[E, W]
	ss         collections.SortedSet[W]
	comparator func() collections.Comparator[E]
}

func newSortedSetView[E, W any](s *setView[E, W], ss collections.SortedSet[W]) *sortedSetView[E, W] {
	return &sortedSetView[E, W]{
		setView: s,
		ss:      ss,
		comparator: sync.OnceValue(func() collections.Comparator[E] {
			return OfComparator(ss.Comparator(), s.t)
		}),
	}
}

// OfSortedSet returns a view of s over E. The result is a NavigableSet when
// s is one.
func OfSortedSet[E, W any](s collections.SortedSet[W], t Transformer[E, W]) collections.SortedSet[E] {
	if absent(s) {
		return nil
	}
	if id, ok := same[E, W, collections.SortedSet[E]](t, s); ok {
		return id
	}
	if v, ok := specialize[E, W](s, t).(collections.SortedSet[E]); ok {
		return v
	}
	c := newCollectionView[E, W](s, t)
	v := newSortedSetView[E, W](newSetView[E, W](c, s), s)
	c.self = v
	return v
}

// Comparator orders E by converting both operands; it is built once.
func (v *sortedSetView[E, W]) Comparator() collections.Comparator[E] { return v.comparator() }

func (v *sortedSetView[E, W]) First() (E, bool) {
	w, ok := v.ss.First()
	return from(v.t, w, ok)
}

func (v *sortedSetView[E, W]) Last() (E, bool) {
	w, ok := v.ss.Last()
	return from(v.t, w, ok)
}

func (v *sortedSetView[E, W]) SubSet(lo, hi E) (collections.SortedSet[E], error) {
	sub, err := v.ss.SubSet(v.t.ToWrapped(lo), v.t.ToWrapped(hi))
	if err != nil {
		return nil, err
	}
	return OfSortedSet(sub, v.t), nil
}

func (v *sortedSetView[E, W]) HeadSet(hi E) (collections.SortedSet[E], error) {
	sub, err := v.ss.HeadSet(v.t.ToWrapped(hi))
	if err != nil {
		return nil, err
	}
	return OfSortedSet(sub, v.t), nil
}

func (v *sortedSetView[E, W]) TailSet(lo E) (collections.SortedSet[E], error) {
	sub, err := v.ss.TailSet(v.t.ToWrapped(lo))
	if err != nil {
		return nil, err
	}
	return OfSortedSet(sub, v.t), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Navigable sets
// ─────────────────────────────────────────────────────────────────────────────

type navSetView[E, W any] struct {
	*sortedSetView[E, W]
	ns         collections.NavigableSet[W]
	descending func() collections.NavigableSet[E]
}

func newNavSetView[E, W any](s *sortedSetView[E, W], ns collections.NavigableSet[W]) *navSetView[E, W] {
	return &navSetView[E, W]{
		sortedSetView: s,
		ns:            ns,
		descending: sync.OnceValue(func() collections.NavigableSet[E] {
			return OfNavigableSet(ns.DescendingSet(), s.t)
		}),
	}
}

// OfNavigableSet returns a view of s over E. The result is a Deque when s
// is one.
func OfNavigableSet[E, W any](s collections.NavigableSet[W], t Transformer[E, W]) collections.NavigableSet[E] {
	if absent(s) {
		return nil
	}
	if id, ok := same[E, W, collections.NavigableSet[E]](t, s); ok {
		return id
	}
	if v, ok := specialize[E, W](s, t).(collections.NavigableSet[E]); ok {
		return v
	}
	c := newCollectionView[E, W](s, t)
	v := newNavSetView(newSortedSetView[E, W](newSetView[E, W](c, s), s), s)
	c.self = v
	return v
}

func (v *navSetView[E, W]) Lower(e E) (E, bool) {
	w, ok := v.ns.Lower(v.t.ToWrapped(e))
	return from(v.t, w, ok)
}

func (v *navSetView[E, W]) Floor(e E) (E, bool) {
	w, ok := v.ns.Floor(v.t.ToWrapped(e))
	return from(v.t, w, ok)
}

func (v *navSetView[E, W]) Ceiling(e E) (E, bool) {
	w, ok := v.ns.Ceiling(v.t.ToWrapped(e))
	return from(v.t, w, ok)
}

func (v *navSetView[E, W]) Higher(e E) (E, bool) {
	w, ok := v.ns.Higher(v.t.ToWrapped(e))
	return from(v.t, w, ok)
}

func (v *navSetView[E, W]) PollFirst() (E, error) {
	w, err := v.ns.PollFirst()
	return convert(v.t, w, err)
}

func (v *navSetView[E, W]) PollLast() (E, error) {
	w, err := v.ns.PollLast()
	return convert(v.t, w, err)
}

// DescendingSet is built once and cached.
func (v *navSetView[E, W]) DescendingSet() collections.NavigableSet[E] { return v.descending() }

func (v *navSetView[E, W]) DescendingIterator() collections.Iterator[E] {
	return OfIterator(v.ns.DescendingIterator(), v.t)
}

func (v *navSetView[E, W]) NavigableSubSet(lo E, loInclusive bool, hi E, hiInclusive bool) (collections.NavigableSet[E], error) {
	sub, err := v.ns.NavigableSubSet(v.t.ToWrapped(lo), loInclusive, v.t.ToWrapped(hi), hiInclusive)
	if err != nil {
		return nil, err
	}
	return OfNavigableSet(sub, v.t), nil
}

func (v *navSetView[E, W]) NavigableHeadSet(hi E, inclusive bool) (collections.NavigableSet[E], error) {
	sub, err := v.ns.NavigableHeadSet(v.t.ToWrapped(hi), inclusive)
	if err != nil {
		return nil, err
	}
	return OfNavigableSet(sub, v.t), nil
}

func (v *navSetView[E, W]) NavigableTailSet(lo E, inclusive bool) (collections.NavigableSet[E], error) {
	sub, err := v.ns.NavigableTailSet(v.t.ToWrapped(lo), inclusive)
	if err != nil {
		return nil, err
	}
	return OfNavigableSet(sub, v.t), nil
}
