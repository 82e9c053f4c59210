package collections

import (
	"cmp"
	"fmt"
	"sync"

	"github.com/benbjohnson/immutable"
)

// TreeMap is a [NavigableMap] ordered by a [Comparator], backed by a
// persistent immutable.SortedMap.
//
// Sub-maps and descending maps are live views over the same tree: a change
// made through any of them is visible through all. Iterators walk the tree
// as it was when they were created, so the map may be modified during
// iteration; Iterator.Remove deletes from the live tree.
//
//	m := collections.NewTreeMap[int, string]()
//	m.Put(3, "c")
//	m.Put(1, "a")
//	m.FirstKey()            // 1, true
//	head, _ := m.HeadMap(3) // {1=a}
type TreeMap[K, V any] struct {
	abstractMap[K, V]
	root *treeRoot[K, V]

	// lo and hi bound the keys visible through this map, in comparator
	// order; desc reverses the order in which they are presented.
	lo, hi bound[K]
	desc   bool

	navKeys     func() NavigableSet[K]
	descending  func() *TreeMap[K, V]
	ascendingOf *TreeMap[K, V]
}

type treeRoot[K, V any] struct {
	m   *immutable.SortedMap[K, V]
	cmp Comparator[K]
}

type bound[K any] struct {
	key       K
	set       bool
	inclusive bool
}

// NewTreeMap returns an empty TreeMap in the natural order of K.
func NewTreeMap[K cmp.Ordered, V any]() *TreeMap[K, V] {
	return NewTreeMapFunc[K, V](NaturalOrder[K]())
}

// NewTreeMapFunc returns an empty TreeMap ordered by c.
func NewTreeMapFunc[K, V any](c Comparator[K]) *TreeMap[K, V] {
	root := &treeRoot[K, V]{m: immutable.NewSortedMap[K, V](c), cmp: c}
	return newTreeView(root, bound[K]{}, bound[K]{}, false)
}

func newTreeView[K, V any](root *treeRoot[K, V], lo, hi bound[K], desc bool) *TreeMap[K, V] {
	t := &TreeMap[K, V]{root: root, lo: lo, hi: hi, desc: desc}
	t.init(t)
	t.navKeys = sync.OnceValue(func() NavigableSet[K] { return newTreeKeySet(t, false) })
	t.descending = sync.OnceValue(func() *TreeMap[K, V] {
		if t.ascendingOf != nil {
			return t.ascendingOf
		}
		d := newTreeView(root, lo, hi, !desc)
		d.ascendingOf = t
		return d
	})
	return t
}

// ─────────────────────────────────────────────────────────────────────────────
// Bounds
// ─────────────────────────────────────────────────────────────────────────────

func (t *TreeMap[K, V]) compare(a, b K) int { return t.root.cmp.Compare(a, b) }

func (t *TreeMap[K, V]) tooLow(k K) bool {
	if !t.lo.set {
		return false
	}
	c := t.compare(k, t.lo.key)
	return c < 0 || c == 0 && !t.lo.inclusive
}

func (t *TreeMap[K, V]) tooHigh(k K) bool {
	if !t.hi.set {
		return false
	}
	c := t.compare(k, t.hi.key)
	return c > 0 || c == 0 && !t.hi.inclusive
}

func (t *TreeMap[K, V]) inRange(k K) bool { return !t.tooLow(k) && !t.tooHigh(k) }

// within reports whether k may bound a sub-map of t. An exclusive bound may
// sit on t's own exclusive bound.
func (t *TreeMap[K, V]) within(k K, inclusive bool) bool {
	if inclusive {
		return t.inRange(k)
	}
	return (!t.lo.set || t.compare(k, t.lo.key) >= 0) && (!t.hi.set || t.compare(k, t.hi.key) <= 0)
}

func (t *TreeMap[K, V]) unbounded() bool { return !t.lo.set && !t.hi.set }

// ─────────────────────────────────────────────────────────────────────────────
// Tree navigation, ignoring bounds
// ─────────────────────────────────────────────────────────────────────────────

type treeEntry[K, V any] struct {
	key   K
	value V
	ok    bool
}

func found[K, V any](k K, v V, ok bool) treeEntry[K, V] { return treeEntry[K, V]{k, v, ok} }

func (r *treeRoot[K, V]) first() treeEntry[K, V] {
	it := r.m.Iterator()
	it.First()
	return found[K, V](it.Next())
}

func (r *treeRoot[K, V]) last() treeEntry[K, V] {
	it := r.m.Iterator()
	it.Last()
	return found[K, V](it.Prev())
}

func (r *treeRoot[K, V]) ceiling(k K) treeEntry[K, V] {
	it := r.m.Iterator()
	it.Seek(k)
	return found[K, V](it.Next())
}

func (r *treeRoot[K, V]) higher(k K) treeEntry[K, V] {
	it := r.m.Iterator()
	it.Seek(k)
	e := found[K, V](it.Next())
	if e.ok && r.cmp.Compare(e.key, k) == 0 {
		e = found[K, V](it.Next())
	}
	return e
}

func (r *treeRoot[K, V]) floor(k K) treeEntry[K, V] {
	if e := r.ceiling(k); e.ok && r.cmp.Compare(e.key, k) == 0 {
		return e
	}
	return r.lower(k)
}

func (r *treeRoot[K, V]) lower(k K) treeEntry[K, V] {
	it := r.m.Iterator()
	it.Seek(k)
	if it.Done() {
		it.Last()
	} else {
		it.Prev()
	}
	return found[K, V](it.Prev())
}

// ─────────────────────────────────────────────────────────────────────────────
// Navigation within bounds, in comparator order
// ─────────────────────────────────────────────────────────────────────────────

func (t *TreeMap[K, V]) checkHigh(e treeEntry[K, V]) treeEntry[K, V] {
	if e.ok && t.tooHigh(e.key) {
		return treeEntry[K, V]{}
	}
	return e
}

func (t *TreeMap[K, V]) checkLow(e treeEntry[K, V]) treeEntry[K, V] {
	if e.ok && t.tooLow(e.key) {
		return treeEntry[K, V]{}
	}
	return e
}

func (t *TreeMap[K, V]) absLowest() treeEntry[K, V] {
	switch {
	case !t.lo.set:
		return t.checkHigh(t.root.first())
	case t.lo.inclusive:
		return t.checkHigh(t.root.ceiling(t.lo.key))
	default:
		return t.checkHigh(t.root.higher(t.lo.key))
	}
}

func (t *TreeMap[K, V]) absHighest() treeEntry[K, V] {
	switch {
	case !t.hi.set:
		return t.checkLow(t.root.last())
	case t.hi.inclusive:
		return t.checkLow(t.root.floor(t.hi.key))
	default:
		return t.checkLow(t.root.lower(t.hi.key))
	}
}

func (t *TreeMap[K, V]) absCeiling(k K) treeEntry[K, V] {
	if t.tooLow(k) {
		return t.absLowest()
	}
	return t.checkHigh(t.root.ceiling(k))
}

func (t *TreeMap[K, V]) absHigher(k K) treeEntry[K, V] {
	if t.tooLow(k) {
		return t.absLowest()
	}
	return t.checkHigh(t.root.higher(k))
}

func (t *TreeMap[K, V]) absFloor(k K) treeEntry[K, V] {
	if t.tooHigh(k) {
		return t.absHighest()
	}
	return t.checkLow(t.root.floor(k))
}

func (t *TreeMap[K, V]) absLower(k K) treeEntry[K, V] {
	if t.tooHigh(k) {
		return t.absHighest()
	}
	return t.checkLow(t.root.lower(k))
}

// ─────────────────────────────────────────────────────────────────────────────
// Navigation in presentation order
// ─────────────────────────────────────────────────────────────────────────────

func (t *TreeMap[K, V]) first() treeEntry[K, V] {
	if t.desc {
		return t.absHighest()
	}
	return t.absLowest()
}

func (t *TreeMap[K, V]) last() treeEntry[K, V] {
	if t.desc {
		return t.absLowest()
	}
	return t.absHighest()
}

func (t *TreeMap[K, V]) ceiling(k K) treeEntry[K, V] {
	if t.desc {
		return t.absFloor(k)
	}
	return t.absCeiling(k)
}

func (t *TreeMap[K, V]) higher(k K) treeEntry[K, V] {
	if t.desc {
		return t.absLower(k)
	}
	return t.absHigher(k)
}

func (t *TreeMap[K, V]) floor(k K) treeEntry[K, V] {
	if t.desc {
		return t.absCeiling(k)
	}
	return t.absFloor(k)
}

func (t *TreeMap[K, V]) lower(k K) treeEntry[K, V] {
	if t.desc {
		return t.absHigher(k)
	}
	return t.absLower(k)
}

func (e treeEntry[K, V]) entry() (Entry[K, V], bool) {
	if !e.ok {
		return nil, false
	}
	return NewReadOnlyEntry(e.key, e.value), true
}

func (e treeEntry[K, V]) keyOnly() (K, bool) { return e.key, e.ok }

// ─────────────────────────────────────────────────────────────────────────────
// mapCore
// ─────────────────────────────────────────────────────────────────────────────

// Len counts the keys in range; it is constant-time only for a map without
// bounds.
func (t *TreeMap[K, V]) Len() int {
	if t.unbounded() {
		return t.root.m.Len()
	}
	n := 0
	for it := t.entries(); it.HasNext(); it.Next() {
		n++
	}
	return n
}

// Clear removes every mapping in range.
func (t *TreeMap[K, V]) Clear() error {
	if t.unbounded() {
		t.root.m = immutable.NewSortedMap[K, V](t.root.cmp)
		return nil
	}
	for it := t.entries(); it.HasNext(); {
		it.Next()
		if err := it.Remove(); err != nil {
			return err
		}
	}
	return nil
}

func (t *TreeMap[K, V]) lookup(k K) (V, bool) {
	if !t.inRange(k) {
		var zero V
		return zero, false
	}
	return t.root.m.Get(k)
}

func (t *TreeMap[K, V]) store(k K, v V) (V, bool, error) {
	if !t.inRange(k) {
		var zero V
		return zero, false, fmt.Errorf("%w: %v", ErrKeyOutOfRange, k)
	}
	old, ok := t.root.m.Get(k)
	t.root.m = t.root.m.Set(k, v)
	return old, ok, nil
}

func (t *TreeMap[K, V]) delete(k K) (V, bool, error) {
	if !t.inRange(k) {
		var zero V
		return zero, false, nil
	}
	old, ok := t.root.m.Get(k)
	if ok {
		t.root.m = t.root.m.Delete(k)
	}
	return old, ok, nil
}

func (t *TreeMap[K, V]) keyOf(o any) (K, bool) {
	k, ok := o.(K)
	return k, ok
}

func (t *TreeMap[K, V]) entries() Iterator[Entry[K, V]] {
	it := &treeIter[K, V]{t: t, it: t.root.m.Iterator()}
	it.start()
	return it
}

// treeIter walks a snapshot of the tree in presentation order. next holds
// the entry Next will return.
type treeIter[K, V any] struct {
	t       *TreeMap[K, V]
	it      *immutable.SortedMapIterator[K, V]
	next    treeEntry[K, V]
	last    K
	hasLast bool
}

func (i *treeIter[K, V]) start() {
	t := i.t
	if !t.desc {
		if t.lo.set {
			i.it.Seek(t.lo.key)
		} else {
			i.it.First()
		}
		i.advance()
		if i.next.ok && t.lo.set && !t.lo.inclusive && t.compare(i.next.key, t.lo.key) == 0 {
			i.advance()
		}
		return
	}
	if t.hi.set {
		i.it.Seek(t.hi.key)
		if i.it.Done() {
			i.it.Last()
		}
	} else {
		i.it.Last()
	}
	i.advance()
	if i.next.ok && t.tooHigh(i.next.key) {
		i.advance()
	}
}

func (i *treeIter[K, V]) advance() {
	if i.t.desc {
		i.next = i.t.checkLow(found[K, V](i.it.Prev()))
	} else {
		i.next = i.t.checkHigh(found[K, V](i.it.Next()))
	}
}

func (i *treeIter[K, V]) HasNext() bool { return i.next.ok }

func (i *treeIter[K, V]) Next() (Entry[K, V], bool) {
	if !i.next.ok {
		return nil, false
	}
	e := i.next
	i.last, i.hasLast = e.key, true
	i.advance()
	return &mapEntry[K, V]{m: i.t, key: e.key, value: e.value}, true
}

func (i *treeIter[K, V]) Remove() error {
	if !i.hasLast {
		return ErrIllegalState
	}
	i.hasLast = false
	_, _, err := i.t.delete(i.last)
	return err
}

// ─────────────────────────────────────────────────────────────────────────────
// SortedMap and NavigableMap
// ─────────────────────────────────────────────────────────────────────────────

// Comparator returns the order in which keys are presented.
func (t *TreeMap[K, V]) Comparator() Comparator[K] {
	if t.desc {
		return Reverse(t.root.cmp)
	}
	return t.root.cmp
}

// FirstKey returns the lowest key.
func (t *TreeMap[K, V]) FirstKey() (K, bool) { return t.first().keyOnly() }

// LastKey returns the highest key.
func (t *TreeMap[K, V]) LastKey() (K, bool) { return t.last().keyOnly() }

// FirstEntry returns the mapping with the lowest key.
func (t *TreeMap[K, V]) FirstEntry() (Entry[K, V], bool) { return t.first().entry() }

// LastEntry returns the mapping with the highest key.
func (t *TreeMap[K, V]) LastEntry() (Entry[K, V], bool) { return t.last().entry() }

// LowerEntry returns the mapping with the greatest key below k.
func (t *TreeMap[K, V]) LowerEntry(k K) (Entry[K, V], bool) { return t.lower(k).entry() }

// FloorEntry returns the mapping with the greatest key at or below k.
func (t *TreeMap[K, V]) FloorEntry(k K) (Entry[K, V], bool) { return t.floor(k).entry() }

// CeilingEntry returns the mapping with the least key at or above k.
func (t *TreeMap[K, V]) CeilingEntry(k K) (Entry[K, V], bool) { return t.ceiling(k).entry() }

// HigherEntry returns the mapping with the least key above k.
func (t *TreeMap[K, V]) HigherEntry(k K) (Entry[K, V], bool) { return t.higher(k).entry() }

// LowerKey returns the greatest key below k.
func (t *TreeMap[K, V]) LowerKey(k K) (K, bool) { return t.lower(k).keyOnly() }

// FloorKey returns the greatest key at or below k.
func (t *TreeMap[K, V]) FloorKey(k K) (K, bool) { return t.floor(k).keyOnly() }

// CeilingKey returns the least key at or above k.
func (t *TreeMap[K, V]) CeilingKey(k K) (K, bool) { return t.ceiling(k).keyOnly() }

// HigherKey returns the least key above k.
func (t *TreeMap[K, V]) HigherKey(k K) (K, bool) { return t.higher(k).keyOnly() }

// PollFirstEntry removes and returns the mapping with the lowest key.
func (t *TreeMap[K, V]) PollFirstEntry() (Entry[K, V], error) { return t.poll(t.first()) }

// PollLastEntry removes and returns the mapping with the highest key.
func (t *TreeMap[K, V]) PollLastEntry() (Entry[K, V], error) { return t.poll(t.last()) }

func (t *TreeMap[K, V]) poll(e treeEntry[K, V]) (Entry[K, V], error) {
	if !e.ok {
		return nil, ErrNoSuchElement
	}
	if _, _, err := t.delete(e.key); err != nil {
		return nil, err
	}
	return NewReadOnlyEntry(e.key, e.value), nil
}

// KeySet returns the keys as a [NavigableSet].
func (t *TreeMap[K, V]) KeySet() Set[K] { return t.navKeys() }

// NavigableKeySet returns the keys as a live [NavigableSet].
func (t *TreeMap[K, V]) NavigableKeySet() NavigableSet[K] { return t.navKeys() }

// DescendingKeySet returns the keys in reverse order as a live [NavigableSet].
func (t *TreeMap[K, V]) DescendingKeySet() NavigableSet[K] { return t.descending().navKeys() }

// DescendingMap returns a live view presenting the keys in reverse order.
// The descending map of a descending map is the original.
func (t *TreeMap[K, V]) DescendingMap() NavigableMap[K, V] { return t.descending() }

// SubMap returns a live view of the keys in [from, to).
func (t *TreeMap[K, V]) SubMap(from, to K) (SortedMap[K, V], error) {
	return t.NavigableSubMap(from, true, to, false)
}

// HeadMap returns a live view of the keys below to.
func (t *TreeMap[K, V]) HeadMap(to K) (SortedMap[K, V], error) {
	return t.NavigableHeadMap(to, false)
}

// TailMap returns a live view of the keys at or above from.
func (t *TreeMap[K, V]) TailMap(from K) (SortedMap[K, V], error) {
	return t.NavigableTailMap(from, true)
}

// NavigableSubMap returns a live view of the keys between from and to.
func (t *TreeMap[K, V]) NavigableSubMap(from K, fromInclusive bool, to K, toInclusive bool) (NavigableMap[K, V], error) {
	m, err := t.subMap(from, fromInclusive, to, toInclusive)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// NavigableHeadMap returns a live view of the keys before to.
func (t *TreeMap[K, V]) NavigableHeadMap(to K, inclusive bool) (NavigableMap[K, V], error) {
	m, err := t.headMap(to, inclusive)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// NavigableTailMap returns a live view of the keys after from.
func (t *TreeMap[K, V]) NavigableTailMap(from K, inclusive bool) (NavigableMap[K, V], error) {
	m, err := t.tailMap(from, inclusive)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// subMap, headMap and tailMap take their arguments in presentation order.

func (t *TreeMap[K, V]) subMap(from K, fromInclusive bool, to K, toInclusive bool) (*TreeMap[K, V], error) {
	lo, hi := bound[K]{from, true, fromInclusive}, bound[K]{to, true, toInclusive}
	if t.desc {
		lo, hi = hi, lo
	}
	if t.compare(lo.key, hi.key) > 0 {
		return nil, fmt.Errorf("%w: %v, %v", ErrInvalidRange, from, to)
	}
	if !t.within(lo.key, lo.inclusive) || !t.within(hi.key, hi.inclusive) {
		return nil, fmt.Errorf("%w: [%v, %v]", ErrKeyOutOfRange, from, to)
	}
	return newTreeView(t.root, lo, hi, t.desc), nil
}

func (t *TreeMap[K, V]) headMap(to K, inclusive bool) (*TreeMap[K, V], error) {
	if !t.within(to, inclusive) {
		return nil, fmt.Errorf("%w: %v", ErrKeyOutOfRange, to)
	}
	b := bound[K]{to, true, inclusive}
	if t.desc {
		return newTreeView(t.root, b, t.hi, true), nil
	}
	return newTreeView(t.root, t.lo, b, false), nil
}

func (t *TreeMap[K, V]) tailMap(from K, inclusive bool) (*TreeMap[K, V], error) {
	if !t.within(from, inclusive) {
		return nil, fmt.Errorf("%w: %v", ErrKeyOutOfRange, from)
	}
	b := bound[K]{from, true, inclusive}
	if t.desc {
		return newTreeView(t.root, t.lo, b, true), nil
	}
	return newTreeView(t.root, b, t.hi, false), nil
}
