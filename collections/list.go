package collections

import (
	"fmt"
	"slices"
)

// reader is positional read access to a sequence.
type reader[T any] interface {
	size() int
	at(i int) T
}

// store is a reader that can also be modified in place.
type store[T any] interface {
	reader[T]
	setAt(i int, e T)
	insertAt(i int, e T)
	removeAt(i int) T
}

// indexedList implements [List] over a reader. When w is nil the list is
// read-only and every mutation fails with ErrUnsupported.
type indexedList[T any] struct {
	collection[T]
	r reader[T]
	w store[T]

	// wrap decorates sub-lists so they keep the capabilities of the list
	// they were taken from.
	wrap func(*indexedList[T]) List[T]
}

func newIndexedList[T any](r reader[T], w store[T], wrap func(*indexedList[T]) List[T]) *indexedList[T] {
	l := &indexedList[T]{r: r, w: w, wrap: wrap}
	l.self = l
	return l
}

func outOfRange(i, n int) error {
	return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, n)
}

func (l *indexedList[T]) writable() error {
	if l.w == nil {
		return ErrUnsupported
	}
	return nil
}

// Len returns the number of elements.
func (l *indexedList[T]) Len() int { return l.r.size() }

// Iterator walks the elements in order.
func (l *indexedList[T]) Iterator() Iterator[T] { return l.ListIterator() }

// Contains reports whether some element equals o.
func (l *indexedList[T]) Contains(o any) bool { return l.IndexOf(o) >= 0 }

// Add appends e.
func (l *indexedList[T]) Add(e T) (bool, error) {
	if err := l.writable(); err != nil {
		return false, err
	}
	l.w.insertAt(l.w.size(), e)
	return true, nil
}

// Remove removes the first element equal to o.
func (l *indexedList[T]) Remove(o any) (bool, error) {
	if err := l.writable(); err != nil {
		return false, err
	}
	i := l.IndexOf(o)
	if i < 0 {
		return false, nil
	}
	l.w.removeAt(i)
	return true, nil
}

// RemoveIf compacts the list in one pass.
func (l *indexedList[T]) RemoveIf(pred func(T) bool) (bool, error) {
	if err := l.writable(); err != nil {
		return false, err
	}
	n := l.w.size()
	kept := 0
	for i := 0; i < n; i++ {
		e := l.w.at(i)
		if pred(e) {
			continue
		}
		if kept != i {
			l.w.setAt(kept, e)
		}
		kept++
	}
	for i := n - 1; i >= kept; i-- {
		l.w.removeAt(i)
	}
	return kept != n, nil
}

// Clear removes every element.
func (l *indexedList[T]) Clear() error {
	if err := l.writable(); err != nil {
		return err
	}
	for i := l.w.size() - 1; i >= 0; i-- {
		l.w.removeAt(i)
	}
	return nil
}

// Get returns the element at i.
func (l *indexedList[T]) Get(i int) (T, error) {
	if i < 0 || i >= l.r.size() {
		var zero T
		return zero, outOfRange(i, l.r.size())
	}
	return l.r.at(i), nil
}

// Set replaces the element at i and returns the old one.
func (l *indexedList[T]) Set(i int, e T) (T, error) {
	var zero T
	if err := l.writable(); err != nil {
		return zero, err
	}
	if i < 0 || i >= l.w.size() {
		return zero, outOfRange(i, l.w.size())
	}
	old := l.w.at(i)
	l.w.setAt(i, e)
	return old, nil
}

// Insert inserts e at i, shifting later elements up.
func (l *indexedList[T]) Insert(i int, e T) error {
	if err := l.writable(); err != nil {
		return err
	}
	if i < 0 || i > l.w.size() {
		return outOfRange(i, l.w.size())
	}
	l.w.insertAt(i, e)
	return nil
}

// InsertAll inserts the elements of c at i in iteration order.
func (l *indexedList[T]) InsertAll(i int, c Collection[T]) (bool, error) {
	if err := l.writable(); err != nil {
		return false, err
	}
	if i < 0 || i > l.w.size() {
		return false, outOfRange(i, l.w.size())
	}
	if c == nil {
		return false, nil
	}
	items := c.ToSlice()
	for j, e := range items {
		l.w.insertAt(i+j, e)
	}
	return len(items) > 0, nil
}

// RemoveAt removes and returns the element at i.
func (l *indexedList[T]) RemoveAt(i int) (T, error) {
	var zero T
	if err := l.writable(); err != nil {
		return zero, err
	}
	if i < 0 || i >= l.w.size() {
		return zero, outOfRange(i, l.w.size())
	}
	return l.w.removeAt(i), nil
}

// IndexOf returns the first index of o, or -1.
func (l *indexedList[T]) IndexOf(o any) int {
	for i, n := 0, l.r.size(); i < n; i++ {
		if ValuesEqual(o, l.r.at(i)) {
			return i
		}
	}
	return -1
}

// LastIndexOf returns the last index of o, or -1.
func (l *indexedList[T]) LastIndexOf(o any) int {
	for i := l.r.size() - 1; i >= 0; i-- {
		if ValuesEqual(o, l.r.at(i)) {
			return i
		}
	}
	return -1
}

// ListIterator returns a ListIterator positioned before the first element.
func (l *indexedList[T]) ListIterator() ListIterator[T] {
	return &listIter[T]{l: l, last: -1}
}

// ListIteratorAt returns a ListIterator positioned before index i.
func (l *indexedList[T]) ListIteratorAt(i int) (ListIterator[T], error) {
	if i < 0 || i > l.r.size() {
		return nil, outOfRange(i, l.r.size())
	}
	return &listIter[T]{l: l, cursor: i, last: -1}, nil
}

// SubList returns a live view of the elements in [from, to).
func (l *indexedList[T]) SubList(from, to int) (List[T], error) {
	n := l.r.size()
	if from < 0 || to > n {
		return nil, fmt.Errorf("%w: sub-list [%d, %d) of length %d", ErrIndexOutOfRange, from, to, n)
	}
	if from > to {
		return nil, fmt.Errorf("%w: %d > %d", ErrInvalidRange, from, to)
	}
	sub := &subStore[T]{r: l.r, w: l.w, offset: from, n: to - from}
	var w store[T]
	if l.w != nil {
		w = sub
	}
	inner := newIndexedList[T](sub, w, l.wrap)
	if l.wrap != nil {
		return l.wrap(inner), nil
	}
	return inner, nil
}

// ReplaceAll replaces each element with the result of op.
func (l *indexedList[T]) ReplaceAll(op func(T) T) error {
	if err := l.writable(); err != nil {
		return err
	}
	for i, n := 0, l.w.size(); i < n; i++ {
		l.w.setAt(i, op(l.w.at(i)))
	}
	return nil
}

// Sort sorts stably. A nil comparator is rejected with ErrUnsupported,
// since an arbitrary T has no natural order.
func (l *indexedList[T]) Sort(c Comparator[T]) error {
	if err := l.writable(); err != nil {
		return err
	}
	if c == nil {
		return fmt.Errorf("%w: sort without a comparator", ErrUnsupported)
	}
	items := l.ToSlice()
	slices.SortStableFunc(items, c.Compare)
	for i, e := range items {
		l.w.setAt(i, e)
	}
	return nil
}

// Equal reports whether o is a list holding the same elements in order.
func (l *indexedList[T]) Equal(o any) bool { return EqualLists[T](l, o) }

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// listIter is a cursor between elements; last is the index of the element
// most recently returned, or -1.
type listIter[T any] struct {
	l      *indexedList[T]
	cursor int
	last   int
}

func (it *listIter[T]) HasNext() bool      { return it.cursor < it.l.r.size() }
func (it *listIter[T]) HasPrevious() bool  { return it.cursor > 0 }
func (it *listIter[T]) NextIndex() int     { return it.cursor }
func (it *listIter[T]) PreviousIndex() int { return it.cursor - 1 }

func (it *listIter[T]) Next() (T, bool) {
	if !it.HasNext() {
		var zero T
		return zero, false
	}
	e := it.l.r.at(it.cursor)
	it.last = it.cursor
	it.cursor++
	return e, true
}

func (it *listIter[T]) Previous() (T, bool) {
	if !it.HasPrevious() {
		var zero T
		return zero, false
	}
	it.cursor--
	it.last = it.cursor
	return it.l.r.at(it.cursor), true
}

func (it *listIter[T]) Remove() error {
	if err := it.l.writable(); err != nil {
		return err
	}
	if it.last < 0 {
		return ErrIllegalState
	}
	it.l.w.removeAt(it.last)
	if it.last < it.cursor {
		it.cursor--
	}
	it.last = -1
	return nil
}

func (it *listIter[T]) Set(e T) error {
	if err := it.l.writable(); err != nil {
		return err
	}
	if it.last < 0 {
		return ErrIllegalState
	}
	it.l.w.setAt(it.last, e)
	return nil
}

func (it *listIter[T]) Add(e T) error {
	if err := it.l.writable(); err != nil {
		return err
	}
	it.l.w.insertAt(it.cursor, e)
	it.cursor++
	it.last = -1
	return nil
}

// descendingIter walks a list iterator backwards.
type descendingIter[T any] struct {
	it ListIterator[T]
}

func (d descendingIter[T]) HasNext() bool   { return d.it.HasPrevious() }
func (d descendingIter[T]) Next() (T, bool) { return d.it.Previous() }
func (d descendingIter[T]) Remove() error   { return d.it.Remove() }

// ─────────────────────────────────────────────────────────────────────────────
// Stores
// ─────────────────────────────────────────────────────────────────────────────

// subStore is the window [offset, offset+n) of another store. Changes made
// through it adjust n; changes made to the parent directly are not tracked.
type subStore[T any] struct {
	r      reader[T]
	w      store[T]
	offset int
	n      int
}

func (s *subStore[T]) size() int        { return s.n }
func (s *subStore[T]) at(i int) T       { return s.r.at(s.offset + i) }
func (s *subStore[T]) setAt(i int, e T) { s.w.setAt(s.offset+i, e) }
func (s *subStore[T]) insertAt(i int, e T) {
	s.w.insertAt(s.offset+i, e)
	s.n++
}
func (s *subStore[T]) removeAt(i int) T {
	e := s.w.removeAt(s.offset + i)
	s.n--
	return e
}

// sliceStore keeps its elements in a slice.
type sliceStore[T any] struct {
	items []T
}

func (s *sliceStore[T]) size() int        { return len(s.items) }
func (s *sliceStore[T]) at(i int) T       { return s.items[i] }
func (s *sliceStore[T]) setAt(i int, e T) { s.items[i] = e }
func (s *sliceStore[T]) insertAt(i int, e T) {
	s.items = slices.Insert(s.items, i, e)
}
func (s *sliceStore[T]) removeAt(i int) T {
	e := s.items[i]
	s.items = slices.Delete(s.items, i, i+1)
	return e
}
