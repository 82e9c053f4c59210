package collections

import "container/list"

// LinkedList is a doubly linked [List] that is also a [Deque].
//
// Positional access walks from whichever is nearest: the head, the tail or
// the node touched last, so iterating by index or through an iterator is
// linear overall and the deque operations run in constant time.
type LinkedList[T any] struct {
	*indexedList[T]
	nodes *linkedStore[T]
}

// NewLinkedList returns a LinkedList holding items in order.
func NewLinkedList[T any](items ...T) *LinkedList[T] {
	s := &linkedStore[T]{l: list.New()}
	for _, e := range items {
		s.l.PushBack(e)
	}
	return &LinkedList[T]{indexedList: newIndexedList[T](s, s, nil), nodes: s}
}

// Offer appends e; it never reports a full list.
func (l *LinkedList[T]) Offer(e T) (bool, error) { return l.OfferLast(e) }

// Poll removes and returns the head.
func (l *LinkedList[T]) Poll() (T, error) { return l.PollFirst() }

// Peek returns the head.
func (l *LinkedList[T]) Peek() (T, bool) { return l.PeekFirst() }

// OfferFirst inserts e at the head.
func (l *LinkedList[T]) OfferFirst(e T) (bool, error) {
	l.nodes.insertAt(0, e)
	return true, nil
}

// OfferLast appends e.
func (l *LinkedList[T]) OfferLast(e T) (bool, error) {
	l.nodes.insertAt(l.nodes.size(), e)
	return true, nil
}

// PollFirst removes and returns the first element, or fails with [ErrNoSuchElement].
func (l *LinkedList[T]) PollFirst() (T, error) {
	if l.nodes.size() == 0 {
		var zero T
		return zero, ErrNoSuchElement
	}
	return l.nodes.removeAt(0), nil
}

// PollLast removes and returns the last element, or fails with [ErrNoSuchElement].
func (l *LinkedList[T]) PollLast() (T, error) {
	n := l.nodes.size()
	if n == 0 {
		var zero T
		return zero, ErrNoSuchElement
	}
	return l.nodes.removeAt(n - 1), nil
}

// PeekFirst returns the head without removing it.
func (l *LinkedList[T]) PeekFirst() (T, bool) {
	if f := l.nodes.l.Front(); f != nil {
		return f.Value.(T), true
	}
	var zero T
	return zero, false
}

// PeekLast returns the tail without removing it.
func (l *LinkedList[T]) PeekLast() (T, bool) {
	if b := l.nodes.l.Back(); b != nil {
		return b.Value.(T), true
	}
	var zero T
	return zero, false
}

// Push adds e at the head.
func (l *LinkedList[T]) Push(e T) error {
	_, err := l.OfferFirst(e)
	return err
}

// Pop removes and returns the head.
func (l *LinkedList[T]) Pop() (T, error) { return l.PollFirst() }

// RemoveFirstOccurrence removes the first element equal to o.
func (l *LinkedList[T]) RemoveFirstOccurrence(o any) (bool, error) { return l.Remove(o) }

// RemoveLastOccurrence removes the last element equal to o.
func (l *LinkedList[T]) RemoveLastOccurrence(o any) (bool, error) {
	i := l.LastIndexOf(o)
	if i < 0 {
		return false, nil
	}
	_, err := l.RemoveAt(i)
	return err == nil, err
}

// DescendingIterator iterates from tail to head.
func (l *LinkedList[T]) DescendingIterator() Iterator[T] {
	it, _ := l.ListIteratorAt(l.Len())
	return descendingIter[T]{it: it}
}

// linkedStore is a container/list with a cached cursor: the node at index
// mark, or nil.
type linkedStore[T any] struct {
	l    *list.List
	node *list.Element
	mark int
}

func (s *linkedStore[T]) size() int { return s.l.Len() }

func (s *linkedStore[T]) seek(i int) *list.Element {
	n := s.l.Len()
	var e *list.Element
	var at int
	switch {
	case s.node != nil && abs(i-s.mark) <= min(i, n-1-i):
		e, at = s.node, s.mark
	case i <= n/2:
		e, at = s.l.Front(), 0
	default:
		e, at = s.l.Back(), n-1
	}
	for ; at < i; at++ {
		e = e.Next()
	}
	for ; at > i; at-- {
		e = e.Prev()
	}
	s.node, s.mark = e, i
	return e
}

func (s *linkedStore[T]) at(i int) T { return s.seek(i).Value.(T) }

func (s *linkedStore[T]) setAt(i int, e T) { s.seek(i).Value = e }

func (s *linkedStore[T]) insertAt(i int, e T) {
	if i == s.l.Len() {
		s.node, s.mark = s.l.PushBack(e), i
		return
	}
	s.node = s.l.InsertBefore(e, s.seek(i))
	s.mark = i
}

func (s *linkedStore[T]) removeAt(i int) T {
	e := s.seek(i)
	s.node = e.Next()
	s.l.Remove(e)
	if s.node == nil {
		s.mark = 0
	}
	return e.Value.(T)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
