package collections

import "iter"

// Collection is a group of elements.
//
// Contains and Remove accept any value: passing something that is not a T
// reports "not present" rather than failing. Bulk operations take another
// Collection of the same element type.
type Collection[T any] interface {
	Iterable[T]

	// Len returns the number of elements.
	Len() int

	// IsEmpty reports whether the collection has no elements.
	IsEmpty() bool

	// Contains reports whether the collection holds an element equal to o.
	Contains(o any) bool

	// ContainsAll reports whether every element of c is contained.
	ContainsAll(c Collection[T]) bool

	// ToSlice returns the elements in iteration order in a new slice.
	ToSlice() []T

	// Add ensures e is in the collection. It reports whether the collection
	// changed.
	Add(e T) (bool, error)

	// AddAll adds every element of c, reporting whether anything changed.
	AddAll(c Collection[T]) (bool, error)

	// Remove removes one element equal to o, reporting whether one existed.
	Remove(o any) (bool, error)

	// RemoveAll removes every element also contained in c.
	RemoveAll(c Collection[T]) (bool, error)

	// RetainAll removes every element not contained in c.
	RetainAll(c Collection[T]) (bool, error)

	// RemoveIf removes every element satisfying pred.
	RemoveIf(pred func(T) bool) (bool, error)

	// Clear removes all elements.
	Clear() error

	// Equal reports whether o is a collection of the same kind holding the
	// same elements.
	Equal(o any) bool
}

// List is an ordered [Collection] with positional access.
type List[T any] interface {
	Collection[T]

	Get(i int) (T, error)

	// Set replaces the element at i, returning the previous one.
	Set(i int, e T) (T, error)

	// Insert inserts e at i, shifting later elements right.
	Insert(i int, e T) error

	// InsertAll inserts the elements of c at i, in c's iteration order.
	InsertAll(i int, c Collection[T]) (bool, error)

	// RemoveAt removes and returns the element at i.
	RemoveAt(i int) (T, error)

	// IndexOf returns the index of the first element equal to o, or -1.
	IndexOf(o any) int

	// LastIndexOf returns the index of the last element equal to o, or -1.
	LastIndexOf(o any) int

	ListIterator() ListIterator[T]
	ListIteratorAt(i int) (ListIterator[T], error)

	// SubList returns a live view of the elements in [from, to).
	SubList(from, to int) (List[T], error)

	// ReplaceAll replaces each element with op(element).
	ReplaceAll(op func(T) T) error

	// Sort sorts the list in place; the sort is stable.
	Sort(c Comparator[T]) error
}

// RandomAccess marks lists whose positional operations run in constant
// time.
type RandomAccess interface {
	RandomAccess()
}

// Set is a [Collection] that holds no two equal elements.
type Set[T any] interface {
	Collection[T]

	// Distinct marks the collection as a set.
	Distinct()
}

// SortedSet is a [Set] iterated in the order of its [Comparator].
type SortedSet[T any] interface {
	Set[T]

	Comparator() Comparator[T]
	First() (T, bool)
	Last() (T, bool)

	// SubSet returns a live view of the elements in [from, to).
	SubSet(from, to T) (SortedSet[T], error)

	// HeadSet returns a live view of the elements strictly before to.
	HeadSet(to T) (SortedSet[T], error)

	// TailSet returns a live view of the elements from `from` onwards.
	TailSet(from T) (SortedSet[T], error)
}

// NavigableSet is a [SortedSet] with closest-match queries.
type NavigableSet[T any] interface {
	SortedSet[T]

	// Lower returns the greatest element strictly less than e.
	Lower(e T) (T, bool)
	// Floor returns the greatest element less than or equal to e.
	Floor(e T) (T, bool)
	// Ceiling returns the least element greater than or equal to e.
	Ceiling(e T) (T, bool)
	// Higher returns the least element strictly greater than e.
	Higher(e T) (T, bool)

	PollFirst() (T, error)
	PollLast() (T, error)

	DescendingSet() NavigableSet[T]
	DescendingIterator() Iterator[T]

	NavigableSubSet(from T, fromInclusive bool, to T, toInclusive bool) (NavigableSet[T], error)
	NavigableHeadSet(to T, inclusive bool) (NavigableSet[T], error)
	NavigableTailSet(from T, inclusive bool) (NavigableSet[T], error)
}

// Queue is a [Collection] with a head.
type Queue[T any] interface {
	Collection[T]

	// Offer adds e at the tail, reporting false if the queue is full.
	Offer(e T) (bool, error)

	// Poll removes and returns the head, or fails with ErrNoSuchElement.
	Poll() (T, error)

	// Peek returns the head without removing it.
	Peek() (T, bool)
}

// Deque is a [Queue] that can be used from either end.
type Deque[T any] interface {
	Queue[T]

	OfferFirst(e T) (bool, error)
	OfferLast(e T) (bool, error)
	PollFirst() (T, error)
	PollLast() (T, error)
	PeekFirst() (T, bool)
	PeekLast() (T, bool)

	// Push adds e at the head.
	Push(e T) error
	// Pop removes and returns the head.
	Pop() (T, error)

	RemoveFirstOccurrence(o any) (bool, error)
	RemoveLastOccurrence(o any) (bool, error)

	// DescendingIterator iterates from tail to head.
	DescendingIterator() Iterator[T]
}

// ToSeq returns c's elements as a sequence; nil yields nothing.
func ToSeq[T any](c Iterable[T]) iter.Seq[T] {
	if c == nil {
		return func(func(T) bool) {}
	}
	return c.All()
}
