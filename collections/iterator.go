package collections

import "iter"

// Iterator walks the elements of a container once.
//
//	for it := c.Iterator(); it.HasNext(); {
//	    e, _ := it.Next()
//	    ...
//	}
type Iterator[T any] interface {
	// HasNext reports whether Next would return an element.
	HasNext() bool

	// Next returns the next element, or the zero value and false when the
	// iteration is exhausted.
	Next() (T, bool)

	// Remove removes the element most recently returned by Next from the
	// underlying container. It returns ErrIllegalState when there is no
	// such element and ErrUnsupported when the container cannot remove.
	Remove() error
}

// ListIterator is an [Iterator] over a [List] that can move in both
// directions and modify the list at its cursor.
//
// The cursor always sits between two elements: NextIndex is the index of
// the element Next would return, PreviousIndex the index of the element
// Previous would return.
type ListIterator[T any] interface {
	Iterator[T]

	HasPrevious() bool
	Previous() (T, bool)
	NextIndex() int
	PreviousIndex() int

	// Set replaces the element most recently returned by Next or Previous.
	Set(e T) error

	// Add inserts e immediately before the cursor.
	Add(e T) error
}

// Enumeration is a read-only, forward-only sequence of elements.
type Enumeration[T any] interface {
	HasMoreElements() bool
	NextElement() (T, bool)
}

// Iterable is implemented by anything that can produce an [Iterator].
type Iterable[T any] interface {
	Iterator() Iterator[T]

	// All returns a range-over-func sequence of the elements.
	All() iter.Seq[T]
}

// Seq adapts an Iterator to a range-over-func sequence.
func Seq[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for it.HasNext() {
			e, ok := it.Next()
			if !ok || !yield(e) {
				return
			}
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Enumerations
// ─────────────────────────────────────────────────────────────────────────────

// SliceEnumeration enumerates the items of a slice.
type SliceEnumeration[T any] struct {
	items []T
	pos   int
}

// NewSliceEnumeration returns an Enumeration over items (not copied).
func NewSliceEnumeration[T any](items ...T) *SliceEnumeration[T] {
	return &SliceEnumeration[T]{items: items}
}

// HasMoreElements reports whether any items remain.
func (e *SliceEnumeration[T]) HasMoreElements() bool { return e.pos < len(e.items) }

// NextElement returns the next item.
func (e *SliceEnumeration[T]) NextElement() (T, bool) {
	if e.pos >= len(e.items) {
		var zero T
		return zero, false
	}
	item := e.items[e.pos]
	e.pos++
	return item, true
}

type iteratorEnumeration[T any] struct {
	it Iterator[T]
}

func (e iteratorEnumeration[T]) HasMoreElements() bool  { return e.it.HasNext() }
func (e iteratorEnumeration[T]) NextElement() (T, bool) { return e.it.Next() }

// Enumerate returns an Enumeration over the remaining elements of it.
func Enumerate[T any](it Iterator[T]) Enumeration[T] {
	if it == nil {
		return nil
	}
	return iteratorEnumeration[T]{it: it}
}
