package collections

import "github.com/benbjohnson/immutable"

// ImmutableList is a read-only, random-access [List] over an
// immutable.List. Every mutation, including those made through its
// iterators and sub-lists, fails with [ErrUnsupported].
type ImmutableList[T any] struct {
	*indexedList[T]
}

// NewImmutableList returns an ImmutableList of items.
func NewImmutableList[T any](items ...T) *ImmutableList[T] {
	return ImmutableListOf(immutable.NewList(items...))
}

// ImmutableListOf presents l as an ImmutableList. l is persistent, so
// later "modifications" of it, which produce new lists, are not visible.
func ImmutableListOf[T any](l *immutable.List[T]) *ImmutableList[T] {
	return &ImmutableList[T]{indexedList: newIndexedList[T](persistentStore[T]{l: l}, nil, wrapImmutableList[T])}
}

func wrapImmutableList[T any](l *indexedList[T]) List[T] { return &ImmutableList[T]{indexedList: l} }

// RandomAccess marks ImmutableList as a random-access list.
func (*ImmutableList[T]) RandomAccess() {}

type persistentStore[T any] struct {
	l *immutable.List[T]
}

func (s persistentStore[T]) size() int  { return s.l.Len() }
func (s persistentStore[T]) at(i int) T { return s.l.Get(i) }
