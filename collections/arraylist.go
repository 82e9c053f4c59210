package collections

// ArrayList is a slice-backed [List] with constant-time positional access.
//
//	l := collections.NewArrayList("a", "b")
//	l.Add("c")
//	l.Get(2) // "c", nil
//
// Sub-lists are ArrayLists too, sharing the parent's storage.
type ArrayList[T any] struct {
	*indexedList[T]
}

// NewArrayList returns an ArrayList holding a copy of items.
func NewArrayList[T any](items ...T) *ArrayList[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	s := &sliceStore[T]{items: dst}
	return &ArrayList[T]{indexedList: newIndexedList[T](s, s, wrapArrayList[T])}
}

func wrapArrayList[T any](l *indexedList[T]) List[T] { return &ArrayList[T]{indexedList: l} }

// RandomAccess marks ArrayList as a random-access list.
func (*ArrayList[T]) RandomAccess() {}
