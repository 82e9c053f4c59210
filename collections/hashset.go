package collections

// HashSet is a [Set] backed by a Go map. Iteration order is unspecified.
type HashSet[T comparable] struct {
	collection[T]
	m map[T]struct{}
}

// NewHashSet returns a HashSet holding items.
func NewHashSet[T comparable](items ...T) *HashSet[T] {
	s := &HashSet[T]{m: make(map[T]struct{}, len(items))}
	s.self = s
	for _, e := range items {
		s.m[e] = struct{}{}
	}
	return s
}

// Len returns the number of elements.
func (s *HashSet[T]) Len() int { return len(s.m) }

// Contains reports whether o is an element.
func (s *HashSet[T]) Contains(o any) bool {
	e, ok := o.(T)
	if !ok {
		return false
	}
	_, ok = s.m[e]
	return ok
}

// Add adds e, reporting whether it was absent.
func (s *HashSet[T]) Add(e T) (bool, error) {
	if _, ok := s.m[e]; ok {
		return false, nil
	}
	s.m[e] = struct{}{}
	return true, nil
}

// Remove removes o, reporting whether it was present.
func (s *HashSet[T]) Remove(o any) (bool, error) {
	e, ok := o.(T)
	if !ok {
		return false, nil
	}
	if _, ok := s.m[e]; !ok {
		return false, nil
	}
	delete(s.m, e)
	return true, nil
}

// Clear removes every element.
func (s *HashSet[T]) Clear() error {
	clear(s.m)
	return nil
}

// Iterator walks the elements present when it was created.
func (s *HashSet[T]) Iterator() Iterator[T] {
	keys := make([]T, 0, len(s.m))
	for k := range s.m {
		keys = append(keys, k)
	}
	return &hashSetIter[T]{s: s, keys: keys}
}

// Distinct marks HashSet as a set.
func (*HashSet[T]) Distinct() {}

// Equal reports whether o is a set holding the same elements.
func (s *HashSet[T]) Equal(o any) bool { return EqualSets[T](s, o) }

type hashSetIter[T comparable] struct {
	s    *HashSet[T]
	keys []T
	pos  int
	ok   bool
}

func (it *hashSetIter[T]) HasNext() bool { return it.pos < len(it.keys) }

func (it *hashSetIter[T]) Next() (T, bool) {
	if it.pos >= len(it.keys) {
		var zero T
		return zero, false
	}
	e := it.keys[it.pos]
	it.pos++
	it.ok = true
	return e, true
}

func (it *hashSetIter[T]) Remove() error {
	if !it.ok {
		return ErrIllegalState
	}
	it.ok = false
	delete(it.s.m, it.keys[it.pos-1])
	return nil
}
