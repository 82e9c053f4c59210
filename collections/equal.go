package collections

import "reflect"

// Equaler is implemented by values that define their own equality, such as
// containers and entries.
type Equaler interface {
	Equal(o any) bool
}

// ValuesEqual reports whether a and b are equal. If a implements [Equaler]
// its Equal method decides; otherwise a and b are equal when they have the
// same dynamic type and compare equal with ==. Values whose dynamic type is
// not comparable (slices, maps, funcs) are only equal to nothing.
func ValuesEqual(a, b any) bool {
	if e, ok := a.(Equaler); ok {
		return e.Equal(b)
	}
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	if !reflect.ValueOf(a).Comparable() || !reflect.ValueOf(b).Comparable() {
		return false
	}
	return a == b
}

// EqualLists reports whether o is a [List] of T holding the same elements
// as l in the same order.
func EqualLists[T any](l List[T], o any) bool {
	other, ok := o.(List[T])
	if !ok {
		return false
	}
	if l.Len() != other.Len() {
		return false
	}
	a, b := l.Iterator(), other.Iterator()
	for a.HasNext() && b.HasNext() {
		x, _ := a.Next()
		y, _ := b.Next()
		if !ValuesEqual(x, y) {
			return false
		}
	}
	return !a.HasNext() && !b.HasNext()
}

// EqualSets reports whether o is a [Set] of T with the same size as s, every
// element of which s contains.
func EqualSets[T any](s Set[T], o any) bool {
	other, ok := o.(Set[T])
	if !ok {
		return false
	}
	if s.Len() != other.Len() {
		return false
	}
	for e := range other.All() {
		if !s.Contains(e) {
			return false
		}
	}
	return true
}

// EqualMaps reports whether o is a [Map] with the same keys as m, each
// mapped to an equal value.
func EqualMaps[K, V any](m Map[K, V], o any) bool {
	other, ok := o.(Map[K, V])
	if !ok {
		return false
	}
	if m.Len() != other.Len() {
		return false
	}
	for k, v := range other.All() {
		mine, ok := m.Get(k)
		if !ok || !ValuesEqual(v, mine) {
			return false
		}
	}
	return true
}

// EqualEntries reports whether o is an [Entry] with the same key and value
// as e.
func EqualEntries[K, V any](e Entry[K, V], o any) bool {
	other, ok := o.(Entry[K, V])
	if !ok {
		return false
	}
	return ValuesEqual(e.Key(), other.Key()) && ValuesEqual(e.Value(), other.Value())
}
