package collections

import "cmp"

// Comparator orders values of T. Compare returns a negative number when a
// sorts before b, zero when the two are equivalent and a positive number
// when a sorts after b.
//
// The method set matches immutable.Comparer, so a Comparator can order an
// immutable.SortedMap directly.
type Comparator[T any] interface {
	Compare(a, b T) int
}

// ComparatorFunc adapts an ordinary function to a [Comparator].
//
//	byLen := collections.ComparatorFunc[string](func(a, b string) int {
//	    return len(a) - len(b)
//	})
type ComparatorFunc[T any] func(a, b T) int

// Compare calls f(a, b).
func (f ComparatorFunc[T]) Compare(a, b T) int { return f(a, b) }

type naturalOrder[T cmp.Ordered] struct{}

func (naturalOrder[T]) Compare(a, b T) int { return cmp.Compare(a, b) }

// NaturalOrder returns the Comparator for the natural ordering of T, as
// defined by [cmp.Compare].
func NaturalOrder[T cmp.Ordered]() Comparator[T] { return naturalOrder[T]{} }

type reverseOrder[T any] struct {
	c Comparator[T]
}

func (r reverseOrder[T]) Compare(a, b T) int { return r.c.Compare(b, a) }

// Reverse returns a Comparator imposing the opposite ordering of c.
// Reversing a reversed comparator returns the original.
func Reverse[T any](c Comparator[T]) Comparator[T] {
	if r, ok := c.(reverseOrder[T]); ok {
		return r.c
	}
	return reverseOrder[T]{c: c}
}
