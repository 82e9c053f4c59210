package collections

import (
	"fmt"
	"iter"
	"strings"
)

// core is the minimal method set a container provides itself; collection
// derives the rest of [Collection] from it.
type core[T any] interface {
	Len() int
	Iterator() Iterator[T]
	Contains(o any) bool
	Add(e T) (bool, error)
	Remove(o any) (bool, error)
	RemoveIf(pred func(T) bool) (bool, error)
}

// collection implements the derived part of [Collection] in terms of core.
// Containers embed it and point self at themselves, so overridden methods
// (a faster RemoveIf, say) are the ones the derived methods call.
type collection[T any] struct {
	self core[T]
}

// IsEmpty reports whether there are no elements.
func (c collection[T]) IsEmpty() bool { return c.self.Len() == 0 }

// All returns an iterator over the elements.
func (c collection[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		Seq(c.self.Iterator())(yield)
	}
}

// ToSlice returns the elements in iteration order.
func (c collection[T]) ToSlice() []T {
	out := make([]T, 0, c.self.Len())
	for it := c.self.Iterator(); it.HasNext(); {
		e, _ := it.Next()
		out = append(out, e)
	}
	return out
}

// ContainsAll reports whether every element of o is contained.
func (c collection[T]) ContainsAll(o Collection[T]) bool {
	if o == nil {
		return true
	}
	for e := range o.All() {
		if !c.self.Contains(e) {
			return false
		}
	}
	return true
}

// AddAll copies o first, so adding a collection to itself terminates.
func (c collection[T]) AddAll(o Collection[T]) (bool, error) {
	if o == nil {
		return false, nil
	}
	changed := false
	for _, e := range o.ToSlice() {
		ok, err := c.self.Add(e)
		if err != nil {
			return changed, err
		}
		changed = changed || ok
	}
	return changed, nil
}

// RemoveAll removes every element that o contains.
func (c collection[T]) RemoveAll(o Collection[T]) (bool, error) {
	if o == nil {
		return false, nil
	}
	return c.self.RemoveIf(func(e T) bool { return o.Contains(e) })
}

// RetainAll removes every element that o does not contain.
func (c collection[T]) RetainAll(o Collection[T]) (bool, error) {
	if o == nil {
		return c.self.RemoveIf(func(T) bool { return true })
	}
	return c.self.RemoveIf(func(e T) bool { return !o.Contains(e) })
}

// RemoveIf removes every element for which pred returns true.
func (c collection[T]) RemoveIf(pred func(T) bool) (bool, error) {
	return removeMatching(c.self.Iterator(), pred, false)
}

// Clear removes every element.
func (c collection[T]) Clear() error {
	_, err := c.self.RemoveIf(func(T) bool { return true })
	return err
}

// String renders the elements in iteration order: "[a, b, c]".
func (c collection[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	first := true
	for it := c.self.Iterator(); it.HasNext(); {
		e, _ := it.Next()
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprint(&b, e)
	}
	b.WriteByte(']')
	return b.String()
}

// removeMatching removes the elements of it that satisfy pred, stopping
// after the first one when once is set.
func removeMatching[T any](it Iterator[T], pred func(T) bool, once bool) (bool, error) {
	changed := false
	for it.HasNext() {
		e, _ := it.Next()
		if !pred(e) {
			continue
		}
		if err := it.Remove(); err != nil {
			return changed, err
		}
		changed = true
		if once {
			break
		}
	}
	return changed, nil
}

// containsByIteration is the linear membership test.
func containsByIteration[T any](it Iterator[T], o any) bool {
	for it.HasNext() {
		e, _ := it.Next()
		if ValuesEqual(o, e) {
			return true
		}
	}
	return false
}

// removeByIteration removes the first element equal to o.
func removeByIteration[T any](it Iterator[T], o any) (bool, error) {
	return removeMatching(it, func(e T) bool { return ValuesEqual(o, e) }, true)
}
