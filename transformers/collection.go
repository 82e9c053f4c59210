package transformers

import (
	"fmt"
	"iter"
	"strings"

	"github.com/hasbyte1/go-transformers/collections"
)

type iterableView[E, W any] struct {
	iterable collections.Iterable[W]
	t        Transformer[E, W]
}

// OfIterable returns a view of it over E. A Collection is wrapped with
// [OfCollection], so the result keeps every capability of it.
func OfIterable[E, W any](it collections.Iterable[W], t Transformer[E, W]) collections.Iterable[E] {
	if absent(it) {
		return nil
	}
	if c, ok := it.(collections.Collection[W]); ok {
		return OfCollection(c, t)
	}
	if id, ok := same[E, W, collections.Iterable[E]](t, it); ok {
		return id
	}
	return &iterableView[E, W]{iterable: it, t: t}
}

func (v *iterableView[E, W]) Iterator() collections.Iterator[E] {
	return OfIterator(v.iterable.Iterator(), v.t)
}

func (v *iterableView[E, W]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for w := range v.iterable.All() {
			if !yield(v.t.FromWrapped(w)) {
				return
			}
		}
	}
}

// collectionView is the base of every container view. self is the
// outermost view built around it.
type collectionView[E, W any] struct {
	iterableView[E, W]
	c    collections.Collection[W]
	self any
}

func newCollectionView[E, W any](c collections.Collection[W], t Transformer[E, W]) *collectionView[E, W] {
	return &collectionView[E, W]{iterableView: iterableView[E, W]{iterable: c, t: t}, c: c}
}

// OfCollection returns the most specific view of c over E: if c is a List,
// a Set or a Deque, so is the result. A nil collection gives nil and the
// identity transformer gives c itself.
func OfCollection[E, W any](c collections.Collection[W], t Transformer[E, W]) collections.Collection[E] {
	if absent(c) {
		return nil
	}
	if id, ok := same[E, W, collections.Collection[E]](t, c); ok {
		return id
	}
	return specialize(c, t)
}

func (v *collectionView[E, W]) Len() int      { return v.c.Len() }
func (v *collectionView[E, W]) IsEmpty() bool { return v.c.IsEmpty() }

func (v *collectionView[E, W]) Contains(o any) bool {
	return v.c.Contains(v.t.Unbounded().ToWrapped(o))
}

func (v *collectionView[E, W]) ContainsAll(o collections.Collection[E]) bool {
	return v.c.ContainsAll(OfCollection(o, v.t.Invert()))
}

func (v *collectionView[E, W]) ToSlice() []E {
	out := make([]E, 0, v.c.Len())
	for e := range v.All() {
		out = append(out, e)
	}
	return out
}

func (v *collectionView[E, W]) Add(e E) (bool, error) { return v.c.Add(v.t.ToWrapped(e)) }

func (v *collectionView[E, W]) AddAll(o collections.Collection[E]) (bool, error) {
	return v.c.AddAll(OfCollection(o, v.t.Invert()))
}

func (v *collectionView[E, W]) Remove(o any) (bool, error) {
	return v.c.Remove(v.t.Unbounded().ToWrapped(o))
}

func (v *collectionView[E, W]) RemoveAll(o collections.Collection[E]) (bool, error) {
	return v.c.RemoveAll(OfCollection(o, v.t.Invert()))
}

func (v *collectionView[E, W]) RetainAll(o collections.Collection[E]) (bool, error) {
	return v.c.RetainAll(OfCollection(o, v.t.Invert()))
}

func (v *collectionView[E, W]) RemoveIf(pred func(E) bool) (bool, error) {
	return v.c.RemoveIf(func(w W) bool { return pred(v.t.FromWrapped(w)) })
}

func (v *collectionView[E, W]) Clear() error { return v.c.Clear() }

// Equal delegates to the wrapped collection. Another Collection[E] is first
// wrapped with the inverse transformer, so the comparison happens between
// wrapped values.
func (v *collectionView[E, W]) Equal(o any) bool {
	if o == v.self {
		return true
	}
	if other, ok := o.(collections.Collection[E]); ok {
		return v.c.Equal(OfCollection(other, v.t.Invert()))
	}
	return v.c.Equal(o)
}

func (v *collectionView[E, W]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	first := true
	for e := range v.All() {
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprint(&b, e)
	}
	b.WriteByte(']')
	return b.String()
}
