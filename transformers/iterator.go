package transformers

import "github.com/hasbyte1/go-transformers/collections"

type iteratorView[E, W any] struct {
	it collections.Iterator[W]
	t  Transformer[E, W]
}

// OfIterator returns an Iterator over E reading from it. When it is a
// ListIterator the result is one too, see [OfListIterator].
func OfIterator[E, W any](it collections.Iterator[W], t Transformer[E, W]) collections.Iterator[E] {
	if absent(it) {
		return nil
	}
	if li, ok := it.(collections.ListIterator[W]); ok {
		return OfListIterator(li, t)
	}
	if id, ok := same[E, W, collections.Iterator[E]](t, it); ok {
		return id
	}
	return &iteratorView[E, W]{it: it, t: t}
}

func (v *iteratorView[E, W]) HasNext() bool { return v.it.HasNext() }

func (v *iteratorView[E, W]) Next() (E, bool) {
	w, ok := v.it.Next()
	return from(v.t, w, ok)
}

func (v *iteratorView[E, W]) Remove() error { return v.it.Remove() }

type listIteratorView[E, W any] struct {
	it collections.ListIterator[W]
	t  Transformer[E, W]
}

// OfListIterator returns a ListIterator over E. Next and Previous convert
// what they read; Set and Add convert their argument before writing.
func OfListIterator[E, W any](it collections.ListIterator[W], t Transformer[E, W]) collections.ListIterator[E] {
	if absent(it) {
		return nil
	}
	if id, ok := same[E, W, collections.ListIterator[E]](t, it); ok {
		return id
	}
	return &listIteratorView[E, W]{it: it, t: t}
}

func (v *listIteratorView[E, W]) HasNext() bool      { return v.it.HasNext() }
func (v *listIteratorView[E, W]) HasPrevious() bool  { return v.it.HasPrevious() }
func (v *listIteratorView[E, W]) NextIndex() int     { return v.it.NextIndex() }
func (v *listIteratorView[E, W]) PreviousIndex() int { return v.it.PreviousIndex() }
func (v *listIteratorView[E, W]) Remove() error      { return v.it.Remove() }

func (v *listIteratorView[E, W]) Next() (E, bool) {
	w, ok := v.it.Next()
	return from(v.t, w, ok)
}

func (v *listIteratorView[E, W]) Previous() (E, bool) {
	w, ok := v.it.Previous()
	return from(v.t, w, ok)
}

func (v *listIteratorView[E, W]) Set(e E) error { return v.it.Set(v.t.ToWrapped(e)) }
func (v *listIteratorView[E, W]) Add(e E) error { return v.it.Add(v.t.ToWrapped(e)) }

type enumerationView[E, W any] struct {
	e collections.Enumeration[W]
	t Transformer[E, W]
}

// OfEnumeration returns an Enumeration over E reading from e.
func OfEnumeration[E, W any](e collections.Enumeration[W], t Transformer[E, W]) collections.Enumeration[E] {
	if absent(e) {
		return nil
	}
	if id, ok := same[E, W, collections.Enumeration[E]](t, e); ok {
		return id
	}
	return &enumerationView[E, W]{e: e, t: t}
}

func (v *enumerationView[E, W]) HasMoreElements() bool { return v.e.HasMoreElements() }

func (v *enumerationView[E, W]) NextElement() (E, bool) {
	w, ok := v.e.NextElement()
	return from(v.t, w, ok)
}

// Iterator returns a read-only Iterator over the remaining elements; its
// Remove fails with collections.ErrUnsupported.
func (v *enumerationView[E, W]) Iterator() collections.Iterator[E] {
	return enumerationIter[E]{e: v}
}

type enumerationIter[E any] struct {
	e collections.Enumeration[E]
}

func (it enumerationIter[E]) HasNext() bool   { return it.e.HasMoreElements() }
func (it enumerationIter[E]) Next() (E, bool) { return it.e.NextElement() }
func (it enumerationIter[E]) Remove() error   { return collections.ErrUnsupported }

// from converts the result of a read that may have found nothing.
func from[E, W any](t Transformer[E, W], w W, ok bool) (E, bool) {
	if !ok {
		var zero E
		return zero, false
	}
	return t.FromWrapped(w), true
}
