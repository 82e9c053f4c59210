package transformers

import "github.com/hasbyte1/go-transformers/collections"

type listView[E, W any] struct {
	*collectionView[E, W]
	l collections.List[W]
}

// raListView marks a list view whose underlying list is RandomAccess.
type raListView[E, W any] struct {
	*listView[E, W]
}

func (*raListView[E, W]) RandomAccess() {}

// OfList returns a view of l over E. The result is RandomAccess when l is,
// and a Deque when l is one.
func OfList[E, W any](l collections.List[W], t Transformer[E, W]) collections.List[E] {
	if absent(l) {
		return nil
	}
	if id, ok := same[E, W, collections.List[E]](t, l); ok {
		return id
	}
	return specialize[E, W](l, t).(collections.List[E])
}

func (v *listView[E, W]) Get(i int) (E, error) {
	w, err := v.l.Get(i)
	return convert(v.t, w, err)
}

func (v *listView[E, W]) Set(i int, e E) (E, error) {
	w, err := v.l.Set(i, v.t.ToWrapped(e))
	return convert(v.t, w, err)
}

func (v *listView[E, W]) Insert(i int, e E) error { return v.l.Insert(i, v.t.ToWrapped(e)) }

func (v *listView[E, W]) InsertAll(i int, c collections.Collection[E]) (bool, error) {
	return v.l.InsertAll(i, OfCollection(c, v.t.Invert()))
}

func (v *listView[E, W]) RemoveAt(i int) (E, error) {
	w, err := v.l.RemoveAt(i)
	return convert(v.t, w, err)
}

func (v *listView[E, W]) IndexOf(o any) int { return v.l.IndexOf(v.t.Unbounded().ToWrapped(o)) }

func (v *listView[E, W]) LastIndexOf(o any) int {
	return v.l.LastIndexOf(v.t.Unbounded().ToWrapped(o))
}

func (v *listView[E, W]) ListIterator() collections.ListIterator[E] {
	return OfListIterator(v.l.ListIterator(), v.t)
}

func (v *listView[E, W]) ListIteratorAt(i int) (collections.ListIterator[E], error) {
	it, err := v.l.ListIteratorAt(i)
	if err != nil {
		return nil, err
	}
	return OfListIterator(it, v.t), nil
}

func (v *listView[E, W]) SubList(from, to int) (collections.List[E], error) {
	sub, err := v.l.SubList(from, to)
	if err != nil {
		return nil, err
	}
	return OfList(sub, v.t), nil
}

func (v *listView[E, W]) ReplaceAll(op func(E) E) error {
	return v.l.ReplaceAll(func(w W) W { return v.t.ToWrapped(op(v.t.FromWrapped(w))) })
}

func (v *listView[E, W]) Sort(c collections.Comparator[E]) error {
	return v.l.Sort(OfComparator(c, v.t.Invert()))
}

func (v *listView[E, W]) Equal(o any) bool {
	if o == v.self {
		return true
	}
	if other, ok := o.(collections.List[E]); ok {
		return v.l.Equal(OfList(other, v.t.Invert()))
	}
	return v.l.Equal(o)
}

// convert converts the result of a read that may have failed.
func convert[E, W any](t Transformer[E, W], w W, err error) (E, error) {
	if err != nil {
		var zero E
		return zero, err
	}
	return t.FromWrapped(w), nil
}
