package transformers

import "github.com/hasbyte1/go-transformers/collections"

// OfQueue returns a view of q over E. The result is a Deque when q is one,
// and keeps any List or Set capability of q.
func OfQueue[E, W any](q collections.Queue[W], t Transformer[E, W]) collections.Queue[E] {
	if absent(q) {
		return nil
	}
	if id, ok := same[E, W, collections.Queue[E]](t, q); ok {
		return id
	}
	return specialize[E, W](q, t).(collections.Queue[E])
}

// OfDeque returns a view of d over E, keeping any List or Set capability
// of d.
func OfDeque[E, W any](d collections.Deque[W], t Transformer[E, W]) collections.Deque[E] {
	if absent(d) {
		return nil
	}
	if id, ok := same[E, W, collections.Deque[E]](t, d); ok {
		return id
	}
	return specialize[E, W](d, t).(collections.Deque[E])
}

// queueOps are the Queue operations of a view.
type queueOps[E, W any] struct {
	q collections.Queue[W]
	t Transformer[E, W]
}

func (o *queueOps[E, W]) Offer(e E) (bool, error) { return o.q.Offer(o.t.ToWrapped(e)) }

func (o *queueOps[E, W]) Poll() (E, error) {
	w, err := o.q.Poll()
	return convert(o.t, w, err)
}

func (o *queueOps[E, W]) Peek() (E, bool) {
	w, ok := o.q.Peek()
	return from(o.t, w, ok)
}

// dequeOps are the Deque operations of a view that a NavigableSet does not
// also declare.
type dequeOps[E, W any] struct {
	d collections.Deque[W]
	t Transformer[E, W]
}

func (o *dequeOps[E, W]) OfferFirst(e E) (bool, error) { return o.d.OfferFirst(o.t.ToWrapped(e)) }
func (o *dequeOps[E, W]) OfferLast(e E) (bool, error)  { return o.d.OfferLast(o.t.ToWrapped(e)) }

func (o *dequeOps[E, W]) PeekFirst() (E, bool) {
	w, ok := o.d.PeekFirst()
	return from(o.t, w, ok)
}

func (o *dequeOps[E, W]) PeekLast() (E, bool) {
	w, ok := o.d.PeekLast()
	return from(o.t, w, ok)
}

func (o *dequeOps[E, W]) Push(e E) error { return o.d.Push(o.t.ToWrapped(e)) }

func (o *dequeOps[E, W]) Pop() (E, error) {
	w, err := o.d.Pop()
	return convert(o.t, w, err)
}

func (o *dequeOps[E, W]) RemoveFirstOccurrence(e any) (bool, error) {
	return o.d.RemoveFirstOccurrence(o.t.Unbounded().ToWrapped(e))
}

func (o *dequeOps[E, W]) RemoveLastOccurrence(e any) (bool, error) {
	return o.d.RemoveLastOccurrence(o.t.Unbounded().ToWrapped(e))
}

// endsOps are the Deque operations a NavigableSet declares as well. A view
// of a navigable deque takes them from the set side.
type endsOps[E, W any] struct {
	d collections.Deque[W]
	t Transformer[E, W]
}

func (o *endsOps[E, W]) PollFirst() (E, error) {
	w, err := o.d.PollFirst()
	return convert(o.t, w, err)
}

func (o *endsOps[E, W]) PollLast() (E, error) {
	w, err := o.d.PollLast()
	return convert(o.t, w, err)
}

func (o *endsOps[E, W]) DescendingIterator() collections.Iterator[E] {
	return OfIterator(o.d.DescendingIterator(), o.t)
}
