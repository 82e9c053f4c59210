package transformers

import "github.com/hasbyte1/go-transformers/collections"

// A view's type is chosen on two axes, each checked richest first.
//
//	shape: random-access list > list > navigable set > sorted set > set > collection
//	ends:  deque > queue > none
//
// Every combination has its own type below, assembled by embedding, so the
// view of a container exposes exactly the capabilities the container has.
// A container that is both a List and a Set is viewed as a List.

type (
	queueView[E, W any] struct {
		*collectionView[E, W]
		*queueOps[E, W]
	}
	dequeView[E, W any] struct {
		*collectionView[E, W]
		*queueOps[E, W]
		*dequeOps[E, W]
		*endsOps[E, W]
	}

	listQueueView[E, W any] struct {
		*listView[E, W]
		*queueOps[E, W]
	}
	listDequeView[E, W any] struct {
		*listView[E, W]
		*queueOps[E, W]
		*dequeOps[E, W]
		*endsOps[E, W]
	}

	raListQueueView[E, W any] struct {
		*raListView[E, W]
		*queueOps[E, W]
	}
	raListDequeView[E, W any] struct {
		*raListView[E, W]
		*queueOps[E, W]
		*dequeOps[E, W]
		*endsOps[E, W]
	}

	setQueueView[E, W any] struct {
		*setView[E, W]
		*queueOps[E, W]
	}
	setDequeView[E, W any] struct {
		*setView[E, W]
		*queueOps[E, W]
		*dequeOps[E, W]
		*endsOps[E, W]
	}

	sortedSetQueueView[E, W any] struct {
		*sortedSetView[E, W]
		*queueOps[E, W]
	}
	sortedSetDequeView[E, W any] struct {
		*sortedSetView[E, W]
		*queueOps[E, W]
		*dequeOps[E, W]
		*endsOps[E, W]
	}

	// PollFirst, PollLast and DescendingIterator come from the set side.
	navSetQueueView[E, W any] struct {
		*navSetView[E, W]
		*queueOps[E, W]
	}
	navSetDequeView[E, W any] struct {
		*navSetView[E, W]
		*queueOps[E, W]
		*dequeOps[E, W]
	}
)

// ends holds the queue-side operations of a view; nil fields are absent
// capabilities.
type ends[E, W any] struct {
	queue *queueOps[E, W]
	deque *dequeOps[E, W]
	both  *endsOps[E, W]
}

func endsOf[E, W any](c collections.Collection[W], t Transformer[E, W]) ends[E, W] {
	var e ends[E, W]
	if q, ok := c.(collections.Queue[W]); ok {
		e.queue = &queueOps[E, W]{q: q, t: t}
	}
	if d, ok := c.(collections.Deque[W]); ok {
		e.deque = &dequeOps[E, W]{d: d, t: t}
		e.both = &endsOps[E, W]{d: d, t: t}
	}
	return e
}

// specialize builds the most specific view of c. Every factory in this
// package, and every derived view, goes through it.
func specialize[E, W any](c collections.Collection[W], t Transformer[E, W]) collections.Collection[E] {
	base := newCollectionView(c, t)
	e := endsOf(c, t)

	var v collections.Collection[E]
	switch x := c.(type) {
	case collections.List[W]:
		l := &listView[E, W]{collectionView: base, l: x}
		if _, ok := c.(collections.RandomAccess); ok {
			ra := &raListView[E, W]{listView: l}
			switch {
			case e.deque != nil:
				v = &raListDequeView[E, W]{ra, e.queue, e.deque, e.both}
			case e.queue != nil:
				v = &raListQueueView[E, W]{ra, e.queue}
			default:
				v = ra
			}
			break
		}
		switch {
		case e.deque != nil:
			v = &listDequeView[E, W]{l, e.queue, e.deque, e.both}
		case e.queue != nil:
			v = &listQueueView[E, W]{l, e.queue}
		default:
			v = l
		}

	case collections.NavigableSet[W]:
		s := newNavSetView(newSortedSetView[E, W](newSetView[E, W](base, x), x), x)
		switch {
		case e.deque != nil:
			v = &navSetDequeView[E, W]{s, e.queue, e.deque}
		case e.queue != nil:
			v = &navSetQueueView[E, W]{s, e.queue}
		default:
			v = s
		}

	case collections.SortedSet[W]:
		s := newSortedSetView[E, W](newSetView[E, W](base, x), x)
		switch {
		case e.deque != nil:
			v = &sortedSetDequeView[E, W]{s, e.queue, e.deque, e.both}
		case e.queue != nil:
			v = &sortedSetQueueView[E, W]{s, e.queue}
		default:
			v = s
		}

	case collections.Set[W]:
		s := newSetView[E, W](base, x)
		switch {
		case e.deque != nil:
			v = &setDequeView[E, W]{s, e.queue, e.deque, e.both}
		case e.queue != nil:
			v = &setQueueView[E, W]{s, e.queue}
		default:
			v = s
		}

	default:
		switch {
		case e.deque != nil:
			v = &dequeView[E, W]{base, e.queue, e.deque, e.both}
		case e.queue != nil:
			v = &queueView[E, W]{base, e.queue}
		default:
			v = base
		}
	}
	base.self = v
	return v
}
