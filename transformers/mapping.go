package transformers

import (
	"fmt"
	"iter"
	"strings"
	"sync"

	"github.com/hasbyte1/go-transformers/collections"
)

// mapView presents a Map[KW, VW] as a Map[K, V].
type mapView[K, KW, V, VW any] struct {
	m      collections.Map[KW, VW]
	keys   Transformer[K, KW]
	values Transformer[V, VW]
	self   any

	keySet   func() collections.Set[K]
	valueSet func() collections.Collection[V]
	entrySet func() collections.Set[collections.Entry[K, V]]
}

func newMapView[K, KW, V, VW any](m collections.Map[KW, VW], keys Transformer[K, KW], values Transformer[V, VW]) *mapView[K, KW, V, VW] {
	v := &mapView[K, KW, V, VW]{m: m, keys: keys, values: values}
	v.keySet = sync.OnceValue(func() collections.Set[K] {
		return OfSet(m.KeySet(), keys)
	})
	v.valueSet = sync.OnceValue(func() collections.Collection[V] {
		return OfCollection(m.Values(), values)
	})
	v.entrySet = sync.OnceValue(func() collections.Set[collections.Entry[K, V]] {
		return OfSet(m.EntrySet(), NewEntryTransformer(keys, values))
	})
	return v
}

// OfMap returns a view of m converting keys with keys and values with
// values. The result is a SortedMap or a NavigableMap when m is. A nil map
// gives nil, and two identity transformers give m itself.
func OfMap[K, KW, V, VW any](m collections.Map[KW, VW], keys Transformer[K, KW], values Transformer[V, VW]) collections.Map[K, V] {
	if absent(m) {
		return nil
	}
	if id, ok := sameMap[collections.Map[K, V]](m, keys, values); ok {
		return id
	}
	return specializeMap[K, KW, V, VW](m, keys, values)
}

// sameMap returns m as a T when both transformers are identities.
func sameMap[T, K, KW, V, VW any](m collections.Map[KW, VW], keys Transformer[K, KW], values Transformer[V, VW]) (T, bool) {
	if IsIdentity(keys) && IsIdentity(values) {
		id, ok := m.(T)
		return id, ok
	}
	var zero T
	return zero, false
}

func specializeMap[K, KW, V, VW any](m collections.Map[KW, VW], keys Transformer[K, KW], values Transformer[V, VW]) collections.Map[K, V] {
	base := newMapView(m, keys, values)
	var v collections.Map[K, V] = base
	switch x := m.(type) {
	case collections.NavigableMap[KW, VW]:
		v = newNavMapView(newSortedMapView[K, KW, V, VW](base, x), x)
	case collections.SortedMap[KW, VW]:
		v = newSortedMapView[K, KW, V, VW](base, x)
	}
	base.self = v
	return v
}

func (v *mapView[K, KW, V, VW]) Len() int      { return v.m.Len() }
func (v *mapView[K, KW, V, VW]) IsEmpty() bool { return v.m.IsEmpty() }

func (v *mapView[K, KW, V, VW]) ContainsKey(o any) bool {
	return v.m.ContainsKey(v.keys.Unbounded().ToWrapped(o))
}

func (v *mapView[K, KW, V, VW]) ContainsValue(o any) bool {
	return v.m.ContainsValue(v.values.Unbounded().ToWrapped(o))
}

func (v *mapView[K, KW, V, VW]) Get(o any) (V, bool) {
	w, ok := v.m.Get(v.keys.Unbounded().ToWrapped(o))
	return from(v.values, w, ok)
}

// GetOrDefault returns def itself, unconverted, when o is not mapped.
func (v *mapView[K, KW, V, VW]) GetOrDefault(o any, def V) V {
	if val, ok := v.Get(o); ok {
		return val
	}
	return def
}

// result converts the value a write reports: the previous value for puts
// and removals, the new value for the compute family.
func (v *mapView[K, KW, V, VW]) result(w VW, ok bool, err error) (V, bool, error) {
	if err != nil || !ok {
		var zero V
		return zero, false, err
	}
	return v.values.FromWrapped(w), true, nil
}

func (v *mapView[K, KW, V, VW]) Put(k K, val V) (V, bool, error) {
	return v.result(v.m.Put(v.keys.ToWrapped(k), v.values.ToWrapped(val)))
}

func (v *mapView[K, KW, V, VW]) PutIfAbsent(k K, val V) (V, bool, error) {
	return v.result(v.m.PutIfAbsent(v.keys.ToWrapped(k), v.values.ToWrapped(val)))
}

func (v *mapView[K, KW, V, VW]) PutAll(o collections.Map[K, V]) error {
	return v.m.PutAll(OfMap(o, v.keys.Invert(), v.values.Invert()))
}

func (v *mapView[K, KW, V, VW]) Remove(o any) (V, bool, error) {
	return v.result(v.m.Remove(v.keys.Unbounded().ToWrapped(o)))
}

func (v *mapView[K, KW, V, VW]) RemoveEntry(k, val any) (bool, error) {
	return v.m.RemoveEntry(v.keys.Unbounded().ToWrapped(k), v.values.Unbounded().ToWrapped(val))
}

func (v *mapView[K, KW, V, VW]) Replace(k K, val V) (V, bool, error) {
	return v.result(v.m.Replace(v.keys.ToWrapped(k), v.values.ToWrapped(val)))
}

func (v *mapView[K, KW, V, VW]) CompareAndReplace(k K, old, val V) (bool, error) {
	return v.m.CompareAndReplace(v.keys.ToWrapped(k), v.values.ToWrapped(old), v.values.ToWrapped(val))
}

func (v *mapView[K, KW, V, VW]) ReplaceAll(fn func(K, V) V) error {
	return v.m.ReplaceAll(func(kw KW, vw VW) VW {
		return v.values.ToWrapped(fn(v.keys.FromWrapped(kw), v.values.FromWrapped(vw)))
	})
}

// wrapResult converts the result of a compute callback.
func (v *mapView[K, KW, V, VW]) wrapResult(val V, ok bool) (VW, bool) {
	if !ok {
		var zero VW
		return zero, false
	}
	return v.values.ToWrapped(val), true
}

func (v *mapView[K, KW, V, VW]) ComputeIfAbsent(k K, fn func(K) (V, bool)) (V, bool, error) {
	return v.result(v.m.ComputeIfAbsent(v.keys.ToWrapped(k), func(kw KW) (VW, bool) {
		return v.wrapResult(fn(v.keys.FromWrapped(kw)))
	}))
}

func (v *mapView[K, KW, V, VW]) ComputeIfPresent(k K, fn func(K, V) (V, bool)) (V, bool, error) {
	return v.result(v.m.ComputeIfPresent(v.keys.ToWrapped(k), func(kw KW, vw VW) (VW, bool) {
		return v.wrapResult(fn(v.keys.FromWrapped(kw), v.values.FromWrapped(vw)))
	}))
}

// Compute passes the zero V, not a converted zero VW, when k is absent.
func (v *mapView[K, KW, V, VW]) Compute(k K, fn func(K, V, bool) (V, bool)) (V, bool, error) {
	return v.result(v.m.Compute(v.keys.ToWrapped(k), func(kw KW, vw VW, present bool) (VW, bool) {
		var cur V
		if present {
			cur = v.values.FromWrapped(vw)
		}
		return v.wrapResult(fn(v.keys.FromWrapped(kw), cur, present))
	}))
}

func (v *mapView[K, KW, V, VW]) Merge(k K, val V, fn func(old, v V) (V, bool)) (V, bool, error) {
	return v.result(v.m.Merge(v.keys.ToWrapped(k), v.values.ToWrapped(val), func(old, nv VW) (VW, bool) {
		return v.wrapResult(fn(v.values.FromWrapped(old), v.values.FromWrapped(nv)))
	}))
}

func (v *mapView[K, KW, V, VW]) Clear() error { return v.m.Clear() }

// KeySet, Values and EntrySet are built on first use and cached.

func (v *mapView[K, KW, V, VW]) KeySet() collections.Set[K] { return v.keySet() }

func (v *mapView[K, KW, V, VW]) Values() collections.Collection[V] { return v.valueSet() }

func (v *mapView[K, KW, V, VW]) EntrySet() collections.Set[collections.Entry[K, V]] {
	return v.entrySet()
}

func (v *mapView[K, KW, V, VW]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for kw, vw := range v.m.All() {
			if !yield(v.keys.FromWrapped(kw), v.values.FromWrapped(vw)) {
				return
			}
		}
	}
}

// Equal delegates to the wrapped map, wrapping another Map[K, V] with the
// inverse transformers first.
func (v *mapView[K, KW, V, VW]) Equal(o any) bool {
	if o == v.self {
		return true
	}
	if other, ok := o.(collections.Map[K, V]); ok {
		return v.m.Equal(OfMap(other, v.keys.Invert(), v.values.Invert()))
	}
	return v.m.Equal(o)
}

func (v *mapView[K, KW, V, VW]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	for k, val := range v.All() {
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "%v=%v", k, val)
	}
	b.WriteByte('}')
	return b.String()
}

// ─────────────────────────────────────────────────────────────────────────────
// Sorted maps
// ─────────────────────────────────────────────────────────────────────────────

type sortedMapView[K, KW, V, VW any] struct {
	*mapView[K, KW, V, VW]
	sm         collections.SortedMap[KW, VW]
	comparator func() collections.Comparator[K]
}

func newSortedMapView[K, KW, V, VW any](m *mapView[K, KW, V, VW], sm collections.SortedMap[KW, VW]) *sortedMapView[K, KW, V, VW] {
	return &sortedMapView[K, KW, V, VW]{
		mapView: m,
		sm:      sm,
		comparator: sync.OnceValue(func() collections.Comparator[K] {
			return OfComparator(sm.Comparator(), m.keys)
		}),
	}
}

// OfSortedMap returns a view of m. The result is a NavigableMap when m is
// one.
func OfSortedMap[K, KW, V, VW any](m collections.SortedMap[KW, VW], keys Transformer[K, KW], values Transformer[V, VW]) collections.SortedMap[K, V] {
	if absent(m) {
		return nil
	}
	if id, ok := sameMap[collections.SortedMap[K, V]](m, keys, values); ok {
		return id
	}
	return specializeMap[K, KW, V, VW](m, keys, values).(collections.SortedMap[K, V])
}

func (v *sortedMapView[K, KW, V, VW]) Comparator() collections.Comparator[K] { return v.comparator() }

func (v *sortedMapView[K, KW, V, VW]) FirstKey() (K, bool) {
	w, ok := v.sm.FirstKey()
	return from(v.keys, w, ok)
}

func (v *sortedMapView[K, KW, V, VW]) LastKey() (K, bool) {
	w, ok := v.sm.LastKey()
	return from(v.keys, w, ok)
}

func (v *sortedMapView[K, KW, V, VW]) SubMap(lo, hi K) (collections.SortedMap[K, V], error) {
	sub, err := v.sm.SubMap(v.keys.ToWrapped(lo), v.keys.ToWrapped(hi))
	if err != nil {
		return nil, err
	}
	return OfSortedMap(sub, v.keys, v.values), nil
}

func (v *sortedMapView[K, KW, V, VW]) HeadMap(hi K) (collections.SortedMap[K, V], error) {
	sub, err := v.sm.HeadMap(v.keys.ToWrapped(hi))
	if err != nil {
		return nil, err
	}
	return OfSortedMap(sub, v.keys, v.values), nil
}

func (v *sortedMapView[K, KW, V, VW]) TailMap(lo K) (collections.SortedMap[K, V], error) {
	sub, err := v.sm.TailMap(v.keys.ToWrapped(lo))
	if err != nil {
		return nil, err
	}
	return OfSortedMap(sub, v.keys, v.values), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Navigable maps
// ─────────────────────────────────────────────────────────────────────────────

type navMapView[K, KW, V, VW any] struct {
	*sortedMapView[K, KW, V, VW]
	nm collections.NavigableMap[KW, VW]

	descending func() collections.NavigableMap[K, V]
	navKeys    func() collections.NavigableSet[K]
	descKeys   func() collections.NavigableSet[K]
}

func newNavMapView[K, KW, V, VW any](m *sortedMapView[K, KW, V, VW], nm collections.NavigableMap[KW, VW]) *navMapView[K, KW, V, VW] {
	return &navMapView[K, KW, V, VW]{
		sortedMapView: m,
		nm:            nm,
		descending: sync.OnceValue(func() collections.NavigableMap[K, V] {
			return OfNavigableMap(nm.DescendingMap(), m.keys, m.values)
		}),
		navKeys: sync.OnceValue(func() collections.NavigableSet[K] {
			return OfNavigableSet(nm.NavigableKeySet(), m.keys)
		}),
		descKeys: sync.OnceValue(func() collections.NavigableSet[K] {
			return OfNavigableSet(nm.DescendingKeySet(), m.keys)
		}),
	}
}

// OfNavigableMap returns a view of m.
func OfNavigableMap[K, KW, V, VW any](m collections.NavigableMap[KW, VW], keys Transformer[K, KW], values Transformer[V, VW]) collections.NavigableMap[K, V] {
	if absent(m) {
		return nil
	}
	if id, ok := sameMap[collections.NavigableMap[K, V]](m, keys, values); ok {
		return id
	}
	return specializeMap[K, KW, V, VW](m, keys, values).(collections.NavigableMap[K, V])
}

// entry converts a navigation result. The entry stays a projection of the
// one the wrapped map returned.
func (v *navMapView[K, KW, V, VW]) entry(e collections.Entry[KW, VW], ok bool) (collections.Entry[K, V], bool) {
	if !ok {
		return nil, false
	}
	return OfEntry(e, v.keys, v.values), true
}

func (v *navMapView[K, KW, V, VW]) polled(e collections.Entry[KW, VW], err error) (collections.Entry[K, V], error) {
	if err != nil {
		return nil, err
	}
	return OfEntry(e, v.keys, v.values), nil
}

func (v *navMapView[K, KW, V, VW]) LowerEntry(k K) (collections.Entry[K, V], bool) {
	return v.entry(v.nm.LowerEntry(v.keys.ToWrapped(k)))
}

func (v *navMapView[K, KW, V, VW]) FloorEntry(k K) (collections.Entry[K, V], bool) {
	return v.entry(v.nm.FloorEntry(v.keys.ToWrapped(k)))
}

func (v *navMapView[K, KW, V, VW]) CeilingEntry(k K) (collections.Entry[K, V], bool) {
	return v.entry(v.nm.CeilingEntry(v.keys.ToWrapped(k)))
}

func (v *navMapView[K, KW, V, VW]) HigherEntry(k K) (collections.Entry[K, V], bool) {
	return v.entry(v.nm.HigherEntry(v.keys.ToWrapped(k)))
}

func (v *navMapView[K, KW, V, VW]) LowerKey(k K) (K, bool) {
	w, ok := v.nm.LowerKey(v.keys.ToWrapped(k))
	return from(v.keys, w, ok)
}

func (v *navMapView[K, KW, V, VW]) FloorKey(k K) (K, bool) {
	w, ok := v.nm.FloorKey(v.keys.ToWrapped(k))
	return from(v.keys, w, ok)
}

func (v *navMapView[K, KW, V, VW]) CeilingKey(k K) (K, bool) {
	w, ok := v.nm.CeilingKey(v.keys.ToWrapped(k))
	return from(v.keys, w, ok)
}

func (v *navMapView[K, KW, V, VW]) HigherKey(k K) (K, bool) {
	w, ok := v.nm.HigherKey(v.keys.ToWrapped(k))
	return from(v.keys, w, ok)
}

func (v *navMapView[K, KW, V, VW]) FirstEntry() (collections.Entry[K, V], bool) {
	return v.entry(v.nm.FirstEntry())
}

func (v *navMapView[K, KW, V, VW]) LastEntry() (collections.Entry[K, V], bool) {
	return v.entry(v.nm.LastEntry())
}

func (v *navMapView[K, KW, V, VW]) PollFirstEntry() (collections.Entry[K, V], error) {
	return v.polled(v.nm.PollFirstEntry())
}

func (v *navMapView[K, KW, V, VW]) PollLastEntry() (collections.Entry[K, V], error) {
	return v.polled(v.nm.PollLastEntry())
}

// DescendingMap, NavigableKeySet and DescendingKeySet are built once and
// cached.

func (v *navMapView[K, KW, V, VW]) DescendingMap() collections.NavigableMap[K, V] {
	return v.descending()
}

func (v *navMapView[K, KW, V, VW]) NavigableKeySet() collections.NavigableSet[K] { return v.navKeys() }

func (v *navMapView[K, KW, V, VW]) DescendingKeySet() collections.NavigableSet[K] { return v.descKeys() }

func (v *navMapView[K, KW, V, VW]) NavigableSubMap(lo K, loInclusive bool, hi K, hiInclusive bool) (collections.NavigableMap[K, V], error) {
	sub, err := v.nm.NavigableSubMap(v.keys.ToWrapped(lo), loInclusive, v.keys.ToWrapped(hi), hiInclusive)
	if err != nil {
		return nil, err
	}
	return OfNavigableMap(sub, v.keys, v.values), nil
}

func (v *navMapView[K, KW, V, VW]) NavigableHeadMap(hi K, inclusive bool) (collections.NavigableMap[K, V], error) {
	sub, err := v.nm.NavigableHeadMap(v.keys.ToWrapped(hi), inclusive)
	if err != nil {
		return nil, err
	}
	return OfNavigableMap(sub, v.keys, v.values), nil
}

func (v *navMapView[K, KW, V, VW]) NavigableTailMap(lo K, inclusive bool) (collections.NavigableMap[K, V], error) {
	sub, err := v.nm.NavigableTailMap(v.keys.ToWrapped(lo), inclusive)
	if err != nil {
		return nil, err
	}
	return OfNavigableMap(sub, v.keys, v.values), nil
}
