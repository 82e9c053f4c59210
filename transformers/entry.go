package transformers

import (
	"fmt"
	"reflect"
	"sync/atomic"

	"github.com/hasbyte1/go-transformers/collections"
)

// entryTransformer converts entries component-wise. Its inverse is built on
// first use and published with a compare-and-swap, so concurrent callers
// all observe the same instance.
type entryTransformer[K, KW, V, VW any] struct {
	keys    Transformer[K, KW]
	values  Transformer[V, VW]
	inverse atomic.Pointer[entryTransformer[KW, K, VW, V]]
	loose   *looseEntries[K, KW, V, VW]
}

// NewEntryTransformer returns a Transformer over entries that converts keys
// with keys and values with values. When both are identity transformers the
// result is the identity over entries.
//
// ToWrapped and FromWrapped return read-through projections of their
// argument; see [OfEntry].
func NewEntryTransformer[K, KW, V, VW any](keys Transformer[K, KW], values Transformer[V, VW]) Transformer[collections.Entry[K, V], collections.Entry[KW, VW]] {
	if IsIdentity(keys) && IsIdentity(values) {
		if id, ok := any(Identity[collections.Entry[K, V]]()).(Transformer[collections.Entry[K, V], collections.Entry[KW, VW]]); ok {
			return id
		}
	}
	return newEntryTransformer(keys, values)
}

func newEntryTransformer[K, KW, V, VW any](keys Transformer[K, KW], values Transformer[V, VW]) *entryTransformer[K, KW, V, VW] {
	t := &entryTransformer[K, KW, V, VW]{keys: keys, values: values}
	t.loose = &looseEntries[K, KW, V, VW]{t: t}
	return t
}

func (t *entryTransformer[K, KW, V, VW]) ToWrapped(e collections.Entry[K, V]) collections.Entry[KW, VW] {
	return OfEntry(e, t.keys.Invert(), t.values.Invert())
}

func (t *entryTransformer[K, KW, V, VW]) FromWrapped(e collections.Entry[KW, VW]) collections.Entry[K, V] {
	return OfEntry(e, t.keys, t.values)
}

func (t *entryTransformer[K, KW, V, VW]) Invert() Transformer[collections.Entry[KW, VW], collections.Entry[K, V]] {
	if inv := t.inverse.Load(); inv != nil {
		return inv
	}
	inv := newEntryTransformer(t.keys.Invert(), t.values.Invert())
	inv.inverse.Store(t)
	if t.inverse.CompareAndSwap(nil, inv) {
		return inv
	}
	return t.inverse.Load()
}

func (t *entryTransformer[K, KW, V, VW]) Unbounded() Transformer[any, any] { return t.loose }

// ─────────────────────────────────────────────────────────────────────────────
// Entry view
// ─────────────────────────────────────────────────────────────────────────────

// entryView presents an Entry[KW, VW] as an Entry[K, V].
type entryView[K, KW, V, VW any] struct {
	e      collections.Entry[KW, VW]
	keys   Transformer[K, KW]
	values Transformer[V, VW]
}

// OfEntry returns a view of e converting its key with keys and its value
// with values. The view reads through: Key and Value convert the current
// contents of e on every call, and SetValue converts its argument and
// writes it to e. A nil entry gives nil.
func OfEntry[K, KW, V, VW any](e collections.Entry[KW, VW], keys Transformer[K, KW], values Transformer[V, VW]) collections.Entry[K, V] {
	if absent(e) {
		return nil
	}
	if IsIdentity(keys) && IsIdentity(values) {
		if id, ok := e.(collections.Entry[K, V]); ok {
			return id
		}
	}
	return &entryView[K, KW, V, VW]{e: e, keys: keys, values: values}
}

func (v *entryView[K, KW, V, VW]) Key() K { return v.keys.FromWrapped(v.e.Key()) }

func (v *entryView[K, KW, V, VW]) Value() V { return v.values.FromWrapped(v.e.Value()) }

func (v *entryView[K, KW, V, VW]) SetValue(val V) (V, error) {
	old, err := v.e.SetValue(v.values.ToWrapped(val))
	if err != nil {
		var zero V
		return zero, err
	}
	return v.values.FromWrapped(old), nil
}

// Equal compares the converted key and value with those of any
// Entry[K, V].
func (v *entryView[K, KW, V, VW]) Equal(o any) bool {
	return collections.EqualEntries[K, V](v, o)
}

func (v *entryView[K, KW, V, VW]) String() string {
	return fmt.Sprintf("%v=%v", v.Key(), v.Value())
}

// ─────────────────────────────────────────────────────────────────────────────
// Unbounded entries
// ─────────────────────────────────────────────────────────────────────────────

// looseEntries is the unbounded form of an entry transformer. A typed
// Entry[K, V] is converted as a whole. A loosely typed Entry[any, any] is
// converted component by component; if neither component changes the
// argument itself is returned, otherwise a detached read-only entry.
type looseEntries[K, KW, V, VW any] struct {
	t *entryTransformer[K, KW, V, VW]
}

func (u *looseEntries[K, KW, V, VW]) ToWrapped(o any) any {
	switch e := o.(type) {
	case collections.Entry[K, V]:
		return u.t.ToWrapped(e)
	case collections.Entry[any, any]:
		return convertLoose[KW, VW](e, u.t.keys.Unbounded().ToWrapped, u.t.values.Unbounded().ToWrapped)
	}
	return o
}

func (u *looseEntries[K, KW, V, VW]) FromWrapped(o any) any {
	switch e := o.(type) {
	case collections.Entry[KW, VW]:
		return u.t.FromWrapped(e)
	case collections.Entry[any, any]:
		return convertLoose[K, V](e, u.t.keys.Unbounded().FromWrapped, u.t.values.Unbounded().FromWrapped)
	}
	return o
}

func (u *looseEntries[K, KW, V, VW]) Invert() Transformer[any, any] { return u.t.Invert().Unbounded() }

func (u *looseEntries[K, KW, V, VW]) Unbounded() Transformer[any, any] { return u }

// convertLoose converts both components of e. If neither conversion
// changed its component, e itself is returned. The result is typed
// Entry[K, V] when both converted components have those types.
func convertLoose[K, V any](e collections.Entry[any, any], keys, values func(any) any) any {
	k, v := keys(e.Key()), values(e.Value())
	if unchanged(e.Key(), k) && unchanged(e.Value(), v) {
		return e
	}
	tk, kok := k.(K)
	tv, vok := v.(V)
	if kok && vok {
		return &detachedEntry[K, V]{key: tk, value: tv, keys: keys, values: values}
	}
	return &detachedEntry[any, any]{key: k, value: v, keys: keys, values: values}
}

// unchanged reports whether a conversion handed back its input: the same
// dynamic type and ==. Values of incomparable types always count as
// changed.
func unchanged(before, after any) bool {
	if before == nil || after == nil {
		return before == nil && after == nil
	}
	if reflect.TypeOf(before) != reflect.TypeOf(after) || !reflect.ValueOf(before).Comparable() {
		return false
	}
	return before == after
}

// detachedEntry is the read-only result of a loose entry conversion. Its
// Equal converts the other entry's components the same way before
// comparing.
type detachedEntry[K, V any] struct {
	key    K
	value  V
	keys   func(any) any
	values func(any) any
}

func (d *detachedEntry[K, V]) Key() K   { return d.key }
func (d *detachedEntry[K, V]) Value() V { return d.value }

func (d *detachedEntry[K, V]) SetValue(V) (V, error) {
	var zero V
	return zero, collections.ErrUnsupported
}

func (d *detachedEntry[K, V]) Equal(o any) bool {
	var k, v any
	switch e := o.(type) {
	case collections.Entry[K, V]:
		k, v = e.Key(), e.Value()
	case collections.Entry[any, any]:
		k, v = e.Key(), e.Value()
	default:
		return false
	}
	return collections.ValuesEqual(d.key, d.keys(k)) && collections.ValuesEqual(d.value, d.values(v))
}

func (d *detachedEntry[K, V]) String() string { return fmt.Sprintf("%v=%v", d.key, d.value) }
