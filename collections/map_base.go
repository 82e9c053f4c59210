package collections

import (
	"fmt"
	"iter"
	"strings"
	"sync"
)

// mapCore is what a concrete map provides; abstractMap derives the rest of
// [Map] from it.
type mapCore[K, V any] interface {
	Len() int
	Clear() error

	lookup(k K) (V, bool)
	// store maps k to v, returning the previous value.
	store(k K, v V) (V, bool, error)
	// delete removes k, returning the removed value.
	delete(k K) (V, bool, error)
	// keyOf narrows an untyped key; false means it cannot be a key.
	keyOf(o any) (K, bool)
	// entries iterates live entries; Remove deletes from the map.
	entries() Iterator[Entry[K, V]]
}

type abstractMap[K, V any] struct {
	self mapCore[K, V]

	keysOnce    func() Set[K]
	valuesOnce  func() Collection[V]
	entriesOnce func() Set[Entry[K, V]]
}

func (m *abstractMap[K, V]) init(self mapCore[K, V]) {
	m.self = self
	m.keysOnce = sync.OnceValue(func() Set[K] { return newKeySet(self) })
	m.valuesOnce = sync.OnceValue(func() Collection[V] { return newValuesView(self) })
	m.entriesOnce = sync.OnceValue(func() Set[Entry[K, V]] { return newEntrySet(self) })
}

// IsEmpty reports whether there are no mappings.
func (m *abstractMap[K, V]) IsEmpty() bool { return m.self.Len() == 0 }

// ContainsKey reports whether o is a key.
func (m *abstractMap[K, V]) ContainsKey(o any) bool {
	_, ok := m.Get(o)
	return ok
}

// ContainsValue reports whether some key maps to o.
func (m *abstractMap[K, V]) ContainsValue(o any) bool {
	for it := m.self.entries(); it.HasNext(); {
		e, _ := it.Next()
		if ValuesEqual(o, e.Value()) {
			return true
		}
	}
	return false
}

// Get returns the value for o.
func (m *abstractMap[K, V]) Get(o any) (V, bool) {
	k, ok := m.self.keyOf(o)
	if !ok {
		var zero V
		return zero, false
	}
	return m.self.lookup(k)
}

// GetOrDefault returns the value for o, or def when there is none.
func (m *abstractMap[K, V]) GetOrDefault(o any, def V) V {
	if v, ok := m.Get(o); ok {
		return v
	}
	return def
}

// Put maps k to v and returns the previous value.
func (m *abstractMap[K, V]) Put(k K, v V) (V, bool, error) { return m.self.store(k, v) }

// PutIfAbsent maps k to v unless k is mapped, returning the existing value
// in that case.
func (m *abstractMap[K, V]) PutIfAbsent(k K, v V) (V, bool, error) {
	if old, ok := m.self.lookup(k); ok {
		return old, true, nil
	}
	_, _, err := m.self.store(k, v)
	var zero V
	return zero, false, err
}

// PutAll copies every mapping of o.
func (m *abstractMap[K, V]) PutAll(o Map[K, V]) error {
	if o == nil {
		return nil
	}
	type pair struct {
		k K
		v V
	}
	var pairs []pair
	for k, v := range o.All() {
		pairs = append(pairs, pair{k, v})
	}
	for _, p := range pairs {
		if _, _, err := m.self.store(p.k, p.v); err != nil {
			return err
		}
	}
	return nil
}

// Remove removes the mapping for o and returns its value.
func (m *abstractMap[K, V]) Remove(o any) (V, bool, error) {
	k, ok := m.self.keyOf(o)
	if !ok {
		var zero V
		return zero, false, nil
	}
	return m.self.delete(k)
}

// RemoveEntry removes ko only while it maps to vo.
func (m *abstractMap[K, V]) RemoveEntry(ko, vo any) (bool, error) {
	k, ok := m.self.keyOf(ko)
	if !ok {
		return false, nil
	}
	cur, ok := m.self.lookup(k)
	if !ok || !ValuesEqual(vo, cur) {
		return false, nil
	}
	_, _, err := m.self.delete(k)
	return err == nil, err
}

// Replace maps k to v only if k is present.
func (m *abstractMap[K, V]) Replace(k K, v V) (V, bool, error) {
	if _, ok := m.self.lookup(k); !ok {
		var zero V
		return zero, false, nil
	}
	return m.self.store(k, v)
}

// CompareAndReplace maps k to v only while it maps to old.
func (m *abstractMap[K, V]) CompareAndReplace(k K, old, v V) (bool, error) {
	cur, ok := m.self.lookup(k)
	if !ok || !ValuesEqual(old, cur) {
		return false, nil
	}
	_, _, err := m.self.store(k, v)
	return err == nil, err
}

// ReplaceAll replaces each element with the result of op.
func (m *abstractMap[K, V]) ReplaceAll(fn func(K, V) V) error {
	for it := m.self.entries(); it.HasNext(); {
		e, _ := it.Next()
		if _, _, err := m.self.store(e.Key(), fn(e.Key(), e.Value())); err != nil {
			return err
		}
	}
	return nil
}

// ComputeIfAbsent stores the result of fn for an absent k.
func (m *abstractMap[K, V]) ComputeIfAbsent(k K, fn func(K) (V, bool)) (V, bool, error) {
	if cur, ok := m.self.lookup(k); ok {
		return cur, true, nil
	}
	v, ok := fn(k)
	if !ok {
		return v, false, nil
	}
	if _, _, err := m.self.store(k, v); err != nil {
		var zero V
		return zero, false, err
	}
	return v, true, nil
}

// ComputeIfPresent replaces or removes the value of a present k with the result of fn.
func (m *abstractMap[K, V]) ComputeIfPresent(k K, fn func(K, V) (V, bool)) (V, bool, error) {
	var zero V
	cur, ok := m.self.lookup(k)
	if !ok {
		return zero, false, nil
	}
	v, ok := fn(k, cur)
	return m.settle(k, true, v, ok)
}

// Compute replaces, stores or removes the value of k with the result of fn.
func (m *abstractMap[K, V]) Compute(k K, fn func(K, V, bool) (V, bool)) (V, bool, error) {
	cur, present := m.self.lookup(k)
	v, ok := fn(k, cur, present)
	return m.settle(k, present, v, ok)
}

// Merge stores v for an absent k, otherwise the result of fn on both values.
func (m *abstractMap[K, V]) Merge(k K, v V, fn func(old, v V) (V, bool)) (V, bool, error) {
	cur, present := m.self.lookup(k)
	if !present {
		return m.settle(k, false, v, true)
	}
	merged, ok := fn(cur, v)
	return m.settle(k, true, merged, ok)
}

// settle applies the result of a compute callback: a value is stored, "no
// value" removes k if it was present.
func (m *abstractMap[K, V]) settle(k K, present bool, v V, ok bool) (V, bool, error) {
	var zero V
	if !ok {
		if present {
			if _, _, err := m.self.delete(k); err != nil {
				return zero, false, err
			}
		}
		return zero, false, nil
	}
	if _, _, err := m.self.store(k, v); err != nil {
		return zero, false, err
	}
	return v, true, nil
}

// KeySet returns a live view of the keys.
func (m *abstractMap[K, V]) KeySet() Set[K] { return m.keysOnce() }

// Values returns a live view of the values.
func (m *abstractMap[K, V]) Values() Collection[V] { return m.valuesOnce() }

// EntrySet returns a live view of the mappings.
func (m *abstractMap[K, V]) EntrySet() Set[Entry[K, V]] { return m.entriesOnce() }

// All returns an iterator over the mappings.
func (m *abstractMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for it := m.self.entries(); it.HasNext(); {
			e, _ := it.Next()
			if !yield(e.Key(), e.Value()) {
				return
			}
		}
	}
}

// Equal reports whether o is a map holding the same mappings.
func (m *abstractMap[K, V]) Equal(o any) bool {
	return EqualMaps(m.self.(Map[K, V]), o)
}

// String renders the mappings in iteration order: "{k=v, k=v}".
func (m *abstractMap[K, V]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	for k, v := range m.All() {
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "%v=%v", k, v)
	}
	b.WriteByte('}')
	return b.String()
}

// ─────────────────────────────────────────────────────────────────────────────
// Entries
// ─────────────────────────────────────────────────────────────────────────────

// mapEntry is a live entry: Value reads the current mapping and SetValue
// writes through.
type mapEntry[K, V any] struct {
	m     mapCore[K, V]
	key   K
	value V
}

func (e *mapEntry[K, V]) Key() K { return e.key }

func (e *mapEntry[K, V]) Value() V {
	if v, ok := e.m.lookup(e.key); ok {
		e.value = v
	}
	return e.value
}

func (e *mapEntry[K, V]) SetValue(v V) (V, error) {
	old := e.Value()
	if _, _, err := e.m.store(e.key, v); err != nil {
		var zero V
		return zero, err
	}
	e.value = v
	return old, nil
}

func (e *mapEntry[K, V]) Equal(o any) bool { return EqualEntries[K, V](e, o) }

func (e *mapEntry[K, V]) String() string { return fmt.Sprintf("%v=%v", e.key, e.Value()) }

// ─────────────────────────────────────────────────────────────────────────────
// Views
// ─────────────────────────────────────────────────────────────────────────────

type keySet[K, V any] struct {
	collection[K]
	m mapCore[K, V]
}

func newKeySet[K, V any](m mapCore[K, V]) *keySet[K, V] {
	s := &keySet[K, V]{m: m}
	s.self = s
	return s
}

func (s *keySet[K, V]) Len() int { return s.m.Len() }

func (s *keySet[K, V]) Iterator() Iterator[K] {
	return &projectIter[K, V, K]{it: s.m.entries(), get: Entry[K, V].Key}
}

func (s *keySet[K, V]) Contains(o any) bool {
	k, ok := s.m.keyOf(o)
	if !ok {
		return false
	}
	_, ok = s.m.lookup(k)
	return ok
}

func (s *keySet[K, V]) Add(K) (bool, error) { return false, ErrUnsupported }

func (s *keySet[K, V]) Remove(o any) (bool, error) {
	k, ok := s.m.keyOf(o)
	if !ok {
		return false, nil
	}
	_, ok, err := s.m.delete(k)
	return ok, err
}

func (s *keySet[K, V]) Clear() error { return s.m.Clear() }

func (*keySet[K, V]) Distinct() {}

func (s *keySet[K, V]) Equal(o any) bool { return EqualSets[K](s, o) }

type valuesView[K, V any] struct {
	collection[V]
	m mapCore[K, V]
}

func newValuesView[K, V any](m mapCore[K, V]) *valuesView[K, V] {
	c := &valuesView[K, V]{m: m}
	c.self = c
	return c
}

func (c *valuesView[K, V]) Len() int { return c.m.Len() }

func (c *valuesView[K, V]) Iterator() Iterator[V] {
	return &projectIter[K, V, V]{it: c.m.entries(), get: Entry[K, V].Value}
}

func (c *valuesView[K, V]) Contains(o any) bool { return containsByIteration(c.Iterator(), o) }

func (c *valuesView[K, V]) Add(V) (bool, error) { return false, ErrUnsupported }

func (c *valuesView[K, V]) Remove(o any) (bool, error) { return removeByIteration(c.Iterator(), o) }

func (c *valuesView[K, V]) Clear() error { return c.m.Clear() }

// Equal is identity: a value collection has neither list nor set equality.
func (c *valuesView[K, V]) Equal(o any) bool {
	other, ok := o.(*valuesView[K, V])
	return ok && other == c
}

type entrySet[K, V any] struct {
	collection[Entry[K, V]]
	m mapCore[K, V]
}

func newEntrySet[K, V any](m mapCore[K, V]) *entrySet[K, V] {
	s := &entrySet[K, V]{m: m}
	s.self = s
	return s
}

func (s *entrySet[K, V]) Len() int { return s.m.Len() }

func (s *entrySet[K, V]) Iterator() Iterator[Entry[K, V]] { return s.m.entries() }

func (s *entrySet[K, V]) Contains(o any) bool {
	e, ok := o.(Entry[K, V])
	if !ok {
		return false
	}
	v, ok := s.m.lookup(e.Key())
	return ok && ValuesEqual(e.Value(), v)
}

func (s *entrySet[K, V]) Add(Entry[K, V]) (bool, error) { return false, ErrUnsupported }

func (s *entrySet[K, V]) Remove(o any) (bool, error) {
	if !s.Contains(o) {
		return false, nil
	}
	_, ok, err := s.m.delete(o.(Entry[K, V]).Key())
	return ok, err
}

func (s *entrySet[K, V]) Clear() error { return s.m.Clear() }

func (*entrySet[K, V]) Distinct() {}

func (s *entrySet[K, V]) Equal(o any) bool { return EqualSets[Entry[K, V]](s, o) }

// projectIter maps an entry iterator to one of its components.
type projectIter[K, V, T any] struct {
	it  Iterator[Entry[K, V]]
	get func(Entry[K, V]) T
}

func (p *projectIter[K, V, T]) HasNext() bool { return p.it.HasNext() }

func (p *projectIter[K, V, T]) Next() (T, bool) {
	e, ok := p.it.Next()
	if !ok {
		var zero T
		return zero, false
	}
	return p.get(e), true
}

func (p *projectIter[K, V, T]) Remove() error { return p.it.Remove() }
