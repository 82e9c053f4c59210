package collections

import "iter"

// Entry is a key/value association, as produced by a map's entry set or
// its navigation methods.
type Entry[K, V any] interface {
	Key() K
	Value() V

	// SetValue replaces the value, writing through to the owning map when
	// the entry is live. It returns the previous value.
	SetValue(v V) (V, error)

	// Equal reports whether o is an Entry with an equal key and value.
	Equal(o any) bool
}

// Map associates keys with values.
//
// Lookups, membership tests and removals accept any value for the key (and
// value); a value of the wrong type is reported as absent.
//
// The compute family follows the usual contract: a callback returning false
// as its second result means "no value", removing any existing mapping.
type Map[K, V any] interface {
	Len() int
	IsEmpty() bool

	ContainsKey(k any) bool
	ContainsValue(v any) bool
	Get(k any) (V, bool)
	GetOrDefault(k any, def V) V

	// Put maps k to v, returning the previous value if there was one.
	Put(k K, v V) (V, bool, error)
	PutIfAbsent(k K, v V) (V, bool, error)
	PutAll(m Map[K, V]) error

	// Remove removes the mapping for k, returning the removed value.
	Remove(k any) (V, bool, error)
	// RemoveEntry removes k only while it is mapped to v.
	RemoveEntry(k, v any) (bool, error)

	// Replace replaces the value for k only if k is mapped.
	Replace(k K, v V) (V, bool, error)
	// CompareAndReplace replaces the value for k only while it equals old.
	CompareAndReplace(k K, old, v V) (bool, error)
	ReplaceAll(fn func(K, V) V) error

	ComputeIfAbsent(k K, fn func(K) (V, bool)) (V, bool, error)
	ComputeIfPresent(k K, fn func(K, V) (V, bool)) (V, bool, error)
	Compute(k K, fn func(k K, v V, present bool) (V, bool)) (V, bool, error)
	Merge(k K, v V, fn func(old, v V) (V, bool)) (V, bool, error)

	Clear() error

	// KeySet, Values and EntrySet return live views: changes to the map are
	// visible through them, and removals through them change the map.
	KeySet() Set[K]
	Values() Collection[V]
	EntrySet() Set[Entry[K, V]]

	All() iter.Seq2[K, V]

	// Equal reports whether o is a Map with the same mappings.
	Equal(o any) bool
}

// SortedMap is a [Map] whose keys are ordered by a [Comparator].
type SortedMap[K, V any] interface {
	Map[K, V]

	Comparator() Comparator[K]
	FirstKey() (K, bool)
	LastKey() (K, bool)

	// SubMap returns a live view of the keys in [from, to).
	SubMap(from, to K) (SortedMap[K, V], error)
	HeadMap(to K) (SortedMap[K, V], error)
	TailMap(from K) (SortedMap[K, V], error)
}

// NavigableMap is a [SortedMap] with closest-match queries.
type NavigableMap[K, V any] interface {
	SortedMap[K, V]

	LowerEntry(k K) (Entry[K, V], bool)
	FloorEntry(k K) (Entry[K, V], bool)
	CeilingEntry(k K) (Entry[K, V], bool)
	HigherEntry(k K) (Entry[K, V], bool)

	LowerKey(k K) (K, bool)
	FloorKey(k K) (K, bool)
	CeilingKey(k K) (K, bool)
	HigherKey(k K) (K, bool)

	FirstEntry() (Entry[K, V], bool)
	LastEntry() (Entry[K, V], bool)
	PollFirstEntry() (Entry[K, V], error)
	PollLastEntry() (Entry[K, V], error)

	DescendingMap() NavigableMap[K, V]
	NavigableKeySet() NavigableSet[K]
	DescendingKeySet() NavigableSet[K]

	NavigableSubMap(from K, fromInclusive bool, to K, toInclusive bool) (NavigableMap[K, V], error)
	NavigableHeadMap(to K, inclusive bool) (NavigableMap[K, V], error)
	NavigableTailMap(from K, inclusive bool) (NavigableMap[K, V], error)
}
