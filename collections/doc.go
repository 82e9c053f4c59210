// Package collections defines the container contracts used throughout this
// module, together with a small set of reference containers that satisfy
// them.
//
// # Overview
//
// Go's standard library has slices, maps and container/list, but no shared
// interfaces for lists, sets, queues or ordered maps. The interfaces in this
// package fill that gap so that code written against a capability (a
// [NavigableSet], a [Deque], a [SortedMap], ...) can accept any container
// providing it:
//
//	Iterable ─ Collection ─┬─ List
//	                       ├─ Set ─ SortedSet ─ NavigableSet
//	                       └─ Queue ─ Deque
//
//	Map ─ SortedMap ─ NavigableMap
//
// The transformers package builds type-converting views on top of these
// contracts.
//
// # Conventions
//
// Queries that may find nothing return (T, bool). Operations that mutate
// return an error, so a container can refuse a mutation with
// [ErrUnsupported], report bounds violations with [ErrIndexOutOfRange], and
// so on. Callers match these with [errors.Is].
//
// Membership tests, targeted removals and lookups accept any value:
//
//	set := collections.NewHashSet(1, 2, 3)
//	set.Contains(2)     // true
//	set.Contains("two") // false, not an int
//
// A value of the wrong type is never an error; it is simply not present.
//
// # Reference containers
//
//   - [ArrayList]     slice-backed List with random access
//   - [LinkedList]    doubly linked List that is also a Deque
//   - [HashSet]       Go-map-backed Set
//   - [TreeSet]       NavigableSet ordered by a [Comparator]
//   - [HashMap]       Go-map-backed Map
//   - [TreeMap]       NavigableMap ordered by a [Comparator]
//   - [ImmutableList] read-only List; every mutation fails with ErrUnsupported
//
// TreeMap, TreeSet and ImmutableList are backed by the persistent structures
// of github.com/benbjohnson/immutable. Their iterators walk a snapshot, so a
// map may be modified while it is being iterated.
//
// # Thread safety
//
// None of the reference containers are safe for concurrent mutation.
package collections
