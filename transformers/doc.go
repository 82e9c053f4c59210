// Package transformers provides live, bidirectional views over the
// containers of the collections package.
//
// A [Transformer] converts between the element type a caller wants to see
// (E) and the type a container actually stores (W). Wrapping a container
// with one gives a view of the same capability over E:
//
//	codes := collections.NewTreeSet(1, 2, 3)
//	labels := transformers.OfNavigableSet(codes, transformers.NewFunctional(
//		func(s string) int { return int(s[0]-'a') + 1 },
//		func(i int) string { return string(rune('a' + i - 1)) },
//	))
//	labels.First() // "a", true
//	labels.Remove("b")
//	codes.Contains(2) // false
//
// Views hold no elements of their own. Every read converts what the
// container currently holds, and every write converts its argument and
// goes to the container, so a view and its container never disagree.
//
// # Capabilities
//
// The factories ([OfCollection], [OfList], [OfSet], [OfQueue], [OfMap], ...)
// inspect the container and return the richest view it supports: a view of
// a container that is both a NavigableSet and a Deque satisfies both
// interfaces, and a view of a RandomAccess list is itself RandomAccess. A
// container that is both a List and a Set is viewed as a List; the set
// factories still return a Set view of it.
//
// Wrapping with an identity transformer, or with identity key and value
// transformers for maps, returns the container itself. Wrapping nil returns
// nil, and so does wrapping a nil pointer such as a nil *collections.HashSet.
//
// # Arguments of type any
//
// Operations such as Contains, Remove or Get take any. Views convert such
// arguments with the transformer's Unbounded form, which converts values of
// the view's element type and passes everything else through untouched. A
// nil or a value of an unrelated type therefore reaches the container as is,
// which normally reports it as absent.
//
// # Derived views
//
// Views returned by KeySet, Values, EntrySet, DescendingSet, DescendingMap,
// Comparator and the key-set methods of navigable maps are built on first
// use and cached. Sub-range views (SubList, SubSet, HeadMap, ...) are built
// on every call. All of them are views in turn.
//
// A view is as safe for concurrent use as its container, no more.
package transformers
