package collections

import "errors"

// Sentinel errors returned by container operations.
var (
	// ErrUnsupported is returned when a container does not support the
	// requested operation, e.g. any mutation of an [ImmutableList] or adding
	// to the key set of a map.
	ErrUnsupported = errors.New("collections: operation not supported")

	// ErrIndexOutOfRange is returned when an index is outside the valid
	// range of a list.
	ErrIndexOutOfRange = errors.New("collections: index out of range")

	// ErrNoSuchElement is returned by removals (Poll, Pop, PollFirst, ...)
	// on an empty container.
	ErrNoSuchElement = errors.New("collections: no such element")

	// ErrIllegalState is returned by Iterator.Remove and ListIterator.Set
	// when no element has been returned since the last structural change.
	ErrIllegalState = errors.New("collections: iterator has no current element")

	// ErrInvalidRange is returned when a sub-range is requested whose start
	// sorts after its end.
	ErrInvalidRange = errors.New("collections: range start is after range end")

	// ErrKeyOutOfRange is returned when a key lies outside the bounds of a
	// sub-map or sub-set.
	ErrKeyOutOfRange = errors.New("collections: key out of range")
)
