package collections

import "fmt"

// SimpleEntry is a key/value pair that belongs to no map.
type SimpleEntry[K, V any] struct {
	key      K
	value    V
	readOnly bool
}

// NewSimpleEntry returns a detached entry whose value can be replaced.
func NewSimpleEntry[K, V any](k K, v V) *SimpleEntry[K, V] {
	return &SimpleEntry[K, V]{key: k, value: v}
}

// NewReadOnlyEntry returns a detached entry whose SetValue fails with
// [ErrUnsupported]. Navigation methods of [TreeMap] return these.
func NewReadOnlyEntry[K, V any](k K, v V) *SimpleEntry[K, V] {
	return &SimpleEntry[K, V]{key: k, value: v, readOnly: true}
}

// Key returns the key.
func (e *SimpleEntry[K, V]) Key() K { return e.key }

// Value returns the value.
func (e *SimpleEntry[K, V]) Value() V { return e.value }

// SetValue replaces the value and returns the previous one.
func (e *SimpleEntry[K, V]) SetValue(v V) (V, error) {
	if e.readOnly {
		var zero V
		return zero, ErrUnsupported
	}
	old := e.value
	e.value = v
	return old, nil
}

// Equal reports whether o is an Entry[K, V] with an equal key and value.
func (e *SimpleEntry[K, V]) Equal(o any) bool { return EqualEntries[K, V](e, o) }

// String returns "(key, value)".
func (e *SimpleEntry[K, V]) String() string {
	return fmt.Sprintf("(%v, %v)", e.key, e.value)
}
