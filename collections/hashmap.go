package collections

// HashMap is a [Map] backed by a Go map. Iteration order is unspecified.
//
//	m := collections.NewHashMap[string, int]()
//	m.Put("a", 1)
//	m.Get("a")   // 1, true
//	m.Get(1)     // 0, false: not a string
type HashMap[K comparable, V any] struct {
	abstractMap[K, V]
	m map[K]V
}

// NewHashMap returns an empty HashMap.
func NewHashMap[K comparable, V any]() *HashMap[K, V] {
	return HashMapOf[K, V](nil)
}

// HashMapOf returns a HashMap holding a copy of src.
func HashMapOf[K comparable, V any](src map[K]V) *HashMap[K, V] {
	h := &HashMap[K, V]{m: make(map[K]V, len(src))}
	for k, v := range src {
		h.m[k] = v
	}
	h.init(h)
	return h
}

// Len returns the number of mappings.
func (h *HashMap[K, V]) Len() int { return len(h.m) }

// Clear removes every mapping.
func (h *HashMap[K, V]) Clear() error {
	clear(h.m)
	return nil
}

func (h *HashMap[K, V]) lookup(k K) (V, bool) {
	v, ok := h.m[k]
	return v, ok
}

func (h *HashMap[K, V]) store(k K, v V) (V, bool, error) {
	old, ok := h.m[k]
	h.m[k] = v
	return old, ok, nil
}

func (h *HashMap[K, V]) delete(k K) (V, bool, error) {
	old, ok := h.m[k]
	if ok {
		delete(h.m, k)
	}
	return old, ok, nil
}

func (h *HashMap[K, V]) keyOf(o any) (K, bool) {
	k, ok := o.(K)
	return k, ok
}

// entries walks the keys present when it was created, skipping any removed
// since.
func (h *HashMap[K, V]) entries() Iterator[Entry[K, V]] {
	keys := make([]K, 0, len(h.m))
	for k := range h.m {
		keys = append(keys, k)
	}
	return &hashMapIter[K, V]{h: h, keys: keys}
}

type hashMapIter[K comparable, V any] struct {
	h    *HashMap[K, V]
	keys []K
	pos  int
	last *K
}

func (it *hashMapIter[K, V]) HasNext() bool {
	for it.pos < len(it.keys) {
		if _, ok := it.h.m[it.keys[it.pos]]; ok {
			return true
		}
		it.pos++
	}
	return false
}

func (it *hashMapIter[K, V]) Next() (Entry[K, V], bool) {
	if !it.HasNext() {
		return nil, false
	}
	k := it.keys[it.pos]
	it.pos++
	it.last = &k
	return &mapEntry[K, V]{m: it.h, key: k, value: it.h.m[k]}, true
}

func (it *hashMapIter[K, V]) Remove() error {
	if it.last == nil {
		return ErrIllegalState
	}
	delete(it.h.m, *it.last)
	it.last = nil
	return nil
}
