package transformers

import "github.com/hasbyte1/go-transformers/collections"

type comparatorView[E, W any] struct {
	c collections.Comparator[W]
	t Transformer[E, W]
}

// OfComparator returns a Comparator over E that converts both operands to
// W and compares them with c. A nil comparator gives nil, and the identity
// transformer gives c itself.
func OfComparator[E, W any](c collections.Comparator[W], t Transformer[E, W]) collections.Comparator[E] {
	if absent(c) {
		return nil
	}
	if id, ok := same[E, W, collections.Comparator[E]](t, c); ok {
		return id
	}
	return &comparatorView[E, W]{c: c, t: t}
}

func (v *comparatorView[E, W]) Compare(a, b E) int {
	return v.c.Compare(v.t.ToWrapped(a), v.t.ToWrapped(b))
}
