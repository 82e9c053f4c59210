package transformers

import "reflect"

// Transformer converts between a wrapper type E, the type a view exposes,
// and a wrapped type W, the type the underlying container stores.
//
// Conversions are trusted: a view calls ToWrapped only with values of E
// that should exist on the wrapped side, and FromWrapped only with values
// read from the container. A transformer is expected to round-trip,
// FromWrapped(ToWrapped(e)) being equal to e, for every value it is used
// with; it does not have to be total.
type Transformer[E, W any] interface {
	ToWrapped(e E) W
	FromWrapped(w W) E

	// Invert returns the transformer with the two directions swapped.
	// Repeated calls return the same instance, and Invert().Invert()
	// behaves as the receiver.
	Invert() Transformer[W, E]

	// Unbounded returns a loosely typed form of the transformer: ToWrapped
	// converts values whose dynamic type is E and returns anything else,
	// including nil, unchanged; FromWrapped does the same for W. Views use
	// it for arguments declared as any, such as the operand of Contains.
	//
	// Unbounded().Invert() behaves as Invert().Unbounded(), and
	// Unbounded().Unbounded() is the same transformer.
	Unbounded() Transformer[any, any]
}

// ─────────────────────────────────────────────────────────────────────────────
// Identity
// ─────────────────────────────────────────────────────────────────────────────

type identity[E any] struct{}

// Identity returns the transformer that converts nothing. Wrapping a
// container with it returns the container itself.
func Identity[E any]() Transformer[E, E] { return identity[E]{} }

func (identity[E]) ToWrapped(e E) E                  { return e }
func (identity[E]) FromWrapped(e E) E                { return e }
func (identity[E]) Invert() Transformer[E, E]        { return identity[E]{} }
func (identity[E]) Unbounded() Transformer[any, any] { return identity[any]{} }

// IsIdentity reports whether t is an identity transformer.
func IsIdentity[E, W any](t Transformer[E, W]) bool {
	_, ok := any(t).(identity[E])
	return ok
}

// absent reports whether c is nil, either as an interface or as a nil
// pointer, map, slice, func or chan stored in one.
func absent(c any) bool {
	if c == nil {
		return true
	}
	switch v := reflect.ValueOf(c); v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// same returns c as a T when t is an identity transformer. Factories use it
// to hand back the wrapped container unchanged.
func same[E, W, T any](t Transformer[E, W], c any) (T, bool) {
	if !IsIdentity(t) {
		var zero T
		return zero, false
	}
	v, ok := c.(T)
	return v, ok
}

// ─────────────────────────────────────────────────────────────────────────────
// Unbounded
// ─────────────────────────────────────────────────────────────────────────────

type unbounded[E, W any] struct {
	t Transformer[E, W]
}

// NewUnbounded returns the loosely typed form of t, for use by
// Transformer implementations outside this package:
//
//	func (t *myTransformer) Unbounded() transformers.Transformer[any, any] {
//	    return t.loose // built once with transformers.NewUnbounded(t)
//	}
func NewUnbounded[E, W any](t Transformer[E, W]) Transformer[any, any] {
	if IsIdentity(t) {
		return identity[any]{}
	}
	return &unbounded[E, W]{t: t}
}

func (u *unbounded[E, W]) ToWrapped(v any) any {
	if e, ok := v.(E); ok {
		return u.t.ToWrapped(e)
	}
	return v
}

func (u *unbounded[E, W]) FromWrapped(v any) any {
	if w, ok := v.(W); ok {
		return u.t.FromWrapped(w)
	}
	return v
}

func (u *unbounded[E, W]) Invert() Transformer[any, any] { return u.t.Invert().Unbounded() }

func (u *unbounded[E, W]) Unbounded() Transformer[any, any] { return u }
