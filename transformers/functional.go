package transformers

// functional is a Transformer over a pair of functions. It and its inverse
// are built together and point at each other.
type functional[E, W any] struct {
	to      func(E) W
	from    func(W) E
	inverse *functional[W, E]
	loose   Transformer[any, any]
}

// NewFunctional returns a Transformer that converts with toWrapped and
// fromWrapped. Its inverse swaps the two functions, and
// t.Invert().Invert() is t itself.
//
//	codes := transformers.NewFunctional(
//	    func(label string) int { return int(label[0]-'a') + 1 },
//	    func(code int) string { return string(rune('a' + code - 1)) },
//	)
func NewFunctional[E, W any](toWrapped func(E) W, fromWrapped func(W) E) Transformer[E, W] {
	t := &functional[E, W]{to: toWrapped, from: fromWrapped}
	inv := &functional[W, E]{to: fromWrapped, from: toWrapped, inverse: t}
	t.inverse = inv
	t.loose = &unbounded[E, W]{t: t}
	inv.loose = &unbounded[W, E]{t: inv}
	return t
}

func (f *functional[E, W]) ToWrapped(e E) W { return f.to(e) }

func (f *functional[E, W]) FromWrapped(w W) E { return f.from(w) }

func (f *functional[E, W]) Invert() Transformer[W, E] { return f.inverse }

func (f *functional[E, W]) Unbounded() Transformer[any, any] { return f.loose }
