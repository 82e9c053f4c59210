package transformers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-transformers/collections"
	"github.com/hasbyte1/go-transformers/transformers"
)

func TestIdentity(t *testing.T) {
	id := transformers.Identity[string]()
	assert.Equal(t, "x", id.ToWrapped("x"))
	assert.Equal(t, "x", id.FromWrapped("x"))
	assert.True(t, transformers.IsIdentity(id))
	assert.True(t, transformers.IsIdentity(id.Invert()))
	assert.True(t, transformers.IsIdentity(id.Unbounded()))
	assert.False(t, transformers.IsIdentity(codes))
}

func TestFunctional(t *testing.T) {
	assert.Equal(t, 3, codes.ToWrapped("c"))
	assert.Equal(t, "c", codes.FromWrapped(3))

	inv := codes.Invert()
	assert.Equal(t, "c", inv.ToWrapped(3))
	assert.Equal(t, 3, inv.FromWrapped("c"))

	assert.Same(t, inv, codes.Invert(), "Invert is stable")
	assert.Same(t, codes, inv.Invert(), "inverting twice gives the original")

	for _, label := range []string{"a", "m", "z"} {
		assert.Equal(t, label, codes.FromWrapped(codes.ToWrapped(label)))
	}
}

func TestUnbounded(t *testing.T) {
	u := codes.Unbounded()

	tests := []struct {
		name     string
		in       any
		wrapped  any
		fromWrap any
	}{
		{"wrapper value", "b", 2, "b"},
		{"wrapped value", 2, 2, "b"},
		{"nil", nil, nil, nil},
		{"foreign type", 3.5, 3.5, 3.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wrapped, u.ToWrapped(tt.in))
			assert.Equal(t, tt.fromWrap, u.FromWrapped(tt.wrapped))
		})
	}

	assert.Same(t, u, u.Unbounded())
	assert.Same(t, u, codes.Unbounded(), "the loose form is built once")
	assert.Same(t, codes.Invert().Unbounded(), u.Invert())
	assert.Equal(t, "b", u.Invert().ToWrapped(2))
}

func TestNewUnbounded(t *testing.T) {
	assert.True(t, transformers.IsIdentity(transformers.NewUnbounded(transformers.Identity[int]())))

	u := transformers.NewUnbounded(decimal)
	assert.Equal(t, 42, u.ToWrapped("42"))
	assert.Equal(t, "42", u.FromWrapped(42))
	assert.Equal(t, true, u.ToWrapped(true))
	assert.Same(t, u, u.Unbounded())
	assert.Same(t, decimal.Invert().Unbounded(), u.Invert())
}

func TestOfComparator(t *testing.T) {
	byLabel := transformers.OfComparator(collections.NaturalOrder[int](), codes)
	assert.Negative(t, byLabel.Compare("a", "b"))
	assert.Zero(t, byLabel.Compare("c", "c"))

	// Order ints by the text of their decimal form.
	lexical := transformers.OfComparator(collections.NaturalOrder[string](), decimal.Invert())
	assert.Positive(t, lexical.Compare(9, 10))

	natural := collections.NaturalOrder[int]()
	assert.Equal(t, natural, transformers.OfComparator(natural, transformers.Identity[int]()))
	assert.Nil(t, transformers.OfComparator[string, int](nil, codes))
}
