package sealed_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-transformers/collections"
	"github.com/hasbyte1/go-transformers/sealed"
	"github.com/hasbyte1/go-transformers/transformers"
)

func newSealer(t *testing.T, opts ...sealed.Option) *sealed.Sealer {
	t.Helper()
	key, err := sealed.GenerateKey()
	require.NoError(t, err)
	s, err := sealed.NewSealer(key, opts...)
	require.NoError(t, err)
	return s
}

// ──────────────────────────────────────────────────────────────────────────────
// Constructor tests
// ──────────────────────────────────────────────────────────────────────────────

func TestNewSealer_RejectsInvalidKeys(t *testing.T) {
	tests := []struct {
		name string
		key  []byte
		opts []sealed.Option
	}{
		{"nil key", nil, nil},
		{"short key", make([]byte, 16), nil},
		{"long key", make([]byte, 64), nil},
		{"short previous key", make([]byte, sealed.KeySize), []sealed.Option{sealed.WithPreviousKeys(make([]byte, 8))}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sealed.NewSealer(tt.key, tt.opts...)
			require.ErrorIs(t, err, sealed.ErrInvalidKeyLength)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Seal / Open
// ──────────────────────────────────────────────────────────────────────────────

func TestSealOpen_RoundTrip(t *testing.T) {
	s := newSealer(t)
	for _, p := range []string{"", "a", "hello, world", strings.Repeat("x", 4096), "ünïcødé"} {
		token := s.Seal(p)
		got, err := s.Open(token)
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
}

func TestSeal_IsDeterministic(t *testing.T) {
	s := newSealer(t)
	assert.Equal(t, s.Seal("alice"), s.Seal("alice"))
	assert.NotEqual(t, s.Seal("alice"), s.Seal("bob"))
}

func TestSeal_DependsOnKey(t *testing.T) {
	a, b := newSealer(t), newSealer(t)
	assert.NotEqual(t, a.Seal("alice"), b.Seal("alice"))

	_, err := b.Open(a.Seal("alice"))
	assert.ErrorIs(t, err, sealed.ErrDecryptionFailed)
}

func TestSeal_TokenIsURLSafe(t *testing.T) {
	token := newSealer(t).Seal(strings.Repeat("?", 100))
	assert.NotContains(t, token, "+")
	assert.NotContains(t, token, "/")
	assert.NotContains(t, token, "=")
}

func TestOpen_RejectsMalformedTokens(t *testing.T) {
	s := newSealer(t)
	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{"empty", "", sealed.ErrInvalidToken},
		{"not base64url", "not a token!", sealed.ErrInvalidToken},
		{"too short", "AAAA", sealed.ErrInvalidToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Open(tt.token)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestOpen_RejectsTamperedToken(t *testing.T) {
	s := newSealer(t)
	token := []byte(s.Seal("payload"))
	// Flip a character in the middle, keeping the alphabet valid.
	i := len(token) / 2
	if token[i] == 'A' {
		token[i] = 'B'
	} else {
		token[i] = 'A'
	}
	_, err := s.Open(string(token))
	assert.ErrorIs(t, err, sealed.ErrDecryptionFailed)
}

func TestOpen_AcceptsPreviousKeys(t *testing.T) {
	oldKey, err := sealed.GenerateKey()
	require.NoError(t, err)
	old, err := sealed.NewSealer(oldKey)
	require.NoError(t, err)
	token := old.Seal("rotated")

	s := newSealer(t, sealed.WithPreviousKeys(oldKey))
	got, err := s.Open(token)
	require.NoError(t, err)
	assert.Equal(t, "rotated", got)

	// New tokens are sealed with the primary key only.
	assert.NotEqual(t, token, s.Seal("rotated"))
	_, err = old.Open(s.Seal("rotated"))
	assert.ErrorIs(t, err, sealed.ErrDecryptionFailed)
}

func TestWithPreviousKeys_ClonesKeys(t *testing.T) {
	oldKey, err := sealed.GenerateKey()
	require.NoError(t, err)
	old, err := sealed.NewSealer(oldKey)
	require.NoError(t, err)
	token := old.Seal("x")

	opt := sealed.WithPreviousKeys(oldKey)
	oldKey[0] ^= 0xff
	s := newSealer(t, opt)

	_, err = s.Open(token)
	assert.NoError(t, err)
}

func TestReseal(t *testing.T) {
	oldKey, err := sealed.GenerateKey()
	require.NoError(t, err)
	old, err := sealed.NewSealer(oldKey)
	require.NoError(t, err)
	s := newSealer(t, sealed.WithPreviousKeys(oldKey))

	got, err := s.Reseal(old.Seal("rotated"))
	require.NoError(t, err)
	assert.Equal(t, s.Seal("rotated"), got)

	current := s.Seal("current")
	got, err = s.Reseal(current)
	require.NoError(t, err)
	assert.Equal(t, current, got)

	_, err = s.Reseal("!!")
	assert.ErrorIs(t, err, sealed.ErrInvalidToken)
	_, err = s.Reseal(newSealer(t).Seal("foreign"))
	assert.ErrorIs(t, err, sealed.ErrDecryptionFailed)
}

// ──────────────────────────────────────────────────────────────────────────────
// Transformer
// ──────────────────────────────────────────────────────────────────────────────

func TestTransformer_IsStable(t *testing.T) {
	s := newSealer(t)
	tr := s.Transformer()
	assert.Same(t, tr, s.Transformer())
	assert.Same(t, tr, tr.Invert().Invert())
	assert.Equal(t, s.Seal("k"), tr.ToWrapped("k"))
	assert.Equal(t, "k", tr.FromWrapped(tr.ToWrapped("k")))
}

func TestTransformer_PanicsOnForeignToken(t *testing.T) {
	tr := newSealer(t).Transformer()
	assert.PanicsWithError(t, sealed.ErrDecryptionFailed.Error(), func() {
		tr.FromWrapped(newSealer(t).Seal("foreign"))
	})
}

func TestTransformer_KeyRotation(t *testing.T) {
	oldKey, err := sealed.GenerateKey()
	require.NoError(t, err)
	old, err := sealed.NewSealer(oldKey)
	require.NoError(t, err)
	s := newSealer(t, sealed.WithPreviousKeys(oldKey))
	tr := s.Transformer()

	stale := old.Seal("alice")
	assert.Panics(t, func() { tr.FromWrapped(stale) })

	tokens := collections.NewHashSet(stale)
	var fresh []string
	for w := range tokens.All() {
		token, err := s.Reseal(w)
		require.NoError(t, err)
		fresh = append(fresh, token)
	}
	require.NoError(t, tokens.Clear())
	for _, w := range fresh {
		_, err := tokens.Add(w)
		require.NoError(t, err)
	}

	names := transformers.OfSet[string, string](tokens, tr)
	assert.Equal(t, []string{"alice"}, names.ToSlice())
	assert.True(t, names.Contains("alice"))
	for w := range tokens.All() {
		assert.Equal(t, w, tr.ToWrapped(tr.FromWrapped(w)))
	}

	removed, err := names.Remove("alice")
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Zero(t, tokens.Len())
}

func TestTransformer_SetView(t *testing.T) {
	s := newSealer(t)
	tokens := collections.NewHashSet[string]()
	names := transformers.OfSet[string, string](tokens, s.Transformer())

	for _, n := range []string{"alice", "bob", "carol"} {
		added, err := names.Add(n)
		require.NoError(t, err)
		assert.True(t, added)
	}
	assert.Equal(t, 3, tokens.Len())
	assert.False(t, tokens.Contains("alice"))
	assert.True(t, tokens.Contains(s.Seal("alice")))

	assert.True(t, names.Contains("bob"))
	assert.False(t, names.Contains("dave"))
	assert.False(t, names.Contains(42))

	removed, err := names.Remove("bob")
	require.NoError(t, err)
	assert.True(t, removed)
	assert.False(t, tokens.Contains(s.Seal("bob")))
	assert.ElementsMatch(t, []string{"alice", "carol"}, names.ToSlice())
}

func TestTransformer_MapValues(t *testing.T) {
	s := newSealer(t)
	stored := collections.NewHashMap[string, string]()
	secrets := transformers.OfMap[string, string, string, string](stored, transformers.Identity[string](), s.Transformer())

	_, _, err := secrets.Put("db", "hunter2")
	require.NoError(t, err)

	raw, ok := stored.Get("db")
	require.True(t, ok)
	assert.NotEqual(t, "hunter2", raw)

	got, ok := secrets.Get("db")
	require.True(t, ok)
	assert.Equal(t, "hunter2", got)
	assert.True(t, secrets.ContainsValue("hunter2"))
}
