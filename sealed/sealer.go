package sealed

import (
	"crypto/cipher"
	"crypto/subtle"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/chacha20poly1305"

	"github.com/hasbyte1/go-transformers/transformers"
)

// Option is a functional option for [NewSealer].
type Option func(*sealerOptions)

type sealerOptions struct {
	// previousKeys are tried in order by Open when the primary key fails.
	// They never seal.
	previousKeys [][]byte
}

// WithPreviousKeys registers retired keys that Open still accepts. Keys are
// tried in the order given, after the primary key.
func WithPreviousKeys(keys ...[]byte) Option {
	return func(o *sealerOptions) {
		for _, k := range keys {
			o.previousKeys = append(o.previousKeys, cloneBytes(k))
		}
	}
}

// keyring is the material derived from one key.
type keyring struct {
	aead     cipher.AEAD
	nonceKey []byte
}

func newKeyring(key []byte) (*keyring, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidKeyLength, KeySize, len(key))
	}
	aead, err := chacha20poly1305.NewX(subkey(key, "sealed/encrypt"))
	if err != nil {
		return nil, fmt.Errorf("sealed: failed to initialise XChaCha20-Poly1305: %w", err)
	}
	return &keyring{aead: aead, nonceKey: subkey(key, "sealed/nonce")}, nil
}

// subkey derives an independent 32-byte key for one purpose.
func subkey(key []byte, label string) []byte {
	h, _ := blake2b.New256(key) // never fails for keys of at most 64 bytes
	h.Write([]byte(label))
	return h.Sum(nil)
}

// nonce is the synthetic nonce for plaintext.
func (k *keyring) nonce(plaintext []byte) []byte {
	h, _ := blake2b.New(chacha20poly1305.NonceSizeX, k.nonceKey)
	h.Write(plaintext)
	return h.Sum(nil)
}

// Sealer seals strings into deterministic tokens and opens them again. It
// is safe for concurrent use.
type Sealer struct {
	primary *keyring
	keys    []*keyring // primary first, then previous keys
	t       transformers.Transformer[string, string]
}

// NewSealer returns a Sealer for a [KeySize]-byte key.
func NewSealer(key []byte, opts ...Option) (*Sealer, error) {
	var o sealerOptions
	for _, opt := range opts {
		opt(&o)
	}

	primary, err := newKeyring(key)
	if err != nil {
		return nil, err
	}
	s := &Sealer{primary: primary, keys: []*keyring{primary}}
	for i, k := range o.previousKeys {
		kr, err := newKeyring(k)
		if err != nil {
			return nil, fmt.Errorf("previous key %d: %w", i, err)
		}
		s.keys = append(s.keys, kr)
	}
	s.t = transformers.NewFunctional(s.Seal, s.openPrimary)
	return s, nil
}

// Seal returns the token for plaintext. Equal plaintexts give equal tokens.
func (s *Sealer) Seal(plaintext string) string {
	p := []byte(plaintext)
	nonce := s.primary.nonce(p)

	out := make([]byte, len(nonce), len(nonce)+len(p)+chacha20poly1305.Overhead)
	copy(out, nonce)
	out = s.primary.aead.Seal(out, nonce, p, nil)
	return base64.RawURLEncoding.EncodeToString(out)
}

// Open returns the plaintext sealed in token under the primary key or any
// previous key. It fails with [ErrInvalidToken] for malformed input and
// [ErrDecryptionFailed] when no configured key opens it.
func (s *Sealer) Open(token string) (string, error) {
	return open(token, s.keys)
}

// Reseal opens token with any configured key and seals the plaintext again
// under the primary key. Containers holding tokens sealed under a previous
// key have to be resealed before a view over them is used.
func (s *Sealer) Reseal(token string) (string, error) {
	p, err := s.Open(token)
	if err != nil {
		return "", err
	}
	return s.Seal(p), nil
}

func open(token string, keys []*keyring) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if len(raw) < chacha20poly1305.NonceSizeX+chacha20poly1305.Overhead {
		return "", fmt.Errorf("%w: %d bytes is too short", ErrInvalidToken, len(raw))
	}
	nonce, ciphertext := raw[:chacha20poly1305.NonceSizeX], raw[chacha20poly1305.NonceSizeX:]

	for _, k := range keys {
		p, err := k.aead.Open(nil, nonce, ciphertext, nil)
		if err != nil {
			continue
		}
		// The nonce is part of what authenticates a deterministic token.
		if subtle.ConstantTimeCompare(k.nonce(p), nonce) != 1 {
			continue
		}
		return string(p), nil
	}
	return "", ErrDecryptionFailed
}

// openPrimary opens only tokens sealed under the primary key, the ones Seal
// gives back unchanged.
func (s *Sealer) openPrimary(token string) string {
	p, err := open(token, s.keys[:1])
	if err != nil {
		panic(err)
	}
	return p
}

// Transformer returns the Transformer whose wrapped side is tokens and whose
// wrapper side is plaintexts. Every call returns the same instance.
//
// FromWrapped opens only tokens sealed under the primary key, so that
// sealing what it returns gives back the same token. Views only ever hand
// it values read from their container, so a token it cannot open means the
// container holds something this Sealer did not seal under its primary key;
// FromWrapped panics with the open error in that case. Use [Sealer.Reseal]
// to migrate tokens sealed under a previous key.
func (s *Sealer) Transformer() transformers.Transformer[string, string] { return s.t }

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
