package sealed

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

// KeySize is the length of a sealing key in bytes.
const KeySize = chacha20poly1305.KeySize

// ──────────────────────────────────────────────────────────────────────────────
// Random keys
// ──────────────────────────────────────────────────────────────────────────────

// GenerateKey returns a random [KeySize]-byte key read from crypto/rand.
func GenerateKey() ([]byte, error) {
	return randomBytes(KeySize)
}

// GenerateSalt returns a random salt of [DefaultSaltLen] bytes for
// [DeriveKey].
func GenerateSalt() ([]byte, error) {
	return randomBytes(DefaultSaltLen)
}

// EncodeKey returns the standard base64 encoding of key, suitable for
// storing in a configuration file or environment variable.
func EncodeKey(key []byte) string {
	return base64.StdEncoding.EncodeToString(key)
}

// DecodeKey decodes a key produced by [EncodeKey]. It accepts both the
// standard and the URL-safe alphabet.
func DecodeKey(encoded string) ([]byte, error) {
	key, err := base64.StdEncoding.DecodeString(encoded)
	if err == nil {
		return key, nil
	}
	key, err = base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("sealed: failed to decode key: %w", err)
	}
	return key, nil
}

func randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, fmt.Errorf("sealed: failed to generate %d random bytes: %w", n, err)
	}
	return b, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Passphrase keys
// ──────────────────────────────────────────────────────────────────────────────

const (
	// DefaultMemory is the default Argon2id memory cost in KiB (64 MiB).
	DefaultMemory uint32 = 64 * 1024

	// DefaultTime is the default number of Argon2id passes.
	DefaultTime uint32 = 3

	// DefaultThreads is the default Argon2id parallelism.
	DefaultThreads uint8 = 2

	// DefaultSaltLen is the length of the salts made by [GenerateSalt].
	DefaultSaltLen = 16

	// MinSaltLen is the shortest salt [DeriveKey] accepts.
	MinSaltLen = 8
)

// Options configures [DeriveKey]. The derived key is always [KeySize]
// bytes, so only the cost parameters are configurable.
type Options struct {
	// Memory is the memory cost in KiB. Minimum: 8 * Threads.
	Memory uint32

	// Time is the number of passes over memory. Minimum: 1.
	Time uint32

	// Threads is the degree of parallelism. Minimum: 1.
	Threads uint8
}

// DefaultOptions returns the recommended Argon2id cost parameters.
func DefaultOptions() Options {
	return Options{
		Memory:  DefaultMemory,
		Time:    DefaultTime,
		Threads: DefaultThreads,
	}
}

func (o Options) validate() error {
	if o.Time < 1 {
		return fmt.Errorf("%w: time must be ≥ 1, got %d", ErrInvalidOption, o.Time)
	}
	if o.Threads < 1 {
		return fmt.Errorf("%w: threads must be ≥ 1, got %d", ErrInvalidOption, o.Threads)
	}
	if o.Memory < 8*uint32(o.Threads) {
		return fmt.Errorf("%w: memory (%d KiB) must be ≥ 8×threads (%d KiB)",
			ErrInvalidOption, o.Memory, 8*uint32(o.Threads))
	}
	return nil
}

// DeriveKey stretches passphrase into a [KeySize]-byte key with Argon2id.
// The same passphrase, salt and options always give the same key, so the
// salt has to be stored alongside whatever the key seals.
func DeriveKey(passphrase, salt []byte, opts Options) ([]byte, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if len(salt) < MinSaltLen {
		return nil, fmt.Errorf("%w: salt must be ≥ %d bytes, got %d", ErrInvalidOption, MinSaltLen, len(salt))
	}
	return argon2.IDKey(passphrase, salt, opts.Time, opts.Memory, opts.Threads, KeySize), nil
}
