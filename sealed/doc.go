// Package sealed provides deterministic authenticated encryption of strings
// and a [transformers.Transformer] built on it, so that a container holding
// sealed tokens can be read and written in plaintext.
//
// # Token format
//
// A token is the unpadded base64url encoding of
//
//	nonce (24 bytes) || XChaCha20-Poly1305 ciphertext and tag
//
// The nonce is not random: it is a keyed BLAKE2b digest of the plaintext.
// Sealing the same plaintext under the same key always gives the same token,
// which is what lets a set of tokens answer membership queries for
// plaintexts. It also means an observer can tell when two tokens hold the
// same value; do not use this package where that matters.
//
// # Quick start
//
//	key, err := sealed.GenerateKey()
//	s, err := sealed.NewSealer(key)
//
//	tokens := collections.NewHashSet[string]()
//	names := transformers.OfSet[string, string](tokens, s.Transformer())
//	names.Add("alice")
//	names.Contains("alice") // true; tokens holds only ciphertext
//
// # Keys
//
// Keys are 32 bytes, either random ([GenerateKey]) or derived from a
// passphrase with Argon2id ([DeriveKey]). Use [WithPreviousKeys] to keep
// opening tokens sealed under retired keys.
package sealed
