package sealed

import "errors"

// Sentinel errors returned by sealing operations.
//
// Callers should use errors.Is for comparisons:
//
//	_, err := s.Open(token)
//	if errors.Is(err, sealed.ErrDecryptionFailed) {
//	    // wrong key, or the token was tampered with
//	}
var (
	// ErrInvalidKeyLength is returned when a key is not [KeySize] bytes long.
	ErrInvalidKeyLength = errors.New("sealed: invalid key length")

	// ErrInvalidToken is returned when a token is not valid base64url or is
	// too short to hold a nonce and a tag.
	ErrInvalidToken = errors.New("sealed: invalid token")

	// ErrDecryptionFailed is returned when no configured key opens a token.
	ErrDecryptionFailed = errors.New("sealed: decryption failed")

	// ErrInvalidOption is returned when key derivation options are out of
	// range.
	ErrInvalidOption = errors.New("sealed: invalid option")
)
