package domain

import (
	"github.com/allisson/hdrivault/internal/errors"
)

// Cryptographic operation error definitions.
//
// These domain-specific errors wrap standard errors from internal/errors to
// provide context for cryptographic failures.
var (
	// ErrUnsupportedAlgorithm indicates the requested encryption algorithm is
	// not supported. Supported algorithms: AESGCM, ChaCha20.
	ErrUnsupportedAlgorithm = errors.Wrap(errors.ErrInvalidInput, "unsupported algorithm")

	// ErrInvalidKeySize indicates the cryptographic key is not exactly 32 bytes.
	ErrInvalidKeySize = errors.Wrap(errors.ErrInvalidInput, "invalid key size")

	// ErrKeyUnavailable indicates the application key could not be obtained:
	// no key source is configured, the configured key material is invalid, or
	// the KMS provider cannot be reached. It occurs at most once, on first use.
	ErrKeyUnavailable = errors.Wrap(errors.ErrUnavailable, "application key unavailable")

	// ErrDecryptionFailed indicates an AEAD decryption failed: wrong key,
	// corrupted ciphertext, or a tampered nonce. The specific stage (key unwrap
	// or content decrypt) is deliberately not disclosed to avoid oracle behavior.
	ErrDecryptionFailed = errors.Wrap(errors.ErrInvalidInput, "decryption failed")
)
