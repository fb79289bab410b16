// Package service provides the cryptographic services for envelope encryption:
// AEAD ciphers (AES-256-GCM, ChaCha20-Poly1305), pluggable application key
// sources, and the envelope cipher that wraps per-asset data keys.
package service

import (
	"context"

	cryptoDomain "github.com/allisson/hdrivault/internal/crypto/domain"
)

// AEAD defines the interface for Authenticated Encryption with Associated Data.
type AEAD interface {
	// Encrypt encrypts plaintext with optional AAD and returns ciphertext and nonce.
	Encrypt(plaintext, aad []byte) (ciphertext, nonce []byte, err error)

	// Decrypt decrypts ciphertext using the provided nonce and AAD.
	Decrypt(ciphertext, nonce, aad []byte) ([]byte, error)
}

// AEADManager defines the interface for creating AEAD cipher instances.
type AEADManager interface {
	// CreateCipher creates an AEAD cipher instance for the specified algorithm.
	CreateCipher(key []byte, alg cryptoDomain.Algorithm) (AEAD, error)
}

// KeySource resolves the raw application key material from its origin
// (a provided secret, environment configuration, or a KMS keeper).
type KeySource interface {
	// Resolve returns the application key. Called at most once per process by
	// the key provider.
	Resolve(ctx context.Context) (*cryptoDomain.ApplicationKey, error)
}

// KeyProvider caches the process-wide application key.
type KeyProvider interface {
	// ApplicationKey returns the cached application key, resolving it from the
	// configured source on first call. Safe for concurrent use; concurrent
	// first calls observe a single resolution.
	ApplicationKey(ctx context.Context) (*cryptoDomain.ApplicationKey, error)
}

// EnvelopeCipher encrypts and decrypts asset payloads with ephemeral data keys
// wrapped under the application key.
type EnvelopeCipher interface {
	// EncryptPayload encrypts plaintext under a fresh data key and returns the
	// packet bundling ciphertext, wrapped key, and both nonces.
	EncryptPayload(ctx context.Context, plaintext []byte) (cryptoDomain.EncryptedPacket, error)

	// DecryptPayload unwraps the packet's data key and decrypts its ciphertext.
	DecryptPayload(ctx context.Context, packet cryptoDomain.EncryptedPacket) ([]byte, error)
}
