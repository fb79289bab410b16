package service

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"gocloud.dev/secrets"

	cryptoDomain "github.com/allisson/hdrivault/internal/crypto/domain"

	// Register KMS keeper drivers
	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"
)

// StaticKeySource derives the application key from a caller-provided secret.
//
// The secret can be any length; the key is derived as SHA-256 over the secret
// so the result is always 32 bytes. This replaces the old embedded-and-masked
// secret material with an explicit, injectable origin.
type StaticKeySource struct {
	id     string
	secret []byte
}

// NewStaticKeySource creates a key source from raw secret material.
func NewStaticKeySource(id string, secret []byte) *StaticKeySource {
	return &StaticKeySource{id: id, secret: secret}
}

// Resolve derives the application key from the secret.
func (s *StaticKeySource) Resolve(_ context.Context) (*cryptoDomain.ApplicationKey, error) {
	if len(s.secret) == 0 {
		return nil, fmt.Errorf("%w: empty secret", cryptoDomain.ErrKeyUnavailable)
	}

	sum := sha256.Sum256(s.secret)
	return &cryptoDomain.ApplicationKey{ID: s.id, Key: sum[:]}, nil
}

// EncodedKeySource reads a base64-encoded 32-byte application key, typically
// supplied through the APP_KEY environment variable.
type EncodedKeySource struct {
	id      string
	encoded string
}

// NewEncodedKeySource creates a key source from a base64-encoded key.
func NewEncodedKeySource(id, encoded string) *EncodedKeySource {
	return &EncodedKeySource{id: id, encoded: encoded}
}

// Resolve decodes and validates the configured key.
func (s *EncodedKeySource) Resolve(_ context.Context) (*cryptoDomain.ApplicationKey, error) {
	if s.encoded == "" {
		return nil, fmt.Errorf("%w: APP_KEY not set", cryptoDomain.ErrKeyUnavailable)
	}

	key, err := base64.StdEncoding.DecodeString(s.encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base64: %v", cryptoDomain.ErrKeyUnavailable, err)
	}
	if len(key) != cryptoDomain.KeySize {
		cryptoDomain.Zero(key)
		return nil, fmt.Errorf(
			"%w: key must be %d bytes, got %d",
			cryptoDomain.ErrKeyUnavailable, cryptoDomain.KeySize, len(key),
		)
	}

	return &cryptoDomain.ApplicationKey{ID: s.id, Key: key}, nil
}

// KMSKeySource unwraps a KMS-encrypted application key with a
// gocloud.dev/secrets keeper.
//
// Supported keeper URIs include hashivault:// and base64key:// (localsecrets,
// development only). The wrapped key ciphertext is produced by the
// create-app-key command.
type KMSKeySource struct {
	id         string
	keyURI     string
	wrappedKey string
}

// NewKMSKeySource creates a key source backed by a KMS keeper.
func NewKMSKeySource(id, keyURI, wrappedKey string) *KMSKeySource {
	return &KMSKeySource{id: id, keyURI: keyURI, wrappedKey: wrappedKey}
}

// Resolve opens the keeper and decrypts the wrapped application key.
func (s *KMSKeySource) Resolve(ctx context.Context) (*cryptoDomain.ApplicationKey, error) {
	if s.wrappedKey == "" {
		return nil, fmt.Errorf("%w: WRAPPED_APP_KEY not set", cryptoDomain.ErrKeyUnavailable)
	}

	ciphertext, err := base64.StdEncoding.DecodeString(s.wrappedKey)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid wrapped key base64: %v", cryptoDomain.ErrKeyUnavailable, err)
	}

	keeper, err := secrets.OpenKeeper(ctx, s.keyURI)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open KMS keeper: %v", cryptoDomain.ErrKeyUnavailable, err)
	}
	defer keeper.Close()

	key, err := keeper.Decrypt(ctx, ciphertext)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to unwrap key: %v", cryptoDomain.ErrKeyUnavailable, err)
	}
	if len(key) != cryptoDomain.KeySize {
		cryptoDomain.Zero(key)
		return nil, fmt.Errorf(
			"%w: unwrapped key must be %d bytes, got %d",
			cryptoDomain.ErrKeyUnavailable, cryptoDomain.KeySize, len(key),
		)
	}

	return &cryptoDomain.ApplicationKey{ID: s.id, Key: key}, nil
}
