package service

import (
	"context"
	"crypto/rand"
	"fmt"

	cryptoDomain "github.com/allisson/hdrivault/internal/crypto/domain"
	"github.com/allisson/hdrivault/internal/encoding"
)

// EnvelopeCipherService implements the EnvelopeCipher interface.
//
// Every payload is encrypted under a fresh ephemeral data key (DEK); the DEK is
// then wrapped under the process-wide application key and stored alongside the
// ciphertext. Both AEAD operations use freshly generated 96-bit nonces, so two
// encryptions of identical plaintext never produce identical packets. The raw
// DEK is zeroed as soon as the wrap (or decrypt) completes and is never logged
// or retained.
type EnvelopeCipherService struct {
	keyProvider KeyProvider
	aeadManager AEADManager
	algorithm   cryptoDomain.Algorithm
}

// NewEnvelopeCipher creates a new EnvelopeCipherService.
// The algorithm selects the AEAD used for both content encryption and key wrap.
func NewEnvelopeCipher(
	keyProvider KeyProvider,
	aeadManager AEADManager,
	algorithm cryptoDomain.Algorithm,
) *EnvelopeCipherService {
	return &EnvelopeCipherService{
		keyProvider: keyProvider,
		aeadManager: aeadManager,
		algorithm:   algorithm,
	}
}

// EncryptPayload encrypts plaintext under a fresh data key and wraps that key
// under the application key. All four packet fields are returned text-encoded,
// ready for the JSON document container.
func (s *EnvelopeCipherService) EncryptPayload(
	ctx context.Context,
	plaintext []byte,
) (cryptoDomain.EncryptedPacket, error) {
	appKey, err := s.keyProvider.ApplicationKey(ctx)
	if err != nil {
		return cryptoDomain.EncryptedPacket{}, err
	}

	// Generate a fresh 32-byte data key, never reused across assets or saves
	dataKey := make([]byte, cryptoDomain.KeySize)
	if _, err := rand.Read(dataKey); err != nil {
		return cryptoDomain.EncryptedPacket{}, fmt.Errorf("failed to generate data key: %w", err)
	}
	defer cryptoDomain.Zero(dataKey)

	contentCipher, err := s.aeadManager.CreateCipher(dataKey, s.algorithm)
	if err != nil {
		return cryptoDomain.EncryptedPacket{}, err
	}

	ciphertext, contentNonce, err := contentCipher.Encrypt(plaintext, nil)
	if err != nil {
		return cryptoDomain.EncryptedPacket{}, fmt.Errorf("failed to encrypt payload: %w", err)
	}

	wrapCipher, err := s.aeadManager.CreateCipher(appKey.Key, s.algorithm)
	if err != nil {
		return cryptoDomain.EncryptedPacket{}, err
	}

	wrappedKey, keyNonce, err := wrapCipher.Encrypt(dataKey, nil)
	if err != nil {
		return cryptoDomain.EncryptedPacket{}, fmt.Errorf("failed to wrap data key: %w", err)
	}

	return cryptoDomain.EncryptedPacket{
		Ciphertext:   encoding.Encode(ciphertext),
		ContentNonce: encoding.Encode(contentNonce),
		WrappedKey:   encoding.Encode(wrappedKey),
		KeyNonce:     encoding.Encode(keyNonce),
	}, nil
}

// DecryptPayload unwraps the packet's data key with the application key and
// decrypts the content ciphertext with it.
//
// Any failure past key acquisition surfaces as ErrDecryptionFailed without
// revealing which stage failed, so a caller (or attacker) cannot distinguish a
// corrupted wrapped key from corrupted content.
func (s *EnvelopeCipherService) DecryptPayload(
	ctx context.Context,
	packet cryptoDomain.EncryptedPacket,
) ([]byte, error) {
	appKey, err := s.keyProvider.ApplicationKey(ctx)
	if err != nil {
		return nil, err
	}

	ciphertext, err := encoding.Decode(packet.Ciphertext)
	if err != nil {
		return nil, cryptoDomain.ErrDecryptionFailed
	}
	contentNonce, err := encoding.Decode(packet.ContentNonce)
	if err != nil {
		return nil, cryptoDomain.ErrDecryptionFailed
	}
	wrappedKey, err := encoding.Decode(packet.WrappedKey)
	if err != nil {
		return nil, cryptoDomain.ErrDecryptionFailed
	}
	keyNonce, err := encoding.Decode(packet.KeyNonce)
	if err != nil {
		return nil, cryptoDomain.ErrDecryptionFailed
	}

	wrapCipher, err := s.aeadManager.CreateCipher(appKey.Key, s.algorithm)
	if err != nil {
		return nil, err
	}

	dataKey, err := wrapCipher.Decrypt(wrappedKey, keyNonce, nil)
	if err != nil {
		return nil, cryptoDomain.ErrDecryptionFailed
	}
	defer cryptoDomain.Zero(dataKey)

	contentCipher, err := s.aeadManager.CreateCipher(dataKey, s.algorithm)
	if err != nil {
		return nil, cryptoDomain.ErrDecryptionFailed
	}

	plaintext, err := contentCipher.Decrypt(ciphertext, contentNonce, nil)
	if err != nil {
		return nil, cryptoDomain.ErrDecryptionFailed
	}

	return plaintext, nil
}
