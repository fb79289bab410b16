package service

import (
	"context"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/hdrivault/internal/crypto/domain"
	"github.com/allisson/hdrivault/internal/encoding"
)

func newTestEnvelopeCipher(secret string, alg cryptoDomain.Algorithm) *EnvelopeCipherService {
	provider := NewKeyProvider(NewStaticKeySource("test-key", []byte(secret)))
	return NewEnvelopeCipher(provider, NewAEADManager(), alg)
}

func TestEnvelopeCipherService_RoundTrip(t *testing.T) {
	ctx := context.Background()

	for _, alg := range []cryptoDomain.Algorithm{cryptoDomain.AESGCM, cryptoDomain.ChaCha20} {
		t.Run(string(alg), func(t *testing.T) {
			cipher := newTestEnvelopeCipher("round-trip", alg)

			for _, size := range []int{0, 1, 16, 1024, 65536} {
				plaintext := make([]byte, size)
				_, err := rand.Read(plaintext)
				require.NoError(t, err)

				packet, err := cipher.EncryptPayload(ctx, plaintext)
				require.NoError(t, err)
				assert.True(t, packet.Complete())

				decrypted, err := cipher.DecryptPayload(ctx, packet)
				require.NoError(t, err)
				assert.Equal(t, plaintext, decrypted)
			}
		})
	}
}

func TestEnvelopeCipherService_EncryptPayload(t *testing.T) {
	ctx := context.Background()
	cipher := newTestEnvelopeCipher("nondeterminism", cryptoDomain.AESGCM)

	t.Run("fresh nonces and ciphertext per call", func(t *testing.T) {
		plaintext := []byte("identical input")
		p1, err := cipher.EncryptPayload(ctx, plaintext)
		require.NoError(t, err)
		p2, err := cipher.EncryptPayload(ctx, plaintext)
		require.NoError(t, err)

		assert.NotEqual(t, p1.Ciphertext, p2.Ciphertext)
		assert.NotEqual(t, p1.ContentNonce, p2.ContentNonce)
		assert.NotEqual(t, p1.KeyNonce, p2.KeyNonce)
		assert.NotEqual(t, p1.WrappedKey, p2.WrappedKey)
	})

	t.Run("fails when the key source is unavailable", func(t *testing.T) {
		broken := NewEnvelopeCipher(
			NewKeyProvider(NewEncodedKeySource("missing", "")),
			NewAEADManager(),
			cryptoDomain.AESGCM,
		)
		_, err := broken.EncryptPayload(ctx, []byte("payload"))
		assert.ErrorIs(t, err, cryptoDomain.ErrKeyUnavailable)
	})
}

func TestEnvelopeCipherService_DecryptPayload(t *testing.T) {
	ctx := context.Background()
	cipher := newTestEnvelopeCipher("decrypt", cryptoDomain.AESGCM)

	packet, err := cipher.EncryptPayload(ctx, []byte("asset bytes"))
	require.NoError(t, err)

	t.Run("fails with a different application key", func(t *testing.T) {
		other := newTestEnvelopeCipher("another secret entirely", cryptoDomain.AESGCM)
		_, err := other.DecryptPayload(ctx, packet)
		assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
	})

	t.Run("fails on corrupted wrapped key", func(t *testing.T) {
		corrupted := packet
		corrupted.WrappedKey = corrupt(t, corrupted.WrappedKey)
		_, err := cipher.DecryptPayload(ctx, corrupted)
		assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
	})

	t.Run("fails on corrupted ciphertext", func(t *testing.T) {
		corrupted := packet
		corrupted.Ciphertext = corrupt(t, corrupted.Ciphertext)
		_, err := cipher.DecryptPayload(ctx, corrupted)
		assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
	})

	t.Run("fails on tampered nonce", func(t *testing.T) {
		corrupted := packet
		corrupted.ContentNonce = corrupt(t, corrupted.ContentNonce)
		_, err := cipher.DecryptPayload(ctx, corrupted)
		assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
	})

	t.Run("fails on malformed packet encoding", func(t *testing.T) {
		corrupted := packet
		corrupted.WrappedKey = "@@not-base64@@"
		_, err := cipher.DecryptPayload(ctx, corrupted)
		assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
	})
}

// corrupt flips the first byte of a base64-encoded buffer.
func corrupt(t *testing.T, encoded string) string {
	t.Helper()

	b, err := encoding.Decode(encoded)
	require.NoError(t, err)
	require.NotEmpty(t, b)
	b[0] ^= 0xff
	return encoding.Encode(b)
}
