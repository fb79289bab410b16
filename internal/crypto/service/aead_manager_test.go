package service

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/hdrivault/internal/crypto/domain"
)

func TestAEADManagerService_CreateCipher(t *testing.T) {
	am := NewAEADManager()
	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err)

	t.Run("creates AES-GCM cipher", func(t *testing.T) {
		aead, err := am.CreateCipher(key, cryptoDomain.AESGCM)
		require.NoError(t, err)
		assert.IsType(t, &AESGCMCipher{}, aead)
	})

	t.Run("creates ChaCha20-Poly1305 cipher", func(t *testing.T) {
		aead, err := am.CreateCipher(key, cryptoDomain.ChaCha20)
		require.NoError(t, err)
		assert.IsType(t, &ChaCha20Poly1305Cipher{}, aead)
	})

	t.Run("rejects invalid key size", func(t *testing.T) {
		_, err := am.CreateCipher(make([]byte, 16), cryptoDomain.AESGCM)
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidKeySize)
	})

	t.Run("rejects unknown algorithm", func(t *testing.T) {
		_, err := am.CreateCipher(key, cryptoDomain.Algorithm("des"))
		assert.ErrorIs(t, err, cryptoDomain.ErrUnsupportedAlgorithm)
	})
}

func TestAEADCiphers(t *testing.T) {
	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err)

	ciphers := map[string]func() (AEAD, error){
		"aes-gcm": func() (AEAD, error) { return NewAESGCM(key) },
		"chacha20-poly1305": func() (AEAD, error) {
			return NewChaCha20Poly1305(key)
		},
	}

	for name, newCipher := range ciphers {
		t.Run(name, func(t *testing.T) {
			aead, err := newCipher()
			require.NoError(t, err)

			t.Run("round-trips plaintext", func(t *testing.T) {
				plaintext := []byte("hdri payload bytes")
				ciphertext, nonce, err := aead.Encrypt(plaintext, nil)
				require.NoError(t, err)
				assert.Len(t, nonce, 12)

				decrypted, err := aead.Decrypt(ciphertext, nonce, nil)
				require.NoError(t, err)
				assert.Equal(t, plaintext, decrypted)
			})

			t.Run("generates fresh nonce per call", func(t *testing.T) {
				plaintext := []byte("same input")
				c1, n1, err := aead.Encrypt(plaintext, nil)
				require.NoError(t, err)
				c2, n2, err := aead.Encrypt(plaintext, nil)
				require.NoError(t, err)

				assert.NotEqual(t, n1, n2)
				assert.NotEqual(t, c1, c2)
			})

			t.Run("fails on tampered ciphertext", func(t *testing.T) {
				ciphertext, nonce, err := aead.Encrypt([]byte("payload"), nil)
				require.NoError(t, err)
				ciphertext[0] ^= 0xff

				_, err = aead.Decrypt(ciphertext, nonce, nil)
				assert.Error(t, err)
			})

			t.Run("binds ciphertext to AAD", func(t *testing.T) {
				ciphertext, nonce, err := aead.Encrypt([]byte("payload"), []byte("asset-1"))
				require.NoError(t, err)

				_, err = aead.Decrypt(ciphertext, nonce, []byte("asset-2"))
				assert.Error(t, err)

				plaintext, err := aead.Decrypt(ciphertext, nonce, []byte("asset-1"))
				require.NoError(t, err)
				assert.Equal(t, []byte("payload"), plaintext)
			})
		})
	}
}

func TestNewAESGCM_InvalidKey(t *testing.T) {
	_, err := NewAESGCM(make([]byte, 31))
	assert.Error(t, err)
}
