package service

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/hdrivault/internal/crypto/domain"
)

// countingKeySource records how many times Resolve runs.
type countingKeySource struct {
	calls  atomic.Int32
	source KeySource
}

func (c *countingKeySource) Resolve(ctx context.Context) (*cryptoDomain.ApplicationKey, error) {
	c.calls.Add(1)
	return c.source.Resolve(ctx)
}

func TestKeyProviderService_ApplicationKey(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves and caches the key", func(t *testing.T) {
		counting := &countingKeySource{source: NewStaticKeySource("app-key", []byte("secret"))}
		provider := NewKeyProvider(counting)

		k1, err := provider.ApplicationKey(ctx)
		require.NoError(t, err)
		k2, err := provider.ApplicationKey(ctx)
		require.NoError(t, err)

		assert.Same(t, k1, k2)
		assert.Equal(t, int32(1), counting.calls.Load())
	})

	t.Run("concurrent first calls observe one resolution", func(t *testing.T) {
		counting := &countingKeySource{source: NewStaticKeySource("app-key", []byte("secret"))}
		provider := NewKeyProvider(counting)

		const goroutines = 32
		keys := make([]*cryptoDomain.ApplicationKey, goroutines)
		var wg sync.WaitGroup
		for i := range goroutines {
			wg.Add(1)
			go func() {
				defer wg.Done()
				key, err := provider.ApplicationKey(ctx)
				assert.NoError(t, err)
				keys[i] = key
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(1), counting.calls.Load())
		for _, key := range keys {
			assert.Same(t, keys[0], key)
		}
	})

	t.Run("caches resolution failure", func(t *testing.T) {
		counting := &countingKeySource{source: NewEncodedKeySource("app-key", "")}
		provider := NewKeyProvider(counting)

		_, err := provider.ApplicationKey(ctx)
		assert.ErrorIs(t, err, cryptoDomain.ErrKeyUnavailable)
		_, err = provider.ApplicationKey(ctx)
		assert.ErrorIs(t, err, cryptoDomain.ErrKeyUnavailable)
		assert.Equal(t, int32(1), counting.calls.Load())
	})

	t.Run("close zeroes cached key", func(t *testing.T) {
		provider := NewKeyProvider(NewStaticKeySource("app-key", []byte("secret")))
		key, err := provider.ApplicationKey(ctx)
		require.NoError(t, err)

		provider.Close()
		assert.Nil(t, key.Key)
	})
}
