package service

import (
	"context"
	"sync"

	cryptoDomain "github.com/allisson/hdrivault/internal/crypto/domain"
)

// KeyProviderService implements the KeyProvider interface.
//
// The application key is the only process-wide mutable state in the crypto
// core. It is resolved from the configured KeySource exactly once; concurrent
// first calls block on the same resolution and observe the same key instance
// (or the same error). After initialization the cached key is read-only until
// Close.
type KeyProviderService struct {
	source KeySource

	once sync.Once
	key  *cryptoDomain.ApplicationKey
	err  error
}

// NewKeyProvider creates a new KeyProviderService with the provided key source.
func NewKeyProvider(source KeySource) *KeyProviderService {
	return &KeyProviderService{source: source}
}

// ApplicationKey returns the cached application key, resolving it on first call.
// Resolution failures are cached as well: a missing cryptographic provider is
// not transient, so every subsequent call reports the same ErrKeyUnavailable.
func (p *KeyProviderService) ApplicationKey(ctx context.Context) (*cryptoDomain.ApplicationKey, error) {
	p.once.Do(func() {
		key, err := p.source.Resolve(ctx)
		if err != nil {
			p.err = err
			return
		}
		if !key.Valid() {
			key.Close()
			p.err = cryptoDomain.ErrKeyUnavailable
			return
		}
		p.key = key
	})

	if p.err != nil {
		return nil, p.err
	}
	return p.key, nil
}

// Close zeroes the cached key material. Call on process shutdown.
func (p *KeyProviderService) Close() {
	// Mark the provider as spent so a Close before first use doesn't allow a
	// later resolution against a half-torn-down process.
	p.once.Do(func() {
		p.err = cryptoDomain.ErrKeyUnavailable
	})
	p.key.Close()
}
