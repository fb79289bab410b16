// Package domain contains the cryptographic entities for envelope encryption:
// the process-wide application key, the encrypted packet wire shape, and the
// supported AEAD algorithms.
package domain

// ApplicationKey is the key-encryption key (KEK) at the root of the envelope
// hierarchy. It wraps per-asset data keys and never encrypts asset content
// directly.
//
// Lifetime: constructed once on first use by the key provider, cached for the
// process duration, never persisted or exported. Exactly one instance exists
// per process.
type ApplicationKey struct {
	ID  string
	Key []byte
}

// Valid reports whether the key material has the required size.
func (k *ApplicationKey) Valid() bool {
	return k != nil && len(k.Key) == KeySize
}

// Close zeroes the key material. Call on process shutdown.
func (k *ApplicationKey) Close() {
	if k == nil {
		return
	}
	Zero(k.Key)
	k.Key = nil
}
