package domain

// Algorithm represents the AEAD algorithm used to encrypt asset payloads and
// wrap data keys. Both supported algorithms use 256-bit keys and 96-bit nonces
// and authenticate the ciphertext, so tampering is detected at decrypt time.
type Algorithm string

const (
	// AESGCM represents the AES-256-GCM authenticated encryption algorithm.
	// Preferred on CPUs with AES-NI hardware acceleration.
	AESGCM Algorithm = "aes-gcm"

	// ChaCha20 represents the ChaCha20-Poly1305 authenticated encryption
	// algorithm. Constant-time in software, preferred without AES-NI.
	ChaCha20 Algorithm = "chacha20-poly1305"
)

// KeySize is the required key length in bytes for both supported algorithms.
const KeySize = 32
