package domain

// EncryptedPacket is the stored form of one envelope-encrypted asset payload.
// All four fields are text-encoded (base64) because the surrounding document
// container is JSON text.
//
// Ciphertext is the asset bytes encrypted under an ephemeral data key (DEK).
// WrappedKey is that DEK encrypted under the application key. ContentNonce and
// KeyNonce are the 96-bit nonces for the two AEAD operations; both are freshly
// generated per packet and never reused with the same key.
type EncryptedPacket struct {
	Ciphertext   string
	ContentNonce string
	WrappedKey   string
	KeyNonce     string
}

// Complete reports whether all four packet fields are present. A packet
// missing any field cannot have been produced by the envelope cipher and is
// treated as a retired legacy scheme by the loader.
func (p EncryptedPacket) Complete() bool {
	return p.Ciphertext != "" && p.ContentNonce != "" && p.WrappedKey != "" && p.KeyNonce != ""
}
