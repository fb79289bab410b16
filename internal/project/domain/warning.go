package domain

// WarningReason classifies a recoverable per-asset load failure.
type WarningReason string

const (
	// WarnDecryptFailed covers AEAD authentication failures: wrong key,
	// corrupted ciphertext, or a tampered nonce.
	WarnDecryptFailed WarningReason = "asset skipped: key mismatch or corruption"

	// WarnUnsupportedLegacyScheme covers assets stored with the retired
	// interim encryption format.
	WarnUnsupportedLegacyScheme WarningReason = "unsupported legacy encryption"

	// WarnInvalidPayload covers legacy plain assets whose encoding cannot be
	// decoded.
	WarnInvalidPayload WarningReason = "asset skipped: invalid payload encoding"
)

// Warning records one non-fatal per-asset issue during load. Warnings are
// collected in document order; the offending asset is excluded from the
// result and sibling assets are unaffected.
type Warning struct {
	AssetName string
	Reason    WarningReason
	Err       error
}
