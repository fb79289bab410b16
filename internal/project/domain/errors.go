package domain

import (
	"github.com/allisson/hdrivault/internal/errors"
)

// Project document error definitions.
var (
	// ErrInvalidFormat indicates the document is structurally invalid: missing
	// or unrecognized version tag, malformed outer JSON, or a mandatory block
	// absent for the declared version. Fatal for the whole load.
	ErrInvalidFormat = errors.Wrap(errors.ErrInvalidInput, "invalid document format")

	// ErrUnsupportedLegacyScheme indicates an asset declares a retired
	// encryption scheme the loader no longer understands. Recoverable: the
	// asset is skipped with a warning and siblings are unaffected.
	ErrUnsupportedLegacyScheme = errors.Wrap(errors.ErrInvalidInput, "unsupported legacy encryption scheme")

	// ErrAssetNotFound indicates the named asset is not present in the document.
	ErrAssetNotFound = errors.Wrap(errors.ErrNotFound, "asset not found")
)
