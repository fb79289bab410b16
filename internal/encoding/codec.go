// Package encoding provides the reversible binary-to-text codec used by the
// project document container. Documents are JSON text, so every binary buffer
// (ciphertexts, nonces, wrapped keys, legacy plain assets) crosses this codec.
package encoding

import (
	"encoding/base64"
	"strings"

	"github.com/allisson/hdrivault/internal/errors"
)

// ErrInvalidEncoding indicates the text is not valid base64 or a recognized
// legacy packed payload.
var ErrInvalidEncoding = errors.Wrap(errors.ErrInvalidInput, "invalid encoding")

// packedPrefix marks the legacy packed representation: a content-type header
// followed by base64 payload, e.g. "data:image/vnd.radiance;base64,<payload>".
// Documents written before asset encryption was introduced store assets this
// way. The encoder never produces this form for new documents.
const packedPrefix = "data:"

// Encode returns the text-safe base64 representation of b.
func Encode(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// Decode reverses Encode. Returns ErrInvalidEncoding for malformed input.
func Decode(text string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidEncoding, err.Error())
	}
	return b, nil
}

// DecodePacked decodes either a plain base64 payload or the legacy packed
// representation with an embedded content-type prefix. It returns the raw
// bytes and the declared content type ("" when the input is plain base64).
func DecodePacked(text string) ([]byte, string, error) {
	if !strings.HasPrefix(text, packedPrefix) {
		b, err := Decode(text)
		return b, "", err
	}

	rest := text[len(packedPrefix):]
	header, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, "", errors.Wrap(ErrInvalidEncoding, "packed payload missing separator")
	}

	contentType, _ := strings.CutSuffix(header, ";base64")
	b, err := Decode(payload)
	if err != nil {
		return nil, "", err
	}
	return b, contentType, nil
}
