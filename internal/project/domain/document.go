// Package domain contains the project document model: the versioned on-disk
// JSON shapes, the normalized in-memory project all versions migrate into, and
// the per-asset warning taxonomy.
package domain

// Version identifies one of the eight supported document schema versions.
// The tag is authoritative: the loader selects exactly one parse path from it
// and never guesses structure from field presence.
type Version string

const (
	V10 Version = "1.0"
	V11 Version = "1.1"
	V12 Version = "1.2"
	V13 Version = "1.3"
	V14 Version = "1.4"
	V15 Version = "1.5"
	V16 Version = "1.6"
	V17 Version = "1.7"

	// CurrentVersion is the schema the serializer emits.
	CurrentVersion = V17
)

// Known reports whether v is one of the eight supported schema versions.
func (v Version) Known() bool {
	switch v {
	case V10, V11, V12, V13, V14, V15, V16, V17:
		return true
	}
	return false
}

// Document is the outer JSON object of a stored project. The field set is the
// 1.7 superset; older versions populate a subset (with the pre-1.4 names kept
// as parallel fields, since 1.4 renamed rotation/metalness).
type Document struct {
	Version      Version       `json:"version"`
	Settings     *SettingsDoc  `json:"settings"`
	Materials    *MaterialsDoc `json:"materials,omitempty"`
	Hdris        []AssetDoc    `json:"hdris"`
	SelectedHdri string        `json:"selectedHdri,omitempty"`
	LoadedPreset *Preset       `json:"loadedPreset,omitempty"`
}

// SettingsDoc carries the global environment settings. Pointer fields
// distinguish "absent in this version" from a stored zero value.
type SettingsDoc struct {
	Rotation       *float64 `json:"rotation,omitempty"`    // versions 1.0-1.3
	EnvRotation    *float64 `json:"envRotation,omitempty"` // versions 1.4+
	Exposure       *float64 `json:"exposure,omitempty"`
	ShowBackground *bool    `json:"showBackground,omitempty"` // versions 1.2+
	Bloom          *float64 `json:"bloom,omitempty"`          // versions 1.3+
}

// MaterialsDoc carries the per-material parameters. Mandatory from version 1.1.
type MaterialsDoc struct {
	Metalness   *float64 `json:"metalness,omitempty"` // versions 1.1-1.3
	Metallic    *float64 `json:"metallic,omitempty"`  // versions 1.4+
	Roughness   *float64 `json:"roughness,omitempty"`
	NormalScale *float64 `json:"normalScale,omitempty"` // versions 1.3+
}

// AssetDoc is one stored binary asset entry.
//
// Three payload shapes exist across the schema history:
//   - legacy (pre-1.6): Data holds plain encoded bytes, possibly in the packed
//     content-type-prefixed form; Encrypted is false.
//   - interim (1.6, retired): Encrypted is true with a Scheme tag and a single
//     IV; the loader skips these with a warning.
//   - envelope (1.7): Encrypted is true and Data/IV/WrappedKey/KeyIV carry the
//     full encrypted packet.
type AssetDoc struct {
	Name       string     `json:"name"`
	Data       string     `json:"data"`
	Encrypted  bool       `json:"encrypted,omitempty"`
	Scheme     string     `json:"scheme,omitempty"` // interim 1.6 format only
	IV         string     `json:"iv,omitempty"`
	WrappedKey string     `json:"wrappedKey,omitempty"`
	KeyIV      string     `json:"keyIv,omitempty"`
	Lights     []LightDoc `json:"lights,omitempty"` // versions 1.2+
}

// LightDoc is one light annotation attached to an asset.
type LightDoc struct {
	Name      string     `json:"name"`
	Intensity float64    `json:"intensity"`
	Position  [3]float64 `json:"position"`
}
