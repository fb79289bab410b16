package domain

import (
	"github.com/google/uuid"
	validation "github.com/jellydator/validation"
)

// Default values for fields introduced after schema 1.0. A document older than
// the version that introduced a field loads with these.
const (
	DefaultRotation       = 0.0
	DefaultExposure       = 1.0
	DefaultShowBackground = true  // introduced in 1.2
	DefaultBloom          = 0.35  // introduced in 1.3
	DefaultMetalness      = 0.0   // materials block introduced in 1.1
	DefaultRoughness      = 1.0
	DefaultNormalScale    = 1.0 // introduced in 1.3
)

// Settings is the normalized form of the global environment settings.
type Settings struct {
	Rotation       float64
	Exposure       float64
	ShowBackground bool
	Bloom          float64
}

// Validate checks the settings ranges.
func (s Settings) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Rotation, validation.Min(0.0), validation.Max(1.0)),
		validation.Field(&s.Exposure, validation.Min(0.0)),
		validation.Field(&s.Bloom, validation.Min(0.0)),
	)
}

// Materials is the normalized form of the per-material parameters. The JSON
// tags serve the preset format only; versioned documents go through
// MaterialsDoc.
type Materials struct {
	Metalness   float64 `json:"metalness"`
	Roughness   float64 `json:"roughness"`
	NormalScale float64 `json:"normalScale"`
}

// Validate checks the material parameter ranges.
func (m Materials) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Metalness, validation.Min(0.0), validation.Max(1.0)),
		validation.Field(&m.Roughness, validation.Min(0.0), validation.Max(1.0)),
		validation.Field(&m.NormalScale, validation.Min(0.0)),
	)
}

// LightAnnotation is one light attached to an asset.
type LightAnnotation struct {
	Name      string
	Intensity float64
	Position  [3]float64
}

// AssetRecord is one decrypted binary asset in memory.
//
// Data always holds raw bytes regardless of how the asset was stored.
// SchemaOrigin records the document version the asset was loaded from, and
// Encrypted whether it was stored as an encrypted packet.
type AssetRecord struct {
	ID           uuid.UUID
	Name         string
	Data         []byte
	ContentType  string
	Lights       []LightAnnotation
	SchemaOrigin Version
	Encrypted    bool
}

// NormalizedProject is the single in-memory shape every document version
// migrates into. Created by the migrator, consumed by the rendering/UI layer,
// and replaced wholesale when another project is loaded.
type NormalizedProject struct {
	Settings      Settings
	Materials     Materials
	Assets        []AssetRecord
	SelectedAsset string
	Preset        *Preset
}

// Asset returns the asset with the given name.
func (p *NormalizedProject) Asset(name string) (*AssetRecord, bool) {
	for i := range p.Assets {
		if p.Assets[i].Name == name {
			return &p.Assets[i], true
		}
	}
	return nil, false
}

// Validate checks the normalized settings and materials.
func (p *NormalizedProject) Validate() error {
	if err := p.Settings.Validate(); err != nil {
		return err
	}
	if err := p.Materials.Validate(); err != nil {
		return err
	}
	if p.Preset != nil {
		return p.Preset.Validate()
	}
	return nil
}
