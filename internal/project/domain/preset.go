package domain

import (
	validation "github.com/jellydator/validation"
)

// PresetVersion is the fixed version tag of the sibling preset format.
const PresetVersion = "1.0"

// Preset is the sibling, simpler document format: material and visibility
// parameters as plain JSON with a fixed version tag and no encryption.
type Preset struct {
	Version    string     `json:"version"`
	Name       string     `json:"name"`
	Materials  Materials  `json:"materials"`
	Visibility Visibility `json:"visibility"`
}

// Visibility holds the preset's scene visibility toggles.
type Visibility struct {
	ShowBackground bool `json:"showBackground"`
	ShowGround     bool `json:"showGround"`
}

// Validate checks the preset version tag and material ranges.
func (p Preset) Validate() error {
	if err := validation.ValidateStruct(&p,
		validation.Field(&p.Version, validation.Required, validation.In(PresetVersion)),
		validation.Field(&p.Name, validation.Length(0, 255)),
	); err != nil {
		return err
	}
	return p.Materials.Validate()
}
