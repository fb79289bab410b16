package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	cryptoDomain "github.com/allisson/hdrivault/internal/crypto/domain"
	cryptoService "github.com/allisson/hdrivault/internal/crypto/service"
	"github.com/allisson/hdrivault/internal/encoding"
	"github.com/allisson/hdrivault/internal/errors"
	projectDomain "github.com/allisson/hdrivault/internal/project/domain"
)

// schema describes which blocks and fields a document version carries. The
// migrator dispatches on this finite table; the version tag alone selects the
// parse path, and a mandatory block missing for that path is a format error
// rather than a trigger for shape guessing.
type schema struct {
	hasMaterials      bool // materials block mandatory (1.1+)
	hasShowBackground bool // settings.showBackground (1.2+)
	hasBloom          bool // settings.bloom, materials.normalScale (1.3+)
	renamedFields     bool // envRotation/metallic instead of rotation/metalness (1.4+)
	hasSelection      bool // selectedHdri, loadedPreset (1.5+)
}

// schemaTable is the per-version field table. Each version is a strict
// superset (or renaming) of the previous one.
var schemaTable = map[projectDomain.Version]schema{
	projectDomain.V10: {},
	projectDomain.V11: {hasMaterials: true},
	projectDomain.V12: {hasMaterials: true, hasShowBackground: true},
	projectDomain.V13: {hasMaterials: true, hasShowBackground: true, hasBloom: true},
	projectDomain.V14: {hasMaterials: true, hasShowBackground: true, hasBloom: true, renamedFields: true},
	projectDomain.V15: {hasMaterials: true, hasShowBackground: true, hasBloom: true, renamedFields: true, hasSelection: true},
	projectDomain.V16: {hasMaterials: true, hasShowBackground: true, hasBloom: true, renamedFields: true, hasSelection: true},
	projectDomain.V17: {hasMaterials: true, hasShowBackground: true, hasBloom: true, renamedFields: true, hasSelection: true},
}

// MigratorService parses any supported document version and normalizes it.
//
// Structural failures (malformed JSON, missing or unknown version, mandatory
// block absent) abort the whole load with ErrInvalidFormat. Per-asset failures
// are reported as warnings and never affect sibling assets.
type MigratorService struct {
	cipher cryptoService.EnvelopeCipher
}

// NewMigrator creates a new MigratorService.
func NewMigrator(cipher cryptoService.EnvelopeCipher) *MigratorService {
	return &MigratorService{cipher: cipher}
}

// Load parses rawText, migrates it to the normalized model, and returns the
// per-asset warnings collected along the way.
func (m *MigratorService) Load(
	ctx context.Context,
	rawText []byte,
) (*projectDomain.NormalizedProject, []projectDomain.Warning, error) {
	var doc projectDomain.Document
	if err := json.Unmarshal(rawText, &doc); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", projectDomain.ErrInvalidFormat, err)
	}

	if !doc.Version.Known() {
		if doc.Version == "" {
			return nil, nil, fmt.Errorf("%w: missing version", projectDomain.ErrInvalidFormat)
		}
		return nil, nil, fmt.Errorf("%w: unrecognized version %q", projectDomain.ErrInvalidFormat, doc.Version)
	}
	sc := schemaTable[doc.Version]

	settings, materials, err := extract(&doc, sc)
	if err != nil {
		return nil, nil, err
	}

	project := &projectDomain.NormalizedProject{
		Settings:  settings,
		Materials: materials,
	}

	// Assets are processed in document order; failures are independent
	var warnings []projectDomain.Warning
	for _, asset := range doc.Hdris {
		record, warning := m.loadAsset(ctx, doc.Version, asset)
		if warning != nil {
			warnings = append(warnings, *warning)
			continue
		}
		if record == nil {
			// Key acquisition failed: not a per-asset condition
			return nil, nil, cryptoDomain.ErrKeyUnavailable
		}
		project.Assets = append(project.Assets, *record)
	}

	if sc.hasSelection {
		// Drop the selection if the selected asset didn't survive the load
		if _, ok := project.Asset(doc.SelectedHdri); ok {
			project.SelectedAsset = doc.SelectedHdri
		}
		if doc.LoadedPreset != nil {
			if err := doc.LoadedPreset.Validate(); err != nil {
				return nil, nil, fmt.Errorf("%w: loaded preset: %v", projectDomain.ErrInvalidFormat, err)
			}
			project.Preset = doc.LoadedPreset
		}
	}

	if err := project.Validate(); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", projectDomain.ErrInvalidFormat, err)
	}

	return project, warnings, nil
}

// LoadPreset parses the sibling preset format.
func (m *MigratorService) LoadPreset(rawText []byte) (*projectDomain.Preset, error) {
	var preset projectDomain.Preset
	if err := json.Unmarshal(rawText, &preset); err != nil {
		return nil, fmt.Errorf("%w: %v", projectDomain.ErrInvalidFormat, err)
	}
	if err := preset.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", projectDomain.ErrInvalidFormat, err)
	}
	return &preset, nil
}

// extract produces normalized settings and materials for one schema table
// entry, applying the documented default for every field the selected version
// does not carry. No field is ever left unset.
func extract(
	doc *projectDomain.Document,
	sc schema,
) (projectDomain.Settings, projectDomain.Materials, error) {
	if doc.Settings == nil {
		return projectDomain.Settings{}, projectDomain.Materials{},
			fmt.Errorf("%w: missing settings block", projectDomain.ErrInvalidFormat)
	}
	if sc.hasMaterials && doc.Materials == nil {
		return projectDomain.Settings{}, projectDomain.Materials{},
			fmt.Errorf("%w: missing materials block", projectDomain.ErrInvalidFormat)
	}

	rotation := doc.Settings.Rotation
	if sc.renamedFields {
		rotation = doc.Settings.EnvRotation
	}

	settings := projectDomain.Settings{
		Rotation:       valueOr(rotation, projectDomain.DefaultRotation),
		Exposure:       valueOr(doc.Settings.Exposure, projectDomain.DefaultExposure),
		ShowBackground: projectDomain.DefaultShowBackground,
		Bloom:          projectDomain.DefaultBloom,
	}
	if sc.hasShowBackground && doc.Settings.ShowBackground != nil {
		settings.ShowBackground = *doc.Settings.ShowBackground
	}
	if sc.hasBloom {
		settings.Bloom = valueOr(doc.Settings.Bloom, projectDomain.DefaultBloom)
	}

	materials := projectDomain.Materials{
		Metalness:   projectDomain.DefaultMetalness,
		Roughness:   projectDomain.DefaultRoughness,
		NormalScale: projectDomain.DefaultNormalScale,
	}
	if sc.hasMaterials {
		metalness := doc.Materials.Metalness
		if sc.renamedFields {
			metalness = doc.Materials.Metallic
		}
		materials.Metalness = valueOr(metalness, projectDomain.DefaultMetalness)
		materials.Roughness = valueOr(doc.Materials.Roughness, projectDomain.DefaultRoughness)
		if sc.hasBloom {
			materials.NormalScale = valueOr(doc.Materials.NormalScale, projectDomain.DefaultNormalScale)
		}
	}

	return settings, materials, nil
}

// loadAsset decodes or decrypts one stored asset. It returns either a record,
// a warning (recoverable skip), or neither when key acquisition itself failed.
func (m *MigratorService) loadAsset(
	ctx context.Context,
	version projectDomain.Version,
	asset projectDomain.AssetDoc,
) (*projectDomain.AssetRecord, *projectDomain.Warning) {
	record := projectDomain.AssetRecord{
		ID:           uuid.Must(uuid.NewV7()),
		Name:         asset.Name,
		Lights:       lightsFromDoc(asset.Lights),
		SchemaOrigin: version,
	}

	switch {
	case asset.Encrypted && asset.Scheme == "" && packetOf(asset).Complete():
		data, err := m.cipher.DecryptPayload(ctx, packetOf(asset))
		if err != nil {
			if errors.Is(err, cryptoDomain.ErrKeyUnavailable) {
				// Not a per-asset condition; the caller aborts the load
				return nil, nil
			}
			return nil, &projectDomain.Warning{
				AssetName: asset.Name,
				Reason:    projectDomain.WarnDecryptFailed,
				Err:       err,
			}
		}
		record.Data = data
		record.Encrypted = true

	case asset.Encrypted:
		// Retired interim format: declared scheme or incomplete packet
		return nil, &projectDomain.Warning{
			AssetName: asset.Name,
			Reason:    projectDomain.WarnUnsupportedLegacyScheme,
			Err:       projectDomain.ErrUnsupportedLegacyScheme,
		}

	default:
		data, contentType, err := encoding.DecodePacked(asset.Data)
		if err != nil {
			return nil, &projectDomain.Warning{
				AssetName: asset.Name,
				Reason:    projectDomain.WarnInvalidPayload,
				Err:       err,
			}
		}
		record.Data = data
		record.ContentType = contentType
	}

	return &record, nil
}

func packetOf(asset projectDomain.AssetDoc) cryptoDomain.EncryptedPacket {
	return cryptoDomain.EncryptedPacket{
		Ciphertext:   asset.Data,
		ContentNonce: asset.IV,
		WrappedKey:   asset.WrappedKey,
		KeyNonce:     asset.KeyIV,
	}
}

func lightsFromDoc(docs []projectDomain.LightDoc) []projectDomain.LightAnnotation {
	if len(docs) == 0 {
		return nil
	}
	lights := make([]projectDomain.LightAnnotation, len(docs))
	for i, d := range docs {
		lights[i] = projectDomain.LightAnnotation{Name: d.Name, Intensity: d.Intensity, Position: d.Position}
	}
	return lights
}

func valueOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}
