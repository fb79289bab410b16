// Package service implements the project persistence core: the serializer that
// assembles current-version documents and the migrator that loads any of the
// eight historical schema versions into the normalized model.
package service

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/sync/errgroup"

	cryptoService "github.com/allisson/hdrivault/internal/crypto/service"
	projectDomain "github.com/allisson/hdrivault/internal/project/domain"
)

// SerializerService assembles schema-1.7 documents from the normalized model.
//
// Every asset is envelope-encrypted; per-asset encryptions within one save are
// independent and run concurrently. The final document assembly joins all of
// them: if any asset fails to encrypt, the whole save fails and no partial
// document is produced.
type SerializerService struct {
	cipher cryptoService.EnvelopeCipher
}

// NewSerializer creates a new SerializerService.
func NewSerializer(cipher cryptoService.EnvelopeCipher) *SerializerService {
	return &SerializerService{cipher: cipher}
}

// Serialize builds a current-version document from the project. Settings and
// material fields are copied verbatim (no migration logic runs on save; output
// is always the newest schema).
func (s *SerializerService) Serialize(
	ctx context.Context,
	project *projectDomain.NormalizedProject,
) (*projectDomain.Document, error) {
	if err := project.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", projectDomain.ErrInvalidFormat, err)
	}

	hdris := make([]projectDomain.AssetDoc, len(project.Assets))

	// Fan out per-asset encryption, join all before assembling the document
	g, gctx := errgroup.WithContext(ctx)
	for i := range project.Assets {
		asset := &project.Assets[i]
		g.Go(func() error {
			packet, err := s.cipher.EncryptPayload(gctx, asset.Data)
			if err != nil {
				return fmt.Errorf("failed to encrypt asset %q: %w", asset.Name, err)
			}

			hdris[i] = projectDomain.AssetDoc{
				Name:       asset.Name,
				Data:       packet.Ciphertext,
				Encrypted:  true,
				IV:         packet.ContentNonce,
				WrappedKey: packet.WrappedKey,
				KeyIV:      packet.KeyNonce,
				Lights:     lightsToDoc(asset.Lights),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	settings := project.Settings
	materials := project.Materials

	return &projectDomain.Document{
		Version: projectDomain.CurrentVersion,
		Settings: &projectDomain.SettingsDoc{
			EnvRotation:    &settings.Rotation,
			Exposure:       &settings.Exposure,
			ShowBackground: &settings.ShowBackground,
			Bloom:          &settings.Bloom,
		},
		Materials: &projectDomain.MaterialsDoc{
			Metallic:    &materials.Metalness,
			Roughness:   &materials.Roughness,
			NormalScale: &materials.NormalScale,
		},
		Hdris:        hdris,
		SelectedHdri: project.SelectedAsset,
		LoadedPreset: project.Preset,
	}, nil
}

// SerializePreset marshals a preset into the sibling plain-JSON format.
// Presets are never encrypted.
func (s *SerializerService) SerializePreset(preset *projectDomain.Preset) ([]byte, error) {
	if err := preset.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", projectDomain.ErrInvalidFormat, err)
	}
	return json.MarshalIndent(preset, "", "  ")
}

func lightsToDoc(lights []projectDomain.LightAnnotation) []projectDomain.LightDoc {
	if len(lights) == 0 {
		return nil
	}
	docs := make([]projectDomain.LightDoc, len(lights))
	for i, l := range lights {
		docs[i] = projectDomain.LightDoc{Name: l.Name, Intensity: l.Intensity, Position: l.Position}
	}
	return docs
}
