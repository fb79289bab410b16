// Package usecase orchestrates project persistence: saving the normalized
// project as an encrypted document, loading any supported document version,
// and rewrapping legacy documents to the current schema.
package usecase

import (
	"context"

	projectDomain "github.com/allisson/hdrivault/internal/project/domain"
)

// ProjectRepository defines the storage port for document bytes.
type ProjectRepository interface {
	// Read returns the raw bytes of the document at path.
	Read(ctx context.Context, path string) ([]byte, error)

	// Write stores data at path atomically.
	Write(ctx context.Context, path string, data []byte) error
}

// Serializer assembles current-version documents from the normalized model.
type Serializer interface {
	Serialize(ctx context.Context, project *projectDomain.NormalizedProject) (*projectDomain.Document, error)
	SerializePreset(preset *projectDomain.Preset) ([]byte, error)
}

// Migrator parses any supported document version into the normalized model.
type Migrator interface {
	Load(ctx context.Context, rawText []byte) (*projectDomain.NormalizedProject, []projectDomain.Warning, error)
	LoadPreset(rawText []byte) (*projectDomain.Preset, error)
}

// ProjectUseCase defines the persistence operations exposed to callers.
type ProjectUseCase interface {
	// Save serializes and writes the project. All-or-nothing: on any asset
	// encryption failure nothing is written.
	Save(ctx context.Context, path string, project *projectDomain.NormalizedProject) error

	// Load reads, migrates, and decrypts the document at path. Per-asset
	// failures are returned as warnings alongside the project.
	Load(ctx context.Context, path string) (*projectDomain.NormalizedProject, []projectDomain.Warning, error)

	// Rewrap loads a document of any supported version and rewrites it at the
	// current schema with freshly wrapped data keys.
	Rewrap(ctx context.Context, path string) ([]projectDomain.Warning, error)

	// SavePreset writes the sibling plain-JSON preset format.
	SavePreset(ctx context.Context, path string, preset *projectDomain.Preset) error

	// LoadPreset reads the sibling plain-JSON preset format.
	LoadPreset(ctx context.Context, path string) (*projectDomain.Preset, error)
}
