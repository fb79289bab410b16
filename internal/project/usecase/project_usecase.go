package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	projectDomain "github.com/allisson/hdrivault/internal/project/domain"
)

type projectUseCase struct {
	repo       ProjectRepository
	serializer Serializer
	migrator   Migrator
	logger     *slog.Logger
}

// NewProjectUseCase creates a new ProjectUseCase instance.
func NewProjectUseCase(
	repo ProjectRepository,
	serializer Serializer,
	migrator Migrator,
	logger *slog.Logger,
) ProjectUseCase {
	return &projectUseCase{
		repo:       repo,
		serializer: serializer,
		migrator:   migrator,
		logger:     logger,
	}
}

// Save serializes the project at the current schema and writes it atomically.
func (u *projectUseCase) Save(
	ctx context.Context,
	path string,
	project *projectDomain.NormalizedProject,
) error {
	doc, err := u.serializer.Serialize(ctx, project)
	if err != nil {
		return err
	}

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	if err := u.repo.Write(ctx, path, raw); err != nil {
		return err
	}

	u.logger.Info("project saved",
		slog.String("path", path),
		slog.String("version", string(doc.Version)),
		slog.Int("assets", len(doc.Hdris)),
	)
	return nil
}

// Load reads and migrates the document at path. Per-asset warnings are logged
// and returned; the caller presents them to the user.
func (u *projectUseCase) Load(
	ctx context.Context,
	path string,
) (*projectDomain.NormalizedProject, []projectDomain.Warning, error) {
	raw, err := u.repo.Read(ctx, path)
	if err != nil {
		return nil, nil, err
	}

	project, warnings, err := u.migrator.Load(ctx, raw)
	if err != nil {
		return nil, nil, err
	}

	for _, w := range warnings {
		u.logger.Warn("asset skipped during load",
			slog.String("path", path),
			slog.String("asset", w.AssetName),
			slog.String("reason", string(w.Reason)),
		)
	}
	u.logger.Info("project loaded",
		slog.String("path", path),
		slog.Int("assets", len(project.Assets)),
		slog.Int("warnings", len(warnings)),
	)
	return project, warnings, nil
}

// Rewrap upgrades a document of any supported version to the current schema.
// Assets that fail to decrypt are dropped from the rewritten document, mirroring
// what a load-then-save through the UI would produce.
func (u *projectUseCase) Rewrap(ctx context.Context, path string) ([]projectDomain.Warning, error) {
	project, warnings, err := u.Load(ctx, path)
	if err != nil {
		return nil, err
	}

	if err := u.Save(ctx, path, project); err != nil {
		return warnings, err
	}

	u.logger.Info("project rewrapped",
		slog.String("path", path),
		slog.Int("assets", len(project.Assets)),
		slog.Int("dropped", len(warnings)),
	)
	return warnings, nil
}

// SavePreset writes the preset file.
func (u *projectUseCase) SavePreset(
	ctx context.Context,
	path string,
	preset *projectDomain.Preset,
) error {
	raw, err := u.serializer.SerializePreset(preset)
	if err != nil {
		return err
	}
	return u.repo.Write(ctx, path, raw)
}

// LoadPreset reads the preset file.
func (u *projectUseCase) LoadPreset(
	ctx context.Context,
	path string,
) (*projectDomain.Preset, error) {
	raw, err := u.repo.Read(ctx, path)
	if err != nil {
		return nil, err
	}
	return u.migrator.LoadPreset(raw)
}
