package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/allisson/hdrivault/internal/app"
	"github.com/allisson/hdrivault/internal/config"
	projectDomain "github.com/allisson/hdrivault/internal/project/domain"
)

// RunExtract loads a project and writes the decrypted bytes of one asset to
// outPath.
func RunExtract(ctx context.Context, cfg *config.Config, w io.Writer, path, assetName, outPath string) error {
	if path == "" {
		return fmt.Errorf("missing project file argument")
	}
	if assetName == "" {
		return fmt.Errorf("missing asset name")
	}
	if outPath == "" {
		return fmt.Errorf("missing output path")
	}

	container := app.NewContainer(cfg)
	defer closeContainer(container, container.Logger())

	useCase, err := container.ProjectUseCase()
	if err != nil {
		return err
	}

	project, warnings, err := useCase.Load(ctx, path)
	if err != nil {
		return err
	}
	for _, warning := range warnings {
		fmt.Fprintf(w, "warning: %s: %s\n", warning.AssetName, warning.Reason)
	}

	asset, ok := project.Asset(assetName)
	if !ok {
		return fmt.Errorf("%w: %q in %s", projectDomain.ErrAssetNotFound, assetName, path)
	}

	if err := os.WriteFile(outPath, asset.Data, 0o600); err != nil {
		return fmt.Errorf("write asset: %w", err)
	}
	fmt.Fprintf(w, "wrote %d bytes to %s\n", len(asset.Data), outPath)

	return nil
}
