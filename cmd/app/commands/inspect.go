package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/allisson/hdrivault/internal/app"
	"github.com/allisson/hdrivault/internal/config"
)

// RunInspect loads a project document of any supported version and reports its
// normalized contents and per-asset warnings.
func RunInspect(ctx context.Context, cfg *config.Config, w io.Writer, path string) error {
	if path == "" {
		return fmt.Errorf("missing project file argument")
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

	fmt.Fprintf(w, "settings: rotation=%.3f exposure=%.3f bloom=%.3f showBackground=%t\n",
		project.Settings.Rotation, project.Settings.Exposure,
		project.Settings.Bloom, project.Settings.ShowBackground)
	fmt.Fprintf(w, "materials: metalness=%.3f roughness=%.3f normalScale=%.3f\n",
		project.Materials.Metalness, project.Materials.Roughness, project.Materials.NormalScale)

	for _, asset := range project.Assets {
		encrypted := "plain"
		if asset.Encrypted {
			encrypted = "encrypted"
		}
		fmt.Fprintf(w, "asset %q: %d bytes, %s, schema %s, %d lights\n",
			asset.Name, len(asset.Data), encrypted, asset.SchemaOrigin, len(asset.Lights))
	}
	if project.SelectedAsset != "" {
		fmt.Fprintf(w, "selected: %q\n", project.SelectedAsset)
	}
	if project.Preset != nil {
		fmt.Fprintf(w, "preset: %q\n", project.Preset.Name)
	}
	for _, warning := range warnings {
		fmt.Fprintf(w, "warning: %s: %s\n", warning.AssetName, warning.Reason)
	}

	return nil
}
