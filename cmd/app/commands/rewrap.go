package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/allisson/hdrivault/internal/app"
	"github.com/allisson/hdrivault/internal/config"
)

// RunRewrap rewrites a document of any supported version at the current schema
// with freshly wrapped data keys.
func RunRewrap(ctx context.Context, cfg *config.Config, w io.Writer, path string) error {
	if path == "" {
		return fmt.Errorf("missing project file argument")
	}

	container := app.NewContainer(cfg)
	defer closeContainer(container, container.Logger())

	useCase, err := container.ProjectUseCase()
	if err != nil {
		return err
	}

	warnings, err := useCase.Rewrap(ctx, path)
	if err != nil {
		return err
	}

	for _, warning := range warnings {
		fmt.Fprintf(w, "warning: %s: %s\n", warning.AssetName, warning.Reason)
	}
	fmt.Fprintf(w, "rewrapped %s\n", path)

	return nil
}
