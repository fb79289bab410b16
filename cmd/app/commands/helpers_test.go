package commands

import (
	"context"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/allisson/hdrivault/internal/app"
	"github.com/allisson/hdrivault/internal/config"
	projectDomain "github.com/allisson/hdrivault/internal/project/domain"
)

const testAppKey = "c2VjcmV0LXNlY3JldC1zZWNyZXQtc2VjcmV0LTEyMzQ=" // 32 bytes

func testConfig() *config.Config {
	return &config.Config{
		LogLevel:            "error",
		AppKey:              testAppKey,
		AppKeyID:            "test-key",
		EncryptionAlgorithm: "aes-gcm",
	}
}

// writeTestProject saves a single-asset project under a temp directory and
// returns its path.
func writeTestProject(t *testing.T, cfg *config.Config, assetData []byte) string {
	t.Helper()
	ctx := context.Background()

	container := app.NewContainer(cfg)
	defer func() {
		require.NoError(t, container.Shutdown(ctx))
	}()

	useCase, err := container.ProjectUseCase()
	require.NoError(t, err)

	project := &projectDomain.NormalizedProject{
		Settings: projectDomain.Settings{
			Rotation:       0.25,
			Exposure:       1.2,
			ShowBackground: true,
			Bloom:          0.35,
		},
		Materials: projectDomain.Materials{
			Metalness:   0.5,
			Roughness:   0.8,
			NormalScale: 1.0,
		},
		Assets: []projectDomain.AssetRecord{
			{Name: "studio", Data: assetData, ContentType: "application/octet-stream"},
		},
		SelectedAsset: "studio",
	}

	path := filepath.Join(t.TempDir(), "scene.json")
	require.NoError(t, useCase.Save(ctx, path, project))
	return path
}

// envValue extracts the unquoted value of a NAME="..." line from command output.
func envValue(t *testing.T, output, name string) string {
	t.Helper()
	for _, line := range strings.Split(output, "\n") {
		if rest, ok := strings.CutPrefix(line, name+"="); ok {
			value, err := strconv.Unquote(rest)
			require.NoError(t, err)
			return value
		}
	}
	t.Fatalf("output has no %s line:\n%s", name, output)
	return ""
}
