package commands

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunInspect(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig()

	t.Run("success", func(t *testing.T) {
		path := writeTestProject(t, cfg, []byte("hdri-bytes"))

		var buf bytes.Buffer
		err := RunInspect(ctx, cfg, &buf, path)
		require.NoError(t, err)

		output := buf.String()
		require.Contains(t, output, `asset "studio": 10 bytes, encrypted`)
		require.Contains(t, output, "exposure=1.200")
		require.Contains(t, output, "metalness=0.500")
		require.Contains(t, output, `selected: "studio"`)
		require.NotContains(t, output, "warning:")
	})

	t.Run("wrong-key-reports-warning", func(t *testing.T) {
		path := writeTestProject(t, cfg, []byte("hdri-bytes"))

		otherCfg := testConfig()
		otherCfg.AppKey = "b3RoZXIta2V5LW90aGVyLWtleS1vdGhlci1rZXktMzI=" // different 32 bytes

		var buf bytes.Buffer
		err := RunInspect(ctx, otherCfg, &buf, path)
		require.NoError(t, err)
		require.Contains(t, buf.String(), "warning: studio:")
	})

	t.Run("missing-argument", func(t *testing.T) {
		var buf bytes.Buffer
		err := RunInspect(ctx, cfg, &buf, "")
		require.Error(t, err)
	})

	t.Run("missing-file", func(t *testing.T) {
		var buf bytes.Buffer
		err := RunInspect(ctx, cfg, &buf, filepath.Join(t.TempDir(), "nope.json"))
		require.Error(t, err)
	})
}
