package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionKnown(t *testing.T) {
	for _, v := range []Version{V10, V11, V12, V13, V14, V15, V16, V17} {
		assert.True(t, v.Known(), "version %s", v)
	}
	assert.False(t, Version("9.9").Known())
	assert.False(t, Version("").Known())
	assert.False(t, Version("1.8").Known())
}

func TestSettingsValidate(t *testing.T) {
	t.Run("accepts valid settings", func(t *testing.T) {
		s := Settings{Rotation: 0.25, Exposure: 1.2, ShowBackground: true, Bloom: 0.35}
		assert.NoError(t, s.Validate())
	})

	t.Run("rejects rotation above one turn", func(t *testing.T) {
		s := Settings{Rotation: 1.5, Exposure: 1.0}
		assert.Error(t, s.Validate())
	})

	t.Run("rejects negative exposure", func(t *testing.T) {
		s := Settings{Exposure: -0.1}
		assert.Error(t, s.Validate())
	})
}

func TestMaterialsValidate(t *testing.T) {
	t.Run("accepts valid materials", func(t *testing.T) {
		m := Materials{Metalness: 0.5, Roughness: 0.8, NormalScale: 1.0}
		assert.NoError(t, m.Validate())
	})

	t.Run("rejects metalness above one", func(t *testing.T) {
		m := Materials{Metalness: 1.2, Roughness: 0.5}
		assert.Error(t, m.Validate())
	})
}

func TestPresetValidate(t *testing.T) {
	t.Run("accepts fixed version", func(t *testing.T) {
		p := Preset{Version: PresetVersion, Name: "studio-soft", Materials: Materials{Roughness: 1}}
		assert.NoError(t, p.Validate())
	})

	t.Run("rejects other versions", func(t *testing.T) {
		p := Preset{Version: "2.0"}
		assert.Error(t, p.Validate())
	})

	t.Run("rejects missing version", func(t *testing.T) {
		p := Preset{}
		assert.Error(t, p.Validate())
	})
}

func TestNormalizedProjectAsset(t *testing.T) {
	project := &NormalizedProject{
		Assets: []AssetRecord{{Name: "studio"}, {Name: "sunset"}},
	}

	asset, ok := project.Asset("sunset")
	assert.True(t, ok)
	assert.Equal(t, "sunset", asset.Name)

	_, ok = project.Asset("missing")
	assert.False(t, ok)
}
