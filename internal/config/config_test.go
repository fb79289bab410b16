package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := Load()
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "app-key", cfg.AppKeyID)
		assert.Equal(t, "aes-gcm", cfg.EncryptionAlgorithm)
	})

	t.Run("reads environment overrides", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("APP_KEY_ID", "studio-key-2026")
		t.Setenv("KMS_KEY_URI", "base64key://smGbjm71Nxd1Ig5FS0wj9SlbzAIrnolCz9bQQ6uAhl4=")
		t.Setenv("ENCRYPTION_ALGORITHM", "chacha20-poly1305")

		cfg := Load()
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "studio-key-2026", cfg.AppKeyID)
		assert.Equal(t, "base64key://smGbjm71Nxd1Ig5FS0wj9SlbzAIrnolCz9bQQ6uAhl4=", cfg.KMSKeyURI)
		assert.Equal(t, "chacha20-poly1305", cfg.EncryptionAlgorithm)
	})
}
