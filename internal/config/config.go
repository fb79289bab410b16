// Package config provides application configuration through environment variables.
package config

import (
	"os"
	"path/filepath"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// AppKey is the base64-encoded 32-byte application key used to wrap
	// per-asset data keys. Ignored when KMSKeyURI is set.
	AppKey string
	// AppKeyID is an identifier for the application key (e.g., "app-key-2026").
	AppKeyID string

	// KMSKeyURI is the gocloud.dev/secrets keeper URI used to unwrap
	// WrappedAppKey (e.g., "hashivault://mykey", "base64key://...").
	KMSKeyURI string
	// WrappedAppKey is the base64-encoded application key ciphertext produced
	// by the KMS keeper. Required when KMSKeyURI is set.
	WrappedAppKey string

	// EncryptionAlgorithm selects the AEAD used for asset payloads
	// ("aes-gcm" or "chacha20-poly1305").
	EncryptionAlgorithm string
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Application key configuration
		AppKey:   env.GetString("APP_KEY", ""),
		AppKeyID: env.GetString("APP_KEY_ID", "app-key"),

		// KMS configuration
		KMSKeyURI:     env.GetString("KMS_KEY_URI", ""),
		WrappedAppKey: env.GetString("WRAPPED_APP_KEY", ""),

		// Encryption
		EncryptionAlgorithm: env.GetString("ENCRYPTION_ALGORITHM", "aes-gcm"),
	}
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	// Get current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	// Search for .env file recursively up the directory tree
	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			// .env file found, load it
			_ = godotenv.Load(envPath)
			return
		}

		// Move to parent directory
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root directory
			break
		}
		dir = parent
	}
}
