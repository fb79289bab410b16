// Package app provides the dependency injection container for assembling
// application components.
package app

import (
	"context"
	"log/slog"
	"os"
	"sync"

	"github.com/allisson/hdrivault/internal/config"
	cryptoService "github.com/allisson/hdrivault/internal/crypto/service"
	projectUsecase "github.com/allisson/hdrivault/internal/project/usecase"
)

// Container holds all application dependencies and provides methods to access them.
// It follows the lazy initialization pattern - components are created on first access.
type Container struct {
	// Configuration
	config *config.Config

	// Infrastructure
	logger *slog.Logger

	// Crypto services
	keySource      cryptoService.KeySource
	keyProvider    *cryptoService.KeyProviderService
	aeadManager    cryptoService.AEADManager
	envelopeCipher cryptoService.EnvelopeCipher

	// Use cases
	projectUseCase projectUsecase.ProjectUseCase

	// Initialization flags
	loggerInit         sync.Once
	keySourceInit      sync.Once
	keyProviderInit    sync.Once
	aeadManagerInit    sync.Once
	envelopeCipherInit sync.Once
	projectUseCaseInit sync.Once
	initErrors         map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
// It creates a new logger on first access based on the log level in configuration.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// Shutdown releases container resources, zeroing the cached application key.
func (c *Container) Shutdown(_ context.Context) error {
	if c.keyProvider != nil {
		c.keyProvider.Close()
	}
	return nil
}

// initLogger creates and configures a structured logger based on the log level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}
