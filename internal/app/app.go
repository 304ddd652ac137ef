package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/sweepctl/internal/ctxlog"
	"github.com/vk/sweepctl/internal/registry"
	"github.com/vk/sweepctl/internal/schema"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	docs     *schema.Documents
	config   *Config
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and registry.
func NewApp(outW io.Writer, config *Config, loader schema.Loader, modules ...registry.Module) *App {
	logger := newLogger(config.LogLevel, config.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	// Load all documents into the format-agnostic model first.
	docs, err := loader.Load(ctx, config.paths()...)
	if err != nil {
		// A failure to load documents is a fatal startup error.
		panic(fmt.Errorf("failed to load documents: %w", err))
	}
	logger.Debug("Documents loaded and translated into unified model.",
		"has_sweep", docs.Sweep != nil, "has_run", docs.Run != nil)

	// Create and populate the registry with distribution kinds.
	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All distribution modules registered.", "count", len(modules))

	// Validate the integrity of the registry.
	if err := reg.ValidateRegistry(ctx); err != nil {
		// This is a programmer error (incomplete kind declaration), so we panic.
		panic(err)
	}

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		docs:     docs,
		config:   config,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Documents returns the loaded documents. This is primarily for testing.
func (a *App) Documents() *schema.Documents {
	return a.docs
}
