package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/examplerun/internal/ctxlog"
	"github.com/vk/examplerun/internal/plan"
	"github.com/vk/examplerun/internal/toolchain"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	steps  []*plan.Step
	tool   toolchain.Tool
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and the embedded
// plan already loaded and validated. A plan that fails to load is a fatal
// startup error, so NewApp panics; the entrypoint recovers and turns the
// panic into a clean exit.
func NewApp(outW io.Writer, cfg *Config, tool toolchain.Tool) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	steps, err := plan.Load(ctx)
	if err != nil {
		panic(fmt.Errorf("failed to load validation plan: %w", err))
	}
	logger.Debug("Validation plan loaded.", "step_count", len(steps))

	return &App{
		outW:   outW,
		logger: logger,
		steps:  steps,
		tool:   tool,
	}
}

// Steps returns the loaded plan. This is primarily for testing.
func (a *App) Steps() []*plan.Step {
	return a.steps
}
