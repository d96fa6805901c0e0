package app

import (
	"context"
	"fmt"

	"github.com/vk/examplerun/internal/ctxlog"
	"github.com/vk/examplerun/internal/runner"
)

// Run executes the validation sweep based on the provided configuration.
func (a *App) Run(ctx context.Context, cfg *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if cfg.HealthcheckPort > 0 {
		a.startHealthcheckServer(cfg.HealthcheckPort)
	}

	a.logger.Info("🚀 Starting example validation sweep...", "steps", len(a.steps))
	if err := runner.New(a.tool, a.steps).Run(ctx); err != nil {
		return fmt.Errorf("validation sweep failed: %w", err)
	}
	a.logger.Info("🏁 All examples validated.")

	a.logger.Debug("App.Run method finished.")
	return nil
}
