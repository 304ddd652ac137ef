package app

import (
	"context"
	"fmt"

	"github.com/vk/sweepctl/internal/archive"
	"github.com/vk/sweepctl/internal/ctxlog"
	"github.com/vk/sweepctl/internal/space"
	"github.com/vk/sweepctl/internal/trial"
	"github.com/vk/sweepctl/internal/validate"
)

// Run executes the main application logic based on the provided configuration.
func (a *App) Run(ctx context.Context, config *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if config.HealthcheckPort > 0 {
		a.startHealthcheckServer(config.HealthcheckPort)
	}

	if a.docs.Sweep == nil && a.docs.Run == nil {
		return fmt.Errorf("no sweep or run documents found under the given paths")
	}

	if err := a.validateDocuments(); err != nil {
		return err
	}

	if a.docs.Sweep != nil {
		sp, err := space.New(a.docs.Sweep, a.registry)
		if err != nil {
			return fmt.Errorf("failed to build parameter space: %w", err)
		}
		a.describeSpace(sp)

		if config.OutDir != "" {
			if err := a.materializeTrials(ctx, sp, config); err != nil {
				return err
			}
		}
	} else if config.OutDir != "" {
		return fmt.Errorf("trial materialization requires a sweep document")
	}

	if config.CheckData {
		if err := a.checkData(ctx); err != nil {
			return err
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// validateDocuments runs every applicable rule set, logs each diagnostic,
// and fails when any has error severity.
func (a *App) validateDocuments() error {
	var diags validate.Diagnostics
	if a.docs.Sweep != nil {
		diags = append(diags, validate.Sweep(a.docs.Sweep, a.registry)...)
	}
	if a.docs.Run != nil {
		diags = append(diags, validate.Run(a.docs.Run)...)
	}
	if a.docs.Sweep != nil && a.docs.Run != nil {
		diags = append(diags, validate.CrossCheck(a.docs.Sweep, a.docs.Run)...)
	}

	for _, diag := range diags {
		if diag.Severity == validate.Error {
			a.logger.Error(diag.Summary, "subject", diag.Subject, "detail", diag.Detail)
		} else {
			a.logger.Warn(diag.Summary, "subject", diag.Subject, "detail", diag.Detail)
		}
	}

	if diags.HasErrors() {
		return fmt.Errorf("validation failed with %d error(s)", len(diags.Errs()))
	}
	a.logger.Info("✅ Documents validated.", "diagnostics", len(diags))
	return nil
}

func (a *App) describeSpace(sp *space.Space) {
	if total, finite := sp.Cardinality(); finite {
		a.logger.Info("Parameter space described.",
			"parameters", sp.Count(), "finite", true, "grid_size", total)
	} else {
		a.logger.Info("Parameter space described.",
			"parameters", sp.Count(), "finite", false)
	}
}

func (a *App) materializeTrials(ctx context.Context, sp *space.Space, config *Config) error {
	if a.docs.Run == nil {
		return fmt.Errorf("trial materialization requires a run document as the base")
	}

	trials, err := trial.Expand(sp, a.docs.Sweep.Method, config.Trials, config.Seed)
	if err != nil {
		return fmt.Errorf("failed to expand trials: %w", err)
	}

	a.logger.Info("🚀 Materializing trials...", "count", len(trials), "dir", config.OutDir)
	writer := trial.NewWriter(config.OutDir, config.WorkerCount)
	if err := writer.WriteAll(ctx, a.docs.Run, trials); err != nil {
		return err
	}
	a.logger.Info("🏁 Materialization finished.")
	return nil
}

func (a *App) checkData(ctx context.Context) error {
	if a.docs.Run == nil {
		return fmt.Errorf("data checking requires a run document")
	}

	paths := append([]string{}, a.docs.Run.Data.Paths.Train...)
	paths = append(paths, a.docs.Run.Data.Paths.Validate...)

	failed := 0
	for _, probe := range archive.Paths(ctx, paths) {
		switch {
		case !probe.Exists:
			a.logger.Error("Archive missing.", "path", probe.Path)
			failed++
		case probe.Err != nil:
			a.logger.Error("Archive unreadable.", "path", probe.Path, "error", probe.Err)
			failed++
		default:
			a.logger.Info("Archive ok.", "path", probe.Path, "samples", probe.Samples)
		}
	}

	if failed > 0 {
		return fmt.Errorf("data check failed for %d archive(s)", failed)
	}
	return nil
}
