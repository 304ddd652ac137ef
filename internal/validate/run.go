package validate

import "github.com/vk/sweepctl/internal/schema"

// Run checks a run document. The external trainer does its own validation
// too, but catching these locally saves a cluster round-trip.
func Run(cfg *schema.RunConfig) Diagnostics {
	var diags Diagnostics

	diags = append(diags, checkSplit("data.paths.train", cfg.Data.Paths.Train)...)
	diags = append(diags, checkSplit("data.paths.validate", cfg.Data.Paths.Validate)...)

	seen := make(map[string]struct{}, len(cfg.Data.Paths.Train))
	for _, path := range cfg.Data.Paths.Train {
		seen[path] = struct{}{}
	}
	for _, path := range cfg.Data.Paths.Validate {
		if _, ok := seen[path]; ok {
			diags = diags.Append(Error, "data.paths", "train and validate sets overlap", "%q appears in both splits", path)
		}
	}

	if cfg.Optim.Name == "" {
		diags = diags.Append(Error, "optim.name", "missing optimizer name", "the trainer cannot construct an unnamed optimizer")
	}

	if cfg.Training.NumEpochs < 1 {
		diags = diags.Append(Error, "training.num_epochs", "non-positive epoch count", "got %d, need >= 1", cfg.Training.NumEpochs)
	}
	if cfg.Training.Checkpoint.Every < 1 {
		diags = diags.Append(Error, "training.checkpoint.every", "non-positive checkpoint cadence", "got %d, need >= 1", cfg.Training.Checkpoint.Every)
	}

	if cfg.WandB.Use && cfg.WandB.LogEvery < 1 {
		diags = diags.Append(Error, "wandb.log_every", "non-positive logging cadence", "got %d with wandb.use enabled, need >= 1", cfg.WandB.LogEvery)
	}
	if cfg.Tensorboard.LogScalarsEvery != nil && *cfg.Tensorboard.LogScalarsEvery < 1 {
		diags = diags.Append(Error, "tensorboard.log_scalars_every", "non-positive logging cadence", "got %d, need >= 1 when set", *cfg.Tensorboard.LogScalarsEvery)
	}

	for name, weight := range cfg.Losses.Weights {
		subject := "losses.weights." + name
		if weight < 0 {
			diags = diags.Append(Error, subject, "negative loss weight", "got %v", weight)
		} else if weight == 0 {
			diags = diags.Append(Warning, subject, "zero loss weight", "the %q loss contributes nothing to training", name)
		}
	}

	return diags
}

func checkSplit(subject string, paths []string) Diagnostics {
	var diags Diagnostics

	if len(paths) == 0 {
		diags = diags.Append(Error, subject, "empty split", "at least one archive path is required")
		return diags
	}

	seen := make(map[string]struct{}, len(paths))
	for _, path := range paths {
		if _, ok := seen[path]; ok {
			diags = diags.Append(Error, subject, "duplicate archive path", "%q is listed twice", path)
			continue
		}
		seen[path] = struct{}{}
	}

	return diags
}
