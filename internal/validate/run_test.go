package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/sweepctl/internal/keypath"
	"github.com/vk/sweepctl/internal/schema"
)

func intPtr(i int) *int { return &i }

func validRun() *schema.RunConfig {
	cfg := &schema.RunConfig{}
	cfg.Data.Paths.Train = []string{"data/train-0.zip", "data/train-1.zip"}
	cfg.Data.Paths.Validate = []string{"data/validate-0.zip"}
	cfg.Model.Name = "ContactTracingTransformer"
	cfg.Optim.Name = "Adam"
	cfg.Training.NumEpochs = 60
	cfg.Training.Checkpoint.Every = 5
	cfg.WandB.Use = true
	cfg.WandB.LogEvery = 10
	cfg.Tensorboard.LogScalarsEvery = intPtr(1)
	cfg.Losses.Weights = map[string]float64{"infection": 1.0, "contagion": 0.5}
	return cfg
}

func TestRun_Valid(t *testing.T) {
	diags := Run(validRun())
	assert.Empty(t, diags)
}

func TestRun_Rules(t *testing.T) {
	testCases := []struct {
		name            string
		mutate          func(*schema.RunConfig)
		expectedSubject string
		severity        Severity
	}{
		{
			name:            "empty train split",
			mutate:          func(c *schema.RunConfig) { c.Data.Paths.Train = nil },
			expectedSubject: "data.paths.train",
			severity:        Error,
		},
		{
			name: "duplicate path inside a split",
			mutate: func(c *schema.RunConfig) {
				c.Data.Paths.Validate = []string{"data/validate-0.zip", "data/validate-0.zip"}
			},
			expectedSubject: "data.paths.validate",
			severity:        Error,
		},
		{
			name: "train and validate overlap",
			mutate: func(c *schema.RunConfig) {
				c.Data.Paths.Validate = []string{"data/train-0.zip"}
			},
			expectedSubject: "data.paths",
			severity:        Error,
		},
		{
			name:            "missing optimizer name",
			mutate:          func(c *schema.RunConfig) { c.Optim.Name = "" },
			expectedSubject: "optim.name",
			severity:        Error,
		},
		{
			name:            "zero epochs",
			mutate:          func(c *schema.RunConfig) { c.Training.NumEpochs = 0 },
			expectedSubject: "training.num_epochs",
			severity:        Error,
		},
		{
			name:            "non-positive checkpoint cadence",
			mutate:          func(c *schema.RunConfig) { c.Training.Checkpoint.Every = 0 },
			expectedSubject: "training.checkpoint.every",
			severity:        Error,
		},
		{
			name:            "wandb enabled without a cadence",
			mutate:          func(c *schema.RunConfig) { c.WandB.LogEvery = 0 },
			expectedSubject: "wandb.log_every",
			severity:        Error,
		},
		{
			name:            "negative tensorboard cadence",
			mutate:          func(c *schema.RunConfig) { c.Tensorboard.LogScalarsEvery = intPtr(-1) },
			expectedSubject: "tensorboard.log_scalars_every",
			severity:        Error,
		},
		{
			name:            "tensorboard cadence explicitly set to zero",
			mutate:          func(c *schema.RunConfig) { c.Tensorboard.LogScalarsEvery = intPtr(0) },
			expectedSubject: "tensorboard.log_scalars_every",
			severity:        Error,
		},
		{
			name:            "negative loss weight",
			mutate:          func(c *schema.RunConfig) { c.Losses.Weights["contagion"] = -0.5 },
			expectedSubject: "losses.weights.contagion",
			severity:        Error,
		},
		{
			name:            "zero loss weight",
			mutate:          func(c *schema.RunConfig) { c.Losses.Weights["contagion"] = 0 },
			expectedSubject: "losses.weights.contagion",
			severity:        Warning,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validRun()
			tc.mutate(cfg)

			diags := Run(cfg)
			require.NotEmpty(t, diags)

			found := false
			for _, d := range diags {
				if d.Subject == tc.expectedSubject && d.Severity == tc.severity {
					found = true
				}
			}
			assert.True(t, found, "no %s diagnostic on %s, got: %v", tc.severity, tc.expectedSubject, diags)
		})
	}
}

func TestRun_WandbDisabledSkipsCadenceCheck(t *testing.T) {
	cfg := validRun()
	cfg.WandB.Use = false
	cfg.WandB.LogEvery = 0

	assert.Empty(t, Run(cfg))
}

func TestRun_OmittedTensorboardCadenceSkipsCheck(t *testing.T) {
	cfg := validRun()
	cfg.Tensorboard.LogScalarsEvery = nil

	assert.Empty(t, Run(cfg))
}

func TestCrossCheck(t *testing.T) {
	cfg := validRun()
	cfg.Tree = map[string]any{
		"optim": map[string]any{
			"kwargs": map[string]any{"lr": 0.001},
		},
		"model": map[string]any{
			"kwargs": map[string]any{"num_heads": 4},
		},
	}

	t.Run("all parameters resolve", func(t *testing.T) {
		diags := CrossCheck(validSweep(), cfg)
		assert.Empty(t, diags)
	})

	t.Run("unresolvable parameter is reported", func(t *testing.T) {
		spec := validSweep()
		spec.Parameters["model.kwargs.capacity"] = &schema.Parameter{
			Path:         keypath.MustParse("model.kwargs.capacity"),
			Distribution: "constant",
		}

		diags := CrossCheck(spec, cfg)
		require.True(t, diags.HasErrors())
		assert.Contains(t, subjects(diags), "parameters.model.kwargs.capacity")
	})
}
