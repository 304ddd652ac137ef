package yamlcfg

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vk/sweepctl/internal/schema"
)

// runDoc is the YAML-specific decode target for a run document.
type runDoc struct {
	Data struct {
		Paths struct {
			Train    []string `yaml:"train"`
			Validate []string `yaml:"validate"`
		} `yaml:"paths"`
		LoaderKwargs map[string]any `yaml:"loader_kwargs"`
	} `yaml:"data"`
	Model struct {
		Name   string         `yaml:"name"`
		Kwargs map[string]any `yaml:"kwargs"`
	} `yaml:"model"`
	Losses struct {
		Kwargs  map[string]any     `yaml:"kwargs"`
		Weights map[string]float64 `yaml:"weights"`
	} `yaml:"losses"`
	Optim struct {
		Name   string         `yaml:"name"`
		Kwargs map[string]any `yaml:"kwargs"`
	} `yaml:"optim"`
	Training struct {
		NumEpochs  int `yaml:"num_epochs"`
		Checkpoint struct {
			Every  int  `yaml:"every"`
			IfBest bool `yaml:"if_best"`
		} `yaml:"checkpoint"`
	} `yaml:"training"`
	WandB struct {
		Use      bool `yaml:"use"`
		LogEvery int  `yaml:"log_every"`
	} `yaml:"wandb"`
	Tensorboard struct {
		LogScalarsEvery *int `yaml:"log_scalars_every"`
	} `yaml:"tensorboard"`
}

// ParseRun decodes a YAML run document and translates it into the
// format-agnostic model. The raw tree is decoded alongside the typed
// sections and kept on the result for override application.
func ParseRun(src []byte, source string) (*schema.RunConfig, error) {
	var doc runDoc
	if err := yaml.Unmarshal(src, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse run document %s: %w", source, err)
	}

	var tree map[string]any
	if err := yaml.Unmarshal(src, &tree); err != nil {
		return nil, fmt.Errorf("failed to parse run document %s: %w", source, err)
	}

	cfg := &schema.RunConfig{
		Tree:   tree,
		Source: source,
	}
	cfg.Data.Paths.Train = doc.Data.Paths.Train
	cfg.Data.Paths.Validate = doc.Data.Paths.Validate
	cfg.Model.Name = doc.Model.Name
	cfg.Losses.Weights = doc.Losses.Weights
	cfg.Optim.Name = doc.Optim.Name
	cfg.Training.NumEpochs = doc.Training.NumEpochs
	cfg.Training.Checkpoint.Every = doc.Training.Checkpoint.Every
	cfg.Training.Checkpoint.IfBest = doc.Training.Checkpoint.IfBest
	cfg.WandB.Use = doc.WandB.Use
	cfg.WandB.LogEvery = doc.WandB.LogEvery
	cfg.Tensorboard.LogScalarsEvery = doc.Tensorboard.LogScalarsEvery

	var err error
	if cfg.Data.LoaderKwargs, err = kwargsToCty(doc.Data.LoaderKwargs); err != nil {
		return nil, fmt.Errorf("%s: data.loader_kwargs: %w", source, err)
	}
	if cfg.Model.Kwargs, err = kwargsToCty(doc.Model.Kwargs); err != nil {
		return nil, fmt.Errorf("%s: model.kwargs: %w", source, err)
	}
	if cfg.Losses.Kwargs, err = kwargsToCty(doc.Losses.Kwargs); err != nil {
		return nil, fmt.Errorf("%s: losses.kwargs: %w", source, err)
	}
	if cfg.Optim.Kwargs, err = kwargsToCty(doc.Optim.Kwargs); err != nil {
		return nil, fmt.Errorf("%s: optim.kwargs: %w", source, err)
	}

	return cfg, nil
}
