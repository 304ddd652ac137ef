package schema

import "github.com/zclconf/go-cty/cty"

// DataPaths lists the sample archives for each split.
type DataPaths struct {
	Train    []string
	Validate []string
}

// Data covers the run document's `data` section: where the samples live and
// the options forwarded verbatim to the external data loader.
type Data struct {
	Paths        DataPaths
	LoaderKwargs map[string]cty.Value
}

// Model covers the `model` section. Kwargs are opaque to this tool; the
// external trainer interprets them.
type Model struct {
	Name   string
	Kwargs map[string]cty.Value
}

// Losses covers the `losses` section: shared loss options plus the
// kind-to-weight mapping.
type Losses struct {
	Kwargs  map[string]cty.Value
	Weights map[string]float64
}

// Optim covers the `optim` section.
type Optim struct {
	Name   string
	Kwargs map[string]cty.Value
}

// Checkpoint is the persistence cadence within `training`.
type Checkpoint struct {
	Every  int
	IfBest bool
}

// Training covers the `training` section.
type Training struct {
	NumEpochs  int
	Checkpoint Checkpoint
}

// WandB covers the experiment-tracking toggles.
type WandB struct {
	Use      bool
	LogEvery int
}

// Tensorboard covers the local scalar-logging cadence. The cadence is a
// pointer so a document that sets it to zero is distinguishable from one
// that omits the section.
type Tensorboard struct {
	LogScalarsEvery *int
}

// RunConfig is the format-agnostic representation of a run document.
//
// Tree retains the raw document mapping exactly as parsed. Trial
// materialization applies overrides to the tree rather than to the typed
// sections, so a sweep may target keys this model does not enumerate.
type RunConfig struct {
	Data        Data
	Model       Model
	Losses      Losses
	Optim       Optim
	Training    Training
	WandB       WandB
	Tensorboard Tensorboard

	Tree   map[string]any
	Source string
}
