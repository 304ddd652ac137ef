// Package testutil provides shared document fixtures and filesystem helpers
// for tests across the repository.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// ReferenceSweepYAML is the canonical sweep fixture: a Bayesian search over
// eleven parameters of the contact-tracing trainer.
const ReferenceSweepYAML = `
program: train.py
method: bayes
metric:
  name: validation_loss
  goal: minimize
parameters:
  model__kwargs__capacity:
    distribution: categorical
    values: [64, 128, 256]
  model__kwargs__num_heads:
    distribution: categorical
    values: [2, 4]
  model__kwargs__message_dim:
    distribution: categorical
    values: [8, 16]
  model__kwargs__num_sabs:
    distribution: int_uniform
    min: 1
    max: 3
  model__kwargs__encounter_depth:
    distribution: int_uniform
    min: 1
    max: 4
  model__kwargs__dropout:
    distribution: uniform
    min: 0.0
    max: 0.5
  optim__kwargs__lr:
    distribution: log_uniform
    min: -9.21
    max: -4.61
  optim__kwargs__weight_decay:
    distribution: log_uniform
    min: -11.51
    max: -6.91
  losses__weights__contagion:
    distribution: uniform
    min: 0.1
    max: 1.0
  data__loader_kwargs__batch_size:
    distribution: categorical
    values: [128, 256, 512]
  training__num_epochs:
    distribution: constant
    value: 60
`

// ReferenceRunYAML is the canonical run fixture the reference sweep
// overrides. Every sweep parameter path resolves in this document.
const ReferenceRunYAML = `
data:
  paths:
    train:
      - data/sim/train-0.zip
      - data/sim/train-1.zip
    validate:
      - data/sim/validate-0.zip
  loader_kwargs:
    batch_size: 256
    shuffle: true
    num_workers: 2
    bit_encoded_messages: true
model:
  name: ContactTracingTransformer
  kwargs:
    capacity: 128
    num_heads: 4
    message_dim: 8
    num_sabs: 2
    encounter_depth: 2
    dropout: 0.1
losses:
  kwargs:
    allow_multiple_exposures: false
  weights:
    infectiousness: 1.0
    contagion: 0.5
optim:
  name: Adam
  kwargs:
    lr: 0.001
    weight_decay: 0.00001
    amsgrad: true
training:
  num_epochs: 60
  checkpoint:
    every: 5
    if_best: true
wandb:
  use: true
  log_every: 10
tensorboard:
  log_scalars_every: 10
`

// GridSweepYAML is a fully finite sweep suitable for grid expansion:
// 3 * 2 * 1 = 6 assignments.
const GridSweepYAML = `
program: train.py
method: grid
metric:
  name: validation_loss
  goal: minimize
parameters:
  model__kwargs__capacity:
    distribution: categorical
    values: [64, 128, 256]
  model__kwargs__num_heads:
    distribution: categorical
    values: [2, 4]
  training__num_epochs:
    distribution: constant
    value: 60
`

// WriteDocs writes the given name-to-content mapping into a fresh temp
// directory and returns its path.
func WriteDocs(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
	return dir
}
