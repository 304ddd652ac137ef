package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/sweepctl/internal/testutil"
	"github.com/vk/sweepctl/internal/trial"
)

func TestApp_ValidatesReferenceDocuments(t *testing.T) {
	t.Parallel()
	dir := testutil.WriteDocs(t, map[string]string{
		"sweep.yml": testutil.ReferenceSweepYAML,
		"run.yml":   testutil.ReferenceRunYAML,
	})

	config, err := NewConfig(Config{DocPath: dir, LogFormat: "json", LogLevel: "debug"})
	require.NoError(t, err)

	testApp, logBuffer := SetupAppTest(t, config)
	require.NoError(t, testApp.Run(context.Background(), config))

	assert.Contains(t, logBuffer.String(), "Documents validated.")
	assert.Len(t, testApp.Documents().Sweep.Parameters, 11)
}

func TestApp_ReportsValidationErrors(t *testing.T) {
	t.Parallel()
	const badSweep = `
program: train.py
method: grid
metric:
  name: validation_loss
  goal: minimize
parameters:
  optim__kwargs__lr:
    distribution: uniform
    min: 0.1
    max: 0.01
`
	dir := testutil.WriteDocs(t, map[string]string{"sweep.yml": badSweep})

	config, err := NewConfig(Config{DocPath: dir, LogFormat: "json", LogLevel: "debug"})
	require.NoError(t, err)

	testApp, logBuffer := SetupAppTest(t, config)
	err = testApp.Run(context.Background(), config)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, logBuffer.String(), "optim.kwargs.lr")
}

func TestApp_UnresolvableParameterFailsCrossCheck(t *testing.T) {
	t.Parallel()
	const sweep = `
program: train.py
method: random
metric:
  name: validation_loss
  goal: minimize
parameters:
  model__kwargs__no_such_knob:
    distribution: categorical
    values: [1, 2]
`
	dir := testutil.WriteDocs(t, map[string]string{
		"sweep.yml": sweep,
		"run.yml":   testutil.ReferenceRunYAML,
	})

	config, err := NewConfig(Config{DocPath: dir, LogFormat: "json", LogLevel: "debug"})
	require.NoError(t, err)

	testApp, _ := SetupAppTest(t, config)
	err = testApp.Run(context.Background(), config)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestApp_MaterializesGridTrials(t *testing.T) {
	t.Parallel()
	dir := testutil.WriteDocs(t, map[string]string{
		"sweep.yml": testutil.GridSweepYAML,
		"run.yml":   testutil.ReferenceRunYAML,
	})
	outDir := filepath.Join(t.TempDir(), "trials")

	config, err := NewConfig(Config{
		DocPath:     dir,
		OutDir:      outDir,
		WorkerCount: 2,
		LogFormat:   "json",
		LogLevel:    "debug",
	})
	require.NoError(t, err)

	testApp, logBuffer := SetupAppTest(t, config)
	require.NoError(t, testApp.Run(context.Background(), config))

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	assert.Len(t, entries, 6)

	_, err = os.Stat(filepath.Join(outDir, trial.TrialFileName(0)))
	assert.NoError(t, err)
	assert.Contains(t, logBuffer.String(), "Materialization finished.")
}

func TestApp_MaterializationRequiresRunDocument(t *testing.T) {
	t.Parallel()
	dir := testutil.WriteDocs(t, map[string]string{"sweep.yml": testutil.GridSweepYAML})

	config, err := NewConfig(Config{
		DocPath:   dir,
		OutDir:    filepath.Join(t.TempDir(), "trials"),
		LogFormat: "json",
		LogLevel:  "debug",
	})
	require.NoError(t, err)

	testApp, _ := SetupAppTest(t, config)
	err = testApp.Run(context.Background(), config)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires a run document")
}

func TestApp_ChecksDataArchives(t *testing.T) {
	t.Parallel()
	dataDir := t.TempDir()
	trainDir := filepath.Join(dataDir, "train")
	require.NoError(t, os.Mkdir(trainDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(trainDir, "0-0.pkl"), []byte("pickle"), 0o644))

	validatePath := filepath.Join(dataDir, "0-1.pkl")
	require.NoError(t, os.WriteFile(validatePath, []byte("pickle"), 0o644))

	runDoc := `
data:
  paths:
    train:
      - ` + trainDir + `
    validate:
      - ` + validatePath + `
optim:
  name: Adam
training:
  num_epochs: 1
  checkpoint:
    every: 1
`
	dir := testutil.WriteDocs(t, map[string]string{"run.yml": runDoc})

	config, err := NewConfig(Config{DocPath: dir, CheckData: true, LogFormat: "json", LogLevel: "debug"})
	require.NoError(t, err)

	testApp, logBuffer := SetupAppTest(t, config)
	require.NoError(t, testApp.Run(context.Background(), config))
	assert.Contains(t, logBuffer.String(), "Archive ok.")
}

func TestApp_CheckDataFailsOnMissingArchive(t *testing.T) {
	t.Parallel()
	dir := testutil.WriteDocs(t, map[string]string{"run.yml": testutil.ReferenceRunYAML})

	config, err := NewConfig(Config{DocPath: dir, CheckData: true, LogFormat: "json", LogLevel: "debug"})
	require.NoError(t, err)

	testApp, _ := SetupAppTest(t, config)
	err = testApp.Run(context.Background(), config)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "data check failed")
}

func TestApp_NoDocumentsFound(t *testing.T) {
	t.Parallel()
	config, err := NewConfig(Config{DocPath: t.TempDir(), LogFormat: "json", LogLevel: "debug"})
	require.NoError(t, err)

	testApp, _ := SetupAppTest(t, config)
	err = testApp.Run(context.Background(), config)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no sweep or run documents")
}

func TestNewConfig(t *testing.T) {
	t.Parallel()
	t.Run("requires at least one path", func(t *testing.T) {
		_, err := NewConfig(Config{})
		require.Error(t, err)
	})

	t.Run("rejects negative trial counts", func(t *testing.T) {
		_, err := NewConfig(Config{DocPath: ".", Trials: -1})
		require.Error(t, err)
	})
}
