package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	var out bytes.Buffer

	config, shouldExit, err := Parse([]string{"docs/"}, &out)

	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, "docs/", config.DocPath)
	assert.Equal(t, "json", config.LogFormat)
	assert.Equal(t, "info", config.LogLevel)
	assert.Equal(t, 0, config.Trials)
	assert.Equal(t, int64(1), config.Seed)
	assert.Equal(t, 4, config.WorkerCount)
	assert.False(t, config.CheckData)
}

func TestParse_AllFlags(t *testing.T) {
	var out bytes.Buffer

	config, shouldExit, err := Parse([]string{
		"-sweep", "sweep.yml",
		"-run", "run.yml",
		"-out", "trials/",
		"-trials", "20",
		"-seed", "42",
		"-check-data",
		"-workers", "8",
		"-log-format", "text",
		"-log-level", "debug",
		"-healthcheck-port", "8080",
	}, &out)

	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, "sweep.yml", config.SweepPath)
	assert.Equal(t, "run.yml", config.RunPath)
	assert.Equal(t, "trials/", config.OutDir)
	assert.Equal(t, 20, config.Trials)
	assert.Equal(t, int64(42), config.Seed)
	assert.True(t, config.CheckData)
	assert.Equal(t, 8, config.WorkerCount)
	assert.Equal(t, "text", config.LogFormat)
	assert.Equal(t, "debug", config.LogLevel)
	assert.Equal(t, 8080, config.HealthcheckPort)
}

func TestParse_ShorthandFlags(t *testing.T) {
	var out bytes.Buffer

	config, shouldExit, err := Parse([]string{"-s", "sweep.yml", "-r", "run.yml"}, &out)

	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, "sweep.yml", config.SweepPath)
	assert.Equal(t, "run.yml", config.RunPath)
}

func TestParse_NoPathPrintsUsage(t *testing.T) {
	var out bytes.Buffer

	config, shouldExit, err := Parse([]string{}, &out)

	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, config)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParse_Help(t *testing.T) {
	var out bytes.Buffer

	config, shouldExit, err := Parse([]string{"-h"}, &out)

	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, config)
	assert.Contains(t, out.String(), "sweepctl")
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name string
		args []string
	}{
		{name: "unknown flag", args: []string{"-definitely-not-a-flag", "docs/"}},
		{name: "invalid log format", args: []string{"-log-format", "xml", "docs/"}},
		{name: "invalid log level", args: []string{"-log-level", "verbose", "docs/"}},
		{name: "negative trial count", args: []string{"-trials", "-5", "docs/"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer

			config, _, err := Parse(tc.args, &out)

			require.Error(t, err)
			assert.Nil(t, config)

			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
		})
	}
}
