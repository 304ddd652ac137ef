package yamlcfg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/sweepctl/internal/schema"
	"github.com/vk/sweepctl/internal/testutil"
)

func TestParseSweep_ReferenceDocument(t *testing.T) {
	spec, err := ParseSweep([]byte(testutil.ReferenceSweepYAML), "sweep.yml")
	require.NoError(t, err)

	assert.Equal(t, "train.py", spec.Program)
	assert.Equal(t, schema.MethodBayes, spec.Method)
	assert.Equal(t, "validation_loss", spec.Metric.Name)
	assert.Equal(t, schema.GoalMinimize, spec.Metric.Goal)

	// The reference document declares exactly eleven parameters.
	require.Len(t, spec.Parameters, 11)

	// Keys normalize from the double-underscore spelling to dotted paths.
	heads, ok := spec.Parameters["model.kwargs.num_heads"]
	require.True(t, ok)
	assert.Equal(t, "categorical", heads.Distribution)
	require.Len(t, heads.Values, 2)
	assert.True(t, heads.Values[0].Equals(cty.NumberIntVal(2)).True())
	assert.True(t, heads.Values[1].Equals(cty.NumberIntVal(4)).True())

	lr, ok := spec.Parameters["optim.kwargs.lr"]
	require.True(t, ok)
	assert.Equal(t, "log_uniform", lr.Distribution)
	require.NotNil(t, lr.Min)
	require.NotNil(t, lr.Max)
	assert.Less(t, *lr.Min, *lr.Max)

	// `value:` without a distribution becomes a constant.
	epochs, ok := spec.Parameters["training.num_epochs"]
	require.True(t, ok)
	assert.Equal(t, "constant", epochs.Distribution)
	require.Len(t, epochs.Values, 1)
	assert.True(t, epochs.Values[0].Equals(cty.NumberIntVal(60)).True())

	assert.Equal(t, "sweep.yml", spec.Source)
}

func TestParseSweep_Errors(t *testing.T) {
	testCases := []struct {
		name      string
		src       string
		expectErr string
	}{
		{
			name:      "malformed yaml",
			src:       "parameters: [unclosed",
			expectErr: "failed to parse",
		},
		{
			name: "invalid parameter key",
			src: `
parameters:
  "model..capacity":
    distribution: constant
    value: 1
`,
			expectErr: "empty segment",
		},
		{
			name: "conflicting spellings of one path",
			src: `
parameters:
  model__kwargs__capacity:
    distribution: constant
    value: 1
  model.kwargs.capacity:
    distribution: constant
    value: 2
`,
			expectErr: "declared twice",
		},
		{
			name: "value and values together",
			src: `
parameters:
  model__kwargs__capacity:
    distribution: categorical
    value: 1
    values: [1, 2]
`,
			expectErr: "mutually exclusive",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseSweep([]byte(tc.src), "sweep.yml")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.expectErr)
		})
	}
}

func TestDetect(t *testing.T) {
	kind, err := Detect([]byte(testutil.ReferenceSweepYAML), "sweep.yml")
	require.NoError(t, err)
	assert.Equal(t, KindSweep, kind)

	kind, err = Detect([]byte(testutil.ReferenceRunYAML), "run.yml")
	require.NoError(t, err)
	assert.Equal(t, KindRun, kind)

	kind, err = Detect([]byte("unrelated: true"), "other.yml")
	require.NoError(t, err)
	assert.Equal(t, KindUnknown, kind)

	_, err = Detect([]byte("method: bayes\ndata: {}"), "mixed.yml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mixes sweep and run sections")
}
