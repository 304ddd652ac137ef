package keypath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name         string
		raw          string
		expectErr    bool
		expectedPath Path
	}{
		{
			name:         "simple dotted path",
			raw:          "optim.kwargs.lr",
			expectErr:    false,
			expectedPath: New("optim", "kwargs", "lr"),
		},
		{
			name:         "double-underscore path",
			raw:          "model__kwargs__num_heads",
			expectErr:    false,
			expectedPath: New("model", "kwargs", "num_heads"),
		},
		{
			name:         "single segment",
			raw:          "program",
			expectErr:    false,
			expectedPath: New("program"),
		},
		{
			name:         "segment with single underscore and digits",
			raw:          "losses.weights.contagion_0",
			expectErr:    false,
			expectedPath: New("losses", "weights", "contagion_0"),
		},
		{
			name:         "segment with hyphen",
			raw:          "data.loader-kwargs",
			expectErr:    false,
			expectedPath: New("data", "loader-kwargs"),
		},
		{
			name:      "error - empty string",
			raw:       "",
			expectErr: true,
		},
		{
			name:      "error - empty dotted segment",
			raw:       "optim..lr",
			expectErr: true,
		},
		{
			name:      "error - trailing separator",
			raw:       "optim.kwargs.",
			expectErr: true,
		},
		{
			name:      "error - leading double underscore",
			raw:       "__model__capacity",
			expectErr: true,
		},
		{
			name:      "error - segment with illegal character",
			raw:       "model.kwargs.lr[0]",
			expectErr: true,
		},
		{
			name:      "error - bare underscore segment",
			raw:       "model._.capacity",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := Parse(tc.raw)

			if tc.expectErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.True(t, tc.expectedPath.Equal(p), "parsed path %q does not match expected %q", p, tc.expectedPath)
		})
	}
}

func TestParse_BothSpellingsAgree(t *testing.T) {
	dotted, err := Parse("model.kwargs.num_heads")
	require.NoError(t, err)

	flat, err := Parse("model__kwargs__num_heads")
	require.NoError(t, err)

	assert.True(t, dotted.Equal(flat))
	assert.Equal(t, "model.kwargs.num_heads", flat.String())
	assert.Equal(t, "model__kwargs__num_heads", dotted.Underscored())
}

func TestMustParse_PanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() { MustParse("a..b") })
}
