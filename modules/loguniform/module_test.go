package loguniform

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/sweepctl/internal/keypath"
	"github.com/vk/sweepctl/internal/schema"
)

func param(min, max float64) *schema.Parameter {
	return &schema.Parameter{
		Path:         keypath.MustParse("optim.kwargs.lr"),
		Distribution: "log_uniform",
		Min:          &min,
		Max:          &max,
	}
}

func TestValidate(t *testing.T) {
	// Negative exponents are the normal case for learning-rate searches.
	require.NoError(t, validate(param(-9.21, -4.61)))

	err := validate(param(-4.61, -9.21))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "strictly less than")

	err = validate(param(-1, -1))
	require.Error(t, err)

	err = validate(&schema.Parameter{Path: keypath.MustParse("optim.kwargs.lr"), Distribution: "log_uniform"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires both")
}

func TestSample_WithinExponentiatedBounds(t *testing.T) {
	p := param(-9.21, -4.61)
	rng := rand.New(rand.NewSource(42))

	lo, hi := math.Exp(-9.21), math.Exp(-4.61)
	for i := 0; i < 100; i++ {
		v, err := sample(p, rng)
		require.NoError(t, err)

		f, _ := v.AsBigFloat().Float64()
		assert.GreaterOrEqual(t, f, lo)
		assert.LessOrEqual(t, f, hi)
	}
}
