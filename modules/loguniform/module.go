// Package loguniform implements the `log_uniform` distribution kind. The
// bounds are natural-log exponents, so negative values are legal; a draw is
// exponentiated before use. A learning-rate search between 1e-4 and 1e-2 is
// written as min = -9.21, max = -4.61.
package loguniform

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/sweepctl/internal/registry"
	"github.com/vk/sweepctl/internal/schema"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

func validate(p *schema.Parameter) error {
	if !p.HasBounds() {
		return fmt.Errorf("log_uniform requires both 'min' and 'max'")
	}
	if len(p.Values) > 0 {
		return fmt.Errorf("log_uniform does not accept 'values'")
	}
	if *p.Min >= *p.Max {
		return fmt.Errorf("min (%v) must be strictly less than max (%v)", *p.Min, *p.Max)
	}
	return nil
}

func sample(p *schema.Parameter, rng *rand.Rand) (cty.Value, error) {
	if err := validate(p); err != nil {
		return cty.NilVal, err
	}
	exponent := *p.Min + rng.Float64()*(*p.Max-*p.Min)
	return cty.NumberFloatVal(math.Exp(exponent)), nil
}

// contains checks membership in value space, not exponent space: the bounds
// are exponents, samples are not.
func contains(p *schema.Parameter, v cty.Value) (bool, error) {
	if err := validate(p); err != nil {
		return false, err
	}
	if v.Type() != cty.Number {
		return false, nil
	}
	f, _ := v.AsBigFloat().Float64()
	return f >= math.Exp(*p.Min) && f <= math.Exp(*p.Max), nil
}

// Register registers the kind with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterKind(&registry.Kind{
		Name:     "log_uniform",
		Finite:   false,
		Validate: validate,
		Sample:   sample,
		Contains: contains,
	})
}
