// Package uniform implements the `uniform` distribution kind: a continuous
// draw between two bounds.
package uniform

import (
	"fmt"
	"math/rand"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/sweepctl/internal/registry"
	"github.com/vk/sweepctl/internal/schema"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

func validate(p *schema.Parameter) error {
	if !p.HasBounds() {
		return fmt.Errorf("uniform requires both 'min' and 'max'")
	}
	if len(p.Values) > 0 {
		return fmt.Errorf("uniform does not accept 'values'")
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
	v := *p.Min + rng.Float64()*(*p.Max-*p.Min)
	return cty.NumberFloatVal(v), nil
}

func contains(p *schema.Parameter, v cty.Value) (bool, error) {
	if err := validate(p); err != nil {
		return false, err
	}
	if v.Type() != cty.Number {
		return false, nil
	}
	f, _ := v.AsBigFloat().Float64()
	return f >= *p.Min && f <= *p.Max, nil
}

// Register registers the kind with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterKind(&registry.Kind{
		Name:     "uniform",
		Finite:   false,
		Validate: validate,
		Sample:   sample,
		Contains: contains,
	})
}
