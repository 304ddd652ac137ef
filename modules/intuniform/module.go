// Package intuniform implements the `int_uniform` distribution kind: an
// inclusive integer range, finite and enumerable.
package intuniform

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

func bounds(p *schema.Parameter) (int64, int64, error) {
	if !p.HasBounds() {
		return 0, 0, fmt.Errorf("int_uniform requires both 'min' and 'max'")
	}
	if len(p.Values) > 0 {
		return 0, 0, fmt.Errorf("int_uniform does not accept 'values'")
	}
	if *p.Min != math.Trunc(*p.Min) || *p.Max != math.Trunc(*p.Max) {
		return 0, 0, fmt.Errorf("min (%v) and max (%v) must be integers", *p.Min, *p.Max)
	}
	lo, hi := int64(*p.Min), int64(*p.Max)
	if lo >= hi {
		return 0, 0, fmt.Errorf("min (%d) must be strictly less than max (%d)", lo, hi)
	}
	return lo, hi, nil
}

func validate(p *schema.Parameter) error {
	_, _, err := bounds(p)
	return err
}

func cardinality(p *schema.Parameter) int {
	lo, hi, err := bounds(p)
	if err != nil {
		return 0
	}
	// Saturate instead of truncating when the range does not fit an int.
	if span := *p.Max - *p.Min + 1; span > float64(math.MaxInt) {
		return math.MaxInt
	}
	return int(hi - lo + 1)
}

func enumerate(p *schema.Parameter) ([]cty.Value, error) {
	lo, hi, err := bounds(p)
	if err != nil {
		return nil, err
	}
	values := make([]cty.Value, 0, hi-lo+1)
	for v := lo; v <= hi; v++ {
		values = append(values, cty.NumberIntVal(v))
	}
	return values, nil
}

func sample(p *schema.Parameter, rng *rand.Rand) (cty.Value, error) {
	lo, hi, err := bounds(p)
	if err != nil {
		return cty.NilVal, err
	}
	return cty.NumberIntVal(lo + rng.Int63n(hi-lo+1)), nil
}

// Register registers the kind with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterKind(&registry.Kind{
		Name:        "int_uniform",
		Finite:      true,
		Validate:    validate,
		Cardinality: cardinality,
		Enumerate:   enumerate,
		Sample:      sample,
	})
}
