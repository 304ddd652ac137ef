// Package categorical implements the `categorical` distribution kind: an
// explicit, duplicate-free list of candidate values.
package categorical

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
	if p.Min != nil || p.Max != nil {
		return fmt.Errorf("categorical does not accept 'min' or 'max'")
	}
	if len(p.Values) == 0 {
		return fmt.Errorf("categorical requires a non-empty 'values' list")
	}
	for i, a := range p.Values {
		for _, b := range p.Values[i+1:] {
			if a.Equals(b).True() {
				return fmt.Errorf("duplicate value %s in 'values'", a.GoString())
			}
		}
	}
	return nil
}

func cardinality(p *schema.Parameter) int {
	return len(p.Values)
}

func enumerate(p *schema.Parameter) ([]cty.Value, error) {
	if err := validate(p); err != nil {
		return nil, err
	}
	values := make([]cty.Value, len(p.Values))
	copy(values, p.Values)
	return values, nil
}

func sample(p *schema.Parameter, rng *rand.Rand) (cty.Value, error) {
	if err := validate(p); err != nil {
		return cty.NilVal, err
	}
	return p.Values[rng.Intn(len(p.Values))], nil
}

// Register registers the kind with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterKind(&registry.Kind{
		Name:        "categorical",
		Finite:      true,
		Validate:    validate,
		Cardinality: cardinality,
		Enumerate:   enumerate,
		Sample:      sample,
	})
}
