// Package constant implements the `constant` distribution kind: a parameter
// pinned to a single value. Sweeps use it to record a knob in the search
// space without searching over it.
package constant

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
		return fmt.Errorf("constant does not accept 'min' or 'max'")
	}
	if len(p.Values) != 1 {
		return fmt.Errorf("constant requires exactly one value, got %d", len(p.Values))
	}
	return nil
}

func cardinality(p *schema.Parameter) int {
	return 1
}

func enumerate(p *schema.Parameter) ([]cty.Value, error) {
	if err := validate(p); err != nil {
		return nil, err
	}
	return []cty.Value{p.Values[0]}, nil
}

func sample(p *schema.Parameter, _ *rand.Rand) (cty.Value, error) {
	if err := validate(p); err != nil {
		return cty.NilVal, err
	}
	return p.Values[0], nil
}

// Register registers the kind with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterKind(&registry.Kind{
		Name:        "constant",
		Finite:      true,
		Validate:    validate,
		Cardinality: cardinality,
		Enumerate:   enumerate,
		Sample:      sample,
	})
}
