package registry

import (
	"math/rand"
	"sort"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/sweepctl/internal/schema"
)

// Module is the interface that all distribution modules must implement to be
// registered.
type Module interface {
	Register(r *Registry)
}

// Kind implements the behavior of a single distribution family.
type Kind struct {
	// Name is the `distribution` value documents use to select this kind.
	Name string

	// Finite marks kinds whose value set can be fully enumerated. Finite
	// kinds must provide Cardinality and Enumerate.
	Finite bool

	// Validate checks the kind-specific invariants of a parameter, e.g.
	// min < max or non-empty values.
	Validate func(p *schema.Parameter) error

	// Cardinality returns the number of distinct values the parameter can
	// take. Only set on finite kinds.
	Cardinality func(p *schema.Parameter) int

	// Enumerate returns every value the parameter can take, in a stable
	// order. Only set on finite kinds.
	Enumerate func(p *schema.Parameter) ([]cty.Value, error)

	// Sample draws one value from the parameter's distribution.
	Sample func(p *schema.Parameter, rng *rand.Rand) (cty.Value, error)

	// Contains reports whether a value is a member of the parameter's value
	// set. Only set on continuous kinds; finite kinds answer by enumeration.
	Contains func(p *schema.Parameter, v cty.Value) (bool, error)
}

// Registry holds all the registered distribution kinds for a single
// application instance.
type Registry struct {
	kinds map[string]*Kind
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		kinds: make(map[string]*Kind),
	}
}

// RegisterKind adds a kind to the registry. Registering the same name twice
// is a programmer error and panics.
func (r *Registry) RegisterKind(k *Kind) {
	if _, exists := r.kinds[k.Name]; exists {
		panic("registry: duplicate distribution kind: " + k.Name)
	}
	r.kinds[k.Name] = k
}

// Kind looks up a distribution kind by name.
func (r *Registry) Kind(name string) (*Kind, bool) {
	k, ok := r.kinds[name]
	return k, ok
}

// Names returns the registered kind names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.kinds))
	for name := range r.kinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
