package schema

import (
	"sort"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/sweepctl/internal/keypath"
)

// Method is the search strategy a sweep document declares.
type Method string

const (
	// MethodBayes marks the sweep for an external Bayesian-optimization
	// controller. This tool validates such sweeps but never expands them.
	MethodBayes Method = "bayes"
	// MethodGrid enumerates the full cartesian product of a finite space.
	MethodGrid Method = "grid"
	// MethodRandom draws independent samples from every distribution.
	MethodRandom Method = "random"
)

// Goal is the optimization direction for the sweep's objective metric.
type Goal string

const (
	GoalMinimize Goal = "minimize"
	GoalMaximize Goal = "maximize"
)

// Metric names the objective the external orchestrator optimizes.
type Metric struct {
	Name string
	Goal Goal
}

// Parameter is one searchable dimension of a sweep: the run-config path it
// overrides, the distribution kind governing it, and the kind's payload
// (bounds for continuous kinds, explicit values for finite ones).
type Parameter struct {
	Path         keypath.Path
	Distribution string
	Min          *float64
	Max          *float64
	Values       []cty.Value

	// Source is the file the parameter was loaded from, for diagnostics.
	Source string
}

// HasBounds reports whether both bounds are present.
func (p *Parameter) HasBounds() bool {
	return p.Min != nil && p.Max != nil
}

// SweepSpec is the format-agnostic representation of a sweep document.
// Parameters are keyed by their canonical dotted path.
type SweepSpec struct {
	Program    string
	Method     Method
	Metric     Metric
	Parameters map[string]*Parameter
	Source     string
}

// SortedKeys returns the canonical parameter paths in sorted order. Every
// deterministic walk over the parameter space uses this ordering.
func (s *SweepSpec) SortedKeys() []string {
	keys := make([]string, 0, len(s.Parameters))
	for key := range s.Parameters {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Assignment is a single trial's parameter choices, keyed by canonical
// dotted path.
type Assignment map[string]cty.Value

// SortedKeys returns the assignment's keys in sorted order.
func (a Assignment) SortedKeys() []string {
	keys := make([]string, 0, len(a))
	for key := range a {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
