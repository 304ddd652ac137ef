// Package space turns a validated sweep specification into a queryable
// parameter space: how many dimensions, whether it is finite, what the full
// grid looks like, and reproducible random draws from it.
package space

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/sweepctl/internal/registry"
	"github.com/vk/sweepctl/internal/schema"
)

// Space is an immutable view over a sweep's parameters. All walks use the
// sorted canonical path order, so results are deterministic.
type Space struct {
	spec *schema.SweepSpec
	reg  *registry.Registry
	keys []string
}

// New builds a Space. Every referenced distribution kind must be registered;
// callers validate the sweep first, so an unknown kind here is an error, not
// a diagnostic.
func New(spec *schema.SweepSpec, reg *registry.Registry) (*Space, error) {
	keys := spec.SortedKeys()
	for _, key := range keys {
		param := spec.Parameters[key]
		if _, ok := reg.Kind(param.Distribution); !ok {
			return nil, fmt.Errorf("parameter %q references unknown distribution %q", key, param.Distribution)
		}
	}
	return &Space{spec: spec, reg: reg, keys: keys}, nil
}

// Count returns the number of parameters in the space.
func (s *Space) Count() int {
	return len(s.keys)
}

// Keys returns the canonical parameter paths in sorted order.
func (s *Space) Keys() []string {
	keys := make([]string, len(s.keys))
	copy(keys, s.keys)
	return keys
}

// Cardinality returns the product of per-parameter cardinalities, and false
// when any parameter is continuous. The product saturates at math.MaxInt
// instead of overflowing on pathological ranges.
func (s *Space) Cardinality() (int, bool) {
	total := 1
	for _, key := range s.keys {
		kind, param := s.kindOf(key)
		if !kind.Finite {
			return 0, false
		}
		card := kind.Cardinality(param)
		if card > 0 && total > math.MaxInt/card {
			return math.MaxInt, true
		}
		total *= card
	}
	return total, true
}

// Sample draws n assignments with a seeded generator. Equal seeds produce
// identical draws; the per-parameter draw order is the sorted key order.
func (s *Space) Sample(n int, seed int64) ([]schema.Assignment, error) {
	if n < 1 {
		return nil, fmt.Errorf("sample count must be >= 1, got %d", n)
	}

	rng := rand.New(rand.NewSource(seed))
	out := make([]schema.Assignment, 0, n)
	for i := 0; i < n; i++ {
		assignment := make(schema.Assignment, len(s.keys))
		for _, key := range s.keys {
			kind, param := s.kindOf(key)
			v, err := kind.Sample(param, rng)
			if err != nil {
				return nil, fmt.Errorf("parameter %q: %w", key, err)
			}
			assignment[key] = v
		}
		out = append(out, assignment)
	}
	return out, nil
}

// Contains reports whether the value is a member of the named parameter's
// value set: exact membership for finite kinds, bounds containment for
// continuous ones.
func (s *Space) Contains(key string, v cty.Value) (bool, error) {
	param, ok := s.spec.Parameters[key]
	if !ok {
		return false, fmt.Errorf("no parameter %q in the space", key)
	}
	kind, _ := s.reg.Kind(param.Distribution)

	if kind.Finite {
		values, err := kind.Enumerate(param)
		if err != nil {
			return false, err
		}
		for _, candidate := range values {
			if candidate.Equals(v).True() {
				return true, nil
			}
		}
		return false, nil
	}

	return kind.Contains(param, v)
}

func (s *Space) kindOf(key string) (*registry.Kind, *schema.Parameter) {
	param := s.spec.Parameters[key]
	kind, _ := s.reg.Kind(param.Distribution)
	return kind, param
}
