package space

import (
	"fmt"
	"math"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/sweepctl/internal/schema"
)

// Grid enumerates the full cartesian product of a finite space. Assignments
// come back in odometer order over the sorted keys: the last key varies
// fastest. The result length always equals the Cardinality product.
func (s *Space) Grid() ([]schema.Assignment, error) {
	total, finite := s.Cardinality()
	if !finite {
		return nil, fmt.Errorf("space is not finite; grid enumeration requires every parameter to be categorical, constant, or int_uniform")
	}
	// A saturated cardinality means the true product exceeds math.MaxInt.
	if total == math.MaxInt {
		return nil, fmt.Errorf("grid of more than %d assignments is too large to enumerate", math.MaxInt)
	}

	axes := make([][]cty.Value, len(s.keys))
	for i, key := range s.keys {
		kind, param := s.kindOf(key)
		values, err := kind.Enumerate(param)
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", key, err)
		}
		axes[i] = values
	}

	out := make([]schema.Assignment, 0, total)
	indices := make([]int, len(axes))
	for {
		assignment := make(schema.Assignment, len(s.keys))
		for i, key := range s.keys {
			assignment[key] = axes[i][indices[i]]
		}
		out = append(out, assignment)

		// Advance the odometer, last axis fastest.
		i := len(indices) - 1
		for ; i >= 0; i-- {
			indices[i]++
			if indices[i] < len(axes[i]) {
				break
			}
			indices[i] = 0
		}
		if i < 0 {
			break
		}
	}

	return out, nil
}
