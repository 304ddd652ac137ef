// Package trial expands a parameter space into concrete trials and
// materializes each one as a standalone run-config document with the
// trial's assignment applied.
package trial

import (
	"fmt"

	"github.com/vk/sweepctl/internal/schema"
	"github.com/vk/sweepctl/internal/space"
)

// Trial pairs an assignment with its stable index within the expansion.
type Trial struct {
	Index      int
	Assignment schema.Assignment
}

// Expand turns a space into trials according to the sweep's method. For
// grid, limit truncates the enumeration (0 means all); for random, limit is
// the sample count and must be positive. Bayes sweeps are driven by an
// external controller, so expanding one locally is an error.
func Expand(s *space.Space, method schema.Method, limit int, seed int64) ([]Trial, error) {
	var assignments []schema.Assignment
	var err error

	switch method {
	case schema.MethodGrid:
		assignments, err = s.Grid()
		if err != nil {
			return nil, err
		}
		if limit > 0 && limit < len(assignments) {
			assignments = assignments[:limit]
		}
	case schema.MethodRandom:
		if limit < 1 {
			return nil, fmt.Errorf("random method requires a positive trial count")
		}
		assignments, err = s.Sample(limit, seed)
		if err != nil {
			return nil, err
		}
	case schema.MethodBayes:
		return nil, fmt.Errorf("bayes sweeps are expanded by the external sweep controller, not locally")
	default:
		return nil, fmt.Errorf("unknown sweep method %q", method)
	}

	trials := make([]Trial, len(assignments))
	for i, assignment := range assignments {
		trials[i] = Trial{Index: i, Assignment: assignment}
	}
	return trials, nil
}
