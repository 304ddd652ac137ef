package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/sweepctl/internal/ctxlog"
)

// ValidateRegistry performs a strict completeness check over every
// registered kind. A kind missing a required function is a mismatch between
// the module's manifest (its Kind declaration) and its implementation, so
// the caller treats a failure here as a programmer error.
func (r *Registry) ValidateRegistry(ctx context.Context) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	for _, name := range r.Names() {
		kind := r.kinds[name]

		if kind.Validate == nil {
			errs = append(errs, fmt.Sprintf("kind '%s': missing Validate", name))
		}
		if kind.Sample == nil {
			errs = append(errs, fmt.Sprintf("kind '%s': missing Sample", name))
		}

		if kind.Finite {
			if kind.Cardinality == nil {
				errs = append(errs, fmt.Sprintf("kind '%s': declared finite but missing Cardinality", name))
			}
			if kind.Enumerate == nil {
				errs = append(errs, fmt.Sprintf("kind '%s': declared finite but missing Enumerate", name))
			}
		} else {
			if kind.Cardinality != nil || kind.Enumerate != nil {
				errs = append(errs, fmt.Sprintf("kind '%s': continuous kinds must not declare Cardinality or Enumerate", name))
			}
			if kind.Contains == nil {
				errs = append(errs, fmt.Sprintf("kind '%s': continuous kinds must declare Contains", name))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	logger.Debug("Registry validation passed.", "kinds", r.Names())
	return nil
}
