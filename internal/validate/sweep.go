package validate

import (
	"strings"

	"github.com/vk/sweepctl/internal/registry"
	"github.com/vk/sweepctl/internal/schema"
)

// Sweep checks a sweep document: document-level fields, then every
// parameter against its registered distribution kind.
func Sweep(spec *schema.SweepSpec, reg *registry.Registry) Diagnostics {
	var diags Diagnostics

	if spec.Program == "" {
		diags = diags.Append(Error, "program", "missing program", "the sweep must name the training entry point")
	}

	switch spec.Method {
	case schema.MethodBayes, schema.MethodGrid, schema.MethodRandom:
	case "":
		diags = diags.Append(Error, "method", "missing method", "expected one of bayes, grid, random")
	default:
		diags = diags.Append(Error, "method", "unknown method", "%q is not one of bayes, grid, random", spec.Method)
	}

	if spec.Metric.Name == "" {
		diags = diags.Append(Error, "metric.name", "missing metric name", "the external orchestrator needs an objective to optimize")
	}
	switch spec.Metric.Goal {
	case schema.GoalMinimize, schema.GoalMaximize:
	case "":
		diags = diags.Append(Error, "metric.goal", "missing metric goal", "expected minimize or maximize")
	default:
		diags = diags.Append(Error, "metric.goal", "unknown metric goal", "%q is not minimize or maximize", spec.Metric.Goal)
	}
	if spec.Metric.Goal == schema.GoalMaximize && strings.Contains(spec.Metric.Name, "loss") {
		diags = diags.Append(Warning, "metric.goal", "maximizing a loss metric", "metric %q looks like a loss but the goal is maximize", spec.Metric.Name)
	}

	if len(spec.Parameters) == 0 {
		diags = diags.Append(Error, "parameters", "empty parameter space", "a sweep with no parameters has nothing to search")
	}

	for _, key := range spec.SortedKeys() {
		param := spec.Parameters[key]
		subject := "parameters." + key

		kind, ok := reg.Kind(param.Distribution)
		if !ok {
			if param.Distribution == "" {
				diags = diags.Append(Error, subject, "missing distribution", "known kinds: %s", strings.Join(reg.Names(), ", "))
			} else {
				diags = diags.Append(Error, subject, "unknown distribution", "%q is not registered; known kinds: %s", param.Distribution, strings.Join(reg.Names(), ", "))
			}
			continue
		}

		if err := kind.Validate(param); err != nil {
			diags = diags.Append(Error, subject, "invalid "+kind.Name+" parameter", "%v", err)
			continue
		}

		if spec.Method == schema.MethodGrid && !kind.Finite {
			diags = diags.Append(Error, subject, "continuous distribution under grid method", "%q cannot be enumerated; use categorical, constant, or int_uniform", kind.Name)
		}
	}

	return diags
}
