package validate

import "github.com/vk/sweepctl/internal/schema"

// CrossCheck verifies a sweep against the run document it overrides: every
// parameter path must resolve in the run document tree, since the external
// trainer resolves overrides the same way.
func CrossCheck(spec *schema.SweepSpec, cfg *schema.RunConfig) Diagnostics {
	var diags Diagnostics

	for _, key := range spec.SortedKeys() {
		param := spec.Parameters[key]
		if _, ok := param.Path.Resolve(cfg.Tree); !ok {
			diags = diags.Append(Error, "parameters."+key, "parameter does not resolve in run config",
				"no value at %q in %s", param.Path, cfg.Source)
		}
	}

	return diags
}
