package hclcfg

import "github.com/zclconf/go-cty/cty"

// fileRoot decodes the top-level blocks of a sweep file.
type fileRoot struct {
	Sweep *sweepBlock `hcl:"sweep,block"`
}

// sweepBlock is the HCL-specific decode target for a `sweep` block.
type sweepBlock struct {
	Program    string            `hcl:"program"`
	Method     string            `hcl:"method"`
	Metric     *metricBlock      `hcl:"metric,block"`
	Parameters []*parameterBlock `hcl:"parameter,block"`
}

// metricBlock mirrors the `metric` block.
type metricBlock struct {
	Name string `hcl:"name"`
	Goal string `hcl:"goal"`
}

// parameterBlock mirrors a `parameter "<path>" { ... }` block. Values and
// Value decode into cty directly so a parameter may mix value types.
type parameterBlock struct {
	Path         string    `hcl:"path,label"`
	Distribution string    `hcl:"distribution,optional"`
	Min          *float64  `hcl:"min,optional"`
	Max          *float64  `hcl:"max,optional"`
	Values       cty.Value `hcl:"values,optional"`
	Value        cty.Value `hcl:"value,optional"`
}
