package hclcfg

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/sweepctl/internal/keypath"
	"github.com/vk/sweepctl/internal/schema"
)

// ParseSweep decodes an HCL sweep document and translates it into the
// format-agnostic model, producing the same SweepSpec the YAML loader would
// for an equivalent document.
func ParseSweep(src []byte, source string) (*schema.SweepSpec, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, source)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", source, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(file.Body, nil, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", source, diags)
	}
	if root.Sweep == nil {
		return nil, fmt.Errorf("%s: no 'sweep' block found", source)
	}

	return translateSweep(root.Sweep, source)
}

func translateSweep(block *sweepBlock, source string) (*schema.SweepSpec, error) {
	spec := &schema.SweepSpec{
		Program:    block.Program,
		Method:     schema.Method(block.Method),
		Parameters: make(map[string]*schema.Parameter, len(block.Parameters)),
		Source:     source,
	}
	if block.Metric != nil {
		spec.Metric = schema.Metric{
			Name: block.Metric.Name,
			Goal: schema.Goal(block.Metric.Goal),
		}
	}

	for _, p := range block.Parameters {
		path, err := keypath.Parse(p.Path)
		if err != nil {
			return nil, fmt.Errorf("%s: parameter %q: %w", source, p.Path, err)
		}
		canonical := path.String()
		if _, exists := spec.Parameters[canonical]; exists {
			return nil, fmt.Errorf("%s: parameter %q declared twice", source, canonical)
		}

		param, err := translateParam(path, p, source)
		if err != nil {
			return nil, fmt.Errorf("%s: parameter %q: %w", source, canonical, err)
		}
		spec.Parameters[canonical] = param
	}

	return spec, nil
}

func translateParam(path keypath.Path, p *parameterBlock, source string) (*schema.Parameter, error) {
	param := &schema.Parameter{
		Path:         path,
		Distribution: p.Distribution,
		Min:          p.Min,
		Max:          p.Max,
		Source:       source,
	}

	hasValue := p.Value != cty.NilVal && !p.Value.IsNull()
	hasValues := p.Values != cty.NilVal && !p.Values.IsNull()
	if hasValue && hasValues {
		return nil, fmt.Errorf("'value' and 'values' are mutually exclusive")
	}

	if hasValue {
		param.Values = append(param.Values, p.Value)
		if param.Distribution == "" {
			param.Distribution = "constant"
		}
	}
	if hasValues {
		if !p.Values.CanIterateElements() {
			return nil, fmt.Errorf("'values' must be a list")
		}
		for it := p.Values.ElementIterator(); it.Next(); {
			_, elem := it.Element()
			param.Values = append(param.Values, elem)
		}
	}

	return param, nil
}
