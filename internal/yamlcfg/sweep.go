package yamlcfg

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vk/sweepctl/internal/keypath"
	"github.com/vk/sweepctl/internal/schema"
)

// sweepDoc is the YAML-specific decode target for a sweep document.
type sweepDoc struct {
	Program string `yaml:"program"`
	Method  string `yaml:"method"`
	Metric  struct {
		Name string `yaml:"name"`
		Goal string `yaml:"goal"`
	} `yaml:"metric"`
	Parameters map[string]paramDoc `yaml:"parameters"`
}

// paramDoc is the YAML-specific decode target for one parameter entry.
// `value` is the single-value shorthand for constants; `values` the general
// list form.
type paramDoc struct {
	Distribution string   `yaml:"distribution"`
	Min          *float64 `yaml:"min"`
	Max          *float64 `yaml:"max"`
	Values       []any    `yaml:"values"`
	Value        any      `yaml:"value"`
}

// ParseSweep decodes a YAML sweep document and translates it into the
// format-agnostic model. Parameter keys normalize to their canonical dotted
// form; two spellings of the same path in one document are an error.
func ParseSweep(src []byte, source string) (*schema.SweepSpec, error) {
	var doc sweepDoc
	if err := yaml.Unmarshal(src, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse sweep document %s: %w", source, err)
	}

	spec := &schema.SweepSpec{
		Program: doc.Program,
		Method:  schema.Method(doc.Method),
		Metric: schema.Metric{
			Name: doc.Metric.Name,
			Goal: schema.Goal(doc.Metric.Goal),
		},
		Parameters: make(map[string]*schema.Parameter, len(doc.Parameters)),
		Source:     source,
	}

	for rawKey, p := range doc.Parameters {
		path, err := keypath.Parse(rawKey)
		if err != nil {
			return nil, fmt.Errorf("%s: parameter key %q: %w", source, rawKey, err)
		}
		canonical := path.String()
		if _, exists := spec.Parameters[canonical]; exists {
			return nil, fmt.Errorf("%s: parameter %q declared twice (conflicting spellings)", source, canonical)
		}

		param, err := translateParam(path, p, source)
		if err != nil {
			return nil, fmt.Errorf("%s: parameter %q: %w", source, canonical, err)
		}
		spec.Parameters[canonical] = param
	}

	return spec, nil
}

func translateParam(path keypath.Path, p paramDoc, source string) (*schema.Parameter, error) {
	param := &schema.Parameter{
		Path:         path,
		Distribution: p.Distribution,
		Min:          p.Min,
		Max:          p.Max,
		Source:       source,
	}

	if p.Value != nil && len(p.Values) > 0 {
		return nil, fmt.Errorf("'value' and 'values' are mutually exclusive")
	}
	if p.Value != nil {
		v, err := ToCty(p.Value)
		if err != nil {
			return nil, fmt.Errorf("value: %w", err)
		}
		param.Values = append(param.Values, v)
		// `value:` with no explicit distribution means a constant.
		if param.Distribution == "" {
			param.Distribution = "constant"
		}
	}
	for i, raw := range p.Values {
		v, err := ToCty(raw)
		if err != nil {
			return nil, fmt.Errorf("values[%d]: %w", i, err)
		}
		param.Values = append(param.Values, v)
	}

	return param, nil
}
