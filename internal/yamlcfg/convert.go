package yamlcfg

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// ToCty converts a decoded YAML value into its cty equivalent. YAML v3
// decodes mappings as map[string]any, sequences as []any, and scalars as
// string, bool, int, or float64.
func ToCty(v any) (cty.Value, error) {
	switch val := v.(type) {
	case nil:
		return cty.NullVal(cty.DynamicPseudoType), nil
	case bool:
		return cty.BoolVal(val), nil
	case string:
		return cty.StringVal(val), nil
	case int:
		return cty.NumberIntVal(int64(val)), nil
	case int64:
		return cty.NumberIntVal(val), nil
	case uint64:
		return cty.NumberUIntVal(val), nil
	case float64:
		return cty.NumberFloatVal(val), nil
	case []any:
		if len(val) == 0 {
			return cty.EmptyTupleVal, nil
		}
		elems := make([]cty.Value, len(val))
		for i, e := range val {
			conv, err := ToCty(e)
			if err != nil {
				return cty.NilVal, fmt.Errorf("element %d: %w", i, err)
			}
			elems[i] = conv
		}
		return cty.TupleVal(elems), nil
	case map[string]any:
		if len(val) == 0 {
			return cty.EmptyObjectVal, nil
		}
		attrs := make(map[string]cty.Value, len(val))
		for k, e := range val {
			conv, err := ToCty(e)
			if err != nil {
				return cty.NilVal, fmt.Errorf("key %q: %w", k, err)
			}
			attrs[k] = conv
		}
		return cty.ObjectVal(attrs), nil
	default:
		return cty.NilVal, fmt.Errorf("unsupported YAML value of type %T", v)
	}
}

// FromCty converts a cty value back into the plain Go shape yaml.Marshal
// understands. Integral numbers come back as int64 so they serialize without
// a spurious decimal point.
func FromCty(v cty.Value) (any, error) {
	if v.IsNull() {
		return nil, nil
	}

	ty := v.Type()
	switch {
	case ty == cty.Bool:
		return v.True(), nil
	case ty == cty.String:
		return v.AsString(), nil
	case ty == cty.Number:
		bf := v.AsBigFloat()
		if bf.IsInt() {
			i, _ := bf.Int64()
			return i, nil
		}
		f, _ := bf.Float64()
		return f, nil
	case ty.IsTupleType() || ty.IsListType() || ty.IsSetType():
		out := make([]any, 0, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			_, elem := it.Element()
			conv, err := FromCty(elem)
			if err != nil {
				return nil, err
			}
			out = append(out, conv)
		}
		return out, nil
	case ty.IsObjectType() || ty.IsMapType():
		out := make(map[string]any, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			key, elem := it.Element()
			conv, err := FromCty(elem)
			if err != nil {
				return nil, err
			}
			out[key.AsString()] = conv
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported cty value of type %s", ty.FriendlyName())
	}
}

// kwargsToCty converts a decoded YAML mapping value-by-value, keeping the
// map absent (nil) when the section was absent.
func kwargsToCty(raw map[string]any) (map[string]cty.Value, error) {
	if raw == nil {
		return nil, nil
	}
	out := make(map[string]cty.Value, len(raw))
	for k, v := range raw {
		conv, err := ToCty(v)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", k, err)
		}
		out[k] = conv
	}
	return out, nil
}
