package trial

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vk/sweepctl/internal/keypath"
	"github.com/vk/sweepctl/internal/schema"
	"github.com/vk/sweepctl/internal/yamlcfg"
)

// Materialize renders one trial as a complete run document: a deep copy of
// the base tree with every assignment entry applied at its key path.
func Materialize(base *schema.RunConfig, t Trial) ([]byte, error) {
	if base == nil || base.Tree == nil {
		return nil, fmt.Errorf("trial materialization requires a base run document")
	}

	tree, ok := deepCopy(base.Tree).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("base document is not a mapping")
	}

	for _, key := range t.Assignment.SortedKeys() {
		path, err := keypath.Parse(key)
		if err != nil {
			return nil, fmt.Errorf("trial %d: %w", t.Index, err)
		}
		value, err := yamlcfg.FromCty(t.Assignment[key])
		if err != nil {
			return nil, fmt.Errorf("trial %d: parameter %q: %w", t.Index, key, err)
		}
		if err := path.Set(tree, value); err != nil {
			return nil, fmt.Errorf("trial %d: %w", t.Index, err)
		}
	}

	out, err := yaml.Marshal(tree)
	if err != nil {
		return nil, fmt.Errorf("trial %d: %w", t.Index, err)
	}
	return out, nil
}

// deepCopy clones the nested maps and slices of a document tree so override
// application never aliases the base document.
func deepCopy(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, e := range val {
			out[k] = deepCopy(e)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, e := range val {
			out[i] = deepCopy(e)
		}
		return out
	default:
		return val
	}
}
