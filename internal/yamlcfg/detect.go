package yamlcfg

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// DocKind classifies a YAML document by its top-level keys.
type DocKind int

const (
	KindUnknown DocKind = iota
	KindSweep
	KindRun
)

// sweep documents have exactly these markers; run documents have the
// trainer's section names.
var (
	sweepMarkers = []string{"method", "parameters", "program"}
	runMarkers   = []string{"data", "model", "losses", "optim", "training"}
)

// Detect classifies raw YAML as a sweep or run document. A document mixing
// markers from both kinds is an error, because the two schemas share no
// top-level keys by construction.
func Detect(src []byte, source string) (DocKind, error) {
	var tree map[string]any
	if err := yaml.Unmarshal(src, &tree); err != nil {
		return KindUnknown, fmt.Errorf("failed to parse %s: %w", source, err)
	}

	isSweep := hasAny(tree, sweepMarkers)
	isRun := hasAny(tree, runMarkers)

	switch {
	case isSweep && isRun:
		return KindUnknown, fmt.Errorf("%s mixes sweep and run sections", source)
	case isSweep:
		return KindSweep, nil
	case isRun:
		return KindRun, nil
	default:
		return KindUnknown, nil
	}
}

func hasAny(tree map[string]any, keys []string) bool {
	for _, k := range keys {
		if _, ok := tree[k]; ok {
			return true
		}
	}
	return false
}
