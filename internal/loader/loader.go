// Package loader discovers document files, dispatches them to the
// format-specific parsers, and merges the results into a single
// schema.Documents value.
package loader

import (
	"context"
	"fmt"
	"os"
	"slices"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vk/sweepctl/internal/ctxlog"
	"github.com/vk/sweepctl/internal/fsutil"
	"github.com/vk/sweepctl/internal/hclcfg"
	"github.com/vk/sweepctl/internal/schema"
	"github.com/vk/sweepctl/internal/yamlcfg"
)

// documentExtensions are the file suffixes the finder considers.
var documentExtensions = []string{".yml", ".yaml", ".hcl"}

// Loader implements schema.Loader over YAML and HCL files.
type Loader struct{}

// New creates a new document loader.
func New() *Loader {
	return &Loader{}
}

// Load reads every document under the given paths. At most one sweep
// document may appear; run documents merge shallowly at the top level in
// lexical filename order, later sections replacing earlier ones.
func (l *Loader) Load(ctx context.Context, paths ...string) (*schema.Documents, error) {
	logger := ctxlog.FromContext(ctx)

	var files []string
	for _, path := range paths {
		found, err := fsutil.FindFilesByExtensions(path, documentExtensions...)
		if err != nil {
			return nil, fmt.Errorf("failed to discover documents under %s: %w", path, err)
		}
		files = append(files, found...)
	}
	sort.Strings(files)
	// An explicit file path may also live under a discovered directory;
	// each file is parsed once.
	files = slices.Compact(files)
	logger.Debug("Discovered document files.", "count", len(files))

	docs := &schema.Documents{}
	var runTrees []map[string]any
	var runSources []string

	for _, file := range files {
		src, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", file, err)
		}

		if strings.HasSuffix(file, ".hcl") {
			sweep, err := hclcfg.ParseSweep(src, file)
			if err != nil {
				return nil, err
			}
			if err := setSweep(docs, sweep); err != nil {
				return nil, err
			}
			continue
		}

		kind, err := yamlcfg.Detect(src, file)
		if err != nil {
			return nil, err
		}
		switch kind {
		case yamlcfg.KindSweep:
			sweep, err := yamlcfg.ParseSweep(src, file)
			if err != nil {
				return nil, err
			}
			if err := setSweep(docs, sweep); err != nil {
				return nil, err
			}
		case yamlcfg.KindRun:
			run, err := yamlcfg.ParseRun(src, file)
			if err != nil {
				return nil, err
			}
			runTrees = append(runTrees, run.Tree)
			runSources = append(runSources, file)
		default:
			logger.Warn("Skipping unrecognized document.", "file", file)
		}
	}

	if len(runTrees) > 0 {
		run, err := mergeRuns(runTrees, runSources)
		if err != nil {
			return nil, err
		}
		docs.Run = run
	}

	return docs, nil
}

func setSweep(docs *schema.Documents, sweep *schema.SweepSpec) error {
	if docs.Sweep != nil {
		return fmt.Errorf("multiple sweep documents found: %s and %s", docs.Sweep.Source, sweep.Source)
	}
	docs.Sweep = sweep
	return nil
}

// mergeRuns folds the run document trees in order, whole top-level sections
// at a time, then re-parses the merged tree so the typed model and the tree
// stay consistent.
func mergeRuns(trees []map[string]any, sources []string) (*schema.RunConfig, error) {
	merged := make(map[string]any)
	for _, tree := range trees {
		for key, section := range tree {
			merged[key] = section
		}
	}

	src, err := yaml.Marshal(merged)
	if err != nil {
		return nil, fmt.Errorf("failed to merge run documents: %w", err)
	}

	run, err := yamlcfg.ParseRun(src, strings.Join(sources, ","))
	if err != nil {
		return nil, err
	}
	return run, nil
}
