// Package archive probes the sample archives a run document references.
// The external data loader reads per-(day, human) pickle shards either from
// a plain directory or from a zip archive; probing checks the same layouts
// without reading any shard contents.
package archive

import (
	"archive/zip"
	"context"
	"fmt"
	"os"
	"path"
	"regexp"
	"strings"

	"github.com/vk/sweepctl/internal/ctxlog"
)

// shardNameRegex matches the `<day>-<human>.pkl` shard naming the loader
// expects inside an archive. Days count from an outbreak reference point,
// so the day index may be negative.
var shardNameRegex = regexp.MustCompile(`^-?\d+-\d+\.pkl$`)

// Probe is the result of checking one archive path.
type Probe struct {
	Path    string
	Exists  bool
	Samples int
	Err     error
}

// Ok reports whether the path exists and was readable.
func (p Probe) Ok() bool {
	return p.Exists && p.Err == nil
}

// Paths probes every archive path and reports each result. Probing never
// short-circuits: a broken first archive still lets the user see the rest.
func Paths(ctx context.Context, paths []string) []Probe {
	logger := ctxlog.FromContext(ctx)

	probes := make([]Probe, len(paths))
	for i, p := range paths {
		probes[i] = probeOne(p)
		logger.Debug("Archive probed.",
			"path", p, "exists", probes[i].Exists, "samples", probes[i].Samples, "error", probes[i].Err)
	}
	return probes
}

func probeOne(archivePath string) Probe {
	probe := Probe{Path: archivePath}

	info, err := os.Stat(archivePath)
	if err != nil {
		if os.IsNotExist(err) {
			return probe
		}
		probe.Err = err
		return probe
	}
	probe.Exists = true

	switch {
	case info.IsDir():
		probe.Samples, probe.Err = countDirShards(archivePath)
	case strings.HasSuffix(archivePath, ".zip"):
		probe.Samples, probe.Err = countZipShards(archivePath)
	default:
		// A bare file is a single-sample pickle; nothing further to check.
		probe.Samples = 1
	}
	return probe
}

func countDirShards(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("failed to list %s: %w", dir, err)
	}
	count := 0
	for _, entry := range entries {
		if !entry.IsDir() && shardNameRegex.MatchString(entry.Name()) {
			count++
		}
	}
	return count, nil
}

func countZipShards(archivePath string) (int, error) {
	zf, err := zip.OpenReader(archivePath)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", archivePath, err)
	}
	defer zf.Close()

	count := 0
	for _, file := range zf.File {
		if shardNameRegex.MatchString(path.Base(file.Name)) {
			count++
		}
	}
	return count, nil
}
