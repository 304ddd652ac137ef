package trial

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vk/sweepctl/internal/ctxlog"
	"github.com/vk/sweepctl/internal/schema"
)

// Writer materializes trials into an output directory with a fixed pool of
// workers. Trials are independent files, so only the naming is ordered:
// trial N is always written as trial-%04d.yml of its expansion index.
type Writer struct {
	OutDir  string
	Workers int
}

// NewWriter creates a Writer. A non-positive worker count falls back to 1.
func NewWriter(outDir string, workers int) *Writer {
	if workers < 1 {
		workers = 1
	}
	return &Writer{OutDir: outDir, Workers: workers}
}

// WriteAll writes every trial. The first failure cancels the remaining work
// and is returned.
func (w *Writer) WriteAll(ctx context.Context, base *schema.RunConfig, trials []Trial) error {
	logger := ctxlog.FromContext(ctx)

	if err := os.MkdirAll(w.OutDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", w.OutDir, err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	trialChan := make(chan Trial)
	var wg sync.WaitGroup
	var once sync.Once
	var firstErr error

	fail := func(err error) {
		once.Do(func() {
			firstErr = err
			cancel()
		})
	}

	for workerID := 0; workerID < w.Workers; workerID++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			workerLogger := logger.With("workerID", workerID)
			for t := range trialChan {
				if ctx.Err() != nil {
					continue
				}
				if err := w.writeOne(base, t); err != nil {
					workerLogger.Error("Trial write failed.", "trial", t.Index, "error", err)
					fail(err)
					continue
				}
				workerLogger.Debug("Trial written.", "trial", t.Index)
			}
		}(workerID)
	}

	for _, t := range trials {
		if ctx.Err() != nil {
			break
		}
		trialChan <- t
	}
	close(trialChan)
	wg.Wait()

	if firstErr != nil {
		return fmt.Errorf("trial materialization failed: %w", firstErr)
	}
	logger.Info("Trials materialized.", "count", len(trials), "dir", w.OutDir)
	return nil
}

// TrialFileName returns the canonical file name for a trial index.
func TrialFileName(index int) string {
	return fmt.Sprintf("trial-%04d.yml", index)
}

func (w *Writer) writeOne(base *schema.RunConfig, t Trial) error {
	out, err := Materialize(base, t)
	if err != nil {
		return err
	}
	path := filepath.Join(w.OutDir, TrialFileName(t.Index))
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
