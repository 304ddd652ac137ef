package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/sweepctl/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("sweepctl", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
sweepctl - loads, validates, and expands hyperparameter sweep documents.

Usage:
  sweepctl [options] [PATH]

Arguments:
  PATH
    Path to a document file (.yml, .yaml, .hcl) or a directory containing
    document files.

Options:
`)
		flagSet.PrintDefaults()
	}

	sweepFlag := flagSet.String("sweep", "", "Path to the sweep document.")
	sFlag := flagSet.String("s", "", "Path to the sweep document (shorthand).")
	runFlag := flagSet.String("run", "", "Path to the run document.")
	rFlag := flagSet.String("r", "", "Path to the run document (shorthand).")
	outFlag := flagSet.String("out", "", "Directory to materialize trial run configs into.")
	trialsFlag := flagSet.Int("trials", 0, "Number of trials to materialize. For the grid method, 0 means the full enumeration.")
	seedFlag := flagSet.Int64("seed", 1, "RNG seed for the random method.")
	checkDataFlag := flagSet.Bool("check-data", false, "Probe the data archives the run document references.")
	healthPortFlag := flagSet.Int("healthcheck-port", 0, "Port for the HTTP health check server. 0 is disabled.")
	logFormatFlag := flagSet.String("log-format", "json", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	workersFlag := flagSet.Int("workers", 4, "Number of concurrent workers for trial writing.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}

	sweepPath := *sweepFlag
	if sweepPath == "" {
		sweepPath = *sFlag
	}
	runPath := *runFlag
	if runPath == "" {
		runPath = *rFlag
	}

	if path == "" && sweepPath == "" && runPath == "" {
		slog.Debug("No document path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		DocPath:         path,
		SweepPath:       sweepPath,
		RunPath:         runPath,
		OutDir:          *outFlag,
		Trials:          *trialsFlag,
		Seed:            *seedFlag,
		CheckData:       *checkDataFlag,
		HealthcheckPort: *healthPortFlag,
		LogFormat:       logFormat,
		LogLevel:        logLevel,
		WorkerCount:     *workersFlag,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
