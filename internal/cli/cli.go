package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/pipegrid/internal/config"
)

// ExitError is an error that carries a process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns the resolved Config,
// true when the program should exit cleanly (help was shown), or an
// *ExitError with code 2 for usage problems. environ feeds the env object of
// the configuration file.
func Parse(args []string, output io.Writer, environ []string) (*config.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("pipegrid", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
pipegrid - report which sinks of a pipe grid are connected to the source.

Usage:
  pipegrid [options] [INPUT_PATH]

Arguments:
  INPUT_PATH
    Text file with one "<glyph> <x> <y>" record per line.

Options:
`)
		flagSet.PrintDefaults()
	}

	inputFlag := flagSet.String("input", "", "Path to the grid file.")
	iFlag := flagSet.String("i", "", "Path to the grid file (shorthand).")
	renderFlag := flagSet.Bool("render", false, "Print the grid before the result.")
	configFlag := flagSet.String("config", "", "Optional HCL configuration file.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	traversalFlag := flagSet.String("traversal", "bfs", "Search used to follow the pipes. Options: 'bfs' or 'dfs'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.LoadFile(*configFlag, cfg, environ)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		cfg = loaded
		slog.Debug("Configuration file loaded.", "path", *configFlag)
	}

	// Flags given explicitly win over the configuration file.
	set := map[string]bool{}
	flagSet.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["render"] {
		cfg.Render = *renderFlag
	}
	if set["log-level"] {
		cfg.LogLevel = *logLevelFlag
	}
	if set["log-format"] {
		cfg.LogFormat = *logFormatFlag
	}
	if set["traversal"] {
		cfg.Traversal = *traversalFlag
	}
	switch {
	case *inputFlag != "":
		cfg.InputPath = *inputFlag
	case *iFlag != "":
		cfg.InputPath = *iFlag
	case flagSet.NArg() > 0:
		cfg.InputPath = flagSet.Arg(0)
	}

	if cfg.InputPath == "" {
		slog.Debug("No input path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}
	if err := cfg.Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return &cfg, false, nil
}
