// Command photoprep is the entrypoint for Step A of the collage pipeline.
// It parses flags, validates config and paths, and either runs the system
// check (--check) or the prep pipeline.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/Kevininininin/Collage/internal/check"
	"github.com/Kevininininin/Collage/internal/config"
	"github.com/Kevininininin/Collage/internal/display"
	"github.com/Kevininininin/Collage/internal/logging"
	"github.com/Kevininininin/Collage/internal/pipeline"
)

// version and commit are set at build time via -ldflags (e.g. Makefile).
var (
	version = "1.0.0-dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// 1. Load config from defaults, the optional YAML file and CLI flags.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, version, args); err != nil {
		if errors.Is(err, config.ErrHelpShown) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "photoprep: %v\n", err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "photoprep: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "photoprep: %v\n", err)
		return 1
	}
	defer log.Close()

	display.PrintBanner(os.Stdout)

	// 2. System check only.
	if cfg.CheckOnly {
		if !check.RunCheck(&cfg, log) {
			return 1
		}
		return 0
	}

	// 3. Resolve and validate paths: input must be a directory, output is
	// created if needed and must differ from input.
	inputAbs, err := absPath(cfg.InputDir)
	if err != nil {
		log.Error("Input not found: %s", cfg.InputDir)
		return 1
	}
	if fi, err := os.Stat(inputAbs); err != nil || !fi.IsDir() {
		log.Error("Input is not a directory: %s", cfg.InputDir)
		return 1
	}
	if err := check.CheckDeps(&cfg); err != nil {
		log.Error("%v", err)
		return 1
	}
	if !cfg.DryRun {
		if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
			log.Error("Cannot create output directory: %s", cfg.OutputDir)
			return 1
		}
	}
	if outputAbs, err := absPath(cfg.OutputDir); err == nil {
		if err := cfg.ValidatePaths(inputAbs, outputAbs); err != nil {
			log.Error("%v", err)
			return 1
		}
	}

	log.Info("=== photoprep v%s (%s) ===", version, commit)
	log.Info("In:  %s", cfg.InputDir)
	log.Info("Out: %s", cfg.OutputDir)
	log.Debug(cfg.Verbose, "Run id: %s", log.RunID())
	if cfg.DryRun {
		log.Warn("DRY RUN")
	}

	// 4. Run the pipeline; SIGINT/SIGTERM cancel between stages.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := pipeline.Run(ctx, &cfg, log); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Warn("Interrupted")
		} else {
			log.Error("%v", err)
		}
		return 1
	}
	return 0
}

// absPath returns the absolute path with symlinks resolved, for comparing
// input and output.
func absPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
