// Package config holds runtime configuration: defaults, the optional YAML
// config file, CLI flag parsing, and validation.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// DefaultOutputDir is used when --outdir is not given.
const DefaultOutputDir = "outputs/stepA"

// Config holds all runtime settings. It is populated by [DefaultConfig],
// overlaid by [LoadFile] when --config is set, and finally mutated by
// [ParseFlags] before being passed (by pointer) to packages that need it.
type Config struct {
	// Paths.
	InputDir   string
	OutputDir  string // Default: "outputs/stepA".
	ConfigFile string // Optional YAML overlay.

	// Asset selection (not user-configurable).
	RequiredImages int // Fixed: 6. Exactly this many assets are taken per run.
	ElementCount   int // Fixed: 5. Ids 1..ElementCount are elements, the rest background.

	// Contact sheet.
	TileWidth       int  // Default: 480.
	TileHeight      int  // Default: 320.
	Columns         int  // Default: 3.
	ContactSheetPDF bool // Also write contact_sheet.pdf.

	// Normalized copies.
	MaxSideElement    int // Default: 1600.
	MaxSideBackground int // Default: 2400.

	// Behavior flags.
	DryRun    bool
	CheckOnly bool // Run --check diagnostics and exit.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional structured log file path.
}

// DefaultConfig returns a Config with all defaults. Used as the base before
// [LoadFile] and [ParseFlags] apply overrides.
func DefaultConfig() Config {
	return Config{
		OutputDir:         DefaultOutputDir,
		RequiredImages:    6,
		ElementCount:      5,
		TileWidth:         480,
		TileHeight:        320,
		Columns:           3,
		MaxSideElement:    1600,
		MaxSideBackground: 2400,
		ColorMode:         ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks sizes and enum fields. When not in CheckOnly mode, it
// also requires an input directory.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", c.ColorMode)
	}

	if c.TileWidth <= 0 || c.TileHeight <= 0 {
		return fmt.Errorf("tile size must be positive (got %dx%d)", c.TileWidth, c.TileHeight)
	}
	if c.Columns < 1 {
		return fmt.Errorf("columns must be at least 1 (got %d)", c.Columns)
	}
	if c.MaxSideElement < 1 || c.MaxSideBackground < 1 {
		return errors.New("max side limits must be at least 1 pixel")
	}
	if c.RequiredImages < 1 || c.ElementCount < 0 || c.ElementCount > c.RequiredImages {
		return fmt.Errorf("invalid asset counts: %d required, %d elements", c.RequiredImages, c.ElementCount)
	}

	if c.CheckOnly {
		return nil
	}
	if c.InputDir == "" {
		return errors.New("need an input directory (--input)")
	}
	if c.OutputDir == "" {
		return errors.New("output directory must not be empty")
	}
	return nil
}

// ValidatePaths rejects an output directory equal to the input directory.
// Discovery is non-recursive, so a nested output folder is never re-read,
// but writing straight into the input folder would feed the normalized
// copies into the next run. Both arguments must be absolute,
// symlink-resolved paths.
func (c *Config) ValidatePaths(inputAbs, outputAbs string) error {
	if filepath.Clean(inputAbs) == filepath.Clean(outputAbs) {
		return errors.New("output directory must not be the input directory")
	}
	return nil
}
