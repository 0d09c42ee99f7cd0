package config

// This file implements CLI flag parsing on top of cobra/pflag.
// Flags are grouped into paths, contact sheet, normalization, display, and utility.
// Precedence is defaults < --config file < explicit flags; color flags are
// applied last so --no-color always wins.

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// ErrHelpShown is returned by [ParseFlags] after --help or --version was
// printed. Callers should exit successfully without running the pipeline.
var ErrHelpShown = errors.New("help shown")

// colorFlags holds the boolean color switches applied after the config file.
type colorFlags struct {
	forceColor bool
	noColor    bool
}

// ParseFlags parses args (without the program name) into cfg.
// On --help or --version it prints and returns [ErrHelpShown].
func ParseFlags(cfg *Config, version string, args []string) error {
	var cf colorFlags
	ran := false

	cmd := &cobra.Command{
		Use:   "photoprep [flags] [input_dir [output_dir]]",
		Short: "Step A: Input & Prep",
		Long: `photoprep takes the first six images of a folder (by filename), treats
images 1-5 as elements and image 6 as the background, fixes their EXIF
orientation, and writes a contact sheet, normalized PNG copies, and a
summary.json manifest for the next pipeline step.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ran = true
			return finishParse(cmd.Flags(), cfg, &cf, args)
		},
	}
	cmd.SetVersionTemplate("photoprep v{{.Version}}\n")

	fs := cmd.Flags()
	fs.SortFlags = false
	definePathFlags(fs, cfg)
	defineContactSheetFlags(fs, cfg)
	defineNormalizeFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &cf)

	// cobra falls back to os.Args when given nil.
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		return err
	}
	if !ran {
		return ErrHelpShown
	}
	return nil
}

// definePathFlags registers -i/--input, -o/--outdir, --config.
func definePathFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.StringVarP(&cfg.InputDir, "input", "i", cfg.InputDir, "Folder containing at least 6 images")
	fs.StringVarP(&cfg.OutputDir, "outdir", "o", cfg.OutputDir, "Output folder for Step A artifacts")
	fs.StringVar(&cfg.ConfigFile, "config", "", "YAML config file (flags override its values)")
}

// defineContactSheetFlags registers --tile, --columns, --pdf.
func defineContactSheetFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.Var(&tileValue{&cfg.TileWidth, &cfg.TileHeight}, "tile", "Contact sheet tile size as WxH")
	fs.IntVar(&cfg.Columns, "columns", cfg.Columns, "Contact sheet columns")
	fs.BoolVar(&cfg.ContactSheetPDF, "pdf", false, "Also write contact_sheet.pdf")
}

// defineNormalizeFlags registers --max-element, --max-background.
func defineNormalizeFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.IntVar(&cfg.MaxSideElement, "max-element", cfg.MaxSideElement, "Longest side for normalized element images")
	fs.IntVar(&cfg.MaxSideBackground, "max-background", cfg.MaxSideBackground, "Longest side for the normalized background")
}

// defineDisplayFlags registers dry-run, check, color, verbose, log.
func defineDisplayFlags(fs *pflag.FlagSet, cfg *Config, cf *colorFlags) {
	fs.BoolVarP(&cfg.DryRun, "dry-run", "d", false, "Decode and report only; write nothing")
	fs.BoolVarP(&cfg.CheckOnly, "check", "c", false, "Run codec diagnostics and exit")
	fs.BoolVar(&cf.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&cf.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Verbose output")
	fs.StringVarP(&cfg.LogFile, "log", "l", "", "Append structured JSON logs to file")
}

// finishParse runs once cobra has parsed flags: it overlays the config file,
// re-applies explicitly set flags on top, then resolves positional args.
func finishParse(fs *pflag.FlagSet, cfg *Config, cf *colorFlags, args []string) error {
	if cfg.ConfigFile != "" {
		flagged := *cfg
		if err := LoadFile(cfg.ConfigFile, cfg); err != nil {
			return err
		}
		fs.Visit(func(f *pflag.Flag) { restoreFlag(cfg, &flagged, f.Name) })
	}

	if cf.noColor {
		cfg.ColorMode = ColorNever
	} else if cf.forceColor {
		cfg.ColorMode = ColorAlways
	}

	return applyPositionalArgs(fs, cfg, args)
}

// restoreFlag copies the flag-provided value for name from flagged into cfg.
func restoreFlag(cfg, flagged *Config, name string) {
	switch name {
	case "input":
		cfg.InputDir = flagged.InputDir
	case "outdir":
		cfg.OutputDir = flagged.OutputDir
	case "tile":
		cfg.TileWidth, cfg.TileHeight = flagged.TileWidth, flagged.TileHeight
	case "columns":
		cfg.Columns = flagged.Columns
	case "pdf":
		cfg.ContactSheetPDF = flagged.ContactSheetPDF
	case "max-element":
		cfg.MaxSideElement = flagged.MaxSideElement
	case "max-background":
		cfg.MaxSideBackground = flagged.MaxSideBackground
	case "verbose":
		cfg.Verbose = flagged.Verbose
	case "log":
		cfg.LogFile = flagged.LogFile
	}
}

// applyPositionalArgs fills InputDir and OutputDir from up to two
// positional args. Giving a path both ways is an error.
func applyPositionalArgs(fs *pflag.FlagSet, cfg *Config, args []string) error {
	if len(args) > 0 {
		if fs.Changed("input") {
			return errors.New("input directory given both as --input and as an argument")
		}
		cfg.InputDir = args[0]
	}
	if len(args) > 1 {
		if fs.Changed("outdir") {
			return errors.New("output directory given both as --outdir and as an argument")
		}
		cfg.OutputDir = args[1]
	}
	cfg.InputDir = NormalizeDirArg(cfg.InputDir)
	cfg.OutputDir = NormalizeDirArg(cfg.OutputDir)
	return nil
}

// ParseTileSize parses "WxH" (e.g. "480x320"); both sides must be positive.
func ParseTileSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid tile size %q (use WxH, e.g. 480x320)", s)
	}
	w, err1 := strconv.Atoi(strings.TrimSpace(ws))
	h, err2 := strconv.Atoi(strings.TrimSpace(hs))
	if err1 != nil || err2 != nil || w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("invalid tile size %q (use WxH, e.g. 480x320)", s)
	}
	return w, h, nil
}

// pflag.Value adapters for fields that need custom parsing.

type tileValue struct{ w, h *int }

func (t *tileValue) String() string { return fmt.Sprintf("%dx%d", *t.w, *t.h) }
func (t *tileValue) Type() string   { return "WxH" }
func (t *tileValue) Set(s string) error {
	w, h, err := ParseTileSize(s)
	if err != nil {
		return err
	}
	*t.w, *t.h = w, h
	return nil
}

type colorModeValue struct{ p *ColorMode }

func (c *colorModeValue) String() string { return string(*c.p) }
func (c *colorModeValue) Type() string   { return "mode" }
func (c *colorModeValue) Set(s string) error {
	switch strings.ToLower(s) {
	case "auto":
		*c.p = ColorAuto
	case "always":
		*c.p = ColorAlways
	case "never":
		*c.p = ColorNever
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", s)
	}
	return nil
}
