package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Kevininininin/Collage/internal/config"
	"github.com/Kevininininin/Collage/internal/contact"
	"github.com/Kevininininin/Collage/internal/display"
	"github.com/Kevininininin/Collage/internal/export"
	"github.com/Kevininininin/Collage/internal/logging"
	"github.com/Kevininininin/Collage/internal/photo"
)

// Artifact file names inside the output directory.
const (
	ContactSheetFile    = "contact_sheet.png"
	ContactSheetPDFFile = "contact_sheet.pdf"
)

// Run is the top-level entry point. It selects the input images, decodes
// them, writes the contact sheet, the normalized copies and the manifest,
// and prints the completion report. In dry-run mode nothing is written.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger) (RunStats, error) {
	var stats RunStats

	if !cfg.DryRun {
		if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
			return stats, fmt.Errorf("create output directory: %w", err)
		}
	}

	paths, err := ListImages(cfg.InputDir, cfg.RequiredImages)
	if err != nil {
		return stats, err
	}
	stats.Discovered = len(paths)
	log.Info("Selected %d images from %s", len(paths), cfg.InputDir)

	assets, err := photo.LoadAssets(ctx, paths, cfg.ElementCount)
	if err != nil {
		return stats, fmt.Errorf("load images: %w", err)
	}
	for _, a := range assets {
		if a.Role == photo.RoleBackground {
			stats.Backgrounds++
		} else {
			stats.Elements++
		}
		log.Debug(cfg.Verbose, "  %d: %s %s (%s)", a.ID, a.Role, display.FormatDims(a.Width, a.Height), filepath.Base(a.Path))
	}
	log.Info("Roles: %d element(s), %d background", stats.Elements, stats.Backgrounds)

	arts := planArtifacts(cfg, assets)
	stats.Artifacts = arts

	if cfg.DryRun {
		for _, p := range arts.All() {
			log.Success("[DRY] Would write %s", p)
		}
		return stats, nil
	}

	if err := ctx.Err(); err != nil {
		return stats, err
	}

	layout := contact.Layout{TileW: cfg.TileWidth, TileH: cfg.TileHeight, Columns: cfg.Columns}
	sheet := contact.Render(assets, layout)
	if err := contact.Save(sheet, arts.ContactSheet); err != nil {
		return stats, err
	}
	stats.record(arts.ContactSheet)
	log.Success("Contact sheet: %s", arts.ContactSheet)

	if arts.ContactSheetPDF != "" {
		if err := contact.SavePDF(sheet, arts.ContactSheetPDF); err != nil {
			return stats, err
		}
		stats.record(arts.ContactSheetPDF)
		log.Success("Contact sheet PDF: %s", arts.ContactSheetPDF)
	}

	if err := ctx.Err(); err != nil {
		return stats, err
	}

	written, err := export.WriteNormalized(assets, cfg.OutputDir, cfg.MaxSideElement, cfg.MaxSideBackground)
	for _, p := range written {
		stats.record(p)
		log.Debug(cfg.Verbose, "  wrote %s", filepath.Base(p))
	}
	if err != nil {
		return stats, err
	}
	log.Success("Normalized %d images into %s", len(written), cfg.OutputDir)

	if err := export.WriteSummary(assets, arts.Summary); err != nil {
		return stats, err
	}
	stats.record(arts.Summary)

	display.PrintReport(os.Stdout, display.Report{
		ContactSheet:    arts.ContactSheet,
		ContactSheetPDF: arts.ContactSheetPDF,
		NormalizedDir:   cfg.OutputDir,
		Summary:         arts.Summary,
		Files:           stats.Written,
		Bytes:           stats.BytesWritten,
	})
	return stats, nil
}

// planArtifacts resolves every output path for assets.
func planArtifacts(cfg *config.Config, assets []*photo.Asset) Artifacts {
	arts := Artifacts{
		ContactSheet: filepath.Join(cfg.OutputDir, ContactSheetFile),
		Summary:      filepath.Join(cfg.OutputDir, export.SummaryFile),
	}
	if cfg.ContactSheetPDF {
		arts.ContactSheetPDF = filepath.Join(cfg.OutputDir, ContactSheetPDFFile)
	}
	for _, a := range assets {
		arts.Normalized = append(arts.Normalized, filepath.Join(cfg.OutputDir, export.NormalizedName(a)))
	}
	return arts
}

// record counts a written file and its size.
func (s *RunStats) record(path string) {
	s.Written++
	if fi, err := os.Stat(path); err == nil {
		s.BytesWritten += fi.Size()
	}
}
