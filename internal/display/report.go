// Package display renders the banner and the completion report.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Kevininininin/Collage/internal/term"
)

// NextStepHint closes every successful report.
const NextStepHint = "Next: Step B (Main element recognition & masks)."

// Report is the completion summary of a run.
type Report struct {
	ContactSheet    string
	ContactSheetPDF string // Empty when no PDF was written.
	NormalizedDir   string
	Summary         string
	Files           int
	Bytes           int64
}

// RenderReport formats r. With styled set the heading and hint are colored
// through lipgloss; otherwise the output is plain text.
func RenderReport(r Report, styled bool, renderer *lipgloss.Renderer) string {
	heading := "✅ Step A complete."
	hint := NextStepHint
	if styled {
		heading = renderer.NewStyle().Foreground(lipgloss.Color("10")).Bold(true).Render(heading)
		hint = renderer.NewStyle().Foreground(lipgloss.Color("14")).Render(hint)
	}

	var b strings.Builder
	b.WriteString(heading + "\n")
	fmt.Fprintf(&b, " - Contact sheet: %s\n", r.ContactSheet)
	if r.ContactSheetPDF != "" {
		fmt.Fprintf(&b, " - Contact sheet PDF: %s\n", r.ContactSheetPDF)
	}
	fmt.Fprintf(&b, " - Normalized images: %s\n", r.NormalizedDir)
	fmt.Fprintf(&b, " - Summary JSON: %s\n", r.Summary)
	if r.Files > 0 {
		fmt.Fprintf(&b, " - Wrote %d files (%s)\n", r.Files, FormatBytes(r.Bytes))
	}
	b.WriteString(hint)
	return b.String()
}

// PrintReport writes the completion report to w.
func PrintReport(w io.Writer, r Report) {
	fmt.Fprintln(w, RenderReport(r, term.Enabled(), newRenderer(w)))
}
