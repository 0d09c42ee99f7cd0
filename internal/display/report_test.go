package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Kevininininin/Collage/internal/config"
	"github.com/Kevininininin/Collage/internal/term"
)

func TestRenderReport_Plain(t *testing.T) {
	r := Report{
		ContactSheet:  "out/contact_sheet.png",
		NormalizedDir: "out",
		Summary:       "out/summary.json",
	}
	want := "✅ Step A complete.\n" +
		" - Contact sheet: out/contact_sheet.png\n" +
		" - Normalized images: out\n" +
		" - Summary JSON: out/summary.json\n" +
		"Next: Step B (Main element recognition & masks)."
	assert.Equal(t, want, RenderReport(r, false, nil))
}

func TestRenderReport_OptionalLines(t *testing.T) {
	r := Report{
		ContactSheet:    "out/contact_sheet.png",
		ContactSheetPDF: "out/contact_sheet.pdf",
		NormalizedDir:   "out",
		Summary:         "out/summary.json",
		Files:           9,
		Bytes:           2048,
	}
	got := RenderReport(r, false, nil)
	assert.Contains(t, got, " - Contact sheet PDF: out/contact_sheet.pdf\n")
	assert.Contains(t, got, " - Wrote 9 files (2.0 KiB)\n")
	assert.True(t, strings.HasSuffix(got, NextStepHint))
}

func TestPrintReport_NoColor(t *testing.T) {
	term.Configure(config.ColorNever)
	var buf bytes.Buffer
	PrintReport(&buf, Report{ContactSheet: "a.png", NormalizedDir: "d", Summary: "s.json"})
	assert.NotContains(t, buf.String(), "\x1b[")
	assert.True(t, strings.HasSuffix(buf.String(), NextStepHint+"\n"))
}

func TestRenderReport_Styled(t *testing.T) {
	term.Configure(config.ColorAlways)
	t.Cleanup(func() { term.Configure(config.ColorNever) })

	var buf bytes.Buffer
	got := RenderReport(Report{ContactSheet: "a.png"}, true, newRenderer(&buf))
	assert.Contains(t, got, "\x1b[")
	assert.Contains(t, got, "Step A complete.")
	assert.Contains(t, got, NextStepHint)
}

func TestPrintBanner(t *testing.T) {
	term.Configure(config.ColorNever)
	var buf bytes.Buffer
	PrintBanner(&buf)
	assert.Contains(t, buf.String(), "|_|")
	assert.NotContains(t, buf.String(), "\x1b[")
}
