package contact

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/jung-kurt/gofpdf"
)

// SavePDF writes the sheet as a single-page PDF, one point per pixel, for
// reviewers who annotate or print the contact sheet.
func SavePDF(sheet image.Image, path string) error {
	b := sheet.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, sheet, imaging.PNG); err != nil {
		return fmt.Errorf("encode contact sheet: %w", err)
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: w, Ht: h},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle("Contact sheet", true)
	pdf.SetCreator("photoprep", true)
	pdf.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("contact_sheet", opts, &buf)
	pdf.ImageOptions("contact_sheet", 0, 0, w, h, false, opts, 0, "")

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("save contact sheet pdf: %w", err)
	}
	return nil
}
