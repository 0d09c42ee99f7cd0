package contact

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/Kevininininin/Collage/internal/photo"
)

// Label geometry and colors.
const (
	labelTextHeight = 12 // Nominal text height used for the box.
	labelPadX       = 4
	labelPadY       = 2
)

var (
	sheetBackground = color.NRGBA{R: 245, G: 245, B: 245, A: 255}
	labelBox        = color.NRGBA{A: 120}
	labelText       = color.NRGBA{R: 255, G: 255, B: 255, A: 230}

	labelFace font.Face = basicfont.Face7x13
)

// Label returns the tile caption for a, e.g. "6: background".
func Label(a *photo.Asset) string {
	return fmt.Sprintf("%d: %s", a.ID, a.Role)
}

// LabelBox returns the semi-transparent box drawn behind label when the
// thumbnail sits at origin. It spans text width + 2*padding by nominal text
// height + 3*padding, matching an inclusive [x, y, x+tw+8, y+th+6] rectangle.
func LabelBox(origin image.Point, label string) image.Rectangle {
	tw := font.MeasureString(labelFace, label).Ceil()
	return image.Rect(
		origin.X,
		origin.Y,
		origin.X+tw+2*labelPadX+1,
		origin.Y+labelTextHeight+3*labelPadY+1,
	)
}

// Render draws assets onto a new sheet: each thumbnail (Lanczos, shrink
// only) centered in its tile and alpha-composited over the light gray
// background, followed by its label box and caption in the thumbnail's
// top-left corner.
func Render(assets []*photo.Asset, l Layout) *image.NRGBA {
	w, h := l.Size(len(assets))
	sheet := imaging.New(w, h, sheetBackground)

	for idx, a := range assets {
		thumb := photo.Shrink(a.Image, l.TileW, l.TileH)
		tb := thumb.Bounds()
		origin := l.Origin(idx, tb.Dx(), tb.Dy())
		sheet = imaging.Overlay(sheet, thumb, origin, 1.0)

		label := Label(a)
		box := LabelBox(origin, label)
		sheet = imaging.Overlay(sheet, imaging.New(box.Dx(), box.Dy(), labelBox), box.Min, 1.0)
		drawText(sheet, origin.Add(image.Pt(labelPadX, labelPadY)), label)
	}
	return sheet
}

// drawText draws s with its top-left corner at pt.
func drawText(dst *image.NRGBA, pt image.Point, s string) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(labelText),
		Face: labelFace,
		Dot:  fixed.P(pt.X, pt.Y+labelFace.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)
}

// Save writes the sheet as a PNG. The sheet background is opaque, so the
// encoder emits a plain RGB image.
func Save(sheet image.Image, path string) error {
	if err := imaging.Save(sheet, path); err != nil {
		return fmt.Errorf("save contact sheet: %w", err)
	}
	return nil
}
