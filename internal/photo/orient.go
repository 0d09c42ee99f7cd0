package photo

import (
	"image"

	"github.com/disintegration/imaging"
)

// EXIF orientation values (TIFF tag 0x0112).
const (
	OrientNormal     = 1
	OrientFlipH      = 2
	OrientRotate180  = 3
	OrientFlipV      = 4
	OrientTranspose  = 5
	OrientRotate90CW = 6
	OrientTransverse = 7
	OrientRotate90CC = 8
)

// Orient returns img transformed so that a viewer ignoring EXIF sees it
// upright. Unknown values are treated as OrientNormal. The result is always
// a fresh NRGBA image; img is not modified.
func Orient(img image.Image, orientation int) *image.NRGBA {
	switch orientation {
	case OrientFlipH:
		return imaging.FlipH(img)
	case OrientRotate180:
		return imaging.Rotate180(img)
	case OrientFlipV:
		return imaging.FlipV(img)
	case OrientTranspose:
		return imaging.Transpose(img)
	case OrientRotate90CW:
		// imaging rotates counter-clockwise.
		return imaging.Rotate270(img)
	case OrientTransverse:
		return imaging.Transverse(img)
	case OrientRotate90CC:
		return imaging.Rotate90(img)
	default:
		return imaging.Clone(img)
	}
}
