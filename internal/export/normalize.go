package export

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/Kevininininin/Collage/internal/photo"
)

// NormalizedName returns the file name of an asset's normalized copy,
// e.g. "01_element.png" or "06_background.png".
func NormalizedName(a *photo.Asset) string {
	return fmt.Sprintf("%02d_%s.png", a.ID, a.Role)
}

// TargetSide returns the longest-side limit for role.
func TargetSide(role photo.Role, maxElement, maxBackground int) int {
	if role == photo.RoleBackground {
		return maxBackground
	}
	return maxElement
}

// Normalize shrinks img with Lanczos so its longest side is at most target,
// preserving aspect ratio. Images already within the limit are returned
// unchanged (same pointer).
func Normalize(img *image.NRGBA, target int) *image.NRGBA {
	return photo.Shrink(img, target, target)
}

// rgbaPNG keeps the alpha channel when encoding: image/png drops it for
// fully opaque images, but normalized copies are always stored as RGBA.
type rgbaPNG struct{ *image.NRGBA }

func (rgbaPNG) Opaque() bool { return false }

// WriteNormalized writes each asset's normalized RGBA PNG into outDir,
// creating it if needed, and returns the written paths in asset order.
func WriteNormalized(assets []*photo.Asset, outDir string, maxElement, maxBackground int) ([]string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	paths := make([]string, 0, len(assets))
	for _, a := range assets {
		img := Normalize(a.Image, TargetSide(a.Role, maxElement, maxBackground))
		path := filepath.Join(outDir, NormalizedName(a))
		if err := imaging.Save(rgbaPNG{img}, path); err != nil {
			return paths, fmt.Errorf("save %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
