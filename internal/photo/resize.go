package photo

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// Fit returns the size of a w×h image shrunk to fit within maxW×maxH with
// its aspect ratio preserved. Images that already fit are left alone, so
// the result never exceeds the input. For each constrained side the
// candidate (floor or ceil) giving the closest aspect ratio wins, and no
// side drops below 1.
func Fit(w, h, maxW, maxH int) (int, int) {
	if w <= 0 || h <= 0 || (w <= maxW && h <= maxH) {
		return w, h
	}
	aspect := float64(w) / float64(h)
	x, y := maxW, maxH
	if float64(x)/float64(y) >= aspect {
		x = roundAspect(float64(y)*aspect, func(n float64) float64 {
			return math.Abs(aspect - n/float64(y))
		})
	} else {
		y = roundAspect(float64(x)/aspect, func(n float64) float64 {
			if n == 0 {
				return 0
			}
			return math.Abs(aspect - float64(x)/n)
		})
	}
	return x, y
}

// roundAspect picks floor(v) or ceil(v), whichever minimizes dist, and
// clamps the result to at least 1. Ties go to floor.
func roundAspect(v float64, dist func(float64) float64) int {
	lo, hi := math.Floor(v), math.Ceil(v)
	best := lo
	if dist(hi) < dist(lo) {
		best = hi
	}
	if best < 1 {
		return 1
	}
	return int(best)
}

// Shrink resizes img with Lanczos to fit within maxW×maxH (see [Fit]).
// An image that already fits is returned as is.
func Shrink(img *image.NRGBA, maxW, maxH int) *image.NRGBA {
	b := img.Bounds()
	w, h := Fit(b.Dx(), b.Dy(), maxW, maxH)
	if w == b.Dx() && h == b.Dy() {
		return img
	}
	return imaging.Resize(img, w, h, imaging.Lanczos)
}
