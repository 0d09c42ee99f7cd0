package photo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"runtime"

	"github.com/disintegration/imaging"
	"golang.org/x/sync/errgroup"

	// Decoders not registered by imaging itself.
	_ "golang.org/x/image/webp"
)

// ErrUnsupportedFormat is returned when a file's contents are not a
// decodable image, regardless of its extension.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Load reads path, decodes it, applies its EXIF orientation and returns the
// upright image as NRGBA.
func Load(path string) (*image.NRGBA, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
		}
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return Orient(img, Orientation(data)), nil
}

// NewAsset loads path as the asset with the given 1-based id.
func NewAsset(id int, path string, elementCount int) (*Asset, error) {
	img, err := Load(path)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	return &Asset{
		ID:     id,
		Role:   RoleFor(id, elementCount),
		Path:   path,
		Width:  b.Dx(),
		Height: b.Dy(),
		Image:  img,
	}, nil
}

// LoadAssets decodes paths concurrently and returns assets in path order,
// with ids starting at 1. The first failure cancels the remaining decodes
// and is returned.
func LoadAssets(ctx context.Context, paths []string, elementCount int) ([]*Asset, error) {
	assets := make([]*Asset, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			a, err := NewAsset(i+1, path, elementCount)
			if err != nil {
				return err
			}
			assets[i] = a
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return assets, nil
}
