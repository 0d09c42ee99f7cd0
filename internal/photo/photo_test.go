package photo

import (
	"context"
	"errors"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kevininininin/Collage/internal/imgtest"
)

var (
	red  = color.NRGBA{R: 255, A: 255}
	blue = color.NRGBA{B: 255, A: 255}
)

func TestRoleFor(t *testing.T) {
	tests := []struct {
		id   int
		want Role
	}{
		{1, RoleElement},
		{2, RoleElement},
		{5, RoleElement},
		{6, RoleBackground},
		{7, RoleBackground},
	}
	for _, tt := range tests {
		if got := RoleFor(tt.id, 5); got != tt.want {
			t.Errorf("RoleFor(%d, 5) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestOrient_Dimensions(t *testing.T) {
	src := imgtest.Split(4, 2, red, blue)
	tests := []struct {
		orientation int
		w, h        int
	}{
		{0, 4, 2},
		{OrientNormal, 4, 2},
		{OrientFlipH, 4, 2},
		{OrientRotate180, 4, 2},
		{OrientFlipV, 4, 2},
		{OrientTranspose, 2, 4},
		{OrientRotate90CW, 2, 4},
		{OrientTransverse, 2, 4},
		{OrientRotate90CC, 2, 4},
		{9, 4, 2},
	}
	for _, tt := range tests {
		got := Orient(src, tt.orientation)
		b := got.Bounds()
		if b.Dx() != tt.w || b.Dy() != tt.h {
			t.Errorf("Orient(%d) = %dx%d, want %dx%d", tt.orientation, b.Dx(), b.Dy(), tt.w, tt.h)
		}
	}
}

func TestOrient_Pixels(t *testing.T) {
	// Left half red, right half blue.
	src := imgtest.Split(2, 1, red, blue)

	tests := []struct {
		name        string
		orientation int
		at          image.Point
		want        color.NRGBA
	}{
		{"flip h moves red right", OrientFlipH, image.Pt(1, 0), red},
		{"rotate 90 cw puts left on top", OrientRotate90CW, image.Pt(0, 0), red},
		{"rotate 90 ccw puts left at bottom", OrientRotate90CC, image.Pt(0, 1), red},
		{"rotate 180 moves red right", OrientRotate180, image.Pt(1, 0), red},
		{"transpose puts left on top", OrientTranspose, image.Pt(0, 0), red},
		{"transverse puts left at bottom", OrientTransverse, image.Pt(0, 1), red},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Orient(src, tt.orientation)
			assert.Equal(t, tt.want, got.NRGBAAt(tt.at.X, tt.at.Y))
		})
	}
}

func TestOrient_DoesNotAlias(t *testing.T) {
	src := imgtest.Solid(2, 2, red)
	got := Orient(src, OrientNormal)
	got.SetNRGBA(0, 0, blue)
	assert.Equal(t, red, src.NRGBAAt(0, 0))
}

func TestOrientation_Containers(t *testing.T) {
	img := imgtest.Solid(8, 4, red)
	tests := []struct {
		name string
		data []byte
		want int
	}{
		{"jpeg without exif", imgtest.JPEG(t, img, 0), OrientNormal},
		{"jpeg rotate 90 cw", imgtest.JPEG(t, img, 6), OrientRotate90CW},
		{"jpeg flip v", imgtest.JPEG(t, img, 4), OrientFlipV},
		{"png without exif", imgtest.PNG(t, img, 0), OrientNormal},
		{"jpeg exif after xmp", imgtest.InsertAPP1(imgtest.JPEG(t, img, 6), imgtest.XMPPayload()), OrientRotate90CW},
		{"jpeg xmp only", imgtest.InsertAPP1(imgtest.JPEG(t, img, 0), imgtest.XMPPayload()), OrientNormal},
		{"png eXIf rotate 180", imgtest.PNG(t, img, 3), OrientRotate180},
		{"png eXIf after IDAT", imgtest.PNGTrailingEXIF(t, img, 8), OrientRotate90CC},
		{"raw tiff header", imgtest.TIFFOrientation(8), OrientRotate90CC},
		{"webp exif chunk", imgtest.WebPContainer(5, false), OrientTranspose},
		{"webp exif chunk with magic", imgtest.WebPContainer(7, true), OrientTransverse},
		{"out of range value", imgtest.TIFFOrientation(42), OrientNormal},
		{"garbage", []byte("not an image at all"), OrientNormal},
		{"empty", nil, OrientNormal},
		{"truncated png", []byte("\x89PNG\r\n\x1a\n\x00\x00\xff\xffeXIf"), OrientNormal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Orientation(tt.data); got != tt.want {
				t.Errorf("Orientation() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLoad_AppliesOrientation(t *testing.T) {
	dir := t.TempDir()
	src := imgtest.Split(40, 20, red, blue)

	jpgPath := imgtest.WriteFile(t, dir, "portrait.jpg", imgtest.JPEG(t, src, OrientRotate90CW))
	img, err := Load(jpgPath)
	require.NoError(t, err)
	assert.Equal(t, 20, img.Bounds().Dx())
	assert.Equal(t, 40, img.Bounds().Dy())

	pngPath := imgtest.WriteFile(t, dir, "portrait.png", imgtest.PNG(t, src, OrientRotate90CW))
	img, err = Load(pngPath)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 20, 40), img.Bounds())
	assert.Equal(t, red, img.NRGBAAt(10, 5), "left half should now be on top")
	assert.Equal(t, blue, img.NRGBAAt(10, 35))
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.png"))
	assert.Error(t, err)

	bogus := imgtest.WriteFile(t, dir, "bogus.jpg", []byte("plain text pretending to be a jpeg"))
	_, err = Load(bogus)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoadAssets_OrderAndRoles(t *testing.T) {
	dir := t.TempDir()
	paths := imgtest.WriteSet(t, dir, 6, 30, 10)

	assets, err := LoadAssets(context.Background(), paths, 5)
	require.NoError(t, err)
	require.Len(t, assets, 6)

	for i, a := range assets {
		assert.Equal(t, i+1, a.ID)
		assert.Equal(t, paths[i], a.Path)
		assert.Equal(t, 30+i, a.Width, "asset %d width", a.ID)
		assert.Equal(t, 10, a.Height)
		assert.NotNil(t, a.Image)
	}
	assert.Equal(t, RoleElement, assets[4].Role)
	assert.Equal(t, RoleBackground, assets[5].Role)
}

func TestLoadAssets_FirstErrorWins(t *testing.T) {
	dir := t.TempDir()
	paths := imgtest.WriteSet(t, dir, 3, 10, 10)
	paths = append(paths, imgtest.WriteFile(t, dir, "04.png", []byte("broken")))

	_, err := LoadAssets(context.Background(), paths, 5)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoadAssets_Cancelled(t *testing.T) {
	dir := t.TempDir()
	paths := imgtest.WriteSet(t, dir, 2, 10, 10)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := LoadAssets(ctx, paths, 5)
	assert.True(t, errors.Is(err, context.Canceled), "got %v", err)
}

func TestFit(t *testing.T) {
	tests := []struct {
		name       string
		w, h       int
		maxW, maxH int
		wantW      int
		wantH      int
	}{
		{"landscape 4:3", 4000, 3000, 480, 320, 427, 320},
		{"portrait 3:4", 3000, 4000, 480, 320, 240, 320},
		{"wide 16:9", 1920, 1080, 480, 320, 480, 270},
		{"only width too big", 500, 320, 480, 320, 480, 307},
		{"already fits", 100, 50, 480, 320, 100, 50},
		{"exact fit", 480, 320, 480, 320, 480, 320},
		{"extreme panorama keeps 1px", 10000, 10, 480, 320, 480, 1},
		{"extreme tower keeps 1px", 10, 10000, 480, 320, 1, 320},
		{"square into square", 2400, 2400, 1600, 1600, 1600, 1600},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := Fit(tt.w, tt.h, tt.maxW, tt.maxH)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("Fit(%d, %d, %d, %d) = %dx%d, want %dx%d",
					tt.w, tt.h, tt.maxW, tt.maxH, w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestShrink(t *testing.T) {
	src := imgtest.Solid(400, 100, red)

	same := Shrink(src, 480, 320)
	assert.Same(t, src, same, "fitting image should be returned as is")

	small := Shrink(src, 100, 100)
	assert.Equal(t, image.Rect(0, 0, 100, 25), small.Bounds())
}
