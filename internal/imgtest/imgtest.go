// Package imgtest builds fixture images for tests: solid and split-color
// NRGBA images, and JPEG/PNG files carrying an EXIF orientation tag.
package imgtest

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
)

// Solid returns a w×h image filled with c.
func Solid(w, h int, c color.NRGBA) *image.NRGBA {
	return imaging.New(w, h, c)
}

// Split returns a w×h image whose left half is left and right half is right.
func Split(w, h int, left, right color.NRGBA) *image.NRGBA {
	img := imaging.New(w, h, right)
	for y := 0; y < h; y++ {
		for x := 0; x < w/2; x++ {
			img.SetNRGBA(x, y, left)
		}
	}
	return img
}

// TIFFOrientation returns a minimal little-endian TIFF block with a single
// IFD0 entry: Orientation = o.
func TIFFOrientation(o int) []byte {
	var b bytes.Buffer
	b.WriteString("II*\x00")
	_ = binary.Write(&b, binary.LittleEndian, uint32(8)) // IFD0 offset
	_ = binary.Write(&b, binary.LittleEndian, uint16(1)) // entry count
	_ = binary.Write(&b, binary.LittleEndian, uint16(0x0112))
	_ = binary.Write(&b, binary.LittleEndian, uint16(3)) // SHORT
	_ = binary.Write(&b, binary.LittleEndian, uint32(1))
	_ = binary.Write(&b, binary.LittleEndian, uint16(o))
	_ = binary.Write(&b, binary.LittleEndian, uint16(0)) // value padding
	_ = binary.Write(&b, binary.LittleEndian, uint32(0)) // no next IFD
	return b.Bytes()
}

// JPEG encodes img and, when orientation > 0, inserts an APP1 EXIF segment
// right after SOI.
func JPEG(t testing.TB, img image.Image, orientation int) []byte {
	t.Helper()
	var enc bytes.Buffer
	if err := jpeg.Encode(&enc, img, &jpeg.Options{Quality: 95}); err != nil {
		t.Fatalf("encode jpeg: %v", err)
	}
	if orientation <= 0 {
		return enc.Bytes()
	}
	payload := append([]byte("Exif\x00\x00"), TIFFOrientation(orientation)...)
	return InsertAPP1(enc.Bytes(), payload)
}

// XMPPayload returns an APP1 body holding a minimal XMP packet.
func XMPPayload() []byte {
	return []byte("http://ns.adobe.com/xap/1.0/\x00<x:xmpmeta xmlns:x=\"adobe:ns:meta/\"/>")
}

// InsertAPP1 returns a copy of the JPEG stream data with an APP1 segment
// holding payload inserted right after SOI.
func InsertAPP1(data, payload []byte) []byte {
	var out bytes.Buffer
	out.Write(data[:2]) // SOI
	out.Write([]byte{0xFF, 0xE1})
	_ = binary.Write(&out, binary.BigEndian, uint16(len(payload)+2))
	out.Write(payload)
	out.Write(data[2:])
	return out.Bytes()
}

// PNG encodes img and, when orientation > 0, inserts an eXIf chunk right
// after IHDR.
func PNG(t testing.TB, img image.Image, orientation int) []byte {
	t.Helper()
	var enc bytes.Buffer
	if err := png.Encode(&enc, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	if orientation <= 0 {
		return enc.Bytes()
	}
	raw := enc.Bytes()
	// 8-byte signature + IHDR chunk (4 len + 4 type + 13 data + 4 crc).
	const ihdrEnd = 8 + 25

	var out bytes.Buffer
	out.Write(raw[:ihdrEnd])
	writePNGChunk(&out, "eXIf", TIFFOrientation(orientation))
	out.Write(raw[ihdrEnd:])
	return out.Bytes()
}

// PNGTrailingEXIF is like [PNG] but places the eXIf chunk after the image
// data, right before IEND.
func PNGTrailingEXIF(t testing.TB, img image.Image, orientation int) []byte {
	t.Helper()
	var enc bytes.Buffer
	if err := png.Encode(&enc, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	raw := enc.Bytes()
	iend := len(raw) - 12

	var out bytes.Buffer
	out.Write(raw[:iend])
	writePNGChunk(&out, "eXIf", TIFFOrientation(orientation))
	out.Write(raw[iend:])
	return out.Bytes()
}

func writePNGChunk(out *bytes.Buffer, typ string, data []byte) {
	_ = binary.Write(out, binary.BigEndian, uint32(len(data)))
	chunk := append([]byte(typ), data...)
	out.Write(chunk)
	_ = binary.Write(out, binary.BigEndian, crc32.ChecksumIEEE(chunk))
}

// WebPContainer returns a RIFF/WEBP byte stream holding a dummy VP8X chunk
// and an EXIF chunk. The stream is not a decodable image; it exercises
// container parsing only.
func WebPContainer(orientation int, withMagic bool) []byte {
	exifData := TIFFOrientation(orientation)
	if withMagic {
		exifData = append([]byte("Exif\x00\x00"), exifData...)
	}
	var chunks bytes.Buffer
	chunks.WriteString("VP8X")
	_ = binary.Write(&chunks, binary.LittleEndian, uint32(10))
	chunks.Write(make([]byte, 10))
	chunks.WriteString("EXIF")
	_ = binary.Write(&chunks, binary.LittleEndian, uint32(len(exifData)))
	chunks.Write(exifData)
	if len(exifData)%2 == 1 {
		chunks.WriteByte(0)
	}

	var out bytes.Buffer
	out.WriteString("RIFF")
	_ = binary.Write(&out, binary.LittleEndian, uint32(4+chunks.Len()))
	out.WriteString("WEBP")
	out.Write(chunks.Bytes())
	return out.Bytes()
}

// WriteFile writes data to dir/name and returns the path.
func WriteFile(t testing.TB, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// WriteSet writes n PNG images named 01.png..NN.png into dir, image i being
// (w+i)×h so each one is distinguishable by size. It returns the paths in
// filename order.
func WriteSet(t testing.TB, dir string, n, w, h int) []string {
	t.Helper()
	paths := make([]string, n)
	for i := 0; i < n; i++ {
		img := Solid(w+i, h, color.NRGBA{R: uint8(40 * i), G: 128, B: 200, A: 255})
		paths[i] = WriteFile(t, dir, twoDigit(i+1)+".png", PNG(t, img, 0))
	}
	return paths
}

func twoDigit(n int) string {
	return string([]byte{byte('0' + n/10%10), byte('0' + n%10)})
}
