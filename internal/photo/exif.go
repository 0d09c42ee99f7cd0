package photo

import (
	"bytes"
	"encoding/binary"

	"github.com/rwcarlsen/goexif/exif"
)

var (
	pngSignature  = []byte("\x89PNG\r\n\x1a\n")
	tiffLittle    = []byte("II*\x00")
	tiffBig       = []byte("MM\x00*")
	exifApp1Magic = []byte("Exif\x00\x00")
)

// Orientation returns the EXIF orientation (1..8) stored in an encoded
// image. TIFF headers are read by goexif directly; JPEG APP1 segments,
// PNG eXIf and WebP EXIF chunks are unwrapped first. Anything missing,
// malformed or out of range yields OrientNormal.
func Orientation(data []byte) int {
	payload := exifPayload(data)
	if payload == nil {
		return OrientNormal
	}
	x, err := exif.Decode(bytes.NewReader(payload))
	if err != nil {
		return OrientNormal
	}
	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return OrientNormal
	}
	o, err := tag.Int(0)
	if err != nil || o < OrientNormal || o > OrientRotate90CC {
		return OrientNormal
	}
	return o
}

// exifPayload returns the raw TIFF block goexif decodes, or nil when the
// container carries no EXIF.
func exifPayload(data []byte) []byte {
	switch {
	case len(data) >= 2 && data[0] == 0xFF && data[1] == 0xD8:
		return jpegEXIF(data[2:])
	case bytes.HasPrefix(data, tiffLittle), bytes.HasPrefix(data, tiffBig):
		return data
	case bytes.HasPrefix(data, pngSignature):
		return pngEXIF(data[len(pngSignature):])
	case len(data) >= 12 && string(data[0:4]) == "RIFF" && string(data[8:12]) == "WEBP":
		return webpEXIF(data[12:])
	}
	return nil
}

// jpegEXIF walks JPEG marker segments up to the start of scan and returns
// the body of the first APP1 segment carrying the "Exif\0\0" magic, with the
// magic stripped. Other APP1 segments (XMP) may come first.
func jpegEXIF(b []byte) []byte {
	for len(b) >= 2 {
		if b[0] != 0xFF {
			return nil
		}
		marker := b[1]
		switch {
		case marker == 0xFF: // fill byte
			b = b[1:]
			continue
		case marker == 0x01, marker >= 0xD0 && marker <= 0xD8:
			b = b[2:]
			continue
		case marker == 0xDA, marker == 0xD9:
			return nil
		}
		if len(b) < 4 {
			return nil
		}
		n := int(binary.BigEndian.Uint16(b[2:4]))
		if n < 2 || 2+n > len(b) {
			return nil
		}
		body := b[4 : 2+n]
		if marker == 0xE1 && bytes.HasPrefix(body, exifApp1Magic) {
			return body[len(exifApp1Magic):]
		}
		b = b[2+n:]
	}
	return nil
}

// pngEXIF walks PNG chunks (big-endian length, type, data, crc) looking for
// eXIf. The chunk may sit before or after the image data.
func pngEXIF(b []byte) []byte {
	for len(b) >= 12 {
		n := binary.BigEndian.Uint32(b[0:4])
		typ := string(b[4:8])
		if uint64(n)+12 > uint64(len(b)) {
			return nil
		}
		body := b[8 : 8+n]
		switch typ {
		case "eXIf":
			return body
		case "IEND":
			return nil
		}
		b = b[12+n:]
	}
	return nil
}

// webpEXIF walks RIFF chunks (fourcc, little-endian size, data padded to an
// even length) looking for EXIF. Some encoders prefix the TIFF block with
// the JPEG APP1 "Exif\0\0" magic; it is stripped.
func webpEXIF(b []byte) []byte {
	for len(b) >= 8 {
		fourcc := string(b[0:4])
		n := binary.LittleEndian.Uint32(b[4:8])
		if uint64(n)+8 > uint64(len(b)) {
			return nil
		}
		body := b[8 : 8+n]
		if fourcc == "EXIF" {
			return bytes.TrimPrefix(body, exifApp1Magic)
		}
		next := 8 + int(n) + int(n&1)
		if next > len(b) {
			return nil
		}
		b = b[next:]
	}
	return nil
}
