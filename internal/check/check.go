// Package check provides system diagnostics (--check mode) and pre-pipeline
// validation (CheckDeps): image codecs, EXIF parsing and output
// directory access.
package check

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/Kevininininin/Collage/internal/config"
	"github.com/Kevininininin/Collage/internal/photo"
)

// ErrOutputNotWritable is returned by CheckDeps when the output directory
// cannot be created or written to.
var ErrOutputNotWritable = errors.New("output directory is not writable")

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// stays testable with a recording logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// Round-trip checks for the encoders imaging ships.
var codecChecks = []struct {
	name   string
	format imaging.Format
}{
	{"PNG", imaging.PNG},
	{"JPEG", imaging.JPEG},
	{"TIFF", imaging.TIFF},
}

// exifSample is a little-endian TIFF block whose IFD0 holds
// Orientation = 6.
var exifSample = []byte{
	'I', 'I', 0x2A, 0x00, 0x08, 0x00, 0x00, 0x00,
	0x01, 0x00,
	0x12, 0x01, 0x03, 0x00, 0x01, 0x00, 0x00, 0x00, 0x06, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00,
}

// webpHeader carries the WebP magic but no valid bitstream: a registered
// decoder rejects it with its own error instead of image.ErrFormat.
var webpHeader = []byte("RIFF\x1a\x00\x00\x00WEBPVP8 \x0e\x00\x00\x00")

// RunCheck runs the interactive --check flow and reports whether every check
// passed. It is informational and does not stop at the first failure.
func RunCheck(cfg *config.Config, log Logger) bool {
	log.Info("=== System Check ===")

	ok := true
	for _, p := range codecChecks {
		if err := roundTrip(p.format); err != nil {
			log.Error("%s codec: %v", p.name, err)
			ok = false
			continue
		}
		log.Success("%s codec: encode/decode OK", p.name)
	}

	if webpRegistered() {
		log.Success("WebP codec: decoder registered (read only)")
	} else {
		log.Error("WebP codec: no decoder registered")
		ok = false
	}

	if o := photo.Orientation(exifSample); o == photo.OrientRotate90CW {
		log.Success("EXIF orientation: OK")
	} else {
		log.Error("EXIF orientation: sample read %d, want %d", o, photo.OrientRotate90CW)
		ok = false
	}

	if err := writable(cfg.OutputDir); err != nil {
		log.Warn("Output %s: %v", cfg.OutputDir, err)
		ok = false
	} else {
		log.Success("Output %s: writable", cfg.OutputDir)
	}
	return ok
}

// CheckDeps is the pre-pipeline validation: the output directory must exist
// (or be creatable) and accept new files. In dry-run mode nothing is
// written, so only the path itself is checked.
func CheckDeps(cfg *config.Config) error {
	verify := writable
	if cfg.DryRun {
		verify = func(dir string) error {
			_, err := existingDir(dir)
			return err
		}
	}
	if err := verify(cfg.OutputDir); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrOutputNotWritable, cfg.OutputDir, err)
	}
	return nil
}

// --- internal helpers ---

// roundTrip encodes a tiny image in format and decodes it again.
func roundTrip(format imaging.Format) error {
	src := imaging.New(4, 4, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, src, format); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	img, err := imaging.Decode(&buf)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if img.Bounds() != src.Bounds() {
		return fmt.Errorf("decoded %v, want %v", img.Bounds(), src.Bounds())
	}
	return nil
}

func webpRegistered() bool {
	_, _, err := image.DecodeConfig(bytes.NewReader(webpHeader))
	return !errors.Is(err, image.ErrFormat)
}

// writable reports whether files can be created in dir. A missing dir is
// judged by its closest existing ancestor, since the run creates it.
func writable(dir string) error {
	target, err := existingDir(dir)
	if err != nil {
		return err
	}
	f, err := os.CreateTemp(target, ".photoprep-check-*")
	if err != nil {
		return err
	}
	name := f.Name()
	f.Close()
	return os.Remove(name)
}

// existingDir returns dir or its closest existing ancestor, which must be a
// directory.
func existingDir(dir string) (string, error) {
	for {
		fi, err := os.Stat(dir)
		if err == nil {
			if !fi.IsDir() {
				return "", fmt.Errorf("%s is not a directory", dir)
			}
			return dir, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return "", err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", err
		}
		dir = parent
	}
}
