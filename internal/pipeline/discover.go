package pipeline

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Supported image file extensions (lowercase, with leading dot).
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".tif":  true,
	".tiff": true,
}

// ErrInsufficientImages is matched by [*InsufficientImagesError].
var ErrInsufficientImages = errors.New("not enough input images")

// InsufficientImagesError reports an input directory with fewer usable
// images than a run needs.
type InsufficientImagesError struct {
	Dir   string
	Found int
	Need  int
}

func (e *InsufficientImagesError) Error() string {
	return fmt.Sprintf("need at least %d images in %s, found %d", e.Need, e.Dir, e.Found)
}

func (e *InsufficientImagesError) Is(target error) bool {
	return target == ErrInsufficientImages
}

// ListImages lists inputDir (not recursively), keeps files with a supported
// image extension, sorts them by path and returns the first required ones.
func ListImages(inputDir string, required int) ([]string, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, fmt.Errorf("list input directory: %w", err)
	}

	var files []string
	for _, d := range entries {
		if !imageExtensions[strings.ToLower(filepath.Ext(d.Name()))] {
			continue
		}
		path := filepath.Join(inputDir, d.Name())
		if !isRegular(path, d) {
			continue
		}
		files = append(files, path)
	}
	sort.Strings(files)

	if len(files) < required {
		return nil, &InsufficientImagesError{Dir: inputDir, Found: len(files), Need: required}
	}
	return files[:required], nil
}

// isRegular follows symlinks so a link to an image counts as the image.
func isRegular(path string, d os.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&os.ModeSymlink == 0 {
		return false
	}
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}
