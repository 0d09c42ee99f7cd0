package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/Kevininininin/Collage/internal/photo"
)

// SummaryFile is the manifest file name inside the output directory.
const SummaryFile = "summary.json"

// Record is one manifest entry. Field order is the serialized key order.
type Record struct {
	ID     int    `json:"id"`
	Role   string `json:"role"`
	Path   string `json:"path"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Summary converts assets to manifest records, keeping their order.
func Summary(assets []*photo.Asset) []Record {
	recs := make([]Record, len(assets))
	for i, a := range assets {
		recs[i] = Record{
			ID:     a.ID,
			Role:   string(a.Role),
			Path:   a.Path,
			Width:  a.Width,
			Height: a.Height,
		}
	}
	return recs
}

// MarshalSummary encodes the manifest as a 2-space indented JSON array
// without a trailing newline. Paths are written verbatim; '<', '>' and '&'
// are not escaped.
func MarshalSummary(assets []*photo.Asset) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Summary(assets)); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// WriteSummary writes the manifest for assets to path.
func WriteSummary(assets []*photo.Asset, path string) error {
	b, err := MarshalSummary(assets)
	if err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}

// ReadSummary loads a manifest written by [WriteSummary].
func ReadSummary(path string) ([]Record, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read summary: %w", err)
	}
	var recs []Record
	if err := json.Unmarshal(b, &recs); err != nil {
		return nil, fmt.Errorf("parse summary %s: %w", path, err)
	}
	return recs, nil
}
