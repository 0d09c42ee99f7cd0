package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the YAML layout. Pointer fields distinguish "unset"
// from zero so a partial file only overrides the keys it names.
type fileConfig struct {
	Input        *string `yaml:"input"`
	Outdir       *string `yaml:"outdir"`
	Verbose      *bool   `yaml:"verbose"`
	Color        *string `yaml:"color"`
	Log          *string `yaml:"log"`
	ContactSheet struct {
		Tile    *string `yaml:"tile"`
		Columns *int    `yaml:"columns"`
		PDF     *bool   `yaml:"pdf"`
	} `yaml:"contact_sheet"`
	Normalize struct {
		MaxSideElement    *int `yaml:"max_side_element"`
		MaxSideBackground *int `yaml:"max_side_background"`
	} `yaml:"normalize"`
}

// LoadFile reads a YAML config file and applies every key it sets onto cfg.
// Unknown keys are rejected so typos don't silently fall back to defaults.
func LoadFile(path string, cfg *Config) error {
	b, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var fc fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return fc.apply(cfg)
}

func (fc *fileConfig) apply(cfg *Config) error {
	if fc.Input != nil {
		cfg.InputDir = NormalizeDirArg(*fc.Input)
	}
	if fc.Outdir != nil {
		cfg.OutputDir = NormalizeDirArg(*fc.Outdir)
	}
	if fc.Verbose != nil {
		cfg.Verbose = *fc.Verbose
	}
	if fc.Color != nil {
		if err := (&colorModeValue{&cfg.ColorMode}).Set(*fc.Color); err != nil {
			return err
		}
	}
	if fc.Log != nil {
		cfg.LogFile = *fc.Log
	}
	if fc.ContactSheet.Tile != nil {
		w, h, err := ParseTileSize(*fc.ContactSheet.Tile)
		if err != nil {
			return err
		}
		cfg.TileWidth, cfg.TileHeight = w, h
	}
	if fc.ContactSheet.Columns != nil {
		cfg.Columns = *fc.ContactSheet.Columns
	}
	if fc.ContactSheet.PDF != nil {
		cfg.ContactSheetPDF = *fc.ContactSheet.PDF
	}
	if fc.Normalize.MaxSideElement != nil {
		cfg.MaxSideElement = *fc.Normalize.MaxSideElement
	}
	if fc.Normalize.MaxSideBackground != nil {
		cfg.MaxSideBackground = *fc.Normalize.MaxSideBackground
	}
	return nil
}
