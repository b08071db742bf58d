// Package data loads stats snapshots from disk and describes their format.
package data

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/huntercalc/internal/model"
)

// ErrUnsupportedFormat is returned for snapshot files that are neither JSON
// nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported snapshot format")

// Format is a snapshot encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatOf picks the encoding from a file extension or a media type.
func FormatOf(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if i := strings.IndexByte(name, ';'); i >= 0 {
		name = strings.TrimSpace(name[:i])
	}

	switch {
	case name == "" || name == "application/json" || filepath.Ext(name) == ".json":
		return FormatJSON, nil
	case name == "application/yaml" || name == "application/x-yaml" || name == "text/yaml":
		return FormatYAML, nil
	case filepath.Ext(name) == ".yaml" || filepath.Ext(name) == ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
}

// LoadSnapshot reads and validates one snapshot file.
func LoadSnapshot(path string) (*model.Stats, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot %s: %w", path, err)
	}

	stats, err := DecodeSnapshot(bytes.NewReader(raw), format)
	if err != nil {
		return nil, fmt.Errorf("snapshot %s: %w", path, err)
	}
	return stats, nil
}

// DecodeSnapshot decodes and validates a snapshot. Unknown fields are
// ignored so snapshots from newer aggregators still load.
func DecodeSnapshot(r io.Reader, format Format) (*model.Stats, error) {
	var stats model.Stats

	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&stats); err != nil {
			return nil, fmt.Errorf("decoding json: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&stats); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decoding yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if err := Validate(&stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
