package driver

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/agenthands/classmem/internal/core/model"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnsupportedSource = errors.New("unsupported data source")
	ErrUnsupportedFormat = errors.New("unsupported dataset format")
	ErrMalformedDataset  = errors.New("malformed dataset")
	ErrUnexpectedStatus  = errors.New("unexpected status")
	ErrDuplicateID       = errors.New("duplicate id")
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the decoder by file extension, defaulting to JSON.
func FormatFromPath(p string) Format {
	switch strings.ToLower(path.Ext(p)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Decode parses a dataset document. An empty or null document is malformed.
func Decode(raw []byte, format Format) (*model.Dataset, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, fmt.Errorf("%w: empty document", ErrMalformedDataset)
	}

	var ds model.Dataset
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(trimmed, &ds); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedDataset, err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(trimmed, &ds); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedDataset, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	ds.Normalize()
	return &ds, nil
}
