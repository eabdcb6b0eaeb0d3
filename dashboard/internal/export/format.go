package export

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrUnsupportedFormat is returned for an export format with no encoder
var ErrUnsupportedFormat = errors.New("unsupported export format")

// Format is the file format of an exported snapshot
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatYAML Format = "yaml"
)

// Formats lists the supported formats
var Formats = []Format{FormatXLSX, FormatYAML}

// ParseFormat resolves a format name, ignoring case. "yml" is accepted for yaml.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "xlsx":
		return FormatXLSX, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnsupportedFormat)
}

// Extension is the file extension without the dot
func (f Format) Extension() string {
	return string(f)
}

// Encoder writes a snapshot in one file format
type Encoder interface {
	Format() Format
	ContentType() string
	Encode(w io.Writer, snap Snapshot) error
}

// EncoderFor returns the encoder for format
func EncoderFor(format Format) (Encoder, error) {
	switch format {
	case FormatXLSX:
		return xlsxEncoder{}, nil
	case FormatYAML:
		return yamlEncoder{}, nil
	}
	return nil, fmt.Errorf("%q: %w", format, ErrUnsupportedFormat)
}
