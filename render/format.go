package render

import (
	"path/filepath"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
)

// Format is an output encoding.
type Format uint8

const (
	// PNG is a raster image.
	PNG Format = iota
	// SVG is a vector image.
	SVG
)

// String returns "png" or "svg".
func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case SVG:
		return "svg"
	default:
		return "invalid"
	}
}

// ParseFormat reads "png" or "svg".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "png":
		return PNG, nil
	case "svg":
		return SVG, nil
	default:
		return 0, renderErrorf("ParseFormat", "%q: %w", s, ErrBadFormat)
	}
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

func (f Format) provider() chart.RendererProvider {
	if f == SVG {
		return chart.SVG
	}
	return chart.PNG
}
