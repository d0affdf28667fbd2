// SPDX-License-Identifier: MIT
// Package: nestplot/render
//
// style.go — per-category styling, legend placement and defaults.
//
// Contract:
//   • Colors, line types and markers cycle when fewer are given than there
//     are categories; an empty list means "use the default sequence".
//   • Every enum has a String and a Parse counterpart for flags and config.

package render

import (
	"regexp"
	"strings"

	"github.com/golang/freetype/truetype"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Defaults of Style.
const (
	DefaultYLabel     = "Fitted Probability"
	DefaultBandAlpha  = 0.3
	DefaultLineWidth  = 2.5
	DefaultPointSize  = 4.0
	DefaultTitleSize  = 14.0
	DefaultLegendSize = 10.0
	DefaultInset      = 0.01
	// capFraction is the whisker cap half-width as a fraction of one x position.
	capFraction = 0.08
)

// DefaultPalette is the built-in category palette (colorblind-safe).
var DefaultPalette = []drawing.Color{
	drawing.ColorFromHex("000000"),
	drawing.ColorFromHex("E69F00"),
	drawing.ColorFromHex("56B4E9"),
	drawing.ColorFromHex("009E73"),
	drawing.ColorFromHex("F0E442"),
	drawing.ColorFromHex("0072B2"),
	drawing.ColorFromHex("D55E00"),
	drawing.ColorFromHex("CC79A7"),
}

// LineType is a stroke dash pattern.
type LineType uint8

// Line types in default cycling order.
const (
	Solid LineType = iota
	Dashed
	Dotted
	DotDash
	LongDash
	TwoDash
	numLineTypes
)

var lineTypeNames = [...]string{"solid", "dashed", "dotted", "dotdash", "longdash", "twodash"}

// String returns the lower-case name.
func (l LineType) String() string {
	if l < numLineTypes {
		return lineTypeNames[l]
	}
	return "invalid"
}

// Valid reports whether l is a known line type.
func (l LineType) Valid() bool { return l < numLineTypes }

// Dashes returns the dash array for l (nil for solid).
func (l LineType) Dashes() []float64 {
	switch l {
	case Dashed:
		return []float64{6, 4}
	case Dotted:
		return []float64{1, 3}
	case DotDash:
		return []float64{1, 3, 6, 3}
	case LongDash:
		return []float64{10, 4}
	case TwoDash:
		return []float64{4, 2, 10, 2}
	default:
		return nil
	}
}

// ParseLineType reads a line-type name.
func ParseLineType(s string) (LineType, error) {
	for i, n := range lineTypeNames {
		if strings.EqualFold(s, n) {
			return LineType(i), nil
		}
	}
	return 0, renderErrorf("ParseLineType", "%q: %w", s, ErrUnknownLineType)
}

// Marker is a point symbol.
type Marker uint8

// Markers in default cycling order.
const (
	Circle Marker = iota
	Triangle
	Plus
	Cross
	Diamond
	TriangleDown
	Square
	numMarkers
)

var markerNames = [...]string{"circle", "triangle", "plus", "cross", "diamond", "triangle-down", "square"}

// String returns the lower-case name.
func (m Marker) String() string {
	if m < numMarkers {
		return markerNames[m]
	}
	return "invalid"
}

// Valid reports whether m is a known marker.
func (m Marker) Valid() bool { return m < numMarkers }

// ParseMarker reads a marker name.
func ParseMarker(s string) (Marker, error) {
	for i, n := range markerNames {
		if strings.EqualFold(s, n) {
			return Marker(i), nil
		}
	}
	return 0, renderErrorf("ParseMarker", "%q: %w", s, ErrUnknownMarker)
}

// Position anchors the legend inside the plot region.
type Position uint8

// Legend anchors.
const (
	TopRight Position = iota
	Top
	TopLeft
	Left
	Center
	Right
	BottomLeft
	Bottom
	BottomRight
	numPositions
)

var positionNames = [...]string{"topright", "top", "topleft", "left", "center", "right", "bottomleft", "bottom", "bottomright"}

// String returns the lower-case name.
func (p Position) String() string {
	if p < numPositions {
		return positionNames[p]
	}
	return "invalid"
}

// Valid reports whether p is a known position.
func (p Position) Valid() bool { return p < numPositions }

// ParsePosition reads a position name; "-" and "_" are ignored.
func ParsePosition(s string) (Position, error) {
	norm := strings.NewReplacer("-", "", "_", "").Replace(strings.ToLower(s))
	for i, n := range positionNames {
		if norm == n {
			return Position(i), nil
		}
	}
	return 0, renderErrorf("ParsePosition", "%q: %w", s, ErrUnknownPosition)
}

var hexColor = regexp.MustCompile(`^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ParseColor reads "#rrggbb", "#rgb" or a basic CSS color name.
func ParseColor(s string) (drawing.Color, error) {
	s = strings.TrimSpace(s)
	if hexColor.MatchString(s) {
		return drawing.ColorFromHex(s), nil
	}
	c := drawing.ColorFromKnown(s)
	if c.IsZero() {
		return drawing.Color{}, renderErrorf("ParseColor", "%q: %w", s, ErrBadColor)
	}
	return c, nil
}

// LegendStyle places and decorates the legend.
type LegendStyle struct {
	Show     bool
	Position Position
	// Inset moves the legend away from its anchor, as a fraction of the
	// plot region; negative values place it outside.
	Inset    float64
	Border   bool
	Alpha    float64 // background opacity in [0, 1]
	FontSize float64
}

// Style is the render configuration shared by both renderers.
type Style struct {
	Colors        []drawing.Color
	LineTypes     []LineType
	Markers       []Marker
	LineWidth     float64
	PointSize     float64
	ConnectPoints bool
	BandAlpha     float64 // in (0, 1]; zero: DefaultBandAlpha

	XLabel string // empty: sweep variable name
	YLabel string // empty: DefaultYLabel

	Title     string // empty: derived from the fixed values
	TitleSize float64
	TitleFont *truetype.Font
	Digits    int

	Legend LegendStyle

	// Series is merged into every line and point series; set fields win.
	Series chart.Style
}

// DefaultStyle returns the documented defaults.
func DefaultStyle() Style {
	return Style{
		LineWidth: DefaultLineWidth,
		PointSize: DefaultPointSize,
		BandAlpha: DefaultBandAlpha,
		TitleSize: DefaultTitleSize,
		Digits:    3,
		Legend: LegendStyle{
			Show:     true,
			Position: TopRight,
			Inset:    DefaultInset,
			Border:   true,
			Alpha:    1,
			FontSize: DefaultLegendSize,
		},
	}
}

// Cycle returns k colors from cs, repeating as needed.
func Cycle(cs []drawing.Color, k int) []drawing.Color {
	if len(cs) == 0 {
		cs = DefaultPalette
	}
	out := make([]drawing.Color, k)
	for i := range out {
		out[i] = cs[i%len(cs)]
	}
	return out
}

func lineTypesFor(ls []LineType, k int) []LineType {
	out := make([]LineType, k)
	for i := range out {
		if len(ls) == 0 {
			out[i] = LineType(i % int(numLineTypes))
		} else {
			out[i] = ls[i%len(ls)]
		}
	}
	return out
}

func markersFor(ms []Marker, k int) []Marker {
	out := make([]Marker, k)
	for i := range out {
		if len(ms) == 0 {
			out[i] = Marker(i % int(numMarkers))
		} else {
			out[i] = ms[i%len(ms)]
		}
	}
	return out
}

// alpha8 converts an opacity in [0, 1] to a color channel.
func alpha8(a float64) uint8 {
	switch {
	case a <= 0:
		return 0
	case a >= 1:
		return 255
	default:
		return uint8(a*255 + 0.5)
	}
}
