// SPDX-License-Identifier: MIT
// Package: nestplot/render
//
// surface.go — the drawing-surface contract.
//
// Coordinates passed to a Surface are data coordinates; the surface maps
// them onto its canvas using the ranges set by Axis. Renderers call Axis
// before any other drawing call.

package render

import (
	"github.com/golang/freetype/truetype"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Tick is a labeled x position.
type Tick struct {
	Value float64
	Label string
}

// AxisSpec fixes both ranges and labels. Ticks replaces the generated
// x ticks when non-empty.
type AxisSpec struct {
	XLabel, YLabel string
	XMin, XMax     float64
	YMin, YMax     float64
	Ticks          []Tick
}

// Path is a polyline and/or a set of markers sharing one style.
type Path struct {
	Name       string
	X, Y       []float64
	Color      drawing.Color
	Width      float64
	LineType   LineType
	Line       bool // connect consecutive points
	Points     bool // draw a marker at every point
	Marker     Marker
	MarkerSize float64
	Extra      chart.Style // pass-through; set fields override the above
}

// Polygon is a closed filled region with no border.
type Polygon struct {
	X, Y []float64
	Fill drawing.Color
}

// Segment is one straight stroke.
type Segment struct {
	X0, Y0, X1, Y1 float64
}

// Segments is a batch of strokes with one style.
type Segments struct {
	Segs  []Segment
	Color drawing.Color
	Width float64
}

// TitleSpec is the plot title.
type TitleSpec struct {
	Text string
	Size float64
	Font *truetype.Font // nil: surface default
}

// LegendEntry describes one category.
type LegendEntry struct {
	Label      string
	Color      drawing.Color
	LineType   LineType
	Width      float64
	ShowLine   bool
	Marker     Marker
	ShowMarker bool
}

// LegendSpec is a legend box.
type LegendSpec struct {
	Entries []LegendEntry
	Style   LegendStyle
}

// Surface is the drawing collaborator.
type Surface interface {
	// Palette returns the surface's current color sequence.
	Palette() []drawing.Color
	// SetPalette replaces the color sequence.
	SetPalette(cs []drawing.Color)
	Axis(a AxisSpec) error
	Series(p Path) error
	Polygon(p Polygon) error
	Segments(s Segments) error
	// Frame draws a box around the plot region.
	Frame() error
	Title(t TitleSpec) error
	Legend(l LegendSpec) error
}
