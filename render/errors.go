// SPDX-License-Identifier: MIT
// Package: nestplot/render
//
// errors.go — sentinel errors for styles, surfaces and renderers.

package render

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyTable indicates a nil table or a table without categories.
	ErrEmptyTable = errors.New("render: empty prediction table")

	// ErrNothingDrawn indicates Render on a surface without any series.
	ErrNothingDrawn = errors.New("render: nothing to draw")

	// ErrShapeMismatch indicates x and y slices of different lengths.
	ErrShapeMismatch = errors.New("render: x and y lengths differ")

	// ErrBadFormat indicates an unsupported output format.
	ErrBadFormat = errors.New("render: unsupported output format")

	// ErrUnknownLineType indicates a line-type name that does not parse.
	ErrUnknownLineType = errors.New("render: unknown line type")

	// ErrUnknownMarker indicates a marker name that does not parse.
	ErrUnknownMarker = errors.New("render: unknown marker")

	// ErrUnknownPosition indicates a legend position name that does not parse.
	ErrUnknownPosition = errors.New("render: unknown legend position")

	// ErrBadColor indicates a color string that is neither hex nor a known name.
	ErrBadColor = errors.New("render: unparseable color")
)

func renderErrorf(op, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", op, fmt.Errorf(format, args...))
}
