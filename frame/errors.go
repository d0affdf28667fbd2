// SPDX-License-Identifier: MIT
// Package: nestplot/frame
//
// errors.go — sentinel errors for the frame package.
// Callers branch with errors.Is; context is attached with %w at call sites.

package frame

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch indicates a column whose length differs from the frame's row count.
	ErrLengthMismatch = errors.New("frame: column length mismatch")

	// ErrDuplicateColumn indicates that a column name is already present.
	ErrDuplicateColumn = errors.New("frame: duplicate column")

	// ErrUnknownLevel indicates a categorical value outside the declared level set.
	ErrUnknownLevel = errors.New("frame: value not among levels")

	// ErrDuplicateLevel indicates a level declared twice.
	ErrDuplicateLevel = errors.New("frame: duplicate level")

	// ErrEmptyName indicates a column without a name.
	ErrEmptyName = errors.New("frame: empty column name")

	// ErrBadCSV indicates malformed CSV input (no header, ragged rows, empty cells).
	ErrBadCSV = errors.New("frame: malformed csv")

	// ErrKindMismatch indicates a value or column of the wrong Kind.
	ErrKindMismatch = errors.New("frame: kind mismatch")

	// ErrNonFinite indicates a NaN or ±Inf cell in a numeric column.
	ErrNonFinite = errors.New("frame: non-finite number")
)

// frameErrorf prefixes err with the operation name, keeping the sentinel for errors.Is.
func frameErrorf(op, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", op, fmt.Errorf(format, args...))
}
