// SPDX-License-Identifier: MIT
// Package: nestplot
//
// errors.go — entry-point errors. Stage errors come from effect and render
// and are wrapped with %w so errors.Is still matches them.

package nestplot

import (
	"errors"
	"fmt"
)

// ErrNilSurface indicates Plot was called without a drawing surface.
var ErrNilSurface = errors.New("nestplot: nil surface")

func plotErrorf(op string, err error) error {
	return fmt.Errorf("nestplot: %s: %w", op, err)
}
