// SPDX-License-Identifier: MIT

package palette

import (
	"errors"

	"github.com/katalvlaran/cvdpalette/colorspace"
)

var (
	// ErrInsufficientUniverse indicates fewer distinct colours than requested
	// after near-duplicate filtering.
	ErrInsufficientUniverse = errors.New("palette: insufficient universe")

	// ErrInvalidColor is colorspace.ErrInvalidColor, re-exported so callers
	// of this package need not import colorspace to match it.
	ErrInvalidColor = colorspace.ErrInvalidColor

	// ErrInvalidArgument is colorspace.ErrInvalidArgument, also returned for
	// a non-positive count or threshold.
	ErrInvalidArgument = colorspace.ErrInvalidArgument
)
