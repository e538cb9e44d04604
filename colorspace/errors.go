// SPDX-License-Identifier: MIT

package colorspace

import "errors"

var (
	// ErrInvalidColor indicates an RGB channel that is NaN, ±Inf or outside
	// the valid range. Detection sites wrap it with the channel name and value.
	ErrInvalidColor = errors.New("colorspace: invalid color")

	// ErrInvalidArgument indicates a non-positive interpolation count or an
	// empty stop list.
	ErrInvalidArgument = errors.New("colorspace: invalid argument")
)
