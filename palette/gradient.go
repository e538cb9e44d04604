// SPDX-License-Identifier: MIT

package palette

import (
	"fmt"

	"github.com/katalvlaran/cvdpalette/colorspace"
)

// Gradient returns n colours evenly spaced in Lab from from to to, both
// inclusive. Intermediate colours that fall outside the sRGB gamut are
// clipped.
//
// Errors: ErrInvalidColor for an out-of-range endpoint, ErrInvalidArgument
// for n < 1.
func Gradient(from, to colorspace.RGB, n int) ([]colorspace.RGB, error) {
	return GradientStops([]colorspace.RGB{from, to}, n)
}

// GradientStops returns n colours evenly spaced in Lab along the path through
// stops. The first and last stops are reproduced.
//
// Errors: ErrInvalidColor (stop index reported), ErrInvalidArgument for n < 1
// or no stops.
func GradientStops(stops []colorspace.RGB, n int) ([]colorspace.RGB, error) {
	labs, err := colorspace.MapRGBToLab(stops)
	if err != nil {
		return nil, fmt.Errorf("palette: gradient: %w", err)
	}
	path, err := colorspace.InterpolateStops(labs, n)
	if err != nil {
		return nil, fmt.Errorf("palette: gradient: %w", err)
	}

	return colorspace.MapLabToRGB(path), nil
}
