// SPDX-License-Identifier: MIT

package colorspace

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// labScale maps go-colorful's L∈[0,1] convention to the usual L∈[0,100].
const labScale = 100.0

// ToLab converts an sRGB colour to CIELAB (D65 white point).
//
// Pipeline: gamma decode → linear RGB → XYZ → Lab.
// Errors: ErrInvalidColor when a channel is NaN, ±Inf or outside [0,255].
func ToLab(c RGB) (Lab, error) {
	if err := c.Validate(); err != nil {
		return Lab{}, err
	}
	l, a, b := c.colorful().Lab()

	return Lab{L: l * labScale, A: a * labScale, B: b * labScale}, nil
}

// ToRGB converts a Lab colour back to sRGB. Out-of-gamut channels are clipped
// to [0,255]; NaN components clip to 0. It never fails.
func ToRGB(c Lab) RGB {
	u := colorful.Lab(c.L/labScale, c.A/labScale, c.B/labScale).Clamped()

	return RGB{R: clip(u.R), G: clip(u.G), B: clip(u.B)}
}

// clip maps a clamped unit channel onto 0–255; NaN survives Clamped, so it
// is folded to 0 here.
func clip(u float64) float64 {
	if math.IsNaN(u) {
		return 0
	}

	return u * MaxChannel
}

// MapRGBToLab converts every colour, preserving order and length.
// The first invalid element aborts the conversion and its index is reported.
func MapRGBToLab(list []RGB) ([]Lab, error) {
	out := make([]Lab, len(list))
	for i, c := range list {
		lab, err := ToLab(c)
		if err != nil {
			return nil, fmt.Errorf("colorspace: color %d: %w", i, err)
		}
		out[i] = lab
	}

	return out, nil
}

// MapLabToRGB converts every colour, preserving order and length.
func MapLabToRGB(list []Lab) []RGB {
	out := make([]RGB, len(list))
	for i, c := range list {
		out[i] = ToRGB(c)
	}

	return out
}
