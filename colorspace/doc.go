// SPDX-License-Identifier: MIT

// Package colorspace converts colours between sRGB and CIELAB and performs the
// Lab-space arithmetic used to build palettes.
//
// Overview:
//
//   - RGB holds 0–255 channels (float64, no alpha). Construct it with NewRGB,
//     FromUnit or ParseHex (validated) or RGB8 (always valid).
//   - Lab holds (L, a, b) with L nominally in [0,100] and a/b unbounded.
//   - ToLab decodes sRGB gamma and goes through XYZ to Lab with a D65 white
//     point. ToRGB is the inverse and clips out-of-gamut results.
//   - Complement flips the chromatic axes; Interpolate and InterpolateStops
//     walk straight lines in Lab space.
//
// Conversion math is delegated to github.com/lucasb-eyer/go-colorful; this
// package owns the 0–255 / 0–100 scaling, range validation and clipping policy.
//
// Errors:
//   - ErrInvalidColor: a channel is NaN, ±Inf or outside [0,255].
//   - ErrInvalidArgument: an interpolation count below 1 or no stops.
//
// Converting Lab to RGB never fails: clipping is the policy for
// out-of-gamut input.
package colorspace
