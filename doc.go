// SPDX-License-Identifier: MIT

// Package cvdpalette generates colour palettes whose members stay
// distinguishable for viewers with colour-vision deficiencies.
//
// Given a universe of candidate sRGB colours and a palette size k, the
// pipeline converts every colour to CIE L*a*b*, builds the pairwise
// perceptual-difference matrix (CIEDE2000 by default), drops near-duplicates
// below a ΔE threshold and then repeatedly removes one member of the closest
// remaining pair until k colours are left. The result is ordered by
// separation, most distinct colour first.
//
// Layout:
//
//	colorspace/: RGB and Lab values, hex parsing, conversion, Lab interpolation
//	matrix/: Dense, Distance and Antisymmetric matrices with validators
//	distance/: ΔE metrics (CIE76, CIE94, CIEDE2000) and parallel matrix build
//	filter/: threshold partitions, membership tests, near-duplicate removal
//	selector/: extremal pair lookups and pivot-based universe splitting
//	palette/: Generate and Gradient, the public entry points
//	config/: YAML configuration loading and validation
//	cmd/cvdpal: command-line front end
//
// Quick start:
//
//	u := []colorspace.RGB{
//		colorspace.RGB8(0xe6, 0x9f, 0x00),
//		colorspace.RGB8(0x56, 0xb4, 0xe9),
//		colorspace.RGB8(0x00, 0x9e, 0x73),
//	}
//	p, err := palette.Generate(u, 2, nil)
package cvdpalette
