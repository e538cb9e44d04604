// SPDX-License-Identifier: MIT

// Package distance builds pairwise perceptual-difference matrices over a
// universe of Lab colours.
//
// Metrics:
//   - CIE76: Euclidean distance in Lab (the simple variant).
//   - CIE94: weighted graphic-arts formula.
//   - CIEDE2000: the standard weighted formula (default).
//
// Every builder returns a *matrix.Distance, so a zero diagonal and exact
// symmetry hold for every metric, CIE94 included: each pair is evaluated once
// with the lower index as reference and mirrored.
//
// DeltaL builds the signed lightness matrix L_i − L_j as a *matrix.Antisymmetric.
//
// Complexity: O(k²) metric evaluations for a universe of k colours. Setting
// Options.Workers > 1 spreads rows across goroutines; the result is identical
// to the sequential build.
package distance
