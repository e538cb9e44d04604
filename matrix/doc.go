// SPDX-License-Identifier: MIT

// Package matrix offers the typed square-matrix values used by the palette
// pipeline.
//
// The matrix package provides:
//
//   - Dense: a general mutable r×c row-major matrix with safe At/Set, used
//     to ingest raw list-of-lists tables (NewDenseFromRows).
//   - Distance: an immutable n×n matrix whose zero diagonal and exact
//     symmetry are guaranteed by construction. Pairwise colour differences
//     live here.
//   - Antisymmetric: an immutable n×n matrix with A[j,i] = −A[i,j], used for
//     signed lightness differences.
//   - IndexPair, the (row, col) key used by filters and selectors.
//   - Centralized validators and package sentinels (errors.Is-checkable).
//
// Every flavour satisfies Reader, whose Do visits cells in row-major order.
// Callers that break ties by "first occurrence" rely on that order.
//
// See the examples in this package for usage patterns.
package matrix
