// SPDX-License-Identifier: MIT

// Package matrix - Distance: immutable symmetric, zero-diagonal square matrix.
//
// Purpose:
//   - Hold pairwise perceptual distances over a universe of n colours.
//   - Make the two structural invariants unbreakable: cell (i,i) is exactly 0
//     and cell (i,j) is bit-for-bit equal to cell (j,i).
//
// Construction policy:
//   - NewDistance evaluates the fill callback ONLY for i<j and mirrors the
//     result, so asymmetric formulas (e.g. CIE94) still yield a symmetric matrix.
//   - NewDistanceFromRows validates raw rows within eps, then keeps the upper
//     triangle and mirrors it, so the stored value is exactly symmetric.
//   - n == 0 is legal: an empty universe has an empty distance matrix.
//
// Complexity quicksheet:
//   - NewDistance: n(n-1)/2 callback calls, O(n^2) space.
//   - At: O(1); Do: O(n^2); Induced: O(k^2).

package matrix

import (
	"fmt"
	"math"
)

const (
	ctxDistance        = "Distance"
	ctxDistanceInduced = "Distance.Induced"
)

// Distance is an immutable n×n matrix with zero diagonal and exact symmetry.
type Distance struct {
	n    int       // order of the matrix (universe size)
	data []float64 // row-major n*n buffer; never mutated after construction
}

// Compile-time assertions.
var (
	_ Reader       = (*Distance)(nil)
	_ fmt.Stringer = (*Distance)(nil)
)

// NewDistance builds an n×n distance matrix from a pairwise callback.
// MAIN DESCRIPTION:
//   - Evaluate fill(i, j) for every i<j, mirror into (j, i), keep the diagonal at 0.
//
// Implementation:
//   - Stage 1: validate n ≥ 0 and fill != nil.
//   - Stage 2: fixed i→j scan of the strict upper triangle; reject NaN/±Inf
//     and negative values at the first offending cell.
//   - Stage 3: write v into (i,j) and (j,i).
//
// Errors:
//   - ErrInvalidDimensions (n < 0), ErrNilFill, ErrNaNInf, ErrNegativeDistance.
//
// Determinism:
//   - Callback order is fixed (row-major over i<j).
//
// Complexity:
//   - Time O(n^2) plus n(n-1)/2 callback calls, Space O(n^2).
//
// AI-Hints:
//   - Callers that compute cells concurrently should fill a private buffer
//     first and pass a lookup closure; NewDistance itself is single-threaded.
func NewDistance(n int, fill func(i, j int) float64) (*Distance, error) {
	if n < 0 {
		return nil, fmt.Errorf("%s(%d): %w", ctxDistance, n, ErrInvalidDimensions)
	}
	if fill == nil {
		return nil, fmt.Errorf("%s: %w", ctxDistance, ErrNilFill)
	}

	d := &Distance{n: n, data: make([]float64, n*n)}
	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			v = fill(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%s(%d,%d): %w", ctxDistance, i, j, ErrNaNInf)
			}
			if v < 0 {
				return nil, fmt.Errorf("%s(%d,%d): %w", ctxDistance, i, j, ErrNegativeDistance)
			}
			d.data[i*n+j] = v
			d.data[j*n+i] = v
		}
	}

	return d, nil
}

// NewDistanceFromRows ingests a raw square table and checks the distance contract.
// MAIN DESCRIPTION:
//   - Validate shape, finiteness, zero diagonal and symmetry within eps; then
//     store the upper triangle mirrored so the result is exactly symmetric.
//
// Errors:
//   - ErrInvalidDimensions, ErrDimensionMismatch (ragged), ErrNonSquare,
//     ErrNaNInf, ErrNonZeroDiagonal, ErrAsymmetry, ErrNegativeDistance.
//
// Complexity:
//   - Time O(n^2), Space O(n^2).
func NewDistanceFromRows(rows [][]float64, eps float64) (*Distance, error) {
	raw, err := NewDenseFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxDistance, err)
	}
	if err = ValidateSquare(raw); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxDistance, err)
	}
	if err = ValidateZeroDiagonal(raw, eps); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxDistance, err)
	}
	if err = ValidateSymmetric(raw, eps); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxDistance, err)
	}

	return NewDistance(raw.r, func(i, j int) float64 { return raw.data[i*raw.c+j] })
}

// Rows returns n. Complexity: O(1).
func (d *Distance) Rows() int { return d.n }

// Cols returns n. Complexity: O(1).
func (d *Distance) Cols() int { return d.n }

// Len returns the universe size n. Complexity: O(1).
func (d *Distance) Len() int { return d.n }

// At returns the distance between universe members i and j.
// Errors: ErrOutOfRange. Complexity: O(1).
func (d *Distance) At(i, j int) (float64, error) {
	if i < 0 || i >= d.n || j < 0 || j >= d.n {
		return 0, fmt.Errorf("%s.At(%d,%d): %w", ctxDistance, i, j, ErrOutOfRange)
	}

	return d.data[i*d.n+j], nil
}

// Do visits every cell in row-major order (diagonal included).
// Complexity: O(n^2).
func (d *Distance) Do(f func(i, j int, v float64) bool) {
	doRowMajor(d.n, d.n, d.data, f)
}

// Induced returns the distance matrix of the sub-universe keep, in keep order.
// MAIN DESCRIPTION:
//   - Copy cells (keep[a], keep[b]) into a new k×k Distance without recomputing
//     any perceptual distance. Used when a universe shrinks (dedupe, pruning).
//
// Errors:
//   - ErrOutOfRange when an index is outside [0, n).
//
// Notes:
//   - Duplicated indices are accepted; their mutual cell is the (zero) diagonal.
//
// Complexity:
//   - Time O(k^2), Space O(k^2).
func (d *Distance) Induced(keep []int) (*Distance, error) {
	for _, idx := range keep {
		if idx < 0 || idx >= d.n {
			return nil, fmt.Errorf("%s: index %d: %w", ctxDistanceInduced, idx, ErrOutOfRange)
		}
	}

	return NewDistance(len(keep), func(a, b int) float64 {
		return d.data[keep[a]*d.n+keep[b]]
	})
}

// String renders rows as lines with comma-separated values (%g).
func (d *Distance) String() string { return formatRowMajor(d.n, d.n, d.data) }
