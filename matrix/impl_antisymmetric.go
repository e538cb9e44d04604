// SPDX-License-Identifier: MIT

// Package matrix - Antisymmetric: immutable square matrix with A[j,i] == -A[i,j].
//
// Purpose:
//   - Hold signed differences over a universe (e.g. lightness ΔL = L_i − L_j).
//   - Zero diagonal and exact antisymmetry hold by construction: only i<j is
//     evaluated, the mirror cell stores the negation.
//
// Complexity quicksheet:
//   - NewAntisymmetric: n(n-1)/2 callback calls; At: O(1); Do: O(n^2).

package matrix

import (
	"fmt"
	"math"
)

const ctxAntisymmetric = "Antisymmetric"

// Antisymmetric is an immutable n×n matrix with A[i,i]=0 and A[j,i]=-A[i,j].
type Antisymmetric struct {
	n    int
	data []float64
}

// Compile-time assertions.
var (
	_ Reader       = (*Antisymmetric)(nil)
	_ fmt.Stringer = (*Antisymmetric)(nil)
)

// NewAntisymmetric builds an n×n antisymmetric matrix from a signed callback.
// MAIN DESCRIPTION:
//   - Evaluate fill(i, j) for i<j, store v at (i,j) and -v at (j,i).
//
// Errors:
//   - ErrInvalidDimensions (n < 0), ErrNilFill, ErrNaNInf.
//
// Determinism:
//   - Callback order is fixed (row-major over i<j).
//
// Complexity:
//   - Time O(n^2), Space O(n^2).
func NewAntisymmetric(n int, fill func(i, j int) float64) (*Antisymmetric, error) {
	if n < 0 {
		return nil, fmt.Errorf("%s(%d): %w", ctxAntisymmetric, n, ErrInvalidDimensions)
	}
	if fill == nil {
		return nil, fmt.Errorf("%s: %w", ctxAntisymmetric, ErrNilFill)
	}

	a := &Antisymmetric{n: n, data: make([]float64, n*n)}
	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			v = fill(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%s(%d,%d): %w", ctxAntisymmetric, i, j, ErrNaNInf)
			}
			a.data[i*n+j] = v
			a.data[j*n+i] = -v
		}
	}

	return a, nil
}

// Rows returns n. Complexity: O(1).
func (a *Antisymmetric) Rows() int { return a.n }

// Cols returns n. Complexity: O(1).
func (a *Antisymmetric) Cols() int { return a.n }

// At returns A[i,j]. Errors: ErrOutOfRange. Complexity: O(1).
func (a *Antisymmetric) At(i, j int) (float64, error) {
	if i < 0 || i >= a.n || j < 0 || j >= a.n {
		return 0, fmt.Errorf("%s.At(%d,%d): %w", ctxAntisymmetric, i, j, ErrOutOfRange)
	}

	return a.data[i*a.n+j], nil
}

// Do visits every cell in row-major order. Complexity: O(n^2).
func (a *Antisymmetric) Do(f func(i, j int, v float64) bool) {
	doRowMajor(a.n, a.n, a.data, f)
}

// String renders rows as lines with comma-separated values (%g).
func (a *Antisymmetric) String() string { return formatRowMajor(a.n, a.n, a.data) }
