// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep constructors minimal by delegating shape/nil/structure checks here.
//   - Wrap sentinels with the validator tag so call sites can match via errors.Is.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//   - Structural checks scan in row-major order and report the first violation.
//
// Note:
//   - Each validator states what it assumes (e.g. ValidateSymmetric assumes square).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Reader) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateRows ensures a raw list-of-lists is non-empty and rectangular.
//
// Errors: ErrInvalidDimensions (no rows, or zero-length first row),
// ErrDimensionMismatch (ragged).
// Complexity: O(r).
func ValidateRows(rows [][]float64) error {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return validatorErrorf("ValidateRows", ErrInvalidDimensions)
	}
	width := len(rows[0])
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != width {
			return validatorErrorf(fmt.Sprintf("ValidateRows: row %d", i), ErrDimensionMismatch)
		}
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(1).
func ValidateSquare(m Reader) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateZeroDiagonal checks |m[i,i]| ≤ eps for every i.
//
// Implementation: Assumes m is square.
// Errors: ErrNonZeroDiagonal (first offending index reported), ErrNaNInf.
// Complexity: O(n).
func ValidateZeroDiagonal(m Reader, eps float64) error {
	var v float64
	for i := 0; i < m.Rows(); i++ {
		v, _ = m.At(i, i)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return validatorErrorf(fmt.Sprintf("ValidateZeroDiagonal(%d)", i), ErrNaNInf)
		}
		if math.Abs(v) > eps {
			return validatorErrorf(fmt.Sprintf("ValidateZeroDiagonal(%d)", i), ErrNonZeroDiagonal)
		}
	}

	return nil
}

// ValidateSymmetric checks |m[i,j] − m[j,i]| ≤ eps over the upper triangle.
//
// Implementation: Assumes m is square.
// Errors: ErrAsymmetry.
// Complexity: O(n²).
func ValidateSymmetric(m Reader, eps float64) error {
	return validatePairs(m, eps, "ValidateSymmetric", ErrAsymmetry, func(x, y float64) float64 { return x - y })
}

// ValidateAntisymmetric checks |m[i,j] + m[j,i]| ≤ eps over the upper triangle
// (the diagonal is covered by i == j: 2·m[i,i] must be ~0).
//
// Implementation: Assumes m is square.
// Errors: ErrNotAntisymmetric.
// Complexity: O(n²).
func ValidateAntisymmetric(m Reader, eps float64) error {
	return validatePairs(m, eps, "ValidateAntisymmetric", ErrNotAntisymmetric, func(x, y float64) float64 { return x + y })
}

// validatePairs is the shared upper-triangle scan behind the two structural checks.
func validatePairs(m Reader, eps float64, tag string, sentinel error, residual func(x, y float64) float64) error {
	var i, j int
	var a, b float64
	n := m.Rows()
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			a, _ = m.At(i, j)
			b, _ = m.At(j, i)
			if math.Abs(residual(a, b)) > eps {
				return validatorErrorf(fmt.Sprintf("%s(%d,%d)", tag, i, j), sentinel)
			}
		}
	}

	return nil
}
