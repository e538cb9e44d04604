// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Constructors and accessors MUST return these sentinels and tests
// MUST check them via errors.Is. No code path panics on user-triggered input.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Detection sites wrap with fmt.Errorf("ctx: %w", ErrX);
// callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil/shape -> index -> NaN/Inf -> structural violations (symmetry, diagonal).

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// non-positive (Dense) or negative (Distance, Antisymmetric).
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Induced) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates a ragged row set or incompatible lengths.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated symmetry
	// within the configured tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNotAntisymmetric signals that A[i,j] != -A[j,i] within tolerance.
	ErrNotAntisymmetric = errors.New("matrix: matrix is not antisymmetric within eps")

	// ErrNonZeroDiagonal signals that a diagonal is required to be ~0 (within eps)
	// but a non-zero entry was observed.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero within eps")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (ingestion, Set, fill callbacks).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNegativeDistance signals a distance cell below zero.
	ErrNegativeDistance = errors.New("matrix: negative distance")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNilFill indicates that a constructor received a nil cell callback.
	ErrNilFill = errors.New("matrix: nil fill function")
)
