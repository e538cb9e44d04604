// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by every matrix flavour.
// This file contains ONLY the public interfaces and the IndexPair key.
// Errors and numeric defaults live in dedicated files (errors.go, options.go).
package matrix

import "fmt"

// IndexPair identifies one cell (Row, Col) of a square matrix built over a
// universe; both indices are universe positions.
// Complexity: O(1) to build and compare; usable as a map key.
type IndexPair struct {
	Row int // first universe index (matrix row)
	Col int // second universe index (matrix column)
}

// Swap returns the mirrored cell (Col, Row).
func (p IndexPair) Swap() IndexPair { return IndexPair{Row: p.Col, Col: p.Row} }

// String renders the pair as "(row,col)".
func (p IndexPair) String() string { return fmt.Sprintf("(%d,%d)", p.Row, p.Col) }

// Reader is the read-only surface shared by Dense, Distance and Antisymmetric.
// Scanning algorithms (threshold filters, extremal searches) depend only on it.
//
// Complexity notes: Rows/Cols/At are O(1); Do is O(r*c).
type Reader interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Do visits every element in row-major order and stops early when f
	// returns false. Row-major order is a contract: tie-breaking in callers
	// ("first occurrence wins") relies on it.
	Do(f func(i, j int, v float64) bool)
}

// Matrix represents a two-dimensional mutable array of float64 values.
// Only Dense implements it; Distance and Antisymmetric are immutable Readers.
type Matrix interface {
	Reader

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// Complexity: O(rows*cols).
	Clone() Matrix
}
