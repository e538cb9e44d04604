// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Ingest raw list-of-lists input (NewDenseFromRows) for callers that hand in
//     ad hoc tables rather than a universe of colours.
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// AI-Hints:
//   - Dense is the only mutable flavour; Distance/Antisymmetric are immutable and
//     should be preferred whenever the invariants are known up front.
//   - DefaultValidateNaNInf is on; insert only finite values.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; NewDenseFromRows: O(r*c); At/Set: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxFromRows = "FromRows" // ctor tag for NewDenseFromRows
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// MAIN DESCRIPTION:
//   - Attach method context and coordinates to a sentinel error for diagnostics.
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables NaN/Inf rejection in Set (policy default from options.go).
type Dense struct {
	r, c           int       // row and column counts (>0)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil) // *Dense implements the mutable Matrix interface
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation and default numeric policy.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer and initialize policy.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// Allocate a contiguous flat buffer; make() zero-fills it deterministically.
	buf := make([]float64, rows*cols)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           buf,
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// NewDenseFromRows copies a rectangular list of rows into a new Dense.
// MAIN DESCRIPTION:
//   - Ingest raw nested slices (e.g. [[1,2],[3,4]]) with full validation.
//
// Implementation:
//   - Stage 1: ValidateRows (non-empty, rectangular).
//   - Stage 2: allocate via NewDense.
//   - Stage 3: copy row by row; reject NaN/Inf under the default policy.
//
// Errors:
//   - ErrInvalidDimensions (no rows or empty first row).
//   - ErrDimensionMismatch (ragged rows).
//   - ErrNaNInf (non-finite cell).
//
// Determinism:
//   - Fixed i→j copy order; the first offending cell is reported.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	if err := ValidateRows(rows); err != nil {
		return nil, fmt.Errorf("Dense.%s: %w", ctxFromRows, err)
	}
	m, err := NewDense(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}

	var i, j int
	var v float64
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			v = rows[i][j]
			if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
				return nil, denseErrorf(ctxFromRows, i, j, ErrNaNInf)
			}
			m.data[i*m.c+j] = v
		}
	}

	return m, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods (At/Set) wrap the sentinel with coordinates and method name.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; returns a wrapped sentinel.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
// MAIN DESCRIPTION:
//   - Safe element write with optional finite-only policy.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for invalid numbers.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	// Numeric policy: optional finite-only enforcement.
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v // direct flat write

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data)) // allocate same length
	copy(cp, m.data)                   // deep copy

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf, // preserve guard policy
	}
}

// String renders rows as lines with comma-separated values (%g).
// Intended for logs and debugging, not hot paths.
// Complexity: O(r*c).
func (m *Dense) String() string {
	return formatRowMajor(m.r, m.c, m.data)
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// MAIN DESCRIPTION:
//   - Read-only visitor; stops early when f returns false.
//
// Determinism:
//   - Fixed i→j order.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	doRowMajor(m.r, m.c, m.data, f)
}

// doRowMajor is the shared row-major visitor over a flat buffer.
// Every Reader implementation delegates here so the scan order is identical
// across matrix flavours.
func doRowMajor(rows, cols int, data []float64, f func(i, j int, v float64) bool) {
	var i, j, base int // predeclare loop counters and base offset

	for i = 0; i < rows; i++ { // iterate rows deterministically
		base = i * cols            // flat base offset for row i
		for j = 0; j < cols; j++ { // iterate columns
			if !f(i, j, data[base+j]) { // invoke callback; stop if it returns false
				return
			}
		}
	}
}

// formatRowMajor is the shared String() body for all flavours.
func formatRowMajor(rows, cols int, data []float64) string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < rows; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * cols
		for j = 0; j < cols; j++ {
			b.WriteString(fmt.Sprintf("%g", data[base+j]))
			if j+1 < cols {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
