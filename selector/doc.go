// SPDX-License-Identifier: MIT

// Package selector finds extremal cells of a distance matrix and derives
// candidate sub-universes from pivot pairs.
//
// Tie policy: every scan follows the row-major order of matrix.Reader.Do and
// keeps the FIRST extremal cell it meets. This decides which colour survives
// when several pairs share the same distance, so it is part of the contract.
//
// Empty inputs are not errors: the extremal searches report ok=false.
package selector
