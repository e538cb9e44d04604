// SPDX-License-Identifier: MIT

package selector

import (
	"slices"

	"github.com/katalvlaran/cvdpalette/filter"
	"github.com/katalvlaran/cvdpalette/matrix"
)

// MaxPair returns the cell holding the largest value (the most separated
// pair on a distance matrix). Ties go to the first cell in row-major order;
// p.Swap() addresses the mirrored cell. ok is false for an empty matrix.
//
// Complexity: O(r*c).
func MaxPair(m matrix.Reader) (p matrix.IndexPair, ok bool) {
	var best float64
	m.Do(func(i, j int, v float64) bool {
		if !ok || v > best {
			p, best, ok = matrix.IndexPair{Row: i, Col: j}, v, true
		}
		return true
	})

	return p, ok
}

// MinOffDiagonal returns the off-diagonal cell holding the smallest value
// (the least separated pair). Ties go to the first cell in row-major order.
// ok is false when no off-diagonal cell exists (fewer than two members).
//
// Complexity: O(r*c).
func MinOffDiagonal(m matrix.Reader) (p matrix.IndexPair, ok bool) {
	var best float64
	m.Do(func(i, j int, v float64) bool {
		if i != j && (!ok || v < best) {
			p, best, ok = matrix.IndexPair{Row: i, Col: j}, v, true
		}
		return true
	})

	return p, ok
}

// MaxIndex returns the position (row, column) of the largest element of a
// possibly ragged list of lists. Ties go to the first occurrence; empty
// rows are skipped. ok is false when there is no element at all.
//
// Complexity: O(total elements).
func MaxIndex(rows [][]float64) (p matrix.IndexPair, ok bool) {
	var best float64
	for i, row := range rows {
		for j, v := range row {
			if !ok || v > best {
				p, best, ok = matrix.IndexPair{Row: i, Col: j}, v, true
			}
		}
	}

	return p, ok
}

// MaxMinRows compares whole rows lexicographically and returns the index of
// the greatest and of the smallest row. Ties go to the first occurrence.
// An empty input yields ok=false rather than an error.
//
// Complexity: O(total elements).
func MaxMinRows(rows [][]float64) (maxRow, minRow int, ok bool) {
	if len(rows) == 0 {
		return 0, 0, false
	}
	for i := 1; i < len(rows); i++ {
		if slices.Compare(rows[i], rows[maxRow]) > 0 {
			maxRow = i
		}
		if slices.Compare(rows[i], rows[minRow]) < 0 {
			minRow = i
		}
	}

	return maxRow, minRow, true
}

// RankedPositions is the selection order used when assembling a palette:
// every cell strictly above n, most separated first, ties in row-major
// order. It shares its contract with filter.RankAbove.
func RankedPositions(m matrix.Reader, n float64) []matrix.IndexPair {
	return filter.RankAbove(m, n)
}
