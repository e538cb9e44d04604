// SPDX-License-Identifier: MIT

package filter

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/cvdpalette/matrix"
)

// Below returns every cell (row, col) whose value is strictly less than n,
// in row-major scan order. The diagonal is included whenever it qualifies.
//
// Complexity: O(r*c).
func Below(m matrix.Reader, n float64) []matrix.IndexPair {
	var out []matrix.IndexPair
	m.Do(func(i, j int, v float64) bool {
		if v < n {
			out = append(out, matrix.IndexPair{Row: i, Col: j})
		}
		return true
	})

	return out
}

type rankedCell struct {
	pair  matrix.IndexPair
	value float64
}

// RankAbove returns every cell whose value is strictly greater than n,
// ordered by descending value. Equal values keep row-major order.
//
// Complexity: O(r*c + k log k) for k qualifying cells.
func RankAbove(m matrix.Reader, n float64) []matrix.IndexPair {
	var cells []rankedCell
	m.Do(func(i, j int, v float64) bool {
		if v > n {
			cells = append(cells, rankedCell{pair: matrix.IndexPair{Row: i, Col: j}, value: v})
		}
		return true
	})
	slices.SortStableFunc(cells, func(a, b rankedCell) int {
		return cmp.Compare(b.value, a.value)
	})

	out := make([]matrix.IndexPair, len(cells))
	for k, c := range cells {
		out[k] = c.pair
	}

	return out
}
