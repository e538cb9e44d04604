// SPDX-License-Identifier: MIT
// Public API facades.
//
// Purpose:
//   - Provide thin entry points that work on any Reader.
//   - Avoid logic duplication: each facade delegates to Reader.Do.
//
// Determinism & Policy:
//   - Facades never change the row-major loop order of the underlying flavour.

package matrix

// RowSums returns s where s[i] = Σ_j m[i,j] for any Reader.
// On a Distance this is the total separation of member i from the universe.
// Complexity: O(r*c).
func RowSums(m Reader) []float64 {
	sums := make([]float64, m.Rows())
	m.Do(func(i, _ int, v float64) bool {
		sums[i] += v
		return true
	})

	return sums
}

// ToSlices exports m as freshly allocated nested rows (row-major).
// Useful for printing or comparing against list-of-lists fixtures.
// Complexity: O(r*c).
func ToSlices(m Reader) [][]float64 {
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
	}
	m.Do(func(i, j int, v float64) bool {
		out[i][j] = v
		return true
	})

	return out
}
