// SPDX-License-Identifier: MIT

package selector

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/cvdpalette/matrix"
)

// Split produces one candidate sub-universe per pivot: a copy of universe
// without the element at pivot.Row, remaining order preserved. pivot.Col
// is not consulted.
//
// Errors: ErrPivotOutOfRange when a pivot.Row is outside [0, len(universe)).
//
// Complexity: O(len(pivots) * len(universe)).
func Split[T any](universe []T, pivots []matrix.IndexPair) ([][]T, error) {
	out := make([][]T, 0, len(pivots))
	for k, p := range pivots {
		if p.Row < 0 || p.Row >= len(universe) {
			return nil, fmt.Errorf("%w: pivot %d %s for universe of %d", ErrPivotOutOfRange, k, p, len(universe))
		}
		sub := make([]T, 0, len(universe)-1)
		sub = append(sub, universe[:p.Row]...)
		sub = append(sub, universe[p.Row+1:]...)
		out = append(out, sub)
	}

	return out, nil
}

// SplitProduct produces one sub-universe per element of the cartesian
// product of groups (first group varies slowest). Each sub-universe is
// universe with every member equal to one of the chosen values removed.
//
// No groups yields a single copy of universe; any empty group yields no
// sub-universes.
//
// Complexity: O(Π len(group) * len(universe) * len(groups)).
func SplitProduct[T comparable](universe []T, groups [][]T) [][]T {
	var out [][]T
	chosen := make([]T, len(groups))

	var walk func(depth int)
	walk = func(depth int) {
		if depth == len(groups) {
			sub := make([]T, 0, len(universe))
			for _, v := range universe {
				if !slices.Contains(chosen, v) {
					sub = append(sub, v)
				}
			}
			out = append(out, sub)
			return
		}
		for _, v := range groups[depth] {
			chosen[depth] = v
			walk(depth + 1)
		}
	}
	walk(0)

	return out
}
