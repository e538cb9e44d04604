// SPDX-License-Identifier: MIT

package filter

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cvdpalette/matrix"
)

func validateThreshold(threshold float64) error {
	if math.IsNaN(threshold) || math.IsInf(threshold, 0) || threshold <= 0 {
		return fmt.Errorf("%w: got %v", ErrBadThreshold, threshold)
	}

	return nil
}

// NearDuplicates returns the pairs (i, j), i < j, whose distance is strictly
// below threshold, in row-major order.
//
// Errors: ErrBadThreshold.
func NearDuplicates(d *matrix.Distance, threshold float64) ([]matrix.IndexPair, error) {
	if err := validateThreshold(threshold); err != nil {
		return nil, err
	}

	var out []matrix.IndexPair
	d.Do(func(i, j int, v float64) bool {
		if i < j && v < threshold {
			out = append(out, matrix.IndexPair{Row: i, Col: j})
		}
		return true
	})

	return out, nil
}

// Dedupe returns the universe indices that survive greedy near-duplicate
// removal, ascending. Index i is dropped iff it lies strictly closer than
// threshold to an index already kept, so the earliest member of every
// cluster wins.
//
// Errors: ErrBadThreshold.
//
// Complexity: O(n·k) for k survivors.
func Dedupe(d *matrix.Distance, threshold float64) ([]int, error) {
	if err := validateThreshold(threshold); err != nil {
		return nil, err
	}

	keep := make([]int, 0, d.Len())
	for i := 0; i < d.Len(); i++ {
		dup := false
		for _, k := range keep {
			if v, _ := d.At(k, i); v < threshold {
				dup = true
				break
			}
		}
		if !dup {
			keep = append(keep, i)
		}
	}

	return keep, nil
}
