// SPDX-License-Identifier: MIT

package distance

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/cvdpalette/colorspace"
	"github.com/katalvlaran/cvdpalette/matrix"
)

// Build computes the pairwise distance matrix of labs under opts.
//
// Only cells with i<j are evaluated (Metric.Delta(labs[i], labs[j])); the
// matrix mirrors them and keeps the diagonal at zero. A nil opts means
// DefaultOptions().
//
// Errors: matrix.ErrNaNInf when a colour produces a non-finite difference.
//
// Complexity: O(k²) time and space.
func Build(labs []colorspace.Lab, opts *Options) (*matrix.Distance, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	n := len(labs)

	var d *matrix.Distance
	var err error
	if o.Workers <= 1 || n < 2 {
		d, err = matrix.NewDistance(n, func(i, j int) float64 {
			return o.Metric.Delta(labs[i], labs[j])
		})
	} else {
		buf := fillParallel(labs, o.Metric, o.Workers)
		d, err = matrix.NewDistance(n, func(i, j int) float64 { return buf[i*n+j] })
	}
	if err != nil {
		return nil, fmt.Errorf("distance: build %s: %w", o.Metric, err)
	}

	return d, nil
}

// fillParallel computes the strict upper triangle into a pre-sized buffer.
// Rows are dealt round-robin so long upper rows and short lower rows
// spread evenly; every worker writes disjoint cells.
func fillParallel(labs []colorspace.Lab, m Metric, workers int) []float64 {
	n := len(labs)
	if workers > n {
		workers = n
	}
	buf := make([]float64, n*n)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(first int) {
			defer wg.Done()
			for i := first; i < n; i += workers {
				for j := i + 1; j < n; j++ {
					buf[i*n+j] = m.Delta(labs[i], labs[j])
				}
			}
		}(w)
	}
	wg.Wait()

	return buf
}

// Euclidean builds the CIE76 (Euclidean-in-Lab) distance matrix.
func Euclidean(labs []colorspace.Lab) (*matrix.Distance, error) {
	return Build(labs, &Options{Metric: CIE76})
}

// Standard builds the CIEDE2000 distance matrix.
func Standard(labs []colorspace.Lab) (*matrix.Distance, error) {
	return Build(labs, &Options{Metric: CIEDE2000})
}

// DeltaL builds the signed lightness-difference matrix: entry (i,j) is
// L_i − L_j, so (j,i) = −(i,j) and the diagonal is zero.
//
// Errors: matrix.ErrNaNInf for non-finite lightness differences.
func DeltaL(labs []colorspace.Lab) (*matrix.Antisymmetric, error) {
	a, err := matrix.NewAntisymmetric(len(labs), func(i, j int) float64 {
		return labs[i].L - labs[j].L
	})
	if err != nil {
		return nil, fmt.Errorf("distance: delta L: %w", err)
	}

	return a, nil
}
