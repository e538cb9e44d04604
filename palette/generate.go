// SPDX-License-Identifier: MIT

package palette

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cvdpalette/colorspace"
	"github.com/katalvlaran/cvdpalette/distance"
	"github.com/katalvlaran/cvdpalette/filter"
	"github.com/katalvlaran/cvdpalette/matrix"
	"github.com/katalvlaran/cvdpalette/selector"
)

// Generate selects count mutually distinct colours from universe.
// A nil opts means DefaultOptions().
//
// Errors:
//   - ErrInvalidArgument: count < 1 or a bad similarity threshold.
//   - ErrInvalidColor: a universe colour is out of range (index reported).
//   - ErrInsufficientUniverse: fewer than count colours survive deduplication.
//
// Complexity: O(k²) distance evaluations plus O(k³) pruning for k survivors.
func Generate(universe []colorspace.RGB, count int, opts *Options) ([]colorspace.RGB, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if count < 1 {
		return nil, fmt.Errorf("%w: palette size %d < 1", ErrInvalidArgument, count)
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	log := o.logger()

	labs, err := colorspace.MapRGBToLab(universe)
	if err != nil {
		return nil, fmt.Errorf("palette: %w", err)
	}
	d, err := distance.Build(labs, &distance.Options{Metric: o.Metric, Workers: o.Workers})
	if err != nil {
		return nil, fmt.Errorf("palette: %w", err)
	}

	idx, err := filter.Dedupe(d, o.SimilarityThreshold)
	if err != nil {
		return nil, fmt.Errorf("palette: %w", err)
	}
	log.Debug("palette.dedupe",
		"universe", len(universe),
		"kept", len(idx),
		"threshold", o.SimilarityThreshold,
		"metric", o.Metric.String(),
	)
	if len(idx) < count {
		return nil, fmt.Errorf("%w: %d distinct colors for a palette of %d", ErrInsufficientUniverse, len(idx), count)
	}
	if d, err = d.Induced(idx); err != nil {
		return nil, fmt.Errorf("palette: %w", err)
	}

	for len(idx) > count {
		var removed int
		if d, idx, removed, err = prune(d, idx); err != nil {
			return nil, fmt.Errorf("palette: %w", err)
		}
		log.Debug("palette.prune", "removed", removed, "remaining", len(idx))
	}

	order := separationOrder(d)
	picked := make([]colorspace.Lab, len(order))
	for k, local := range order {
		picked[k] = labs[idx[local]]
	}
	log.Debug("palette.done", "count", len(picked))

	return colorspace.MapLabToRGB(picked), nil
}

// prune drops one member of the least separated pair of d. idx maps local
// positions of d back to universe indices; the reduced matrix and mapping are
// returned together with the universe index that was dropped.
func prune(d *matrix.Distance, idx []int) (*matrix.Distance, []int, int, error) {
	pair, ok := selector.MinOffDiagonal(d)
	if !ok {
		return nil, nil, 0, fmt.Errorf("prune: no pair among %d colors", d.Len())
	}

	local := make([]int, d.Len())
	for i := range local {
		local[i] = i
	}
	pivots := []matrix.IndexPair{pair, pair.Swap()}
	candidates, err := selector.Split(local, pivots)
	if err != nil {
		return nil, nil, 0, err
	}

	var best *matrix.Distance
	chosen := 0
	bestMin, bestTotal := math.Inf(-1), math.Inf(-1)
	for k, keep := range candidates {
		sub, err := d.Induced(keep)
		if err != nil {
			return nil, nil, 0, err
		}
		minSep, total := separation(sub)
		if best == nil || minSep > bestMin || (minSep == bestMin && total > bestTotal) {
			best, chosen, bestMin, bestTotal = sub, k, minSep, total
		}
	}

	next := make([]int, len(candidates[chosen]))
	for k, l := range candidates[chosen] {
		next[k] = idx[l]
	}

	return best, next, idx[pivots[chosen].Row], nil
}

// separation scores a candidate: its minimum pairwise distance (+Inf when it
// has fewer than two members) and its total pairwise separation.
func separation(d *matrix.Distance) (minSep, total float64) {
	minSep = math.Inf(1)
	if p, ok := selector.MinOffDiagonal(d); ok {
		minSep, _ = d.At(p.Row, p.Col)
	}
	for _, s := range matrix.RowSums(d) {
		total += s
	}

	return minSep, total
}

// separationOrder lists the local indices of d most-separated pair first,
// then each further index as it appears in the ranked pairs. Members that no
// ranked pair mentions (a single survivor) follow in index order.
func separationOrder(d *matrix.Distance) []int {
	order := make([]int, 0, d.Len())
	seen := make([]bool, d.Len())
	add := func(i int) {
		if !seen[i] {
			seen[i] = true
			order = append(order, i)
		}
	}
	for _, p := range selector.RankedPositions(d, 0) {
		add(p.Row)
		add(p.Col)
	}
	for i := range seen {
		add(i)
	}

	return order
}
