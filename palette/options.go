// SPDX-License-Identifier: MIT

package palette

import (
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/katalvlaran/cvdpalette/distance"
)

// DefaultSimilarityThreshold is the ΔE below which two colours count as
// near-duplicates.
const DefaultSimilarityThreshold = 10.0

// Options configures Generate.
//
// Fields:
//   - SimilarityThreshold: ΔE below which two colours are near-duplicates.
//     Must be finite and > 0.
//   - Metric: colour-difference formula for the distance matrix.
//   - Workers: goroutines for the distance matrix (≤ 1 means sequential).
//   - Logger: receives debug events; nil discards them.
type Options struct {
	SimilarityThreshold float64
	Metric              distance.Metric
	Workers             int
	Logger              *slog.Logger
}

// DefaultOptions returns threshold 10 ΔE, CIEDE2000, one worker, no logging.
func DefaultOptions() Options {
	return Options{
		SimilarityThreshold: DefaultSimilarityThreshold,
		Metric:              distance.CIEDE2000,
		Workers:             1,
	}
}

// Validate checks the threshold.
func (o Options) Validate() error {
	t := o.SimilarityThreshold
	if math.IsNaN(t) || math.IsInf(t, 0) || t <= 0 {
		return fmt.Errorf("%w: similarity threshold %v must be finite and > 0", ErrInvalidArgument, t)
	}

	return nil
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}

	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
