// SPDX-License-Identifier: MIT

package distance

// Options configures Build.
//
// Fields:
//   - Metric: colour-difference formula (default CIEDE2000).
//   - Workers: goroutines used for the O(k²) cell computation.
//     Values ≤ 1 build sequentially.
//
// Example:
//
//	opts := distance.DefaultOptions()
//	opts.Metric = distance.CIE76
//	opts.Workers = runtime.NumCPU()
//	d, err := distance.Build(labs, &opts)
type Options struct {
	Metric  Metric
	Workers int
}

// DefaultOptions returns the default configuration: CIEDE2000, sequential.
func DefaultOptions() Options {
	return Options{Metric: CIEDE2000, Workers: 1}
}
