// SPDX-License-Identifier: MIT

// Package palette assembles colour-vision-deficiency aware palettes.
//
// Generate turns a candidate universe of sRGB colours into an ordered palette
// of exactly count colours:
//
//  1. Convert the universe to Lab.
//  2. Build the pairwise distance matrix (Options.Metric, Options.Workers).
//  3. Drop near-duplicates closer than Options.SimilarityThreshold; the
//     earliest member of each cluster survives.
//  4. Fail with ErrInsufficientUniverse if fewer than count colours remain.
//     The result is never silently truncated.
//  5. While too many colours remain, look at the least separated pair and
//     drop whichever member leaves the larger minimum pairwise distance
//     (ties: larger total separation, then the pair's first member).
//  6. Order the survivors most-separated pair first and convert back to RGB.
//
// Gradient is the interpolating alternative: n colours evenly spaced in Lab
// between two endpoints.
//
// The package logs debug events (palette.dedupe, palette.prune,
// palette.done) to Options.Logger; a nil logger discards them.
package palette
