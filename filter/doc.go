// SPDX-License-Identifier: MIT

// Package filter flags near-duplicate colours and ranks matrix cells against
// a threshold.
//
// Below and RankAbove are complementary scans over any matrix.Reader: for a
// threshold n they partition every cell whose value differs from n. Below
// keeps row-major order; RankAbove orders by descending value and breaks ties
// by row-major first occurrence.
//
// NearDuplicates and Dedupe work on a *matrix.Distance and only look at the
// upper triangle, since the matrix is symmetric.
//
// ExactMembership is a generic pre-filter over raw triples.
package filter
