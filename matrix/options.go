// SPDX-License-Identifier: MIT

// Package matrix: numeric policy defaults (single source of truth).
//
// Notes:
//   - DefaultEpsilon governs structural checks (symmetry, zero diagonal) for
//     matrices ingested from raw rows. Matrices built from a fill callback are
//     exact by construction and never consult it.
//   - DefaultValidateNaNInf toggles finite-only enforcement on Dense.Set.
package matrix

const (
	// DefaultEpsilon defines the non-negative tolerance used by structural checks.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true
)
