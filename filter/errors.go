// SPDX-License-Identifier: MIT

package filter

import "errors"

// ErrBadThreshold indicates a similarity threshold that is NaN, ±Inf or ≤ 0.
var ErrBadThreshold = errors.New("filter: threshold must be finite and > 0")
