// SPDX-License-Identifier: MIT

package selector

import "errors"

// ErrPivotOutOfRange indicates a pivot whose Row is not a universe index.
var ErrPivotOutOfRange = errors.New("selector: pivot out of range")
