// SPDX-License-Identifier: MIT

package colorspace

import "fmt"

// Lab is a CIELAB colour (D65). L is nominally in [0,100]; a and b are
// conventionally within about ±128 but unbounded.
type Lab struct {
	L, A, B float64
}

// String renders the colour as "Lab(L, a, b)" with two decimals.
func (c Lab) String() string {
	return fmt.Sprintf("Lab(%.2f, %.2f, %.2f)", c.L, c.A, c.B)
}

// Complement returns (L, −a, −b): the opposite hue at equal lightness.
// Applying it twice yields the input exactly.
func Complement(c Lab) Lab {
	return Lab{L: c.L, A: -c.A, B: -c.B}
}
