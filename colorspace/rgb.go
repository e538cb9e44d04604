// SPDX-License-Identifier: MIT

package colorspace

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// MaxChannel is the upper bound of an RGB channel.
const MaxChannel = 255.0

// RGB is an sRGB colour with channels on the 0–255 scale and no alpha.
// Float channels let interpolated or clipped values survive without
// rounding; Uint8 rounds for output.
type RGB struct {
	R, G, B float64
}

var _ color.Color = RGB{}

// NewRGB returns a validated colour. Each channel must be finite and in [0,255].
func NewRGB(r, g, b float64) (RGB, error) {
	c := RGB{R: r, G: g, B: b}
	if err := c.Validate(); err != nil {
		return RGB{}, err
	}

	return c, nil
}

// RGB8 builds a colour from 8-bit channels; it is always valid.
func RGB8(r, g, b uint8) RGB {
	return RGB{R: float64(r), G: float64(g), B: float64(b)}
}

// FromUnit builds a colour from 0–1 channels (the go-colorful convention).
func FromUnit(r, g, b float64) (RGB, error) {
	return NewRGB(r*MaxChannel, g*MaxChannel, b*MaxChannel)
}

// ParseHex parses "#rrggbb" or "#rgb" (the leading '#' is optional).
func ParseHex(s string) (RGB, error) {
	h := strings.TrimSpace(s)
	h = strings.TrimPrefix(h, "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	h = "#" + h
	c, err := colorful.Hex(strings.ToLower(h))
	if err != nil {
		return RGB{}, fmt.Errorf("%w: hex %q: %v", ErrInvalidColor, s, err)
	}

	return FromUnit(c.R, c.G, c.B)
}

// Validate reports the first channel that is NaN, ±Inf or outside [0,255].
func (c RGB) Validate() error {
	for _, ch := range [...]struct {
		name string
		v    float64
	}{{"R", c.R}, {"G", c.G}, {"B", c.B}} {
		if math.IsNaN(ch.v) || math.IsInf(ch.v, 0) || ch.v < 0 || ch.v > MaxChannel {
			return fmt.Errorf("%w: channel %s=%v outside [0,%v]", ErrInvalidColor, ch.name, ch.v, MaxChannel)
		}
	}

	return nil
}

// Uint8 returns the channels rounded to the nearest 8-bit value.
// Out-of-range channels saturate.
func (c RGB) Uint8() (r, g, b uint8) {
	return to8(c.R), to8(c.G), to8(c.B)
}

// Unit returns the channels scaled to [0,1].
func (c RGB) Unit() (r, g, b float64) {
	return c.R / MaxChannel, c.G / MaxChannel, c.B / MaxChannel
}

// Hex renders the colour as "#rrggbb".
func (c RGB) Hex() string {
	r, g, b := c.Uint8()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// String implements fmt.Stringer.
func (c RGB) String() string { return c.Hex() }

// RGBA implements image/color.Color (alpha is always opaque).
func (c RGB) RGBA() (r, g, b, a uint32) {
	return c.colorful().Clamped().RGBA()
}

func (c RGB) colorful() colorful.Color {
	r, g, b := c.Unit()
	return colorful.Color{R: r, G: g, B: b}
}

func to8(v float64) uint8 {
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= MaxChannel:
		return 255
	}

	return uint8(math.Round(v))
}
