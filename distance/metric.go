// SPDX-License-Identifier: MIT

package distance

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/cvdpalette/colorspace"
	"github.com/lucasb-eyer/go-colorful"
)

// ErrUnknownMetric is returned by ParseMetric for unrecognised names.
var ErrUnknownMetric = errors.New("distance: unknown metric")

// Metric selects the colour-difference formula.
type Metric int

const (
	// CIEDE2000 is the CIE 2000 colour difference (default).
	CIEDE2000 Metric = iota

	// CIE76 is plain Euclidean distance in Lab.
	CIE76

	// CIE94 is the CIE 1994 graphic-arts formula. It is not symmetric in its
	// arguments; the first argument is the reference colour.
	CIE94
)

// deltaScale converts go-colorful's 0–1 Lab units back to ΔE units.
const deltaScale = 100.0

var metricNames = map[Metric]string{
	CIEDE2000: "ciede2000",
	CIE76:     "cie76",
	CIE94:     "cie94",
}

// String returns the lowercase metric name used in config files and flags.
func (m Metric) String() string {
	if s, ok := metricNames[m]; ok {
		return s
	}

	return fmt.Sprintf("Metric(%d)", int(m))
}

// ParseMetric maps a name (case-insensitive) to a Metric.
// Accepted aliases: "euclidean" for CIE76, "standard"/"de2000" for CIEDE2000.
func ParseMetric(s string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ciede2000", "de2000", "standard":
		return CIEDE2000, nil
	case "cie76", "euclidean":
		return CIE76, nil
	case "cie94":
		return CIE94, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownMetric, s)
}

// UnmarshalText lets a Metric be decoded directly from text-based formats.
func (m *Metric) UnmarshalText(text []byte) error {
	v, err := ParseMetric(string(text))
	if err != nil {
		return err
	}
	*m = v

	return nil
}

// MarshalText renders the metric name.
func (m Metric) MarshalText() ([]byte, error) {
	if _, ok := metricNames[m]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMetric, int(m))
	}

	return []byte(m.String()), nil
}

// Delta returns the ΔE between a (reference) and b under m.
// Unknown metrics fall back to CIEDE2000.
func (m Metric) Delta(a, b colorspace.Lab) float64 {
	ca, cb := toColorful(a), toColorful(b)
	switch m {
	case CIE76:
		return ca.DistanceCIE76(cb) * deltaScale
	case CIE94:
		return ca.DistanceCIE94(cb) * deltaScale
	default:
		return ca.DistanceCIEDE2000(cb) * deltaScale
	}
}

// toColorful keeps the colour unclamped so out-of-gamut Lab values
// survive the round trip through go-colorful's RGB representation.
func toColorful(c colorspace.Lab) colorful.Color {
	return colorful.Lab(c.L/deltaScale, c.A/deltaScale, c.B/deltaScale)
}
