// SPDX-License-Identifier: MIT

package colorspace

import "fmt"

// Interpolate returns exactly n colours evenly spaced on the straight line
// from a (index 0) to b (index n−1), both inclusive.
//
// Each step is computed as (1−t)·a + t·b, so the endpoints are reproduced
// exactly and, for odd n, the middle element equals the component-wise mean.
//
//	n == 1 → [a]
//	n <  1 → ErrInvalidArgument
func Interpolate(a, b Lab, n int) ([]Lab, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: interpolation count %d < 1", ErrInvalidArgument, n)
	}
	if n == 1 {
		return []Lab{a}, nil
	}

	out := make([]Lab, n)
	last := float64(n - 1)
	for i := range out {
		out[i] = lerp(a, b, float64(i)/last)
	}

	return out, nil
}

// InterpolateStops returns n colours evenly spaced along the piecewise-linear
// path through stops. The first and last stops are reproduced exactly.
// A single stop yields n copies of it.
//
// Errors: ErrInvalidArgument when n < 1 or stops is empty.
func InterpolateStops(stops []Lab, n int) ([]Lab, error) {
	if len(stops) == 0 {
		return nil, fmt.Errorf("%w: no interpolation stops", ErrInvalidArgument)
	}
	if len(stops) == 1 {
		if n < 1 {
			return nil, fmt.Errorf("%w: interpolation count %d < 1", ErrInvalidArgument, n)
		}
		out := make([]Lab, n)
		for i := range out {
			out[i] = stops[0]
		}
		return out, nil
	}
	if len(stops) == 2 {
		return Interpolate(stops[0], stops[1], n)
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: interpolation count %d < 1", ErrInvalidArgument, n)
	}
	if n == 1 {
		return []Lab{stops[0]}, nil
	}

	segments := float64(len(stops) - 1)
	last := float64(n - 1)
	out := make([]Lab, n)
	for i := range out {
		pos := float64(i) / last * segments
		seg := int(pos)
		if seg >= len(stops)-1 {
			seg = len(stops) - 2
		}
		out[i] = lerp(stops[seg], stops[seg+1], pos-float64(seg))
	}

	return out, nil
}

func lerp(a, b Lab, t float64) Lab {
	s := 1 - t
	return Lab{
		L: s*a.L + t*b.L,
		A: s*a.A + t*b.A,
		B: s*a.B + t*b.B,
	}
}
