package colorspace_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/cvdpalette/colorspace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComplementInvolution(t *testing.T) {
	t.Parallel()

	c := colorspace.Lab{L: 50, A: 25, B: -25}
	assert.Equal(t, colorspace.Lab{L: 50, A: -25, B: 25}, colorspace.Complement(c))

	for _, x := range []colorspace.Lab{c, {L: 12.345, A: -0.1, B: 1e-9}, {}} {
		assert.Equal(t, x, colorspace.Complement(colorspace.Complement(x)))
	}
}

func TestInterpolate(t *testing.T) {
	t.Parallel()

	a := colorspace.Lab{L: 50, A: 0, B: 0}
	b := colorspace.Lab{L: 75, A: -25, B: 25}

	got, err := colorspace.Interpolate(a, b, 5)
	require.NoError(t, err)
	want := []colorspace.Lab{
		{L: 50, A: 0, B: 0},
		{L: 56.25, A: -6.25, B: 6.25},
		{L: 62.5, A: -12.5, B: 12.5},
		{L: 68.75, A: -18.75, B: 18.75},
		{L: 75, A: -25, B: 25},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Interpolate mismatch (-want +got):\n%s", diff)
	}
}

func TestInterpolateEndpointsAndMidpoint(t *testing.T) {
	t.Parallel()

	a := colorspace.Lab{L: 12.3, A: -45.6, B: 78.9}
	b := colorspace.Lab{L: 98.7, A: 65.4, B: -32.1}
	for _, n := range []int{2, 3, 7, 10, 101} {
		got, err := colorspace.Interpolate(a, b, n)
		require.NoError(t, err)
		require.Len(t, got, n)
		assert.Equal(t, a, got[0], "n=%d", n)
		assert.Equal(t, b, got[n-1], "n=%d", n)
		if n%2 == 1 {
			mid := colorspace.Lab{L: (a.L + b.L) / 2, A: (a.A + b.A) / 2, B: (a.B + b.B) / 2}
			assert.Equal(t, mid, got[n/2], "n=%d", n)
		}
	}
}

func TestInterpolateDegenerate(t *testing.T) {
	t.Parallel()

	a := colorspace.Lab{L: 1, A: 2, B: 3}
	got, err := colorspace.Interpolate(a, colorspace.Lab{}, 1)
	require.NoError(t, err)
	assert.Equal(t, []colorspace.Lab{a}, got)

	for _, n := range []int{0, -3} {
		_, err = colorspace.Interpolate(a, a, n)
		require.ErrorIs(t, err, colorspace.ErrInvalidArgument)
	}
}

func TestInterpolateStops(t *testing.T) {
	t.Parallel()

	stops := []colorspace.Lab{{L: 0}, {L: 50, A: 10}, {L: 100}}
	got, err := colorspace.InterpolateStops(stops, 5)
	require.NoError(t, err)
	want := []colorspace.Lab{{L: 0}, {L: 25, A: 5}, {L: 50, A: 10}, {L: 75, A: 5}, {L: 100}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("InterpolateStops mismatch (-want +got):\n%s", diff)
	}

	two, err := colorspace.InterpolateStops(stops[:2], 3)
	require.NoError(t, err)
	assert.Equal(t, colorspace.Lab{L: 25, A: 5}, two[1])

	one, err := colorspace.InterpolateStops(stops[1:2], 3)
	require.NoError(t, err)
	assert.Equal(t, []colorspace.Lab{stops[1], stops[1], stops[1]}, one)

	first, err := colorspace.InterpolateStops(stops, 1)
	require.NoError(t, err)
	assert.Equal(t, []colorspace.Lab{stops[0]}, first)

	_, err = colorspace.InterpolateStops(nil, 3)
	require.ErrorIs(t, err, colorspace.ErrInvalidArgument)
	_, err = colorspace.InterpolateStops(stops, 0)
	require.ErrorIs(t, err, colorspace.ErrInvalidArgument)
}

func TestLabString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Lab(53.24, 80.09, -0.50)", colorspace.Lab{L: 53.2408, A: 80.0925, B: -0.5}.String())
}
