package distance_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/cvdpalette/colorspace"
	"github.com/katalvlaran/cvdpalette/distance"
	"github.com/katalvlaran/cvdpalette/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func primaries(t *testing.T) []colorspace.Lab {
	t.Helper()
	labs, err := colorspace.MapRGBToLab([]colorspace.RGB{
		colorspace.RGB8(255, 0, 0),
		colorspace.RGB8(0, 255, 0),
		colorspace.RGB8(0, 0, 255),
	})
	require.NoError(t, err)
	return labs
}

// sampleUniverse returns a deterministic spread of Lab colours.
func sampleUniverse(t *testing.T, n int) []colorspace.Lab {
	t.Helper()
	rgbs := make([]colorspace.RGB, n)
	for i := range rgbs {
		rgbs[i] = colorspace.RGB8(uint8(i*37%256), uint8(i*91%256), uint8(i*53%256))
	}
	labs, err := colorspace.MapRGBToLab(rgbs)
	require.NoError(t, err)
	return labs
}

func TestEuclideanReference(t *testing.T) {
	t.Parallel()

	d, err := distance.Euclidean([]colorspace.Lab{{L: 50}, {L: 75, A: -25, B: 25}})
	require.NoError(t, err)
	require.Equal(t, 2, d.Len())

	v00, _ := d.At(0, 0)
	v01, _ := d.At(0, 1)
	v10, _ := d.At(1, 0)
	v11, _ := d.At(1, 1)
	assert.Zero(t, v00)
	assert.Zero(t, v11)
	assert.InDelta(t, 43.30, v01, 0.01*43.30)
	assert.Equal(t, v01, v10)
}

func TestSymmetryAndZeroDiagonalForEveryMetric(t *testing.T) {
	t.Parallel()

	labs := sampleUniverse(t, 12)
	for _, m := range []distance.Metric{distance.CIE76, distance.CIE94, distance.CIEDE2000} {
		m := m
		t.Run(m.String(), func(t *testing.T) {
			t.Parallel()
			d, err := distance.Build(labs, &distance.Options{Metric: m})
			require.NoError(t, err)
			d.Do(func(i, j int, v float64) bool {
				mirror, _ := d.At(j, i)
				assert.Equal(t, v, mirror, "(%d,%d)", i, j)
				if i == j {
					assert.Zero(t, v)
				} else {
					assert.GreaterOrEqual(t, v, 0.0)
				}
				return true
			})
		})
	}
}

func TestCIE94UsesLowerIndexAsReference(t *testing.T) {
	t.Parallel()

	labs := primaries(t)
	d, err := distance.Build(labs, &distance.Options{Metric: distance.CIE94})
	require.NoError(t, err)
	v, _ := d.At(2, 0)
	assert.Equal(t, distance.CIE94.Delta(labs[0], labs[2]), v)
}

func TestStandardPrimariesOrdering(t *testing.T) {
	t.Parallel()

	d, err := distance.Standard(primaries(t))
	require.NoError(t, err)
	rg, _ := d.At(0, 1)
	rb, _ := d.At(0, 2)
	gb, _ := d.At(1, 2)
	assert.InDelta(t, 86.6, rg, 1.0)
	assert.InDelta(t, 52.9, rb, 1.0)
	assert.InDelta(t, 83.6, gb, 1.0)
	assert.Greater(t, rg, gb)
	assert.Greater(t, gb, rb)
}

func TestParallelBuildMatchesSequential(t *testing.T) {
	t.Parallel()

	labs := sampleUniverse(t, 33)
	seq, err := distance.Build(labs, nil)
	require.NoError(t, err)
	for _, workers := range []int{2, 4, 64} {
		par, err := distance.Build(labs, &distance.Options{Metric: distance.CIEDE2000, Workers: workers})
		require.NoError(t, err)
		if diff := cmp.Diff(matrix.ToSlices(seq), matrix.ToSlices(par)); diff != "" {
			t.Errorf("workers=%d mismatch (-seq +par):\n%s", workers, diff)
		}
	}
}

func TestBuildEdgeCases(t *testing.T) {
	t.Parallel()

	d, err := distance.Build(nil, nil)
	require.NoError(t, err)
	assert.Zero(t, d.Len())

	one, err := distance.Build([]colorspace.Lab{{L: 40}}, &distance.Options{Workers: 8})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0}}, matrix.ToSlices(one))

	_, err = distance.Build([]colorspace.Lab{{L: 10}, {L: math.NaN()}}, nil)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestDeltaL(t *testing.T) {
	t.Parallel()

	a, err := distance.DeltaL([]colorspace.Lab{{L: 50}, {L: 75, A: -25, B: 25}})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, -25}, {25, 0}}, matrix.ToSlices(a))

	labs := sampleUniverse(t, 7)
	a, err = distance.DeltaL(labs)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateAntisymmetric(a, 0))

	_, err = distance.DeltaL([]colorspace.Lab{{L: math.Inf(1)}, {L: 0}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}
