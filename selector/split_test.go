package selector_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/cvdpalette/matrix"
	"github.com/katalvlaran/cvdpalette/selector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	t.Parallel()

	universe := []string{"a", "b", "c", "d"}
	got, err := selector.Split(universe, []matrix.IndexPair{{Row: 0, Col: 3}, {Row: 2, Col: 1}, {Row: 3, Col: 0}})
	require.NoError(t, err)
	want := [][]string{{"b", "c", "d"}, {"a", "b", "d"}, {"a", "b", "c"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Split mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, universe, "input must not be mutated")

	none, err := selector.Split(universe, nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSplitPivotOutOfRange(t *testing.T) {
	t.Parallel()

	for _, p := range []matrix.IndexPair{{Row: -1}, {Row: 3}} {
		_, err := selector.Split([]int{1, 2, 3}, []matrix.IndexPair{{Row: 0}, p})
		require.ErrorIs(t, err, selector.ErrPivotOutOfRange)
	}
}

func TestSplitProduct(t *testing.T) {
	t.Parallel()

	got := selector.SplitProduct([]int{1, 2, 3, 4, 5}, [][]int{{1, 3}, {2, 4}})
	want := [][]int{{3, 4, 5}, {2, 3, 5}, {1, 4, 5}, {1, 2, 5}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SplitProduct mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, [][]int{{1, 2}}, selector.SplitProduct([]int{1, 2}, nil))
	assert.Empty(t, selector.SplitProduct([]int{1, 2}, [][]int{{1}, {}}))
}
