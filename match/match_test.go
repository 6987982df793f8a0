package match

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/simtrack/distance"
)

func TestDistanceMatrix(t *testing.T) {
	ctx := context.Background()

	t.Run("TwoPoints", func(t *testing.T) {
		e1 := [][]float32{{0, 0}, {5, 5}}
		e2 := [][]float32{{0, 0}, {5, 5}}

		matrix, err := DistanceMatrix(ctx, e1, e2)
		require.NoError(t, err)
		require.Len(t, matrix, 2)

		assert.InDelta(t, 0, matrix[0][0], 1e-5)
		assert.InDelta(t, 7.0710678, matrix[0][1], 1e-4)
		assert.InDelta(t, 7.0710678, matrix[1][0], 1e-4)
		assert.InDelta(t, 0, matrix[1][1], 1e-5)
	})

	t.Run("Rectangular", func(t *testing.T) {
		e1 := [][]float32{{0}}
		e2 := [][]float32{{1}, {2}, {3}}

		matrix, err := DistanceMatrix(ctx, e1, e2)
		require.NoError(t, err)
		require.Len(t, matrix, 1)
		assert.Equal(t, []float32{1, 2, 3}, matrix[0])
	})

	t.Run("ShapeMismatch", func(t *testing.T) {
		_, err := DistanceMatrix(ctx, [][]float32{{1, 2}}, [][]float32{{1, 2, 3}})
		var sm *ErrShapeMismatch
		require.ErrorAs(t, err, &sm)
		assert.Equal(t, 2, sm.Expected)
		assert.Equal(t, 3, sm.Actual)

		_, err = DistanceMatrix(ctx, [][]float32{{1, 2}, {1}}, [][]float32{{1, 2}})
		assert.ErrorAs(t, err, &sm)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := DistanceMatrix(ctx, nil, [][]float32{{1}})
		assert.ErrorIs(t, err, ErrNoEmbeddings)

		_, err = DistanceMatrix(ctx, [][]float32{{1}}, nil)
		assert.ErrorIs(t, err, ErrNoEmbeddings)
	})

	t.Run("ParallelMatchesSequential", func(t *testing.T) {
		e1 := [][]float32{{0, 1}, {2, 3}, {4, 5}, {6, 7}}
		e2 := [][]float32{{7, 6}, {5, 4}, {3, 2}, {1, 0}}

		seq, err := DistanceMatrix(ctx, e1, e2)
		require.NoError(t, err)

		par, err := DistanceMatrix(ctx, e1, e2, func(o *Options) {
			o.Parallelism = 4
		})
		require.NoError(t, err)

		assert.Equal(t, seq, par)
	})

	t.Run("CustomDistance", func(t *testing.T) {
		matrix, err := DistanceMatrix(ctx, [][]float32{{1, 2, 3}}, [][]float32{{4, 5, 6}}, func(o *Options) {
			o.Distance = distance.SquaredL2
		})
		require.NoError(t, err)
		assert.InDelta(t, 27, matrix[0][0], 1e-5)
	})
}

func TestNearest(t *testing.T) {
	ctx := context.Background()

	t.Run("Identity", func(t *testing.T) {
		e := [][]float32{{0, 0}, {5, 5}, {-3, 4}}

		matches, matrix, err := Nearest(ctx, e, e)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 1, 2}, matches)
		for i := range e {
			assert.InDelta(t, 0, matrix[i][i], 1e-5)
		}
	})

	t.Run("Crossed", func(t *testing.T) {
		e1 := [][]float32{{0, 0}, {5, 5}}
		e2 := [][]float32{{5, 5}, {0, 0}}

		matches, _, err := Nearest(ctx, e1, e2)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 0}, matches)
	})

	t.Run("TieBreaksLowestIndex", func(t *testing.T) {
		e1 := [][]float32{{0}}
		e2 := [][]float32{{1}, {-1}, {1}}

		matches, _, err := Nearest(ctx, e1, e2)
		require.NoError(t, err)
		assert.Equal(t, []int{1}, matches)

		// Equidistant candidates at indices 0 and 2.
		matches, _, err = Nearest(ctx, e1, [][]float32{{2}, {-2}, {-2}})
		require.NoError(t, err)
		assert.Equal(t, []int{0}, matches)
	})

	t.Run("DuplicatesAllowed", func(t *testing.T) {
		// Both frame-1 entries are closest to the same frame-2 entry.
		e1 := [][]float32{{0, 0}, {1, 0}}
		e2 := [][]float32{{0.4, 0}, {100, 100}}

		matches, _, err := Nearest(ctx, e1, e2)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 0}, matches)
	})

	t.Run("Filter", func(t *testing.T) {
		e1 := [][]float32{{0}}
		e2 := [][]float32{{0}, {1}}

		matches, _, err := Nearest(ctx, e1, e2, func(o *Options) {
			o.Filter = func(j int) bool { return j != 0 }
		})
		require.NoError(t, err)
		assert.Equal(t, []int{1}, matches)

		matches, _, err = Nearest(ctx, e1, e2, func(o *Options) {
			o.Filter = func(j int) bool { return false }
		})
		require.NoError(t, err)
		assert.Equal(t, []int{NoMatch}, matches)
	})

	t.Run("CancelledContext", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, _, err := Nearest(cctx, [][]float32{{0}}, [][]float32{{0}})
		assert.ErrorIs(t, err, context.Canceled)
	})
}
