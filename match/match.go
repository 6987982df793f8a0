package match

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/simtrack/distance"
)

var (
	// ErrNoEmbeddings is returned when either embedding collection is empty.
	ErrNoEmbeddings = errors.New("match: empty embedding collection")
)

// ErrShapeMismatch indicates embedding vectors of differing dimensionality.
type ErrShapeMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrShapeMismatch) Error() string {
	return fmt.Sprintf("match: dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// NoMatch is the match index reported for a row whose candidates were all
// rejected by the filter.
const NoMatch = -1

// Options contains configuration options for matching.
type Options struct {
	// Distance computes the distance between two embeddings.
	// If nil, Euclidean (L2) distance is used.
	Distance distance.Func

	// Parallelism bounds the number of matrix rows computed concurrently.
	// Values <= 1 keep the computation fully sequential. The output is
	// identical either way; rows are independent.
	Parallelism int

	// Filter restricts which frame-2 candidates a row may match.
	// If nil, all candidates are eligible.
	Filter func(j int) bool
}

// DefaultOptions contains the default matching options.
var DefaultOptions = Options{
	Parallelism: 1,
}

// DistanceMatrix computes the full pairwise distance matrix between two
// embedding collections: entry (i, j) is the distance between e1[i] and
// e2[j]. All vectors must share one dimensionality.
//
// The matrix is recomputed per call and never cached.
func DistanceMatrix(ctx context.Context, e1, e2 [][]float32, optFns ...func(o *Options)) ([][]float32, error) {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	return distanceMatrix(ctx, e1, e2, opts)
}

func distanceMatrix(ctx context.Context, e1, e2 [][]float32, opts Options) ([][]float32, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(e1) == 0 || len(e2) == 0 {
		return nil, ErrNoEmbeddings
	}

	dim := len(e1[0])
	for _, v := range e1 {
		if len(v) != dim {
			return nil, &ErrShapeMismatch{Expected: dim, Actual: len(v)}
		}
	}
	for _, v := range e2 {
		if len(v) != dim {
			return nil, &ErrShapeMismatch{Expected: dim, Actual: len(v)}
		}
	}

	dist := opts.Distance
	if dist == nil {
		dist = distance.L2
	}

	// Single backing array keeps rows contiguous.
	backing := make([]float32, len(e1)*len(e2))
	matrix := make([][]float32, len(e1))
	for i := range matrix {
		matrix[i] = backing[i*len(e2) : (i+1)*len(e2)]
	}

	row := func(i int) {
		for j, b := range e2 {
			matrix[i][j] = dist(e1[i], b)
		}
	}

	if opts.Parallelism <= 1 {
		for i := range e1 {
			row(i)
		}
		return matrix, nil
	}

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(opts.Parallelism)
	for i := range e1 {
		g.Go(func() error {
			row(i)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return matrix, nil
}

// Nearest reports, for each frame-1 embedding, the index of its closest
// frame-2 embedding, along with the full distance matrix for inspection.
// Ties break toward the lowest frame-2 index.
//
// The assignment is greedy: duplicate matches are expected behavior, not an
// error.
func Nearest(ctx context.Context, e1, e2 [][]float32, optFns ...func(o *Options)) ([]int, [][]float32, error) {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	matrix, err := distanceMatrix(ctx, e1, e2, opts)
	if err != nil {
		return nil, nil, err
	}

	matches := make([]int, len(matrix))
	for i, row := range matrix {
		matches[i] = argmin(row, opts.Filter)
	}
	return matches, matrix, nil
}

// argmin returns the index of the smallest value in row, skipping filtered
// candidates. The first minimum wins, which yields lowest-index tie-breaks.
func argmin(row []float32, filter func(j int) bool) int {
	best := NoMatch
	var bestDist float32
	for j, d := range row {
		if filter != nil && !filter(j) {
			continue
		}
		if best == NoMatch || d < bestDist {
			best = j
			bestDist = d
		}
	}
	return best
}
