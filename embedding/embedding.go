package embedding

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

var (
	// ErrEmpty is returned when a collection is constructed without vectors.
	ErrEmpty = errors.New("embedding: no vectors")
)

// ErrDimensionMismatch indicates an embedding with unexpected dimensionality.
type ErrDimensionMismatch struct {
	Position int
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("embedding: vector %d has dimension %d, expected %d", e.Position, e.Actual, e.Expected)
}

// Embedder produces a fixed-length embedding vector for one sample.
// Implementations wrap an externally trained embedding network and must be
// safe for concurrent use.
type Embedder interface {
	Embed(ctx context.Context, sample []float32) ([]float32, error)
}

// Func adapts a plain function to the Embedder interface.
type Func func(ctx context.Context, sample []float32) ([]float32, error)

// Embed calls f.
func (f Func) Embed(ctx context.Context, sample []float32) ([]float32, error) {
	return f(ctx, sample)
}

// Collection is an ordered set of fixed-dimension embedding vectors.
// Entries are aligned to their source detections by position only; there is
// no explicit identifier.
type Collection struct {
	vectors [][]float32
	dim     int
}

// NewCollection creates a Collection, validating uniform dimensionality.
// The vectors are retained, not copied.
func NewCollection(vectors [][]float32) (*Collection, error) {
	if len(vectors) == 0 {
		return nil, ErrEmpty
	}
	dim := len(vectors[0])
	for i, v := range vectors {
		if len(v) != dim {
			return nil, &ErrDimensionMismatch{Position: i, Expected: dim, Actual: len(v)}
		}
	}
	return &Collection{vectors: vectors, dim: dim}, nil
}

// Len returns the number of embeddings.
func (c *Collection) Len() int { return len(c.vectors) }

// Dimension returns the embedding dimensionality.
func (c *Collection) Dimension() int { return c.dim }

// Vector returns the embedding at position i.
// The returned slice aliases internal memory; treat it as read-only.
func (c *Collection) Vector(i int) []float32 { return c.vectors[i] }

// Vectors returns the backing vector slice.
// The result aliases internal memory; treat it as read-only.
func (c *Collection) Vectors() [][]float32 { return c.vectors }

// Options contains configuration options for batch embedding.
type Options struct {
	// Parallelism bounds the number of samples embedded concurrently.
	// Values <= 1 embed sequentially. Output order is positional either way.
	Parallelism int
}

// EmbedAll runs the embedder over every sample and collects the results in
// sample order.
func EmbedAll(ctx context.Context, emb Embedder, samples [][]float32, optFns ...func(o *Options)) (*Collection, error) {
	opts := Options{Parallelism: 1}
	for _, fn := range optFns {
		fn(&opts)
	}

	if len(samples) == 0 {
		return nil, ErrEmpty
	}

	vectors := make([][]float32, len(samples))

	if opts.Parallelism <= 1 {
		for i, s := range samples {
			v, err := emb.Embed(ctx, s)
			if err != nil {
				return nil, fmt.Errorf("embedding: sample %d: %w", i, err)
			}
			vectors[i] = v
		}
		return NewCollection(vectors)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Parallelism)
	for i, s := range samples {
		g.Go(func() error {
			v, err := emb.Embed(gctx, s)
			if err != nil {
				return fmt.Errorf("embedding: sample %d: %w", i, err)
			}
			vectors[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return NewCollection(vectors)
}
