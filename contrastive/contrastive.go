package contrastive

import (
	"context"
	"errors"

	"github.com/hupe1980/simtrack/distance"
	"github.com/hupe1980/simtrack/embedding"
	"github.com/hupe1980/simtrack/pairs"
)

const (
	// DefaultMargin is the separation enforced for negative pairs.
	DefaultMargin float32 = 1

	// DefaultThreshold is the distance below which a pair is classified as
	// same-class when computing accuracy.
	DefaultThreshold float32 = 0.5
)

// ErrEmptySet is returned when evaluating an empty pair set.
var ErrEmptySet = errors.New("contrastive: empty pair set")

// Loss computes the contrastive loss for one pair with embedding distance d.
// label is 1 for a positive (same class) pair, 0 for a negative pair.
func Loss(d float32, label int, margin float32) float32 {
	if label == 1 {
		return d * d
	}
	m := margin - d
	if m < 0 {
		m = 0
	}
	return m * m
}

// Evaluate returns the mean contrastive loss of an embedding function over a
// pair set.
func Evaluate(ctx context.Context, emb embedding.Embedder, set *pairs.Set, margin float32) (float32, error) {
	if set.Len() == 0 {
		return 0, ErrEmptySet
	}

	var total float32
	for i := 0; i < set.Len(); i++ {
		d, err := pairDistance(ctx, emb, set, i)
		if err != nil {
			return 0, err
		}
		total += Loss(d, set.Labels[i], margin)
	}
	return total / float32(set.Len()), nil
}

// Accuracy returns the fraction of pairs classified correctly when pairs
// with embedding distance below threshold are predicted same-class.
func Accuracy(ctx context.Context, emb embedding.Embedder, set *pairs.Set, threshold float32) (float32, error) {
	if set.Len() == 0 {
		return 0, ErrEmptySet
	}

	correct := 0
	for i := 0; i < set.Len(); i++ {
		d, err := pairDistance(ctx, emb, set, i)
		if err != nil {
			return 0, err
		}
		predicted := 0
		if d < threshold {
			predicted = 1
		}
		if predicted == set.Labels[i] {
			correct++
		}
	}
	return float32(correct) / float32(set.Len()), nil
}

func pairDistance(ctx context.Context, emb embedding.Embedder, set *pairs.Set, i int) (float32, error) {
	a, err := emb.Embed(ctx, set.Left[i])
	if err != nil {
		return 0, err
	}
	b, err := emb.Embed(ctx, set.Right[i])
	if err != nil {
		return 0, err
	}
	return distance.L2(a, b), nil
}
