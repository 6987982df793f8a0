package simtrack

import (
	"context"
	"errors"
	"time"

	"github.com/hupe1980/simtrack/embedding"
	"github.com/hupe1980/simtrack/match"
)

// ErrNilEmbedder is returned when a Tracker is created without an embedder.
var ErrNilEmbedder = errors.New("simtrack: nil embedder")

// NoMatch marks an assignment whose detection found no eligible partner.
const NoMatch = match.NoMatch

// Assignment links a frame-1 detection to its best-matching frame-2
// detection under embedding distance.
type Assignment struct {
	// From is the frame-1 detection index.
	From int
	// To is the matched frame-2 detection index, or NoMatch.
	To int
	// Distance is the embedding-space Euclidean distance of the match.
	Distance float32
}

// Tracker associates detections across frames by appearance: detections are
// embedded with an externally trained network, then matched greedily by
// nearest embedding.
//
// Matching is not one-to-one; see package match for the exact semantics.
type Tracker struct {
	embedder embedding.Embedder
	opts     options
}

// New creates a Tracker around an embedding function.
func New(embedder embedding.Embedder, optFns ...Option) (*Tracker, error) {
	if embedder == nil {
		return nil, ErrNilEmbedder
	}
	return &Tracker{
		embedder: embedder,
		opts:     applyOptions(optFns),
	}, nil
}

// Associate embeds the detections of two frames and reports, for each
// frame-1 detection, its nearest frame-2 detection in embedding space.
func (t *Tracker) Associate(ctx context.Context, frame1, frame2 [][]float32) ([]Assignment, error) {
	start := time.Now()

	e1, err := t.embedFrame(ctx, frame1)
	if err != nil {
		t.opts.metricsCollector.RecordAssociate(len(frame1), time.Since(start), err)
		t.opts.logger.LogAssociate(ctx, len(frame1), 0, err)
		return nil, err
	}
	e2, err := t.embedFrame(ctx, frame2)
	if err != nil {
		t.opts.metricsCollector.RecordAssociate(len(frame1), time.Since(start), err)
		t.opts.logger.LogAssociate(ctx, len(frame1), 0, err)
		return nil, err
	}

	matches, matrix, err := match.Nearest(ctx, e1.Vectors(), e2.Vectors(), func(o *match.Options) {
		o.Parallelism = t.opts.parallelism
	})
	if err != nil {
		t.opts.metricsCollector.RecordAssociate(len(frame1), time.Since(start), err)
		t.opts.logger.LogAssociate(ctx, len(frame1), 0, err)
		return nil, err
	}

	assignments := make([]Assignment, len(matches))
	matched := 0
	for i, j := range matches {
		a := Assignment{From: i, To: j}
		if j != NoMatch {
			a.Distance = matrix[i][j]
			matched++
		}
		assignments[i] = a
	}

	t.opts.metricsCollector.RecordAssociate(len(frame1), time.Since(start), nil)
	t.opts.logger.LogAssociate(ctx, len(frame1), matched, nil)

	return assignments, nil
}

// Embed runs the tracker's embedder over a detection set.
func (t *Tracker) Embed(ctx context.Context, detections [][]float32) (*embedding.Collection, error) {
	return t.embedFrame(ctx, detections)
}

func (t *Tracker) embedFrame(ctx context.Context, detections [][]float32) (*embedding.Collection, error) {
	start := time.Now()

	c, err := embedding.EmbedAll(ctx, t.embedder, detections, func(o *embedding.Options) {
		o.Parallelism = t.opts.parallelism
	})

	t.opts.metricsCollector.RecordEmbed(len(detections), time.Since(start), err)
	if err != nil {
		t.opts.logger.LogEmbed(ctx, len(detections), 0, err)
		return nil, err
	}
	t.opts.logger.LogEmbed(ctx, len(detections), c.Dimension(), nil)

	return c, nil
}
