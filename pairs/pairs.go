package pairs

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/hupe1980/simtrack/dataset"
)

var (
	// ErrTooFewClasses is returned when fewer than two classes are indexed;
	// negative pairs need a partner class to draw from.
	ErrTooFewClasses = errors.New("pairs: need at least two classes")
)

// ErrInsufficientSamples indicates a class too small to form pairs.
// The pair budget is governed by the scarcest class, so a single
// undersized class blocks sampling for every class.
type ErrInsufficientSamples struct {
	Label int
	Count int
}

func (e *ErrInsufficientSamples) Error() string {
	return fmt.Sprintf("pairs: class %d has %d samples, need at least 2", e.Label, e.Count)
}

// ErrInvalidLabelSet indicates a class index that does not cover the
// expected label alphabet exactly.
type ErrInvalidLabelSet struct {
	Expected []int
	Actual   []int
}

func (e *ErrInvalidLabelSet) Error() string {
	return fmt.Sprintf("pairs: class index covers %v, expected exactly %v", e.Actual, e.Expected)
}

// Rand is the source of randomness for negative partner class selection.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Pair is one training pair: two sample vectors and a binary label
// (1 = same class, 0 = different class).
type Pair struct {
	A     []float32
	B     []float32
	Label int
}

// Set is an ordered pair collection with a parallel label sequence, consumed
// wholesale by a contrastive training step. Left[i] and Right[i] form the
// i-th pair; Labels[i] is its binary label.
//
// The vectors alias the source dataset; treat them as read-only.
type Set struct {
	Left   [][]float32
	Right  [][]float32
	Labels []int
}

// Len returns the number of pairs.
func (s *Set) Len() int { return len(s.Left) }

// Pair returns the i-th pair.
func (s *Set) Pair(i int) Pair {
	return Pair{A: s.Left[i], B: s.Right[i], Label: s.Labels[i]}
}

// Budget returns the per-class pair budget for a class index: the scarcest
// class cardinality minus one. Every class contributes exactly this many
// positive and negative pairs, so one undersized class caps all of them.
// A budget <= 0 means the index cannot support pair sampling.
func Budget(ci *dataset.ClassIndex) int {
	return ci.MinCardinality() - 1
}

// Options contains configuration options for the sampler.
type Options struct {
	// Rand supplies randomness for negative partner class selection.
	// If nil, the shared math/rand source is used.
	Rand Rand

	// Classes is the label alphabet the class index must cover exactly.
	// If nil, the alphabet observed in the class index is accepted.
	Classes []int
}

// Sampler produces contrastive pair sets from labeled datasets.
type Sampler struct {
	opts Options
}

// NewSampler creates a new pair sampler.
func NewSampler(optFns ...func(o *Options)) *Sampler {
	opts := Options{}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Sampler{opts: opts}
}

// Contrastive builds the pair set for a dataset and its class index.
//
// For each class c (in ascending label order) and each offset i in
// [0, Budget): one positive pair of the samples at offsets i and i+1 of c,
// then one negative pair of the sample at offset i of c and the sample at
// the SAME offset i of a uniformly drawn other class. Only the partner
// class is randomized, never the offset; drawing a random offset per
// negative pair would yield more varied negatives but also changes the
// sampling distribution, so it is left to the caller to decide via a
// pre-shuffled dataset.
//
// The result holds exactly 2*Budget*NumClasses pairs with labels
// alternating 1,0,1,0,...
func (s *Sampler) Contrastive(ds *dataset.Dataset, ci *dataset.ClassIndex) (*Set, error) {
	classes := s.opts.Classes
	if classes == nil {
		classes = ci.Classes()
	} else if !ci.Covers(classes) {
		return nil, &ErrInvalidLabelSet{Expected: classes, Actual: ci.Classes()}
	}

	numClasses := len(classes)
	if numClasses < 2 {
		return nil, ErrTooFewClasses
	}

	// The budget is global: the scarcest class caps every class.
	for _, label := range ci.Classes() {
		if card := ci.Cardinality(label); card < 2 {
			return nil, &ErrInsufficientSamples{Label: label, Count: card}
		}
	}
	budget := Budget(ci)
	if budget <= 0 {
		return nil, &ErrInsufficientSamples{Label: ci.Classes()[0], Count: ci.MinCardinality()}
	}

	rnd := s.opts.Rand
	if rnd == nil {
		rnd = globalRand{}
	}

	total := 2 * budget * numClasses
	set := &Set{
		Left:   make([][]float32, 0, total),
		Right:  make([][]float32, 0, total),
		Labels: make([]int, 0, total),
	}

	for ic, c := range classes {
		for i := 0; i < budget; i++ {
			a, err := ci.Select(c, i)
			if err != nil {
				return nil, err
			}
			b, err := ci.Select(c, i+1)
			if err != nil {
				return nil, err
			}
			set.append(ds.Sample(a), ds.Sample(b), 1)

			// r in [1, numClasses-1] guarantees other != c.
			r := 1 + rnd.Intn(numClasses-1)
			other := classes[(ic+r)%numClasses]
			n, err := ci.Select(other, i)
			if err != nil {
				return nil, err
			}
			set.append(ds.Sample(a), ds.Sample(n), 0)
		}
	}

	return set, nil
}

func (s *Set) append(a, b []float32, label int) {
	s.Left = append(s.Left, a)
	s.Right = append(s.Right, b)
	s.Labels = append(s.Labels, label)
}

// globalRand adapts the shared math/rand source to the Rand interface.
type globalRand struct{}

func (globalRand) Intn(n int) int { return rand.Intn(n) }
