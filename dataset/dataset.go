package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned when a dataset is constructed without samples.
	ErrEmpty = errors.New("dataset: no samples")
)

// ErrLengthMismatch indicates that samples and labels differ in length.
type ErrLengthMismatch struct {
	Samples int
	Labels  int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("dataset: %d samples but %d labels", e.Samples, e.Labels)
}

// ErrDimensionMismatch indicates a sample with unexpected dimensionality.
type ErrDimensionMismatch struct {
	Position int
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dataset: sample %d has dimension %d, expected %d", e.Position, e.Actual, e.Expected)
}

// Rand is the minimal randomness source used for shuffling.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Dataset is an ordered collection of labeled samples.
// Size and content are fixed at construction.
type Dataset struct {
	samples [][]float32
	labels  []int
	dim     int
}

// New creates a Dataset from parallel sample and label slices.
// All samples must share the dimensionality of the first sample.
// The slices are retained, not copied; callers must not mutate them.
func New(samples [][]float32, labels []int) (*Dataset, error) {
	if len(samples) == 0 {
		return nil, ErrEmpty
	}
	if len(samples) != len(labels) {
		return nil, &ErrLengthMismatch{Samples: len(samples), Labels: len(labels)}
	}

	dim := len(samples[0])
	for i, s := range samples {
		if len(s) != dim {
			return nil, &ErrDimensionMismatch{Position: i, Expected: dim, Actual: len(s)}
		}
	}

	return &Dataset{samples: samples, labels: labels, dim: dim}, nil
}

// Len returns the number of samples.
func (d *Dataset) Len() int { return len(d.samples) }

// Dimension returns the sample vector dimensionality.
func (d *Dataset) Dimension() int { return d.dim }

// Sample returns the sample vector at position i.
// The returned slice aliases internal memory; treat it as read-only.
func (d *Dataset) Sample(i int) []float32 { return d.samples[i] }

// Label returns the class label of the sample at position i.
func (d *Dataset) Label(i int) int { return d.labels[i] }

// Samples returns the backing sample slice.
// The result aliases internal memory; treat it as read-only.
func (d *Dataset) Samples() [][]float32 { return d.samples }

// Labels returns the backing label slice.
// The result aliases internal memory; treat it as read-only.
func (d *Dataset) Labels() []int { return d.labels }

// Split partitions the dataset into a train part holding the first
// floor(trainFraction*Len()) samples and a test part holding the rest.
// Shuffle first if the source ordering is not already random.
func (d *Dataset) Split(trainFraction float64) (train, test *Dataset, err error) {
	if trainFraction <= 0 || trainFraction >= 1 {
		return nil, nil, fmt.Errorf("dataset: train fraction %v outside (0, 1)", trainFraction)
	}

	cut := int(trainFraction * float64(len(d.samples)))
	if cut == 0 || cut == len(d.samples) {
		return nil, nil, fmt.Errorf("dataset: split at %v leaves an empty part", trainFraction)
	}

	train = &Dataset{samples: d.samples[:cut], labels: d.labels[:cut], dim: d.dim}
	test = &Dataset{samples: d.samples[cut:], labels: d.labels[cut:], dim: d.dim}
	return train, test, nil
}

// Shuffled returns a copy of the dataset with samples in random order.
// The sample vectors themselves are shared, not copied.
func (d *Dataset) Shuffled(rnd Rand) *Dataset {
	samples := make([][]float32, len(d.samples))
	labels := make([]int, len(d.labels))
	copy(samples, d.samples)
	copy(labels, d.labels)

	// Fisher-Yates
	for i := len(samples) - 1; i > 0; i-- {
		j := rnd.Intn(i + 1)
		samples[i], samples[j] = samples[j], samples[i]
		labels[i], labels[j] = labels[j], labels[i]
	}

	return &Dataset{samples: samples, labels: labels, dim: d.dim}
}
