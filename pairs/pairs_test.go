package pairs

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/simtrack/dataset"
)

// gridDataset builds numClasses classes with perClass samples each.
// Sample vectors encode their identity as {class, offset} so tests can
// recover provenance from pair values alone.
func gridDataset(t *testing.T, numClasses, perClass int) (*dataset.Dataset, *dataset.ClassIndex) {
	t.Helper()

	var samples [][]float32
	var labels []int
	// Interleave classes so positions differ from per-class offsets.
	for i := 0; i < perClass; i++ {
		for c := 0; c < numClasses; c++ {
			samples = append(samples, []float32{float32(c), float32(i)})
			labels = append(labels, c)
		}
	}

	ds, err := dataset.New(samples, labels)
	require.NoError(t, err)
	return ds, dataset.BuildClassIndex(ds)
}

func TestBudget(t *testing.T) {
	_, ci := gridDataset(t, 10, 3)
	assert.Equal(t, 2, Budget(ci))
}

func TestContrastive(t *testing.T) {
	ds, ci := gridDataset(t, 10, 3)

	s := NewSampler(func(o *Options) {
		o.Rand = rand.New(rand.NewSource(42))
	})
	set, err := s.Contrastive(ds, ci)
	require.NoError(t, err)

	// 2 * n * numClasses with n = 3-1 = 2.
	assert.Equal(t, 40, set.Len())
	assert.Len(t, set.Labels, 40)

	t.Run("LabelsAlternate", func(t *testing.T) {
		for i, label := range set.Labels {
			if i%2 == 0 {
				assert.Equal(t, 1, label, "pair %d", i)
			} else {
				assert.Equal(t, 0, label, "pair %d", i)
			}
		}
	})

	t.Run("PositivePairs", func(t *testing.T) {
		for i := 0; i < set.Len(); i += 2 {
			p := set.Pair(i)
			// Same class, consecutive offsets.
			assert.Equal(t, p.A[0], p.B[0], "pair %d class", i)
			assert.Equal(t, p.A[1]+1, p.B[1], "pair %d offset", i)
		}
	})

	t.Run("NegativePairs", func(t *testing.T) {
		for i := 1; i < set.Len(); i += 2 {
			p := set.Pair(i)
			// Different classes, same offset.
			assert.NotEqual(t, p.A[0], p.B[0], "pair %d class", i)
			assert.Equal(t, p.A[1], p.B[1], "pair %d offset", i)
		}
	})

	t.Run("AnchorReuse", func(t *testing.T) {
		// The positive anchor at offset i is also the negative anchor.
		for i := 0; i < set.Len(); i += 2 {
			assert.Equal(t, set.Pair(i).A, set.Pair(i+1).A)
		}
	})
}

func TestContrastiveDeterministic(t *testing.T) {
	ds, ci := gridDataset(t, 5, 4)

	run := func(seed int64) *Set {
		s := NewSampler(func(o *Options) {
			o.Rand = rand.New(rand.NewSource(seed))
		})
		set, err := s.Contrastive(ds, ci)
		require.NoError(t, err)
		return set
	}

	assert.Equal(t, run(7), run(7))
}

func TestContrastiveErrors(t *testing.T) {
	t.Run("SingletonClass", func(t *testing.T) {
		ds, err := dataset.New(
			[][]float32{{0}, {0}, {1}},
			[]int{0, 0, 1},
		)
		require.NoError(t, err)
		ci := dataset.BuildClassIndex(ds)

		_, err = NewSampler().Contrastive(ds, ci)
		var ins *ErrInsufficientSamples
		require.ErrorAs(t, err, &ins)
		assert.Equal(t, 1, ins.Label)
		assert.Equal(t, 1, ins.Count)
	})

	t.Run("SingleClass", func(t *testing.T) {
		ds, err := dataset.New([][]float32{{0}, {1}, {2}}, []int{0, 0, 0})
		require.NoError(t, err)
		ci := dataset.BuildClassIndex(ds)

		_, err = NewSampler().Contrastive(ds, ci)
		assert.ErrorIs(t, err, ErrTooFewClasses)
	})

	t.Run("InvalidLabelSet", func(t *testing.T) {
		ds, ci := gridDataset(t, 3, 3)

		s := NewSampler(func(o *Options) {
			o.Classes = []int{0, 1, 2, 3}
		})
		_, err := s.Contrastive(ds, ci)
		var ils *ErrInvalidLabelSet
		require.ErrorAs(t, err, &ils)
		assert.Equal(t, []int{0, 1, 2, 3}, ils.Expected)
		assert.Equal(t, []int{0, 1, 2}, ils.Actual)
	})

	t.Run("ExplicitAlphabetAccepted", func(t *testing.T) {
		ds, ci := gridDataset(t, 3, 3)

		s := NewSampler(func(o *Options) {
			o.Classes = []int{0, 1, 2}
			o.Rand = rand.New(rand.NewSource(1))
		})
		set, err := s.Contrastive(ds, ci)
		require.NoError(t, err)
		assert.Equal(t, 12, set.Len())
	})
}
