package dataset

import (
	"fmt"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"
)

// ClassIndex maps each class label to the ordered sample positions carrying
// that label. Positions are kept in roaring bitmaps, which preserve sorted
// order and support rank/select access by offset.
//
// A ClassIndex is built once per dataset split and is read-only afterwards.
type ClassIndex struct {
	classes []int
	byClass map[int]*roaring.Bitmap
}

// BuildClassIndex builds the class index for a dataset.
func BuildClassIndex(d *Dataset) *ClassIndex {
	byClass := make(map[int]*roaring.Bitmap)
	for i, label := range d.Labels() {
		bm, ok := byClass[label]
		if !ok {
			bm = roaring.New()
			byClass[label] = bm
		}
		bm.Add(uint32(i))
	}

	classes := make([]int, 0, len(byClass))
	for label := range byClass {
		classes = append(classes, label)
	}
	slices.Sort(classes)

	return &ClassIndex{classes: classes, byClass: byClass}
}

// Classes returns the label alphabet in ascending order.
// The result aliases internal memory; treat it as read-only.
func (ci *ClassIndex) Classes() []int { return ci.classes }

// NumClasses returns the number of distinct labels in the index.
func (ci *ClassIndex) NumClasses() int { return len(ci.classes) }

// Cardinality returns the number of samples carrying the given label.
// It returns 0 for labels not present in the index.
func (ci *ClassIndex) Cardinality(label int) int {
	bm, ok := ci.byClass[label]
	if !ok {
		return 0
	}
	return int(bm.GetCardinality())
}

// MinCardinality returns the smallest class size across the index.
// It returns 0 for an empty index.
func (ci *ClassIndex) MinCardinality() int {
	minCard := 0
	for i, label := range ci.classes {
		card := ci.Cardinality(label)
		if i == 0 || card < minCard {
			minCard = card
		}
	}
	return minCard
}

// Select returns the sample position at the given offset within a class,
// counting in ascending position order.
func (ci *ClassIndex) Select(label, offset int) (int, error) {
	bm, ok := ci.byClass[label]
	if !ok {
		return 0, fmt.Errorf("dataset: label %d not in class index", label)
	}
	pos, err := bm.Select(uint32(offset))
	if err != nil {
		return 0, fmt.Errorf("dataset: offset %d out of range for label %d: %w", offset, label, err)
	}
	return int(pos), nil
}

// Positions returns all sample positions for a label in ascending order.
func (ci *ClassIndex) Positions(label int) []int {
	bm, ok := ci.byClass[label]
	if !ok {
		return nil
	}
	raw := bm.ToArray()
	out := make([]int, len(raw))
	for i, p := range raw {
		out[i] = int(p)
	}
	return out
}

// Covers reports whether the index covers exactly the given label alphabet:
// every listed label is present and no other labels exist.
func (ci *ClassIndex) Covers(alphabet []int) bool {
	if len(alphabet) != len(ci.classes) {
		return false
	}
	sorted := slices.Clone(alphabet)
	slices.Sort(sorted)
	return slices.Equal(sorted, ci.classes)
}
