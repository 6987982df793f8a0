// Package dataset provides labeled sample collections and class indexes for
// contrastive pair sampling.
//
// A Dataset is an ordered, immutable sequence of fixed-dimension float32
// vectors with parallel integer class labels. A ClassIndex maps each class
// label to the ordered sample positions carrying that label; it is built once
// per dataset split and read-only afterwards.
package dataset
