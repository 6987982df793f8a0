// Package pairs builds balanced positive/negative sample pairs for
// contrastive training of siamese embedding networks.
//
// The sampler walks every class at a uniform pair budget governed by the
// scarcest class: for each class c and offset i it emits one positive pair
// (the class neighbors at offsets i and i+1) followed by one negative pair
// (the sample at offset i paired with the sample at the same offset in a
// randomly chosen other class). Labels alternate 1,0,1,0,... in emission
// order.
//
// Randomness is injected through the Rand interface so callers can make
// sampling fully deterministic.
package pairs
