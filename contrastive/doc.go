// Package contrastive implements the margin-based contrastive objective and
// evaluation helpers for siamese embedding networks.
//
// For a pair with binary label l and embedding distance d, the loss is
//
//	l*d^2 + (1-l)*max(margin-d, 0)^2
//
// Positive pairs are pulled toward distance 0, negative pairs are pushed
// past the margin.
package contrastive
