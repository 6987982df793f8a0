// Package match associates detections across two frames by greedy
// nearest-neighbor search over their embedding vectors.
//
// The matcher computes the full pairwise Euclidean distance matrix between
// the frame-1 and frame-2 embedding collections and picks, for every frame-1
// entry, the frame-2 entry at minimal distance (lowest index wins ties).
//
// The assignment is greedy by design: two frame-1 entries may select the
// same frame-2 entry. No bipartite (one-to-one) matching is performed; a
// min-cost assignment such as the Hungarian algorithm would be the natural
// upgrade if exclusive tracks are ever needed.
package match
