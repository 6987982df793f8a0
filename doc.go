// Package simtrack provides metric-learning data plumbing and
// tracking-by-appearance for siamese embedding networks.
//
// The library covers the data side of contrastive training and the matching
// side of appearance tracking; the embedding network itself is an external
// collaborator consumed through the embedding.Embedder interface.
//
// # Quick Start
//
// Build contrastive training pairs from a labeled dataset:
//
//	ds, _ := dataset.New(samples, labels)
//	ci := dataset.BuildClassIndex(ds)
//	set, _ := pairs.NewSampler().Contrastive(ds, ci)
//
// Associate detections across two frames with a trained embedder:
//
//	tracker, _ := simtrack.New(embedder)
//	assignments, _ := tracker.Associate(ctx, frame1, frame2)
//
// # Packages
//
//   - dataset: labeled sample collections and class indexes
//   - pairs: balanced positive/negative pair sampling
//   - match: greedy nearest-neighbor matching over embeddings
//   - contrastive: margin loss and evaluation helpers
//   - embedding: the embedding-function boundary, batching, snapshots
//   - idx: MNIST IDX ingestion
//   - datastore: dataset blob access (local, memory, S3, MinIO)
//
// # Matching Semantics
//
// Association is greedy nearest-neighbor: two detections may claim the same
// partner, and no one-to-one assignment is enforced. This is a deliberate
// simplification; bipartite min-cost matching is the natural upgrade path.
package simtrack
