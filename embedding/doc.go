// Package embedding defines the embedding-function boundary and utilities
// for working with embedding collections.
//
// The embedding function itself is an external collaborator: a twin-branch
// network trained elsewhere against a contrastive objective. This package
// only consumes it through the Embedder interface, batches it over sample
// collections, and snapshots the resulting vectors to disk so expensive
// extractions can be reused between runs.
package embedding
