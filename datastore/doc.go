// Package datastore abstracts read access to dataset blobs.
//
// A Store hands out read-only Blobs by name. Implementations cover the local
// filesystem, an in-memory map for tests, and (via subpackages) S3 and
// MinIO object storage. Downloads can be throttled with WithRateLimit.
package datastore
