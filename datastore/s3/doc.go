// Package s3 provides a datastore.Store backed by Amazon S3.
//
// Blobs are downloaded whole via the transfer manager; dataset files are
// small enough that range reads buy nothing over a single download.
package s3
