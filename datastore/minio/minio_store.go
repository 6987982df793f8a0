package minio

import (
	"context"
	"path"

	"github.com/minio/minio-go/v7"

	"github.com/hupe1980/simtrack/datastore"
)

// Store implements datastore.Store for MinIO and S3-compatible storage.
type Store struct {
	client *minio.Client
	bucket string
	prefix string
}

// NewStore creates a new MinIO blob store.
// bucket is the MinIO bucket name.
// rootPrefix is prepended to all keys (e.g. "datasets/").
func NewStore(client *minio.Client, bucket, rootPrefix string) *Store {
	return &Store{
		client: client,
		bucket: bucket,
		prefix: rootPrefix,
	}
}

func (s *Store) key(name string) string {
	return path.Join(s.prefix, name)
}

// Open opens an existing blob for streaming reads.
func (s *Store) Open(ctx context.Context, name string) (datastore.Blob, error) {
	key := s.key(name)

	// Stat first to verify existence and get the size.
	info, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		errResp := minio.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" || errResp.Code == "NotFound" {
			return nil, datastore.ErrNotFound
		}
		return nil, err
	}

	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}

	return &minioBlob{Object: obj, size: info.Size}, nil
}

type minioBlob struct {
	*minio.Object
	size int64
}

func (b *minioBlob) Size() int64 { return b.size }
