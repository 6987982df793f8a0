package s3

import (
	"bytes"
	"context"
	"errors"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/hupe1980/simtrack/datastore"
)

// Store implements datastore.Store for S3.
type Store struct {
	client     *s3.Client
	downloader *manager.Downloader
	bucket     string
	prefix     string
}

// NewStore creates a new S3 blob store.
// rootPrefix is prepended to all keys (e.g. "datasets/").
func NewStore(client *s3.Client, bucket, rootPrefix string) *Store {
	return &Store{
		client:     client,
		downloader: manager.NewDownloader(client),
		bucket:     bucket,
		prefix:     rootPrefix,
	}
}

// NewFromDefaultConfig creates a Store using the ambient AWS configuration
// (environment, shared config files, instance role).
func NewFromDefaultConfig(ctx context.Context, bucket, rootPrefix string) (*Store, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, err
	}
	return NewStore(s3.NewFromConfig(cfg), bucket, rootPrefix), nil
}

func (s *Store) key(name string) string {
	return path.Join(s.prefix, name)
}

// Open downloads the named blob and returns an in-memory handle to it.
func (s *Store) Open(ctx context.Context, name string) (datastore.Blob, error) {
	key := s.key(name)

	// Head first to verify existence and size.
	head, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var nf *types.NotFound
		if errors.As(err, &nf) {
			return nil, datastore.ErrNotFound
		}
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, datastore.ErrNotFound
		}
		return nil, err
	}

	buf := manager.NewWriteAtBuffer(make([]byte, 0, *head.ContentLength))
	if _, err := s.downloader.Download(ctx, buf, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}); err != nil {
		return nil, err
	}

	data := buf.Bytes()
	return &memBlob{Reader: bytes.NewReader(data), size: int64(len(data))}, nil
}

type memBlob struct {
	*bytes.Reader
	size int64
}

func (b *memBlob) Size() int64 { return b.size }

func (b *memBlob) Close() error { return nil }
