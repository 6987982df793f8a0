package datastore

import (
	"context"

	"golang.org/x/time/rate"
)

// WithRateLimit wraps a store so that blob reads are throttled to roughly
// bytesPerSecond. Useful when pulling datasets from shared object storage.
func WithRateLimit(inner Store, bytesPerSecond int) Store {
	return &rateLimitedStore{
		inner:   inner,
		limiter: rate.NewLimiter(rate.Limit(bytesPerSecond), bytesPerSecond),
	}
}

type rateLimitedStore struct {
	inner   Store
	limiter *rate.Limiter
}

func (s *rateLimitedStore) Open(ctx context.Context, name string) (Blob, error) {
	b, err := s.inner.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	return &rateLimitedBlob{Blob: b, limiter: s.limiter, ctx: ctx}, nil
}

type rateLimitedBlob struct {
	Blob
	limiter *rate.Limiter
	ctx     context.Context
}

func (b *rateLimitedBlob) Read(p []byte) (int, error) {
	// Cap each read at the limiter burst so WaitN can always succeed.
	if burst := b.limiter.Burst(); len(p) > burst {
		p = p[:burst]
	}

	n, err := b.Blob.Read(p)
	if n > 0 {
		if werr := b.limiter.WaitN(b.ctx, n); werr != nil {
			return n, werr
		}
	}
	return n, err
}
