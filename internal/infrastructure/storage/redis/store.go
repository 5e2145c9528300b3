// internal/infrastructure/storage/redis/store.go
package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// BlobStore implements the cart persistence port on Redis. Values are
// opaque byte blobs stored under the caller's key with a sliding TTL, the
// same way guest carts expire.
type BlobStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewBlobStore creates a blob store over an established Redis client
func NewBlobStore(client *redis.Client, ttl time.Duration) *BlobStore {
	return &BlobStore{
		client: client,
		ttl:    ttl,
	}
}

// Load retrieves the blob stored under key. A missing key is reported via
// the ok flag, not an error.
func (s *BlobStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Save stores the blob under key, refreshing its TTL
func (s *BlobStore) Save(ctx context.Context, key string, data []byte) error {
	return s.client.Set(ctx, key, data, s.ttl).Err()
}

// Delete removes the blob stored under key
func (s *BlobStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}
