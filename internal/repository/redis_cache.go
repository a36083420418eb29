package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCacheRepository decorates a LinkStore with a Redis read cache on the
// resolve path. Writes always go to the underlying store first; the cache is
// populated after a successful save and on cache misses. Records never change
// once written, so a cached entry can only go stale by expiring.
type RedisCacheRepository struct {
	store  LinkStore
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisCacheRepository(store LinkStore, client *redis.Client, ttl time.Duration) *RedisCacheRepository {
	return &RedisCacheRepository{
		store:  store,
		client: client,
		prefix: "link:",
		ttl:    ttl,
	}
}

func (r *RedisCacheRepository) SaveLink(ctx context.Context, shortID, originalURL string) error {
	if err := r.store.SaveLink(ctx, shortID, originalURL); err != nil {
		return err
	}

	// Best effort: the store write already succeeded.
	r.client.Set(ctx, r.prefix+shortID, originalURL, r.ttl)

	return nil
}

func (r *RedisCacheRepository) GetOriginalURL(ctx context.Context, shortID string) (string, error) {
	cached, err := r.client.Get(ctx, r.prefix+shortID).Result()
	if err == nil {
		return cached, nil
	}

	// redis.Nil is a miss; anything else means the cache is unavailable.
	// Either way resolution falls through to the authoritative store.
	originalURL, err := r.store.GetOriginalURL(ctx, shortID)
	if err != nil {
		return "", err
	}

	r.client.Set(ctx, r.prefix+shortID, originalURL, r.ttl)

	return originalURL, nil
}

func (r *RedisCacheRepository) Ping(ctx context.Context) error {
	return r.store.Ping(ctx)
}

var _ LinkStore = (*RedisCacheRepository)(nil)
