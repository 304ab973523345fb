package documents

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const receiptKeyPrefix = "docs:receipt:"

// ReceiptCache stores rendered receipt PDFs by transaction id.
type ReceiptCache interface {
	Get(ctx context.Context, transactionID string) ([]byte, bool, error)
	Set(ctx context.Context, transactionID string, data []byte) error
}

// RedisCache keeps receipts in Redis for a fixed TTL.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewReceiptCache returns a Redis-backed cache, or NoopCache when client is nil.
func NewReceiptCache(client *redis.Client, ttl time.Duration) ReceiptCache {
	if client == nil {
		return NoopCache{}
	}
	return &RedisCache{client: client, ttl: ttl}
}

func receiptKey(transactionID string) string {
	return receiptKeyPrefix + transactionID
}

// Get reports found=false on a miss; redis.Nil is not an error.
func (c *RedisCache) Get(ctx context.Context, transactionID string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, receiptKey(transactionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (c *RedisCache) Set(ctx context.Context, transactionID string, data []byte) error {
	return c.client.Set(ctx, receiptKey(transactionID), data, c.ttl).Err()
}

// NoopCache never hits.
type NoopCache struct{}

func (NoopCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }
func (NoopCache) Set(context.Context, string, []byte) error         { return nil }
