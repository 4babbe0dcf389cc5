package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	appErrors "github.com/noah-isme/hr-portal/pkg/errors"
)

// KeyPrefix namespaces every key the portal writes to Redis.
const KeyPrefix = "hr-portal:"

const (
	fieldData     = "data"
	fieldStoredAt = "stored_at"
)

// CacheRepository keeps JSON documents in Redis hashes holding the payload
// and the time it was stored. A nil client behaves as an always-empty cache.
type CacheRepository struct {
	client redis.UniversalClient
	logger *zap.Logger
	now    func() time.Time
}

// NewCacheRepository constructs a cache repository.
func NewCacheRepository(client redis.UniversalClient, logger *zap.Logger) *CacheRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CacheRepository{client: client, logger: logger, now: time.Now}
}

// Get decodes the document stored under key into dest and returns when it was
// written. Missing, expired and undecodable documents yield ErrCacheMiss; the
// latter are removed.
func (r *CacheRepository) Get(ctx context.Context, key string, dest interface{}) (time.Time, error) {
	if r.client == nil {
		return time.Time{}, appErrors.ErrCacheMiss
	}

	fields, err := r.client.HGetAll(ctx, KeyPrefix+key).Result()
	if err != nil {
		return time.Time{}, fmt.Errorf("redis hgetall %s: %w", key, err)
	}
	raw, ok := fields[fieldData]
	if !ok {
		return time.Time{}, appErrors.ErrCacheMiss
	}

	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		r.logger.Warn("dropping undecodable cache entry", zap.String("key", key), zap.Error(err))
		_ = r.client.Del(ctx, KeyPrefix+key).Err()
		return time.Time{}, appErrors.ErrCacheMiss
	}

	storedAt, _ := time.Parse(time.RFC3339Nano, fields[fieldStoredAt])
	return storedAt, nil
}

// Set replaces the document under key. A non-positive ttl keeps it until deleted.
func (r *CacheRepository) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if r.client == nil {
		return nil
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal cache value for %s: %w", key, err)
	}

	full := KeyPrefix + key
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, full)
		pipe.HSet(ctx, full, fieldData, payload, fieldStoredAt, r.now().UTC().Format(time.RFC3339Nano))
		if ttl > 0 {
			pipe.Expire(ctx, full, ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis store %s: %w", key, err)
	}
	return nil
}

// Delete removes the documents under keys.
func (r *CacheRepository) Delete(ctx context.Context, keys ...string) error {
	if r.client == nil || len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, key := range keys {
		full[i] = KeyPrefix + key
	}
	if err := r.client.Del(ctx, full...).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("redis delete %v: %w", keys, err)
	}
	return nil
}

// Ping reports whether Redis is reachable.
func (r *CacheRepository) Ping(ctx context.Context) error {
	if r.client == nil {
		return nil
	}
	return r.client.Ping(ctx).Err()
}

// Close releases the underlying Redis connection if present.
func (r *CacheRepository) Close() error {
	if r.client == nil {
		return nil
	}
	return r.client.Close()
}
