package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisAdapter implements the Cache and Counters interfaces using Redis.
type RedisAdapter struct {
	client *redis.Client
}

// NewRedisAdapter creates a new Redis adapter.
// The redisURL should be in the format: redis://[:password@]host[:port][/database]
func NewRedisAdapter(redisURL string) (*RedisAdapter, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	return &RedisAdapter{client: client}, nil
}

// Get retrieves a value from Redis by key.
func (r *RedisAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get key %s: %w", key, err)
	}
	return val, nil
}

// Set stores a value in Redis with the specified TTL.
func (r *RedisAdapter) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set key %s: %w", key, err)
	}
	return nil
}

// Delete removes a value from Redis by key.
func (r *RedisAdapter) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}

// incrementOnce checks the marker, increments, then writes the marker.
// Redis aborts the script on the first failing call, so an error in HINCRBY leaves
// the marker unset.
var incrementOnce = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 1 then
	return 0
end
redis.call('HINCRBY', KEYS[2], ARGV[1], ARGV[2])
if tonumber(ARGV[3]) > 0 then
	redis.call('SET', KEYS[1], '1', 'PX', ARGV[3])
	redis.call('PEXPIRE', KEYS[2], ARGV[3])
else
	redis.call('SET', KEYS[1], '1')
end
return 1
`)

// IncrementFieldOnce runs the marker check and HINCRBY as a single Lua script.
func (r *RedisAdapter) IncrementFieldOnce(ctx context.Context, marker, key, field string, delta int64, ttl time.Duration) (bool, error) {
	applied, err := incrementOnce.Run(ctx, r.client, []string{marker, key}, field, delta, ttl.Milliseconds()).Int()
	if err != nil {
		return false, fmt.Errorf("failed to increment %s[%s]: %w", key, field, err)
	}
	return applied == 1, nil
}

// Fields returns the whole hash stored at key.
func (r *RedisAdapter) Fields(ctx context.Context, key string) (map[string]string, error) {
	vals, err := r.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read hash %s: %w", key, err)
	}
	return vals, nil
}

// Ping checks if Redis is reachable.
func (r *RedisAdapter) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// Close closes the Redis connection.
func (r *RedisAdapter) Close() error {
	return r.client.Close()
}
