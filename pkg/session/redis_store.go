package session

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore implements Store against a Redis server, for setups where the
// session cache should survive the local filesystem (containers, shared dev
// boxes). The slot is a single key; expiry is still enforced by the Manager
// on read, Redis TTL is only a safety net.
type RedisStore struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// NewRedisStore creates a store using the provided client. A non-zero ttl is
// applied as the Redis key expiry on every write.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, key: StorageKey, ttl: ttl}
}

func (r *RedisStore) Read(ctx context.Context) (string, error) {
	blob, err := r.client.Get(ctx, r.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNoSession
		}
		return "", errors.Join(ErrStorageFailed, err)
	}
	return blob, nil
}

func (r *RedisStore) Write(ctx context.Context, blob string) error {
	if err := r.client.Set(ctx, r.key, blob, r.ttl).Err(); err != nil {
		return errors.Join(ErrStorageFailed, err)
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		return errors.Join(ErrStorageFailed, err)
	}
	return nil
}

// DialRedis connects to the Redis server at connURL, retrying until attempts
// are exhausted or ctx is done. The returned client is ready to hand to
// NewRedisStore.
func DialRedis(ctx context.Context, connURL string, attempts int, interval time.Duration) (*redis.Client, error) {
	opt, err := redis.ParseURL(connURL)
	if err != nil {
		return nil, errors.Join(ErrStorageFailed, err)
	}

	if attempts < 1 {
		attempts = 1
	}

	for i := 0; i < attempts; i++ {
		client := redis.NewClient(opt)
		if err = client.Ping(ctx).Err(); err == nil {
			return client, nil
		}
		_ = client.Close()

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrStorageFailed, ctx.Err())
		case <-time.After(interval):
		}
	}

	return nil, errors.Join(ErrStorageFailed, err)
}
