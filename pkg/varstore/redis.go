package varstore

import (
	"context"
	"errors"
	"sort"

	"github.com/redis/go-redis/v9"
)

// Redis is a variable store backed by Redis.
// Variables are serialized with the configured Marshaler (default: JSON)
// and stored without expiration.
type Redis struct {
	client    redis.UniversalClient
	marshaler Marshaler
	prefix    string
}

// RedisOption configures the Redis store.
type RedisOption func(*Redis)

// WithPrefix namespaces all keys under the given prefix.
// Default: "variables".
func WithPrefix(prefix string) RedisOption {
	return func(r *Redis) {
		r.prefix = prefix
	}
}

// WithMarshaler overrides the default JSON serialization.
func WithMarshaler(m Marshaler) RedisOption {
	return func(r *Redis) {
		if m != nil {
			r.marshaler = m
		}
	}
}

// NewRedis creates a new Redis-backed store.
// The client lifecycle is managed by the caller.
func NewRedis(client redis.UniversalClient, opts ...RedisOption) *Redis {
	r := &Redis{
		client:    client,
		marshaler: jsonMarshaler{},
		prefix:    "variables",
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Get retrieves a variable by key.
// Returns ErrNotFound if the key does not exist.
func (r *Redis) Get(ctx context.Context, key string) (Variable, error) {
	data, err := r.client.Get(ctx, r.prefixedKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Variable{}, ErrNotFound
		}
		return Variable{}, err
	}

	return r.marshaler.Unmarshal(data)
}

// Set creates or replaces the variable under v.Key.
// CreatedAt is preserved across replacements; UpdatedAt is always refreshed.
func (r *Redis) Set(ctx context.Context, v Variable) error {
	if v.Key == "" {
		return ErrEmptyKey
	}

	stampVariable(&v, func() (Variable, bool) {
		existing, err := r.Get(ctx, v.Key)
		return existing, err == nil
	})

	data, err := r.marshaler.Marshal(v)
	if err != nil {
		return err
	}

	return r.client.Set(ctx, r.prefixedKey(v.Key), data, 0).Err()
}

// Has checks whether a key exists.
func (r *Redis) Has(ctx context.Context, key string) (bool, error) {
	n, err := r.client.Exists(ctx, r.prefixedKey(key)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Delete removes a key. Deleting a missing key is not an error.
func (r *Redis) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, r.prefixedKey(key)).Err()
}

// Keys returns all stored keys in lexicographic order.
// Uses SCAN so large stores do not block the server.
func (r *Redis) Keys(ctx context.Context) ([]string, error) {
	pattern := r.prefix + ":*"
	strip := len(r.prefix) + 1

	var keys []string
	var cursor uint64
	for {
		batch, nextCursor, err := r.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return nil, err
		}
		for _, k := range batch {
			keys = append(keys, k[strip:])
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}

	sort.Strings(keys)
	return keys, nil
}

// Close is a no-op. The Redis client lifecycle is managed by the caller.
func (r *Redis) Close() error {
	return nil
}

func (r *Redis) prefixedKey(key string) string {
	return r.prefix + ":" + key
}

var _ Store = (*Redis)(nil)
