package session

import (
	"context"

	"github.com/redis/go-redis/v9"
)

const defaultRedisKey = "watchmark:current_user"

// RedisPointer keeps the current-user id in a single Redis key. Same
// contract as FilePointer; useful when the service already runs next to a
// Redis instance and the data directory is not writable.
type RedisPointer struct {
	client *redis.Client
	key    string
}

func NewRedisPointer(client *redis.Client, key string) *RedisPointer {
	if key == "" {
		key = defaultRedisKey
	}
	return &RedisPointer{client: client, key: key}
}

func (p *RedisPointer) Set(ctx context.Context, userID string) error {
	// No TTL: the pointer is only ever overwritten, never expired.
	return p.client.Set(ctx, p.key, userID, 0).Err()
}

func (p *RedisPointer) Get(ctx context.Context) (string, error) {
	val, err := p.client.Get(ctx, p.key).Result()
	if err == redis.Nil {
		return "", ErrUnset
	}
	if err != nil {
		return "", err
	}
	if val == "" {
		return "", ErrUnset
	}
	return val, nil
}
