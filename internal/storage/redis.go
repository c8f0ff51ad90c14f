package storage

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

var _ SettingsStore = (*RedisStore)(nil)

// RedisStore keeps settings in a single hash.
type RedisStore struct {
	client *redis.Client
	key    string
}

func NewRedisStore(client *redis.Client, key string) *RedisStore {
	return &RedisStore{client: client, key: key}
}

func (r *RedisStore) Load(ctx context.Context) (map[string]string, error) {
	values, err := r.client.HGetAll(ctx, r.key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read settings hash: %w", err)
	}
	return values, nil
}

func (r *RedisStore) Save(ctx context.Context, values map[string]string) error {
	args := make([]any, 0, len(values)*2)
	for k, v := range values {
		args = append(args, k, v)
	}

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, r.key)
		if len(args) > 0 {
			pipe.HSet(ctx, r.key, args...)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to write settings hash: %w", err)
	}
	return nil
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}
