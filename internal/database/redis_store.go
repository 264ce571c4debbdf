package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "wordlearner:"

// RedisStore keeps the key-value documents as plain Redis strings
type RedisStore struct {
	rdb *redis.Client
}

// ConnectRedis connects to the Redis server at addr and checks it responds
func ConnectRedis(ctx context.Context, addr, password string, db int) (*RedisStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return &RedisStore{rdb: rdb}, nil
}

func (s *RedisStore) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := s.rdb.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get %q: %w", key, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to decode %q: %w", key, err)
	}
	return true, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %q: %w", key, err)
	}
	if err := s.rdb.Set(ctx, redisKeyPrefix+key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to set %q: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	prefixed := make([]string, len(keys))
	for i, k := range keys {
		prefixed[i] = redisKeyPrefix + k
	}
	if err := s.rdb.Del(ctx, prefixed...).Err(); err != nil {
		return fmt.Errorf("failed to delete %v: %w", keys, err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.rdb.Close()
}
