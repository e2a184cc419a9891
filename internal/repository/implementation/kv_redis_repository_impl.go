package implementation

import (
	"context"
	"errors"

	"portfolio-be/internal/repository/contract"

	"github.com/redis/go-redis/v9"
)

type RedisKeyValueRepositoryImpl struct {
	rdb    *redis.Client
	prefix string
}

func NewRedisKeyValueRepository(rdb *redis.Client, prefix string) contract.KeyValueRepository {
	return &RedisKeyValueRepositoryImpl{
		rdb:    rdb,
		prefix: prefix,
	}
}

func (r *RedisKeyValueRepositoryImpl) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := r.rdb.Get(ctx, r.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return value, true, nil
}

// Set stores without TTL; values live until overwritten or deleted.
func (r *RedisKeyValueRepositoryImpl) Set(ctx context.Context, key string, value []byte) error {
	return r.rdb.Set(ctx, r.prefix+key, value, 0).Err()
}

func (r *RedisKeyValueRepositoryImpl) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	prefixed := make([]string, len(keys))
	for i, key := range keys {
		prefixed[i] = r.prefix + key
	}
	return r.rdb.Del(ctx, prefixed...).Err()
}
