package memory

import (
	"context"

	"github.com/patrickmn/go-cache"
)

// KeyValueRepository keeps values in process memory. Entries never expire and
// the janitor is disabled.
type KeyValueRepository struct {
	cache *cache.Cache
}

func NewKeyValueRepository() *KeyValueRepository {
	return &KeyValueRepository{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

func (r *KeyValueRepository) Get(_ context.Context, key string) ([]byte, bool, error) {
	x, found := r.cache.Get(key)
	if !found {
		return nil, false, nil
	}
	stored := x.([]byte)
	// Callers own the returned slice.
	return append([]byte(nil), stored...), true, nil
}

func (r *KeyValueRepository) Set(_ context.Context, key string, value []byte) error {
	r.cache.Set(key, append([]byte(nil), value...), cache.NoExpiration)
	return nil
}

func (r *KeyValueRepository) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		r.cache.Delete(key)
	}
	return nil
}
