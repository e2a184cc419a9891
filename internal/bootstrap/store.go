package bootstrap

import (
	"context"
	"fmt"
	"time"

	"portfolio-be/internal/config"
	"portfolio-be/internal/model"
	"portfolio-be/internal/repository/contract"
	"portfolio-be/internal/repository/implementation"
	"portfolio-be/internal/repository/memory"
	"portfolio-be/pkg/database"

	"github.com/redis/go-redis/v9"
)

// OpenStore connects the key-value backend selected by STORE_DRIVER. The
// returned closer releases its connections.
func OpenStore(ctx context.Context, cfg config.StoreConfig) (contract.KeyValueRepository, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Driver {
	case "", "memory":
		return memory.NewKeyValueRepository(), noop, nil

	case "redis":
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			opt = &redis.Options{Addr: cfg.RedisURL}
		}
		rdb := redis.NewClient(opt)

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			_ = rdb.Close()
			return nil, nil, fmt.Errorf("connect redis: %w", err)
		}
		return implementation.NewRedisKeyValueRepository(rdb, cfg.RedisPrefix), rdb.Close, nil

	case "postgres":
		db, err := database.NewGormDBFromDSN(cfg.DatabaseDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("connect postgres: %w", err)
		}
		if err := database.Migrate(db, &model.KeyValueEntry{}); err != nil {
			return nil, nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, err
		}
		return implementation.NewKeyValueRepository(db), sqlDB.Close, nil
	}

	return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
}
