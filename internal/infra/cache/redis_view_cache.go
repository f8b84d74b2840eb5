// Package cache contains the Redis-backed view cache. Rendered views are
// stored under their logical view path; invalidation deletes the keys so the
// next read re-renders from the database.
package cache

import (
	"context"
	"log/slog"
	"time"

	"lexsite/config"
	"lexsite/internal/domain/lifecycle"
	"lexsite/internal/domain/service"
	"lexsite/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// viewTTL bounds staleness if an invalidation is ever lost. Invalidation, not
// expiry, is the primary freshness mechanism.
const viewTTL = 24 * time.Hour

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type redisViewCache struct {
	client *redis.Client
	logger *slog.Logger
}

// New creates the Redis client and returns it as the domain's ViewCache.
func New(params Params) (service.ViewCache, error) {
	if params.Config.Redis == nil {
		return nil, errors.New("redis configuration is missing")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     params.Config.Redis.Addr,
		Password: params.Config.Redis.Password,
		DB:       params.Config.Redis.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping redis")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return &redisViewCache{client: client, logger: params.Logger}, nil
}

// Get returns the cached rendering for a view path, or ok=false on miss.
func (c *redisViewCache) Get(ctx context.Context, path string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, path).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to read cached view")
	}

	return data, true, nil
}

// Set stores a rendering under a view path.
func (c *redisViewCache) Set(ctx context.Context, path string, data []byte) error {
	if err := c.client.Set(ctx, path, data, viewTTL).Err(); err != nil {
		return errors.Wrap(err, "failed to cache view")
	}

	return nil
}

// Invalidate deletes the given view paths. Missing keys are not an error;
// DEL already ignores them.
func (c *redisViewCache) Invalidate(ctx context.Context, paths ...string) error {
	if len(paths) == 0 {
		return nil
	}

	if err := c.client.Del(ctx, paths...).Err(); err != nil {
		return errors.Wrap(err, "failed to invalidate views")
	}
	c.logger.Debug("invalidated views", slog.Any("paths", paths))

	return nil
}
