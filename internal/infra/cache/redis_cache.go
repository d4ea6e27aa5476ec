// Package cache implements the compliance score cache.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"fieldtrack/config"
	"fieldtrack/internal/domain/entity"
	"fieldtrack/internal/domain/lifecycle"
	"fieldtrack/internal/domain/service"
	"fieldtrack/internal/infra/metrics"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const keyPrefix = "fieldtrack:compliance"

// redisComplianceCache namespaces every score under a per-user version. Invalidate bumps the
// version, which orphans all of the user's scores at once; they expire through their TTL.
type redisComplianceCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisComplianceCache wraps an existing client.
func NewRedisComplianceCache(client *redis.Client, ttl time.Duration) service.ComplianceCache {
	return &redisComplianceCache{client: client, ttl: ttl}
}

func versionKey(userID uuid.UUID) string {
	return fmt.Sprintf("%s:version:%s", keyPrefix, userID)
}

func scoreKey(key service.ComplianceCacheKey, version int64) string {
	return fmt.Sprintf("%s:score:%s:%d:%s:%s:%s", keyPrefix, key.UserID, version, key.RouteID, key.DateFrom, key.DateTo)
}

func (c *redisComplianceCache) version(ctx context.Context, userID uuid.UUID) (int64, error) {
	v, err := c.client.Get(ctx, versionKey(userID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}

	return v, errors.Wrap(err, "read cache version")
}

func (c *redisComplianceCache) Pin(ctx context.Context, key service.ComplianceCacheKey) (service.ComplianceCacheKey, error) {
	version, err := c.version(ctx, key.UserID)
	if err != nil {
		metrics.RecordCacheLookup("error")

		return key, err
	}
	key.Version = version

	return key, nil
}

func (c *redisComplianceCache) Get(ctx context.Context, key service.ComplianceCacheKey) (*entity.ComplianceScore, error) {
	raw, err := c.client.Get(ctx, scoreKey(key, key.Version)).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.RecordCacheLookup("miss")

		return nil, service.ErrCacheMiss
	}
	if err != nil {
		metrics.RecordCacheLookup("error")

		return nil, errors.Wrap(err, "read cached score")
	}

	var score entity.ComplianceScore
	if err := json.Unmarshal(raw, &score); err != nil {
		metrics.RecordCacheLookup("error")

		return nil, errors.Wrap(err, "decode cached score")
	}
	metrics.RecordCacheLookup("hit")

	return &score, nil
}

// Set never re-reads the version: an Invalidate since Pin leaves this entry orphaned.
func (c *redisComplianceCache) Set(ctx context.Context, key service.ComplianceCacheKey, score *entity.ComplianceScore) error {
	raw, err := json.Marshal(score)
	if err != nil {
		return errors.Wrap(err, "encode score")
	}

	return errors.Wrap(c.client.Set(ctx, scoreKey(key, key.Version), raw, c.ttl).Err(), "write cached score")
}

func (c *redisComplianceCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	return errors.Wrap(c.client.Incr(ctx, versionKey(userID)).Err(), "bump cache version")
}

// noopComplianceCache always misses.
type noopComplianceCache struct{}

// NewNoopComplianceCache returns a cache that stores nothing.
func NewNoopComplianceCache() service.ComplianceCache {
	return noopComplianceCache{}
}

func (noopComplianceCache) Pin(_ context.Context, key service.ComplianceCacheKey) (service.ComplianceCacheKey, error) {
	return key, nil
}

func (noopComplianceCache) Get(context.Context, service.ComplianceCacheKey) (*entity.ComplianceScore, error) {
	return nil, service.ErrCacheMiss
}

func (noopComplianceCache) Set(context.Context, service.ComplianceCacheKey, *entity.ComplianceScore) error {
	return nil
}

func (noopComplianceCache) Invalidate(context.Context, uuid.UUID) error {
	return nil
}

// Params holds dependencies for the cache provider, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New provides the redis cache when enabled, otherwise the no-op cache.
func New(params Params) service.ComplianceCache {
	cfg := params.Config.Redis
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("Compliance cache disabled")

		return NewNoopComplianceCache()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			// The cache is optional at runtime; an unreachable server only degrades reads.
			if err := client.Ping(ctx).Err(); err != nil {
				params.Logger.Warn("Redis unreachable, compliance scores will be computed uncached",
					slog.String("addr", cfg.Addr),
					slog.Any("error", err),
				)
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return NewRedisComplianceCache(client, cfg.TTL)
}
