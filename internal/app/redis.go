package app

import (
	"context"
	"fmt"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"flydreamair/internal/config"
)

// NewRedisClient connects to Redis per the config and attaches New Relic
// datastore instrumentation when an application is supplied. Redis backs
// only the availability cache and idempotent replay, so callers treat the
// client as optional rather than required wiring.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig, nrApp *newrelic.Application) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if nrApp != nil {
		client.AddHook(nrRedisHook{})
	}

	// Verify connection.
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}

// nrRedisHook reports every Redis command as a New Relic datastore segment.
type nrRedisHook struct{}

func (nrRedisHook) DialHook(next redis.DialHook) redis.DialHook { return next }

func (nrRedisHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		defer redisSegment(ctx, cmd.Name()).End()
		return next(ctx, cmd)
	}
}

func (nrRedisHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		defer redisSegment(ctx, "pipeline").End()
		return next(ctx, cmds)
	}
}

// redisSegment opens a datastore segment on the transaction carried by ctx.
// Outside a transaction the segment is never started and End is a no-op.
func redisSegment(ctx context.Context, operation string) *newrelic.DatastoreSegment {
	segment := &newrelic.DatastoreSegment{
		Product:    newrelic.DatastoreRedis,
		Operation:  operation,
		Collection: "redis",
	}
	if txn := newrelic.FromContext(ctx); txn != nil {
		segment.StartTime = txn.StartSegmentNow()
	}
	return segment
}
