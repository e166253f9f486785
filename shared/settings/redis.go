package settings

import (
	"context"
	"errors"
	"fmt"
	"time"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"zonetag/infras/otel"
	"zonetag/shared/constant"
)

const otelSettingsKeyAttribute = "settings.key"

type redisStore struct {
	client  *goRedis.Client
	otel    otel.Otel
	timeout time.Duration
}

// NewRedis stores values as plain strings without expiry. A zero timeout
// leaves the caller's deadline untouched.
func NewRedis(client *goRedis.Client, ot otel.Otel, timeout time.Duration) Store {
	return &redisStore{
		client:  client,
		otel:    ot,
		timeout: timeout,
	}
}

func (r *redisStore) Get(ctx context.Context, key string) (value string, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelSettingsScopeName, constant.OtelSettingsScopeName+".Get")
	defer scope.End()
	defer func() {
		if !errors.Is(err, ErrNotFound) {
			scope.TraceIfError(err)
		}
	}()

	scope.SetAttribute(otelSettingsKeyAttribute, key)

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	value, err = r.client.Get(ctx, key).Result()
	if errors.Is(err, goRedis.Nil) {
		return "", ErrNotFound
	}

	if err != nil {
		log.Error().Err(err).Str("key", key).Str("RedisStore", "Get").Msg("failed to get setting")

		return "", fmt.Errorf("failed to get setting: %w", err)
	}

	return value, nil
}

func (r *redisStore) Set(ctx context.Context, key, value string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelSettingsScopeName, constant.OtelSettingsScopeName+".Set")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelSettingsKeyAttribute, key)

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if err = r.client.Set(ctx, key, value, 0).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Str("RedisStore", "Set").Msg("failed to set setting")

		return fmt.Errorf("failed to set setting: %w", err)
	}

	log.Debug().Str("RedisStore", "Set").Str("key", key).Msg("success to set setting")

	return nil
}

func (r *redisStore) Delete(ctx context.Context, key string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelSettingsScopeName, constant.OtelSettingsScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelSettingsKeyAttribute, key)

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if err = r.client.Del(ctx, key).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Str("RedisStore", "Delete").Msg("failed to delete setting")

		return fmt.Errorf("failed to delete setting: %w", err)
	}

	return nil
}

func (r *redisStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.timeout <= 0 {
		return ctx, func() {}
	}

	return context.WithTimeout(ctx, r.timeout)
}
