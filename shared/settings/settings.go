// Package settings provides the key/value surface that holds persisted blobs.
package settings

//go:generate go run go.uber.org/mock/mockgen -source=./settings.go -destination=./mocks/settings_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"zonetag/config"
	"zonetag/infras/otel"
	"zonetag/infras/redis"
	"zonetag/shared/constant"
)

var ErrNotFound = errors.New("settings: key not found")

type Store interface {
	// Get returns ErrNotFound when key has never been set or was deleted.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	// Delete is a no-op for missing keys.
	Delete(ctx context.Context, key string) error
}

// New builds the store selected by STORE_DRIVER.
func New(cfg *config.Config, ot otel.Otel) (Store, error) {
	switch cfg.Store.Driver {
	case constant.StoreDriverMemory, constant.Empty:
		return NewMemory(), nil
	case constant.StoreDriverFile:
		return NewFile(cfg.Store.FilePath), nil
	case constant.StoreDriverRedis:
		timeout := time.Duration(cfg.Store.TimeoutSeconds) * time.Second

		return NewRedis(redis.New(cfg), ot, timeout), nil
	default:
		return nil, fmt.Errorf("unknown settings store driver %q", cfg.Store.Driver)
	}
}
