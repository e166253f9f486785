package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"zonetag/config"
	"zonetag/infras/otel"
	"zonetag/shared/constant"
	"zonetag/shared/settings"
)

const otelBlobKeyAttribute = "registry.blob_key"

// Registry reads and writes the persisted registry blob.
type Registry interface {
	// Load reports found=false, without error, when no blob has been stored.
	Load(ctx context.Context) (blob string, found bool, err error)
	Save(ctx context.Context, blob string) error
	Delete(ctx context.Context) error
}

type repositoryImpl struct {
	store settings.Store
	key   string
	otel  otel.Otel
}

func New(store settings.Store, cfg *config.Config, otel otel.Otel) Registry {
	return &repositoryImpl{
		store: store,
		key:   cfg.Store.Key,
		otel:  otel,
	}
}

func (r *repositoryImpl) Load(ctx context.Context) (blob string, found bool, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Load")
	defer scope.End()

	scope.SetAttribute(otelBlobKeyAttribute, r.key)

	blob, err = r.store.Get(ctx, r.key)
	if errors.Is(err, settings.ErrNotFound) {
		return "", false, nil
	}

	if err != nil {
		scope.TraceError(err)

		return "", false, fmt.Errorf("failed to load registry blob: %w", err)
	}

	return blob, true, nil
}

func (r *repositoryImpl) Save(ctx context.Context, blob string) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Save")
	defer scope.End()

	scope.SetAttribute(otelBlobKeyAttribute, r.key)

	if err := r.store.Set(ctx, r.key, blob); err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to save registry blob: %w", err)
	}

	return nil
}

func (r *repositoryImpl) Delete(ctx context.Context) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Delete")
	defer scope.End()

	scope.SetAttribute(otelBlobKeyAttribute, r.key)

	if err := r.store.Delete(ctx, r.key); err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to delete registry blob: %w", err)
	}

	return nil
}
