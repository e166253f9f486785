package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"zonetag/config"
	"zonetag/infras/otel/mocks"
	"zonetag/internal/domains/registry/repository"
	"zonetag/shared/settings"
	settingsMocks "zonetag/shared/settings/mocks"
)

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Store.Key = "timezones"

	return cfg
}

func TestRegistryRepository_Load(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(store *settingsMocks.MockStore)
		wantBlob  string
		wantFound bool
		wantErr   bool
	}{
		{
			name: "stored blob",
			setupMock: func(store *settingsMocks.MockStore) {
				store.EXPECT().Get(gomock.Any(), "timezones").Return(`{"u1":"UTC"}`, nil)
			},
			wantBlob:  `{"u1":"UTC"}`,
			wantFound: true,
		},
		{
			name: "nothing stored",
			setupMock: func(store *settingsMocks.MockStore) {
				store.EXPECT().Get(gomock.Any(), "timezones").Return("", settings.ErrNotFound)
			},
		},
		{
			name: "store failure",
			setupMock: func(store *settingsMocks.MockStore) {
				store.EXPECT().Get(gomock.Any(), "timezones").Return("", errors.New("connection reset"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := settingsMocks.NewMockStore(ctrl)
			tt.setupMock(store)

			repo := repository.New(store, newConfig(), mocks.NewOtel())

			blob, found, err := repo.Load(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			assert.Equal(t, tt.wantBlob, blob)
			assert.Equal(t, tt.wantFound, found)
		})
	}
}

func TestRegistryRepository_SaveAndDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := settingsMocks.NewMockStore(ctrl)
	ot := mocks.NewOtel()
	repo := repository.New(store, newConfig(), ot)
	ctx := context.Background()

	gomock.InOrder(
		store.EXPECT().Set(gomock.Any(), "timezones", `{"u1":"UTC"}`).Return(nil),
		store.EXPECT().Set(gomock.Any(), "timezones", `{}`).Return(errors.New("read only")),
		store.EXPECT().Delete(gomock.Any(), "timezones").Return(nil),
		store.EXPECT().Delete(gomock.Any(), "timezones").Return(errors.New("read only")),
	)

	assert.NoError(t, repo.Save(ctx, `{"u1":"UTC"}`))
	assert.ErrorContains(t, repo.Save(ctx, `{}`), "read only")
	assert.NoError(t, repo.Delete(ctx))
	assert.ErrorContains(t, repo.Delete(ctx), "read only")

	assert.Len(t, ot.Errors(), 2)
}

func TestRegistryRepository_WithMemoryStore(t *testing.T) {
	repo := repository.New(settings.NewMemory(), newConfig(), mocks.NewOtel())
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, `{"u1":"Europe/Berlin"}`))

	blob, found, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"u1":"Europe/Berlin"}`, blob)

	require.NoError(t, repo.Delete(ctx))

	_, found, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.False(t, found)
}
