package settings

import (
	"context"

	gocache "github.com/patrickmn/go-cache"
)

type memoryStore struct {
	cache *gocache.Cache
}

// NewMemory keeps values for the lifetime of the process.
func NewMemory() Store {
	return &memoryStore{
		cache: gocache.New(gocache.NoExpiration, 0),
	}
}

func (m *memoryStore) Get(_ context.Context, key string) (string, error) {
	value, found := m.cache.Get(key)
	if !found {
		return "", ErrNotFound
	}

	str, ok := value.(string)
	if !ok {
		return "", ErrNotFound
	}

	return str, nil
}

func (m *memoryStore) Set(_ context.Context, key, value string) error {
	m.cache.Set(key, value, gocache.NoExpiration)

	return nil
}

func (m *memoryStore) Delete(_ context.Context, key string) error {
	m.cache.Delete(key)

	return nil
}
