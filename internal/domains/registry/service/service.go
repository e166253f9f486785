package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"unicode/utf8"

	"zonetag/infras/otel"
	"zonetag/internal/domains/registry/model"
	"zonetag/internal/domains/registry/repository"
	"zonetag/shared/constant"
	"zonetag/shared/logger"
)

const (
	logComponent = "registry"

	otelIdentityAttribute = "registry.identity_id"
	otelZoneAttribute     = "registry.zone"
)

// ErrInvalidIdentity rejects identity ids that are not valid UTF-8; the
// persisted JSON blob could not hold them losslessly.
var ErrInvalidIdentity = errors.New("identity id must be valid UTF-8")

// Registry maps identities to canonical zone ids and mirrors every change to
// the persisted blob. Mutations are kept in memory even when persisting fails;
// the failure is logged and returned.
type Registry interface {
	// Load replaces the mapping with the persisted blob. A missing,
	// unreadable or malformed blob yields an empty mapping.
	Load(ctx context.Context)
	// Restore replaces the mapping from a raw blob; "" means absent.
	Restore(blob string)
	Get(identityID string) (zone string, ok bool)
	// Set does not check zone against the catalog. Ids that are not valid
	// UTF-8 are rejected with ErrInvalidIdentity and the mapping is unchanged.
	Set(ctx context.Context, identityID, zone string) error
	Remove(ctx context.Context, identityID string) error
	// RemoveAll clears the mapping and deletes the persisted blob.
	RemoveAll(ctx context.Context) error
	Serialize() string
	Entries() model.Entries
}

type serviceImpl struct {
	mu      sync.RWMutex
	entries model.Entries
	repo    repository.Registry
	otel    otel.Otel
}

func New(repo repository.Registry, otel otel.Otel) Registry {
	return &serviceImpl{
		entries: model.Entries{},
		repo:    repo,
		otel:    otel,
	}
}

// Open builds a registry and loads the persisted blob.
func Open(repo repository.Registry, otel otel.Otel) Registry {
	registry := New(repo, otel)
	registry.Load(context.Background())

	return registry
}

func (s *serviceImpl) Load(ctx context.Context) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Load")
	defer scope.End()

	blob, found, err := s.repo.Load(ctx)
	if err != nil {
		scope.TraceError(err)
		logger.Component(logComponent).Warn().Err(err).Msg("failed to read persisted timezones, starting empty")

		s.replace(model.Entries{})

		return
	}

	if !found {
		logger.Component(logComponent).Debug().Msg("no persisted timezones, starting empty")

		s.replace(model.Entries{})

		return
	}

	s.Restore(blob)

	scope.SetAttribute("registry.size", len(s.Entries()))
}

func (s *serviceImpl) Restore(blob string) {
	if blob == "" {
		s.replace(model.Entries{})

		return
	}

	entries, err := model.Parse(blob)
	if err != nil {
		logger.Component(logComponent).Warn().Err(err).Msg("persisted timezones are malformed, starting empty")
	}

	s.replace(entries)
}

func (s *serviceImpl) Get(identityID string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	zone, ok := s.entries[identityID]

	return zone, ok
}

func (s *serviceImpl) Set(ctx context.Context, identityID, zone string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Set")
	defer scope.End()

	if !utf8.ValidString(identityID) {
		scope.TraceError(ErrInvalidIdentity)

		return fmt.Errorf("timezone for %q not set: %w", identityID, ErrInvalidIdentity)
	}

	scope.SetAttributes(map[string]any{
		otelIdentityAttribute: identityID,
		otelZoneAttribute:     zone,
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[identityID] = zone

	if err := s.persist(ctx); err != nil {
		scope.TraceError(err)

		return fmt.Errorf("timezone for %q kept in memory only: %w", identityID, err)
	}

	logger.Component(logComponent).Debug().Str("identity", identityID).Str("zone", zone).Msg("timezone set")

	return nil
}

func (s *serviceImpl) Remove(ctx context.Context, identityID string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Remove")
	defer scope.End()

	if !utf8.ValidString(identityID) {
		scope.TraceError(ErrInvalidIdentity)

		return fmt.Errorf("timezone for %q not removed: %w", identityID, ErrInvalidIdentity)
	}

	scope.SetAttribute(otelIdentityAttribute, identityID)

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, identityID)

	if err := s.persist(ctx); err != nil {
		scope.TraceError(err)

		return fmt.Errorf("removal of %q kept in memory only: %w", identityID, err)
	}

	logger.Component(logComponent).Debug().Str("identity", identityID).Msg("timezone removed")

	return nil
}

func (s *serviceImpl) RemoveAll(ctx context.Context) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RemoveAll")
	defer scope.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = model.Entries{}

	if err := s.repo.Delete(ctx); err != nil {
		scope.TraceError(err)
		logger.Component(logComponent).Warn().Err(err).Msg("failed to delete persisted timezones")

		return fmt.Errorf("failed to remove all timezones: %w", err)
	}

	logger.Component(logComponent).Info().Msg("all timezones removed")

	return nil
}

func (s *serviceImpl) Serialize() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.entries.Serialize()
}

func (s *serviceImpl) Entries() model.Entries {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.entries.Clone()
}

func (s *serviceImpl) replace(entries model.Entries) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = entries
}

// persist must run with s.mu held.
func (s *serviceImpl) persist(ctx context.Context) error {
	if err := s.repo.Save(ctx, s.entries.Serialize()); err != nil {
		logger.Component(logComponent).Warn().Err(err).Msg("failed to persist timezones, continuing with unsaved state")

		return err
	}

	return nil
}
