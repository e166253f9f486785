//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"zonetag/config"
	"zonetag/infras/otel"
	registryRepository "zonetag/internal/domains/registry/repository"
	registryService "zonetag/internal/domains/registry/service"
	renderService "zonetag/internal/domains/render/service"
	identityHandler "zonetag/internal/handlers/identity"
	zoneHandler "zonetag/internal/handlers/zone"
	"zonetag/shared/locale"
	"zonetag/shared/settings"
	"zonetag/transport/http"
	"zonetag/transport/http/middleware"
	"zonetag/transport/http/router"
)

var configurations = wire.NewSet(
	config.Get,
	locale.FromConfig,
)

var infrastructures = wire.NewSet(
	otel.New,
	settings.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var registryDomain = wire.NewSet(
	registryRepository.New,
	registryService.Open,
)

var renderDomain = wire.NewSet(
	wire.Bind(new(renderService.Lookup), new(registryService.Registry)),
	renderService.New,
)

var domains = wire.NewSet(
	registryDomain,
	renderDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	identityHandler.New,
	zoneHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}, nil
}
