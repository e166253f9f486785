package router

import (
	"github.com/go-chi/chi/v5"

	"zonetag/internal/handlers/identity"
	"zonetag/internal/handlers/zone"
)

type DomainHandlers struct {
	Identity identity.Handler
	Zone     zone.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Zone.Router(routerGroup)
		r.DomainHandlers.Identity.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
