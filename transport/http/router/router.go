package router

import (
	"github.com/go-chi/chi/v5"

	"github.com/GitMovi52027/movi5/internal/handlers/auth"
	"github.com/GitMovi52027/movi5/internal/handlers/configuration"
	"github.com/GitMovi52027/movi5/internal/handlers/dashboard"
	"github.com/GitMovi52027/movi5/internal/handlers/request"
	"github.com/GitMovi52027/movi5/internal/handlers/route"
)

type DomainHandlers struct {
	Auth          auth.Handler
	Route         route.Handler
	Request       request.Handler
	Configuration configuration.Handler
	Dashboard     dashboard.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Route.Router(routerGroup)
		r.DomainHandlers.Request.Router(routerGroup)
		r.DomainHandlers.Configuration.Router(routerGroup)
		r.DomainHandlers.Dashboard.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
