//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"github.com/GitMovi52027/movi5/config"
	"github.com/GitMovi52027/movi5/infras/jwt"
	"github.com/GitMovi52027/movi5/infras/otel"
	"github.com/GitMovi52027/movi5/infras/postgres"
	"github.com/GitMovi52027/movi5/infras/redis"
	"github.com/GitMovi52027/movi5/permissions"
	"github.com/GitMovi52027/movi5/shared/cache"
	"github.com/GitMovi52027/movi5/transport/http"
	"github.com/GitMovi52027/movi5/transport/http/middleware"
	"github.com/GitMovi52027/movi5/transport/http/router"

	authService "github.com/GitMovi52027/movi5/internal/domains/auth/service"
	configurationRepository "github.com/GitMovi52027/movi5/internal/domains/configuration/repository"
	configurationService "github.com/GitMovi52027/movi5/internal/domains/configuration/service"
	dashboardService "github.com/GitMovi52027/movi5/internal/domains/dashboard/service"
	requestRepository "github.com/GitMovi52027/movi5/internal/domains/request/repository"
	requestService "github.com/GitMovi52027/movi5/internal/domains/request/service"
	routeRepository "github.com/GitMovi52027/movi5/internal/domains/route/repository"
	routeService "github.com/GitMovi52027/movi5/internal/domains/route/service"
	userRepository "github.com/GitMovi52027/movi5/internal/domains/user/repository"
	webhookRepository "github.com/GitMovi52027/movi5/internal/domains/webhook/repository"
	webhookService "github.com/GitMovi52027/movi5/internal/domains/webhook/service"

	authHandler "github.com/GitMovi52027/movi5/internal/handlers/auth"
	configurationHandler "github.com/GitMovi52027/movi5/internal/handlers/configuration"
	dashboardHandler "github.com/GitMovi52027/movi5/internal/handlers/dashboard"
	requestHandler "github.com/GitMovi52027/movi5/internal/handlers/request"
	routeHandler "github.com/GitMovi52027/movi5/internal/handlers/route"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
)

var middlewares = wire.NewSet(
	permissions.Get,
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var configurationDomain = wire.NewSet(
	configurationRepository.New,
	configurationService.New,
	wire.Bind(new(webhookService.URLResolver), new(configurationService.Configuration)),
)

var webhookDomain = wire.NewSet(
	webhookRepository.New,
	webhookService.New,
)

var routeDomain = wire.NewSet(
	routeRepository.New,
	routeService.New,
)

var requestDomain = wire.NewSet(
	requestRepository.New,
	requestRepository.NewNote,
	requestService.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var dashboardDomain = wire.NewSet(
	dashboardService.New,
)

var domains = wire.NewSet(
	configurationDomain,
	webhookDomain,
	routeDomain,
	requestDomain,
	authDomain,
	dashboardDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	routeHandler.New,
	requestHandler.New,
	configurationHandler.New,
	dashboardHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
