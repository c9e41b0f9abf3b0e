//go:build wireinject
// +build wireinject

package di

import (
	"tempo/config"
	"tempo/infras/otel"
	"tempo/infras/redis"
	datetimeService "tempo/internal/domains/datetime/service"
	datetimeHandler "tempo/internal/handlers/datetime"
	"tempo/shared/cache"
	"tempo/shared/timezone"
	"tempo/transport/http"
	"tempo/transport/http/middleware"
	"tempo/transport/http/router"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	timezone.System,
)

var datetimeDomain = wire.NewSet(
	datetimeService.New,
)

var domains = wire.NewSet(
	datetimeDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	datetimeHandler.New,
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
