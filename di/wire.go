//go:build wireinject
// +build wireinject

package di

import (
	"hallbook/config"
	"hallbook/infras/kafka"
	"hallbook/infras/otel"
	"hallbook/infras/postgres"
	"hallbook/infras/redis"
	"hallbook/shared/cache"
	"hallbook/transport/http"
	"hallbook/transport/http/middleware"
	"hallbook/transport/http/router"

	bookingRepository "hallbook/internal/domains/booking/repository"
	bookingService "hallbook/internal/domains/booking/service"
	hallRepository "hallbook/internal/domains/hall/repository"
	hallService "hallbook/internal/domains/hall/service"
	bookingHandler "hallbook/internal/handlers/booking"
	hallHandler "hallbook/internal/handlers/hall"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var hallDomain = wire.NewSet(
	hallRepository.New,
	hallService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	hallDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	hallHandler.New,
	bookingHandler.New,
	router.New,
)

var server = wire.NewSet(
	wire.Bind(new(http.HealthChecker), new(*postgres.Connection)),
	http.New,
)

func InitializeService() (*http.HTTP, func(), error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		server,
	)

	return nil, nil, nil
}
