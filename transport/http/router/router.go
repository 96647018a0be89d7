package router

import (
	_ "hallbook/docs" // registers swagger docs
	"hallbook/internal/handlers/booking"
	"hallbook/internal/handlers/hall"
	"hallbook/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Hall    hall.Handler
	Booking booking.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Middleware     middleware.AppMiddleware
}

// SetupRoutes mounts the API at the root, next to /metrics and /swagger.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(
		r.Middleware.RequestID,
		r.Middleware.Recover,
		r.Middleware.Logger,
		r.Middleware.CORS(),
		r.Middleware.Tracing,
		r.Middleware.Metrics,
		r.Middleware.RateLimit(),
	)

	router.Handle("/metrics", promhttp.Handler())
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.DomainHandlers.Hall.Router(router)
	r.DomainHandlers.Booking.Router(router)
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Middleware:     appMiddleware,
	}
}
