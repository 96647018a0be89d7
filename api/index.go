package handler

import (
	"hallbook/config"
	"hallbook/di"
	"hallbook/shared/logger"
	"hallbook/shared/timezone"
	"net/http"
	"sync"

	"github.com/rs/zerolog/log"
)

var (
	once    sync.Once
	service http.Handler
	initErr error
)

// Handler is the serverless entrypoint. Connections are opened on the first
// request and reused by later invocations of the same instance.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()
		logger.SetLogLevel(cfg)

		if initErr = timezone.Init(cfg.App.Timezone); initErr != nil {
			return
		}

		server, _, err := di.InitializeService()
		if err != nil {
			initErr = err

			return
		}

		service = server.Handler()
	})

	if initErr != nil {
		log.Error().Err(initErr).Msg("Failed to initialize service")
		http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)

		return
	}

	r.RequestURI = r.URL.String()

	service.ServeHTTP(w, r)
}
