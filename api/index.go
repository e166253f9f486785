package handler

import (
	"net/http"
	"sync"

	"github.com/rs/zerolog/log"

	"zonetag/config"
	"zonetag/di"
	"zonetag/shared/constant"
	"zonetag/shared/logger"
	zonetagHTTP "zonetag/transport/http"
	"zonetag/transport/http/response"
)

var (
	server  *zonetagHTTP.HTTP
	initErr error
	once    sync.Once
)

// Handler is the serverless entry point. The service graph is built once per
// instance so registered timezones survive between invocations.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		if cfg.Store.Driver == constant.StoreDriverMemory {
			log.Warn().Msg("No settings store driver configured, timezones are kept per instance")
		}

		server, initErr = di.InitializeService()
	})

	if initErr != nil {
		response.WithError(w, initErr)

		return
	}

	server.ServeHTTP(w, r)
}
