package main

import (
	"github.com/rs/zerolog/log"

	"zonetag/config"
	"zonetag/di"
	"zonetag/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http, err := di.InitializeService()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize service")
	}

	http.Serve()
}
