package main

import (
	"context"
	"os"

	"dms-converter/internal/config"
	"dms-converter/internal/handler"
	"dms-converter/internal/logging"
	"dms-converter/internal/repository"
	"dms-converter/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	logging.Setup(os.Stderr, config.LogLevel)

	// Initialize layers
	coordinateService := service.NewCoordinateService(config.StrictDMS)

	// Nearest point lookups need the imported points; without a database only
	// conversion is served.
	var nearestPointService handler.NearestPointService
	if config.DBSource != "" {
		conn, err := pgxpool.New(context.Background(), config.DBSource)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot connect to db")
		}
		defer conn.Close()

		nearestPointService = service.NewNearestPointService(repository.NewRepository(conn))
	}

	r := handler.NewRouter(coordinateService, nearestPointService)

	log.Info().Str("addr", config.ServerAddress).Msg("starting server")
	if err := r.Run(config.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
