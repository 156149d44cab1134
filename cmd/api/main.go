package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/emicklei/go-restful/v3"
	"github.com/joho/godotenv"
	"github.com/povarna/fac-evaluator/internal/api"
	"github.com/povarna/fac-evaluator/internal/config"
	"github.com/povarna/fac-evaluator/internal/setup"
	applog "github.com/povarna/fac-evaluator/internal/setup/logger"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Setup logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	logger := log.Logger

	// Load env
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found")
	}

	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	logger = applog.New(cfg.LogLevel)

	deps, err := setup.Wire(ctx, cfg, &logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to wire dependencies")
	}

	// A run starts when the server does; results accumulate until restart.
	deps.Collector.SetUp()

	container := restful.NewContainer()
	handler := api.NewHandler(deps.Judge, deps.Collector, &logger)
	api.RegisterRoutes(container, handler)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(container)

	addr := os.Getenv("API_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	log.Info().Str("addr", addr).Msg("FAC evaluator API listening")
	if err := http.ListenAndServe(addr, corsHandler); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}
