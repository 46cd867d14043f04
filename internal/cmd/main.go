package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/matchroom/auction/internal/auction"
	"github.com/matchroom/auction/internal/catalog"
	"github.com/matchroom/auction/internal/gateway"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("could not load .env file")
	}

	// Setup logging
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	level, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	config, err := loadConfig(getEnv("CONFIG_PATH", "config.yaml"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	cat, err := catalog.Load(config.Catalog.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load candidate catalog")
	}

	registry := auction.NewRegistry(cat, config.Rules(), clockwork.NewRealClock())
	connectionManager := gateway.NewConnectionManager(gateway.DefaultConnectionConfig())
	service := gateway.NewService(registry, connectionManager)
	handler := gateway.NewWebSocketHandler(connectionManager)

	server := setupServer(config, handler)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go service.Start(ctx)

	go func() {
		log.Info().
			Str("addr", server.Addr).
			Str("catalog", config.Catalog.Path).
			Int("candidates", cat.Size()).
			Msg("auction server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	sig := <-sigChan

	log.Info().Str("signal", sig.String()).Msg("received shutdown signal")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown failed")
	}

	cancel()
	log.Info().Msg("auction server shutdown complete")
}
