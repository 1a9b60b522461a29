package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"adsnap/internal/http/handlers"
	httpapi "adsnap/internal/http/httpapi"
	"adsnap/internal/infra"
	"adsnap/internal/providers/bria"
	"adsnap/internal/services"
)

func main() {
	// Load .env when present
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv, cfg.LogLevel)
	metrics := infra.NewMetrics()

	if !cfg.APIKeyConfigured() {
		logger.Warn().Msg("BRIA_API_KEY not set; requests must carry api_key")
	}

	client := bria.NewClient(bria.Options{
		BaseURL:        cfg.BriaBaseURL,
		Logger:         &logger,
		Observer:       metrics,
		RequestTimeout: cfg.BriaTimeout,
	})
	app := handlers.NewApp(services.NewService(client), cfg, &logger)

	router := httpapi.NewRouter(app, httpapi.Deps{
		Logger:          logger,
		Metrics:         metrics,
		RateLimitPerMin: cfg.RateLimitPerMin,
	})

	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().
			Str("addr", server.Addr()).
			Str("bria_base_url", client.BaseURL()).
			Msg("API listening")
		if err := server.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
