package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dvloznov/finance-dashboard-proxy/internal/api"
	"github.com/dvloznov/finance-dashboard-proxy/internal/api/middleware"
	"github.com/dvloznov/finance-dashboard-proxy/internal/cache"
	"github.com/dvloznov/finance-dashboard-proxy/internal/config"
	"github.com/dvloznov/finance-dashboard-proxy/internal/logger"
	"github.com/dvloznov/finance-dashboard-proxy/internal/notion"
	"github.com/rs/zerolog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New()
		bootLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Parse command-line flags
	port := flag.String("port", cfg.Server.Port, "HTTP server port (or set PORT env)")
	flag.Parse()
	cfg.Server.Port = *port

	log := logger.NewWithOptions(logger.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	log = logger.WithFields(log, map[string]interface{}{
		"service": "finance-dashboard-proxy",
	})

	for _, warning := range cfg.Warnings() {
		log.Warn().Msg(warning)
	}

	server, cleanup, err := newServer(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize server")
	}
	defer cleanup()

	// Start server in a goroutine
	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("Starting API server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// newServer wires the cache, Notion client and optional rate limiter into an
// http.Server. cleanup releases the cache and limiter.
func newServer(cfg *config.Config, log zerolog.Logger) (*http.Server, func(), error) {
	store, err := cache.Open(cfg.Cache.URL)
	if err != nil {
		return nil, nil, err
	}
	responseCache := cache.New(store, log)

	if pinger, ok := store.(interface{ Ping(context.Context) error }); ok {
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := pinger.Ping(pingCtx); err != nil {
			log.Warn().Err(err).Msg("Cache store unreachable; requests will fall through to Notion")
		}
		cancel()
	}

	client := notion.NewClient(cfg.Notion.Token, cfg.Notion.DatabaseID,
		notion.WithHTTPClient(&http.Client{Timeout: cfg.Notion.Timeout}),
		notion.WithBaseURL(cfg.Notion.APIURL),
		notion.WithVersion(cfg.Notion.Version),
	)

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.PerMinute > 0 {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.PerMinute, cfg.RateLimit.Burst).
			TrustProxy(cfg.RateLimit.TrustProxy)
	}

	handler := api.NewHandler(api.Dependencies{
		Source:           client,
		Cache:            responseCache,
		DatabaseID:       cfg.Notion.DatabaseID,
		DashboardSecret:  cfg.Auth.DashboardSecret,
		InvalidateSecret: cfg.Auth.InvalidateSecret,
		Limiter:          limiter,
		Log:              log,
	})

	log.Info().
		Bool("cache_enabled", responseCache.Enabled()).
		Bool("rate_limit", limiter != nil).
		Msg("Server initialized")

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Notion.Timeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	cleanup := func() {
		if limiter != nil {
			limiter.Stop()
		}
		if err := responseCache.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close cache")
		}
	}
	return server, cleanup, nil
}
