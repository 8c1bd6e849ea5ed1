// Package main provides the Solace API server entrypoint.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/solacehq/solace/internal/cache"
	"github.com/solacehq/solace/internal/config"
	"github.com/solacehq/solace/internal/conversation"
	"github.com/solacehq/solace/internal/observability"
	"github.com/solacehq/solace/internal/registry"
	"github.com/solacehq/solace/internal/trust"
)

func main() {
	// .env is optional, used for local development.
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if len(os.Args) > 2 && os.Args[1] == "--config" {
		cfgPath = os.Args[2]
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(observability.LogConfig{
		Level:       cfg.Observability.LogLevel,
		Format:      cfg.Observability.LogFormat,
		ServiceName: cfg.Observability.ServiceName,
	})

	logger.Info().
		Str("host", cfg.Server.Host).
		Int("port", cfg.Server.Port).
		Str("cache", cfg.Cache.Driver).
		Msg("Starting Solace API")

	reg, err := registry.New()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load resource registry")
	}
	logger.Info().
		Int("resources", reg.ResourceCount()).
		Int("knowledge", reg.KnowledgeCount()).
		Msg("Registry loaded")

	cacheClient, err := newCacheClient(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create cache client")
	}
	defer cacheClient.Close()

	eng := trust.NewEngine(logger, cacheClient, trust.Config{
		CacheTTL:         cfg.Cache.TTL,
		ProbeTimeout:     cfg.Trust.ProbeTimeout,
		ProbeConcurrency: cfg.Trust.ProbeConcurrency,
		FreshnessWindow:  cfg.Trust.FreshnessWindow,
		StalenessHorizon: cfg.Trust.StalenessHorizon,
	})

	var replyGen conversation.ReplyGenerator
	if cfg.ReplyGen.Endpoint != "" {
		replyGen = conversation.NewHTTPReplyGenerator(logger, cfg.ReplyGen.Endpoint, cfg.ReplyGen.Timeout)
	} else {
		logger.Warn().Msg("No reply generator configured, all turns will use the fallback message")
	}

	orch := conversation.NewOrchestrator(logger, reg, eng, replyGen, conversation.Config{
		MaxResources: cfg.Journey.MaxResources,
		MaxKnowledge: cfg.Journey.MaxKnowledge,
		TurnDeadline: cfg.Trust.TurnDeadline,
	})

	router := NewRouter(logger, cfg, reg, eng, orch)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", addr).Msg("HTTP server listening")
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		logger.Error().Err(err).Msg("Server error")
	case sig := <-shutdown:
		logger.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.GracefulShutdown)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Graceful shutdown failed")
		if err := srv.Close(); err != nil {
			logger.Error().Err(err).Msg("Forced shutdown failed")
		}
	}

	logger.Info().Msg("Server stopped")
}

func newCacheClient(cfg *config.Config) (cache.Client, error) {
	if cfg.Cache.Driver == "redis" {
		return cache.NewRedisClient(cache.RedisConfig{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
			PoolSize: cfg.Cache.Redis.PoolSize,
		})
	}
	return cache.NewMemoryClient(cfg.Cache.MaxEntries), nil
}
