package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"parcel-tracker/internal/core/cache"
	"parcel-tracker/internal/core/config"
	"parcel-tracker/internal/core/httpclient"
	"parcel-tracker/internal/core/logger"
	"parcel-tracker/internal/core/proxy"
	"parcel-tracker/internal/core/server"
	assistantadapter "parcel-tracker/internal/features/assistant/adapters"
	assistanthandler "parcel-tracker/internal/features/assistant/handler"
	assistantservice "parcel-tracker/internal/features/assistant/service"
	offeradapter "parcel-tracker/internal/features/offers/adapters"
	offerhandler "parcel-tracker/internal/features/offers/handler"
	"parcel-tracker/internal/features/offers/ports"
	offerservice "parcel-tracker/internal/features/offers/service"
	trackingadapter "parcel-tracker/internal/features/tracking/adapters"
	trackinghandler "parcel-tracker/internal/features/tracking/handler"
	trackingports "parcel-tracker/internal/features/tracking/ports"
	trackingservice "parcel-tracker/internal/features/tracking/service"

	"go.uber.org/zap"
)

// @title Parcel Tracker API
// @version 1.0
// @description Classifies tracking numbers, resolves shipment status through AI search backends with a synthetic fallback, and serves status-keyed offers.
// @contact.name API Support
// @contact.email support@parceltracker.dev
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	// Outbound client shared by every backend
	proxySettings := proxy.FromConfig(cfg.Proxy)
	httpClient := httpclient.NewClientWithProxy(cfg.Backends.Timeout(), proxySettings)
	if proxySettings.HasProxy() {
		l.Info("Outbound proxy enabled", zap.String("proxy", proxySettings.HostPort()))
	}

	backends, unknown := trackingadapter.NewBackends(cfg.Backends, httpClient)
	for _, name := range unknown {
		l.Warn("Ignoring unknown backend in BACKEND_ORDER", zap.String("backend", name))
	}

	resolver := trackingservice.NewResolver(backends, trackingadapter.NewSyntheticGenerator(nil), cfg.Backends.Timeout(), nil)
	l.Info("Resolution pipeline ready", zap.Strings("backends", resolver.ConfiguredBackends()))

	// Optional Redis for record caching and offer overrides
	var recordCache trackingports.RecordCache
	var offerRepo ports.OfferRepository
	if cfg.Cache.RedisURL != "" {
		redisCache, err := cache.NewRedisAdapter(cfg.Cache.RedisURL, "parcel:")
		if err != nil {
			l.Fatal("Invalid REDIS_URL", zap.Error(err))
		}
		defer redisCache.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		err = redisCache.Ping(ctx)
		cancel()
		if err != nil {
			l.Warn("Redis unreachable, continuing without cache", zap.Error(err))
		} else {
			l.Info("Redis connection verified")
			recordCache = trackingadapter.NewRedisRecordCache(redisCache, cfg.Cache.TTL())
			offerRepo = offeradapter.NewRedisOfferRepository(redisCache)
		}
	}

	trackingSvc := trackingservice.NewTrackingService(resolver, recordCache)
	trackingHdl := trackinghandler.NewTrackingHandler(trackingSvc, cfg.RequestTimeout())

	offerSvc := offerservice.NewOfferService(offerRepo)
	offerHdl := offerhandler.NewOfferHandler(offerSvc)

	pplx := trackingadapter.NewPerplexityAdapter(cfg.Backends.PerplexityURL, cfg.Backends.PerplexityAPIKey, cfg.Backends.PerplexityModel, httpClient)
	assistantSvc := assistantservice.NewAssistantService(assistantadapter.NewChatCompleter(pplx.Chat()), nil, cfg.Backends.Timeout())
	assistantHdl := assistanthandler.NewAssistantHandler(assistantSvc)

	srv := server.New(cfg)

	// Register Routes
	trackingHdl.Register(srv.App)
	offerHdl.Register(srv.App)
	assistantHdl.Register(srv.App)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		l.Info("Shutting down server")
		if err := srv.Shutdown(); err != nil {
			l.Error("Server shutdown failed", zap.Error(err))
		}
	}()

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
