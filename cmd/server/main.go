package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/cargosight/tracking-api/internal/api"
	"github.com/cargosight/tracking-api/internal/core/ports"
	"github.com/cargosight/tracking-api/internal/core/service"
	mongodb "github.com/cargosight/tracking-api/internal/infrastructure/db/mongo"
	redisdb "github.com/cargosight/tracking-api/internal/infrastructure/db/redis"
	"github.com/cargosight/tracking-api/internal/infrastructure/queue"
	"github.com/cargosight/tracking-api/internal/infrastructure/vendor"
	"github.com/cargosight/tracking-api/internal/pkg/config"
	"github.com/cargosight/tracking-api/pkg/logger"

	_ "github.com/cargosight/tracking-api/docs"
)

//	@title			Cargosight Tracking API
//	@version		1.0
//	@description	Canonical shipment view over heterogeneous logistics vendors: identifier resolution with fallback, operator writes with audit trail, vessel positions.

//	@host		localhost:8080
//	@BasePath	/

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

const shutdownTimeout = 30 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
		Service: "tracking-api",
	})

	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Strs("vendors", cfg.Vendors.Priority).
		Msg("starting tracking api")

	ctx := context.Background()

	// --- Backing stores ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connect failed")
	}

	shipmentRepo := mongodb.NewShipmentRepository(db)
	if err := shipmentRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("ensure indexes failed")
	}
	auditRepo := mongodb.NewAuditRepository(db)
	deduper := redisdb.NewUpdateDeduper(rdb)

	// --- Vendor adapters and services ---
	adapters, byName := buildVendors(cfg, log)
	if len(adapters) == 0 {
		log.Warn().Msg("no vendors configured, resolution is local-only")
	}

	resolver := service.NewResolverService(shipmentRepo, adapters, log)
	queries := service.NewQueryService(shipmentRepo, auditRepo, log)
	positions := service.NewPositionService(buildVesselFeed(cfg, log), log)

	pusher := service.NewVendorPusher(byName, log)
	dispatcher := queue.NewDispatcher(0, pusher, log)
	dispatcher.Start()

	updates := service.NewUpdateService(shipmentRepo, auditRepo, deduper, dispatcher, byName, log)

	// --- HTTP server ---
	e := api.NewRouter(api.Dependencies{
		Resolver:  resolver,
		Updates:   updates,
		Queries:   queries,
		Positions: positions,
		Mongo:     db,
		Redis:     rdb,
		JWTSecret: cfg.JWTSecret,
		Log:       log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server start failed")
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// Stop accepting requests first, then drain queued vendor pushes, then
	// release the stores.
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	dispatcher.Stop()

	if err := mongodb.Disconnect(mongoClient); err != nil {
		log.Error().Err(err).Msg("mongo disconnect failed")
	}
	if err := rdb.Close(); err != nil {
		log.Error().Err(err).Msg("redis close failed")
	}

	log.Info().Msg("stopped")
}

// buildVendors constructs one adapter per entry in the priority list,
// preserving order for the resolver. Unknown names are skipped with a
// warning rather than failing startup, so a typo in VENDOR_PRIORITY degrades
// instead of taking the service down.
func buildVendors(cfg *config.Config, log zerolog.Logger) ([]ports.VendorAdapter, map[string]ports.VendorAdapter) {
	newClient := func(name, baseURL, apiKey string) *vendor.Client {
		return vendor.NewClient(name, vendor.ClientConfig{
			BaseURL:    baseURL,
			APIKey:     apiKey,
			MaxRetries: cfg.Retry.MaxRetries,
			RetryDelay: cfg.Retry.RetryDelay,
		}, log)
	}

	build := map[string]func() ports.VendorAdapter{
		vendor.VendorLogitude: func() ports.VendorAdapter {
			return vendor.NewLogitude(newClient(vendor.VendorLogitude, cfg.Vendors.LogitudeURL, cfg.Vendors.LogitudeKey))
		},
		vendor.VendorDPWorld: func() ports.VendorAdapter {
			return vendor.NewDPWorld(newClient(vendor.VendorDPWorld, cfg.Vendors.DPWorldURL, cfg.Vendors.DPWorldKey))
		},
		vendor.VendorTrackTrace: func() ports.VendorAdapter {
			return vendor.NewTrackTrace(newClient(vendor.VendorTrackTrace, cfg.Vendors.TrackingURL, cfg.Vendors.TrackingKey))
		},
	}

	var ordered []ports.VendorAdapter
	byName := make(map[string]ports.VendorAdapter, len(build))
	for _, raw := range cfg.Vendors.Priority {
		name := strings.TrimSpace(raw)
		ctor, ok := build[name]
		if !ok {
			log.Warn().Str("vendor", name).Msg("unknown vendor in priority list, skipping")
			continue
		}
		if _, dup := byName[name]; dup {
			continue
		}
		adapter := ctor()
		ordered = append(ordered, adapter)
		byName[name] = adapter
	}
	return ordered, byName
}

// buildVesselFeed wires the live AIS feed only when an API key is present.
// No key means the position service simulates, which is the supported
// development mode, not an error.
func buildVesselFeed(cfg *config.Config, log zerolog.Logger) ports.VesselFeed {
	if cfg.Feed.APIKey == "" {
		log.Info().Msg("no vessel feed key, positions will be simulated")
		return nil
	}
	return vendor.NewVesselFeed(vendor.NewClient(vendor.VendorVesselFeed, vendor.ClientConfig{
		BaseURL:    cfg.Feed.BaseURL,
		APIKey:     cfg.Feed.APIKey,
		MaxRetries: cfg.Retry.MaxRetries,
		RetryDelay: cfg.Retry.RetryDelay,
	}, log))
}
