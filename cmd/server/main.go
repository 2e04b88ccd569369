package main

import (
	"context"
	"log"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/fastygo/pricing/api/handler"
	"github.com/fastygo/pricing/internal/config"
	"github.com/fastygo/pricing/internal/infrastructure/monitor"
	redisInfra "github.com/fastygo/pricing/internal/infrastructure/redis"
	"github.com/fastygo/pricing/internal/middleware"
	"github.com/fastygo/pricing/internal/router"
	"github.com/fastygo/pricing/internal/services"
	"github.com/fastygo/pricing/internal/services/lifecycle"
	"github.com/fastygo/pricing/pkg/clock"
	"github.com/fastygo/pricing/pkg/httpcontext"
	"github.com/fastygo/pricing/pkg/logger"
	"github.com/fastygo/pricing/repository/memory"
	redisRepo "github.com/fastygo/pricing/repository/redis"
	"github.com/fastygo/pricing/usecase"
	catalogUC "github.com/fastygo/pricing/usecase/catalog"
	pricingUC "github.com/fastygo/pricing/usecase/pricing"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger = zapLogger.With(zap.String("app", cfg.AppName), zap.String("env", cfg.Environment))

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	// Stores
	productStore := memory.NewProductStore()
	if cfg.Catalog.Seed {
		productStore = memory.NewProductStore(memory.SeedProducts()...)
	}
	profileStore := memory.NewProfileStore()
	manager.Register("store", func(ctx context.Context) error {
		productStore.Reset()
		profileStore.Reset()
		return nil
	})

	clk := clock.NewRealClock()
	productRepo := memory.NewProductRepository(productStore)
	profileRepo := memory.NewProfileRepository(profileStore, clk)

	// Optional metadata cache
	var (
		redisClient   *goRedis.Client
		metadataCache usecase.MetadataCache
	)
	if cfg.CacheEnabled() {
		redisClient, err = redisInfra.NewClient(appCtx, cfg.Redis)
		if err != nil {
			zapLogger.Warn("redis unavailable, metadata cache disabled", zap.Error(err))
		} else {
			metadataCache = redisRepo.NewMetadataCache(redisClient, cfg.Cache.TTL)
			manager.Register("redis", func(ctx context.Context) error {
				return redisClient.Close()
			})
		}
	}

	var pinger monitor.Pinger
	if redisClient != nil {
		pinger = redisClient
	}
	mon := monitor.New(pinger, cfg.Monitor.Interval, zapLogger)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	catalogUseCase := catalogUC.New(productRepo, metadataCache, zapLogger)
	pricingUseCase := pricingUC.New(productRepo, profileRepo, clk, zapLogger)

	if metadataCache != nil {
		warmer := services.NewMetadataWarmer(
			catalogUseCase,
			metadataCache,
			mon,
			zapLogger,
			services.WarmerConfig{Interval: cfg.Cache.WarmInterval},
		)
		mon.Refresh()
		if err := warmer.Warm(appCtx); err != nil {
			zapLogger.Warn("initial metadata warm-up failed", zap.Error(err))
		}
		warmer.Start()
		manager.Register("metadata_warmer", func(ctx context.Context) error {
			warmer.Stop(ctx)
			return nil
		})
	}

	ctxAdapter := httpcontext.NewAdapter(appCtx, cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Product:  apiHandler.NewProductHandler(catalogUseCase, ctxAdapter, zapLogger),
		Profile:  apiHandler.NewProfileHandler(pricingUseCase, ctxAdapter, zapLogger),
		Pricing:  apiHandler.NewPricingHandler(pricingUseCase, ctxAdapter, zapLogger),
		Metadata: apiHandler.NewMetadataHandler(catalogUseCase, ctxAdapter, zapLogger),
		Health:   apiHandler.NewHealthHandler(mon, pricingUseCase, ctxAdapter, zapLogger),
	}

	r := router.New(handlers, router.Options{
		EnableMetrics: cfg.HTTP.EnableMetrics,
		EnablePprof:   cfg.HTTP.EnablePprof,
		Logger:        zapLogger,
	})

	handler := middleware.Chain(r.Handler,
		middleware.AccessLog(zapLogger),
		middleware.CORS(cfg.HTTP.AllowedOrigins),
		middleware.Metrics,
	)

	server := &fasthttp.Server{
		Handler:      handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Concurrency:  cfg.HTTP.MaxConn,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started",
			zap.String("address", cfg.Address()),
			zap.Bool("metadata_cache", metadataCache != nil),
			zap.Bool("seeded", cfg.Catalog.Seed))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.ShutdownWithContext(ctx)
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
