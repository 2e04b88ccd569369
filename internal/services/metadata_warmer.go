package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/fastygo/pricing/pkg/metrics"
	"github.com/fastygo/pricing/usecase"
)

// ConnectionHealth abstracts the connection monitor functionality.
type ConnectionHealth interface {
	IsOnline() bool
}

// MetadataLoader computes a metadata list from the catalog, bypassing any cache.
type MetadataLoader interface {
	Load(ctx context.Context, kind usecase.MetadataKind) ([]string, error)
}

// WarmerConfig controls how frequently the metadata cache is rebuilt.
type WarmerConfig struct {
	Interval time.Duration
}

// MetadataWarmer periodically recomputes every metadata list and writes it to the cache,
// so reads after a catalog change do not all miss at once.
type MetadataWarmer struct {
	loader  MetadataLoader
	cache   usecase.MetadataCache
	monitor ConnectionHealth
	logger  *zap.Logger
	cron    *cron.Cron
	cfg     WarmerConfig
}

func NewMetadataWarmer(
	loader MetadataLoader,
	cache usecase.MetadataCache,
	monitor ConnectionHealth,
	logger *zap.Logger,
	cfg WarmerConfig,
) *MetadataWarmer {
	if cfg.Interval < time.Second {
		cfg.Interval = time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	w := &MetadataWarmer{
		loader:  loader,
		cache:   cache,
		monitor: monitor,
		logger:  logger,
		cfg:     cfg,
		cron:    cron.New(cron.WithSeconds()),
	}

	schedule := fmt.Sprintf("@every %ds", int(cfg.Interval.Seconds()))
	_, _ = w.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Interval)
		defer cancel()
		if err := w.Warm(ctx); err != nil {
			w.logger.Error("metadata warm-up failed", zap.Error(err))
		}
	})

	return w
}

// Start launches the cron scheduler.
func (w *MetadataWarmer) Start() {
	if w == nil || w.cron == nil {
		return
	}
	w.cron.Start()
	w.logger.Info("metadata warmer started", zap.Duration("interval", w.cfg.Interval))
}

// Stop gracefully stops the scheduler, waiting for a running warm-up or ctx.
func (w *MetadataWarmer) Stop(ctx context.Context) {
	if w == nil || w.cron == nil {
		return
	}
	stopCtx := w.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
	}
	w.logger.Info("metadata warmer stopped")
}

// Warm rebuilds every metadata list synchronously. It is a no-op while the cache is offline.
func (w *MetadataWarmer) Warm(ctx context.Context) error {
	if w == nil || w.cache == nil || w.loader == nil {
		return nil
	}
	if w.monitor != nil && !w.monitor.IsOnline() {
		w.logger.Debug("skipping metadata warm-up (cache offline)")
		metrics.CacheWarmups.WithLabelValues("skipped").Inc()
		return nil
	}

	generation, err := w.cache.Generation(ctx)
	if err != nil {
		metrics.CacheWarmups.WithLabelValues("failed").Inc()
		return fmt.Errorf("read cache generation: %w", err)
	}

	var result error
	for _, kind := range usecase.MetadataKinds() {
		values, err := w.loader.Load(ctx, kind)
		if err != nil {
			result = errors.Join(result, fmt.Errorf("load %s: %w", kind, err))
			continue
		}
		stored, err := w.cache.Set(ctx, kind, generation, values)
		if err != nil {
			result = errors.Join(result, fmt.Errorf("cache %s: %w", kind, err))
			continue
		}
		if !stored {
			// A catalog write invalidated the cache mid warm-up; readers refill it.
			w.logger.Debug("metadata warm-up superseded by invalidation", zap.String("kind", string(kind)))
		}
	}

	if result != nil {
		metrics.CacheWarmups.WithLabelValues("failed").Inc()
		return result
	}
	metrics.CacheWarmups.WithLabelValues("ok").Inc()
	return nil
}
