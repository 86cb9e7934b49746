package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/thunder-org/thunder-site/api/swagger"
	"github.com/thunder-org/thunder-site/internal/repository"
	"github.com/thunder-org/thunder-site/internal/service"
	"github.com/thunder-org/thunder-site/pkg/cache"
	"github.com/thunder-org/thunder-site/pkg/config"
	"github.com/thunder-org/thunder-site/pkg/logger"
)

// @title Thunder Site
// @version 1.0.0
// @description Landing page, event feed and lead form for Thunder Event Systems
// @BasePath /
// @schemes http https

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	metrics := service.NewMetricsService()

	cacheRepo, closeCache := newCacheRepository(cfg, logr)
	defer closeCache()
	eventCache := service.NewEventCache(service.EventCacheParams{
		Repo:    cacheRepo,
		Metrics: metrics,
		Logger:  logr,
		TTL:     cfg.Events.CacheTTL,
		Enabled: cfg.Events.CacheEnabled,
	})

	backend := repository.NewBackendClient(
		cfg.Backend.BaseURL,
		&http.Client{Timeout: cfg.Backend.Timeout},
		metrics,
		logr,
	)
	events := service.NewEventFeed(service.EventFeedParams{
		Source:  backend,
		Cache:   eventCache,
		Metrics: metrics,
		Logger:  logr,
	})
	forms := service.NewFormStore(service.FormStoreParams{
		Sink:        backend,
		Validator:   service.NewLeadValidator(),
		Metrics:     metrics,
		Logger:      logr,
		TTL:         cfg.Forms.SessionTTL,
		MaxSessions: cfg.Forms.MaxSessions,
	})

	var ready atomic.Bool
	r := newRouter(routeDeps{
		cfg:     cfg,
		logger:  logr,
		metrics: metrics,
		events:  events,
		forms:   forms,
		ready:   ready.Load,
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", server.Addr, "env", cfg.Env, "backend", backend.BaseURL())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()
	ready.Store(true)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ready.Store(false)
	logr.Info("server shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logr.Error("server forced to shutdown", zap.Error(err))
	}
}

// newCacheRepository picks the event cache backend. An unreachable Redis
// degrades to the in-process cache rather than failing startup.
func newCacheRepository(cfg *config.Config, logr *zap.Logger) (service.CacheRepository, func()) {
	if cfg.Events.CacheDriver != config.CacheDriverRedis {
		return repository.NewMemoryCacheRepository(), func() {}
	}
	client, err := cache.NewRedis(context.Background(), cfg.Redis)
	if err != nil {
		logr.Warn("redis unavailable, using in-memory event cache", zap.Error(err))
		return repository.NewMemoryCacheRepository(), func() {}
	}
	repo := repository.NewCacheRepository(client, cfg.Redis.KeyPrefix)
	return repo, func() {
		if err := repo.Close(); err != nil {
			logr.Warn("failed to close redis", zap.Error(err))
		}
	}
}
