package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/priyanshuraj27/Smart-City-Infrastructure-IoT-Analytics-System/internal/cache"
	"github.com/priyanshuraj27/Smart-City-Infrastructure-IoT-Analytics-System/internal/config"
	"github.com/priyanshuraj27/Smart-City-Infrastructure-IoT-Analytics-System/internal/logger"
	"github.com/priyanshuraj27/Smart-City-Infrastructure-IoT-Analytics-System/internal/schema"
	"github.com/priyanshuraj27/Smart-City-Infrastructure-IoT-Analytics-System/internal/server"
	"github.com/priyanshuraj27/Smart-City-Infrastructure-IoT-Analytics-System/internal/store"
)

func main() {
	// 1. Config and logger
	cfg := config.Load()

	zl, err := logger.New(cfg.Log.Level, cfg.Log.Format, "smartcity-api")
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	gin.SetMode(cfg.HTTP.GinMode)

	// 2. Database, then schema
	ctx := context.Background()
	db, err := store.Open(ctx, cfg, zl)
	if err != nil {
		zl.Fatal("failed to open database", zap.String("driver", cfg.Database.Driver), zap.Error(err))
	}
	defer func() {
		if err := store.Close(db); err != nil {
			zl.Warn("failed to close database", zap.Error(err))
		}
	}()

	if cfg.Database.MigrateOnStart {
		if err := schema.Migrate(cfg, db, zl); err != nil {
			zl.Fatal("failed to migrate schema", zap.Error(err))
		}
	}

	// 3. Analytics cache
	c, closeCache, err := newCache(ctx, cfg, zl)
	if err != nil {
		zl.Fatal("failed to connect analytics cache", zap.String("backend", cfg.Cache.Backend), zap.Error(err))
	}
	defer closeCache()

	// 4. HTTP server
	srv := server.New(cfg.HTTP.Addr, server.NewRouter(cfg, db, c, zl), zl)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		zl.Info("shutdown signal received", zap.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil {
			zl.Error("HTTP server failed", zap.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		zl.Error("graceful shutdown failed", zap.Error(err))
	}
}

func newCache(ctx context.Context, cfg *config.Config, zl *zap.Logger) (cache.Cache, func(), error) {
	if cfg.Cache.Backend != config.CacheRedis {
		zl.Info("using in-process analytics cache")
		return cache.NewMemory(), func() {}, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, nil, err
	}
	zl.Info("using redis analytics cache", zap.String("addr", cfg.Redis.Addr))
	return cache.NewRedis(rdb, cfg.Cache.KeyPrefix), func() { _ = rdb.Close() }, nil
}
