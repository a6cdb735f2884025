package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"uzbekistan/internal/cache"
	"uzbekistan/internal/config"
	"uzbekistan/internal/geodb"
	"uzbekistan/internal/httpapi"
	"uzbekistan/internal/logging"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, path, err := config.Load("")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	logger.Info("configuration loaded", logging.String("path", path))

	if err := cfg.EnsureDirectories(); err != nil {
		logger.Error("ensure directories", logging.Error(err))
		return
	}

	release, err := acquireLock(cfg)
	if err != nil {
		logger.Error("acquire lock", logging.Error(err))
		return
	}
	defer release()

	store, err := geodb.Open(cfg)
	if err != nil {
		logger.Error("open store", logging.Error(err))
		return
	}
	defer store.Close()

	responseCache := cache.New(cache.SettingsFromConfig(cfg))
	if responseCache.Enabled() {
		if err := responseCache.Check(ctx); err != nil {
			logger.Error("cache health check failed", logging.Error(err))
			return
		}
		logger.Info("response cache ready",
			logging.String("key_prefix", responseCache.Settings().KeyPrefix),
			logging.Duration("timeout", responseCache.Settings().Timeout))
	}

	autoPopulate(ctx, cfg, store, logger)

	server, err := httpapi.NewServer(cfg, store, responseCache, logger)
	if err != nil {
		logger.Error("build api server", logging.Error(err))
		return
	}
	if err := server.Start(ctx); err != nil {
		logger.Error("start api server", logging.Error(err))
		return
	}
	defer server.Stop()

	<-ctx.Done()
	logger.Info("uzbekistand shutting down")
}
