package main

import (
	"context"
	"fmt"
	"path/filepath"

	"log/slog"

	"github.com/gofrs/flock"

	"uzbekistan/internal/config"
	"uzbekistan/internal/geodb"
	"uzbekistan/internal/logging"
	"uzbekistan/internal/populate"
)

// acquireLock takes the single-instance lock under the data directory. The
// returned release function is safe to call once.
func acquireLock(cfg *config.Config) (func(), error) {
	lockPath := filepath.Join(cfg.Storage.DataDir, "uzbekistand.lock")
	lock := flock.New(lockPath)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", lockPath, err)
	}
	if !ok {
		return nil, fmt.Errorf("another uzbekistand instance holds %s", lockPath)
	}
	return func() { _ = lock.Unlock() }, nil
}

// autoPopulate seeds the store at startup when the configuration asks for it.
// Population failures are logged but never stop the daemon; the API can still
// serve whatever data exists.
func autoPopulate(ctx context.Context, cfg *config.Config, store *geodb.Store, logger *slog.Logger) {
	if !cfg.Prepopulate.AutoPopulate {
		return
	}
	rep := populate.LogReporter{Logger: logger.With(logging.String("component", "populate"))}
	if _, err := populate.Run(ctx, cfg, store, rep, populate.Options{
		Force: cfg.Prepopulate.ForceOnStartup,
	}); err != nil {
		logger.Warn("auto-populate failed", logging.Error(err))
	}
}
