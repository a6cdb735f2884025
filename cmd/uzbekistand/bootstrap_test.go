package main

import (
	"context"
	"testing"

	"uzbekistan/internal/logging"
	"uzbekistan/internal/testsupport"
)

func TestAcquireLockIsExclusive(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}

	release, err := acquireLock(cfg)
	if err != nil {
		t.Fatalf("acquireLock: %v", err)
	}
	defer release()

	if _, err := acquireLock(cfg); err == nil {
		t.Fatal("expected second lock attempt to fail")
	}

	release()
	second, err := acquireLock(cfg)
	if err != nil {
		t.Fatalf("acquireLock after release: %v", err)
	}
	second()
}

func TestAutoPopulateHonorsConfig(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	autoPopulate(context.Background(), cfg, store, logging.NewNop())
	count, err := store.CountRegions(context.Background())
	if err != nil {
		t.Fatalf("CountRegions: %v", err)
	}
	if count != 0 {
		t.Fatalf("regions = %d, want 0 when auto_populate is off", count)
	}

	cfg.Prepopulate.AutoPopulate = true
	autoPopulate(context.Background(), cfg, store, logging.NewNop())
	count, err = store.CountRegions(context.Background())
	if err != nil {
		t.Fatalf("CountRegions: %v", err)
	}
	if count != 14 {
		t.Fatalf("regions = %d, want 14 after auto-populate", count)
	}
}
