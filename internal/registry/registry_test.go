package registry_test

import (
	"errors"
	"fmt"
	"testing"

	"uzbekistan/internal/config"
	"uzbekistan/internal/division"
	"uzbekistan/internal/registry"
	"uzbekistan/internal/testsupport"
)

func registerTestModule(t *testing.T, module string, descs ...registry.Descriptor) {
	t.Helper()
	if descs == nil {
		descs = []registry.Descriptor{
			{Name: "region", Model: division.EntityRegion, Path: "/api/regions", RouteName: "region-list"},
			{Name: "district", Model: division.EntityDistrict, Path: "/api/districts", RouteName: "district-list"},
			{Name: "village", Model: division.EntityVillage, Path: "/api/villages", RouteName: "village-list"},
		}
	}
	registry.Register(module, descs...)
	t.Cleanup(registry.Reset)
}

func TestResolveYieldsAllEnabledViews(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	registerTestModule(t, "views/all")

	resolved, err := registry.Resolve(cfg, "views/all", registry.CategoryViews)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if len(resolved) != 3 {
		t.Fatalf("expected 3 descriptors, got %d", len(resolved))
	}
	// Deterministic name order.
	for i, want := range []string{"district", "region", "village"} {
		if resolved[i].Name != want {
			t.Errorf("resolved[%d] = %q, want %q", i, resolved[i].Name, want)
		}
	}
}

func TestResolveDropsViewOfDisabledModel(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithModels(map[string]bool{
		"region": true, "district": false, "village": true,
	}))
	registerTestModule(t, "views/disabled-model")

	resolved, err := registry.Resolve(cfg, "views/disabled-model", registry.CategoryViews)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if len(resolved) != 2 {
		t.Fatalf("expected 2 descriptors, got %d", len(resolved))
	}
	for _, desc := range resolved {
		if desc.Model == division.EntityDistrict {
			t.Fatal("district view should not be yielded when its model is disabled")
		}
	}
}

func TestResolveUnknownModule(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	t.Cleanup(registry.Reset)

	_, err := registry.Resolve(cfg, "views/never-registered", registry.CategoryViews)
	if !errors.Is(err, registry.ErrUnknownModule) {
		t.Fatalf("expected ErrUnknownModule, got %v", err)
	}
	var resolveErr *registry.ResolveError
	if !errors.As(err, &resolveErr) {
		t.Fatalf("expected *ResolveError, got %T", err)
	}
	if resolveErr.Module != "views/never-registered" || resolveErr.Category != registry.CategoryViews {
		t.Fatalf("unexpected error context: %+v", resolveErr)
	}
}

func TestResolveEmptyEnabledSetShortCircuits(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithViews(map[string]bool{}))
	registerTestModule(t, "views/none-enabled")

	resolved, err := registry.Resolve(cfg, "views/none-enabled", registry.CategoryViews)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if len(resolved) != 0 {
		t.Fatalf("expected empty result, got %d descriptors", len(resolved))
	}
}

func TestResolveSkipsUnregisteredItemSilently(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithViews(map[string]bool{
		"region": true, "mahalla": true,
	}))
	registerTestModule(t, "views/partial", registry.Descriptor{
		Name: "region", Model: division.EntityRegion, Path: "/api/regions",
	})

	resolved, err := registry.Resolve(cfg, "views/partial", registry.CategoryViews)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if len(resolved) != 1 || resolved[0].Name != "region" {
		t.Fatalf("expected only region descriptor, got %v", resolved)
	}
}

func TestResolveSkipsDescriptorWithoutModel(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	registerTestModule(t, "views/no-model", registry.Descriptor{
		Name: "region", Path: "/api/regions",
	})

	resolved, err := registry.Resolve(cfg, "views/no-model", registry.CategoryViews)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if len(resolved) != 0 {
		t.Fatalf("expected no descriptors, got %v", resolved)
	}
}

func TestResolveModelsCategoryIgnoresViews(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithViews(map[string]bool{}))
	registerTestModule(t, "models/only")

	resolved, err := registry.Resolve(cfg, "models/only", registry.CategoryModels)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if len(resolved) != 3 {
		t.Fatalf("expected 3 descriptors for models category, got %d", len(resolved))
	}
}

func TestResolveWrapsCheckHookFailure(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	boom := fmt.Errorf("gate exploded")
	registerTestModule(t, "views/hook", registry.Descriptor{
		Name:  "region",
		Model: division.EntityRegion,
		Path:  "/api/regions",
		Check: func(cfg *config.Config) error { return boom },
	})

	_, err := registry.Resolve(cfg, "views/hook", registry.CategoryViews)
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped hook error, got %v", err)
	}
	var resolveErr *registry.ResolveError
	if !errors.As(err, &resolveErr) {
		t.Fatalf("expected *ResolveError, got %T", err)
	}
	if resolveErr.Name != "region" || resolveErr.Module != "views/hook" {
		t.Fatalf("unexpected error context: %+v", resolveErr)
	}
}
