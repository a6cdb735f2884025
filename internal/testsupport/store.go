package testsupport

import (
	"context"
	"testing"

	"uzbekistan/internal/config"
	"uzbekistan/internal/division"
	"uzbekistan/internal/geodb"
)

// MustOpenStore opens a geodb.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *geodb.Store {
	t.Helper()

	store, err := geodb.Open(cfg)
	if err != nil {
		t.Fatalf("geodb.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// SeedRegion inserts a region for tests using the provided store.
func SeedRegion(t testing.TB, store *geodb.Store, nameUz, nameOz, nameRu, nameEn string) *division.Region {
	t.Helper()

	region := &division.Region{NameUz: nameUz, NameOz: nameOz, NameRu: nameRu, NameEn: nameEn}
	if err := store.InsertRegion(context.Background(), region); err != nil {
		t.Fatalf("store.InsertRegion: %v", err)
	}
	return region
}

// SeedDistrict inserts a district for tests using the provided store.
func SeedDistrict(t testing.TB, store *geodb.Store, regionID int64, nameUz, nameOz, nameRu string) *division.District {
	t.Helper()

	district := &division.District{RegionID: regionID, NameUz: nameUz, NameOz: nameOz, NameRu: nameRu}
	if err := store.InsertDistrict(context.Background(), district); err != nil {
		t.Fatalf("store.InsertDistrict: %v", err)
	}
	return district
}
