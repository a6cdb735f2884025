package populate

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"uzbekistan/internal/division"
	"uzbekistan/internal/geodb"
	"uzbekistan/internal/testsupport"
)

type recordingReporter struct {
	infos    []string
	warnings []string
}

func (r *recordingReporter) Infof(format string, args ...any) {
	r.infos = append(r.infos, fmt.Sprintf(format, args...))
}

func (r *recordingReporter) Warnf(format string, args ...any) {
	r.warnings = append(r.warnings, fmt.Sprintf(format, args...))
}

func (r *recordingReporter) hasWarning(substr string) bool {
	for _, warning := range r.warnings {
		if strings.Contains(warning, substr) {
			return true
		}
	}
	return false
}

func TestRunPopulatesAllLevels(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	rep := &recordingReporter{}

	result, err := Run(context.Background(), cfg, store, rep, Options{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.RegionsCreated != 14 {
		t.Fatalf("RegionsCreated = %d, want 14", result.RegionsCreated)
	}
	if result.DistrictsCreated == 0 {
		t.Fatal("expected districts to be created")
	}
	if result.VillagesCreated != 2 {
		t.Fatalf("VillagesCreated = %d, want 2", result.VillagesCreated)
	}
	if result.RowsSkipped != 0 {
		t.Fatalf("RowsSkipped = %d, want 0", result.RowsSkipped)
	}
	if len(rep.warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", rep.warnings)
	}

	regions, err := store.CountRegions(context.Background())
	if err != nil {
		t.Fatalf("CountRegions: %v", err)
	}
	if regions != 14 {
		t.Fatalf("stored regions = %d, want 14", regions)
	}
	villages, err := store.ListVillages(context.Background(), geodb.VillageFilter{})
	if err != nil {
		t.Fatalf("ListVillages: %v", err)
	}
	if len(villages) != 2 {
		t.Fatalf("stored villages = %d, want 2", len(villages))
	}
}

func TestRunTwiceWithoutForceWritesNothing(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	if _, err := Run(context.Background(), cfg, store, NopReporter{}, Options{}); err != nil {
		t.Fatalf("first Run: %v", err)
	}

	rep := &recordingReporter{}
	result, err := Run(context.Background(), cfg, store, rep, Options{})
	if err != nil {
		t.Fatalf("second Run: %v", err)
	}
	if result.RegionsCreated != 0 || result.DistrictsCreated != 0 || result.VillagesCreated != 0 {
		t.Fatalf("second run wrote rows: %+v", result)
	}
	if !rep.hasWarning("regions already exist") {
		t.Fatalf("expected already-exist warning, got %v", rep.warnings)
	}
}

func TestRunForceReplacesExistingRows(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	if _, err := Run(context.Background(), cfg, store, NopReporter{}, Options{}); err != nil {
		t.Fatalf("first Run: %v", err)
	}
	testsupport.SeedRegion(t, store, "Atlantis", "Атлантис", "Атлантида", "Atlantis")

	result, err := Run(context.Background(), cfg, store, NopReporter{}, Options{Force: true})
	if err != nil {
		t.Fatalf("force Run: %v", err)
	}
	if result.RegionsCreated != 14 {
		t.Fatalf("RegionsCreated = %d, want 14", result.RegionsCreated)
	}

	if _, err := store.GetRegionByNameUz(context.Background(), "Atlantis"); err == nil {
		t.Fatal("expected the extra region to be removed")
	}
	regions, err := store.CountRegions(context.Background())
	if err != nil {
		t.Fatalf("CountRegions: %v", err)
	}
	if regions != 14 {
		t.Fatalf("stored regions = %d, want 14", regions)
	}
}

func TestRunPrepopulateDisabledAborts(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithPrepopulateDisabled())
	store := testsupport.MustOpenStore(t, cfg)
	rep := &recordingReporter{}

	result, err := Run(context.Background(), cfg, store, rep, Options{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.RegionsCreated != 0 {
		t.Fatalf("RegionsCreated = %d, want 0", result.RegionsCreated)
	}
	if !rep.hasWarning("prepopulation is disabled") {
		t.Fatalf("expected disabled warning, got %v", rep.warnings)
	}

	regions, err := store.CountRegions(context.Background())
	if err != nil {
		t.Fatalf("CountRegions: %v", err)
	}
	if regions != 0 {
		t.Fatalf("stored regions = %d, want 0", regions)
	}
}

func TestRunForceOverridesPrepopulateGate(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithPrepopulateDisabled())
	store := testsupport.MustOpenStore(t, cfg)

	result, err := Run(context.Background(), cfg, store, NopReporter{}, Options{Force: true})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.RegionsCreated != 14 {
		t.Fatalf("RegionsCreated = %d, want 14", result.RegionsCreated)
	}
}

func TestRunSkipsDisabledModels(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithModels(map[string]bool{"region": true}))
	store := testsupport.MustOpenStore(t, cfg)
	rep := &recordingReporter{}

	result, err := Run(context.Background(), cfg, store, rep, Options{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.RegionsCreated != 14 {
		t.Fatalf("RegionsCreated = %d, want 14", result.RegionsCreated)
	}
	if result.DistrictsCreated != 0 || result.VillagesCreated != 0 {
		t.Fatalf("disabled levels were populated: %+v", result)
	}
	if !rep.hasWarning("skipping district") || !rep.hasWarning("skipping village") {
		t.Fatalf("expected skip warnings, got %v", rep.warnings)
	}
}

func TestRunEntitySubset(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	result, err := Run(context.Background(), cfg, store, NopReporter{}, Options{
		Entities: []division.Entity{division.EntityRegion},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.RegionsCreated != 14 {
		t.Fatalf("RegionsCreated = %d, want 14", result.RegionsCreated)
	}

	districts, err := store.CountDistricts(context.Background())
	if err != nil {
		t.Fatalf("CountDistricts: %v", err)
	}
	if districts != 0 {
		t.Fatalf("stored districts = %d, want 0", districts)
	}
}

func TestRunSkipsDistrictsWithUnknownRegion(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	// Only one region exists, so every district row pointing elsewhere must be
	// skipped without failing the run.
	testsupport.SeedRegion(t, store, "Toshkent shahri", "Тошкент шаҳри", "город Ташкент", "Tashkent")

	rep := &recordingReporter{}
	result, err := Run(context.Background(), cfg, store, rep, Options{
		Entities: []division.Entity{division.EntityDistrict},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.DistrictsCreated == 0 {
		t.Fatal("expected districts under the seeded region to be created")
	}
	if result.RowsSkipped == 0 {
		t.Fatal("expected rows referencing unknown regions to be skipped")
	}
	if !rep.hasWarning("unknown region") {
		t.Fatalf("expected unknown-region warning, got %v", rep.warnings)
	}

	districts, err := store.ListDistricts(context.Background(), geodb.DistrictFilter{})
	if err != nil {
		t.Fatalf("ListDistricts: %v", err)
	}
	if len(districts) != result.DistrictsCreated {
		t.Fatalf("stored districts = %d, want %d", len(districts), result.DistrictsCreated)
	}
}

func TestRunVillagesRequireDistricts(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	rep := &recordingReporter{}

	result, err := Run(context.Background(), cfg, store, rep, Options{
		Entities: []division.Entity{division.EntityVillage},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.VillagesCreated != 0 {
		t.Fatalf("VillagesCreated = %d, want 0", result.VillagesCreated)
	}
	if !rep.hasWarning("no districts exist") {
		t.Fatalf("expected no-districts warning, got %v", rep.warnings)
	}
}

func TestFixturesDecode(t *testing.T) {
	regions, err := loadRegionFixtures()
	if err != nil {
		t.Fatalf("loadRegionFixtures: %v", err)
	}
	if len(regions) != 14 {
		t.Fatalf("region fixtures = %d, want 14", len(regions))
	}
	for _, region := range regions {
		if region.NameUz == "" || region.NameOz == "" || region.NameRu == "" || region.NameEn == "" {
			t.Fatalf("region fixture missing a name: %+v", region)
		}
	}

	districts, err := loadDistrictFixtures()
	if err != nil {
		t.Fatalf("loadDistrictFixtures: %v", err)
	}
	if len(districts) == 0 {
		t.Fatal("no district fixtures")
	}
	byName := make(map[string]struct{}, len(regions))
	for _, region := range regions {
		byName[region.NameUz] = struct{}{}
	}
	for _, district := range districts {
		if _, ok := byName[district.RegionNameUz]; !ok {
			t.Fatalf("district %q references region %q not present in the region fixtures", district.NameUz, district.RegionNameUz)
		}
	}
}
