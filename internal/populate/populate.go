package populate

import (
	"context"
	"errors"

	"uzbekistan/internal/config"
	"uzbekistan/internal/division"
	"uzbekistan/internal/geodb"
)

// Options controls a populate run.
type Options struct {
	// Force deletes existing rows for each target before repopulating, and
	// overrides the [prepopulate] enabled gate.
	Force bool
	// Entities restricts the run to the named division levels. Empty means
	// all levels.
	Entities []division.Entity
}

// Result summarizes what a run wrote.
type Result struct {
	RegionsCreated   int
	DistrictsCreated int
	VillagesCreated  int
	RowsSkipped      int
}

// Run seeds the store from the bundled fixtures. Recoverable conditions are
// reported as warnings and the run continues; the returned error is reserved
// for hard failures, which roll back the whole transaction.
func Run(ctx context.Context, cfg *config.Config, store *geodb.Store, rep Reporter, opts Options) (*Result, error) {
	if rep == nil {
		rep = NopReporter{}
	}
	result := &Result{}

	if !cfg.Prepopulate.Enabled && !opts.Force {
		rep.Warnf("prepopulation is disabled in the [prepopulate] configuration table; pass --force to populate anyway")
		return result, nil
	}

	targets := selectTargets(cfg, rep, opts.Entities)
	if len(targets) == 0 {
		rep.Warnf("no enabled division levels to populate")
		return result, nil
	}

	err := store.WithTx(ctx, func(tx *geodb.Store) error {
		for _, entity := range division.Entities() {
			if _, ok := targets[entity]; !ok {
				continue
			}
			var err error
			switch entity {
			case division.EntityRegion:
				err = populateRegions(ctx, tx, rep, opts.Force, result)
			case division.EntityDistrict:
				err = populateDistricts(ctx, tx, rep, opts.Force, result)
			case division.EntityVillage:
				err = populateVillages(ctx, tx, rep, opts.Force, result)
			}
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	rep.Infof("populated %d regions, %d districts, %d villages (%d rows skipped)",
		result.RegionsCreated, result.DistrictsCreated, result.VillagesCreated, result.RowsSkipped)
	return result, nil
}

// selectTargets resolves the requested division levels against the [models]
// configuration. Disabled levels are skipped with a warning rather than
// failing the run.
func selectTargets(cfg *config.Config, rep Reporter, requested []division.Entity) map[division.Entity]struct{} {
	if len(requested) == 0 {
		requested = division.Entities()
	}
	targets := make(map[division.Entity]struct{}, len(requested))
	for _, entity := range requested {
		if err := config.CheckModelEnabled(cfg, entity); err != nil {
			rep.Warnf("skipping %s: %v", entity, err)
			continue
		}
		targets[entity] = struct{}{}
	}
	return targets
}

func populateRegions(ctx context.Context, tx *geodb.Store, rep Reporter, force bool, result *Result) error {
	count, err := tx.CountRegions(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		if !force {
			rep.Warnf("regions already exist (%d rows); use --force to repopulate", count)
			return nil
		}
		if err := tx.DeleteAllRegions(ctx); err != nil {
			return err
		}
	}
	fixtures, err := loadRegionFixtures()
	if err != nil {
		return err
	}
	for _, fixture := range fixtures {
		region := division.Region{
			NameUz: fixture.NameUz,
			NameOz: fixture.NameOz,
			NameRu: fixture.NameRu,
			NameEn: fixture.NameEn,
		}
		created, err := tx.GetOrCreateRegion(ctx, &region)
		if err != nil {
			return err
		}
		if created {
			result.RegionsCreated++
		}
	}
	return nil
}

func populateDistricts(ctx context.Context, tx *geodb.Store, rep Reporter, force bool, result *Result) error {
	count, err := tx.CountDistricts(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		if !force {
			rep.Warnf("districts already exist (%d rows); use --force to repopulate", count)
			return nil
		}
		if err := tx.DeleteAllDistricts(ctx); err != nil {
			return err
		}
	}
	fixtures, err := loadDistrictFixtures()
	if err != nil {
		return err
	}
	for _, fixture := range fixtures {
		region, err := tx.GetRegionByNameUz(ctx, fixture.RegionNameUz)
		if err != nil {
			if errors.Is(err, geodb.ErrNotFound) {
				rep.Warnf("district %q references unknown region %q; skipping row", fixture.NameUz, fixture.RegionNameUz)
				result.RowsSkipped++
				continue
			}
			return err
		}
		district := division.District{
			NameUz:   fixture.NameUz,
			NameOz:   fixture.NameOz,
			NameRu:   fixture.NameRu,
			NameEn:   fixture.NameEn,
			RegionID: region.ID,
		}
		created, err := tx.GetOrCreateDistrict(ctx, &district)
		if err != nil {
			return err
		}
		if created {
			result.DistrictsCreated++
		}
	}
	return nil
}

func populateVillages(ctx context.Context, tx *geodb.Store, rep Reporter, force bool, result *Result) error {
	count, err := tx.CountVillages(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		if !force {
			rep.Warnf("villages already exist (%d rows); use --force to repopulate", count)
			return nil
		}
		if err := tx.DeleteAllVillages(ctx); err != nil {
			return err
		}
	}
	district, err := tx.FirstDistrict(ctx)
	if err != nil {
		if errors.Is(err, geodb.ErrNotFound) {
			rep.Warnf("no districts exist; skipping village samples")
			return nil
		}
		return err
	}
	for _, sample := range sampleVillages(district.ID) {
		village := sample
		created, err := tx.GetOrCreateVillage(ctx, &village)
		if err != nil {
			return err
		}
		if created {
			result.VillagesCreated++
		}
	}
	return nil
}
