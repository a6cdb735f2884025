package geodb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"uzbekistan/internal/division"
)

// InsertRegion creates a region row and backfills the assigned ID.
func (s *Store) InsertRegion(ctx context.Context, region *division.Region) error {
	if err := region.Validate(); err != nil {
		return err
	}
	res, err := s.execWithRetry(ctx,
		`INSERT INTO regions (name_uz, name_oz, name_ru, name_en) VALUES (?, ?, ?, ?)`,
		region.NameUz, region.NameOz, region.NameRu, region.NameEn,
	)
	if err != nil {
		return fmt.Errorf("insert region: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("last insert id: %w", err)
	}
	region.ID = id
	return nil
}

// GetRegionByNameUz fetches a region by its canonical name. Returns
// ErrNotFound when no region carries that name.
func (s *Store) GetRegionByNameUz(ctx context.Context, nameUz string) (*division.Region, error) {
	row := s.q.QueryRowContext(ensureContext(ctx),
		`SELECT id, name_uz, name_oz, name_ru, name_en FROM regions WHERE name_uz = ?`, nameUz)
	var region division.Region
	if err := row.Scan(&region.ID, &region.NameUz, &region.NameOz, &region.NameRu, &region.NameEn); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("region %q: %w", nameUz, ErrNotFound)
		}
		return nil, fmt.Errorf("get region: %w", err)
	}
	return &region, nil
}

// GetOrCreateRegion fetches the region keyed by NameUz or inserts it when
// absent, reporting whether a new row was created.
func (s *Store) GetOrCreateRegion(ctx context.Context, region *division.Region) (bool, error) {
	existing, err := s.GetRegionByNameUz(ctx, region.NameUz)
	if err == nil {
		*region = *existing
		return false, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return false, err
	}
	if err := s.InsertRegion(ctx, region); err != nil {
		return false, err
	}
	return true, nil
}

// ListRegions returns all regions ordered by canonical name.
func (s *Store) ListRegions(ctx context.Context) ([]division.Region, error) {
	rows, err := s.q.QueryContext(ensureContext(ctx),
		`SELECT id, name_uz, name_oz, name_ru, name_en FROM regions ORDER BY name_uz`)
	if err != nil {
		return nil, fmt.Errorf("list regions: %w", err)
	}
	defer rows.Close()

	var regions []division.Region
	for rows.Next() {
		var region division.Region
		if err := rows.Scan(&region.ID, &region.NameUz, &region.NameOz, &region.NameRu, &region.NameEn); err != nil {
			return nil, fmt.Errorf("scan region: %w", err)
		}
		regions = append(regions, region)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate regions: %w", err)
	}
	return regions, nil
}

// CountRegions returns the number of region rows.
func (s *Store) CountRegions(ctx context.Context) (int64, error) {
	total, err := s.count(ctx, `SELECT COUNT(1) FROM regions`)
	if err != nil {
		return 0, fmt.Errorf("count regions: %w", err)
	}
	return total, nil
}

// DeleteAllRegions removes every region. Districts and villages cascade.
func (s *Store) DeleteAllRegions(ctx context.Context) error {
	if _, err := s.execWithRetry(ctx, `DELETE FROM regions`); err != nil {
		return fmt.Errorf("delete regions: %w", err)
	}
	return nil
}
