package geodb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"uzbekistan/internal/division"
)

// DistrictFilter narrows ListDistricts. A zero RegionID means all regions.
type DistrictFilter struct {
	RegionID int64
}

// InsertDistrict creates a district row and backfills the assigned ID.
func (s *Store) InsertDistrict(ctx context.Context, district *division.District) error {
	if err := district.Validate(); err != nil {
		return err
	}
	res, err := s.execWithRetry(ctx,
		`INSERT INTO districts (name_uz, name_oz, name_ru, name_en, region_id) VALUES (?, ?, ?, ?, ?)`,
		district.NameUz, district.NameOz, district.NameRu, nullableString(district.NameEn), district.RegionID,
	)
	if err != nil {
		return fmt.Errorf("insert district: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("last insert id: %w", err)
	}
	district.ID = id
	return nil
}

// GetDistrictByNameUz fetches a district by canonical name within a region.
func (s *Store) GetDistrictByNameUz(ctx context.Context, regionID int64, nameUz string) (*division.District, error) {
	row := s.q.QueryRowContext(ensureContext(ctx),
		`SELECT id, name_uz, name_oz, name_ru, name_en, region_id FROM districts WHERE region_id = ? AND name_uz = ?`,
		regionID, nameUz)
	district, err := scanDistrict(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("district %q: %w", nameUz, ErrNotFound)
		}
		return nil, fmt.Errorf("get district: %w", err)
	}
	return district, nil
}

// GetOrCreateDistrict fetches the district keyed by (RegionID, NameUz) or
// inserts it when absent, reporting whether a new row was created.
func (s *Store) GetOrCreateDistrict(ctx context.Context, district *division.District) (bool, error) {
	existing, err := s.GetDistrictByNameUz(ctx, district.RegionID, district.NameUz)
	if err == nil {
		*district = *existing
		return false, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return false, err
	}
	if err := s.InsertDistrict(ctx, district); err != nil {
		return false, err
	}
	return true, nil
}

// ListDistricts returns districts matching the filter, ordered by canonical
// name.
func (s *Store) ListDistricts(ctx context.Context, filter DistrictFilter) ([]division.District, error) {
	query := `SELECT id, name_uz, name_oz, name_ru, name_en, region_id FROM districts`
	args := []any{}
	if filter.RegionID != 0 {
		query += ` WHERE region_id = ?`
		args = append(args, filter.RegionID)
	}
	query += ` ORDER BY name_uz`

	rows, err := s.q.QueryContext(ensureContext(ctx), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list districts: %w", err)
	}
	defer rows.Close()

	var districts []division.District
	for rows.Next() {
		district, err := scanDistrict(rows)
		if err != nil {
			return nil, fmt.Errorf("scan district: %w", err)
		}
		districts = append(districts, *district)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate districts: %w", err)
	}
	return districts, nil
}

// FirstDistrict returns the lowest-ID district, or ErrNotFound when the table
// is empty. The populate command uses it to attach sample villages.
func (s *Store) FirstDistrict(ctx context.Context) (*division.District, error) {
	row := s.q.QueryRowContext(ensureContext(ctx),
		`SELECT id, name_uz, name_oz, name_ru, name_en, region_id FROM districts ORDER BY id LIMIT 1`)
	district, err := scanDistrict(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("first district: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("first district: %w", err)
	}
	return district, nil
}

// CountDistricts returns the number of district rows.
func (s *Store) CountDistricts(ctx context.Context) (int64, error) {
	total, err := s.count(ctx, `SELECT COUNT(1) FROM districts`)
	if err != nil {
		return 0, fmt.Errorf("count districts: %w", err)
	}
	return total, nil
}

// DeleteAllDistricts removes every district. Villages cascade.
func (s *Store) DeleteAllDistricts(ctx context.Context) error {
	if _, err := s.execWithRetry(ctx, `DELETE FROM districts`); err != nil {
		return fmt.Errorf("delete districts: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDistrict(row rowScanner) (*division.District, error) {
	var district division.District
	var nameEn sql.NullString
	if err := row.Scan(&district.ID, &district.NameUz, &district.NameOz, &district.NameRu, &nameEn, &district.RegionID); err != nil {
		return nil, err
	}
	district.NameEn = stringOrEmpty(nameEn)
	return &district, nil
}
