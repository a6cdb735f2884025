package geodb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"uzbekistan/internal/division"
)

// VillageFilter narrows ListVillages. A zero DistrictID means all districts.
type VillageFilter struct {
	DistrictID int64
}

// InsertVillage creates a village row and backfills the assigned ID.
func (s *Store) InsertVillage(ctx context.Context, village *division.Village) error {
	if err := village.Validate(); err != nil {
		return err
	}
	res, err := s.execWithRetry(ctx,
		`INSERT INTO villages (name_uz, name_oz, name_ru, district_id) VALUES (?, ?, ?, ?)`,
		village.NameUz, village.NameOz, village.NameRu, village.DistrictID,
	)
	if err != nil {
		return fmt.Errorf("insert village: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("last insert id: %w", err)
	}
	village.ID = id
	return nil
}

// GetOrCreateVillage fetches the village keyed by (DistrictID, NameUz) or
// inserts it when absent, reporting whether a new row was created.
func (s *Store) GetOrCreateVillage(ctx context.Context, village *division.Village) (bool, error) {
	row := s.q.QueryRowContext(ensureContext(ctx),
		`SELECT id, name_uz, name_oz, name_ru, district_id FROM villages WHERE district_id = ? AND name_uz = ?`,
		village.DistrictID, village.NameUz)
	var existing division.Village
	err := row.Scan(&existing.ID, &existing.NameUz, &existing.NameOz, &existing.NameRu, &existing.DistrictID)
	if err == nil {
		*village = existing
		return false, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return false, fmt.Errorf("get village: %w", err)
	}
	if err := s.InsertVillage(ctx, village); err != nil {
		return false, err
	}
	return true, nil
}

// ListVillages returns villages matching the filter, ordered by canonical
// name.
func (s *Store) ListVillages(ctx context.Context, filter VillageFilter) ([]division.Village, error) {
	query := `SELECT id, name_uz, name_oz, name_ru, district_id FROM villages`
	args := []any{}
	if filter.DistrictID != 0 {
		query += ` WHERE district_id = ?`
		args = append(args, filter.DistrictID)
	}
	query += ` ORDER BY name_uz`

	rows, err := s.q.QueryContext(ensureContext(ctx), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list villages: %w", err)
	}
	defer rows.Close()

	var villages []division.Village
	for rows.Next() {
		var village division.Village
		if err := rows.Scan(&village.ID, &village.NameUz, &village.NameOz, &village.NameRu, &village.DistrictID); err != nil {
			return nil, fmt.Errorf("scan village: %w", err)
		}
		villages = append(villages, village)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate villages: %w", err)
	}
	return villages, nil
}

// CountVillages returns the number of village rows.
func (s *Store) CountVillages(ctx context.Context) (int64, error) {
	total, err := s.count(ctx, `SELECT COUNT(1) FROM villages`)
	if err != nil {
		return 0, fmt.Errorf("count villages: %w", err)
	}
	return total, nil
}

// DeleteAllVillages removes every village.
func (s *Store) DeleteAllVillages(ctx context.Context) error {
	if _, err := s.execWithRetry(ctx, `DELETE FROM villages`); err != nil {
		return fmt.Errorf("delete villages: %w", err)
	}
	return nil
}
