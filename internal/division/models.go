package division

import (
	"errors"
	"fmt"
)

// ErrIncompleteNames indicates a record is missing one of its required name
// variants.
var ErrIncompleteNames = errors.New("all name fields must be provided")

// Region is a first-level division. All four name variants are required and
// NameUz is unique across the country.
type Region struct {
	ID     int64
	NameUz string
	NameOz string
	NameRu string
	NameEn string
}

// Validate checks that every name variant is present.
func (r Region) Validate() error {
	if r.NameUz == "" || r.NameOz == "" || r.NameRu == "" || r.NameEn == "" {
		return fmt.Errorf("region %q: %w", r.NameUz, ErrIncompleteNames)
	}
	return nil
}

// MatchesName reports whether any name variant contains the query.
func (r Region) MatchesName(query string) bool {
	return anyNameContains(query, r.NameUz, r.NameOz, r.NameRu, r.NameEn)
}

// District is a second-level division belonging to a region. The English name
// is optional; the source dataset does not cover every district.
type District struct {
	ID       int64
	RegionID int64
	NameUz   string
	NameOz   string
	NameRu   string
	NameEn   string
}

// Validate checks that the required name variants are present.
func (d District) Validate() error {
	if d.NameUz == "" || d.NameOz == "" || d.NameRu == "" {
		return fmt.Errorf("district %q: %w", d.NameUz, ErrIncompleteNames)
	}
	return nil
}

// MatchesName reports whether any name variant contains the query.
func (d District) MatchesName(query string) bool {
	return anyNameContains(query, d.NameUz, d.NameOz, d.NameRu, d.NameEn)
}

// Village is a third-level division belonging to a district. Villages carry
// no English name in the source dataset.
type Village struct {
	ID         int64
	DistrictID int64
	NameUz     string
	NameOz     string
	NameRu     string
}

// Validate checks that every name variant is present.
func (v Village) Validate() error {
	if v.NameUz == "" || v.NameOz == "" || v.NameRu == "" {
		return fmt.Errorf("village %q: %w", v.NameUz, ErrIncompleteNames)
	}
	return nil
}

// MatchesName reports whether any name variant contains the query.
func (v Village) MatchesName(query string) bool {
	return anyNameContains(query, v.NameUz, v.NameOz, v.NameRu)
}
