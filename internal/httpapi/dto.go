package httpapi

import "uzbekistan/internal/division"

// Region is the wire representation of a first-level division.
type Region struct {
	ID     int64  `json:"id"`
	NameUz string `json:"name_uz"`
	NameOz string `json:"name_oz"`
	NameRu string `json:"name_ru"`
	NameEn string `json:"name_en"`
}

// District is the wire representation of a second-level division.
type District struct {
	ID       int64  `json:"id"`
	NameUz   string `json:"name_uz"`
	NameOz   string `json:"name_oz"`
	NameRu   string `json:"name_ru"`
	NameEn   string `json:"name_en,omitempty"`
	RegionID int64  `json:"region_id"`
}

// Village is the wire representation of a third-level division.
type Village struct {
	ID         int64  `json:"id"`
	NameUz     string `json:"name_uz"`
	NameOz     string `json:"name_oz"`
	NameRu     string `json:"name_ru"`
	DistrictID int64  `json:"district_id"`
}

// RegionListResponse wraps /api/regions payloads.
type RegionListResponse struct {
	Regions []Region `json:"regions"`
	Count   int      `json:"count"`
}

// DistrictListResponse wraps /api/districts payloads.
type DistrictListResponse struct {
	Districts []District `json:"districts"`
	Count     int        `json:"count"`
}

// VillageListResponse wraps /api/villages payloads.
type VillageListResponse struct {
	Villages []Village `json:"villages"`
	Count    int       `json:"count"`
}

// HealthResponse wraps /api/health payloads.
type HealthResponse struct {
	Status string `json:"status"`
	Cache  string `json:"cache"`
}

func fromRegion(region division.Region) Region {
	return Region{
		ID:     region.ID,
		NameUz: region.NameUz,
		NameOz: region.NameOz,
		NameRu: region.NameRu,
		NameEn: region.NameEn,
	}
}

func fromDistrict(district division.District) District {
	return District{
		ID:       district.ID,
		NameUz:   district.NameUz,
		NameOz:   district.NameOz,
		NameRu:   district.NameRu,
		NameEn:   district.NameEn,
		RegionID: district.RegionID,
	}
}

func fromVillage(village division.Village) Village {
	return Village{
		ID:         village.ID,
		NameUz:     village.NameUz,
		NameOz:     village.NameOz,
		NameRu:     village.NameRu,
		DistrictID: village.DistrictID,
	}
}
