package populate

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"uzbekistan/internal/division"
)

//go:embed fixtures/*.yaml
var fixtureFS embed.FS

type regionFixture struct {
	NameUz string `yaml:"name_uz"`
	NameOz string `yaml:"name_oz"`
	NameRu string `yaml:"name_ru"`
	NameEn string `yaml:"name_en"`
}

type districtFixture struct {
	NameUz       string `yaml:"name_uz"`
	NameOz       string `yaml:"name_oz"`
	NameRu       string `yaml:"name_ru"`
	NameEn       string `yaml:"name_en"`
	RegionNameUz string `yaml:"region_name_uz"`
}

func loadRegionFixtures() ([]regionFixture, error) {
	data, err := fixtureFS.ReadFile("fixtures/regions.yaml")
	if err != nil {
		return nil, fmt.Errorf("read region fixtures: %w", err)
	}
	var fixtures []regionFixture
	if err := yaml.Unmarshal(data, &fixtures); err != nil {
		return nil, fmt.Errorf("decode region fixtures: %w", err)
	}
	return fixtures, nil
}

func loadDistrictFixtures() ([]districtFixture, error) {
	data, err := fixtureFS.ReadFile("fixtures/districts.yaml")
	if err != nil {
		return nil, fmt.Errorf("read district fixtures: %w", err)
	}
	var fixtures []districtFixture
	if err := yaml.Unmarshal(data, &fixtures); err != nil {
		return nil, fmt.Errorf("decode district fixtures: %w", err)
	}
	return fixtures, nil
}

// sampleVillages returns the illustrative village records seeded under the
// first district. The dataset has no complete third-level source yet, so the
// sample only demonstrates the village surface.
func sampleVillages(districtID int64) []division.Village {
	return []division.Village{
		{NameUz: "Mirobod mahallasi", NameOz: "Миробод маҳалласи", NameRu: "махалля Мирабад", DistrictID: districtID},
		{NameUz: "Yunusobod mahallasi", NameOz: "Юнусобод маҳалласи", NameRu: "махалля Юнусабад", DistrictID: districtID},
	}
}
