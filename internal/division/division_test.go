package division_test

import (
	"errors"
	"testing"

	"uzbekistan/internal/division"
)

func TestParseEntity(t *testing.T) {
	cases := []struct {
		input   string
		want    division.Entity
		wantErr bool
	}{
		{"region", division.EntityRegion, false},
		{"  District ", division.EntityDistrict, false},
		{"VILLAGE", division.EntityVillage, false},
		{"province", "", true},
		{"", "", true},
	}
	for _, tc := range cases {
		got, err := division.ParseEntity(tc.input)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseEntity(%q): expected error", tc.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseEntity(%q): %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseEntity(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestEntityDependencies(t *testing.T) {
	if deps := division.EntityRegion.Dependencies(); len(deps) != 0 {
		t.Fatalf("region should have no dependencies, got %v", deps)
	}
	if deps := division.EntityDistrict.Dependencies(); len(deps) != 1 || deps[0] != division.EntityRegion {
		t.Fatalf("district dependencies = %v", deps)
	}
	deps := division.EntityVillage.Dependencies()
	if len(deps) != 2 || deps[0] != division.EntityRegion || deps[1] != division.EntityDistrict {
		t.Fatalf("village dependencies = %v", deps)
	}
}

func TestRegionValidate(t *testing.T) {
	region := division.Region{
		NameUz: "Toshkent",
		NameOz: "Тошкент",
		NameRu: "Ташкентская область",
		NameEn: "Tashkent",
	}
	if err := region.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	region.NameEn = ""
	if err := region.Validate(); !errors.Is(err, division.ErrIncompleteNames) {
		t.Fatalf("expected ErrIncompleteNames, got %v", err)
	}
}

func TestDistrictValidateAllowsMissingEnglishName(t *testing.T) {
	district := division.District{
		NameUz: "Chilonzor",
		NameOz: "Чилонзор",
		NameRu: "Чиланзарский район",
	}
	if err := district.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	district.NameRu = ""
	if err := district.Validate(); !errors.Is(err, division.ErrIncompleteNames) {
		t.Fatalf("expected ErrIncompleteNames, got %v", err)
	}
}

func TestMatchesNameFoldsCyrillic(t *testing.T) {
	region := division.Region{
		NameUz: "Samarqand",
		NameOz: "Самарқанд",
		NameRu: "Самаркандская область",
		NameEn: "Samarkand",
	}

	for _, query := range []string{"samar", "SAMARKAND", "самарқанд", "САМАРКАНД", ""} {
		if !region.MatchesName(query) {
			t.Errorf("expected region to match %q", query)
		}
	}
	if region.MatchesName("Andijon") {
		t.Error("did not expect region to match Andijon")
	}
}
