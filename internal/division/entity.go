package division

import (
	"fmt"
	"strings"
)

// Entity identifies one administrative division level.
type Entity string

const (
	EntityRegion   Entity = "region"
	EntityDistrict Entity = "district"
	EntityVillage  Entity = "village"
)

// Entities returns all division levels in hierarchy order, parents first.
func Entities() []Entity {
	return []Entity{EntityRegion, EntityDistrict, EntityVillage}
}

// ParseEntity normalizes and validates a user-supplied entity name.
func ParseEntity(value string) (Entity, error) {
	entity := Entity(strings.ToLower(strings.TrimSpace(value)))
	if !entity.Valid() {
		return "", fmt.Errorf("unknown entity %q (expected region, district, or village)", value)
	}
	return entity, nil
}

func (e Entity) String() string {
	return string(e)
}

// Valid reports whether e names a known division level.
func (e Entity) Valid() bool {
	switch e {
	case EntityRegion, EntityDistrict, EntityVillage:
		return true
	}
	return false
}

// Dependencies returns the parent entities that must be enabled before e can
// be served or populated. Regions stand alone.
func (e Entity) Dependencies() []Entity {
	switch e {
	case EntityDistrict:
		return []Entity{EntityRegion}
	case EntityVillage:
		return []Entity{EntityRegion, EntityDistrict}
	}
	return nil
}
