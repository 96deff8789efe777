package schema

import (
	"encoding/json"
	"fmt"
)

// Location is one check the player can complete. Its requirements gate
// access; its region places it in the traversal graph.
type Location struct {
	Name         string
	Region       string
	Requirements RequirementSet
	Tags         []string
	ModernID     int
}

// LocationTable holds all locations keyed by name.
type LocationTable map[string]Location

type locationJSON struct {
	Region       string         `json:"region"`
	Requirements RequirementSet `json:"requirements"`
	Tags         []string       `json:"tags"`
	ModernID     int            `json:"modern_id"`
}

// ParseLocations decodes the locations table, injecting each map key as the
// location name.
func ParseLocations(data []byte) (LocationTable, error) {
	var raw map[string]locationJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse locations: %w", err)
	}

	locations := make(LocationTable, len(raw))
	for name, info := range raw {
		locations[name] = Location{
			Name:         name,
			Region:       info.Region,
			Requirements: info.Requirements,
			Tags:         info.Tags,
			ModernID:     info.ModernID,
		}
	}
	return locations, nil
}

// Validate checks that every location references a declared region.
// A dangling reference is malformed world data and aborts generation.
func (t LocationTable) Validate(regions RegionTable) error {
	for name, loc := range t {
		if _, ok := regions[loc.Region]; !ok {
			return fmt.Errorf("location %q references undeclared region %q", name, loc.Region)
		}
	}
	return nil
}

// HasTag reports whether the location carries the named tag.
func (l Location) HasTag(tag string) bool {
	for _, t := range l.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// HasAnyTag reports whether the location carries at least one of the named tags.
func (l Location) HasAnyTag(tags ...string) bool {
	for _, tag := range tags {
		if l.HasTag(tag) {
			return true
		}
	}
	return false
}
