package schema

import (
	"encoding/json"
	"fmt"
)

// Region is a named node in the world graph. Connections define outgoing
// edges only; the graph is directed and cycles are expected (physical
// backtracking), not an error.
type Region struct {
	Name        string
	Connections map[string]RequirementSet // Target region name -> entrance requirement
}

// RegionTable holds all regions keyed by name.
type RegionTable map[string]Region

type regionJSON struct {
	Connections map[string]RequirementSet `json:"connections"`
}

// ParseRegions decodes the regions table, injecting each map key as the
// region name. Whether connection targets are themselves declared is checked
// at graph build time, once all regions are known.
func ParseRegions(data []byte) (RegionTable, error) {
	var raw map[string]regionJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse regions: %w", err)
	}

	regions := make(RegionTable, len(raw))
	for name, info := range raw {
		regions[name] = Region{
			Name:        name,
			Connections: info.Connections,
		}
	}
	return regions, nil
}
