package schema

import (
	"encoding/json"
	"fmt"
)

// VictoryTable maps each named victory method to its requirement set. It
// shares the RequirementSet shape with locations and connections.
type VictoryTable map[string]RequirementSet

// ParseVictory decodes the victory table.
func ParseVictory(data []byte) (VictoryTable, error) {
	var victory VictoryTable
	if err := json.Unmarshal(data, &victory); err != nil {
		return nil, fmt.Errorf("failed to parse victory conditions: %w", err)
	}
	return victory, nil
}

// WorldData bundles the four declarative tables a world is generated from.
// All tables are loaded once at generation start and read-only afterward.
type WorldData struct {
	Items     ItemTable
	Locations LocationTable
	Regions   RegionTable
	Victory   VictoryTable
}

// Validate cross-checks the tables: every location must sit in a declared
// region. Connection targets are validated during graph construction.
func (d *WorldData) Validate() error {
	return d.Locations.Validate(d.Regions)
}
