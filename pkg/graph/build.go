package graph

import (
	"fmt"
	"sort"

	"github.com/jwebster45206/world-graph/pkg/schema"
)

// BuildGraph creates the node-and-edge structure from the region table.
//
// The build is two-phase: allocate every region node first, then resolve
// each declared connection against the finished node index. Node creation
// is therefore order-independent and forward references between regions are
// fine. A connection whose target region was never declared is malformed
// world data and fails the whole build; a partial graph is not usable.
func BuildGraph(regions schema.RegionTable) (*World, error) {
	w := &World{
		regions:   make(map[string]*Region, len(regions)),
		entrances: make(map[string]*Entrance),
		locations: make(map[string]*Location),
	}

	for name := range regions {
		w.regions[name] = &Region{Name: name}
	}

	for name, region := range regions {
		source := w.regions[name]
		for _, target := range sortedTargets(region.Connections) {
			targetRegion, ok := w.regions[target]
			if !ok {
				return nil, fmt.Errorf("region %q connects to undeclared region %q", name, target)
			}

			entrance := &Entrance{
				Name:   EntranceName(name, target),
				Source: source,
				Target: targetRegion,
			}
			source.Exits = append(source.Exits, entrance)
			w.entrances[entrance.Name] = entrance
		}
	}

	return w, nil
}

// sortedTargets keeps exit ordering stable across builds.
func sortedTargets(connections map[string]schema.RequirementSet) []string {
	targets := make([]string, 0, len(connections))
	for target := range connections {
		targets = append(targets, target)
	}
	sort.Strings(targets)
	return targets
}
