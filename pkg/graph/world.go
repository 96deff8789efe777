package graph

import (
	"fmt"

	"github.com/jwebster45206/world-graph/pkg/logic"
)

// DefaultStartRegion is where traversal begins in well-formed world data.
const DefaultStartRegion = "Menu"

// EntranceName derives the stable edge name for a connection. Binding looks
// edges up by this key, so the format must not change between build and
// bind.
func EntranceName(source, target string) string {
	return fmt.Sprintf("%s to %s", source, target)
}

// Region is one node of the world graph, holding its outgoing entrances and
// the location slots bound inside it.
type Region struct {
	Name      string
	Exits     []*Entrance
	Locations []*Location
}

// Entrance is a directed edge between two regions. A nil access predicate
// means the entrance has not been gated and is always passable.
type Entrance struct {
	Name   string
	Source *Region
	Target *Region

	access logic.Predicate
}

// Accessible evaluates the entrance's bound rule against a collection.
func (e *Entrance) Accessible(view logic.CollectionView) bool {
	if e.access == nil {
		return true
	}
	return e.access(view)
}

// Location is a bound location access point: a check that exists in this
// configuration, placed in its region, guarded by its compiled rule.
type Location struct {
	Name     string
	ModernID int
	Tags     []string
	Region   *Region

	access logic.Predicate
}

// Accessible evaluates the location's bound rule against a collection. It
// does not consider whether the owning region is reachable; that is the
// host's traversal concern.
func (l *Location) Accessible(view logic.CollectionView) bool {
	if l.access == nil {
		return true
	}
	return l.access(view)
}

// World is the fully built traversal graph: name-indexed regions, named
// predicate-annotated entrances, bound locations and the completion
// predicate. It is assembled once per generation and never mutated
// afterward; the host may query it from any number of concurrent searches.
type World struct {
	regions    map[string]*Region
	entrances  map[string]*Entrance
	locations  map[string]*Location
	completion logic.Predicate
}

// Region returns the named region, or nil.
func (w *World) Region(name string) *Region {
	return w.regions[name]
}

// Entrance returns the edge with the given derived name, or nil.
func (w *World) Entrance(name string) *Entrance {
	return w.entrances[name]
}

// Location returns the named bound location, or nil if it does not exist in
// this configuration.
func (w *World) Location(name string) *Location {
	return w.locations[name]
}

// Regions returns the region index. Callers must treat it as read-only.
func (w *World) Regions() map[string]*Region {
	return w.regions
}

// Locations returns the bound location index. Callers must treat it as
// read-only.
func (w *World) Locations() map[string]*Location {
	return w.locations
}

// Complete evaluates the registered completion predicate.
func (w *World) Complete(view logic.CollectionView) bool {
	if w.completion == nil {
		return false
	}
	return w.completion(view)
}

// Reachable walks the graph from start, crossing only entrances whose rules
// pass against the given collection, and returns the set of reachable
// region names. This is a debugging convenience for tooling; the host
// engine runs its own reachability search.
func (w *World) Reachable(view logic.CollectionView, start string) map[string]bool {
	reached := make(map[string]bool)
	origin, ok := w.regions[start]
	if !ok {
		return reached
	}

	queue := []*Region{origin}
	reached[origin.Name] = true
	for len(queue) > 0 {
		region := queue[0]
		queue = queue[1:]
		for _, exit := range region.Exits {
			if reached[exit.Target.Name] || !exit.Accessible(view) {
				continue
			}
			reached[exit.Target.Name] = true
			queue = append(queue, exit.Target)
		}
	}
	return reached
}
