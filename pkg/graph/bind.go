package graph

import (
	"fmt"

	"github.com/jwebster45206/world-graph/pkg/logic"
	"github.com/jwebster45206/world-graph/pkg/schema"
)

// npcTags mark locations with interchangeable access routes: any one of the
// location's enabled option groups suffices, instead of all of them.
var npcTags = []string{"Customer", "Dealer", "Supplier"}

// BindEntranceRules compiles every declared connection requirement and
// attaches it to the matching named edge. Entrances always combine their
// option groups with AND: structural gates must all hold at once.
//
// An entrance name that resolves to no edge is skipped silently. That only
// happens when a region exists without having been wired, which is
// tolerated rather than treated as an error.
func BindEntranceRules(w *World, regions schema.RegionTable, opts logic.Resolver) {
	for name, region := range regions {
		for target, req := range region.Connections {
			entrance := w.entrances[EntranceName(name, target)]
			if entrance == nil {
				continue
			}
			entrance.access = logic.Compile(req, opts, logic.CombineAll)
		}
	}
}

// BindLocationRules filters and binds the location table.
//
// Locations tagged Supplier structurally do not exist while supplier
// randomization is enabled; they are excluded here, once, before any
// predicate is compiled. Remaining locations use OR combination iff they
// carry a Customer, Dealer or Supplier tag (alternative access routes),
// otherwise AND.
func BindLocationRules(w *World, locations schema.LocationTable, opts logic.Resolver) error {
	for name, loc := range locations {
		if opts.Enabled(logic.OptionRandomizeSuppliers) && loc.HasTag("Supplier") {
			continue
		}

		region, ok := w.regions[loc.Region]
		if !ok {
			return fmt.Errorf("location %q references undeclared region %q", name, loc.Region)
		}

		mode := logic.CombineAll
		if loc.HasAnyTag(npcTags...) {
			mode = logic.CombineAny
		}

		bound := &Location{
			Name:     name,
			ModernID: loc.ModernID,
			Tags:     loc.Tags,
			Region:   region,
			access:   logic.Compile(loc.Requirements, opts, mode),
		}
		region.Locations = append(region.Locations, bound)
		w.locations[name] = bound
	}
	return nil
}
