package graph

import (
	"fmt"

	"github.com/jwebster45206/world-graph/pkg/logic"
	"github.com/jwebster45206/world-graph/pkg/schema"
)

// Capabilities that mark the two victory tracks.
const (
	CapabilityCartelDefeated = "Cartel Defeated"
	CapabilityNetworthGoal   = "Networth Goal Reached"
)

// CompletionPredicate selects the victory predicate for a goal mode. Goal
// values outside the closed set are rejected before anything is registered.
func CompletionPredicate(goal int) (logic.Predicate, error) {
	switch goal {
	case logic.GoalBoth:
		return func(view logic.CollectionView) bool {
			return view.HasAll([]string{CapabilityCartelDefeated, CapabilityNetworthGoal})
		}, nil
	case logic.GoalNetworthOnly:
		return func(view logic.CollectionView) bool {
			return view.Has(CapabilityNetworthGoal)
		}, nil
	case logic.GoalCartelOnly:
		return func(view logic.CollectionView) bool {
			return view.Has(CapabilityCartelDefeated)
		}, nil
	default:
		return nil, fmt.Errorf("invalid goal %d: must be 0 (both), 1 (networth) or 2 (cartel)", goal)
	}
}

// BuildWorld runs the full construction pipeline: validate options and
// table references, build the graph, bind entrance and location rules, and
// register the completion predicate. Construction is strictly sequential;
// each step reads the immutable output of the previous one. The returned
// World is owned by the caller and never mutated again.
func BuildWorld(data *schema.WorldData, opts *logic.Options) (*World, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if err := data.Validate(); err != nil {
		return nil, fmt.Errorf("invalid world data: %w", err)
	}

	w, err := BuildGraph(data.Regions)
	if err != nil {
		return nil, fmt.Errorf("failed to build graph: %w", err)
	}

	BindEntranceRules(w, data.Regions, opts)
	if err := BindLocationRules(w, data.Locations, opts); err != nil {
		return nil, fmt.Errorf("failed to bind location rules: %w", err)
	}

	completion, err := CompletionPredicate(opts.Goal)
	if err != nil {
		return nil, err
	}
	w.completion = completion

	return w, nil
}
