package graph

import (
	"testing"

	"github.com/jwebster45206/world-graph/pkg/logic"
	"github.com/jwebster45206/world-graph/pkg/schema"
	"github.com/jwebster45206/world-graph/pkg/state"
)

func TestCompletionPredicate(t *testing.T) {
	empty := state.NewCollection()

	cartel := state.NewCollection()
	cartel.Add(CapabilityCartelDefeated, 1)

	networth := state.NewCollection()
	networth.Add(CapabilityNetworthGoal, 1)

	both := state.NewCollection()
	both.Add(CapabilityCartelDefeated, 1)
	both.Add(CapabilityNetworthGoal, 1)

	tests := []struct {
		name string
		goal int
		coll *state.Collection
		want bool
	}{
		{"both requires both - empty", logic.GoalBoth, empty, false},
		{"both requires both - cartel only", logic.GoalBoth, cartel, false},
		{"both requires both - networth only", logic.GoalBoth, networth, false},
		{"both requires both - both", logic.GoalBoth, both, true},
		{"networth goal - cartel only", logic.GoalNetworthOnly, cartel, false},
		{"networth goal - networth", logic.GoalNetworthOnly, networth, true},
		{"cartel goal - networth only", logic.GoalCartelOnly, networth, false},
		{"cartel goal - cartel", logic.GoalCartelOnly, cartel, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pred, err := CompletionPredicate(tt.goal)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := pred(tt.coll); got != tt.want {
				t.Errorf("goal %d against %v = %v, want %v", tt.goal, tt.coll.Counts, got, tt.want)
			}
		})
	}
}

func TestCompletionPredicateInvalidGoal(t *testing.T) {
	for _, goal := range []int{-1, 3, 42} {
		if _, err := CompletionPredicate(goal); err == nil {
			t.Errorf("goal %d should be rejected", goal)
		}
	}
}

func TestBuildWorld(t *testing.T) {
	data := &schema.WorldData{
		Items: schema.ItemTable{
			"Westville Unlocked": {Name: "Westville Unlocked"},
		},
		Locations: schema.LocationTable{
			"Property - Barn Deed": {
				Name:         "Property - Barn Deed",
				Region:       "Westville",
				Requirements: always(),
				Tags:         []string{"Property"},
			},
		},
		Regions: testRegions(t),
		Victory: schema.VictoryTable{},
	}
	opts := allEnabled()
	opts.Goal = logic.GoalCartelOnly

	w, err := BuildWorld(data, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if w.Location("Property - Barn Deed") == nil {
		t.Error("location should be bound")
	}

	coll := state.NewCollection()
	if w.Complete(coll) {
		t.Error("empty collection should not complete")
	}
	coll.Add(CapabilityCartelDefeated, 1)
	if !w.Complete(coll) {
		t.Error("cartel goal should complete with the cartel capability")
	}
}

func TestBuildWorldInvalidGoal(t *testing.T) {
	data := &schema.WorldData{Regions: testRegions(t)}
	opts := allEnabled()
	opts.Goal = 3

	if _, err := BuildWorld(data, opts); err == nil {
		t.Fatal("goal 3 must be rejected before registration")
	}
}

func TestBuildWorldMalformedData(t *testing.T) {
	data := &schema.WorldData{
		Locations: schema.LocationTable{
			"Lost Check": {Name: "Lost Check", Region: "Atlantis", Requirements: always()},
		},
		Regions: testRegions(t),
	}

	if _, err := BuildWorld(data, allEnabled()); err == nil {
		t.Fatal("dangling region reference must abort construction")
	}
}
