package logic

import (
	"encoding/json"
	"testing"

	"github.com/jwebster45206/world-graph/pkg/schema"
)

// testCollection implements CollectionView over a plain count map
type testCollection map[string]int

func (c testCollection) Has(name string) bool { return c[name] > 0 }

func (c testCollection) HasAny(names []string) bool {
	for _, name := range names {
		if c.Has(name) {
			return true
		}
	}
	return false
}

func (c testCollection) HasAll(names []string) bool {
	for _, name := range names {
		if !c.Has(name) {
			return false
		}
	}
	return true
}

func (c testCollection) HasAllCounts(counts map[string]int) bool {
	for name, required := range counts {
		if c[name] < required {
			return false
		}
	}
	return true
}

func (c testCollection) HasFromList(names []string, n int) bool {
	owned := 0
	for _, name := range names {
		if c.Has(name) {
			owned++
		}
	}
	return owned >= n
}

func mustReq(t *testing.T, input string) schema.RequirementSet {
	t.Helper()
	var req schema.RequirementSet
	if err := json.Unmarshal([]byte(input), &req); err != nil {
		t.Fatalf("failed to parse requirement: %v", err)
	}
	return req
}

func allEnabled() *Options {
	return &Options{
		RandomizeCustomers:            true,
		RandomizeDealers:              true,
		RandomizeSuppliers:            true,
		RandomizeLevelUnlocks:         true,
		RandomizeCartelInfluence:      true,
		RandomizeBusinessProperties:   true,
		RandomizeDrugMakingProperties: true,
	}
}

func TestCompileAlways(t *testing.T) {
	pred := Compile(mustReq(t, `true`), allEnabled(), CombineAll)

	if !pred(testCollection{}) {
		t.Error("always-true requirement should pass for an empty collection")
	}
	if !pred(testCollection{"OG Kush": 3}) {
		t.Error("always-true requirement should pass for any collection")
	}
}

func TestCompileHas(t *testing.T) {
	pred := Compile(mustReq(t, `{"randomize_level_unlocks": {"has": "Westville Unlocked"}}`), allEnabled(), CombineAll)

	if pred(testCollection{}) {
		t.Error("expected failure for empty collection")
	}
	if pred(testCollection{"Downtown Unlocked": 1}) {
		t.Error("expected failure when holding a different capability")
	}
	if !pred(testCollection{"Westville Unlocked": 1}) {
		t.Error("expected success when holding the capability")
	}
}

func TestCompileHasAllCounts(t *testing.T) {
	pred := Compile(mustReq(t, `{"randomize_level_unlocks": {"has_all_counts": {"A": 2, "B": 1}}}`), allEnabled(), CombineAll)

	if pred(testCollection{"A": 1, "B": 1}) {
		t.Error("A:1,B:1 should not satisfy {A:2, B:1}")
	}
	if !pred(testCollection{"A": 2, "B": 1}) {
		t.Error("A:2,B:1 should satisfy {A:2, B:1}")
	}
}

func TestCompileHasFromList(t *testing.T) {
	pred := Compile(mustReq(t, `{"randomize_customers": {"has_from_list": {"A": 2, "B": 2, "C": 2}}}`), allEnabled(), CombineAll)

	tests := []struct {
		name string
		coll testCollection
		want bool
	}{
		{"none held", testCollection{}, false},
		{"one held", testCollection{"A": 1}, false},
		{"two held", testCollection{"A": 1, "B": 1}, true},
		{"a different two held", testCollection{"B": 1, "C": 1}, true},
		{"all held", testCollection{"A": 1, "B": 1, "C": 1}, true},
		{"two off-list held", testCollection{"X": 1, "Y": 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pred(tt.coll); got != tt.want {
				t.Errorf("pred(%v) = %v, want %v", tt.coll, got, tt.want)
			}
		})
	}
}

func TestCompileDisabledGateIsUnconstrained(t *testing.T) {
	// The gate's inner check would fail against an empty collection, but
	// the gate is disabled, so the compiled predicate must be constant
	// true: no applicable gate means access is unconstrained.
	opts := &Options{} // everything disabled
	pred := Compile(mustReq(t, `{"randomize_level_unlocks": {"has": "Westville Unlocked"}}`), opts, CombineAll)

	if !pred(testCollection{}) {
		t.Error("disabled gate must not constrain access")
	}
	if !pred(testCollection{"Westville Unlocked": 1}) {
		t.Error("disabled gate must not constrain access for any state")
	}
}

func TestCompileCombinatorLaw(t *testing.T) {
	// Two enabled gates: one check passes, one fails.
	req := mustReq(t, `{
		"randomize_customers": {"has": "Held"},
		"randomize_dealers": {"has": "Missing"}
	}`)
	coll := testCollection{"Held": 1}

	if Compile(req, allEnabled(), CombineAll)(coll) {
		t.Error("AND mode must fail when one gate fails")
	}
	if !Compile(req, allEnabled(), CombineAny)(coll) {
		t.Error("OR mode must pass when one gate passes")
	}
}

func TestCompileInnerChecksAlwaysAnd(t *testing.T) {
	// Checks inside a single gate AND together even in OR mode.
	req := mustReq(t, `{"randomize_customers": {"has": "Held", "has_all": ["Missing"]}}`)
	coll := testCollection{"Held": 1}

	if Compile(req, allEnabled(), CombineAny)(coll) {
		t.Error("inner checks of a gate must all hold, even under OR combination")
	}
}

func TestCompileIdempotent(t *testing.T) {
	req := mustReq(t, `{
		"randomize_customers": {"has_any": ["A", "B"]},
		"randomize_level_unlocks": {"has_all_counts": {"C": 2}}
	}`)
	opts := allEnabled()

	first := Compile(req, opts, CombineAll)
	second := Compile(req, opts, CombineAll)

	states := []testCollection{
		{},
		{"A": 1},
		{"C": 2},
		{"A": 1, "C": 1},
		{"A": 1, "C": 2},
		{"B": 3, "C": 5},
	}
	for _, coll := range states {
		if first(coll) != second(coll) {
			t.Errorf("recompiled predicate disagrees for %v", coll)
		}
	}
}

func TestCapabilities(t *testing.T) {
	req := mustReq(t, `{
		"randomize_customers": {"has_any": [["B", "A"]]},
		"randomize_level_unlocks": {"has_all_counts": {"C": 2}, "has": "A"}
	}`)

	got := Capabilities(req)
	want := []string{"A", "B", "C"}
	if len(got) != len(want) {
		t.Fatalf("Capabilities = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Capabilities = %v, want %v", got, want)
		}
	}
}
