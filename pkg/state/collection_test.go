package state

import (
	"encoding/json"
	"testing"
)

func TestCollectionAddAndCount(t *testing.T) {
	c := NewCollection()

	if c.Has("OG Kush") {
		t.Error("new collection should be empty")
	}

	c.Add("OG Kush", 1)
	c.Add("OG Kush", 2)
	if got := c.Count("OG Kush"); got != 3 {
		t.Errorf("Count = %d, want 3", got)
	}

	c.Add("OG Kush", -1)
	if got := c.Count("OG Kush"); got != 2 {
		t.Errorf("Count after revoke = %d, want 2", got)
	}

	// Revoking past zero clears the entry
	c.Add("OG Kush", -10)
	if c.Has("OG Kush") {
		t.Error("count should not go negative")
	}
	if _, ok := c.Counts["OG Kush"]; ok {
		t.Error("zeroed entries should be removed")
	}
}

func TestCollectionViewQueries(t *testing.T) {
	c := NewCollection()
	c.Add("A", 2)
	c.Add("B", 1)

	if !c.Has("A") || c.Has("C") {
		t.Error("Has mismatch")
	}
	if !c.HasAny([]string{"C", "B"}) {
		t.Error("HasAny should find B")
	}
	if c.HasAny([]string{"C", "D"}) {
		t.Error("HasAny should fail for unheld names")
	}
	if !c.HasAll([]string{"A", "B"}) {
		t.Error("HasAll should pass when all are held")
	}
	if c.HasAll([]string{"A", "C"}) {
		t.Error("HasAll should fail when one is missing")
	}
	if !c.HasAllCounts(map[string]int{"A": 2, "B": 1}) {
		t.Error("HasAllCounts should pass at exact counts")
	}
	if c.HasAllCounts(map[string]int{"A": 3}) {
		t.Error("HasAllCounts should fail below the required count")
	}
	if !c.HasFromList([]string{"A", "B", "C"}, 2) {
		t.Error("HasFromList should count distinct held names")
	}
	if c.HasFromList([]string{"A", "C", "D"}, 2) {
		t.Error("HasFromList should fail with only one held name")
	}
}

func TestCollectionJSONRoundTrip(t *testing.T) {
	c := NewCollection()
	c.Add("OG Kush", 2)
	c.Add("Westville Unlocked", 1)

	data, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var loaded Collection
	if err := json.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if loaded.ID != c.ID {
		t.Errorf("ID = %s, want %s", loaded.ID, c.ID)
	}
	if loaded.Count("OG Kush") != 2 || loaded.Count("Westville Unlocked") != 1 {
		t.Errorf("counts lost in round trip: %v", loaded.Counts)
	}
}
