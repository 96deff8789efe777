package state

import (
	"time"

	"github.com/google/uuid"
	"github.com/jwebster45206/world-graph/pkg/logic"
)

// Collection is a counted multiset of capabilities a holder has unlocked.
// It is the reference implementation of logic.CollectionView, used by
// tooling and tests; a host engine may substitute its own search state.
//
// Collection is not safe for concurrent mutation. Compiled predicates only
// read it, so concurrent evaluation is fine while no writer is active.
type Collection struct {
	ID        uuid.UUID      `json:"id"`
	Counts    map[string]int `json:"counts,omitempty"`
	CreatedAt time.Time      `json:"created_at,omitempty"`
	UpdatedAt time.Time      `json:"updated_at,omitempty"`
}

var _ logic.CollectionView = (*Collection)(nil)

// NewCollection creates an empty collection with a fresh session ID.
func NewCollection() *Collection {
	return &Collection{
		ID:        uuid.New(),
		Counts:    make(map[string]int),
		CreatedAt: time.Now(),
	}
}

// Add grants n copies of the named capability. Negative n revokes; the
// count never drops below zero and zero entries are removed.
func (c *Collection) Add(name string, n int) {
	if c.Counts == nil {
		c.Counts = make(map[string]int)
	}
	total := c.Counts[name] + n
	if total <= 0 {
		delete(c.Counts, name)
	} else {
		c.Counts[name] = total
	}
	c.UpdatedAt = time.Now()
}

// Count returns how many copies of the named capability are held.
func (c *Collection) Count(name string) int {
	return c.Counts[name]
}

// Has reports ownership of at least one of the named capability.
func (c *Collection) Has(name string) bool {
	return c.Counts[name] > 0
}

// HasAny reports ownership of at least one capability from the list.
func (c *Collection) HasAny(names []string) bool {
	for _, name := range names {
		if c.Has(name) {
			return true
		}
	}
	return false
}

// HasAll reports ownership of at least one of every listed capability.
func (c *Collection) HasAll(names []string) bool {
	for _, name := range names {
		if !c.Has(name) {
			return false
		}
	}
	return true
}

// HasAllCounts reports ownership of at least the required count of every
// keyed capability.
func (c *Collection) HasAllCounts(counts map[string]int) bool {
	for name, required := range counts {
		if c.Counts[name] < required {
			return false
		}
	}
	return true
}

// HasFromList reports ownership of at least n distinct capabilities from
// the list.
func (c *Collection) HasFromList(names []string, n int) bool {
	owned := 0
	for _, name := range names {
		if c.Has(name) {
			owned++
			if owned >= n {
				return true
			}
		}
	}
	return n <= 0
}
