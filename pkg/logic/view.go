package logic

// CollectionView is the minimal read surface a compiled predicate needs:
// the capabilities a holder currently owns, queried five ways. The host's
// search state satisfies this; pkg/state provides a reference
// implementation. Predicates only read through this interface, so hosts may
// evaluate them concurrently as long as the view itself is immutable for
// the duration of a query or externally synchronized.
type CollectionView interface {
	// Has reports ownership of at least one of the named capability.
	Has(name string) bool

	// HasAny reports ownership of at least one capability from the list.
	HasAny(names []string) bool

	// HasAll reports ownership of at least one of every listed capability.
	HasAll(names []string) bool

	// HasAllCounts reports ownership of at least the required count of
	// every keyed capability.
	HasAllCounts(counts map[string]int) bool

	// HasFromList reports ownership of at least n distinct capabilities
	// from the list.
	HasFromList(names []string, n int) bool
}

// Predicate is a compiled access rule. Predicates are pure, reentrant and
// share no mutable state with each other.
type Predicate func(view CollectionView) bool
