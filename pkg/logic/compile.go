package logic

import (
	"sort"

	"github.com/jwebster45206/world-graph/pkg/schema"
)

// Combinator selects how the enabled option groups of a requirement set
// combine. Checks inside one group always AND together; the combinator only
// governs the groups themselves.
type Combinator int

const (
	CombineAll Combinator = iota // every enabled group must pass
	CombineAny                   // one passing group suffices
)

// alwaysTrue is the compiled form of an unconstrained requirement.
func alwaysTrue(CollectionView) bool { return true }

// Compile translates a requirement set into an executable predicate.
//
// Option gates are filtered once, here: configuration is immutable for the
// run, so groups behind disabled options are dropped at compile time rather
// than re-checked on every evaluation. If no group survives the filter the
// requirement is unconstrained and the predicate is constant true.
func Compile(req schema.RequirementSet, opts Resolver, mode Combinator) Predicate {
	if req.Unconstrained() {
		return alwaysTrue
	}

	subs := make([]Predicate, 0, len(req.Groups))
	for _, option := range sortedKeys(req.Groups) {
		if !opts.Enabled(option) {
			continue
		}

		checks := make([]check, 0, len(req.Groups[option]))
		for method, arg := range req.Groups[option] {
			checks = append(checks, parseCheck(method, arg))
		}
		if len(checks) == 0 {
			continue
		}

		subs = append(subs, func(view CollectionView) bool {
			for _, c := range checks {
				if !c.eval(view) {
					return false
				}
			}
			return true
		})
	}

	if len(subs) == 0 {
		return alwaysTrue
	}

	if mode == CombineAny {
		return func(view CollectionView) bool {
			for _, sub := range subs {
				if sub(view) {
					return true
				}
			}
			return false
		}
	}

	return func(view CollectionView) bool {
		for _, sub := range subs {
			if !sub(view) {
				return false
			}
		}
		return true
	}
}

// Capabilities returns the capability names referenced by a requirement
// set, in sorted order. Used by the validator to cross-check requirement
// data against the item table.
func Capabilities(req schema.RequirementSet) []string {
	seen := make(map[string]struct{})
	for _, checks := range req.Groups {
		for method, arg := range checks {
			c := parseCheck(method, arg)
			if c.name != "" {
				seen[c.name] = struct{}{}
			}
			for _, name := range c.names {
				seen[name] = struct{}{}
			}
			for name := range c.counts {
				seen[name] = struct{}{}
			}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func sortedKeys(groups map[string]schema.CheckSet) []string {
	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
