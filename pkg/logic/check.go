package logic

import (
	"encoding/json"
	"sort"
)

// checkKind enumerates the closed set of requirement methods. Method names
// are resolved into a variant once at compile time; evaluation never
// dispatches on strings.
type checkKind int

const (
	checkUnknown checkKind = iota // unrecognized method, constant true
	checkHas
	checkHasAny
	checkHasAll
	checkHasAllCounts
	checkHasFromList
)

var methodKinds = map[string]checkKind{
	"has":            checkHas,
	"has_any":        checkHasAny,
	"has_all":        checkHasAll,
	"has_all_counts": checkHasAllCounts,
	"has_from_list":  checkHasFromList,
}

// KnownMethod reports whether name is a recognized requirement method.
// Unrecognized methods compile to constant true; the validator uses this to
// warn about them instead.
func KnownMethod(name string) bool {
	_, ok := methodKinds[name]
	return ok
}

// check is one parsed requirement method with its argument. Exactly one of
// the argument fields is meaningful, selected by kind.
type check struct {
	kind      checkKind
	name      string         // checkHas
	names     []string       // checkHasAny, checkHasAll, checkHasFromList
	counts    map[string]int // checkHasAllCounts
	threshold int            // checkHasFromList
}

// parseCheck resolves a method name and raw JSON argument into a check.
// Unknown methods and malformed arguments degrade to checkUnknown, which
// evaluates to true. That permissive default is deliberate: unfamiliar
// requirement syntax must not make a world ungeneratable.
func parseCheck(method string, arg json.RawMessage) check {
	switch methodKinds[method] {
	case checkHas:
		var name string
		if err := json.Unmarshal(arg, &name); err != nil {
			return check{kind: checkUnknown}
		}
		return check{kind: checkHas, name: name}

	case checkHasAny:
		names, ok := parseNameList(arg)
		if !ok {
			return check{kind: checkUnknown}
		}
		return check{kind: checkHasAny, names: names}

	case checkHasAll:
		var names []string
		if err := json.Unmarshal(arg, &names); err != nil {
			return check{kind: checkUnknown}
		}
		return check{kind: checkHasAll, names: names}

	case checkHasAllCounts:
		var counts map[string]int
		if err := json.Unmarshal(arg, &counts); err != nil {
			return check{kind: checkUnknown}
		}
		return check{kind: checkHasAllCounts, counts: counts}

	case checkHasFromList:
		// Argument is {name: count, ...} where every count is the same
		// threshold: own at least that many distinct names from the keys.
		var counts map[string]int
		if err := json.Unmarshal(arg, &counts); err != nil || len(counts) == 0 {
			return check{kind: checkUnknown}
		}
		names := make([]string, 0, len(counts))
		threshold := 0
		for name, n := range counts {
			names = append(names, name)
			threshold = n
		}
		sort.Strings(names)
		return check{kind: checkHasFromList, names: names, threshold: threshold}
	}

	return check{kind: checkUnknown}
}

// parseNameList accepts the two authoring shapes seen for has_any: a flat
// list of names, or a list whose first element is itself the list (an
// inconsistency in the source data). Other methods do not get this
// tolerance.
func parseNameList(arg json.RawMessage) ([]string, bool) {
	var flat []string
	if err := json.Unmarshal(arg, &flat); err == nil {
		return flat, true
	}

	var nested [][]string
	if err := json.Unmarshal(arg, &nested); err == nil && len(nested) > 0 {
		return nested[0], true
	}
	return nil, false
}

func (c check) eval(view CollectionView) bool {
	switch c.kind {
	case checkHas:
		return view.Has(c.name)
	case checkHasAny:
		return view.HasAny(c.names)
	case checkHasAll:
		return view.HasAll(c.names)
	case checkHasAllCounts:
		return view.HasAllCounts(c.counts)
	case checkHasFromList:
		return view.HasFromList(c.names, c.threshold)
	default:
		return true
	}
}
