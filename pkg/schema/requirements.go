package schema

import "encoding/json"

// RequirementSet is the access requirement attached to a location or to a
// region connection. In JSON it is either the literal true (always
// accessible) or an object keyed by option name, where each value is a set
// of named checks, e.g.:
//
//	{"randomize_level_unlocks": {"has": "Westville Unlocked"}}
//
// An option gate that is disabled in the current configuration contributes
// nothing to evaluation; its checks are never run.
type RequirementSet struct {
	Always bool                // True when the JSON value is the literal true
	Groups map[string]CheckSet // Option name -> checks that apply while it is enabled
}

// CheckSet maps a check method name (has, has_any, has_all, has_all_counts,
// has_from_list) to its raw JSON argument. Arguments stay raw here; the
// logic package parses them into closed check variants at compile time.
type CheckSet map[string]json.RawMessage

// UnmarshalJSON supports both authoring shapes: a bare boolean and an
// option-keyed object. Anything that is neither decodes as always-true,
// matching the permissive handling of the source data.
func (r *RequirementSet) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		r.Always = true
		r.Groups = nil
		return nil
	}

	var groups map[string]CheckSet
	if err := json.Unmarshal(data, &groups); err != nil {
		r.Always = true
		r.Groups = nil
		return nil
	}

	r.Always = false
	r.Groups = groups
	return nil
}

// Unconstrained reports whether the set places no conditions on access.
func (r RequirementSet) Unconstrained() bool {
	return r.Always || len(r.Groups) == 0
}
