package schema

import (
	"encoding/json"
	"fmt"
)

// Classification is a bitmask of item roles used by the host's fill
// algorithm. An item carries at least one flag; flags combine with OR.
type Classification uint8

const (
	ClassUseful Classification = 1 << iota
	ClassProgression
	ClassFiller
	ClassProgressionSkipBalancing
)

var classificationNames = map[string]Classification{
	"USEFUL":                     ClassUseful,
	"PROGRESSION":                ClassProgression,
	"FILLER":                     ClassFiller,
	"PROGRESSION_SKIP_BALANCING": ClassProgressionSkipBalancing,
}

// Has reports whether all flags in mask are set.
func (c Classification) Has(mask Classification) bool {
	return c&mask == mask
}

func (c Classification) String() string {
	switch {
	case c.Has(ClassProgressionSkipBalancing):
		return "progression_skip_balancing"
	case c.Has(ClassProgression):
		return "progression"
	case c.Has(ClassUseful):
		return "useful"
	default:
		return "filler"
	}
}

// Item is one grantable capability, immutable after load.
type Item struct {
	Name           string
	ModernID       int
	Classification Classification
	Tags           []string
}

// ItemTable holds all items keyed by name.
type ItemTable map[string]Item

type itemJSON struct {
	ModernID       int             `json:"modern_id"`
	Classification json.RawMessage `json:"classification"`
	Tags           []string        `json:"tags"`
}

// ParseItems decodes the items table. The classification field accepts a
// single string or a list of strings; list entries are OR-combined. An
// unrecognized classification string is a load error.
func ParseItems(data []byte) (ItemTable, error) {
	var raw map[string]itemJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse items: %w", err)
	}

	items := make(ItemTable, len(raw))
	for name, info := range raw {
		class, err := parseClassification(info.Classification)
		if err != nil {
			return nil, fmt.Errorf("item %q: %w", name, err)
		}
		items[name] = Item{
			Name:           name,
			ModernID:       info.ModernID,
			Classification: class,
			Tags:           info.Tags,
		}
	}
	return items, nil
}

func parseClassification(raw json.RawMessage) (Classification, error) {
	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		class, ok := classificationNames[single]
		if !ok {
			return 0, fmt.Errorf("unknown classification %q", single)
		}
		return class, nil
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		return 0, fmt.Errorf("classification must be a string or list of strings: %w", err)
	}
	if len(list) == 0 {
		return 0, fmt.Errorf("classification list is empty")
	}

	var class Classification
	for _, name := range list {
		flag, ok := classificationNames[name]
		if !ok {
			return 0, fmt.Errorf("unknown classification %q", name)
		}
		class |= flag
	}
	return class, nil
}
