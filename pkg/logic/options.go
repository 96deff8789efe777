package logic

import "fmt"

// Option names as they appear in requirement data. The set is fixed;
// anything else resolves to disabled.
const (
	OptionRandomizeCustomers            = "randomize_customers"
	OptionRandomizeDealers              = "randomize_dealers"
	OptionRandomizeSuppliers            = "randomize_suppliers"
	OptionRandomizeLevelUnlocks         = "randomize_level_unlocks"
	OptionRandomizeCartelInfluence      = "randomize_cartel_influence"
	OptionRandomizeBusinessProperties   = "randomize_business_properties"
	OptionRandomizeDrugMakingProperties = "randomize_drug_making_properties"
)

// Goal modes. Anything outside this set is a configuration error.
const (
	GoalBoth         = 0 // defeat the cartel and reach the networth goal
	GoalNetworthOnly = 1
	GoalCartelOnly   = 2
)

// Resolver answers whether a named option gate is enabled for this run.
// Configuration is immutable for a generation, so the compiler consults the
// resolver once per requirement set, at compile time.
type Resolver interface {
	Enabled(name string) bool
}

// Options is the per-run toggle configuration supplied by the player.
type Options struct {
	RandomizeCustomers            bool `json:"randomize_customers"`
	RandomizeDealers              bool `json:"randomize_dealers"`
	RandomizeSuppliers            bool `json:"randomize_suppliers"`
	RandomizeLevelUnlocks         bool `json:"randomize_level_unlocks"`
	RandomizeCartelInfluence      bool `json:"randomize_cartel_influence"`
	RandomizeBusinessProperties   bool `json:"randomize_business_properties"`
	RandomizeDrugMakingProperties bool `json:"randomize_drug_making_properties"`
	Goal                          int  `json:"goal"`
}

var _ Resolver = (*Options)(nil)

// Enabled resolves an option name from requirement data. Unrecognized names
// are disabled.
func (o *Options) Enabled(name string) bool {
	switch name {
	case OptionRandomizeCustomers:
		return o.RandomizeCustomers
	case OptionRandomizeDealers:
		return o.RandomizeDealers
	case OptionRandomizeSuppliers:
		return o.RandomizeSuppliers
	case OptionRandomizeLevelUnlocks:
		return o.RandomizeLevelUnlocks
	case OptionRandomizeCartelInfluence:
		return o.RandomizeCartelInfluence
	case OptionRandomizeBusinessProperties:
		return o.RandomizeBusinessProperties
	case OptionRandomizeDrugMakingProperties:
		return o.RandomizeDrugMakingProperties
	default:
		return false
	}
}

// Validate rejects configurations that must not reach world construction.
func (o *Options) Validate() error {
	switch o.Goal {
	case GoalBoth, GoalNetworthOnly, GoalCartelOnly:
		return nil
	default:
		return fmt.Errorf("invalid goal %d: must be 0 (both), 1 (networth) or 2 (cartel)", o.Goal)
	}
}
