package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/jwebster45206/world-graph/internal/config"
	"github.com/jwebster45206/world-graph/internal/logger"
	"github.com/jwebster45206/world-graph/internal/storage"
	"github.com/jwebster45206/world-graph/pkg/graph"
	"github.com/jwebster45206/world-graph/pkg/logic"
	"github.com/jwebster45206/world-graph/pkg/schema"
)

func main() {
	cfg := config.Load()
	dataDir := cfg.DataDir
	if len(os.Args) > 1 {
		dataDir = os.Args[1]
	}

	validator := &WorldValidator{log: logger.Setup(cfg)}

	if err := validator.validateDir(dataDir); err != nil {
		fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
		os.Exit(1)
	}

	for _, w := range validator.warnings {
		fmt.Printf("warning: %s\n", w)
	}
	fmt.Println("World data is valid!")
}

type WorldValidator struct {
	log      *slog.Logger
	errors   []string
	warnings []string
}

func (v *WorldValidator) validateDir(dataDir string) error {
	fmt.Printf("Validating %s...\n", dataDir)

	data, err := storage.LoadWorldDataDir(dataDir, v.log)
	if err != nil {
		return err
	}

	v.errors = nil
	v.warnings = nil

	v.validateRegions(data)
	v.validateLocations(data)
	v.validateVictory(data)

	// The graph build catches what per-table checks cannot: connection
	// targets that were never declared.
	if _, err := graph.BuildGraph(data.Regions); err != nil {
		v.errors = append(v.errors, err.Error())
	}

	if len(v.errors) > 0 {
		return fmt.Errorf("validation errors in %s:\n%s", dataDir, strings.Join(v.errors, "\n"))
	}
	return nil
}

func (v *WorldValidator) validateRegions(data *schema.WorldData) {
	for name, region := range data.Regions {
		for target, req := range region.Connections {
			if _, ok := data.Regions[target]; !ok {
				v.errors = append(v.errors,
					fmt.Sprintf("region %q connects to undeclared region %q", name, target))
			}
			v.validateRequirements(data, req, fmt.Sprintf("connection %q", graph.EntranceName(name, target)))
		}
	}
}

func (v *WorldValidator) validateLocations(data *schema.WorldData) {
	for name, loc := range data.Locations {
		if _, ok := data.Regions[loc.Region]; !ok {
			v.errors = append(v.errors,
				fmt.Sprintf("location %q references undeclared region %q", name, loc.Region))
		}
		v.validateRequirements(data, loc.Requirements, fmt.Sprintf("location %q", name))
	}
}

func (v *WorldValidator) validateVictory(data *schema.WorldData) {
	for key, req := range data.Victory {
		v.validateRequirements(data, req, fmt.Sprintf("victory %q", key))
	}
}

// validateRequirements warns about things that are tolerated at runtime but
// usually indicate authoring mistakes: unknown check methods (compile to
// always-true) and capability names missing from the item table.
func (v *WorldValidator) validateRequirements(data *schema.WorldData, req schema.RequirementSet, context string) {
	for option, checks := range req.Groups {
		if !optionKnown(option) {
			v.warnings = append(v.warnings,
				fmt.Sprintf("%s: unknown option gate %q (always disabled)", context, option))
		}
		for method := range checks {
			if !logic.KnownMethod(method) {
				v.warnings = append(v.warnings,
					fmt.Sprintf("%s: unknown requirement method %q (treated as always satisfied)", context, method))
			}
		}
	}

	for _, capability := range logic.Capabilities(req) {
		if _, ok := data.Items[capability]; !ok {
			v.warnings = append(v.warnings,
				fmt.Sprintf("%s: requirement references capability %q not present in items", context, capability))
		}
	}
}

func optionKnown(name string) bool {
	switch name {
	case logic.OptionRandomizeCustomers,
		logic.OptionRandomizeDealers,
		logic.OptionRandomizeSuppliers,
		logic.OptionRandomizeLevelUnlocks,
		logic.OptionRandomizeCartelInfluence,
		logic.OptionRandomizeBusinessProperties,
		logic.OptionRandomizeDrugMakingProperties:
		return true
	default:
		return false
	}
}
