package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jwebster45206/world-graph/internal/config"
	"github.com/jwebster45206/world-graph/internal/storage"
	"github.com/jwebster45206/world-graph/pkg/graph"
	"github.com/jwebster45206/world-graph/pkg/logic"
)

func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	data, err := storage.LoadWorldDataDir(cfg.DataDir, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load world data: %v\n", err)
		os.Exit(1)
	}

	opts, err := loadOptions(cfg.OptionsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load options: %v\n", err)
		os.Exit(1)
	}

	world, err := graph.BuildWorld(data, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build world: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(NewExplorerUI(world, data, opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}

// loadOptions reads the player option file, or falls back to a debug
// default with every randomization enabled so all gates are live.
func loadOptions(path string) (*logic.Options, error) {
	opts := &logic.Options{
		RandomizeCustomers:            true,
		RandomizeDealers:              true,
		RandomizeSuppliers:            false,
		RandomizeLevelUnlocks:         true,
		RandomizeCartelInfluence:      true,
		RandomizeBusinessProperties:   true,
		RandomizeDrugMakingProperties: true,
		Goal:                          logic.GoalBoth,
	}

	if path != "" {
		file, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read options file: %w", err)
		}
		if err := json.Unmarshal(file, opts); err != nil {
			return nil, fmt.Errorf("failed to parse options file: %w", err)
		}
	}

	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}
