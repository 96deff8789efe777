package storage

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jwebster45206/world-graph/pkg/schema"
)

// World data operations (filesystem-backed)

func (r *RedisStorage) LoadWorldData(ctx context.Context) (*schema.WorldData, error) {
	return LoadWorldDataDir(r.dataDir, r.logger)
}

// LoadWorldDataDir reads and parses the four world tables from a data
// directory. Tools that have no Redis connection (validate, explorer) call
// this directly.
func LoadWorldDataDir(dataDir string, logger *slog.Logger) (*schema.WorldData, error) {
	items, err := readTable(dataDir, "items.json", logger, schema.ParseItems)
	if err != nil {
		return nil, err
	}

	locations, err := readTable(dataDir, "locations.json", logger, schema.ParseLocations)
	if err != nil {
		return nil, err
	}

	regions, err := readTable(dataDir, "regions.json", logger, schema.ParseRegions)
	if err != nil {
		return nil, err
	}

	victory, err := readTable(dataDir, "victory.json", logger, schema.ParseVictory)
	if err != nil {
		return nil, err
	}

	data := &schema.WorldData{
		Items:     items,
		Locations: locations,
		Regions:   regions,
		Victory:   victory,
	}

	if err := data.Validate(); err != nil {
		logger.Error("World data failed validation", "dataDir", dataDir, "error", err)
		return nil, fmt.Errorf("invalid world data: %w", err)
	}

	logger.Debug("World data loaded",
		"dataDir", dataDir,
		"items", len(items),
		"locations", len(locations),
		"regions", len(regions))
	return data, nil
}

func readTable[T any](dataDir, filename string, logger *slog.Logger, parse func([]byte) (T, error)) (T, error) {
	var zero T

	path := filepath.Join(dataDir, filename)
	file, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Error("World data file not found", "path", path)
			return zero, fmt.Errorf("world data file not found: %s", filename)
		}
		return zero, fmt.Errorf("failed to read %s: %w", filename, err)
	}

	// Data files exported from the game carry a UTF-8 BOM
	file = bytes.TrimPrefix(file, []byte{0xEF, 0xBB, 0xBF})

	table, err := parse(file)
	if err != nil {
		logger.Error("Failed to parse world data file", "path", path, "error", err)
		return zero, fmt.Errorf("%s: %w", filename, err)
	}
	return table, nil
}
