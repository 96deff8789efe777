package storage

import (
	"context"

	"github.com/google/uuid"
	"github.com/jwebster45206/world-graph/pkg/schema"
	"github.com/jwebster45206/world-graph/pkg/state"
)

// Storage defines persistence for the world generator: the static world
// tables (filesystem, loaded once per generation) and collection sessions
// (Redis-backed, mutable between queries).
type Storage interface {
	// Ping tests the backing connection
	Ping(ctx context.Context) error

	// Close closes the backing connection
	Close() error

	// LoadWorldData reads the four declarative tables from the data
	// directory. The result is read-only for the rest of generation.
	LoadWorldData(ctx context.Context) (*schema.WorldData, error)

	// SaveCollection saves a collection session under its UUID
	SaveCollection(ctx context.Context, id uuid.UUID, c *state.Collection) error

	// LoadCollection retrieves a collection session by UUID.
	// Returns nil if the session doesn't exist.
	LoadCollection(ctx context.Context, id uuid.UUID) (*state.Collection, error)

	// DeleteCollection removes a collection session by UUID
	DeleteCollection(ctx context.Context, id uuid.UUID) error
}
