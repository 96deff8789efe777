package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jwebster45206/world-graph/pkg/state"
	"github.com/redis/go-redis/v9"
)

// Collection session operations (Redis-backed)

func (r *RedisStorage) SaveCollection(ctx context.Context, id uuid.UUID, c *state.Collection) error {
	// Update the UpdatedAt timestamp
	c.UpdatedAt = time.Now()

	data, err := json.Marshal(c)
	if err != nil {
		r.logger.Error("Failed to marshal collection", "uuid", id, "error", err)
		return fmt.Errorf("failed to marshal collection: %w", err)
	}

	// Use collection: prefix for collection keys
	key := "collection:" + id.String()
	cmd := r.client.Set(ctx, key, string(data), time.Hour)
	if err := cmd.Err(); err != nil {
		r.logger.Error("Failed to save collection", "uuid", id, "error", err)
		return fmt.Errorf("failed to save collection: %w", err)
	}

	return nil
}

func (r *RedisStorage) LoadCollection(ctx context.Context, id uuid.UUID) (*state.Collection, error) {
	key := "collection:" + id.String()
	cmd := r.client.Get(ctx, key)
	if err := cmd.Err(); err != nil {
		if err == redis.Nil {
			r.logger.Warn("Collection not found", "uuid", id)
			return nil, nil // Return nil for not found
		}
		r.logger.Error("Failed to load collection", "uuid", id, "error", err)
		return nil, fmt.Errorf("failed to load collection: %w", err)
	}

	data := cmd.Val()
	if data == "" {
		r.logger.Warn("Collection not found", "uuid", id)
		return nil, nil
	}

	var c state.Collection
	if err := json.Unmarshal([]byte(data), &c); err != nil {
		r.logger.Error("Failed to unmarshal collection", "uuid", id, "error", err)
		return nil, fmt.Errorf("failed to unmarshal collection: %w", err)
	}

	return &c, nil
}

func (r *RedisStorage) DeleteCollection(ctx context.Context, id uuid.UUID) error {
	key := "collection:" + id.String()
	cmd := r.client.Del(ctx, key)
	if err := cmd.Err(); err != nil {
		r.logger.Error("Failed to delete collection", "uuid", id, "error", err)
		return fmt.Errorf("failed to delete collection: %w", err)
	}
	return nil
}
