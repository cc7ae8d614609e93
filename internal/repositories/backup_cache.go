package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"bankledger/internal/logger"
)

// Keys under which the most recent snapshot and its name are cached.
const (
	latestSnapshotKey     = "backup:latest"
	latestSnapshotNameKey = "backup:latest:name"
)

// SnapshotCacheRepository keeps the most recent snapshot blob in Redis so a
// restore-to-latest does not have to touch the database.
type SnapshotCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration for the cached snapshot
}

// NewSnapshotCacheRepository creates a new repository instance with optional TTL
func NewSnapshotCacheRepository(client *redis.Client, expiration time.Duration) *SnapshotCacheRepository {
	return &SnapshotCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetLatest fetches the cached most-recent snapshot and its backup name.
func (r *SnapshotCacheRepository) GetLatest(ctx context.Context) (string, []byte, error) {
	data, err := r.client.Get(ctx, latestSnapshotKey).Bytes()
	if err != nil {
		logger.Log.Infow(
			"key", latestSnapshotKey,
			"error", err,
		)
		if err == redis.Nil {
			return "", nil, fmt.Errorf("no snapshot in cache")
		}
		return "", nil, err
	}

	name, err := r.client.Get(ctx, latestSnapshotNameKey).Result()
	if err != nil {
		logger.Log.Infow(
			"key", latestSnapshotNameKey,
			"error", err,
		)
		if err == redis.Nil {
			return "", nil, fmt.Errorf("no snapshot name in cache")
		}
		return "", nil, err
	}

	logger.Log.Infow(
		"key", latestSnapshotKey,
		"result", name,
		"size", len(data),
		"error", nil,
	)
	return name, data, nil
}

// SetLatest caches the snapshot blob and its backup name.
func (r *SnapshotCacheRepository) SetLatest(ctx context.Context, name string, data []byte) error {
	if err := r.client.Set(ctx, latestSnapshotKey, data, r.exp).Err(); err != nil {
		logger.Log.Infow(
			"key", latestSnapshotKey,
			"error", err,
		)
		return err
	}
	err := r.client.Set(ctx, latestSnapshotNameKey, name, r.exp).Err()

	logger.Log.Infow(
		"key", latestSnapshotKey,
		"value", name,
		"size", len(data),
		"error", err,
	)
	return err
}
