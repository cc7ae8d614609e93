package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"bankledger/internal/bank"
	"bankledger/internal/logger"
	"bankledger/internal/models"
)

var (
	// ErrBackupNotFound is returned when a named backup does not exist.
	ErrBackupNotFound = errors.New("backup not found")
)

// Snapshotter is the registry's full-state serialization hook.
type Snapshotter interface {
	Snapshot() models.Snapshot
	Restore(snap models.Snapshot) error
}

// BackupWriter persists backup blobs.
type BackupWriter interface {
	Save(ctx context.Context, name string, data []byte) error
}

// BackupReader reads persisted backups.
type BackupReader interface {
	Get(ctx context.Context, name string) ([]byte, error)
	GetLatest(ctx context.Context) (string, []byte, error)
	List(ctx context.Context) ([]models.BackupDB, error)
}

// SnapshotCache caches the most recent backup blob.
type SnapshotCache interface {
	GetLatest(ctx context.Context) (string, []byte, error)
	SetLatest(ctx context.Context, name string, data []byte) error
}

// BackupService snapshots the registry into the backup store and restores it
// back. The latest blob is kept in the cache; restores fall back to the
// database on a miss and write the blob back through.
type BackupService struct {
	registry Snapshotter
	writer   BackupWriter
	reader   BackupReader
	cache    SnapshotCache
}

// NewBackupService creates a new BackupService.
func NewBackupService(registry Snapshotter, writer BackupWriter, reader BackupReader, cache SnapshotCache) *BackupService {
	return &BackupService{
		registry: registry,
		writer:   writer,
		reader:   reader,
		cache:    cache,
	}
}

// CreateBackup snapshots the registry, persists the blob under a timestamped
// name, and returns that name.
func (s *BackupService) CreateBackup(ctx context.Context) (string, error) {
	snap := s.registry.Snapshot()
	data, err := json.Marshal(snap)
	if err != nil {
		logger.Log.Errorw("failed to marshal snapshot", "error", err)
		return "", err
	}

	name := fmt.Sprintf("backup_%s", time.Now().UTC().Format("20060102T150405Z"))
	if err := s.writer.Save(ctx, name, data); err != nil {
		logger.Log.Errorw("failed to save backup", "name", name, "error", err)
		return "", err
	}

	if s.cache != nil {
		if err := s.cache.SetLatest(ctx, name, data); err != nil {
			logger.Log.Errorw("failed to cache snapshot", "name", name, "error", err)
		}
	}

	logger.Log.Infow("backup created", "name", name, "accounts", len(snap.Accounts), "size", len(data))
	return name, nil
}

// ListBackups returns all persisted backups, newest first.
func (s *BackupService) ListBackups(ctx context.Context) ([]models.BackupDB, error) {
	backups, err := s.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list backups", "error", err)
		return nil, err
	}
	return backups, nil
}

// RestoreBackup replaces the registry state with the named backup.
func (s *BackupService) RestoreBackup(ctx context.Context, name string) error {
	data, err := s.reader.Get(ctx, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrBackupNotFound
		}
		logger.Log.Errorw("failed to read backup", "name", name, "error", err)
		return err
	}
	return s.restoreBlob(name, data)
}

// RestoreLatest replaces the registry state with the most recent backup,
// serving the blob from the cache when possible.
func (s *BackupService) RestoreLatest(ctx context.Context) error {
	if s.cache != nil {
		if name, data, err := s.cache.GetLatest(ctx); err == nil {
			return s.restoreBlob(name, data)
		}
	}

	name, data, err := s.reader.GetLatest(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrBackupNotFound
		}
		logger.Log.Errorw("failed to read latest backup", "error", err)
		return err
	}

	if s.cache != nil {
		if err := s.cache.SetLatest(ctx, name, data); err != nil {
			logger.Log.Errorw("failed to cache snapshot", "name", name, "error", err)
		}
	}

	return s.restoreBlob(name, data)
}

// restoreBlob decodes and applies one snapshot blob. The registry validates
// the snapshot in full before replacing any state.
func (s *BackupService) restoreBlob(name string, data []byte) error {
	var snap models.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		logger.Log.Errorw("backup blob is not valid JSON", "name", name, "error", err)
		return fmt.Errorf("%w: %v", bank.ErrCorruptSnapshot, err)
	}
	if err := s.registry.Restore(snap); err != nil {
		logger.Log.Errorw("failed to restore snapshot", "name", name, "error", err)
		return err
	}
	logger.Log.Infow("registry restored from backup", "name", name, "accounts", len(snap.Accounts))
	return nil
}
