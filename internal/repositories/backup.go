package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"bankledger/internal/logger"
	"bankledger/internal/models"
)

// EnsureSchema creates the backups table if it does not exist yet. The demo
// owns its schema; there is no external migration step.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	const query = `
		CREATE TABLE IF NOT EXISTS backups (
			backup_id  UUID PRIMARY KEY,
			name       TEXT UNIQUE NOT NULL,
			data       BYTEA NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	_, err := db.ExecContext(ctx, query)
	return err
}

// BackupWriterRepository handles backup write operations
type BackupWriterRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewBackupWriterRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *BackupWriterRepository {
	return &BackupWriterRepository{db: db, txGetter: txGetter}
}

// Save inserts a new backup row holding the serialized snapshot blob.
func (r *BackupWriterRepository) Save(ctx context.Context, name string, data []byte) error {
	query := `
		INSERT INTO backups (backup_id, name, data, created_at)
		VALUES ($1, $2, $3, NOW())
	`

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	_, err := executor.ExecContext(ctx, query, uuid.New(), name, data)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{name, len(data)},
		"error", err,
	)

	return err
}

// BackupReaderRepository handles backup read operations
type BackupReaderRepository struct {
	db *sqlx.DB
}

func NewBackupReaderRepository(db *sqlx.DB) *BackupReaderRepository {
	return &BackupReaderRepository{db: db}
}

// Get returns the snapshot blob stored under the given backup name.
// Returns sql.ErrNoRows when no such backup exists.
func (r *BackupReaderRepository) Get(ctx context.Context, name string) ([]byte, error) {
	const query = `
		SELECT data
		FROM backups
		WHERE name = $1
	`

	var data []byte
	err := r.db.GetContext(ctx, &data, query, name)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{name},
		"result_size", len(data),
		"error", err,
	)

	return data, err
}

// GetLatest returns the name and blob of the most recent backup.
func (r *BackupReaderRepository) GetLatest(ctx context.Context) (string, []byte, error) {
	const query = `
		SELECT name, data
		FROM backups
		ORDER BY created_at DESC
		LIMIT 1
	`

	var row struct {
		Name string `db:"name"`
		Data []byte `db:"data"`
	}
	err := r.db.GetContext(ctx, &row, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", row.Name,
		"error", err,
	)

	return row.Name, row.Data, err
}

// List returns all backups, newest first, without their blobs.
func (r *BackupReaderRepository) List(ctx context.Context) ([]models.BackupDB, error) {
	const query = `
		SELECT backup_id, name, created_at
		FROM backups
		ORDER BY created_at DESC
	`

	var backups []models.BackupDB
	err := r.db.SelectContext(ctx, &backups, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(backups),
		"error", err,
	)

	return backups, err
}
