package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestBackupWriterRepository_Save(t *testing.T) {
	ctx := context.Background()
	db, mock := newMockDB(t)

	mock.ExpectExec("INSERT INTO backups").
		WithArgs(sqlmock.AnyArg(), "backup_20250101T000000Z", []byte(`{"accounts":[]}`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewBackupWriterRepository(db, nil)
	err := repo.Save(ctx, "backup_20250101T000000Z", []byte(`{"accounts":[]}`))

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBackupWriterRepository_SaveUsesContextTx(t *testing.T) {
	ctx := context.Background()
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO backups").
		WithArgs(sqlmock.AnyArg(), "b1", []byte("blob")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Beginx()
	assert.NoError(t, err)

	repo := NewBackupWriterRepository(db, func(context.Context) *sqlx.Tx { return tx })
	assert.NoError(t, repo.Save(ctx, "b1", []byte("blob")))
	assert.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBackupReaderRepository_Get(t *testing.T) {
	ctx := context.Background()
	db, mock := newMockDB(t)

	mock.ExpectQuery("SELECT data").
		WithArgs("b1").
		WillReturnRows(sqlmock.NewRows([]string{"data"}).AddRow([]byte("blob")))

	repo := NewBackupReaderRepository(db)
	data, err := repo.Get(ctx, "b1")

	assert.NoError(t, err)
	assert.Equal(t, []byte("blob"), data)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBackupReaderRepository_GetNotFound(t *testing.T) {
	ctx := context.Background()
	db, mock := newMockDB(t)

	mock.ExpectQuery("SELECT data").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	repo := NewBackupReaderRepository(db)
	_, err := repo.Get(ctx, "missing")

	assert.True(t, errors.Is(err, sql.ErrNoRows))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBackupReaderRepository_GetLatest(t *testing.T) {
	ctx := context.Background()
	db, mock := newMockDB(t)

	mock.ExpectQuery("SELECT name, data").
		WillReturnRows(sqlmock.NewRows([]string{"name", "data"}).AddRow("b2", []byte("latest")))

	repo := NewBackupReaderRepository(db)
	name, data, err := repo.GetLatest(ctx)

	assert.NoError(t, err)
	assert.Equal(t, "b2", name)
	assert.Equal(t, []byte("latest"), data)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBackupReaderRepository_List(t *testing.T) {
	ctx := context.Background()
	db, mock := newMockDB(t)

	now := time.Now()
	mock.ExpectQuery("SELECT backup_id, name, created_at").
		WillReturnRows(sqlmock.NewRows([]string{"backup_id", "name", "created_at"}).
			AddRow(uuid.New(), "b2", now).
			AddRow(uuid.New(), "b1", now.Add(-time.Hour)))

	repo := NewBackupReaderRepository(db)
	backups, err := repo.List(ctx)

	assert.NoError(t, err)
	assert.Len(t, backups, 2)
	assert.Equal(t, "b2", backups[0].Name)
	assert.Equal(t, "b1", backups[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
