package models

import (
	"time"

	"github.com/google/uuid"
)

// BackupDB represents a backup row in the database.
type BackupDB struct {
	BackupID  uuid.UUID `json:"backup_id" db:"backup_id"`   // Unique backup identifier
	Name      string    `json:"name" db:"name"`             // Caller-facing backup name
	Data      []byte    `json:"-" db:"data"`                // Serialized registry snapshot
	CreatedAt time.Time `json:"created_at" db:"created_at"` // When the backup was taken
}
