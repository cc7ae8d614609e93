package models

import "time"

// SnapshotVersion is the current snapshot schema version.
const SnapshotVersion = 1

// SnapshotMeta carries metadata for a serialized snapshot, so the format can
// be migrated if the schema ever changes.
type SnapshotMeta struct {
	Version   int       `json:"version"`
	Timestamp time.Time `json:"timestamp"`
}

// SnapshotAccount is the serialized form of one account, data only.
type SnapshotAccount struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	PIN          string        `json:"pin"`
	Type         AccountType   `json:"type"`
	Transactions []Transaction `json:"transactions"`
}

// Snapshot is the full serialized registry state: every account with its
// complete transaction history, in registry insertion order.
type Snapshot struct {
	Meta     SnapshotMeta      `json:"_meta"`
	Accounts []SnapshotAccount `json:"accounts"`
}
