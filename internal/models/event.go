package models

import "github.com/shopspring/decimal"

// LedgerEvent is the message published to Kafka for every committed ledger
// entry. Publishing is best-effort and never blocks the operation itself.
type LedgerEvent struct {
	TransactionID string          `json:"transaction_id"` // Identifier of the ledger entry
	AccountID     string          `json:"account_id"`     // Account the entry was appended to
	Kind          TransactionKind `json:"kind"`           // Entry classification
	Direction     Direction       `json:"direction"`      // credit or debit
	Amount        decimal.Decimal `json:"amount"`         // Positive amount of the entry
	Timestamp     int64           `json:"timestamp"`      // Unix timestamp (seconds) of the entry
}
