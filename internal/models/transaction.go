package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind classifies a ledger entry.
type TransactionKind string

// Supported ledger entry kinds
const (
	KindDeposit           TransactionKind = "Deposit"
	KindWithdrawal        TransactionKind = "Withdrawal"
	KindTransfer          TransactionKind = "Transfer"
	KindInterest          TransactionKind = "Interest"
	KindFee               TransactionKind = "Fee"
	KindAccountTypeChange TransactionKind = "AccountTypeChange"
)

// Direction tells which way a ledger entry moves the balance. Stored amounts
// are always positive, and Transfer entries appear on both sides of a
// transfer, so the kind alone cannot carry the sign.
type Direction string

const (
	Credit Direction = "credit" // increases the balance
	Debit  Direction = "debit"  // decreases the balance
)

// Transaction is one immutable ledger entry. Entries are created once,
// appended to an account history, and never mutated or deleted.
type Transaction struct {
	ID          string          `json:"id"`          // Unique entry identifier
	Kind        TransactionKind `json:"kind"`        // Entry classification
	Direction   Direction       `json:"direction"`   // Sign of the balance effect
	Amount      decimal.Decimal `json:"amount"`      // Positive monetary amount
	Timestamp   time.Time       `json:"timestamp"`   // When the entry was recorded
	Description string          `json:"description"` // Human-readable note, never empty
}

// Effect returns the signed balance contribution of the entry.
func (t Transaction) Effect() decimal.Decimal {
	if t.Direction == Debit {
		return t.Amount.Neg()
	}
	return t.Amount
}

// defaultDescriptions maps each kind to its canonical description.
var defaultDescriptions = map[TransactionKind]string{
	KindDeposit:           "Deposit",
	KindWithdrawal:        "Withdrawal",
	KindTransfer:          "Transfer",
	KindInterest:          "Interest payment",
	KindFee:               "Service fee",
	KindAccountTypeChange: "Account type conversion",
}

// DefaultDescription returns the canonical description for a kind.
func DefaultDescription(kind TransactionKind) string {
	if d, ok := defaultDescriptions[kind]; ok {
		return d
	}
	return "Transaction"
}

// KnownKind reports whether kind is one of the supported entry kinds.
func KnownKind(kind TransactionKind) bool {
	_, ok := defaultDescriptions[kind]
	return ok
}
