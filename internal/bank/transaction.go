package bank

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"bankledger/internal/models"
)

// NewTransaction builds a ledger entry. The amount must be strictly positive;
// the sign of the balance effect is carried by the direction, never by the
// stored amount. A zero timestamp defaults to now, an empty description
// defaults to the canonical phrase for the kind.
func NewTransaction(
	kind models.TransactionKind,
	direction models.Direction,
	amount decimal.Decimal,
	timestamp time.Time,
	description string,
) (models.Transaction, error) {
	if !models.KnownKind(kind) {
		return models.Transaction{}, fmt.Errorf("%w: unknown transaction kind %q", ErrInvalidArgument, kind)
	}
	if direction != models.Credit && direction != models.Debit {
		return models.Transaction{}, fmt.Errorf("%w: unknown direction %q", ErrInvalidArgument, direction)
	}
	if !amount.IsPositive() {
		return models.Transaction{}, fmt.Errorf("%w: amount must be positive", ErrInvalidArgument)
	}
	if timestamp.IsZero() {
		timestamp = time.Now()
	}
	if description == "" {
		description = models.DefaultDescription(kind)
	}

	return models.Transaction{
		ID:          uuid.NewString(),
		Kind:        kind,
		Direction:   direction,
		Amount:      amount,
		Timestamp:   timestamp,
		Description: description,
	}, nil
}
