// Package bank holds the core ledger: accounts with PIN-gated,
// policy-checked mutations, and the registry that owns them. The balance of
// an account is never stored; it is always the signed sum of the account's
// transaction history, which makes drift between the two impossible.
package bank

import (
	"crypto/subtle"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"bankledger/internal/models"
)

// Account is the ledger aggregate for one customer. All mutating operations
// verify the PIN first and apply either fully or not at all; the internal
// mutex serializes every read-validate-append sequence so concurrent calls
// cannot race the policy checks.
type Account struct {
	mu           sync.RWMutex
	id           string
	name         string
	pin          string
	accountType  models.AccountType
	transactions []models.Transaction
}

// newAccount validates the inputs and builds an account with an empty
// history. Only the registry constructs accounts.
func newAccount(id, name, pin string, accountType models.AccountType) (*Account, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name must not be empty", ErrInvalidArgument)
	}
	if !validPIN(pin) {
		return nil, fmt.Errorf("%w: pin must be exactly 4 digits", ErrInvalidArgument)
	}
	if _, ok := models.PolicyFor(accountType); !ok {
		return nil, fmt.Errorf("%w: unknown account type %q", ErrInvalidArgument, accountType)
	}
	return &Account{
		id:          id,
		name:        name,
		pin:         pin,
		accountType: accountType,
	}, nil
}

// validPIN reports whether pin is exactly 4 ASCII digits.
func validPIN(pin string) bool {
	if len(pin) != 4 {
		return false
	}
	for i := 0; i < len(pin); i++ {
		if pin[i] < '0' || pin[i] > '9' {
			return false
		}
	}
	return true
}

// ID returns the stable account identifier.
func (a *Account) ID() string { return a.id }

// Name returns the owner display name.
func (a *Account) Name() string { return a.name }

// Type returns the current account type.
func (a *Account) Type() models.AccountType {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.accountType
}

// Policy returns the policy tuple derived from the current account type.
func (a *Account) Policy() models.Policy {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.policyLocked()
}

// Balance returns the signed sum of all transaction effects.
func (a *Account) Balance() decimal.Decimal {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.balanceLocked()
}

// VerifyPin reports whether pin matches the account's PIN. The comparison is
// constant-time to avoid leaking match length through timing.
func (a *Account) VerifyPin(pin string) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.verifyPinLocked(pin)
}

// ChangePin replaces the PIN. Fails without mutation when the current PIN is
// wrong or the new PIN is not 4 digits.
func (a *Account) ChangePin(currentPin, newPin string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.verifyPinLocked(currentPin) {
		return ErrUnauthorized
	}
	if !validPIN(newPin) {
		return fmt.Errorf("%w: pin must be exactly 4 digits", ErrInvalidArgument)
	}
	a.pin = newPin
	return nil
}

// Deposit appends a deposit entry for amount. Fails when the PIN is wrong or
// the amount is not positive.
func (a *Account) Deposit(amount decimal.Decimal, pin string) (models.Transaction, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.verifyPinLocked(pin) {
		return models.Transaction{}, ErrUnauthorized
	}
	return a.creditLocked(models.KindDeposit, amount, time.Time{}, "")
}

// Withdraw appends a withdrawal entry for amount. Fails when the PIN is
// wrong, the amount is not positive, or the resulting balance would breach
// the account policy.
func (a *Account) Withdraw(amount decimal.Decimal, pin string) (models.Transaction, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.verifyPinLocked(pin) {
		return models.Transaction{}, ErrUnauthorized
	}
	return a.debitLocked(models.KindWithdrawal, amount, time.Time{}, "")
}

// ConvertType switches the account to newType and swaps in its policy.
// Eligibility is checked against the current balance: Savings has no minimum,
// Cheque requires 500, Business requires 1000. Existing history is untouched.
func (a *Account) ConvertType(newType models.AccountType, pin string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.verifyPinLocked(pin) {
		return ErrUnauthorized
	}
	minimum, ok := models.ConversionMinimum(newType)
	if !ok {
		return fmt.Errorf("%w: unknown account type %q", ErrInvalidArgument, newType)
	}
	if a.balanceLocked().LessThan(minimum) {
		return fmt.Errorf("%w: balance below %s required for %s", ErrPolicyViolation, minimum, newType)
	}
	a.accountType = newType
	return nil
}

// CalculateInterest returns one month of interest on the current balance at
// the annual rate of the account's policy. Zero when the balance is not
// positive. Pure read, no side effect.
func (a *Account) CalculateInterest() decimal.Decimal {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.interestLocked()
}

// ApplyInterest computes one month of interest and, when positive, appends
// an interest entry for it. Returns ErrNoInterestDue as a no-op when there
// is nothing to apply.
func (a *Account) ApplyInterest(pin string) (models.Transaction, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.verifyPinLocked(pin) {
		return models.Transaction{}, ErrUnauthorized
	}
	interest := a.interestLocked()
	if !interest.IsPositive() {
		return models.Transaction{}, ErrNoInterestDue
	}
	return a.creditLocked(models.KindInterest, interest, time.Time{}, "")
}

// History returns the account's transactions, newest first, filtered by the
// optional inclusive bounds. The result is a copy; the internal log is
// append-only and never exposed.
func (a *Account) History(start, end *time.Time) []models.Transaction {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]models.Transaction, 0, len(a.transactions))
	for i := len(a.transactions) - 1; i >= 0; i-- {
		tx := a.transactions[i]
		if start != nil && tx.Timestamp.Before(*start) {
			continue
		}
		if end != nil && tx.Timestamp.After(*end) {
			continue
		}
		out = append(out, tx)
	}
	return out
}

// snapshot returns the serialized form of the account.
func (a *Account) snapshot() models.SnapshotAccount {
	a.mu.RLock()
	defer a.mu.RUnlock()

	txs := make([]models.Transaction, len(a.transactions))
	copy(txs, a.transactions)
	return models.SnapshotAccount{
		ID:           a.id,
		Name:         a.name,
		PIN:          a.pin,
		Type:         a.accountType,
		Transactions: txs,
	}
}

// The locked helpers below assume the caller holds a.mu. The registry uses
// them to compose the two-account transfer under both locks.

func (a *Account) verifyPinLocked(pin string) bool {
	return subtle.ConstantTimeCompare([]byte(a.pin), []byte(pin)) == 1
}

func (a *Account) policyLocked() models.Policy {
	p, _ := models.PolicyFor(a.accountType)
	return p
}

func (a *Account) balanceLocked() decimal.Decimal {
	balance := decimal.Zero
	for _, tx := range a.transactions {
		balance = balance.Add(tx.Effect())
	}
	return balance
}

var twelve = decimal.NewFromInt(12)

func (a *Account) interestLocked() decimal.Decimal {
	balance := a.balanceLocked()
	if !balance.IsPositive() {
		return decimal.Zero
	}
	return balance.Mul(a.policyLocked().InterestRate).Div(twelve)
}

// checkDebitLocked validates that debiting amount keeps the balance at or
// above the overdraft floor, and at or above the minimum balance whenever
// the result stays non-negative. Balances already in the overdraft zone are
// checked only against the overdraft limit.
func (a *Account) checkDebitLocked(amount decimal.Decimal) error {
	policy := a.policyLocked()
	next := a.balanceLocked().Sub(amount)
	if next.LessThan(policy.OverdraftLimit.Neg()) {
		return fmt.Errorf("%w: overdraft limit %s exceeded", ErrPolicyViolation, policy.OverdraftLimit)
	}
	if !next.IsNegative() && next.LessThan(policy.MinimumBalance) {
		return fmt.Errorf("%w: balance would drop below minimum %s", ErrPolicyViolation, policy.MinimumBalance)
	}
	return nil
}

// creditLocked validates and appends a balance-increasing entry.
func (a *Account) creditLocked(kind models.TransactionKind, amount decimal.Decimal, ts time.Time, description string) (models.Transaction, error) {
	tx, err := NewTransaction(kind, models.Credit, amount, ts, description)
	if err != nil {
		return models.Transaction{}, err
	}
	a.transactions = append(a.transactions, tx)
	return tx, nil
}

// debitLocked validates the policy and appends a balance-decreasing entry.
func (a *Account) debitLocked(kind models.TransactionKind, amount decimal.Decimal, ts time.Time, description string) (models.Transaction, error) {
	tx, err := NewTransaction(kind, models.Debit, amount, ts, description)
	if err != nil {
		return models.Transaction{}, err
	}
	if err := a.checkDebitLocked(amount); err != nil {
		return models.Transaction{}, err
	}
	a.transactions = append(a.transactions, tx)
	return tx, nil
}
