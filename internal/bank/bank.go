package bank

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"bankledger/internal/models"
)

// Bank is the registry owning all accounts. It guarantees id and name
// uniqueness, serves concurrent lookups, and is the one place two accounts
// are mutated together (transfer). Account ids are collision-checked UUIDs,
// so uniqueness is structural, not probabilistic.
type Bank struct {
	mu     sync.RWMutex
	byID   map[string]*Account
	byName map[string]*Account
	order  []string // account ids in insertion order, for deterministic listing
}

// New returns an empty registry.
func New() *Bank {
	return &Bank{
		byID:   make(map[string]*Account),
		byName: make(map[string]*Account),
	}
}

// CreateAccount validates the inputs, enforces name uniqueness, and stores a
// new account under a fresh unique id. A positive opening amount is recorded
// as an "Initial balance" deposit; a zero opening creates an empty history.
// Name matching is case-sensitive exact match.
func (b *Bank) CreateAccount(name, pin string, accountType models.AccountType, opening decimal.Decimal) (*Account, error) {
	if opening.IsNegative() {
		return nil, fmt.Errorf("%w: opening amount must not be negative", ErrInvalidArgument)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.byName[name]; exists {
		return nil, ErrDuplicate
	}

	account, err := newAccount(b.newIDLocked(), name, pin, accountType)
	if err != nil {
		return nil, err
	}
	if opening.IsPositive() {
		if _, err := account.creditLocked(models.KindDeposit, opening, time.Time{}, "Initial balance"); err != nil {
			return nil, err
		}
	}

	b.byID[account.id] = account
	b.byName[account.name] = account
	b.order = append(b.order, account.id)
	return account, nil
}

// newIDLocked generates a UUID that is not already in use. The collision
// check keeps id uniqueness structural rather than probabilistic.
func (b *Bank) newIDLocked() string {
	for {
		id := uuid.NewString()
		if _, taken := b.byID[id]; !taken {
			return id
		}
	}
}

// FindByID returns the account with the given id.
func (b *Bank) FindByID(id string) (*Account, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	account, ok := b.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return account, nil
}

// FindByName returns the account with the given owner name. The match is
// case-sensitive and exact.
func (b *Bank) FindByName(name string) (*Account, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	account, ok := b.byName[name]
	if !ok {
		return nil, ErrNotFound
	}
	return account, nil
}

// ListAccounts returns all accounts in insertion order.
func (b *Bank) ListAccounts() []*Account {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]*Account, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, b.byID[id])
	}
	return out
}

// Transfer moves amount from one account to the other as a single logical
// operation: a Transfer-typed debit on the source and a Transfer-typed
// credit on the destination, sharing one timestamp, applied both or neither.
// Both account locks are held for the duration, acquired in id order so two
// opposite transfers cannot deadlock.
func (b *Bank) Transfer(fromID, toID string, amount decimal.Decimal, pin string) (debit, credit models.Transaction, err error) {
	if fromID == toID {
		return models.Transaction{}, models.Transaction{}, ErrSameAccount
	}

	b.mu.RLock()
	from, okFrom := b.byID[fromID]
	to, okTo := b.byID[toID]
	b.mu.RUnlock()
	if !okFrom || !okTo {
		return models.Transaction{}, models.Transaction{}, ErrNotFound
	}

	first, second := from, to
	if second.id < first.id {
		first, second = second, first
	}
	first.mu.Lock()
	defer first.mu.Unlock()
	second.mu.Lock()
	defer second.mu.Unlock()

	if !from.verifyPinLocked(pin) {
		return models.Transaction{}, models.Transaction{}, ErrUnauthorized
	}

	now := time.Now()
	debit, err = NewTransaction(models.KindTransfer, models.Debit, amount, now, "")
	if err != nil {
		return models.Transaction{}, models.Transaction{}, err
	}
	credit, err = NewTransaction(models.KindTransfer, models.Credit, amount, now, "")
	if err != nil {
		return models.Transaction{}, models.Transaction{}, err
	}
	if err = from.checkDebitLocked(amount); err != nil {
		return models.Transaction{}, models.Transaction{}, err
	}

	from.transactions = append(from.transactions, debit)
	to.transactions = append(to.transactions, credit)
	return debit, credit, nil
}

// Snapshot serializes the full registry state in insertion order.
func (b *Bank) Snapshot() models.Snapshot {
	b.mu.RLock()
	accounts := make([]*Account, 0, len(b.order))
	for _, id := range b.order {
		accounts = append(accounts, b.byID[id])
	}
	b.mu.RUnlock()

	snap := models.Snapshot{
		Meta: models.SnapshotMeta{
			Version:   models.SnapshotVersion,
			Timestamp: time.Now(),
		},
		Accounts: make([]models.SnapshotAccount, 0, len(accounts)),
	}
	for _, account := range accounts {
		snap.Accounts = append(snap.Accounts, account.snapshot())
	}
	return snap
}

// Restore replaces the registry state with the snapshot's. The blob is
// validated in full before any state is touched; a corrupt snapshot leaves
// the registry exactly as it was.
func (b *Bank) Restore(snap models.Snapshot) error {
	if snap.Meta.Version != models.SnapshotVersion {
		return fmt.Errorf("%w: unsupported version %d", ErrCorruptSnapshot, snap.Meta.Version)
	}

	byID := make(map[string]*Account, len(snap.Accounts))
	byName := make(map[string]*Account, len(snap.Accounts))
	order := make([]string, 0, len(snap.Accounts))

	for _, sa := range snap.Accounts {
		if sa.ID == "" {
			return fmt.Errorf("%w: account without id", ErrCorruptSnapshot)
		}
		account, err := newAccount(sa.ID, sa.Name, sa.PIN, sa.Type)
		if err != nil {
			return fmt.Errorf("%w: account %s: %v", ErrCorruptSnapshot, sa.ID, err)
		}
		for _, tx := range sa.Transactions {
			if !models.KnownKind(tx.Kind) || !tx.Amount.IsPositive() {
				return fmt.Errorf("%w: account %s has an invalid transaction", ErrCorruptSnapshot, sa.ID)
			}
		}
		account.transactions = append(account.transactions, sa.Transactions...)

		if _, dup := byID[account.id]; dup {
			return fmt.Errorf("%w: duplicate account id %s", ErrCorruptSnapshot, account.id)
		}
		if _, dup := byName[account.name]; dup {
			return fmt.Errorf("%w: duplicate account name %q", ErrCorruptSnapshot, account.name)
		}
		byID[account.id] = account
		byName[account.name] = account
		order = append(order, account.id)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.byID = byID
	b.byName = byName
	b.order = order
	return nil
}
