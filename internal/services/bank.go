package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	"bankledger/internal/bank"
	"bankledger/internal/logger"
	"bankledger/internal/models"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// BankService is the operation facade over the account registry. Every
// committed ledger entry is additionally published to Kafka, best-effort.
type BankService struct {
	registry    *bank.Bank
	kafkaWriter KafkaWriter
}

// NewBankService creates a new BankService.
func NewBankService(registry *bank.Bank, kafkaWriter KafkaWriter) *BankService {
	return &BankService{
		registry:    registry,
		kafkaWriter: kafkaWriter,
	}
}

// publishLedgerEvent publishes a committed ledger entry to Kafka.
func (s *BankService) publishLedgerEvent(ctx context.Context, accountID string, tx models.Transaction) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "transaction_id", tx.ID)
		return
	}

	event := models.LedgerEvent{
		TransactionID: tx.ID,
		AccountID:     accountID,
		Kind:          tx.Kind,
		Direction:     tx.Direction,
		Amount:        tx.Amount,
		Timestamp:     tx.Timestamp.Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal ledger event", "transaction_id", tx.ID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(accountID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish ledger event", "transaction_id", tx.ID, "error", err)
	} else {
		logger.Log.Infow("Ledger event published", "transaction_id", tx.ID, "account_id", accountID, "kind", tx.Kind)
	}
}

// CreateAccount registers a new account, optionally seeded with an opening
// deposit recorded as "Initial balance".
func (s *BankService) CreateAccount(ctx context.Context, name, pin string, accountType models.AccountType, opening decimal.Decimal) (*bank.Account, error) {
	account, err := s.registry.CreateAccount(name, pin, accountType, opening)
	if err != nil {
		logger.Log.Errorw("failed to create account", "name", name, "type", accountType, "error", err)
		return nil, err
	}
	logger.Log.Infow("account created", "account_id", account.ID(), "type", accountType)
	return account, nil
}

// GetAccount returns the account with the given id.
func (s *BankService) GetAccount(ctx context.Context, id string) (*bank.Account, error) {
	return s.registry.FindByID(id)
}

// FindAccountByName returns the account with the given owner name
// (case-sensitive exact match).
func (s *BankService) FindAccountByName(ctx context.Context, name string) (*bank.Account, error) {
	return s.registry.FindByName(name)
}

// ListAccounts returns all accounts in creation order.
func (s *BankService) ListAccounts(ctx context.Context) []*bank.Account {
	return s.registry.ListAccounts()
}

// VerifyPin reports whether pin matches the account's PIN.
func (s *BankService) VerifyPin(ctx context.Context, accountID, pin string) (bool, error) {
	account, err := s.registry.FindByID(accountID)
	if err != nil {
		return false, err
	}
	return account.VerifyPin(pin), nil
}

// ChangePin replaces the account's PIN after verifying the current one.
func (s *BankService) ChangePin(ctx context.Context, accountID, currentPin, newPin string) error {
	account, err := s.registry.FindByID(accountID)
	if err != nil {
		return err
	}
	if err := account.ChangePin(currentPin, newPin); err != nil {
		logger.Log.Warnw("pin change rejected", "account_id", accountID, "error", err)
		return err
	}
	logger.Log.Infow("pin changed", "account_id", accountID)
	return nil
}

// Deposit adds funds to the account and returns the new balance.
func (s *BankService) Deposit(ctx context.Context, accountID string, amount decimal.Decimal, pin string) (decimal.Decimal, error) {
	account, err := s.registry.FindByID(accountID)
	if err != nil {
		return decimal.Zero, err
	}
	tx, err := account.Deposit(amount, pin)
	if err != nil {
		logger.Log.Warnw("deposit rejected", "account_id", accountID, "amount", amount, "error", err)
		return decimal.Zero, err
	}
	s.publishLedgerEvent(ctx, accountID, tx)
	return account.Balance(), nil
}

// Withdraw removes funds from the account and returns the new balance.
func (s *BankService) Withdraw(ctx context.Context, accountID string, amount decimal.Decimal, pin string) (decimal.Decimal, error) {
	account, err := s.registry.FindByID(accountID)
	if err != nil {
		return decimal.Zero, err
	}
	tx, err := account.Withdraw(amount, pin)
	if err != nil {
		logger.Log.Warnw("withdrawal rejected", "account_id", accountID, "amount", amount, "error", err)
		return decimal.Zero, err
	}
	s.publishLedgerEvent(ctx, accountID, tx)
	return account.Balance(), nil
}

// Transfer moves funds between two accounts atomically and returns the
// source account's new balance.
func (s *BankService) Transfer(ctx context.Context, fromID, toID string, amount decimal.Decimal, pin string) (decimal.Decimal, error) {
	debit, credit, err := s.registry.Transfer(fromID, toID, amount, pin)
	if err != nil {
		logger.Log.Warnw("transfer rejected", "from", fromID, "to", toID, "amount", amount, "error", err)
		return decimal.Zero, err
	}
	s.publishLedgerEvent(ctx, fromID, debit)
	s.publishLedgerEvent(ctx, toID, credit)

	from, err := s.registry.FindByID(fromID)
	if err != nil {
		return decimal.Zero, err
	}
	return from.Balance(), nil
}

// ConvertAccountType switches the account to a new type when eligible.
func (s *BankService) ConvertAccountType(ctx context.Context, accountID string, newType models.AccountType, pin string) error {
	account, err := s.registry.FindByID(accountID)
	if err != nil {
		return err
	}
	if err := account.ConvertType(newType, pin); err != nil {
		logger.Log.Warnw("type conversion rejected", "account_id", accountID, "new_type", newType, "error", err)
		return err
	}
	logger.Log.Infow("account type converted", "account_id", accountID, "new_type", newType)
	return nil
}

// CalculateInterest returns one month of interest on the current balance
// without applying it.
func (s *BankService) CalculateInterest(ctx context.Context, accountID string) (decimal.Decimal, error) {
	account, err := s.registry.FindByID(accountID)
	if err != nil {
		return decimal.Zero, err
	}
	return account.CalculateInterest(), nil
}

// ApplyInterest accrues one month of interest onto the account and returns
// the applied amount. bank.ErrNoInterestDue signals the no-op case.
func (s *BankService) ApplyInterest(ctx context.Context, accountID, pin string) (decimal.Decimal, error) {
	account, err := s.registry.FindByID(accountID)
	if err != nil {
		return decimal.Zero, err
	}
	tx, err := account.ApplyInterest(pin)
	if err != nil {
		return decimal.Zero, err
	}
	s.publishLedgerEvent(ctx, accountID, tx)
	return tx.Amount, nil
}

// GetHistory returns the account's transactions, newest first, filtered by
// the optional inclusive bounds.
func (s *BankService) GetHistory(ctx context.Context, accountID string, start, end *time.Time) ([]models.Transaction, error) {
	account, err := s.registry.FindByID(accountID)
	if err != nil {
		return nil, err
	}
	return account.History(start, end), nil
}
