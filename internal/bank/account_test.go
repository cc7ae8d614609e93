package bank

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"bankledger/internal/models"
)

func newTestAccount(t *testing.T, accountType models.AccountType, opening int64) *Account {
	t.Helper()
	account, err := newAccount("acc-1", "Alice", "1234", accountType)
	assert.NoError(t, err)
	if opening > 0 {
		_, err := account.Deposit(decimal.NewFromInt(opening), "1234")
		assert.NoError(t, err)
	}
	return account
}

func TestNewAccount_Validation(t *testing.T) {
	tests := []struct {
		name        string
		owner       string
		pin         string
		accountType models.AccountType
	}{
		{"empty name", "", "1234", models.Savings},
		{"blank name", "   ", "1234", models.Savings},
		{"short pin", "Alice", "123", models.Savings},
		{"long pin", "Alice", "12345", models.Savings},
		{"non-digit pin", "Alice", "12a4", models.Savings},
		{"unknown type", "Alice", "1234", models.AccountType("Premium")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newAccount("id", tt.owner, tt.pin, tt.accountType)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestAccount_DepositAndBalance(t *testing.T) {
	account := newTestAccount(t, models.Savings, 0)

	tx, err := account.Deposit(decimal.NewFromInt(100), "1234")
	assert.NoError(t, err)
	assert.Equal(t, models.KindDeposit, tx.Kind)
	assert.Equal(t, models.Credit, tx.Direction)
	assert.NotEmpty(t, tx.ID)
	assert.Equal(t, "Deposit", tx.Description)

	_, err = account.Deposit(decimal.NewFromInt(50), "1234")
	assert.NoError(t, err)

	assert.True(t, account.Balance().Equal(decimal.NewFromInt(150)))
}

func TestAccount_Deposit_WrongPin(t *testing.T) {
	account := newTestAccount(t, models.Savings, 0)

	_, err := account.Deposit(decimal.NewFromInt(100), "0000")

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, account.History(nil, nil))
}

func TestAccount_Deposit_NonPositiveAmount(t *testing.T) {
	account := newTestAccount(t, models.Savings, 0)

	_, err := account.Deposit(decimal.Zero, "1234")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = account.Deposit(decimal.NewFromInt(-5), "1234")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestAccount_Withdraw_Savings(t *testing.T) {
	// Savings: no overdraft, no minimum balance. Draining to exactly zero is
	// allowed, one cent past it is not.
	account := newTestAccount(t, models.Savings, 100)

	_, err := account.Withdraw(decimal.NewFromInt(101), "1234")
	assert.ErrorIs(t, err, ErrPolicyViolation)
	assert.True(t, account.Balance().Equal(decimal.NewFromInt(100)))

	tx, err := account.Withdraw(decimal.NewFromInt(100), "1234")
	assert.NoError(t, err)
	assert.Equal(t, models.Debit, tx.Direction)
	assert.True(t, account.Balance().IsZero())
}

func TestAccount_Withdraw_ChequeMinimumBalance(t *testing.T) {
	// Cheque: overdraft 200, minimum 100. A non-negative result below the
	// minimum is rejected; landing exactly on the minimum is allowed.
	account := newTestAccount(t, models.Cheque, 500)

	_, err := account.Withdraw(decimal.NewFromInt(450), "1234")
	assert.ErrorIs(t, err, ErrPolicyViolation)

	_, err = account.Withdraw(decimal.NewFromInt(400), "1234")
	assert.NoError(t, err)
	assert.True(t, account.Balance().Equal(decimal.NewFromInt(100)))
}

func TestAccount_Withdraw_ChequeOverdraft(t *testing.T) {
	// A withdrawal crossing into overdraft skips the minimum-balance rule and
	// is bounded only by the overdraft limit.
	account := newTestAccount(t, models.Cheque, 500)

	_, err := account.Withdraw(decimal.NewFromInt(700), "1234")
	assert.NoError(t, err)
	assert.True(t, account.Balance().Equal(decimal.NewFromInt(-200)))

	_, err = account.Withdraw(decimal.NewFromInt(1), "1234")
	assert.ErrorIs(t, err, ErrPolicyViolation)
	assert.True(t, account.Balance().Equal(decimal.NewFromInt(-200)))
}

func TestAccount_Withdraw_BusinessPolicy(t *testing.T) {
	// Business: overdraft 500, minimum 500.
	account := newTestAccount(t, models.Business, 1000)

	_, err := account.Withdraw(decimal.NewFromInt(600), "1234")
	assert.ErrorIs(t, err, ErrPolicyViolation)

	_, err = account.Withdraw(decimal.NewFromInt(500), "1234")
	assert.NoError(t, err)
	assert.True(t, account.Balance().Equal(decimal.NewFromInt(500)))

	_, err = account.Withdraw(decimal.NewFromInt(1000), "1234")
	assert.NoError(t, err)
	assert.True(t, account.Balance().Equal(decimal.NewFromInt(-500)))
}

func TestAccount_Withdraw_WrongPin(t *testing.T) {
	account := newTestAccount(t, models.Savings, 100)

	_, err := account.Withdraw(decimal.NewFromInt(50), "0000")

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.True(t, account.Balance().Equal(decimal.NewFromInt(100)))
}

func TestAccount_ChangePin(t *testing.T) {
	account := newTestAccount(t, models.Savings, 0)

	assert.ErrorIs(t, account.ChangePin("0000", "5678"), ErrUnauthorized)
	assert.ErrorIs(t, account.ChangePin("1234", "56"), ErrInvalidArgument)

	assert.NoError(t, account.ChangePin("1234", "5678"))
	assert.False(t, account.VerifyPin("1234"))
	assert.True(t, account.VerifyPin("5678"))
}

func TestAccount_ConvertType(t *testing.T) {
	account := newTestAccount(t, models.Savings, 600)

	assert.ErrorIs(t, account.ConvertType(models.Business, "1234"), ErrPolicyViolation)
	assert.Equal(t, models.Savings, account.Type())

	assert.NoError(t, account.ConvertType(models.Cheque, "1234"))
	assert.Equal(t, models.Cheque, account.Type())

	// History and balance are untouched by a conversion.
	assert.True(t, account.Balance().Equal(decimal.NewFromInt(600)))
	assert.Len(t, account.History(nil, nil), 1)
}

func TestAccount_ConvertType_WrongPin(t *testing.T) {
	account := newTestAccount(t, models.Savings, 2000)

	assert.ErrorIs(t, account.ConvertType(models.Business, "0000"), ErrUnauthorized)
	assert.Equal(t, models.Savings, account.Type())
}

func TestAccount_CalculateInterest(t *testing.T) {
	account := newTestAccount(t, models.Savings, 1000)

	// 1000 * 0.025 / 12, one month at the annual savings rate.
	want := decimal.NewFromInt(1000).Mul(decimal.RequireFromString("0.025")).Div(decimal.NewFromInt(12))
	assert.True(t, account.CalculateInterest().Equal(want))

	// Pure read, nothing appended.
	assert.Len(t, account.History(nil, nil), 1)
}

func TestAccount_CalculateInterest_NonPositiveBalance(t *testing.T) {
	account := newTestAccount(t, models.Cheque, 500)
	_, err := account.Withdraw(decimal.NewFromInt(700), "1234")
	assert.NoError(t, err)

	assert.True(t, account.CalculateInterest().IsZero())

	_, err = account.ApplyInterest("1234")
	assert.ErrorIs(t, err, ErrNoInterestDue)
}

func TestAccount_ApplyInterest(t *testing.T) {
	account := newTestAccount(t, models.Business, 1200)

	tx, err := account.ApplyInterest("1234")
	assert.NoError(t, err)
	assert.Equal(t, models.KindInterest, tx.Kind)
	assert.Equal(t, models.Credit, tx.Direction)
	assert.Equal(t, "Interest payment", tx.Description)

	want := decimal.NewFromInt(1200).Mul(decimal.RequireFromString("0.01")).Div(decimal.NewFromInt(12))
	assert.True(t, tx.Amount.Equal(want))
	assert.True(t, account.Balance().Equal(decimal.NewFromInt(1200).Add(want)))
}

func TestAccount_History(t *testing.T) {
	account := newTestAccount(t, models.Savings, 0)

	_, err := account.Deposit(decimal.NewFromInt(10), "1234")
	assert.NoError(t, err)
	_, err = account.Deposit(decimal.NewFromInt(20), "1234")
	assert.NoError(t, err)
	_, err = account.Withdraw(decimal.NewFromInt(5), "1234")
	assert.NoError(t, err)

	history := account.History(nil, nil)
	assert.Len(t, history, 3)

	// Newest first.
	assert.Equal(t, models.KindWithdrawal, history[0].Kind)
	assert.True(t, history[2].Amount.Equal(decimal.NewFromInt(10)))

	// The returned slice is a copy.
	history[0].Description = "tampered"
	assert.Equal(t, "Withdrawal", account.History(nil, nil)[0].Description)
}

func TestAccount_History_TimeFilter(t *testing.T) {
	account := newTestAccount(t, models.Savings, 0)

	_, err := account.Deposit(decimal.NewFromInt(10), "1234")
	assert.NoError(t, err)
	cut := time.Now()
	time.Sleep(5 * time.Millisecond)
	_, err = account.Deposit(decimal.NewFromInt(20), "1234")
	assert.NoError(t, err)

	after := account.History(&cut, nil)
	assert.Len(t, after, 1)
	assert.True(t, after[0].Amount.Equal(decimal.NewFromInt(20)))

	before := account.History(nil, &cut)
	assert.Len(t, before, 1)
	assert.True(t, before[0].Amount.Equal(decimal.NewFromInt(10)))
}
