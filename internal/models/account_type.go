package models

import "github.com/shopspring/decimal"

// AccountType selects the policy an account operates under.
type AccountType string

// Supported account types
const (
	Savings  AccountType = "Savings"
	Cheque   AccountType = "Cheque"
	Business AccountType = "Business"
)

// Policy is the tuple of rules derived from the account type. It is always
// looked up from the type, never stored or set directly.
type Policy struct {
	InterestRate   decimal.Decimal `json:"interest_rate"`   // Annual rate, e.g. 0.025 for 2.5%
	OverdraftLimit decimal.Decimal `json:"overdraft_limit"` // Most negative the balance may go
	MinimumBalance decimal.Decimal `json:"minimum_balance"` // Floor for non-negative balances after a withdrawal
}

// policies is the closed policy table, indexed by account type.
var policies = map[AccountType]Policy{
	Savings: {
		InterestRate:   decimal.RequireFromString("0.025"),
		OverdraftLimit: decimal.Zero,
		MinimumBalance: decimal.Zero,
	},
	Cheque: {
		InterestRate:   decimal.RequireFromString("0.005"),
		OverdraftLimit: decimal.NewFromInt(200),
		MinimumBalance: decimal.NewFromInt(100),
	},
	Business: {
		InterestRate:   decimal.RequireFromString("0.01"),
		OverdraftLimit: decimal.NewFromInt(500),
		MinimumBalance: decimal.NewFromInt(500),
	},
}

// conversionMinimums is the balance each type requires before an account may
// convert to it.
var conversionMinimums = map[AccountType]decimal.Decimal{
	Savings:  decimal.Zero,
	Cheque:   decimal.NewFromInt(500),
	Business: decimal.NewFromInt(1000),
}

// PolicyFor returns the policy for the given account type.
func PolicyFor(t AccountType) (Policy, bool) {
	p, ok := policies[t]
	return p, ok
}

// ConversionMinimum returns the balance required to convert to the given type.
func ConversionMinimum(t AccountType) (decimal.Decimal, bool) {
	m, ok := conversionMinimums[t]
	return m, ok
}

// ParseAccountType validates a wire-level account type string.
func ParseAccountType(s string) (AccountType, bool) {
	t := AccountType(s)
	_, ok := policies[t]
	return t, ok
}
