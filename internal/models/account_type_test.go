package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPolicyFor(t *testing.T) {
	savings, ok := PolicyFor(Savings)
	assert.True(t, ok)
	assert.True(t, savings.InterestRate.Equal(decimal.RequireFromString("0.025")))
	assert.True(t, savings.OverdraftLimit.IsZero())
	assert.True(t, savings.MinimumBalance.IsZero())

	business, ok := PolicyFor(Business)
	assert.True(t, ok)
	assert.True(t, business.OverdraftLimit.Equal(decimal.NewFromInt(500)))
	assert.True(t, business.MinimumBalance.Equal(decimal.NewFromInt(500)))

	_, ok = PolicyFor(AccountType("Premium"))
	assert.False(t, ok)
}

func TestConversionMinimum(t *testing.T) {
	m, ok := ConversionMinimum(Savings)
	assert.True(t, ok)
	assert.True(t, m.IsZero())

	m, ok = ConversionMinimum(Business)
	assert.True(t, ok)
	assert.True(t, m.Equal(decimal.NewFromInt(1000)))

	_, ok = ConversionMinimum(AccountType("Premium"))
	assert.False(t, ok)
}

func TestParseAccountType(t *testing.T) {
	parsed, ok := ParseAccountType("Cheque")
	assert.True(t, ok)
	assert.Equal(t, Cheque, parsed)

	// Wire values are case-sensitive.
	_, ok = ParseAccountType("cheque")
	assert.False(t, ok)
}
