package services

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"bankledger/internal/bank"
	"bankledger/internal/jwt"
	"bankledger/internal/models"
)

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := bank.New()
	account, err := registry.CreateAccount("Alice", "1234", models.Savings, decimal.Zero)
	assert.NoError(t, err)

	tokens := NewMockTokenGenerator(ctrl)
	tokens.EXPECT().Generate(ctx, account.ID(), jwt.RoleAccount).Return("token-123", nil)

	svc := NewAuthService(registry, tokens, "admin", "")
	got, token, err := svc.Login(ctx, "Alice", "1234")

	assert.NoError(t, err)
	assert.Equal(t, account.ID(), got.ID())
	assert.Equal(t, "token-123", token)
}

func TestAuthService_Login_WrongPin(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := bank.New()
	_, err := registry.CreateAccount("Alice", "1234", models.Savings, decimal.Zero)
	assert.NoError(t, err)

	svc := NewAuthService(registry, NewMockTokenGenerator(ctrl), "admin", "")
	_, _, err = svc.Login(ctx, "Alice", "0000")

	assert.ErrorIs(t, err, bank.ErrUnauthorized)
}

func TestAuthService_Login_UnknownName(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewAuthService(bank.New(), NewMockTokenGenerator(ctrl), "admin", "")
	_, _, err := svc.Login(ctx, "Nobody", "1234")

	assert.ErrorIs(t, err, bank.ErrNotFound)
}

func TestAuthService_Login_NameIsCaseSensitive(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := bank.New()
	_, err := registry.CreateAccount("Alice", "1234", models.Savings, decimal.Zero)
	assert.NoError(t, err)

	svc := NewAuthService(registry, NewMockTokenGenerator(ctrl), "admin", "")
	_, _, err = svc.Login(ctx, "alice", "1234")

	assert.ErrorIs(t, err, bank.ErrNotFound)
}

func TestAuthService_AdminLogin(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	assert.NoError(t, err)

	tokens := NewMockTokenGenerator(ctrl)
	tokens.EXPECT().Generate(ctx, "admin", jwt.RoleAdmin).Return("admin-token", nil)

	svc := NewAuthService(bank.New(), tokens, "admin", string(hash))

	token, err := svc.AdminLogin(ctx, "admin", "s3cret")
	assert.NoError(t, err)
	assert.Equal(t, "admin-token", token)

	_, err = svc.AdminLogin(ctx, "admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.AdminLogin(ctx, "root", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
