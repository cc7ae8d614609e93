package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"bankledger/internal/bank"
	"bankledger/internal/jwt"
	"bankledger/internal/logger"
)

// Error variables
var (
	// ErrInvalidCredentials is returned for a failed admin login.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// AccountFinder locates accounts for login.
type AccountFinder interface {
	FindByName(name string) (*bank.Account, error)
}

// TokenGenerator defines an interface for generating tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, subject, role string) (string, error)
}

// AuthService handles account login (name + PIN) and admin login. The admin
// credential is a bcrypt hash supplied through configuration; there is no
// hard-coded admin password anywhere in the business logic.
type AuthService struct {
	accounts          AccountFinder
	jwt               TokenGenerator
	adminUser         string
	adminPasswordHash string
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(accounts AccountFinder, jwt TokenGenerator, adminUser, adminPasswordHash string) *AuthService {
	return &AuthService{
		accounts:          accounts,
		jwt:               jwt,
		adminUser:         adminUser,
		adminPasswordHash: adminPasswordHash,
	}
}

// Login authenticates an account by owner name and PIN and returns the
// account with a session token scoped to it.
func (svc *AuthService) Login(ctx context.Context, name, pin string) (*bank.Account, string, error) {
	account, err := svc.accounts.FindByName(name)
	if err != nil {
		logger.Log.Warnw("login failed, account not found", "name", name)
		return nil, "", err
	}

	if !account.VerifyPin(pin) {
		logger.Log.Warnw("login failed, wrong pin", "account_id", account.ID())
		return nil, "", bank.ErrUnauthorized
	}

	token, err := svc.jwt.Generate(ctx, account.ID(), jwt.RoleAccount)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return nil, "", err
	}

	return account, token, nil
}

// AdminLogin authenticates the administrator and returns an admin-role token.
func (svc *AuthService) AdminLogin(ctx context.Context, username, password string) (string, error) {
	if username != svc.adminUser {
		logger.Log.Warnw("admin login failed, unknown user", "username", username)
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(svc.adminPasswordHash), []byte(password)); err != nil {
		logger.Log.Warnw("admin login failed, wrong password", "username", username)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, username, jwt.RoleAdmin)
	if err != nil {
		logger.Log.Errorw("failed to generate admin token", "err", err)
		return "", err
	}

	return token, nil
}
