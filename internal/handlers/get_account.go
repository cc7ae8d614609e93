package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"bankledger/internal/bank"
	"bankledger/internal/jwt"
	"bankledger/internal/logger"
)

// AccountTokener defines only the methods needed by this handler.
type AccountTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// AccountGetter defines the interface that the service must implement.
type AccountGetter interface {
	GetAccount(ctx context.Context, id string) (*bank.Account, error)
}

// PolicyInfo describes the rules the account currently operates under
// swagger:model PolicyInfo
type PolicyInfo struct {
	// Annual interest rate
	InterestRate decimal.Decimal `json:"interest_rate"`

	// Most negative the balance may go
	OverdraftLimit decimal.Decimal `json:"overdraft_limit"`

	// Balance floor for withdrawals that stay non-negative
	MinimumBalance decimal.Decimal `json:"minimum_balance"`
}

// AccountResponse represents the account details
// swagger:model AccountResponse
type AccountResponse struct {
	// Account identifier
	AccountID string `json:"account_id"`

	// Owner name
	Name string `json:"name"`

	// Account type
	AccountType string `json:"account_type"`

	// Current balance, derived from the transaction history
	Balance decimal.Decimal `json:"balance"`

	// Rules derived from the account type
	Policy PolicyInfo `json:"policy"`
}

// AccountErrorResponse represents an error response for account retrieval
// swagger:model AccountErrorResponse
type AccountErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewGetAccountHandler returns an HTTP handler exposing the caller's account.
// @Summary Get account
// @Description Return the authenticated account: owner, type, derived balance and active policy.
// @Tags accounts
// @Produce json
// @Success 200 {object} handlers.AccountResponse "Account details"
// @Failure 401 {object} handlers.AccountErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.AccountErrorResponse "Account not found"
// @Router /account [get]
// @Security BearerAuth
func NewGetAccountHandler(svc AccountGetter, tokenGetter AccountTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := claimsFromRequest(ctx, w, r, tokenGetter)
		if !ok {
			return
		}

		account, err := svc.GetAccount(ctx, claims.Subject)
		if err != nil {
			logger.Log.Errorw("failed to get account", "account_id", claims.Subject, "error", err)
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(AccountErrorResponse{Error: "Account not found"})
			return
		}

		policy := account.Policy()
		resp := AccountResponse{
			AccountID:   account.ID(),
			Name:        account.Name(),
			AccountType: string(account.Type()),
			Balance:     account.Balance(),
			Policy: PolicyInfo{
				InterestRate:   policy.InterestRate,
				OverdraftLimit: policy.OverdraftLimit,
				MinimumBalance: policy.MinimumBalance,
			},
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}

// claimsFromRequest extracts and validates the bearer token, writing the 401
// response itself on failure.
func claimsFromRequest(ctx context.Context, w http.ResponseWriter, r *http.Request, tokenGetter AccountTokener) (*jwt.Claims, bool) {
	tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
	if err != nil {
		logger.Log.Errorw("failed to get token from request", "error", err)
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(AccountErrorResponse{Error: "Unauthorized"})
		return nil, false
	}

	claims, err := tokenGetter.GetClaims(ctx, tokenStr)
	if err != nil {
		logger.Log.Errorw("failed to get claims from token", "error", err)
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(AccountErrorResponse{Error: "Unauthorized"})
		return nil, false
	}

	return claims, true
}
