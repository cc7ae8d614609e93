package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"bankledger/internal/bank"
)

// AccountLister defines the interface that the service must implement.
type AccountLister interface {
	ListAccounts(ctx context.Context) []*bank.Account
}

// AccountSummary represents one account in the administrative listing
// swagger:model AccountSummary
type AccountSummary struct {
	// Account identifier
	AccountID string `json:"account_id"`

	// Owner name
	Name string `json:"name"`

	// Account type
	AccountType string `json:"account_type"`

	// Current balance
	Balance decimal.Decimal `json:"balance"`
}

// ListAccountsResponse represents the administrative account listing
// swagger:model ListAccountsResponse
type ListAccountsResponse struct {
	// All accounts in creation order
	Accounts []AccountSummary `json:"accounts"`
}

// NewListAccountsHandler returns an HTTP handler listing all accounts.
// Admin-only; the router gates it with the auth middleware.
// @Summary List accounts
// @Description Return every account with its derived balance, in creation order.
// @Tags admin
// @Produce json
// @Success 200 {object} handlers.ListAccountsResponse "Account listing"
// @Failure 401 {object} handlers.AccountErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.AccountErrorResponse "Forbidden"
// @Router /accounts [get]
// @Security BearerAuth
func NewListAccountsHandler(svc AccountLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accounts := svc.ListAccounts(r.Context())

		resp := ListAccountsResponse{Accounts: make([]AccountSummary, 0, len(accounts))}
		for _, account := range accounts {
			resp.Accounts = append(resp.Accounts, AccountSummary{
				AccountID:   account.ID(),
				Name:        account.Name(),
				AccountType: string(account.Type()),
				Balance:     account.Balance(),
			})
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
