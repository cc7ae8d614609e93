// Package handlers contains one file per HTTP endpoint. Each handler declares
// the narrow service interface it consumes, decodes its own request DTO, and
// maps domain errors to HTTP statuses.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"bankledger/internal/bank"
	"bankledger/internal/logger"
	"bankledger/internal/models"
)

// AccountCreator defines the interface that the service must implement.
type AccountCreator interface {
	CreateAccount(ctx context.Context, name, pin string, accountType models.AccountType, opening decimal.Decimal) (*bank.Account, error)
}

// CreateAccountRequest represents the JSON body for opening an account
// swagger:model CreateAccountRequest
type CreateAccountRequest struct {
	// Owner display name, unique across the bank
	// required: true
	// default: Alice
	Name string `json:"name"`

	// Exactly 4 digits
	// required: true
	// default: 1234
	Pin string `json:"pin"`

	// Account type: Savings, Cheque or Business
	// required: true
	// default: Savings
	AccountType string `json:"account_type"`

	// Optional opening deposit, recorded as the first ledger entry
	// default: 0
	InitialDeposit decimal.Decimal `json:"initial_deposit"`
}

// CreateAccountResponse represents a successful account creation
// swagger:model CreateAccountResponse
type CreateAccountResponse struct {
	// New account identifier
	AccountID string `json:"account_id"`

	// Owner name
	Name string `json:"name"`

	// Account type
	AccountType string `json:"account_type"`

	// Balance after the opening deposit, if any
	Balance decimal.Decimal `json:"balance"`
}

// CreateAccountErrorResponse represents an error response for account creation
// swagger:model CreateAccountErrorResponse
type CreateAccountErrorResponse struct {
	// Error message
	// default: Invalid account details
	Error string `json:"error"`
}

// NewCreateAccountHandler returns an HTTP handler for opening a new account.
// @Summary Open account
// @Description Open a bank account with a name, a 4-digit PIN, an account type and an optional opening deposit.
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body handlers.CreateAccountRequest true "Create Account Request"
// @Success 201 {object} handlers.CreateAccountResponse "Account created"
// @Failure 400 {object} handlers.CreateAccountErrorResponse "Invalid account details"
// @Failure 409 {object} handlers.CreateAccountErrorResponse "Name already taken"
// @Router /accounts [post]
func NewCreateAccountHandler(svc AccountCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req CreateAccountRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode create account request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateAccountErrorResponse{Error: "Invalid request body"})
			return
		}

		accountType, ok := models.ParseAccountType(req.AccountType)
		if !ok {
			logger.Log.Warnw("unknown account type", "account_type", req.AccountType)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateAccountErrorResponse{Error: "Invalid account details"})
			return
		}

		account, err := svc.CreateAccount(ctx, req.Name, req.Pin, accountType, req.InitialDeposit)
		if err != nil {
			switch {
			case errors.Is(err, bank.ErrDuplicate):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(CreateAccountErrorResponse{Error: "Name already taken"})
			case errors.Is(err, bank.ErrInvalidArgument):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(CreateAccountErrorResponse{Error: "Invalid account details"})
			default:
				logger.Log.Errorw("failed to create account", "name", req.Name, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(CreateAccountErrorResponse{Error: "Internal server error"})
			}
			return
		}

		resp := CreateAccountResponse{
			AccountID:   account.ID(),
			Name:        account.Name(),
			AccountType: string(account.Type()),
			Balance:     account.Balance(),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(resp)
	}
}
