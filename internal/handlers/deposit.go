package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"bankledger/internal/bank"
	"bankledger/internal/logger"
)

// DepositWriter defines the interface that the service must implement.
type DepositWriter interface {
	Deposit(ctx context.Context, accountID string, amount decimal.Decimal, pin string) (decimal.Decimal, error)
}

// DepositRequest represents the JSON body for depositing funds
// swagger:model DepositRequest
type DepositRequest struct {
	// Amount to deposit, must be positive
	// required: true
	// default: 100
	Amount decimal.Decimal `json:"amount"`

	// Account PIN
	// required: true
	// default: 1234
	Pin string `json:"pin"`
}

// DepositResponse represents a successful deposit response
// swagger:model DepositResponse
type DepositResponse struct {
	// Success message
	// default: Deposit recorded
	Message string `json:"message"`

	// Balance after the deposit
	NewBalance decimal.Decimal `json:"new_balance"`
}

// DepositErrorResponse represents an error response for deposit
// swagger:model DepositErrorResponse
type DepositErrorResponse struct {
	// Error message
	// default: Invalid amount
	Error string `json:"error"`
}

// NewDepositHandler returns an HTTP handler for depositing funds.
// @Summary Deposit funds
// @Description Append a deposit entry to the account ledger and return the new balance.
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body handlers.DepositRequest true "Deposit Request"
// @Success 200 {object} handlers.DepositResponse "Deposit recorded"
// @Failure 400 {object} handlers.DepositErrorResponse "Invalid amount"
// @Failure 401 {object} handlers.DepositErrorResponse "Unauthorized"
// @Router /account/deposit [post]
// @Security BearerAuth
func NewDepositHandler(svc DepositWriter, tokenGetter AccountTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := claimsFromRequest(ctx, w, r, tokenGetter)
		if !ok {
			return
		}

		var req DepositRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode deposit request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(DepositErrorResponse{Error: "Invalid request body"})
			return
		}

		newBalance, err := svc.Deposit(ctx, claims.Subject, req.Amount, req.Pin)
		if err != nil {
			switch {
			case errors.Is(err, bank.ErrUnauthorized):
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(DepositErrorResponse{Error: "Invalid PIN"})
			case errors.Is(err, bank.ErrInvalidArgument):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(DepositErrorResponse{Error: "Invalid amount"})
			case errors.Is(err, bank.ErrNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(DepositErrorResponse{Error: "Account not found"})
			default:
				logger.Log.Errorw("failed to deposit funds", "account_id", claims.Subject, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(DepositErrorResponse{Error: "Internal server error"})
			}
			return
		}

		resp := DepositResponse{
			Message:    "Deposit recorded",
			NewBalance: newBalance,
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
