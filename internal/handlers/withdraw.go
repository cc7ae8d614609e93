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

// WithdrawWriter defines the interface that the service must implement.
type WithdrawWriter interface {
	Withdraw(ctx context.Context, accountID string, amount decimal.Decimal, pin string) (decimal.Decimal, error)
}

// WithdrawRequest represents the JSON body for withdrawing funds
// swagger:model WithdrawRequest
type WithdrawRequest struct {
	// Amount to withdraw, must be positive
	// required: true
	// default: 50
	Amount decimal.Decimal `json:"amount"`

	// Account PIN
	// required: true
	// default: 1234
	Pin string `json:"pin"`
}

// WithdrawResponse represents a successful withdrawal response
// swagger:model WithdrawResponse
type WithdrawResponse struct {
	// Success message
	// default: Withdrawal recorded
	Message string `json:"message"`

	// Balance after the withdrawal
	NewBalance decimal.Decimal `json:"new_balance"`
}

// WithdrawErrorResponse represents an error response for withdrawal
// swagger:model WithdrawErrorResponse
type WithdrawErrorResponse struct {
	// Error message
	// default: Withdrawal would breach the account policy
	Error string `json:"error"`
}

// NewWithdrawHandler returns an HTTP handler for withdrawing funds.
// @Summary Withdraw funds
// @Description Append a withdrawal entry to the account ledger, subject to the overdraft and minimum-balance rules of the account type.
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body handlers.WithdrawRequest true "Withdraw Request"
// @Success 200 {object} handlers.WithdrawResponse "Withdrawal recorded"
// @Failure 400 {object} handlers.WithdrawErrorResponse "Invalid amount"
// @Failure 401 {object} handlers.WithdrawErrorResponse "Unauthorized"
// @Failure 409 {object} handlers.WithdrawErrorResponse "Policy violation"
// @Router /account/withdraw [post]
// @Security BearerAuth
func NewWithdrawHandler(svc WithdrawWriter, tokenGetter AccountTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := claimsFromRequest(ctx, w, r, tokenGetter)
		if !ok {
			return
		}

		var req WithdrawRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode withdraw request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(WithdrawErrorResponse{Error: "Invalid request body"})
			return
		}

		newBalance, err := svc.Withdraw(ctx, claims.Subject, req.Amount, req.Pin)
		if err != nil {
			switch {
			case errors.Is(err, bank.ErrUnauthorized):
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(WithdrawErrorResponse{Error: "Invalid PIN"})
			case errors.Is(err, bank.ErrPolicyViolation):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(WithdrawErrorResponse{Error: "Withdrawal would breach the account policy"})
			case errors.Is(err, bank.ErrInvalidArgument):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(WithdrawErrorResponse{Error: "Invalid amount"})
			case errors.Is(err, bank.ErrNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(WithdrawErrorResponse{Error: "Account not found"})
			default:
				logger.Log.Errorw("failed to withdraw funds", "account_id", claims.Subject, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(WithdrawErrorResponse{Error: "Internal server error"})
			}
			return
		}

		resp := WithdrawResponse{
			Message:    "Withdrawal recorded",
			NewBalance: newBalance,
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
