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

// TransferWriter defines the interface that the service must implement.
type TransferWriter interface {
	Transfer(ctx context.Context, fromID, toID string, amount decimal.Decimal, pin string) (decimal.Decimal, error)
}

// TransferRequest represents the JSON body for moving funds between accounts
// swagger:model TransferRequest
type TransferRequest struct {
	// Destination account identifier
	// required: true
	ToAccountID string `json:"to_account_id"`

	// Amount to transfer, must be positive
	// required: true
	// default: 25
	Amount decimal.Decimal `json:"amount"`

	// PIN of the source account
	// required: true
	// default: 1234
	Pin string `json:"pin"`
}

// TransferResponse represents a successful transfer response
// swagger:model TransferResponse
type TransferResponse struct {
	// Success message
	// default: Transfer completed
	Message string `json:"message"`

	// Source account balance after the transfer
	NewBalance decimal.Decimal `json:"new_balance"`
}

// TransferErrorResponse represents an error response for transfer
// swagger:model TransferErrorResponse
type TransferErrorResponse struct {
	// Error message
	// default: Transfer would breach the account policy
	Error string `json:"error"`
}

// NewTransferHandler returns an HTTP handler for transfers between accounts.
// @Summary Transfer funds
// @Description Move funds from the authenticated account to another, recording a debit and a credit that share one timestamp, applied both or neither.
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body handlers.TransferRequest true "Transfer Request"
// @Success 200 {object} handlers.TransferResponse "Transfer completed"
// @Failure 400 {object} handlers.TransferErrorResponse "Invalid request"
// @Failure 401 {object} handlers.TransferErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.TransferErrorResponse "Account not found"
// @Failure 409 {object} handlers.TransferErrorResponse "Policy violation"
// @Router /account/transfer [post]
// @Security BearerAuth
func NewTransferHandler(svc TransferWriter, tokenGetter AccountTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := claimsFromRequest(ctx, w, r, tokenGetter)
		if !ok {
			return
		}

		var req TransferRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode transfer request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TransferErrorResponse{Error: "Invalid request body"})
			return
		}

		newBalance, err := svc.Transfer(ctx, claims.Subject, req.ToAccountID, req.Amount, req.Pin)
		if err != nil {
			switch {
			case errors.Is(err, bank.ErrUnauthorized):
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(TransferErrorResponse{Error: "Invalid PIN"})
			case errors.Is(err, bank.ErrSameAccount):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(TransferErrorResponse{Error: "Cannot transfer to the same account"})
			case errors.Is(err, bank.ErrInvalidArgument):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(TransferErrorResponse{Error: "Invalid amount"})
			case errors.Is(err, bank.ErrNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(TransferErrorResponse{Error: "Account not found"})
			case errors.Is(err, bank.ErrPolicyViolation):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(TransferErrorResponse{Error: "Transfer would breach the account policy"})
			default:
				logger.Log.Errorw("failed to transfer funds", "from", claims.Subject, "to", req.ToAccountID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(TransferErrorResponse{Error: "Internal server error"})
			}
			return
		}

		resp := TransferResponse{
			Message:    "Transfer completed",
			NewBalance: newBalance,
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
