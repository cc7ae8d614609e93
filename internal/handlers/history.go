package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"bankledger/internal/bank"
	"bankledger/internal/logger"
	"bankledger/internal/models"
)

// HistoryReader defines the interface that the service must implement.
type HistoryReader interface {
	GetHistory(ctx context.Context, accountID string, start, end *time.Time) ([]models.Transaction, error)
}

// HistoryResponse represents the transaction history, newest first
// swagger:model HistoryResponse
type HistoryResponse struct {
	// Ledger entries, newest first
	Transactions []models.Transaction `json:"transactions"`
}

// HistoryErrorResponse represents an error response for history retrieval
// swagger:model HistoryErrorResponse
type HistoryErrorResponse struct {
	// Error message
	// default: Invalid time bound
	Error string `json:"error"`
}

// NewHistoryHandler returns an HTTP handler for the account transaction history.
// @Summary Transaction history
// @Description Return the account's ledger entries, newest first, optionally bounded by RFC 3339 "from" and "to" query parameters (inclusive).
// @Tags transactions
// @Produce json
// @Param from query string false "Inclusive lower bound, RFC 3339"
// @Param to query string false "Inclusive upper bound, RFC 3339"
// @Success 200 {object} handlers.HistoryResponse "Transaction history"
// @Failure 400 {object} handlers.HistoryErrorResponse "Invalid time bound"
// @Failure 401 {object} handlers.HistoryErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.HistoryErrorResponse "Account not found"
// @Router /account/history [get]
// @Security BearerAuth
func NewHistoryHandler(svc HistoryReader, tokenGetter AccountTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := claimsFromRequest(ctx, w, r, tokenGetter)
		if !ok {
			return
		}

		start, err := parseTimeParam(r, "from")
		if err != nil {
			logger.Log.Warnw("invalid from parameter", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(HistoryErrorResponse{Error: "Invalid time bound"})
			return
		}
		end, err := parseTimeParam(r, "to")
		if err != nil {
			logger.Log.Warnw("invalid to parameter", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(HistoryErrorResponse{Error: "Invalid time bound"})
			return
		}

		transactions, err := svc.GetHistory(ctx, claims.Subject, start, end)
		if err != nil {
			if errors.Is(err, bank.ErrNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(HistoryErrorResponse{Error: "Account not found"})
				return
			}
			logger.Log.Errorw("failed to get history", "account_id", claims.Subject, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(HistoryErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(HistoryResponse{Transactions: transactions})
	}
}

// parseTimeParam reads an optional RFC 3339 query parameter.
func parseTimeParam(r *http.Request, name string) (*time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
