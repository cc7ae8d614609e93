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

// InterestCalculator defines the read side of interest handling.
type InterestCalculator interface {
	CalculateInterest(ctx context.Context, accountID string) (decimal.Decimal, error)
}

// InterestApplier defines the write side of interest handling.
type InterestApplier interface {
	ApplyInterest(ctx context.Context, accountID, pin string) (decimal.Decimal, error)
}

// InterestQuoteResponse represents a calculated interest amount
// swagger:model InterestQuoteResponse
type InterestQuoteResponse struct {
	// One month of interest on the current balance, zero when nothing is due
	Interest decimal.Decimal `json:"interest"`
}

// ApplyInterestRequest represents the JSON body for applying interest
// swagger:model ApplyInterestRequest
type ApplyInterestRequest struct {
	// Account PIN
	// required: true
	// default: 1234
	Pin string `json:"pin"`
}

// ApplyInterestResponse represents a successful interest application
// swagger:model ApplyInterestResponse
type ApplyInterestResponse struct {
	// Success message
	// default: Interest applied
	Message string `json:"message"`

	// Interest amount credited
	Interest decimal.Decimal `json:"interest"`
}

// InterestErrorResponse represents an error response for interest handling
// swagger:model InterestErrorResponse
type InterestErrorResponse struct {
	// Error message
	// default: No interest due
	Error string `json:"error"`
}

// NewCalculateInterestHandler returns an HTTP handler quoting one month of interest.
// @Summary Quote interest
// @Description Return one month of interest on the current balance at the annual rate of the account type. Pure read, nothing is credited.
// @Tags interest
// @Produce json
// @Success 200 {object} handlers.InterestQuoteResponse "Interest amount"
// @Failure 401 {object} handlers.InterestErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.InterestErrorResponse "Account not found"
// @Router /account/interest [get]
// @Security BearerAuth
func NewCalculateInterestHandler(svc InterestCalculator, tokenGetter AccountTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := claimsFromRequest(ctx, w, r, tokenGetter)
		if !ok {
			return
		}

		interest, err := svc.CalculateInterest(ctx, claims.Subject)
		if err != nil {
			logger.Log.Errorw("failed to calculate interest", "account_id", claims.Subject, "error", err)
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(InterestErrorResponse{Error: "Account not found"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(InterestQuoteResponse{Interest: interest})
	}
}

// NewApplyInterestHandler returns an HTTP handler crediting one month of interest.
// @Summary Apply interest
// @Description Credit one month of interest to the account as a ledger entry. Fails when the balance is not positive.
// @Tags interest
// @Accept json
// @Produce json
// @Param request body handlers.ApplyInterestRequest true "Apply Interest Request"
// @Success 200 {object} handlers.ApplyInterestResponse "Interest applied"
// @Failure 401 {object} handlers.InterestErrorResponse "Unauthorized"
// @Failure 409 {object} handlers.InterestErrorResponse "No interest due"
// @Router /account/interest [post]
// @Security BearerAuth
func NewApplyInterestHandler(svc InterestApplier, tokenGetter AccountTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := claimsFromRequest(ctx, w, r, tokenGetter)
		if !ok {
			return
		}

		var req ApplyInterestRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode apply interest request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(InterestErrorResponse{Error: "Invalid request body"})
			return
		}

		interest, err := svc.ApplyInterest(ctx, claims.Subject, req.Pin)
		if err != nil {
			switch {
			case errors.Is(err, bank.ErrUnauthorized):
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(InterestErrorResponse{Error: "Invalid PIN"})
			case errors.Is(err, bank.ErrNoInterestDue):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(InterestErrorResponse{Error: "No interest due"})
			case errors.Is(err, bank.ErrNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(InterestErrorResponse{Error: "Account not found"})
			default:
				logger.Log.Errorw("failed to apply interest", "account_id", claims.Subject, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(InterestErrorResponse{Error: "Internal server error"})
			}
			return
		}

		resp := ApplyInterestResponse{
			Message:  "Interest applied",
			Interest: interest,
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
