package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"bankledger/internal/bank"
	"bankledger/internal/logger"
	"bankledger/internal/models"
)

// TypeConverter defines the interface that the service must implement.
type TypeConverter interface {
	ConvertAccountType(ctx context.Context, accountID string, newType models.AccountType, pin string) error
}

// ConvertTypeRequest represents the JSON body for converting the account type
// swagger:model ConvertTypeRequest
type ConvertTypeRequest struct {
	// Target account type: Savings, Cheque or Business
	// required: true
	// default: Business
	NewType string `json:"new_type"`

	// Account PIN
	// required: true
	// default: 1234
	Pin string `json:"pin"`
}

// ConvertTypeResponse represents a successful type conversion
// swagger:model ConvertTypeResponse
type ConvertTypeResponse struct {
	// Success message
	// default: Account type changed
	Message string `json:"message"`

	// Account type after the conversion
	AccountType string `json:"account_type"`
}

// ConvertTypeErrorResponse represents an error response for a type conversion
// swagger:model ConvertTypeErrorResponse
type ConvertTypeErrorResponse struct {
	// Error message
	// default: Balance below the minimum for the target type
	Error string `json:"error"`
}

// NewConvertTypeHandler returns an HTTP handler for converting the account type.
// @Summary Convert account type
// @Description Switch the account to another type when the balance meets the target type's minimum. History and balance are untouched.
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body handlers.ConvertTypeRequest true "Convert Type Request"
// @Success 200 {object} handlers.ConvertTypeResponse "Account type changed"
// @Failure 400 {object} handlers.ConvertTypeErrorResponse "Unknown account type"
// @Failure 401 {object} handlers.ConvertTypeErrorResponse "Unauthorized"
// @Failure 409 {object} handlers.ConvertTypeErrorResponse "Balance below the minimum for the target type"
// @Router /account/type [post]
// @Security BearerAuth
func NewConvertTypeHandler(svc TypeConverter, tokenGetter AccountTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := claimsFromRequest(ctx, w, r, tokenGetter)
		if !ok {
			return
		}

		var req ConvertTypeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode convert type request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ConvertTypeErrorResponse{Error: "Invalid request body"})
			return
		}

		newType, typeOK := models.ParseAccountType(req.NewType)
		if !typeOK {
			logger.Log.Warnw("unknown account type", "new_type", req.NewType)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ConvertTypeErrorResponse{Error: "Unknown account type"})
			return
		}

		if err := svc.ConvertAccountType(ctx, claims.Subject, newType, req.Pin); err != nil {
			switch {
			case errors.Is(err, bank.ErrUnauthorized):
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(ConvertTypeErrorResponse{Error: "Invalid PIN"})
			case errors.Is(err, bank.ErrPolicyViolation):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(ConvertTypeErrorResponse{Error: "Balance below the minimum for the target type"})
			case errors.Is(err, bank.ErrNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ConvertTypeErrorResponse{Error: "Account not found"})
			default:
				logger.Log.Errorw("failed to convert account type", "account_id", claims.Subject, "new_type", req.NewType, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ConvertTypeErrorResponse{Error: "Internal server error"})
			}
			return
		}

		resp := ConvertTypeResponse{
			Message:     "Account type changed",
			AccountType: string(newType),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
