package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"bankledger/internal/bank"
	"bankledger/internal/logger"
)

// PinChanger defines the interface that the service must implement.
type PinChanger interface {
	ChangePin(ctx context.Context, accountID, currentPin, newPin string) error
}

// ChangePinRequest represents the JSON body for changing the account PIN
// swagger:model ChangePinRequest
type ChangePinRequest struct {
	// Current PIN
	// required: true
	// default: 1234
	CurrentPin string `json:"current_pin"`

	// New PIN, exactly 4 digits
	// required: true
	// default: 5678
	NewPin string `json:"new_pin"`
}

// ChangePinResponse represents a successful PIN change
// swagger:model ChangePinResponse
type ChangePinResponse struct {
	// Success message
	// default: PIN changed
	Message string `json:"message"`
}

// ChangePinErrorResponse represents an error response for a PIN change
// swagger:model ChangePinErrorResponse
type ChangePinErrorResponse struct {
	// Error message
	// default: Invalid PIN
	Error string `json:"error"`
}

// NewChangePinHandler returns an HTTP handler for changing the account PIN.
// @Summary Change PIN
// @Description Replace the account PIN after verifying the current one.
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body handlers.ChangePinRequest true "Change PIN Request"
// @Success 200 {object} handlers.ChangePinResponse "PIN changed"
// @Failure 400 {object} handlers.ChangePinErrorResponse "New PIN is not 4 digits"
// @Failure 401 {object} handlers.ChangePinErrorResponse "Unauthorized"
// @Router /account/pin [post]
// @Security BearerAuth
func NewChangePinHandler(svc PinChanger, tokenGetter AccountTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := claimsFromRequest(ctx, w, r, tokenGetter)
		if !ok {
			return
		}

		var req ChangePinRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode change pin request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ChangePinErrorResponse{Error: "Invalid request body"})
			return
		}

		if err := svc.ChangePin(ctx, claims.Subject, req.CurrentPin, req.NewPin); err != nil {
			switch {
			case errors.Is(err, bank.ErrUnauthorized):
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(ChangePinErrorResponse{Error: "Invalid PIN"})
			case errors.Is(err, bank.ErrInvalidArgument):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ChangePinErrorResponse{Error: "New PIN must be exactly 4 digits"})
			case errors.Is(err, bank.ErrNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ChangePinErrorResponse{Error: "Account not found"})
			default:
				logger.Log.Errorw("failed to change pin", "account_id", claims.Subject, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ChangePinErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ChangePinResponse{Message: "PIN changed"})
	}
}
