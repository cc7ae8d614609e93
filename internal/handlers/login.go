package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"bankledger/internal/bank"
	"bankledger/internal/logger"
)

// LoginService defines the interface that the service must implement.
type LoginService interface {
	Login(ctx context.Context, name, pin string) (*bank.Account, string, error)
}

// LoginRequest represents the JSON body for account login
// swagger:model LoginRequest
type LoginRequest struct {
	// Owner display name
	// required: true
	// default: Alice
	Name string `json:"name"`

	// Account PIN
	// required: true
	// default: 1234
	Pin string `json:"pin"`
}

// LoginResponse represents a successful login
// swagger:model LoginResponse
type LoginResponse struct {
	// Bearer token scoped to the account
	Token string `json:"token"`

	// Account identifier for subsequent requests
	AccountID string `json:"account_id"`
}

// LoginErrorResponse represents an error response for login
// swagger:model LoginErrorResponse
type LoginErrorResponse struct {
	// Error message
	// default: Invalid name or PIN
	Error string `json:"error"`
}

// NewLoginHandler returns an HTTP handler for account login.
// @Summary Account login
// @Description Authenticate with owner name and PIN, returning a bearer token scoped to the account.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.LoginResponse "Logged in"
// @Failure 400 {object} handlers.LoginErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.LoginErrorResponse "Invalid name or PIN"
// @Router /login [post]
func NewLoginHandler(svc LoginService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode login request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(LoginErrorResponse{Error: "Invalid request body"})
			return
		}

		account, token, err := svc.Login(ctx, req.Name, req.Pin)
		if err != nil {
			// Unknown name and wrong PIN produce the same response so the
			// endpoint cannot be used to probe for account names.
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(LoginErrorResponse{Error: "Invalid name or PIN"})
			return
		}

		resp := LoginResponse{
			Token:     token,
			AccountID: account.ID(),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
