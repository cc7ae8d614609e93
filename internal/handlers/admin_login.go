package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"bankledger/internal/logger"
)

// AdminLoginService defines the interface that the service must implement.
type AdminLoginService interface {
	AdminLogin(ctx context.Context, username, password string) (string, error)
}

// AdminLoginRequest represents the JSON body for administrator login
// swagger:model AdminLoginRequest
type AdminLoginRequest struct {
	// Administrator username
	// required: true
	// default: admin
	Username string `json:"username"`

	// Administrator password
	// required: true
	Password string `json:"password"`
}

// AdminLoginResponse represents a successful administrator login
// swagger:model AdminLoginResponse
type AdminLoginResponse struct {
	// Bearer token with admin role
	Token string `json:"token"`
}

// AdminLoginErrorResponse represents an error response for administrator login
// swagger:model AdminLoginErrorResponse
type AdminLoginErrorResponse struct {
	// Error message
	// default: Invalid username or password
	Error string `json:"error"`
}

// NewAdminLoginHandler returns an HTTP handler for administrator login.
// @Summary Administrator login
// @Description Authenticate the administrator, returning a bearer token with the admin role.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body handlers.AdminLoginRequest true "Admin Login Request"
// @Success 200 {object} handlers.AdminLoginResponse "Logged in"
// @Failure 400 {object} handlers.AdminLoginErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.AdminLoginErrorResponse "Invalid username or password"
// @Router /admin/login [post]
func NewAdminLoginHandler(svc AdminLoginService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req AdminLoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode admin login request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AdminLoginErrorResponse{Error: "Invalid request body"})
			return
		}

		token, err := svc.AdminLogin(ctx, req.Username, req.Password)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(AdminLoginErrorResponse{Error: "Invalid username or password"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(AdminLoginResponse{Token: token})
	}
}
