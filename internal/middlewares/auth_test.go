package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"bankledger/internal/jwt"
)

func TestAuthMiddleware(t *testing.T) {
	tokener := jwt.New("test_secret", time.Minute)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("missing token", func(t *testing.T) {
		h := AuthMiddleware(tokener, "")(next)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		h := AuthMiddleware(tokener, "")(next)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token, any role", func(t *testing.T) {
		token, err := tokener.Generate(context.Background(), "acct-1", jwt.RoleAccount)
		assert.NoError(t, err)

		h := AuthMiddleware(tokener, "")(next)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("role mismatch is forbidden", func(t *testing.T) {
		token, err := tokener.Generate(context.Background(), "acct-1", jwt.RoleAccount)
		assert.NoError(t, err)

		h := AuthMiddleware(tokener, jwt.RoleAdmin)(next)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin token passes admin gate", func(t *testing.T) {
		token, err := tokener.Generate(context.Background(), "admin", jwt.RoleAdmin)
		assert.NoError(t, err)

		h := AuthMiddleware(tokener, jwt.RoleAdmin)(next)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
