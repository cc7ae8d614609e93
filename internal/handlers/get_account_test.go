package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"bankledger/internal/bank"
	"bankledger/internal/models"
)

func TestGetAccountHandler(t *testing.T) {
	registry := bank.New()
	account, err := registry.CreateAccount("Alice", "1234", models.Cheque, decimal.NewFromInt(500))
	assert.NoError(t, err)

	validToken := "valid-token"

	t.Run("successful lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockTokener := NewMockAccountTokener(ctrl)
		mockGetter := NewMockAccountGetter(ctrl)
		mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
		mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(accountClaims(account.ID()), nil)
		mockGetter.EXPECT().GetAccount(gomock.Any(), account.ID()).Return(account, nil)

		req := httptest.NewRequest(http.MethodGet, "/account", nil)
		rr := httptest.NewRecorder()

		NewGetAccountHandler(mockGetter, mockTokener).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp AccountResponse
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, account.ID(), resp.AccountID)
		assert.Equal(t, "Alice", resp.Name)
		assert.Equal(t, "Cheque", resp.AccountType)
		assert.True(t, resp.Balance.Equal(decimal.NewFromInt(500)))
		assert.True(t, resp.Policy.MinimumBalance.Equal(decimal.NewFromInt(100)))
	})

	t.Run("account not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockTokener := NewMockAccountTokener(ctrl)
		mockGetter := NewMockAccountGetter(ctrl)
		mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
		mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(accountClaims("gone"), nil)
		mockGetter.EXPECT().GetAccount(gomock.Any(), "gone").Return(nil, bank.ErrNotFound)

		req := httptest.NewRequest(http.MethodGet, "/account", nil)
		rr := httptest.NewRecorder()

		NewGetAccountHandler(mockGetter, mockTokener).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("unauthorized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockTokener := NewMockAccountTokener(ctrl)
		mockGetter := NewMockAccountGetter(ctrl)
		mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", http.ErrNoCookie)

		req := httptest.NewRequest(http.MethodGet, "/account", nil)
		rr := httptest.NewRecorder()

		NewGetAccountHandler(mockGetter, mockTokener).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestListAccountsHandler(t *testing.T) {
	registry := bank.New()
	_, err := registry.CreateAccount("Alice", "1234", models.Savings, decimal.NewFromInt(100))
	assert.NoError(t, err)
	_, err = registry.CreateAccount("Bob", "5678", models.Business, decimal.NewFromInt(2000))
	assert.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLister := NewMockAccountLister(ctrl)
	mockLister.EXPECT().ListAccounts(gomock.Any()).Return(registry.ListAccounts())

	req := httptest.NewRequest(http.MethodGet, "/accounts", nil)
	rr := httptest.NewRecorder()

	NewListAccountsHandler(mockLister).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp ListAccountsResponse
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Len(t, resp.Accounts, 2)
	assert.Equal(t, "Alice", resp.Accounts[0].Name)
	assert.Equal(t, "Bob", resp.Accounts[1].Name)
	assert.True(t, resp.Accounts[1].Balance.Equal(decimal.NewFromInt(2000)))
}
