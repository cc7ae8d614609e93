package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"bankledger/internal/models"
)

func TestHistoryHandler(t *testing.T) {
	accountID := "acc-1"
	validToken := "valid-token"

	entries := []models.Transaction{
		{
			ID:          "tx-2",
			Kind:        models.KindWithdrawal,
			Direction:   models.Debit,
			Amount:      decimal.NewFromInt(20),
			Timestamp:   time.Now(),
			Description: "Withdrawal",
		},
		{
			ID:          "tx-1",
			Kind:        models.KindDeposit,
			Direction:   models.Credit,
			Amount:      decimal.NewFromInt(100),
			Timestamp:   time.Now().Add(-time.Hour),
			Description: "Deposit",
		},
	}

	t.Run("full history", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockTokener := NewMockAccountTokener(ctrl)
		mockReader := NewMockHistoryReader(ctrl)
		mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
		mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(accountClaims(accountID), nil)
		mockReader.EXPECT().GetHistory(gomock.Any(), accountID, nil, nil).Return(entries, nil)

		req := httptest.NewRequest(http.MethodGet, "/account/history", nil)
		rr := httptest.NewRecorder()

		NewHistoryHandler(mockReader, mockTokener).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp HistoryResponse
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Len(t, resp.Transactions, 2)
		assert.Equal(t, "tx-2", resp.Transactions[0].ID)
	})

	t.Run("bounded history", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

		mockTokener := NewMockAccountTokener(ctrl)
		mockReader := NewMockHistoryReader(ctrl)
		mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
		mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(accountClaims(accountID), nil)
		mockReader.EXPECT().
			GetHistory(gomock.Any(), accountID, gomock.Any(), nil).
			DoAndReturn(func(_ context.Context, _ string, start, _ *time.Time) ([]models.Transaction, error) {
				assert.NotNil(t, start)
				assert.True(t, start.Equal(from))
				return entries[:1], nil
			})

		target := "/account/history?from=" + url.QueryEscape(from.Format(time.RFC3339))
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rr := httptest.NewRecorder()

		NewHistoryHandler(mockReader, mockTokener).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp HistoryResponse
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Len(t, resp.Transactions, 1)
	})

	t.Run("invalid time bound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockTokener := NewMockAccountTokener(ctrl)
		mockReader := NewMockHistoryReader(ctrl)
		mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
		mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(accountClaims(accountID), nil)

		req := httptest.NewRequest(http.MethodGet, "/account/history?from=yesterday", nil)
		rr := httptest.NewRecorder()

		NewHistoryHandler(mockReader, mockTokener).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
