package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"bankledger/internal/bank"
	"bankledger/internal/jwt"
)

func accountClaims(accountID string) *jwt.Claims {
	claims := &jwt.Claims{Role: jwt.RoleAccount}
	claims.Subject = accountID
	return claims
}

func TestDepositHandler(t *testing.T) {
	accountID := "acc-1"
	validToken := "valid-token"

	tests := []struct {
		name               string
		requestBody        any
		setupMocks         func(mockWriter *MockDepositWriter, mockTokener *MockAccountTokener)
		expectedStatusCode int
		expectedKey        string
	}{
		{
			name: "successful deposit",
			requestBody: DepositRequest{
				Amount: decimal.NewFromInt(100),
				Pin:    "1234",
			},
			setupMocks: func(mockWriter *MockDepositWriter, mockTokener *MockAccountTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(accountClaims(accountID), nil)
				mockWriter.EXPECT().Deposit(gomock.Any(), accountID, gomock.Any(), "1234").Return(decimal.NewFromInt(150), nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedKey:        "message",
		},
		{
			name:        "invalid request body",
			requestBody: "invalid-json",
			setupMocks: func(mockWriter *MockDepositWriter, mockTokener *MockAccountTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(accountClaims(accountID), nil)
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name: "unauthorized missing token",
			requestBody: DepositRequest{
				Amount: decimal.NewFromInt(100),
				Pin:    "1234",
			},
			setupMocks: func(mockWriter *MockDepositWriter, mockTokener *MockAccountTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", http.ErrNoCookie)
			},
			expectedStatusCode: http.StatusUnauthorized,
			expectedKey:        "error",
		},
		{
			name: "unauthorized invalid token",
			requestBody: DepositRequest{
				Amount: decimal.NewFromInt(100),
				Pin:    "1234",
			},
			setupMocks: func(mockWriter *MockDepositWriter, mockTokener *MockAccountTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(nil, http.ErrNoCookie)
			},
			expectedStatusCode: http.StatusUnauthorized,
			expectedKey:        "error",
		},
		{
			name: "wrong pin",
			requestBody: DepositRequest{
				Amount: decimal.NewFromInt(100),
				Pin:    "0000",
			},
			setupMocks: func(mockWriter *MockDepositWriter, mockTokener *MockAccountTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(accountClaims(accountID), nil)
				mockWriter.EXPECT().Deposit(gomock.Any(), accountID, gomock.Any(), "0000").Return(decimal.Decimal{}, bank.ErrUnauthorized)
			},
			expectedStatusCode: http.StatusUnauthorized,
			expectedKey:        "error",
		},
		{
			name: "invalid amount",
			requestBody: DepositRequest{
				Amount: decimal.NewFromInt(-10),
				Pin:    "1234",
			},
			setupMocks: func(mockWriter *MockDepositWriter, mockTokener *MockAccountTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(accountClaims(accountID), nil)
				mockWriter.EXPECT().Deposit(gomock.Any(), accountID, gomock.Any(), "1234").Return(decimal.Decimal{}, bank.ErrInvalidArgument)
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name: "internal error",
			requestBody: DepositRequest{
				Amount: decimal.NewFromInt(100),
				Pin:    "1234",
			},
			setupMocks: func(mockWriter *MockDepositWriter, mockTokener *MockAccountTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(accountClaims(accountID), nil)
				mockWriter.EXPECT().Deposit(gomock.Any(), accountID, gomock.Any(), "1234").Return(decimal.Decimal{}, assert.AnError)
			},
			expectedStatusCode: http.StatusInternalServerError,
			expectedKey:        "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockTokener := NewMockAccountTokener(ctrl)
			mockWriter := NewMockDepositWriter(ctrl)
			tt.setupMocks(mockWriter, mockTokener)

			var bodyBytes []byte
			switch v := tt.requestBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPost, "/account/deposit", bytes.NewReader(bodyBytes))
			rr := httptest.NewRecorder()

			handler := NewDepositHandler(mockWriter, mockTokener)
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)

			var resp map[string]interface{}
			err := json.NewDecoder(rr.Body).Decode(&resp)
			assert.NoError(t, err)

			_, ok := resp[tt.expectedKey]
			assert.True(t, ok, "response should contain key %s", tt.expectedKey)
		})
	}
}
