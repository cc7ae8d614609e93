package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLoggingMiddleware(t *testing.T) {
	log := zap.NewNop().Sugar()

	var sawRequestID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawRequestID = w.Header().Get("X-Request-ID")
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	})

	h := LoggingMiddleware(log)(next)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/accounts", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.NotEmpty(t, sawRequestID, "request id should be set before the handler runs")
	assert.Equal(t, sawRequestID, rec.Header().Get("X-Request-ID"))
	assert.Equal(t, "short and stout", rec.Body.String())
}
