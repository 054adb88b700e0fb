package middlewares

import (
	"appointment-booking-service/internal/app/config"
	"appointment-booking-service/internal/pkg/constvars"
	"appointment-booking-service/internal/pkg/utils"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestMiddlewares(maxRequests int) *Middlewares {
	return NewMiddlewares(zap.NewNop(), &config.InternalConfig{
		App: config.App{MaxRequests: maxRequests},
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	m := newTestMiddlewares(10)

	var seen string
	handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = utils.RequestIDFromContext(r.Context())
	}))

	t.Run("Client Request ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/doctors", nil)
		req.Header.Set(constvars.HeaderXRequestID, "client-id")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, "client-id", seen)
		assert.Equal(t, "client-id", rr.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("Generated Request ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/doctors", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.True(t, strings.HasPrefix(seen, constvars.REQUEST_ID_PREFIX))
		assert.Equal(t, seen, rr.Header().Get(constvars.HeaderXRequestID))
	})
}

func TestErrorHandler(t *testing.T) {
	m := newTestMiddlewares(10)
	handler := m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/doctors", nil)
	rr := httptest.NewRecorder()

	require.NotPanics(t, func() { handler.ServeHTTP(rr, req) })
	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, constvars.ErrClientSomethingWrongWithApplication, body["message"])
}

func TestRateLimit(t *testing.T) {
	m := newTestMiddlewares(1)
	handler := m.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/api/v1/doctors", nil))
	second := httptest.NewRecorder()
	handler.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/api/v1/doctors", nil))

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Contains(t, second.Body.String(), constvars.ErrClientTooManyRequests)
}
