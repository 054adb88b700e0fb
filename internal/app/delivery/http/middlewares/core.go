package middlewares

import (
	"appointment-booking-service/internal/pkg/constvars"
	"appointment-booking-service/internal/pkg/utils"
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type responseRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (rec *responseRecorder) WriteHeader(code int) {
	rec.statusCode = code
	rec.ResponseWriter.WriteHeader(code)
}

func (m *Middlewares) Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := utils.RequestIDFromContext(r.Context())
		isClientRequestID, _ := r.Context().Value(constvars.CONTEXT_IS_CLIENT_REQUEST_ID_KEY).(bool)

		m.Log.Info("API request started",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Bool("is_client_request_id", isClientRequestID),
			zap.String(constvars.LoggingMethodKey, r.Method),
			zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
			zap.String(constvars.LoggingUserAgentKey, r.UserAgent()),
			zap.String(constvars.LoggingQueryKey, r.URL.RawQuery),
		)

		rec := &responseRecorder{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rec, r)

		m.Log.Info("API request completed",
			zap.Int(constvars.LoggingStatusCodeKey, rec.statusCode),
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMethodKey, r.Method),
			zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
			zap.Bool(constvars.LoggingSuccessKey, rec.statusCode < constvars.StatusBadRequest),
		)
	})
}

// RequestIDMiddleware reuses the caller's X-Request-ID or mints a new one, and
// echoes it back. The id is forwarded to the backend on every outbound call.
func (m *Middlewares) RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(constvars.HeaderXRequestID)
		isClientRequestID := true

		if requestID == "" {
			requestID = utils.GenerateRequestID()
			isClientRequestID = false
		}

		ctx := utils.ContextWithRequestID(r.Context(), requestID)
		ctx = context.WithValue(ctx, constvars.CONTEXT_IS_CLIENT_REQUEST_ID_KEY, isClientRequestID)

		w.Header().Set(constvars.HeaderXRequestID, requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
