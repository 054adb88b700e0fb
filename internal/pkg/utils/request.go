package utils

import (
	"appointment-booking-service/internal/pkg/constvars"
	"context"
)

// RequestIDFromContext returns the id set by the request id middleware, or
// an empty string when the call did not originate from an HTTP request.
func RequestIDFromContext(ctx context.Context) string {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return requestID
}

func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, requestID)
}
