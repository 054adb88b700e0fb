package middlewares

import (
	"appointment-booking-service/internal/pkg/constvars"
	"appointment-booking-service/internal/pkg/exceptions"
	"appointment-booking-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// RateLimit limits each client IP to App.MaxRequests per second and answers
// with the usual error envelope once the limit is hit.
func (m *Middlewares) RateLimit() func(next http.Handler) http.Handler {
	return httprate.Limit(
		m.InternalConfig.App.MaxRequests,
		time.Second,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			err := exceptions.WrapWithoutError(constvars.StatusTooManyRequests, constvars.ErrClientTooManyRequests, constvars.ErrClientTooManyRequests)
			utils.BuildErrorResponse(m.Log, w, err)
		}),
	)
}
