package middlewares

import (
	"appointment-booking-service/internal/pkg/constvars"
	"appointment-booking-service/internal/pkg/exceptions"
	"appointment-booking-service/internal/pkg/utils"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

func (m *Middlewares) ErrorHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				var err error
				switch x := rec.(type) {
				case string:
					err = errors.New(x)
				case error:
					err = x
				default:
					err = fmt.Errorf("%v", x)
				}

				m.Log.Error("Middlewares.ErrorHandler recovered from panic",
					zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(r.Context())),
					zap.Error(err),
					zap.Stack("stacktrace"),
				)
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrPanicRecovered(err))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
