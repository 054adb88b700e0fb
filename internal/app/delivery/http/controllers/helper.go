package controllers

import (
	"appointment-booking-service/internal/pkg/exceptions"
	"appointment-booking-service/internal/pkg/utils"
	"context"
	"errors"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func requestIDFrom(r *http.Request) (string, bool) {
	requestID := utils.RequestIDFromContext(r.Context())
	return requestID, requestID != ""
}

// decodeAndValidate reads the JSON body into request and runs its validate tags.
func decodeAndValidate(r *http.Request, request interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	if err := utils.ValidateStruct(request); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}

func writeUsecaseError(log *zap.Logger, w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) && exceptions.KindOf(err) == "" {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}
