package utils

import (
	"appointment-booking-service/internal/pkg/constvars"
	"appointment-booking-service/internal/pkg/dto/responses"
	"appointment-booking-service/internal/pkg/exceptions"
	"errors"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func BuildSuccessResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	response := responses.ResponseDTO{
		Success: true,
		Message: message,
		Data:    data,
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	code := constvars.StatusInternalServerError
	clientMessage := constvars.ErrClientSomethingWrongWithApplication

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		code = customErr.StatusCode
		clientMessage = customErr.ClientMessage
		for _, location := range customErr.Locations {
			log.Error(customErr.DevMessage,
				zap.String("kind", string(customErr.Kind)),
				zap.String("operation", customErr.Operation),
				zap.Any("location", location),
			)
		}
	} else {
		log.Error(err.Error())
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	response := exceptions.CustomError{
		StatusCode:    code,
		Success:       false,
		ClientMessage: clientMessage,
	}

	appEnvironment := GetEnvString("APP_ENV", "development")
	if customErr != nil {
		response.Kind = customErr.Kind
		if appEnvironment != "production" {
			response.DevMessage = customErr.DevMessage
			response.Operation = customErr.Operation
			response.Params = customErr.Params
			response.Payload = customErr.Payload
			response.Locations = customErr.Locations
		}
	}
	json.NewEncoder(w).Encode(response)
}
