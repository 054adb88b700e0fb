package exceptions

import (
	"appointment-booking-service/internal/pkg/constvars"
	"errors"
	"fmt"
)

var (
	ErrURLParamIDValidation = func(err error, paramName string) *CustomError {
		customErr := BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevURLParamIDValidationFailed, paramName))
		customErr.Kind = KindInvalidInput
		return customErr
	}
	ErrInputValidation = func(err error) *CustomError {
		customErr := BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
		customErr.Kind = KindInvalidInput
		return customErr
	}
	ErrMissingQueryParam = func(paramName string) *CustomError {
		customErr := BuildNewCustomError(nil, constvars.StatusBadRequest, fmt.Sprintf("%s is required", paramName), fmt.Sprintf(constvars.ErrDevMissingQueryParam, paramName))
		customErr.Kind = KindInvalidInput
		return customErr
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		customErr := BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
		customErr.Kind = KindInvalidInput
		return customErr
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrMissingRequestID = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMissingRequestID)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		customErr := BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientBackendUnavailable, constvars.ErrDevServerDeadlineExceeded)
		customErr.Kind = KindTransport
		return customErr
	}
	ErrInvalidConfiguration = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevInvalidConfiguration)
	}

	// HTTP
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		customErr := BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientBackendUnavailable, constvars.ErrDevSendHTTPRequest)
		customErr.Kind = KindTransport
		return customErr
	}

	// Strapi
	ErrStrapiThrottle = func(err error, collection string) *CustomError {
		customErr := BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientBackendUnavailable, fmt.Sprintf(constvars.ErrDevStrapiThrottle, collection))
		customErr.Kind = KindTransport
		return customErr
	}
	ErrReadResponse = func(err error, collection string) *CustomError {
		customErr := BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientBackendUnavailable, fmt.Sprintf(constvars.ErrDevStrapiReadResponse, collection))
		customErr.Kind = KindTransport
		return customErr
	}
	ErrDecodeResponse = func(err error, collection string) *CustomError {
		customErr := BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevStrapiDecodeResponse, collection))
		customErr.Kind = KindDecode
		return customErr
	}
	// ErrBackendRejected wraps a non-2xx answer. Client errors keep the
	// backend's status code; server errors become a bad gateway.
	ErrBackendRejected = func(statusCode int, operation, collection, backendMessage string) *CustomError {
		var cause error
		if backendMessage != "" {
			cause = errors.New(backendMessage)
		}
		code := statusCode
		if statusCode >= constvars.StatusInternalServerError || statusCode < constvars.StatusBadRequest {
			code = constvars.StatusBadGateway
		}
		customErr := BuildNewCustomError(cause, code, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevStrapiRejected, operation, collection, statusCode))
		customErr.Kind = KindBackend
		return customErr
	}

	// Cancellation
	ErrInvalidCancellationDate = func(date string) *CustomError {
		customErr := BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientInvalidDate, fmt.Sprintf(constvars.ErrDevInvalidCancellationDate, date))
		customErr.Kind = KindInvalidInput
		return customErr
	}
	ErrNoMatchingAppointment = func(email, date string) *CustomError {
		customErr := BuildNewCustomError(nil, constvars.StatusNotFound, constvars.ErrClientNoAppointmentFound, fmt.Sprintf(constvars.ErrDevNoMatchingAppointment, email, date))
		customErr.Kind = KindNoMatch
		return customErr
	}
	// ErrPartialCancellation wraps the first failed delete of a fan-out.
	ErrPartialCancellation = func(err error, failed, total int) *CustomError {
		customErr := BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientPartialCancellation, fmt.Sprintf(constvars.ErrDevPartialCancellation, failed, total))
		customErr.Kind = KindPartialFailure
		var cause *CustomError
		if errors.As(err, &cause) {
			customErr.Payload = cause.Payload
		}
		return customErr
	}

	// Default Server
	ErrServerProcess = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevServerProcess)
	}
	ErrPanicRecovered = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevPanicRecovered)
	}
)
