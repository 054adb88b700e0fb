package exceptions

import (
	"appointment-booking-service/internal/pkg/constvars"
	"errors"
	"fmt"
	"runtime"

	"github.com/goccy/go-json"
)

// Kind classifies a CustomError so callers can branch without string matching.
type Kind string

const (
	KindInternal       Kind = "internal"
	KindInvalidInput   Kind = "invalid_input"
	KindTransport      Kind = "transport"
	KindBackend        Kind = "backend"
	KindDecode         Kind = "decode"
	KindNoMatch        Kind = "no_match"
	KindPartialFailure Kind = "partial_failure"
)

type CustomError struct {
	StatusCode    int               `json:"status_code"`
	Success       bool              `json:"success"`
	ClientMessage string            `json:"message"`
	DevMessage    string            `json:"dev_message,omitempty"`
	Kind          Kind              `json:"kind,omitempty"`
	Operation     string            `json:"operation,omitempty"`
	Params        map[string]string `json:"params,omitempty"`
	Payload       json.RawMessage   `json:"payload,omitempty"`
	Locations     []Location        `json:"locations,omitempty"`
	Err           error             `json:"-"`
}

type Location struct {
	File         string `json:"file"`
	Line         int    `json:"line"`
	FunctionName string `json:"function_name"`
}

func (e *CustomError) Error() string {
	if len(e.Locations) == 0 {
		return e.DevMessage
	}
	location := e.Locations[0]
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, location.File, location.Line, location.FunctionName)
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// WithOperation records which client operation produced the error and the
// parameters it was called with.
func (e *CustomError) WithOperation(operation string, params map[string]string) *CustomError {
	e.Operation = operation
	e.Params = params
	return e
}

func (e *CustomError) WithPayload(payload []byte) *CustomError {
	if len(payload) > 0 && json.Valid(payload) {
		e.Payload = json.RawMessage(payload)
	}
	return e
}

func BuildNewCustomError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	if err != nil {
		devMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Kind:          KindInternal,
		Locations:     []Location{getLocation(3)},
		Err:           err,
	}
}

func WrapWithoutError(statusCode int, clientMessage, devMessage string) *CustomError {
	return &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Kind:          KindInternal,
		Locations:     []Location{getLocation(2)},
	}
}

// KindOf returns the kind of the outermost CustomError in err's chain.
func KindOf(err error) Kind {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.Kind
	}
	return ""
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ResponseUnknown,
			Line:         0,
			FunctionName: constvars.ResponseUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
