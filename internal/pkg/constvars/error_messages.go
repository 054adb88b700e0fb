package constvars

var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"url":      "must be a valid URL",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"gte":      "must be greater than or equal to %s",
	"numeric":  "must be a number",
}

// Client-facing messages
const (
	ErrClientCannotProcessRequest          = "we couldn't process your request at the moment. Please try again later"
	ErrClientSomethingWrongWithApplication = "something went wrong with the application. Please try again later"
	ErrClientBackendUnavailable            = "the booking service is unavailable at the moment. Please try again later"
	ErrClientNoAppointmentFound            = "no appointment found for this email and date"
	ErrClientPartialCancellation           = "some of your appointments could not be cancelled. Please try again"
	ErrClientInvalidDate                   = "date must be in DD/MM/YYYY format"
	ErrClientTooManyRequests               = "too many requests, please slow down"
)

// Developer-facing messages
const (
	ErrDevInvalidInput               = "invalid input"
	ErrDevValidationFailed           = "input validation failed"
	ErrDevCannotParseJSON            = "failed to parse JSON request body"
	ErrDevCannotMarshalJSON          = "failed to marshal JSON payload"
	ErrDevCreateHTTPRequest          = "failed to create HTTP request"
	ErrDevSendHTTPRequest            = "failed to send HTTP request"
	ErrDevServerProcess              = "server failed to process something related to machine system"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded"
	ErrDevURLParamIDValidationFailed = "invalid %s url parameter"
	ErrDevMissingRequestID           = "request id missing from context"
	ErrDevStrapiRejected             = "backend rejected %s on `%s` with status %d"
	ErrDevStrapiDecodeResponse       = "failed to decode `%s` response from backend"
	ErrDevStrapiReadResponse         = "failed to read `%s` response body from backend"
	ErrDevStrapiThrottle             = "outbound rate limiter refused request to `%s`"
	ErrDevInvalidCancellationDate    = "cancellation date %q is not in DD/MM/YYYY form"
	ErrDevNoMatchingAppointment      = "no appointment matched email %q on %s"
	ErrDevPartialCancellation        = "%d of %d appointment deletes failed"
	ErrDevInvalidConfiguration       = "invalid configuration"
	ErrDevMissingQueryParam          = "missing required query parameter %s"
	ErrDevPanicRecovered             = "recovered from panic while serving request"
)
