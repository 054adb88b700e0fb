package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingQueryParamsKey    = "query_params"
	LoggingRequestKey        = "request"
	LoggingResponseKey       = "response"
	LoggingResponseLengthKey = "response_length"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"

	LoggingStrapiUrlKey        = "strapi_url"
	LoggingCollectionKey       = "collection"
	LoggingEntryIDKey          = "entry_id"
	LoggingEntryCountKey       = "entry_count"
	LoggingPayloadKey          = "payload"
	LoggingEmailKey            = "email"
	LoggingEncodedEmailKey     = "encoded_email"
	LoggingOriginalDateKey     = "original_date"
	LoggingFormattedDateKey    = "formatted_date"
	LoggingExactMatchKey       = "exact_match"
	LoggingAppointmentIDKey    = "appointment_id"
	LoggingAppointmentCountKey = "appointment_count"
	LoggingFailedCountKey      = "failed_count"
)
