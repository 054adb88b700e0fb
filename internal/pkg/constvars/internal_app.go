package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "APPT_SVC_"
)

const (
	// Date layouts used by the cancellation flow. The backend stores dates as
	// YYYY-MM-DD while the booking front end sends DD/MM/YYYY.
	ExternalDateSeparator = "/"
	BackendDateSeparator  = "-"
)

const (
	URLParamDoctorID      = "doctorID"
	URLParamAppointmentID = "appointmentID"

	QueryParamEmail      = "email"
	QueryParamCategory   = "category"
	QueryParamDoctorID   = "doctor_id"
	QueryParamDoctorName = "doctor_name"
	QueryParamDate       = "date"
)
