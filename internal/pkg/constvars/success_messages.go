package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	GetCategoriesSuccessMessage      = "categories fetched successfully"
	GetDoctorsSuccessMessage         = "doctors fetched successfully"
	GetDoctorSuccessMessage          = "doctor fetched successfully"
	GetAppointmentsSuccessMessage    = "appointments fetched successfully"
	CreateAppointmentSuccessMessage  = "appointment booked successfully"
	CancelAppointmentSuccessMessage  = "appointment cancelled successfully"
	CancelAppointmentsSuccessMessage = "appointments cancelled successfully"
	UpdateSymptomsSuccessMessage     = "appointment symptoms updated successfully"
	SaveSymptomsSuccessMessage       = "symptoms saved successfully"
	GetSymptomsSuccessMessage        = "symptoms fetched successfully"
	GetCampaignsSuccessMessage       = "campaigns fetched successfully"
	GetGalleriesSuccessMessage       = "galleries fetched successfully"
)
