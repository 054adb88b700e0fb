package requests

type CancelAppointmentByEmailDate struct {
	Email string `json:"email" validate:"required"`
	// Date is DD/MM/YYYY as shown by the booking front end.
	Date string `json:"date" validate:"required"`
}

type UpdateAppointmentSymptoms struct {
	Symptoms interface{} `json:"symptoms" validate:"required"`
}

type SavePatientSymptoms struct {
	Email    string      `json:"email" validate:"required"`
	Symptoms interface{} `json:"symptoms" validate:"required"`
}
