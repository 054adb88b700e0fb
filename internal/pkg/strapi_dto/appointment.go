package strapi_dto

import "github.com/goccy/go-json"

type AppointmentAttributes struct {
	UserName string          `json:"UserName,omitempty"`
	Email    string          `json:"Email"`
	Date     string          `json:"Date"`
	Time     string          `json:"Time,omitempty"`
	Note     string          `json:"Note,omitempty"`
	Symptoms json.RawMessage `json:"symp,omitempty"`
	Doctor   json.RawMessage `json:"doctor,omitempty"`
}

type AppointmentSymptomsUpdate struct {
	Symptoms interface{} `json:"symp"`
}

type PatientSymptoms struct {
	Email    string      `json:"email"`
	Symptoms interface{} `json:"symptoms"`
}
