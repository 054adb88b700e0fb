package responses

import "appointment-booking-service/internal/pkg/strapi_dto"

type CancelAppointments struct {
	Email         string                             `json:"email"`
	FormattedDate string                             `json:"formatted_date"`
	Cancelled     []strapi_dto.DeleteAcknowledgement `json:"cancelled"`
}
