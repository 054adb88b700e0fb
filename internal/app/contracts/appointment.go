package contracts

import (
	"appointment-booking-service/internal/pkg/strapi_dto"
	"context"
)

type AppointmentUsecase interface {
	FindByUserEmail(ctx context.Context, email string) ([]strapi_dto.Entry, error)
	FindByDoctorAndDate(ctx context.Context, doctorID, date string) ([]strapi_dto.Entry, error)
	FindByDoctorName(ctx context.Context, doctorName string) ([]strapi_dto.Entry, error)
	CreateAppointment(ctx context.Context, payload interface{}) (*strapi_dto.Entry, error)
	UpdateSymptoms(ctx context.Context, appointmentID string, symptoms interface{}) (*strapi_dto.Entry, error)
	CancelAppointment(ctx context.Context, appointmentID string) (*strapi_dto.DeleteAcknowledgement, error)
	CancelAppointmentByEmailDate(ctx context.Context, email, date string) ([]strapi_dto.DeleteAcknowledgement, error)
}

type AppointmentStrapiClient interface {
	FindByUserEmail(ctx context.Context, email string) ([]strapi_dto.Entry, error)
	FindByDoctorAndDate(ctx context.Context, doctorID, date string) ([]strapi_dto.Entry, error)
	FindByDoctorName(ctx context.Context, doctorName string) ([]strapi_dto.Entry, error)
	FindByEmailAndDate(ctx context.Context, email, date string) ([]strapi_dto.Entry, error)
	CreateAppointment(ctx context.Context, payload interface{}) (*strapi_dto.Entry, error)
	UpdateSymptoms(ctx context.Context, appointmentID string, symptoms interface{}) (*strapi_dto.Entry, error)
	DeleteByID(ctx context.Context, appointmentID string) (*strapi_dto.DeleteAcknowledgement, error)
}

// CancellationTrace is the diagnostic snapshot of one cancel-by-email-date call.
type CancellationTrace struct {
	Email         string
	EncodedEmail  string
	OriginalDate  string
	FormattedDate string
}

// CancellationObserver receives diagnostics from the cancel-by-email-date
// workflow. Implementations must not block; they never affect the outcome.
type CancellationObserver interface {
	OnCancellationRequested(ctx context.Context, trace CancellationTrace)
	OnAppointmentsFetched(ctx context.Context, trace CancellationTrace, count int)
	OnAppointmentFound(ctx context.Context, trace CancellationTrace, appointmentID string, attributes strapi_dto.AppointmentAttributes, exactMatch bool)
	OnAppointmentSkipped(ctx context.Context, trace CancellationTrace, appointmentID, reason string)
	OnDeleteAttempt(ctx context.Context, trace CancellationTrace, appointmentID string)
	OnCancellationFailed(ctx context.Context, trace CancellationTrace, err error)
}
