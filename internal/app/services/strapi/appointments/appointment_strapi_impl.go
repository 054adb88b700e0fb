package strapi_appointments

import (
	"appointment-booking-service/internal/app/contracts"
	"appointment-booking-service/internal/pkg/constvars"
	"appointment-booking-service/internal/pkg/queries"
	"appointment-booking-service/internal/pkg/strapi_dto"
	"context"
)

type appointmentStrapiClient struct {
	Resource contracts.ResourceClient
}

func NewAppointmentStrapiClient(resourceClient contracts.ResourceClient) contracts.AppointmentStrapiClient {
	return &appointmentStrapiClient{
		Resource: resourceClient,
	}
}

// FindByUserEmail lists a user's bookings with the doctor's image url populated.
func (c *appointmentStrapiClient) FindByUserEmail(ctx context.Context, email string) ([]strapi_dto.Entry, error) {
	query := queries.New().
		Eq(email, constvars.AttributeEmail).
		PopulatePath("url", constvars.AttributeDoctor, "populate", constvars.AttributeImage, "populate", "0").
		Populate(constvars.StrapiPopulateAll)
	return c.Resource.Query(ctx, constvars.CollectionAppointments, query)
}

func (c *appointmentStrapiClient) FindByDoctorAndDate(ctx context.Context, doctorID, date string) ([]strapi_dto.Entry, error) {
	query := queries.New().
		Filter(queries.OpNone, doctorID, constvars.AttributeDoctor).
		Eq(date, constvars.AttributeDate)
	return c.Resource.Query(ctx, constvars.CollectionAppointments, query)
}

func (c *appointmentStrapiClient) FindByDoctorName(ctx context.Context, doctorName string) ([]strapi_dto.Entry, error) {
	query := queries.New().
		Populate(constvars.StrapiPopulateAll).
		Eq(doctorName, constvars.AttributeDoctor, constvars.AttributeName)
	return c.Resource.Query(ctx, constvars.CollectionAppointments, query)
}

// FindByEmailAndDate expects date already in the backend's YYYY-MM-DD form.
func (c *appointmentStrapiClient) FindByEmailAndDate(ctx context.Context, email, date string) ([]strapi_dto.Entry, error) {
	return c.Resource.Query(ctx, constvars.CollectionAppointments, emailAndDateQuery(email, date))
}

func (c *appointmentStrapiClient) CreateAppointment(ctx context.Context, payload interface{}) (*strapi_dto.Entry, error) {
	return c.Resource.Create(ctx, constvars.CollectionAppointments, payload)
}

func (c *appointmentStrapiClient) UpdateSymptoms(ctx context.Context, appointmentID string, symptoms interface{}) (*strapi_dto.Entry, error) {
	return c.Resource.Update(ctx, constvars.CollectionAppointments, appointmentID, strapi_dto.AppointmentSymptomsUpdate{Symptoms: symptoms})
}

func (c *appointmentStrapiClient) DeleteByID(ctx context.Context, appointmentID string) (*strapi_dto.DeleteAcknowledgement, error) {
	return c.Resource.DeleteByID(ctx, constvars.CollectionAppointments, appointmentID)
}

func emailAndDateQuery(email, date string) *queries.Query {
	return queries.New().
		Eq(email, constvars.AttributeEmail).
		Eq(date, constvars.AttributeDate)
}
