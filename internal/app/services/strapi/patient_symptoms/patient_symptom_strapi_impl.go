package strapi_patient_symptoms

import (
	"appointment-booking-service/internal/app/contracts"
	"appointment-booking-service/internal/pkg/constvars"
	"appointment-booking-service/internal/pkg/queries"
	"appointment-booking-service/internal/pkg/strapi_dto"
	"context"
)

type patientSymptomStrapiClient struct {
	Resource contracts.ResourceClient
}

func NewPatientSymptomStrapiClient(resourceClient contracts.ResourceClient) contracts.PatientSymptomStrapiClient {
	return &patientSymptomStrapiClient{
		Resource: resourceClient,
	}
}

func (c *patientSymptomStrapiClient) Create(ctx context.Context, email string, symptoms interface{}) (*strapi_dto.Entry, error) {
	return c.Resource.Create(ctx, constvars.CollectionPatientSymptoms, strapi_dto.PatientSymptoms{
		Email:    email,
		Symptoms: symptoms,
	})
}

// FindByEmail returns the newest submissions first.
func (c *patientSymptomStrapiClient) FindByEmail(ctx context.Context, email string) ([]strapi_dto.Entry, error) {
	query := queries.New().
		Eq(email, constvars.AttributeSymptomEmail).
		Sort(constvars.AttributeCreatedAt, constvars.StrapiSortDesc)
	return c.Resource.Query(ctx, constvars.CollectionPatientSymptoms, query)
}
