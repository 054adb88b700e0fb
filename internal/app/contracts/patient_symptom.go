package contracts

import (
	"appointment-booking-service/internal/pkg/strapi_dto"
	"context"
)

type PatientSymptomStrapiClient interface {
	Create(ctx context.Context, email string, symptoms interface{}) (*strapi_dto.Entry, error)
	FindByEmail(ctx context.Context, email string) ([]strapi_dto.Entry, error)
}
