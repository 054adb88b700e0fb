package contracts

import (
	"appointment-booking-service/internal/pkg/strapi_dto"
	"context"
)

type DoctorStrapiClient interface {
	FindAll(ctx context.Context) ([]strapi_dto.Entry, error)
	FindByCategory(ctx context.Context, categoryName string) ([]strapi_dto.Entry, error)
	FindByID(ctx context.Context, doctorID string) (*strapi_dto.Entry, error)
}
