package contracts

import (
	"appointment-booking-service/internal/pkg/strapi_dto"
	"context"
)

type CategoryStrapiClient interface {
	FindAll(ctx context.Context) ([]strapi_dto.Entry, error)
}

type CampaignStrapiClient interface {
	FindAll(ctx context.Context) ([]strapi_dto.Entry, error)
}

type GalleryStrapiClient interface {
	FindAll(ctx context.Context) ([]strapi_dto.Entry, error)
}
