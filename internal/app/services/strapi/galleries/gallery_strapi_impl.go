package strapi_galleries

import (
	"appointment-booking-service/internal/app/contracts"
	"appointment-booking-service/internal/pkg/constvars"
	"appointment-booking-service/internal/pkg/queries"
	"appointment-booking-service/internal/pkg/strapi_dto"
	"context"
)

type galleryStrapiClient struct {
	Resource contracts.ResourceClient
}

func NewGalleryStrapiClient(resourceClient contracts.ResourceClient) contracts.GalleryStrapiClient {
	return &galleryStrapiClient{
		Resource: resourceClient,
	}
}

func (c *galleryStrapiClient) FindAll(ctx context.Context) ([]strapi_dto.Entry, error) {
	return c.Resource.Query(ctx, constvars.CollectionGalleries, queries.New().Populate(constvars.StrapiPopulateAll))
}
