package strapi_categories

import (
	"appointment-booking-service/internal/app/contracts"
	"appointment-booking-service/internal/pkg/constvars"
	"appointment-booking-service/internal/pkg/queries"
	"appointment-booking-service/internal/pkg/strapi_dto"
	"context"
)

type categoryStrapiClient struct {
	Resource contracts.ResourceClient
}

func NewCategoryStrapiClient(resourceClient contracts.ResourceClient) contracts.CategoryStrapiClient {
	return &categoryStrapiClient{
		Resource: resourceClient,
	}
}

func (c *categoryStrapiClient) FindAll(ctx context.Context) ([]strapi_dto.Entry, error) {
	return c.Resource.Query(ctx, constvars.CollectionCategories, queries.New().Populate(constvars.StrapiPopulateAll))
}
