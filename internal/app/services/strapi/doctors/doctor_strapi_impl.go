package strapi_doctors

import (
	"appointment-booking-service/internal/app/contracts"
	"appointment-booking-service/internal/pkg/constvars"
	"appointment-booking-service/internal/pkg/queries"
	"appointment-booking-service/internal/pkg/strapi_dto"
	"context"
)

type doctorStrapiClient struct {
	Resource contracts.ResourceClient
}

func NewDoctorStrapiClient(resourceClient contracts.ResourceClient) contracts.DoctorStrapiClient {
	return &doctorStrapiClient{
		Resource: resourceClient,
	}
}

func (c *doctorStrapiClient) FindAll(ctx context.Context) ([]strapi_dto.Entry, error) {
	return c.Resource.Query(ctx, constvars.CollectionDoctors, queries.New().Populate(constvars.StrapiPopulateAll))
}

func (c *doctorStrapiClient) FindByCategory(ctx context.Context, categoryName string) ([]strapi_dto.Entry, error) {
	query := queries.New().
		Filter(queries.OpIn, categoryName, constvars.AttributeCategories, constvars.AttributeName).
		Populate(constvars.StrapiPopulateAll)
	return c.Resource.Query(ctx, constvars.CollectionDoctors, query)
}

func (c *doctorStrapiClient) FindByID(ctx context.Context, doctorID string) (*strapi_dto.Entry, error) {
	return c.Resource.FindByID(ctx, constvars.CollectionDoctors, doctorID, queries.New().Populate(constvars.StrapiPopulateAll))
}
