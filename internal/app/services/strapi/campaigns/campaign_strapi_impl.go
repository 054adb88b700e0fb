package strapi_campaigns

import (
	"appointment-booking-service/internal/app/contracts"
	"appointment-booking-service/internal/pkg/constvars"
	"appointment-booking-service/internal/pkg/queries"
	"appointment-booking-service/internal/pkg/strapi_dto"
	"context"
)

type campaignStrapiClient struct {
	Resource contracts.ResourceClient
}

func NewCampaignStrapiClient(resourceClient contracts.ResourceClient) contracts.CampaignStrapiClient {
	return &campaignStrapiClient{
		Resource: resourceClient,
	}
}

func (c *campaignStrapiClient) FindAll(ctx context.Context) ([]strapi_dto.Entry, error) {
	return c.Resource.Query(ctx, constvars.CollectionCampaigns, queries.New().Populate(constvars.StrapiPopulateAll))
}
