package contracts

import (
	"appointment-booking-service/internal/pkg/queries"
	"appointment-booking-service/internal/pkg/strapi_dto"
	"context"
)

// ResourceClient issues one authenticated request per call against a named
// backend collection.
type ResourceClient interface {
	Query(ctx context.Context, collection string, query *queries.Query) ([]strapi_dto.Entry, error)
	FindByID(ctx context.Context, collection, id string, query *queries.Query) (*strapi_dto.Entry, error)
	Create(ctx context.Context, collection string, payload interface{}) (*strapi_dto.Entry, error)
	Update(ctx context.Context, collection, id string, payload interface{}) (*strapi_dto.Entry, error)
	DeleteByID(ctx context.Context, collection, id string) (*strapi_dto.DeleteAcknowledgement, error)
}
