package controllers

import (
	"appointment-booking-service/internal/app/contracts"
	"appointment-booking-service/internal/pkg/constvars"
	"appointment-booking-service/internal/pkg/exceptions"
	"appointment-booking-service/internal/pkg/strapi_dto"
	"appointment-booking-service/internal/pkg/utils"
	"context"
	"net/http"

	"go.uber.org/zap"
)

// CatalogController serves the read-only listings shown on the landing pages.
type CatalogController struct {
	Log                  *zap.Logger
	CategoryStrapiClient contracts.CategoryStrapiClient
	CampaignStrapiClient contracts.CampaignStrapiClient
	GalleryStrapiClient  contracts.GalleryStrapiClient
}

func NewCatalogController(
	logger *zap.Logger,
	categoryStrapiClient contracts.CategoryStrapiClient,
	campaignStrapiClient contracts.CampaignStrapiClient,
	galleryStrapiClient contracts.GalleryStrapiClient,
) *CatalogController {
	return &CatalogController{
		Log:                  logger,
		CategoryStrapiClient: categoryStrapiClient,
		CampaignStrapiClient: campaignStrapiClient,
		GalleryStrapiClient:  galleryStrapiClient,
	}
}

func (ctrl *CatalogController) FindAllCategories(w http.ResponseWriter, r *http.Request) {
	ctrl.list(w, r, "CatalogController.FindAllCategories", constvars.GetCategoriesSuccessMessage, ctrl.CategoryStrapiClient.FindAll)
}

func (ctrl *CatalogController) FindAllCampaigns(w http.ResponseWriter, r *http.Request) {
	ctrl.list(w, r, "CatalogController.FindAllCampaigns", constvars.GetCampaignsSuccessMessage, ctrl.CampaignStrapiClient.FindAll)
}

func (ctrl *CatalogController) FindAllGalleries(w http.ResponseWriter, r *http.Request) {
	ctrl.list(w, r, "CatalogController.FindAllGalleries", constvars.GetGalleriesSuccessMessage, ctrl.GalleryStrapiClient.FindAll)
}

func (ctrl *CatalogController) list(w http.ResponseWriter, r *http.Request, name, successMessage string, findAll func(context.Context) ([]strapi_dto.Entry, error)) {
	requestID, ok := requestIDFrom(r)
	if !ok {
		ctrl.Log.Error(name + " requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	ctx := r.Context()

	entries, err := findAll(ctx)
	if err != nil {
		ctrl.Log.Error(name+" error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info(name+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(entries)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, successMessage, entries)
}
