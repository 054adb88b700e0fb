package controllers

import (
	"appointment-booking-service/internal/app/contracts"
	"appointment-booking-service/internal/pkg/constvars"
	"appointment-booking-service/internal/pkg/exceptions"
	"appointment-booking-service/internal/pkg/strapi_dto"
	"appointment-booking-service/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type DoctorController struct {
	Log                *zap.Logger
	DoctorStrapiClient contracts.DoctorStrapiClient
}

func NewDoctorController(logger *zap.Logger, doctorStrapiClient contracts.DoctorStrapiClient) *DoctorController {
	return &DoctorController{
		Log:                logger,
		DoctorStrapiClient: doctorStrapiClient,
	}
}

// FindAll serves GET /doctors, narrowed to one category when ?category= is set.
func (ctrl *DoctorController) FindAll(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFrom(r)
	if !ok {
		ctrl.Log.Error("DoctorController.FindAll requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	ctx := r.Context()

	var (
		doctors []strapi_dto.Entry
		err     error
	)
	if category := r.URL.Query().Get(constvars.QueryParamCategory); category != "" {
		doctors, err = ctrl.DoctorStrapiClient.FindByCategory(ctx, category)
	} else {
		doctors, err = ctrl.DoctorStrapiClient.FindAll(ctx)
	}
	if err != nil {
		ctrl.Log.Error("DoctorController.FindAll error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDoctorsSuccessMessage, doctors)
}

func (ctrl *DoctorController) FindByID(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFrom(r)
	if !ok {
		ctrl.Log.Error("DoctorController.FindByID requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	doctorID := chi.URLParam(r, constvars.URLParamDoctorID)
	if doctorID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamDoctorID))
		return
	}

	ctx := r.Context()

	doctor, err := ctrl.DoctorStrapiClient.FindByID(ctx, doctorID)
	if err != nil {
		ctrl.Log.Error("DoctorController.FindByID error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEntryIDKey, doctorID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDoctorSuccessMessage, doctor)
}
