package controllers

import (
	"appointment-booking-service/internal/app/contracts"
	"appointment-booking-service/internal/pkg/constvars"
	"appointment-booking-service/internal/pkg/dto/requests"
	"appointment-booking-service/internal/pkg/exceptions"
	"appointment-booking-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type PatientSymptomController struct {
	Log                        *zap.Logger
	PatientSymptomStrapiClient contracts.PatientSymptomStrapiClient
}

func NewPatientSymptomController(logger *zap.Logger, patientSymptomStrapiClient contracts.PatientSymptomStrapiClient) *PatientSymptomController {
	return &PatientSymptomController{
		Log:                        logger,
		PatientSymptomStrapiClient: patientSymptomStrapiClient,
	}
}

func (ctrl *PatientSymptomController) FindByEmail(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFrom(r)
	if !ok {
		ctrl.Log.Error("PatientSymptomController.FindByEmail requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	email := r.URL.Query().Get(constvars.QueryParamEmail)
	if email == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingQueryParam(constvars.QueryParamEmail))
		return
	}

	ctx := r.Context()

	symptoms, err := ctrl.PatientSymptomStrapiClient.FindByEmail(ctx, email)
	if err != nil {
		ctrl.Log.Error("PatientSymptomController.FindByEmail error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSymptomsSuccessMessage, symptoms)
}

func (ctrl *PatientSymptomController) Save(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFrom(r)
	if !ok {
		ctrl.Log.Error("PatientSymptomController.Save requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	request := new(requests.SavePatientSymptoms)
	if err := decodeAndValidate(r, request); err != nil {
		ctrl.Log.Error("PatientSymptomController.Save invalid request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx := r.Context()

	entry, err := ctrl.PatientSymptomStrapiClient.Create(ctx, request.Email, request.Symptoms)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SaveSymptomsSuccessMessage, entry)
}
