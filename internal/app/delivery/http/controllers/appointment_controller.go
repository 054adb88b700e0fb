package controllers

import (
	"appointment-booking-service/internal/app/contracts"
	"appointment-booking-service/internal/pkg/constvars"
	"appointment-booking-service/internal/pkg/dto/requests"
	"appointment-booking-service/internal/pkg/dto/responses"
	"appointment-booking-service/internal/pkg/exceptions"
	"appointment-booking-service/internal/pkg/strapi_dto"
	"appointment-booking-service/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AppointmentController struct {
	Log                *zap.Logger
	AppointmentUsecase contracts.AppointmentUsecase
}

func NewAppointmentController(logger *zap.Logger, appointmentUsecase contracts.AppointmentUsecase) *AppointmentController {
	return &AppointmentController{
		Log:                logger,
		AppointmentUsecase: appointmentUsecase,
	}
}

// Find serves GET /appointments. Exactly one lookup is chosen from the query
// string: by email, by doctor and date, or by doctor name.
func (ctrl *AppointmentController) Find(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFrom(r)
	if !ok {
		ctrl.Log.Error("AppointmentController.Find requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	query := r.URL.Query()
	email := query.Get(constvars.QueryParamEmail)
	doctorID := query.Get(constvars.QueryParamDoctorID)
	date := query.Get(constvars.QueryParamDate)
	doctorName := query.Get(constvars.QueryParamDoctorName)

	ctrl.Log.Info("AppointmentController.Find called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	ctrl.Log.Debug("AppointmentController.Find query",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryParamsKey, r.URL.RawQuery),
	)

	ctx := r.Context()

	var (
		appointments []strapi_dto.Entry
		err          error
	)
	switch {
	case email != "":
		appointments, err = ctrl.AppointmentUsecase.FindByUserEmail(ctx, email)
	case doctorID != "" && date != "":
		appointments, err = ctrl.AppointmentUsecase.FindByDoctorAndDate(ctx, doctorID, date)
	case doctorID != "":
		err = exceptions.ErrMissingQueryParam(constvars.QueryParamDate)
	case doctorName != "":
		appointments, err = ctrl.AppointmentUsecase.FindByDoctorName(ctx, doctorName)
	default:
		err = exceptions.ErrMissingQueryParam(constvars.QueryParamEmail)
	}
	if err != nil {
		ctrl.Log.Error("AppointmentController.Find error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AppointmentController.Find succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(appointments)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAppointmentsSuccessMessage, appointments)
}

func (ctrl *AppointmentController) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFrom(r)
	if !ok {
		ctrl.Log.Error("AppointmentController.CreateAppointment requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	var payload json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		ctrl.Log.Error("AppointmentController.CreateAppointment error parsing body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx := r.Context()

	appointment, err := ctrl.AppointmentUsecase.CreateAppointment(ctx, payload)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AppointmentController.CreateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.IDString()),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateAppointmentSuccessMessage, appointment)
}

func (ctrl *AppointmentController) UpdateSymptoms(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFrom(r)
	if !ok {
		ctrl.Log.Error("AppointmentController.UpdateSymptoms requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)
	if appointmentID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamAppointmentID))
		return
	}

	request := new(requests.UpdateAppointmentSymptoms)
	if err := decodeAndValidate(r, request); err != nil {
		ctrl.Log.Error("AppointmentController.UpdateSymptoms invalid request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx := r.Context()

	appointment, err := ctrl.AppointmentUsecase.UpdateSymptoms(ctx, appointmentID, request.Symptoms)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateSymptomsSuccessMessage, appointment)
}

func (ctrl *AppointmentController) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFrom(r)
	if !ok {
		ctrl.Log.Error("AppointmentController.CancelAppointment requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)
	if appointmentID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamAppointmentID))
		return
	}

	ctx := r.Context()

	acknowledgement, err := ctrl.AppointmentUsecase.CancelAppointment(ctx, appointmentID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AppointmentController.CancelAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CancelAppointmentSuccessMessage, acknowledgement)
}

// CancelByEmailDate serves POST /appointments/cancel with {"email","date"}
// where date is DD/MM/YYYY.
func (ctrl *AppointmentController) CancelByEmailDate(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFrom(r)
	if !ok {
		ctrl.Log.Error("AppointmentController.CancelByEmailDate requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	request := new(requests.CancelAppointmentByEmailDate)
	if err := decodeAndValidate(r, request); err != nil {
		ctrl.Log.Error("AppointmentController.CancelByEmailDate invalid request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx := r.Context()

	acknowledgements, err := ctrl.AppointmentUsecase.CancelAppointmentByEmailDate(ctx, request.Email, request.Date)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	formattedDate, _ := utils.ReformatExternalDate(request.Date)
	ctrl.Log.Info("AppointmentController.CancelByEmailDate succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentCountKey, len(acknowledgements)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CancelAppointmentsSuccessMessage, responses.CancelAppointments{
		Email:         request.Email,
		FormattedDate: formattedDate,
		Cancelled:     acknowledgements,
	})
}
