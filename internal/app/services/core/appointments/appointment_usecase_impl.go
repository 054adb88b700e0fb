package appointments

import (
	"appointment-booking-service/internal/app/contracts"
	"appointment-booking-service/internal/pkg/constvars"
	"appointment-booking-service/internal/pkg/exceptions"
	"appointment-booking-service/internal/pkg/strapi_dto"
	"appointment-booking-service/internal/pkg/utils"
	"context"
	"errors"
	"net/url"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	skipReasonMissingID  = "backend entry carries no id"
	skipReasonDuplicate  = "duplicate id in backend response"
	skipReasonUnreadable = "attributes could not be decoded"
	skipReasonMismatch   = "email or date differ from the cancellation request"
)

type appointmentUsecase struct {
	AppointmentStrapiClient contracts.AppointmentStrapiClient
	Observer                contracts.CancellationObserver
	Log                     *zap.Logger
}

// NewAppointmentUsecase wires the appointment operations. A nil observer
// falls back to logging cancellation diagnostics through logger.
func NewAppointmentUsecase(
	appointmentStrapiClient contracts.AppointmentStrapiClient,
	observer contracts.CancellationObserver,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	if observer == nil {
		observer = NewZapCancellationObserver(logger)
	}
	return &appointmentUsecase{
		AppointmentStrapiClient: appointmentStrapiClient,
		Observer:                observer,
		Log:                     logger,
	}
}

func (uc *appointmentUsecase) FindByUserEmail(ctx context.Context, email string) ([]strapi_dto.Entry, error) {
	return uc.AppointmentStrapiClient.FindByUserEmail(ctx, email)
}

func (uc *appointmentUsecase) FindByDoctorAndDate(ctx context.Context, doctorID, date string) ([]strapi_dto.Entry, error) {
	return uc.AppointmentStrapiClient.FindByDoctorAndDate(ctx, doctorID, date)
}

func (uc *appointmentUsecase) FindByDoctorName(ctx context.Context, doctorName string) ([]strapi_dto.Entry, error) {
	return uc.AppointmentStrapiClient.FindByDoctorName(ctx, doctorName)
}

func (uc *appointmentUsecase) CreateAppointment(ctx context.Context, payload interface{}) (*strapi_dto.Entry, error) {
	requestID := utils.RequestIDFromContext(ctx)

	appointment, err := uc.AppointmentStrapiClient.CreateAppointment(ctx, payload)
	if err != nil {
		uc.Log.Error("appointmentUsecase.CreateAppointment error booking appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return appointment, nil
}

func (uc *appointmentUsecase) UpdateSymptoms(ctx context.Context, appointmentID string, symptoms interface{}) (*strapi_dto.Entry, error) {
	return uc.AppointmentStrapiClient.UpdateSymptoms(ctx, appointmentID, symptoms)
}

func (uc *appointmentUsecase) CancelAppointment(ctx context.Context, appointmentID string) (*strapi_dto.DeleteAcknowledgement, error) {
	return uc.AppointmentStrapiClient.DeleteByID(ctx, appointmentID)
}

// CancelAppointmentByEmailDate deletes every appointment booked under email
// on date (DD/MM/YYYY). It fails with a no-match error when nothing qualifies
// and issues no delete in that case. Deletes run concurrently and are not
// rolled back when one of them fails.
func (uc *appointmentUsecase) CancelAppointmentByEmailDate(ctx context.Context, email, date string) ([]strapi_dto.DeleteAcknowledgement, error) {
	trace := contracts.CancellationTrace{
		Email:        email,
		EncodedEmail: url.QueryEscape(email),
		OriginalDate: date,
	}
	params := map[string]string{
		constvars.LoggingEmailKey:        email,
		constvars.LoggingOriginalDateKey: date,
	}

	formattedDate, err := utils.ReformatExternalDate(date)
	if err != nil {
		return nil, uc.fail(ctx, trace, err, params)
	}
	trace.FormattedDate = formattedDate
	params[constvars.LoggingFormattedDateKey] = formattedDate

	uc.Observer.OnCancellationRequested(ctx, trace)

	entries, err := uc.AppointmentStrapiClient.FindByEmailAndDate(ctx, email, formattedDate)
	if err != nil {
		return nil, uc.fail(ctx, trace, err, params)
	}
	uc.Observer.OnAppointmentsFetched(ctx, trace, len(entries))

	targets := uc.selectCancellable(ctx, trace, entries)
	if len(targets) == 0 {
		return nil, uc.fail(ctx, trace, exceptions.ErrNoMatchingAppointment(email, formattedDate), params)
	}

	acknowledgements, failed, err := uc.deleteAll(ctx, trace, targets)
	if err != nil {
		params[constvars.LoggingFailedCountKey] = strconv.Itoa(failed)
		params[constvars.LoggingAppointmentCountKey] = strconv.Itoa(len(targets))
		return nil, uc.fail(ctx, trace, err, params)
	}
	return acknowledgements, nil
}

// selectCancellable drops entries without an id, repeated ids and entries
// whose attributes do not equal the request exactly. The backend filter alone is not trusted.
func (uc *appointmentUsecase) selectCancellable(ctx context.Context, trace contracts.CancellationTrace, entries []strapi_dto.Entry) []string {
	seen := make(map[string]struct{}, len(entries))
	targets := make([]string, 0, len(entries))

	for _, entry := range entries {
		appointmentID := entry.IDString()
		if entry.ID == 0 {
			uc.Observer.OnAppointmentSkipped(ctx, trace, appointmentID, skipReasonMissingID)
			continue
		}
		if _, ok := seen[appointmentID]; ok {
			uc.Observer.OnAppointmentSkipped(ctx, trace, appointmentID, skipReasonDuplicate)
			continue
		}
		seen[appointmentID] = struct{}{}

		var attributes strapi_dto.AppointmentAttributes
		if err := entry.DecodeAttributes(&attributes); err != nil {
			uc.Observer.OnAppointmentSkipped(ctx, trace, appointmentID, skipReasonUnreadable)
			continue
		}

		exactMatch := attributes.Email == trace.Email && attributes.Date == trace.FormattedDate
		uc.Observer.OnAppointmentFound(ctx, trace, appointmentID, attributes, exactMatch)
		if !exactMatch {
			uc.Observer.OnAppointmentSkipped(ctx, trace, appointmentID, skipReasonMismatch)
			continue
		}
		targets = append(targets, appointmentID)
	}
	return targets
}

// deleteAll issues one delete per id and waits for every one of them. The
// group has no shared context so a failure does not abort the others.
func (uc *appointmentUsecase) deleteAll(ctx context.Context, trace contracts.CancellationTrace, appointmentIDs []string) ([]strapi_dto.DeleteAcknowledgement, int, error) {
	acknowledgements := make([]strapi_dto.DeleteAcknowledgement, len(appointmentIDs))
	failures := make([]error, len(appointmentIDs))

	var group errgroup.Group
	for i, appointmentID := range appointmentIDs {
		i, appointmentID := i, appointmentID
		uc.Observer.OnDeleteAttempt(ctx, trace, appointmentID)
		group.Go(func() error {
			acknowledgement, err := uc.AppointmentStrapiClient.DeleteByID(ctx, appointmentID)
			if err != nil {
				failures[i] = err
				return err
			}
			acknowledgements[i] = *acknowledgement
			return nil
		})
	}

	firstErr := group.Wait()
	if firstErr == nil {
		return acknowledgements, 0, nil
	}

	failed := 0
	for _, err := range failures {
		if err != nil {
			failed++
		}
	}
	return nil, failed, exceptions.ErrPartialCancellation(firstErr, failed, len(appointmentIDs))
}

func (uc *appointmentUsecase) fail(ctx context.Context, trace contracts.CancellationTrace, err error, params map[string]string) error {
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) && customErr.Operation == "" {
		customErr.WithOperation(constvars.OperationCancelByEmailDate, params)
	}
	uc.Observer.OnCancellationFailed(ctx, trace, err)
	return err
}
