package appointments

import (
	"appointment-booking-service/internal/app/contracts"
	"appointment-booking-service/internal/pkg/constvars"
	"appointment-booking-service/internal/pkg/strapi_dto"
	"appointment-booking-service/internal/pkg/utils"
	"context"

	"go.uber.org/zap"
)

type zapCancellationObserver struct {
	Log *zap.Logger
}

func NewZapCancellationObserver(logger *zap.Logger) contracts.CancellationObserver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &zapCancellationObserver{Log: logger}
}

func (o *zapCancellationObserver) traceFields(ctx context.Context, trace contracts.CancellationTrace) []zap.Field {
	return []zap.Field{
		zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
		zap.String(constvars.LoggingEmailKey, trace.Email),
		zap.String(constvars.LoggingEncodedEmailKey, trace.EncodedEmail),
		zap.String(constvars.LoggingOriginalDateKey, trace.OriginalDate),
		zap.String(constvars.LoggingFormattedDateKey, trace.FormattedDate),
	}
}

func (o *zapCancellationObserver) OnCancellationRequested(ctx context.Context, trace contracts.CancellationTrace) {
	o.Log.Info("appointmentUsecase.CancelAppointmentByEmailDate called", o.traceFields(ctx, trace)...)
}

func (o *zapCancellationObserver) OnAppointmentsFetched(ctx context.Context, trace contracts.CancellationTrace, count int) {
	fields := append(o.traceFields(ctx, trace), zap.Int(constvars.LoggingAppointmentCountKey, count))
	o.Log.Info("appointmentUsecase.CancelAppointmentByEmailDate appointments fetched", fields...)
}

func (o *zapCancellationObserver) OnAppointmentFound(ctx context.Context, trace contracts.CancellationTrace, appointmentID string, attributes strapi_dto.AppointmentAttributes, exactMatch bool) {
	fields := append(o.traceFields(ctx, trace),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.Any(constvars.LoggingPayloadKey, attributes),
		zap.Bool(constvars.LoggingExactMatchKey, exactMatch),
	)
	o.Log.Debug("appointmentUsecase.CancelAppointmentByEmailDate appointment found", fields...)
}

func (o *zapCancellationObserver) OnAppointmentSkipped(ctx context.Context, trace contracts.CancellationTrace, appointmentID, reason string) {
	fields := append(o.traceFields(ctx, trace),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String("reason", reason),
	)
	o.Log.Warn("appointmentUsecase.CancelAppointmentByEmailDate appointment skipped", fields...)
}

func (o *zapCancellationObserver) OnDeleteAttempt(ctx context.Context, trace contracts.CancellationTrace, appointmentID string) {
	fields := append(o.traceFields(ctx, trace), zap.String(constvars.LoggingAppointmentIDKey, appointmentID))
	o.Log.Info("appointmentUsecase.CancelAppointmentByEmailDate deleting appointment", fields...)
}

func (o *zapCancellationObserver) OnCancellationFailed(ctx context.Context, trace contracts.CancellationTrace, err error) {
	fields := append(o.traceFields(ctx, trace), zap.Error(err))
	o.Log.Error("appointmentUsecase.CancelAppointmentByEmailDate failed", fields...)
}
