package routers

import (
	"appointment-booking-service/internal/app/config"
	"appointment-booking-service/internal/app/delivery/http/controllers"
	"appointment-booking-service/internal/app/delivery/http/middlewares"
	"appointment-booking-service/internal/pkg/constvars"
	"fmt"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	appointmentController *controllers.AppointmentController,
	doctorController *controllers.DoctorController,
	catalogController *controllers.CatalogController,
	patientSymptomController *controllers.PatientSymptomController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{constvars.MethodGet, constvars.MethodPost, constvars.MethodPut, constvars.MethodDelete, "OPTIONS"},
		AllowedHeaders:   []string{constvars.HeaderAccept, constvars.HeaderAuthorization, constvars.HeaderContentType, constvars.HeaderXRequestID},
		ExposedHeaders:   []string{constvars.HeaderXRequestID},
		AllowCredentials: false,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.RateLimit())
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/appointments", func(r chi.Router) {
				attachAppointmentRoutes(r, appointmentController)
			})

			r.Route("/doctors", func(r chi.Router) {
				attachDoctorRoutes(r, doctorController)
			})

			r.Route("/patient-symptoms", func(r chi.Router) {
				attachPatientSymptomRoutes(r, patientSymptomController)
			})

			attachCatalogRoutes(r, catalogController)
		})
	})
}
