package main

import (
	"appointment-booking-service/internal/app/config"
	"appointment-booking-service/internal/app/delivery/http/controllers"
	"appointment-booking-service/internal/app/delivery/http/middlewares"
	"appointment-booking-service/internal/app/delivery/http/routers"
	"appointment-booking-service/internal/app/drivers/logger"
	"appointment-booking-service/internal/app/services/core/appointments"
	"appointment-booking-service/internal/app/services/strapi"
	strapi_appointments "appointment-booking-service/internal/app/services/strapi/appointments"
	strapi_campaigns "appointment-booking-service/internal/app/services/strapi/campaigns"
	strapi_categories "appointment-booking-service/internal/app/services/strapi/categories"
	strapi_doctors "appointment-booking-service/internal/app/services/strapi/doctors"
	strapi_galleries "appointment-booking-service/internal/app/services/strapi/galleries"
	strapi_patient_symptoms "appointment-booking-service/internal/app/services/strapi/patient_symptoms"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	if err := internalConfig.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zapLogger, err := logger.NewZapLogger(driverConfig, internalConfig)
	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		zapLogger.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Logger:         zapLogger,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}
	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:              internalConfig.App.Port,
		Handler:           bootstrap.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zapLogger.Info("Server started", zap.String("addr", server.Addr))
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	zapLogger.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	zapLogger.Info("Server exiting")

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) {
	// Strapi
	resourceClient := strapi.NewResourceClient(bootstrap.InternalConfig.Strapi, bootstrap.Logger)
	appointmentStrapiClient := strapi_appointments.NewAppointmentStrapiClient(resourceClient)
	doctorStrapiClient := strapi_doctors.NewDoctorStrapiClient(resourceClient)
	categoryStrapiClient := strapi_categories.NewCategoryStrapiClient(resourceClient)
	campaignStrapiClient := strapi_campaigns.NewCampaignStrapiClient(resourceClient)
	galleryStrapiClient := strapi_galleries.NewGalleryStrapiClient(resourceClient)
	patientSymptomStrapiClient := strapi_patient_symptoms.NewPatientSymptomStrapiClient(resourceClient)

	// Usecases
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentStrapiClient, nil, bootstrap.Logger)

	// Controllers
	appointmentController := controllers.NewAppointmentController(bootstrap.Logger, appointmentUsecase)
	doctorController := controllers.NewDoctorController(bootstrap.Logger, doctorStrapiClient)
	catalogController := controllers.NewCatalogController(bootstrap.Logger, categoryStrapiClient, campaignStrapiClient, galleryStrapiClient)
	patientSymptomController := controllers.NewPatientSymptomController(bootstrap.Logger, patientSymptomStrapiClient)

	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		appointmentController,
		doctorController,
		catalogController,
		patientSymptomController,
	)
}
