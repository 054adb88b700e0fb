package routers

import (
	"appointment-booking-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachPatientSymptomRoutes(router chi.Router, patientSymptomController *controllers.PatientSymptomController) {
	router.Get("/", patientSymptomController.FindByEmail)
	router.Post("/", patientSymptomController.Save)
}
