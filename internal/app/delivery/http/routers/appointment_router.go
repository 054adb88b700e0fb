package routers

import (
	"appointment-booking-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, appointmentController *controllers.AppointmentController) {
	router.Get("/", appointmentController.Find)
	router.Post("/", appointmentController.CreateAppointment)
	router.Post("/cancel", appointmentController.CancelByEmailDate)
	router.Delete("/{appointmentID}", appointmentController.CancelAppointment)
	router.Put("/{appointmentID}/symptoms", appointmentController.UpdateSymptoms)
}
