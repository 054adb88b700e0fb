package routers

import (
	"appointment-booking-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, doctorController *controllers.DoctorController) {
	router.Get("/", doctorController.FindAll)
	router.Get("/{doctorID}", doctorController.FindByID)
}
