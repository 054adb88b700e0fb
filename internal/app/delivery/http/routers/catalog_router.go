package routers

import (
	"appointment-booking-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachCatalogRoutes(router chi.Router, catalogController *controllers.CatalogController) {
	router.Get("/categories", catalogController.FindAllCategories)
	router.Get("/campaigns", catalogController.FindAllCampaigns)
	router.Get("/galleries", catalogController.FindAllGalleries)
}
