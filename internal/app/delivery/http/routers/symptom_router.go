package routers

import (
	"dermacare-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachSymptomRoutes(router chi.Router, symptomController *controllers.SymptomController) {
	router.Get("/categories", symptomController.Categories)
	router.Post("/analyze", symptomController.Analyze)
}
