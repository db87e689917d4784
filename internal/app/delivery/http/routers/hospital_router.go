package routers

import (
	"dermacare-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachHospitalRoutes(router chi.Router, hospitalController *controllers.HospitalController) {
	router.Get("/", hospitalController.FindAll)
	router.Post("/", hospitalController.CreateHospital)
	router.Get("/{hospitalID}", hospitalController.FindByID)
}
