package routers

import (
	"dermacare-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, doctorController *controllers.DoctorController) {
	router.Get("/", doctorController.FindAll)
	router.Post("/", doctorController.CreateDoctor)
	router.Get("/{doctorID}", doctorController.FindByID)
}
