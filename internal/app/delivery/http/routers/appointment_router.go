package routers

import (
	"dermacare-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, appointmentController *controllers.AppointmentController) {
	router.Get("/", appointmentController.FindAll)
	router.Post("/", appointmentController.CreateAppointment)
	router.Get("/{appointmentID}", appointmentController.FindByID)
	router.Patch("/{appointmentID}/status", appointmentController.UpdateStatus)
}
