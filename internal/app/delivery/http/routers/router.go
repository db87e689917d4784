package routers

import (
	"dermacare-service/internal/app/config"
	"dermacare-service/internal/app/delivery/http/controllers"
	"dermacare-service/internal/app/delivery/http/middlewares"
	"dermacare-service/internal/pkg/exceptions"
	"dermacare-service/internal/pkg/utils"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	hospitalController *controllers.HospitalController,
	doctorController *controllers.DoctorController,
	appointmentController *controllers.AppointmentController,
	symptomController *controllers.SymptomController,
	chatController *controllers.ChatController,
	healthController *controllers.HealthController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{internalConfig.App.FrontendURL},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.RequestLogger(internalConfig.App))
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.BuildErrorResponse(middlewares.Log, w, exceptions.ErrRouteNotFound(fmt.Errorf("no route for %s %s", r.Method, r.URL.Path)))
	})

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Get("/health", healthController.Check)

		r.Route("/hospitals", func(r chi.Router) {
			attachHospitalRoutes(r, hospitalController)
		})

		r.Route("/doctors", func(r chi.Router) {
			attachDoctorRoutes(r, doctorController)
		})

		r.Route("/appointments", func(r chi.Router) {
			attachAppointmentRoutes(r, appointmentController)
		})

		r.Route("/symptoms", func(r chi.Router) {
			attachSymptomRoutes(r, symptomController)
		})

		r.Route("/chat", func(r chi.Router) {
			attachChatRoutes(r, chatController)
		})
	})
}
