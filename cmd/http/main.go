package main

import (
	"context"
	"dermacare-service/internal/app/config"
	"dermacare-service/internal/app/delivery/http/controllers"
	"dermacare-service/internal/app/delivery/http/middlewares"
	"dermacare-service/internal/app/delivery/http/routers"
	"dermacare-service/internal/app/drivers/database"
	"dermacare-service/internal/app/drivers/logger"
	"dermacare-service/internal/app/drivers/messaging"
	"dermacare-service/internal/app/services/core/appointments"
	"dermacare-service/internal/app/services/core/chat"
	"dermacare-service/internal/app/services/core/doctors"
	"dermacare-service/internal/app/services/core/hospitals"
	"dermacare-service/internal/app/services/core/symptoms"
	"dermacare-service/internal/app/services/shared/assistant"
	"dermacare-service/internal/app/services/shared/locker"
	"dermacare-service/internal/app/services/shared/notifications"
	sharedredis "dermacare-service/internal/app/services/shared/redis"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	accessLogger := logger.NewLogrusLogger(internalConfig)

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         zapLogger,
		AccessLog:      accessLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests already received by the server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error releasing drivers: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Shared
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)
	lockService := locker.NewLockService(redisRepository, bootstrap.Logger)
	notificationService, err := notifications.NewNotificationService(
		bootstrap.RabbitMQ,
		bootstrap.InternalConfig.App.NotificationQueue,
		bootstrap.Logger,
	)
	if err != nil {
		log.Fatalf("Failed to initialize notification service: %v", err)
	}
	assistantService := assistant.NewAssistantService(bootstrap.InternalConfig.Assistant, bootstrap.Logger)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.AccessLog, bootstrap.InternalConfig)

	// Hospital
	hospitalMongoRepository := hospitals.NewHospitalMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	hospitalUsecase := hospitals.NewHospitalUsecase(hospitalMongoRepository, bootstrap.Logger)
	hospitalController := controllers.NewHospitalController(bootstrap.Logger, bootstrap.InternalConfig, hospitalUsecase)

	// Doctor
	doctorMongoRepository := doctors.NewDoctorMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	doctorUsecase := doctors.NewDoctorUsecase(doctorMongoRepository, hospitalMongoRepository, bootstrap.Logger)
	doctorController := controllers.NewDoctorController(bootstrap.Logger, bootstrap.InternalConfig, doctorUsecase)

	// Appointment
	appointmentMongoRepository, err := appointments.NewAppointmentMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	if err != nil {
		log.Fatalf("Failed to initialize appointment repository: %v", err)
	}
	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentMongoRepository,
		doctorMongoRepository,
		hospitalMongoRepository,
		lockService,
		notificationService,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	appointmentController := controllers.NewAppointmentController(bootstrap.Logger, bootstrap.InternalConfig, appointmentUsecase)

	// Symptom checker
	symptomUsecase := symptoms.NewSymptomUsecase(bootstrap.Logger)
	symptomController := controllers.NewSymptomController(bootstrap.Logger, bootstrap.InternalConfig, symptomUsecase)

	// Chat assistant
	chatUsecase := chat.NewChatUsecase(assistantService, bootstrap.Logger)
	chatController := controllers.NewChatController(bootstrap.Logger, bootstrap.InternalConfig, chatUsecase)

	// Health
	healthController := controllers.NewHealthController()

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		hospitalController,
		doctorController,
		appointmentController,
		symptomController,
		chatController,
		healthController,
	)
}
