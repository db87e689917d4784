package contracts

import (
	"context"
	"dermacare-service/internal/app/models"
	"dermacare-service/internal/pkg/dto/requests"
	"dermacare-service/internal/pkg/dto/responses"
	"time"
)

type AppointmentUsecase interface {
	FindAll(ctx context.Context, query *requests.AppointmentQuery) ([]responses.Appointment, error)
	FindByID(ctx context.Context, appointmentID string) (*responses.Appointment, error)
	CreateAppointment(ctx context.Context, request *requests.CreateAppointmentRequest) (*responses.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, appointmentID string, request *requests.UpdateAppointmentStatusRequest) (*responses.Appointment, error)
}

type AppointmentRepository interface {
	FindAll(ctx context.Context, query *requests.AppointmentQuery) ([]models.Appointment, error)
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	// HasActiveAppointment reports whether an active appointment occupies
	// the exact (doctorID, date, timeSlot) tuple.
	HasActiveAppointment(ctx context.Context, doctorID string, date time.Time, timeSlot string) (bool, error)
	// CreateAppointment inserts the record. A duplicate active slot is
	// rejected by the collection's partial unique index and surfaces as a
	// conflict error.
	CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error)
	UpdateStatus(ctx context.Context, appointmentID, status string, active bool) (*models.Appointment, error)
}
