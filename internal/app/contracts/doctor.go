package contracts

import (
	"context"
	"dermacare-service/internal/app/models"
	"dermacare-service/internal/pkg/dto/requests"
	"dermacare-service/internal/pkg/dto/responses"
)

type DoctorUsecase interface {
	FindAll(ctx context.Context, query *requests.DoctorQuery) ([]responses.Doctor, error)
	FindByID(ctx context.Context, doctorID string) (*responses.Doctor, error)
	CreateDoctor(ctx context.Context, request *requests.CreateDoctorRequest) (*responses.Doctor, error)
}

type DoctorRepository interface {
	FindAll(ctx context.Context, query *requests.DoctorQuery) ([]models.Doctor, error)
	FindByID(ctx context.Context, doctorID string) (*models.Doctor, error)
	CreateDoctor(ctx context.Context, doctor *models.Doctor) (string, error)
}
