package contracts

import (
	"context"
	"dermacare-service/internal/app/models"
	"dermacare-service/internal/pkg/dto/requests"
	"dermacare-service/internal/pkg/dto/responses"
)

type HospitalUsecase interface {
	FindAll(ctx context.Context, query *requests.HospitalQuery) ([]responses.Hospital, error)
	FindByID(ctx context.Context, hospitalID string) (*responses.Hospital, error)
	CreateHospital(ctx context.Context, request *requests.CreateHospitalRequest) (*responses.Hospital, error)
}

type HospitalRepository interface {
	FindAll(ctx context.Context, query *requests.HospitalQuery) ([]models.Hospital, error)
	FindByID(ctx context.Context, hospitalID string) (*models.Hospital, error)
	CreateHospital(ctx context.Context, hospital *models.Hospital) (string, error)
	IncrementDoctorCount(ctx context.Context, hospitalID string, delta int) error
}
