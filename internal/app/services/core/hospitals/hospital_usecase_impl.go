package hospitals

import (
	"context"
	"dermacare-service/internal/app/contracts"
	"dermacare-service/internal/app/models"
	"dermacare-service/internal/pkg/constvars"
	"dermacare-service/internal/pkg/dto/requests"
	"dermacare-service/internal/pkg/dto/responses"
	"dermacare-service/internal/pkg/exceptions"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type hospitalUsecase struct {
	HospitalRepository contracts.HospitalRepository
	Log                *zap.Logger
}

func NewHospitalUsecase(
	hospitalRepository contracts.HospitalRepository,
	logger *zap.Logger,
) contracts.HospitalUsecase {
	return &hospitalUsecase{
		HospitalRepository: hospitalRepository,
		Log:                logger,
	}
}

func (uc *hospitalUsecase) FindAll(ctx context.Context, query *requests.HospitalQuery) ([]responses.Hospital, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("hospitalUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryKey, query.Search),
	)

	hospitals, err := uc.HospitalRepository.FindAll(ctx, query)
	if err != nil {
		uc.Log.Error("hospitalUsecase.FindAll error fetching hospitals",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := make([]responses.Hospital, len(hospitals))
	for i, eachHospital := range hospitals {
		response[i] = buildHospitalResponse(&eachHospital)
	}
	return response, nil
}

func (uc *hospitalUsecase) FindByID(ctx context.Context, hospitalID string) (*responses.Hospital, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("hospitalUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingHospitalIDKey, hospitalID),
	)

	hospital, err := uc.HospitalRepository.FindByID(ctx, hospitalID)
	if err != nil {
		uc.Log.Error("hospitalUsecase.FindByID error fetching hospital",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if hospital == nil {
		return nil, exceptions.ErrHospitalNotExist(fmt.Errorf("hospital %s not found", hospitalID))
	}

	response := buildHospitalResponse(hospital)
	return &response, nil
}

func (uc *hospitalUsecase) CreateHospital(ctx context.Context, request *requests.CreateHospitalRequest) (*responses.Hospital, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("hospitalUsecase.CreateHospital called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	now := time.Now()
	hospital := &models.Hospital{
		Name:        request.Name,
		Address:     request.Address,
		City:        request.City,
		State:       request.State,
		ZipCode:     request.ZipCode,
		Rating:      request.Rating,
		Specialties: request.Specialties,
		Phone:       request.Phone,
		Website:     request.Website,
		Image:       request.Image,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	hospitalID, err := uc.HospitalRepository.CreateHospital(ctx, hospital)
	if err != nil {
		uc.Log.Error("hospitalUsecase.CreateHospital error inserting hospital",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	hospital.ID = hospitalID

	uc.Log.Info("hospitalUsecase.CreateHospital succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingHospitalIDKey, hospitalID),
	)

	response := buildHospitalResponse(hospital)
	return &response, nil
}

func buildHospitalResponse(hospital *models.Hospital) responses.Hospital {
	return responses.Hospital{
		ID:          hospital.ID,
		Name:        hospital.Name,
		Address:     hospital.Address,
		City:        hospital.City,
		State:       hospital.State,
		ZipCode:     hospital.ZipCode,
		Rating:      hospital.Rating,
		DoctorCount: hospital.DoctorCount,
		Specialties: hospital.Specialties,
		Phone:       hospital.Phone,
		Website:     hospital.Website,
		Image:       hospital.Image,
	}
}
