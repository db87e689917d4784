package doctors

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

type doctorUsecase struct {
	DoctorRepository   contracts.DoctorRepository
	HospitalRepository contracts.HospitalRepository
	Log                *zap.Logger
}

func NewDoctorUsecase(
	doctorRepository contracts.DoctorRepository,
	hospitalRepository contracts.HospitalRepository,
	logger *zap.Logger,
) contracts.DoctorUsecase {
	return &doctorUsecase{
		DoctorRepository:   doctorRepository,
		HospitalRepository: hospitalRepository,
		Log:                logger,
	}
}

func (uc *doctorUsecase) FindAll(ctx context.Context, query *requests.DoctorQuery) ([]responses.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingHospitalIDKey, query.HospitalID),
	)

	doctors, err := uc.DoctorRepository.FindAll(ctx, query)
	if err != nil {
		uc.Log.Error("doctorUsecase.FindAll error fetching doctors",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	hospitalCache := make(map[string]*models.Hospital)

	response := make([]responses.Doctor, len(doctors))
	for i, eachDoctor := range doctors {
		hospital, ok := hospitalCache[eachDoctor.HospitalID]
		if !ok {
			hospital, err = uc.HospitalRepository.FindByID(ctx, eachDoctor.HospitalID)
			if err != nil {
				return nil, err
			}
			hospitalCache[eachDoctor.HospitalID] = hospital
		}
		response[i] = buildDoctorResponse(&eachDoctor, hospital, false)
	}
	return response, nil
}

func (uc *doctorUsecase) FindByID(ctx context.Context, doctorID string) (*responses.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		uc.Log.Error("doctorUsecase.FindByID error fetching doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotExist(fmt.Errorf("doctor %s not found", doctorID))
	}

	hospital, err := uc.HospitalRepository.FindByID(ctx, doctor.HospitalID)
	if err != nil {
		uc.Log.Error("doctorUsecase.FindByID error fetching doctor hospital",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := buildDoctorResponse(doctor, hospital, true)
	return &response, nil
}

func (uc *doctorUsecase) CreateDoctor(ctx context.Context, request *requests.CreateDoctorRequest) (*responses.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.CreateDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingHospitalIDKey, request.HospitalID),
	)

	hospital, err := uc.HospitalRepository.FindByID(ctx, request.HospitalID)
	if err != nil {
		uc.Log.Error("doctorUsecase.CreateDoctor error fetching hospital",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if hospital == nil {
		return nil, exceptions.ErrHospitalNotExist(fmt.Errorf("hospital %s not found", request.HospitalID))
	}

	status := request.Status
	if status == "" {
		status = models.DoctorStatusAvailable
	}
	hours := request.Hours
	if hours == "" {
		hours = models.DefaultDoctorHours
	}

	now := time.Now()
	doctor := &models.Doctor{
		HospitalID: request.HospitalID,
		Name:       request.Name,
		Specialty:  request.Specialty,
		Experience: request.Experience,
		Rating:     request.Rating,
		Status:     status,
		Hours:      hours,
		Expertise:  request.Expertise,
		Education:  request.Education,
		Image:      request.Image,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	if request.ConsultationFee != nil {
		doctor.ConsultationFee = &models.ConsultationFee{
			InPerson:     request.ConsultationFee.InPerson,
			Telemedicine: request.ConsultationFee.Telemedicine,
		}
	}

	doctorID, err := uc.DoctorRepository.CreateDoctor(ctx, doctor)
	if err != nil {
		uc.Log.Error("doctorUsecase.CreateDoctor error inserting doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	doctor.ID = doctorID

	// keep the hospital card count roughly in sync; the booking flow does
	// not depend on this number
	if err := uc.HospitalRepository.IncrementDoctorCount(ctx, request.HospitalID, 1); err != nil {
		uc.Log.Warn("doctorUsecase.CreateDoctor error incrementing hospital doctor count",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingHospitalIDKey, request.HospitalID),
			zap.Error(err),
		)
	}

	uc.Log.Info("doctorUsecase.CreateDoctor succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	response := buildDoctorResponse(doctor, hospital, true)
	return &response, nil
}

// buildDoctorResponse attaches the hospital summary when available; the
// detail projection additionally carries the hospital phone number.
func buildDoctorResponse(doctor *models.Doctor, hospital *models.Hospital, detail bool) responses.Doctor {
	response := responses.Doctor{
		ID:         doctor.ID,
		Name:       doctor.Name,
		Specialty:  doctor.Specialty,
		Experience: doctor.Experience,
		Rating:     doctor.Rating,
		Status:     doctor.Status,
		Hours:      doctor.Hours,
		Expertise:  doctor.Expertise,
		Education:  doctor.Education,
		Image:      doctor.Image,
	}
	if doctor.ConsultationFee != nil {
		response.ConsultationFee = &responses.ConsultationFee{
			InPerson:     doctor.ConsultationFee.InPerson,
			Telemedicine: doctor.ConsultationFee.Telemedicine,
		}
	}
	if hospital != nil {
		response.Hospital = &responses.HospitalSummary{
			ID:      hospital.ID,
			Name:    hospital.Name,
			Address: hospital.Address,
			City:    hospital.City,
		}
		if detail {
			response.Hospital.Phone = hospital.Phone
		}
	}
	return response
}
