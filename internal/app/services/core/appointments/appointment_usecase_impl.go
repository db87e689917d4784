package appointments

import (
	"context"
	"dermacare-service/internal/app/config"
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

const (
	eventAppointmentCreated       = "appointment.created"
	eventAppointmentStatusChanged = "appointment.status_changed"
)

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	DoctorRepository      contracts.DoctorRepository
	HospitalRepository    contracts.HospitalRepository
	LockService           contracts.LockerService
	NotificationService   contracts.NotificationService
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	doctorRepository contracts.DoctorRepository,
	hospitalRepository contracts.HospitalRepository,
	lockService contracts.LockerService,
	notificationService contracts.NotificationService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	return &appointmentUsecase{
		AppointmentRepository: appointmentRepository,
		DoctorRepository:      doctorRepository,
		HospitalRepository:    hospitalRepository,
		LockService:           lockService,
		NotificationService:   notificationService,
		InternalConfig:        internalConfig,
		Log:                   logger,
	}
}

func (uc *appointmentUsecase) FindAll(ctx context.Context, query *requests.AppointmentQuery) ([]responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	appointments, err := uc.AppointmentRepository.FindAll(ctx, query)
	if err != nil {
		uc.Log.Error("appointmentUsecase.FindAll error fetching appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	doctorCache := make(map[string]*models.Doctor)
	hospitalCache := make(map[string]*models.Hospital)

	response := make([]responses.Appointment, len(appointments))
	for i, eachAppointment := range appointments {
		doctor, hospital, err := uc.resolveReferences(ctx, &eachAppointment, doctorCache, hospitalCache)
		if err != nil {
			return nil, err
		}
		response[i] = buildAppointmentResponse(&eachAppointment, doctor, hospital, false)
	}
	return response, nil
}

func (uc *appointmentUsecase) FindByID(ctx context.Context, appointmentID string) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.FindByID error fetching appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotExist(fmt.Errorf("appointment %s not found", appointmentID))
	}

	doctor, hospital, err := uc.resolveReferences(ctx, appointment, nil, nil)
	if err != nil {
		return nil, err
	}

	response := buildAppointmentResponse(appointment, doctor, hospital, true)
	return &response, nil
}

func (uc *appointmentUsecase) CreateAppointment(ctx context.Context, request *requests.CreateAppointmentRequest) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
		zap.String(constvars.LoggingTimeSlotKey, request.TimeSlot),
	)

	doctor, err := uc.DoctorRepository.FindByID(ctx, request.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotExist(fmt.Errorf("doctor %s not found", request.DoctorID))
	}

	hospital, err := uc.HospitalRepository.FindByID(ctx, request.HospitalID)
	if err != nil {
		return nil, err
	}
	if hospital == nil {
		return nil, exceptions.ErrHospitalNotExist(fmt.Errorf("hospital %s not found", request.HospitalID))
	}

	appointmentDate, err := time.Parse(constvars.DateLayoutYYYYMMDD, request.AppointmentDate)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	// the lock narrows the insert window; the partial unique index is
	// what actually guarantees slot uniqueness
	lockKey := fmt.Sprintf(constvars.SlotLockKeyFormat, request.DoctorID, request.AppointmentDate, request.TimeSlot)
	lockTTL := time.Duration(uc.InternalConfig.App.SlotLockTTLInSeconds) * time.Second
	acquired, lockValue, err := uc.LockService.TryLock(ctx, lockKey, lockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrSlotLockNotAcquired(fmt.Errorf("slot lock %s held by another request", lockKey))
	}
	defer func() {
		if unlockErr := uc.LockService.Unlock(ctx, lockKey, lockValue); unlockErr != nil {
			uc.Log.Warn("appointmentUsecase.CreateAppointment error releasing slot lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, lockKey),
				zap.Error(unlockErr),
			)
		}
	}()

	taken, err := uc.AppointmentRepository.HasActiveAppointment(ctx, request.DoctorID, appointmentDate, request.TimeSlot)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, exceptions.ErrSlotAlreadyBooked(fmt.Errorf("slot %s already has an active appointment", lockKey))
	}

	now := time.Now()
	appointment := &models.Appointment{
		PatientName:     request.PatientName,
		PatientEmail:    request.PatientEmail,
		PatientPhone:    request.PatientPhone,
		DoctorID:        request.DoctorID,
		HospitalID:      request.HospitalID,
		AppointmentDate: appointmentDate,
		TimeSlot:        request.TimeSlot,
		Type:            request.Type,
		Status:          models.AppointmentStatusScheduled,
		Active:          true,
		Reason:          request.Reason,
		Notes:           request.Notes,
		MeetingLink:     request.MeetingLink,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	appointmentID, err := uc.AppointmentRepository.CreateAppointment(ctx, appointment)
	if err != nil {
		uc.Log.Error("appointmentUsecase.CreateAppointment error inserting appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	appointment.ID = appointmentID

	uc.Log.Info("appointmentUsecase.CreateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	uc.publishEvent(ctx, eventAppointmentCreated, appointment)

	response := buildAppointmentResponse(appointment, doctor, hospital, true)
	return &response, nil
}

func (uc *appointmentUsecase) UpdateAppointmentStatus(ctx context.Context, appointmentID string, request *requests.UpdateAppointmentStatusRequest) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.UpdateAppointmentStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingStatusKey, request.Status),
	)

	active := models.IsActiveStatus(request.Status)
	appointment, err := uc.AppointmentRepository.UpdateStatus(ctx, appointmentID, request.Status, active)
	if err != nil {
		uc.Log.Error("appointmentUsecase.UpdateAppointmentStatus error updating appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotExist(fmt.Errorf("appointment %s not found", appointmentID))
	}

	uc.publishEvent(ctx, eventAppointmentStatusChanged, appointment)

	doctor, hospital, err := uc.resolveReferences(ctx, appointment, nil, nil)
	if err != nil {
		return nil, err
	}

	response := buildAppointmentResponse(appointment, doctor, hospital, true)
	return &response, nil
}

// publishEvent is best-effort: a broker outage must not fail the booking.
func (uc *appointmentUsecase) publishEvent(ctx context.Context, eventName string, appointment *models.Appointment) {
	if uc.NotificationService == nil {
		return
	}

	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	event := &contracts.AppointmentEvent{
		Event:           eventName,
		AppointmentID:   appointment.ID,
		DoctorID:        appointment.DoctorID,
		HospitalID:      appointment.HospitalID,
		PatientEmail:    appointment.PatientEmail,
		AppointmentDate: appointment.AppointmentDate.Format(constvars.DateLayoutYYYYMMDD),
		TimeSlot:        appointment.TimeSlot,
		Status:          appointment.Status,
	}
	if err := uc.NotificationService.PublishAppointmentEvent(ctx, event); err != nil {
		uc.Log.Warn("appointmentUsecase.publishEvent error publishing appointment event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
			zap.Error(err),
		)
	}
}

func (uc *appointmentUsecase) resolveReferences(
	ctx context.Context,
	appointment *models.Appointment,
	doctorCache map[string]*models.Doctor,
	hospitalCache map[string]*models.Hospital,
) (*models.Doctor, *models.Hospital, error) {
	var doctor *models.Doctor
	var hospital *models.Hospital
	var err error

	if doctorCache != nil {
		doctor = doctorCache[appointment.DoctorID]
	}
	if doctor == nil {
		doctor, err = uc.DoctorRepository.FindByID(ctx, appointment.DoctorID)
		if err != nil {
			return nil, nil, err
		}
		if doctorCache != nil {
			doctorCache[appointment.DoctorID] = doctor
		}
	}

	if hospitalCache != nil {
		hospital = hospitalCache[appointment.HospitalID]
	}
	if hospital == nil {
		hospital, err = uc.HospitalRepository.FindByID(ctx, appointment.HospitalID)
		if err != nil {
			return nil, nil, err
		}
		if hospitalCache != nil {
			hospitalCache[appointment.HospitalID] = hospital
		}
	}

	return doctor, hospital, nil
}

func buildAppointmentResponse(appointment *models.Appointment, doctor *models.Doctor, hospital *models.Hospital, detail bool) responses.Appointment {
	response := responses.Appointment{
		ID:              appointment.ID,
		PatientName:     appointment.PatientName,
		PatientEmail:    appointment.PatientEmail,
		PatientPhone:    appointment.PatientPhone,
		AppointmentDate: appointment.AppointmentDate.Format(constvars.DateLayoutYYYYMMDD),
		TimeSlot:        appointment.TimeSlot,
		Type:            appointment.Type,
		Status:          appointment.Status,
		Reason:          appointment.Reason,
		Notes:           appointment.Notes,
		MeetingLink:     appointment.MeetingLink,
		CreatedAt:       appointment.CreatedAt,
		UpdatedAt:       appointment.UpdatedAt,
	}

	if doctor != nil {
		response.Doctor = responses.DoctorSummary{
			ID:        doctor.ID,
			Name:      doctor.Name,
			Specialty: doctor.Specialty,
		}
		if detail {
			response.Doctor.Hours = doctor.Hours
		}
	}
	if hospital != nil {
		response.Hospital = responses.HospitalSummary{
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
