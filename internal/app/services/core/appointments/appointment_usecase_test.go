package appointments

import (
	"context"
	"dermacare-service/internal/app/config"
	"dermacare-service/internal/app/contracts"
	"dermacare-service/internal/app/models"
	"dermacare-service/internal/pkg/constvars"
	"dermacare-service/internal/pkg/dto/requests"
	"dermacare-service/internal/pkg/exceptions"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) FindAll(ctx context.Context, query *requests.AppointmentQuery) ([]models.Appointment, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	args := m.Called(ctx, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) HasActiveAppointment(ctx context.Context, doctorID string, date time.Time, timeSlot string) (bool, error) {
	args := m.Called(ctx, doctorID, date, timeSlot)
	return args.Bool(0), args.Error(1)
}

func (m *MockAppointmentRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error) {
	args := m.Called(ctx, appointment)
	return args.String(0), args.Error(1)
}

func (m *MockAppointmentRepository) UpdateStatus(ctx context.Context, appointmentID, status string, active bool) (*models.Appointment, error) {
	args := m.Called(ctx, appointmentID, status, active)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

type MockDoctorRepository struct {
	mock.Mock
}

func (m *MockDoctorRepository) FindAll(ctx context.Context, query *requests.DoctorQuery) ([]models.Doctor, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	args := m.Called(ctx, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) CreateDoctor(ctx context.Context, doctor *models.Doctor) (string, error) {
	args := m.Called(ctx, doctor)
	return args.String(0), args.Error(1)
}

type MockHospitalRepository struct {
	mock.Mock
}

func (m *MockHospitalRepository) FindAll(ctx context.Context, query *requests.HospitalQuery) ([]models.Hospital, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Hospital), args.Error(1)
}

func (m *MockHospitalRepository) FindByID(ctx context.Context, hospitalID string) (*models.Hospital, error) {
	args := m.Called(ctx, hospitalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Hospital), args.Error(1)
}

func (m *MockHospitalRepository) CreateHospital(ctx context.Context, hospital *models.Hospital) (string, error) {
	args := m.Called(ctx, hospital)
	return args.String(0), args.Error(1)
}

func (m *MockHospitalRepository) IncrementDoctorCount(ctx context.Context, hospitalID string, delta int) error {
	args := m.Called(ctx, hospitalID, delta)
	return args.Error(0)
}

type MockLockerService struct {
	mock.Mock
}

func (m *MockLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *MockLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	args := m.Called(ctx, key, lockValue)
	return args.Error(0)
}

type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) PublishAppointmentEvent(ctx context.Context, event *contracts.AppointmentEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

const (
	testDoctorID      = "64a1f0c2e1b2c3d4e5f60718"
	testHospitalID    = "64a1f0c2e1b2c3d4e5f60719"
	testAppointmentID = "64a1f0c2e1b2c3d4e5f6071a"
)

func newTestUsecase(
	appointmentRepo *MockAppointmentRepository,
	doctorRepo *MockDoctorRepository,
	hospitalRepo *MockHospitalRepository,
	lockService *MockLockerService,
	notificationService *MockNotificationService,
) contracts.AppointmentUsecase {
	internalConfig := &config.InternalConfig{
		App: config.App{SlotLockTTLInSeconds: 5},
	}
	return NewAppointmentUsecase(
		appointmentRepo,
		doctorRepo,
		hospitalRepo,
		lockService,
		notificationService,
		internalConfig,
		zap.NewNop(),
	)
}

func validCreateRequest() *requests.CreateAppointmentRequest {
	return &requests.CreateAppointmentRequest{
		PatientName:     "Asha Verma",
		PatientEmail:    "asha@example.com",
		PatientPhone:    "+91-98765-43210",
		DoctorID:        testDoctorID,
		HospitalID:      testHospitalID,
		AppointmentDate: "2026-10-15",
		TimeSlot:        "10:00",
		Type:            models.AppointmentTypeInPerson,
	}
}

func testDoctor() *models.Doctor {
	return &models.Doctor{
		ID:         testDoctorID,
		HospitalID: testHospitalID,
		Name:       "Dr. Rajesh Sharma",
		Specialty:  "General Dermatology",
		Hours:      "09:00-17:00",
	}
}

func testHospital() *models.Hospital {
	return &models.Hospital{
		ID:      testHospitalID,
		Name:    "Apollo Dermatology Center",
		Address: "15 MG Road, Connaught Place",
		City:    "New Delhi",
		Phone:   "011-2345-6789",
	}
}

func TestAppointmentUsecase_CreateAppointment(t *testing.T) {
	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "test-request-id")

	t.Run("books the slot and returns a scheduled appointment", func(t *testing.T) {
		appointmentRepo := new(MockAppointmentRepository)
		doctorRepo := new(MockDoctorRepository)
		hospitalRepo := new(MockHospitalRepository)
		lockService := new(MockLockerService)
		notificationService := new(MockNotificationService)

		doctorRepo.On("FindByID", mock.Anything, testDoctorID).Return(testDoctor(), nil)
		hospitalRepo.On("FindByID", mock.Anything, testHospitalID).Return(testHospital(), nil)
		lockService.On("TryLock", mock.Anything, mock.AnythingOfType("string"), 5*time.Second).Return(true, "lock-value", nil)
		lockService.On("Unlock", mock.Anything, mock.AnythingOfType("string"), "lock-value").Return(nil)
		appointmentRepo.On("HasActiveAppointment", mock.Anything, testDoctorID, mock.AnythingOfType("time.Time"), "10:00").Return(false, nil)
		appointmentRepo.On("CreateAppointment", mock.Anything, mock.AnythingOfType("*models.Appointment")).Return(testAppointmentID, nil)
		notificationService.On("PublishAppointmentEvent", mock.Anything, mock.AnythingOfType("*contracts.AppointmentEvent")).Return(nil)

		uc := newTestUsecase(appointmentRepo, doctorRepo, hospitalRepo, lockService, notificationService)

		response, err := uc.CreateAppointment(ctx, validCreateRequest())

		assert.NoError(t, err)
		assert.NotNil(t, response)
		assert.Equal(t, testAppointmentID, response.ID)
		assert.Equal(t, models.AppointmentStatusScheduled, response.Status)
		assert.Equal(t, "2026-10-15", response.AppointmentDate)
		assert.Equal(t, "Dr. Rajesh Sharma", response.Doctor.Name)
		assert.Equal(t, "Apollo Dermatology Center", response.Hospital.Name)

		inserted := appointmentRepo.Calls[1].Arguments.Get(1).(*models.Appointment)
		assert.True(t, inserted.Active)
		assert.Equal(t, models.AppointmentStatusScheduled, inserted.Status)

		appointmentRepo.AssertExpectations(t)
		lockService.AssertExpectations(t)
		notificationService.AssertExpectations(t)
	})

	t.Run("returns conflict when the slot already has an active appointment", func(t *testing.T) {
		appointmentRepo := new(MockAppointmentRepository)
		doctorRepo := new(MockDoctorRepository)
		hospitalRepo := new(MockHospitalRepository)
		lockService := new(MockLockerService)
		notificationService := new(MockNotificationService)

		doctorRepo.On("FindByID", mock.Anything, testDoctorID).Return(testDoctor(), nil)
		hospitalRepo.On("FindByID", mock.Anything, testHospitalID).Return(testHospital(), nil)
		lockService.On("TryLock", mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("time.Duration")).Return(true, "lock-value", nil)
		lockService.On("Unlock", mock.Anything, mock.AnythingOfType("string"), "lock-value").Return(nil)
		appointmentRepo.On("HasActiveAppointment", mock.Anything, testDoctorID, mock.AnythingOfType("time.Time"), "10:00").Return(true, nil)

		uc := newTestUsecase(appointmentRepo, doctorRepo, hospitalRepo, lockService, notificationService)

		response, err := uc.CreateAppointment(ctx, validCreateRequest())

		assert.Nil(t, response)
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientSlotAlreadyBooked, customErr.ClientMessage)
		appointmentRepo.AssertNotCalled(t, "CreateAppointment", mock.Anything, mock.Anything)
	})

	t.Run("returns conflict when the slot lock is held by another request", func(t *testing.T) {
		appointmentRepo := new(MockAppointmentRepository)
		doctorRepo := new(MockDoctorRepository)
		hospitalRepo := new(MockHospitalRepository)
		lockService := new(MockLockerService)
		notificationService := new(MockNotificationService)

		doctorRepo.On("FindByID", mock.Anything, testDoctorID).Return(testDoctor(), nil)
		hospitalRepo.On("FindByID", mock.Anything, testHospitalID).Return(testHospital(), nil)
		lockService.On("TryLock", mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("time.Duration")).Return(false, "", nil)

		uc := newTestUsecase(appointmentRepo, doctorRepo, hospitalRepo, lockService, notificationService)

		response, err := uc.CreateAppointment(ctx, validCreateRequest())

		assert.Nil(t, response)
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		appointmentRepo.AssertNotCalled(t, "HasActiveAppointment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("surfaces duplicate-slot conflicts raised by the repository", func(t *testing.T) {
		appointmentRepo := new(MockAppointmentRepository)
		doctorRepo := new(MockDoctorRepository)
		hospitalRepo := new(MockHospitalRepository)
		lockService := new(MockLockerService)
		notificationService := new(MockNotificationService)

		doctorRepo.On("FindByID", mock.Anything, testDoctorID).Return(testDoctor(), nil)
		hospitalRepo.On("FindByID", mock.Anything, testHospitalID).Return(testHospital(), nil)
		lockService.On("TryLock", mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("time.Duration")).Return(true, "lock-value", nil)
		lockService.On("Unlock", mock.Anything, mock.AnythingOfType("string"), "lock-value").Return(nil)
		appointmentRepo.On("HasActiveAppointment", mock.Anything, testDoctorID, mock.AnythingOfType("time.Time"), "10:00").Return(false, nil)
		appointmentRepo.On("CreateAppointment", mock.Anything, mock.AnythingOfType("*models.Appointment")).
			Return("", exceptions.ErrSlotAlreadyBooked(errors.New("duplicate key")))

		uc := newTestUsecase(appointmentRepo, doctorRepo, hospitalRepo, lockService, notificationService)

		response, err := uc.CreateAppointment(ctx, validCreateRequest())

		assert.Nil(t, response)
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		notificationService.AssertNotCalled(t, "PublishAppointmentEvent", mock.Anything, mock.Anything)
	})

	t.Run("returns not found for an unknown doctor", func(t *testing.T) {
		appointmentRepo := new(MockAppointmentRepository)
		doctorRepo := new(MockDoctorRepository)
		hospitalRepo := new(MockHospitalRepository)
		lockService := new(MockLockerService)
		notificationService := new(MockNotificationService)

		doctorRepo.On("FindByID", mock.Anything, testDoctorID).Return(nil, nil)

		uc := newTestUsecase(appointmentRepo, doctorRepo, hospitalRepo, lockService, notificationService)

		response, err := uc.CreateAppointment(ctx, validCreateRequest())

		assert.Nil(t, response)
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
		lockService.AssertNotCalled(t, "TryLock", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("still succeeds when publishing the event fails", func(t *testing.T) {
		appointmentRepo := new(MockAppointmentRepository)
		doctorRepo := new(MockDoctorRepository)
		hospitalRepo := new(MockHospitalRepository)
		lockService := new(MockLockerService)
		notificationService := new(MockNotificationService)

		doctorRepo.On("FindByID", mock.Anything, testDoctorID).Return(testDoctor(), nil)
		hospitalRepo.On("FindByID", mock.Anything, testHospitalID).Return(testHospital(), nil)
		lockService.On("TryLock", mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("time.Duration")).Return(true, "lock-value", nil)
		lockService.On("Unlock", mock.Anything, mock.AnythingOfType("string"), "lock-value").Return(nil)
		appointmentRepo.On("HasActiveAppointment", mock.Anything, testDoctorID, mock.AnythingOfType("time.Time"), "10:00").Return(false, nil)
		appointmentRepo.On("CreateAppointment", mock.Anything, mock.AnythingOfType("*models.Appointment")).Return(testAppointmentID, nil)
		notificationService.On("PublishAppointmentEvent", mock.Anything, mock.AnythingOfType("*contracts.AppointmentEvent")).
			Return(exceptions.ErrRabbitMQPublishMessage(errors.New("broker down"), "appointment-events"))

		uc := newTestUsecase(appointmentRepo, doctorRepo, hospitalRepo, lockService, notificationService)

		response, err := uc.CreateAppointment(ctx, validCreateRequest())

		assert.NoError(t, err)
		assert.NotNil(t, response)
		assert.Equal(t, testAppointmentID, response.ID)
	})
}

func TestAppointmentUsecase_UpdateAppointmentStatus(t *testing.T) {
	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "test-request-id")

	appointmentDate, _ := time.Parse(constvars.DateLayoutYYYYMMDD, "2026-10-15")
	storedAppointment := func(status string, active bool) *models.Appointment {
		return &models.Appointment{
			ID:              testAppointmentID,
			PatientName:     "Asha Verma",
			PatientEmail:    "asha@example.com",
			DoctorID:        testDoctorID,
			HospitalID:      testHospitalID,
			AppointmentDate: appointmentDate,
			TimeSlot:        "10:00",
			Type:            models.AppointmentTypeInPerson,
			Status:          status,
			Active:          active,
		}
	}

	cases := []struct {
		status     string
		wantActive bool
	}{
		{models.AppointmentStatusScheduled, true},
		{models.AppointmentStatusConfirmed, true},
		{models.AppointmentStatusCompleted, false},
		{models.AppointmentStatusCancelled, false},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%s releases or keeps the slot", tc.status), func(t *testing.T) {
			appointmentRepo := new(MockAppointmentRepository)
			doctorRepo := new(MockDoctorRepository)
			hospitalRepo := new(MockHospitalRepository)
			lockService := new(MockLockerService)
			notificationService := new(MockNotificationService)

			appointmentRepo.On("UpdateStatus", mock.Anything, testAppointmentID, tc.status, tc.wantActive).
				Return(storedAppointment(tc.status, tc.wantActive), nil)
			doctorRepo.On("FindByID", mock.Anything, testDoctorID).Return(testDoctor(), nil)
			hospitalRepo.On("FindByID", mock.Anything, testHospitalID).Return(testHospital(), nil)
			notificationService.On("PublishAppointmentEvent", mock.Anything, mock.AnythingOfType("*contracts.AppointmentEvent")).Return(nil)

			uc := newTestUsecase(appointmentRepo, doctorRepo, hospitalRepo, lockService, notificationService)

			response, err := uc.UpdateAppointmentStatus(ctx, testAppointmentID, &requests.UpdateAppointmentStatusRequest{Status: tc.status})

			assert.NoError(t, err)
			assert.Equal(t, tc.status, response.Status)
			appointmentRepo.AssertExpectations(t)
		})
	}

	t.Run("returns conflict when reactivation collides with the slot's current booking", func(t *testing.T) {
		appointmentRepo := new(MockAppointmentRepository)
		doctorRepo := new(MockDoctorRepository)
		hospitalRepo := new(MockHospitalRepository)
		lockService := new(MockLockerService)
		notificationService := new(MockNotificationService)

		appointmentRepo.On("UpdateStatus", mock.Anything, testAppointmentID, models.AppointmentStatusConfirmed, true).
			Return(nil, exceptions.ErrSlotAlreadyBooked(errors.New("duplicate key")))

		uc := newTestUsecase(appointmentRepo, doctorRepo, hospitalRepo, lockService, notificationService)

		response, err := uc.UpdateAppointmentStatus(ctx, testAppointmentID, &requests.UpdateAppointmentStatusRequest{Status: models.AppointmentStatusConfirmed})

		assert.Nil(t, response)
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientSlotAlreadyBooked, customErr.ClientMessage)
		notificationService.AssertNotCalled(t, "PublishAppointmentEvent", mock.Anything, mock.Anything)
	})

	t.Run("returns not found for an unknown appointment", func(t *testing.T) {
		appointmentRepo := new(MockAppointmentRepository)
		doctorRepo := new(MockDoctorRepository)
		hospitalRepo := new(MockHospitalRepository)
		lockService := new(MockLockerService)
		notificationService := new(MockNotificationService)

		appointmentRepo.On("UpdateStatus", mock.Anything, testAppointmentID, models.AppointmentStatusCancelled, false).Return(nil, nil)

		uc := newTestUsecase(appointmentRepo, doctorRepo, hospitalRepo, lockService, notificationService)

		response, err := uc.UpdateAppointmentStatus(ctx, testAppointmentID, &requests.UpdateAppointmentStatusRequest{Status: models.AppointmentStatusCancelled})

		assert.Nil(t, response)
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}

func TestAppointmentUsecase_FindAll(t *testing.T) {
	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "test-request-id")
	appointmentDate, _ := time.Parse(constvars.DateLayoutYYYYMMDD, "2026-10-15")

	t.Run("uses the compact projection for list items", func(t *testing.T) {
		appointmentRepo := new(MockAppointmentRepository)
		doctorRepo := new(MockDoctorRepository)
		hospitalRepo := new(MockHospitalRepository)
		lockService := new(MockLockerService)
		notificationService := new(MockNotificationService)

		stored := []models.Appointment{
			{
				ID:              testAppointmentID,
				DoctorID:        testDoctorID,
				HospitalID:      testHospitalID,
				AppointmentDate: appointmentDate,
				TimeSlot:        "10:00",
				Status:          models.AppointmentStatusScheduled,
			},
		}
		appointmentRepo.On("FindAll", mock.Anything, mock.AnythingOfType("*requests.AppointmentQuery")).Return(stored, nil)
		doctorRepo.On("FindByID", mock.Anything, testDoctorID).Return(testDoctor(), nil)
		hospitalRepo.On("FindByID", mock.Anything, testHospitalID).Return(testHospital(), nil)

		uc := newTestUsecase(appointmentRepo, doctorRepo, hospitalRepo, lockService, notificationService)

		response, err := uc.FindAll(ctx, &requests.AppointmentQuery{Limit: 10})

		assert.NoError(t, err)
		assert.Len(t, response, 1)
		assert.Equal(t, "Dr. Rajesh Sharma", response[0].Doctor.Name)
		assert.Empty(t, response[0].Doctor.Hours, "list projection omits working hours")
		assert.Empty(t, response[0].Hospital.Phone, "list projection omits the phone number")
	})

	t.Run("detail projection carries hours and phone", func(t *testing.T) {
		appointmentRepo := new(MockAppointmentRepository)
		doctorRepo := new(MockDoctorRepository)
		hospitalRepo := new(MockHospitalRepository)
		lockService := new(MockLockerService)
		notificationService := new(MockNotificationService)

		stored := &models.Appointment{
			ID:              testAppointmentID,
			DoctorID:        testDoctorID,
			HospitalID:      testHospitalID,
			AppointmentDate: appointmentDate,
			TimeSlot:        "10:00",
			Status:          models.AppointmentStatusScheduled,
		}
		appointmentRepo.On("FindByID", mock.Anything, testAppointmentID).Return(stored, nil)
		doctorRepo.On("FindByID", mock.Anything, testDoctorID).Return(testDoctor(), nil)
		hospitalRepo.On("FindByID", mock.Anything, testHospitalID).Return(testHospital(), nil)

		uc := newTestUsecase(appointmentRepo, doctorRepo, hospitalRepo, lockService, notificationService)

		response, err := uc.FindByID(ctx, testAppointmentID)

		assert.NoError(t, err)
		assert.Equal(t, "09:00-17:00", response.Doctor.Hours)
		assert.Equal(t, "011-2345-6789", response.Hospital.Phone)
	})
}
