package routers

import (
	"bytes"
	"context"
	"dermacare-service/internal/app/config"
	"dermacare-service/internal/app/delivery/http/controllers"
	"dermacare-service/internal/pkg/constvars"
	"dermacare-service/internal/pkg/dto/requests"
	"dermacare-service/internal/pkg/dto/responses"
	"dermacare-service/internal/pkg/exceptions"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockAppointmentUsecase struct {
	mock.Mock
}

func (m *MockAppointmentUsecase) FindAll(ctx context.Context, query *requests.AppointmentQuery) ([]responses.Appointment, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]responses.Appointment), args.Error(1)
}

func (m *MockAppointmentUsecase) FindByID(ctx context.Context, appointmentID string) (*responses.Appointment, error) {
	args := m.Called(ctx, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Appointment), args.Error(1)
}

func (m *MockAppointmentUsecase) CreateAppointment(ctx context.Context, request *requests.CreateAppointmentRequest) (*responses.Appointment, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Appointment), args.Error(1)
}

func (m *MockAppointmentUsecase) UpdateAppointmentStatus(ctx context.Context, appointmentID string, request *requests.UpdateAppointmentStatusRequest) (*responses.Appointment, error) {
	args := m.Called(ctx, appointmentID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Appointment), args.Error(1)
}

func newAppointmentTestRouter(mockUsecase *MockAppointmentUsecase) *chi.Mux {
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{App: config.App{RequestTimeoutInSeconds: 10}}
	appointmentController := controllers.NewAppointmentController(logger, internalConfig, mockUsecase)

	router := chi.NewRouter()
	router.Route("/appointments", func(r chi.Router) {
		attachAppointmentRoutes(r, appointmentController)
	})
	return router
}

func validBookingBody() map[string]interface{} {
	return map[string]interface{}{
		"patientName":     "Asha Verma",
		"patientEmail":    "asha@example.com",
		"patientPhone":    "+91-98765-43210",
		"doctorId":        "64a1f0c2e1b2c3d4e5f60718",
		"hospitalId":      "64a1f0c2e1b2c3d4e5f60719",
		"appointmentDate": "2026-10-15",
		"timeSlot":        "10:00",
		"type":            "in-person",
	}
}

func TestAppointmentRouter_CreateAppointment(t *testing.T) {
	t.Run("returns 201 with the booking envelope", func(t *testing.T) {
		mockUsecase := new(MockAppointmentUsecase)
		mockUsecase.On("CreateAppointment", mock.Anything, mock.AnythingOfType("*requests.CreateAppointmentRequest")).
			Return(&responses.Appointment{ID: "64a1f0c2e1b2c3d4e5f6071a", Status: "scheduled"}, nil)

		router := newAppointmentTestRouter(mockUsecase)

		jsonBody, _ := json.Marshal(validBookingBody())
		req := httptest.NewRequest("POST", "/appointments/", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var envelope responses.ResponseDTO
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))
		assert.True(t, envelope.Success)
		assert.Equal(t, constvars.CreateAppointmentSuccessMessage, envelope.Message)
		mockUsecase.AssertExpectations(t)
	})

	t.Run("returns 400 with field errors for an invalid payload", func(t *testing.T) {
		mockUsecase := new(MockAppointmentUsecase)
		router := newAppointmentTestRouter(mockUsecase)

		body := validBookingBody()
		body["patientEmail"] = "not-an-email"
		body["appointmentDate"] = "15-10-2026"
		jsonBody, _ := json.Marshal(body)

		req := httptest.NewRequest("POST", "/appointments/", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var errResponse exceptions.CustomError
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errResponse))
		assert.False(t, errResponse.Success)
		assert.NotEmpty(t, errResponse.FieldErrors)
		mockUsecase.AssertNotCalled(t, "CreateAppointment", mock.Anything, mock.Anything)
	})

	t.Run("returns 409 when the slot is already booked", func(t *testing.T) {
		mockUsecase := new(MockAppointmentUsecase)
		mockUsecase.On("CreateAppointment", mock.Anything, mock.AnythingOfType("*requests.CreateAppointmentRequest")).
			Return(nil, exceptions.ErrSlotAlreadyBooked(errors.New("duplicate key")))

		router := newAppointmentTestRouter(mockUsecase)

		jsonBody, _ := json.Marshal(validBookingBody())
		req := httptest.NewRequest("POST", "/appointments/", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)

		var errResponse exceptions.CustomError
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errResponse))
		assert.False(t, errResponse.Success)
		assert.Equal(t, constvars.ErrClientSlotAlreadyBooked, errResponse.ClientMessage)
	})
}

func TestAppointmentRouter_FindAll(t *testing.T) {
	t.Run("carries the result count in the list envelope", func(t *testing.T) {
		mockUsecase := new(MockAppointmentUsecase)
		mockUsecase.On("FindAll", mock.Anything, mock.AnythingOfType("*requests.AppointmentQuery")).
			Return([]responses.Appointment{{ID: "a1"}, {ID: "a2"}}, nil)

		router := newAppointmentTestRouter(mockUsecase)

		req := httptest.NewRequest("GET", "/appointments/?patientEmail=Asha@Example.com", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var envelope responses.ResponseDTO
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))
		assert.NotNil(t, envelope.Count)
		assert.Equal(t, 2, *envelope.Count)

		query := mockUsecase.Calls[0].Arguments.Get(1).(*requests.AppointmentQuery)
		assert.Equal(t, "asha@example.com", query.PatientEmail, "patient email filter is lowercased")
		assert.Equal(t, constvars.DefaultListLimit, query.Limit)
	})
}

func TestAppointmentRouter_UpdateStatus(t *testing.T) {
	t.Run("rejects an unknown status value", func(t *testing.T) {
		mockUsecase := new(MockAppointmentUsecase)
		router := newAppointmentTestRouter(mockUsecase)

		jsonBody, _ := json.Marshal(map[string]string{"status": "archived"})
		req := httptest.NewRequest("PATCH", "/appointments/64a1f0c2e1b2c3d4e5f6071a/status", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockUsecase.AssertNotCalled(t, "UpdateAppointmentStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("passes the appointment id and status through", func(t *testing.T) {
		mockUsecase := new(MockAppointmentUsecase)
		mockUsecase.On("UpdateAppointmentStatus", mock.Anything, "64a1f0c2e1b2c3d4e5f6071a", mock.AnythingOfType("*requests.UpdateAppointmentStatusRequest")).
			Return(&responses.Appointment{ID: "64a1f0c2e1b2c3d4e5f6071a", Status: "cancelled"}, nil)

		router := newAppointmentTestRouter(mockUsecase)

		jsonBody, _ := json.Marshal(map[string]string{"status": "cancelled"})
		req := httptest.NewRequest("PATCH", "/appointments/64a1f0c2e1b2c3d4e5f6071a/status", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockUsecase.AssertExpectations(t)
	})
}
