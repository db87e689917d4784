package utils

import (
	"dermacare-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizeCreateAppointmentRequest(request *requests.CreateAppointmentRequest) {
	request.PatientName = strings.TrimSpace(request.PatientName)
	request.PatientEmail = strings.ToLower(strings.TrimSpace(request.PatientEmail))
	request.PatientPhone = strings.TrimSpace(request.PatientPhone)
	request.TimeSlot = strings.TrimSpace(request.TimeSlot)
	request.Reason = strings.TrimSpace(request.Reason)
}

func SanitizeCreateDoctorRequest(request *requests.CreateDoctorRequest) {
	request.Name = strings.TrimSpace(request.Name)
	request.Specialty = strings.TrimSpace(request.Specialty)
	for i, expertise := range request.Expertise {
		request.Expertise[i] = strings.TrimSpace(expertise)
	}
}

func SanitizeCreateHospitalRequest(request *requests.CreateHospitalRequest) {
	request.Name = strings.TrimSpace(request.Name)
	request.Address = strings.TrimSpace(request.Address)
	request.City = strings.TrimSpace(request.City)
	request.State = strings.TrimSpace(request.State)
	request.ZipCode = strings.TrimSpace(request.ZipCode)
	for i, specialty := range request.Specialties {
		request.Specialties[i] = strings.TrimSpace(specialty)
	}
}

func SanitizeChatRequest(request *requests.ChatRequest) {
	request.Message = strings.TrimSpace(request.Message)
}
