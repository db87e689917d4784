package utils

import (
	"dermacare-service/internal/pkg/constvars"
	"dermacare-service/internal/pkg/dto/requests"
	"net/http"
	"strconv"
	"strings"
)

func parseLimit(r *http.Request) int {
	limitStr := r.URL.Query().Get("limit")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		limit = constvars.DefaultListLimit
	}
	return limit
}

func BuildAppointmentQueryRequest(r *http.Request) *requests.AppointmentQuery {
	return &requests.AppointmentQuery{
		PatientEmail: strings.ToLower(strings.TrimSpace(r.URL.Query().Get("patientEmail"))),
		DoctorID:     strings.TrimSpace(r.URL.Query().Get("doctorId")),
		Status:       strings.TrimSpace(r.URL.Query().Get("status")),
		Limit:        parseLimit(r),
	}
}

func BuildDoctorQueryRequest(r *http.Request) *requests.DoctorQuery {
	return &requests.DoctorQuery{
		HospitalID: strings.TrimSpace(r.URL.Query().Get("hospitalId")),
		Search:     strings.TrimSpace(r.URL.Query().Get("search")),
		Limit:      parseLimit(r),
	}
}

func BuildHospitalQueryRequest(r *http.Request) *requests.HospitalQuery {
	return &requests.HospitalQuery{
		Search: strings.TrimSpace(r.URL.Query().Get("search")),
		Limit:  parseLimit(r),
	}
}
