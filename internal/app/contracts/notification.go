package contracts

import "context"

// AppointmentEvent is published to the notifications queue after a
// booking is created or its status changes.
type AppointmentEvent struct {
	Event           string `json:"event"`
	AppointmentID   string `json:"appointment_id"`
	DoctorID        string `json:"doctor_id"`
	HospitalID      string `json:"hospital_id"`
	PatientEmail    string `json:"patient_email"`
	AppointmentDate string `json:"appointment_date"`
	TimeSlot        string `json:"time_slot"`
	Status          string `json:"status"`
}

type NotificationService interface {
	PublishAppointmentEvent(ctx context.Context, event *AppointmentEvent) error
}
