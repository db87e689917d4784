package models

import "time"

const (
	AppointmentStatusScheduled = "scheduled"
	AppointmentStatusConfirmed = "confirmed"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"

	AppointmentTypeInPerson     = "in-person"
	AppointmentTypeTelemedicine = "telemedicine"
)

type Appointment struct {
	ID              string    `bson:"_id,omitempty"`
	PatientName     string    `bson:"patientName"`
	PatientEmail    string    `bson:"patientEmail"`
	PatientPhone    string    `bson:"patientPhone"`
	DoctorID        string    `bson:"doctorId"`
	HospitalID      string    `bson:"hospitalId"`
	AppointmentDate time.Time `bson:"appointmentDate"`
	TimeSlot        string    `bson:"timeSlot"`
	Type            string    `bson:"type"`
	Status          string    `bson:"status"`
	// Active mirrors the status: true while the appointment still occupies
	// its slot. The partial unique index on (doctorId, appointmentDate,
	// timeSlot) filters on this flag.
	Active      bool   `bson:"active"`
	Reason      string `bson:"reason,omitempty"`
	Notes       string `bson:"notes,omitempty"`
	MeetingLink string `bson:"meetingLink,omitempty"`
	TimeModel   `bson:",inline"`
}

// IsActiveStatus reports whether status counts toward the slot
// uniqueness invariant.
func IsActiveStatus(status string) bool {
	return status == AppointmentStatusScheduled || status == AppointmentStatusConfirmed
}
