package responses

import "time"

// DoctorSummary is the doctor projection attached to list responses.
// The richer detail projection adds working hours.
type DoctorSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Hours     string `json:"hours,omitempty"`
}

// HospitalSummary is the hospital projection attached to list responses.
// The richer detail projection adds the phone number.
type HospitalSummary struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Phone   string `json:"phone,omitempty"`
}

type Appointment struct {
	ID              string          `json:"id"`
	PatientName     string          `json:"patientName"`
	PatientEmail    string          `json:"patientEmail"`
	PatientPhone    string          `json:"patientPhone"`
	Doctor          DoctorSummary   `json:"doctor"`
	Hospital        HospitalSummary `json:"hospital"`
	AppointmentDate string          `json:"appointmentDate"`
	TimeSlot        string          `json:"timeSlot"`
	Type            string          `json:"type"`
	Status          string          `json:"status"`
	Reason          string          `json:"reason,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	MeetingLink     string          `json:"meetingLink,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}
