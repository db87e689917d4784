package requests

type CreateAppointmentRequest struct {
	PatientName     string `json:"patientName" validate:"required"`
	PatientEmail    string `json:"patientEmail" validate:"required,email"`
	PatientPhone    string `json:"patientPhone" validate:"required"`
	DoctorID        string `json:"doctorId" validate:"required,object_id"`
	HospitalID      string `json:"hospitalId" validate:"required,object_id"`
	AppointmentDate string `json:"appointmentDate" validate:"required,calendar_date"`
	TimeSlot        string `json:"timeSlot" validate:"required,time_slot"`
	Type            string `json:"type" validate:"required,oneof=in-person telemedicine"`
	Reason          string `json:"reason"`
	Notes           string `json:"notes"`
	MeetingLink     string `json:"meetingLink"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=scheduled confirmed completed cancelled"`
}

type AppointmentQuery struct {
	PatientEmail string
	DoctorID     string
	Status       string
	Limit        int
}
