package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Hospital-related messages
	GetHospitalSuccessMessage    = "hospitals fetched successfully"
	CreateHospitalSuccessMessage = "hospital created successfully"

	// Doctor-related messages
	GetDoctorSuccessMessage    = "doctors fetched successfully"
	CreateDoctorSuccessMessage = "doctor created successfully"

	// Appointment-related messages
	GetAppointmentSuccessMessage          = "appointments fetched successfully"
	CreateAppointmentSuccessMessage       = "appointment booked successfully"
	UpdateAppointmentStatusSuccessMessage = "appointment status updated successfully"

	// Symptom checker messages
	AnalyzeSymptomsSuccessMessage     = "symptom analysis completed"
	GetSymptomCategoriesSuccessMessage = "symptom categories fetched successfully"

	// Chat messages
	ChatReplySuccessMessage = "assistant replied successfully"

	// Health check
	HealthCheckMessage = "DermaCare API is running"
)
