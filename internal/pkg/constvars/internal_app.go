package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	ResourceHospitals    = "hospitals"
	ResourceDoctors      = "doctors"
	ResourceAppointments = "appointments"
	ResourceSymptoms     = "symptoms"
	ResourceChat         = "chat"
)

const (
	MongoCollectionHospitals    = "hospitals"
	MongoCollectionDoctors      = "doctors"
	MongoCollectionAppointments = "appointments"
)

const (
	// SlotLockKeyFormat is doctorID:appointmentDate:timeSlot.
	SlotLockKeyFormat = "slot-lock:%s:%s:%s"

	DefaultListLimit = 10
)

const (
	DateLayoutYYYYMMDD = "2006-01-02"
)

const (
	ChatSourceModel    = "model"
	ChatSourceFallback = "fallback"
)
