package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingDataKey           = "data"
	LoggingQueryParamsKey    = "query_params"
	LoggingResponseKey       = "response"
	LoggingRequestKey        = "request"
	LoggingResponseLengthKey = "response_length"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingStatusKey         = "status"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingRedisKey          = "redis_key"
	LoggingLockValueKey      = "lock_value"
	LoggingLockExpirationKey = "lock_expiration"
	LoggingQueueKey          = "queue"
	LoggingDoctorIDKey       = "doctor_id"
	LoggingHospitalIDKey     = "hospital_id"
	LoggingAppointmentIDKey  = "appointment_id"
	LoggingTimeSlotKey       = "time_slot"
	LoggingSymptomCountKey   = "symptom_count"
	LoggingChatSourceKey     = "chat_source"
)
