package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":      "is required",
	"email":         "must be a valid email",
	"min":           "must be at least %s characters long",
	"max":           "maximum at %s characters long",
	"gte":           "must be greater than or equal to %s",
	"lte":           "must be less than or equal to %s",
	"oneof":         "must be one of [%s]",
	"numeric":       "must be a number",
	"object_id":     "must be a valid identifier",
	"calendar_date": "must be a valid date in YYYY-MM-DD format",
	"time_slot":     "must be a valid time slot in HH:MM format",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"gte":   true,
	"lte":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientValidationFailed              = "validation errors"
	ErrClientSlotAlreadyBooked             = "this time slot is already booked"
	ErrClientAppointmentNotFound           = "appointment not found"
	ErrClientDoctorNotFound                = "doctor not found"
	ErrClientHospitalNotFound              = "hospital not found"
	ErrClientRouteNotFound                 = "route not found"
)

// Error messages for developers
const (
	ErrDevInvalidInput           = "invalid input"
	ErrDevValidationFailed       = "validation failed on one or more fields"
	ErrDevCannotParseJSON        = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON      = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseDate        = "cannot parse the requested date"
	ErrDevServerDeadlineExceeded = "the server exceeded its own deadline"
	ErrDevServerProcess          = "unexpected error while processing request"

	ErrDevDBFailedToFindDocument     = "failed to find document"
	ErrDevDBFailedToInsertDocument   = "failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "failed to update document"
	ErrDevDBFailedToDeleteDocument   = "failed to delete document"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents"
	ErrDevDBStringNotObjectID        = "given string cannot be converted to ObjectID"
	ErrDevDBDuplicateActiveSlot      = "active appointment already exists for doctor, date and time slot"
	ErrDevDBFailedToEnsureIndexes    = "failed to ensure collection indexes"

	ErrDevAppointmentNotExists = "appointment does not exist"
	ErrDevDoctorNotExists      = "doctor does not exist"
	ErrDevHospitalNotExists    = "hospital does not exist"
	ErrDevSlotLockNotAcquired  = "slot lock held by a concurrent booking"

	ErrDevRedisGetData    = "failed to get data from redis"
	ErrDevRedisSetData    = "failed to set data to redis"
	ErrDevRedisDeleteData = "failed to delete data from redis"
	ErrDevRedisGetNoData  = "failed to get data from redis with key: %s"
	ErrDevRedisUnlock     = "failed to release redis lock"

	ErrDevRabbitMQPublishMessage = "failed to publish message to queue: %s"

	ErrDevCreateHTTPRequest = "failed to create HTTP request"
	ErrDevSendHTTPRequest   = "failed to send HTTP request"
	ErrDevDecodeResponse    = "failed to decode upstream response"
)
