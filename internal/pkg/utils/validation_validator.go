package utils

import (
	"dermacare-service/internal/pkg/constvars"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var (
	regexObjectID = regexp.MustCompile(constvars.RegexObjectIDHex)
	regexTimeSlot = regexp.MustCompile(constvars.RegexTimeSlotHHMM)
)

func init() {
	validate = validator.New()
	validate.RegisterValidation("object_id", validateObjectID)
	validate.RegisterValidation("calendar_date", validateCalendarDate)
	validate.RegisterValidation("time_slot", validateTimeSlot)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateObjectID(fl validator.FieldLevel) bool {
	return regexObjectID.MatchString(fl.Field().String())
}

func validateCalendarDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(constvars.DateLayoutYYYYMMDD, fl.Field().String())
	return err == nil
}

func validateTimeSlot(fl validator.FieldLevel) bool {
	return regexTimeSlot.MatchString(fl.Field().String())
}
