package models

const (
	DoctorStatusAvailable   = "Available"
	DoctorStatusBusy        = "Busy"
	DoctorStatusUnavailable = "Unavailable"

	DefaultDoctorHours = "09:00-17:00"
)

type ConsultationFee struct {
	InPerson     float64 `bson:"inPerson"`
	Telemedicine float64 `bson:"telemedicine"`
}

type Doctor struct {
	ID              string           `bson:"_id,omitempty"`
	HospitalID      string           `bson:"hospitalId"`
	Name            string           `bson:"name"`
	Specialty       string           `bson:"specialty"`
	Experience      int              `bson:"experience"`
	Rating          float64          `bson:"rating"`
	Status          string           `bson:"status"`
	Hours           string           `bson:"hours"`
	Expertise       []string         `bson:"expertise,omitempty"`
	Education       string           `bson:"education,omitempty"`
	Image           string           `bson:"image,omitempty"`
	ConsultationFee *ConsultationFee `bson:"consultationFee,omitempty"`
	TimeModel       `bson:",inline"`
}
