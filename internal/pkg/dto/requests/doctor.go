package requests

type ConsultationFee struct {
	InPerson     float64 `json:"inPerson"`
	Telemedicine float64 `json:"telemedicine"`
}

type CreateDoctorRequest struct {
	HospitalID      string           `json:"hospitalId" validate:"required,object_id"`
	Name            string           `json:"name" validate:"required"`
	Specialty       string           `json:"specialty" validate:"required"`
	Experience      int              `json:"experience" validate:"gte=0"`
	Rating          float64          `json:"rating" validate:"gte=0,lte=5"`
	Status          string           `json:"status" validate:"omitempty,oneof=Available Busy Unavailable"`
	Hours           string           `json:"hours"`
	Expertise       []string         `json:"expertise"`
	Education       string           `json:"education"`
	Image           string           `json:"image"`
	ConsultationFee *ConsultationFee `json:"consultationFee"`
}

type DoctorQuery struct {
	HospitalID string
	Search     string
	Limit      int
}
