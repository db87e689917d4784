package responses

type Doctor struct {
	ID              string           `json:"id"`
	Hospital        *HospitalSummary `json:"hospital,omitempty"`
	Name            string           `json:"name"`
	Specialty       string           `json:"specialty"`
	Experience      int              `json:"experience"`
	Rating          float64          `json:"rating"`
	Status          string           `json:"status"`
	Hours           string           `json:"hours"`
	Expertise       []string         `json:"expertise,omitempty"`
	Education       string           `json:"education,omitempty"`
	Image           string           `json:"image,omitempty"`
	ConsultationFee *ConsultationFee `json:"consultationFee,omitempty"`
}

type ConsultationFee struct {
	InPerson     float64 `json:"inPerson"`
	Telemedicine float64 `json:"telemedicine"`
}
