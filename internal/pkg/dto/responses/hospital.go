package responses

type Hospital struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	City        string   `json:"city"`
	State       string   `json:"state"`
	ZipCode     string   `json:"zipCode"`
	Rating      float64  `json:"rating"`
	DoctorCount int      `json:"doctorCount"`
	Specialties []string `json:"specialties,omitempty"`
	Phone       string   `json:"phone,omitempty"`
	Website     string   `json:"website,omitempty"`
	Image       string   `json:"image,omitempty"`
}
