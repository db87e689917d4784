package requests

type CreateHospitalRequest struct {
	Name        string   `json:"name" validate:"required"`
	Address     string   `json:"address" validate:"required"`
	City        string   `json:"city" validate:"required"`
	State       string   `json:"state" validate:"required"`
	ZipCode     string   `json:"zipCode" validate:"required"`
	Rating      float64  `json:"rating" validate:"gte=0,lte=5"`
	Specialties []string `json:"specialties"`
	Phone       string   `json:"phone"`
	Website     string   `json:"website"`
	Image       string   `json:"image"`
}

type HospitalQuery struct {
	Search string
	Limit  int
}
