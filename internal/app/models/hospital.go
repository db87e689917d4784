package models

type Hospital struct {
	ID          string   `bson:"_id,omitempty"`
	Name        string   `bson:"name"`
	Address     string   `bson:"address"`
	City        string   `bson:"city"`
	State       string   `bson:"state"`
	ZipCode     string   `bson:"zipCode"`
	Rating      float64  `bson:"rating"`
	DoctorCount int      `bson:"doctorCount"`
	Specialties []string `bson:"specialties,omitempty"`
	Phone       string   `bson:"phone,omitempty"`
	Website     string   `bson:"website,omitempty"`
	Image       string   `bson:"image,omitempty"`
	TimeModel   `bson:",inline"`
}
