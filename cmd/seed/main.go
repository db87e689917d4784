package main

import (
	"context"
	"dermacare-service/internal/app/config"
	"dermacare-service/internal/app/drivers/database"
	"dermacare-service/internal/app/models"
	"dermacare-service/internal/pkg/constvars"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var hospitals = []models.Hospital{
	{
		Name:        "Apollo Dermatology Center",
		Address:     "15 MG Road, Connaught Place",
		City:        "New Delhi",
		State:       "Delhi",
		ZipCode:     "110001",
		Rating:      4.8,
		Specialties: []string{"General Dermatology", "Cosmetic Procedures", "Skin Cancer Treatment"},
		Phone:       "011-2345-6789",
		Website:     "apollo-derm.in",
		Image:       "https://images.unsplash.com/photo-1519494026892-80bbd2d6fd0d?w=400",
	},
	{
		Name:        "Fortis Skin Institute",
		Address:     "45 Vasant Kunj",
		City:        "New Delhi",
		State:       "Delhi",
		ZipCode:     "110070",
		Rating:      4.7,
		Specialties: []string{"Dermatology", "Hair Transplant", "Laser Treatment"},
		Phone:       "011-2345-6790",
		Website:     "fortis-skin.in",
		Image:       "https://images.unsplash.com/photo-1551190822-a9333d879b1f?w=400",
	},
	{
		Name:        "Max Super Speciality Dermatology",
		Address:     "2, Press Enclave Road, Saket",
		City:        "New Delhi",
		State:       "Delhi",
		ZipCode:     "110017",
		Rating:      4.6,
		Specialties: []string{"Pediatric Dermatology", "Allergy Treatment", "Psoriasis Care"},
		Phone:       "011-2345-6791",
		Website:     "maxhealthcare.in",
		Image:       "https://images.unsplash.com/photo-1582750433449-648ed127bb54?w=400",
	},
}

var doctors = []models.Doctor{
	{
		Name:            "Dr. Rajesh Sharma",
		Specialty:       "General Dermatology",
		Experience:      15,
		Rating:          4.8,
		Status:          models.DoctorStatusAvailable,
		Hours:           "09:00-17:00",
		Expertise:       []string{"Acne Treatment", "Skin Cancer Screening", "Psoriasis Treatment"},
		Education:       "MD Dermatology, AIIMS Delhi",
		ConsultationFee: &models.ConsultationFee{InPerson: 1500, Telemedicine: 800},
		Image:           "https://images.unsplash.com/photo-1612349317150-e413f6a5b16d?w=400",
	},
	{
		Name:            "Dr. Priya Singh",
		Specialty:       "Cosmetic Dermatology",
		Experience:      12,
		Rating:          4.9,
		Status:          models.DoctorStatusAvailable,
		Hours:           "10:00-18:00",
		Expertise:       []string{"Botox", "Chemical Peels", "Laser Hair Removal"},
		Education:       "MD Dermatology, PGIMER Chandigarh",
		ConsultationFee: &models.ConsultationFee{InPerson: 2000, Telemedicine: 1000},
		Image:           "https://images.unsplash.com/photo-1559839734-2b71ea197ec2?w=400",
	},
	{
		Name:            "Dr. Arjun Patel",
		Specialty:       "Pediatric Dermatology",
		Experience:      10,
		Rating:          4.7,
		Status:          models.DoctorStatusAvailable,
		Hours:           "09:00-16:00",
		Expertise:       []string{"Eczema in Children", "Birthmarks", "Pediatric Acne"},
		Education:       "MD Dermatology, KEM Hospital Mumbai",
		ConsultationFee: &models.ConsultationFee{InPerson: 1200, Telemedicine: 600},
		Image:           "https://images.unsplash.com/photo-1582750433449-648ed127bb54?w=400",
	},
}

func main() {
	driverConfig := config.NewDriverConfig()

	client := database.NewMongoDB(driverConfig)
	db := client.Database(driverConfig.MongoDB.DbName)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	defer client.Disconnect(ctx)

	hospitalCollection := db.Collection(constvars.MongoCollectionHospitals)
	doctorCollection := db.Collection(constvars.MongoCollectionDoctors)

	if _, err := hospitalCollection.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear hospitals: %v", err)
	}
	if _, err := doctorCollection.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear doctors: %v", err)
	}
	log.Println("Cleared existing data")

	now := time.Now()

	hospitalIDs := make([]primitive.ObjectID, len(hospitals))
	for i := range hospitals {
		hospitals[i].TimeModel = models.TimeModel{CreatedAt: now, UpdatedAt: now}
		result, err := hospitalCollection.InsertOne(ctx, hospitals[i])
		if err != nil {
			log.Fatalf("Failed to insert hospital %q: %v", hospitals[i].Name, err)
		}
		hospitalIDs[i] = result.InsertedID.(primitive.ObjectID)
	}
	log.Printf("Created %d hospitals", len(hospitals))

	for i := range doctors {
		doctors[i].HospitalID = hospitalIDs[i%len(hospitalIDs)].Hex()
		doctors[i].TimeModel = models.TimeModel{CreatedAt: now, UpdatedAt: now}
		if _, err := doctorCollection.InsertOne(ctx, doctors[i]); err != nil {
			log.Fatalf("Failed to insert doctor %q: %v", doctors[i].Name, err)
		}
	}
	log.Printf("Created %d doctors", len(doctors))

	for _, hospitalID := range hospitalIDs {
		count, err := doctorCollection.CountDocuments(ctx, bson.M{"hospitalId": hospitalID.Hex()})
		if err != nil {
			log.Fatalf("Failed to count doctors: %v", err)
		}
		_, err = hospitalCollection.UpdateOne(ctx,
			bson.M{"_id": hospitalID},
			bson.M{"$set": bson.M{"doctorCount": count}},
		)
		if err != nil {
			log.Fatalf("Failed to update hospital doctor count: %v", err)
		}
	}
	log.Println("Updated hospital doctor counts")
	log.Println("Database seeded successfully!")
}
