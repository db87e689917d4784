package hospitals

import (
	"context"
	"dermacare-service/internal/app/contracts"
	"dermacare-service/internal/app/models"
	"dermacare-service/internal/pkg/constvars"
	"dermacare-service/internal/pkg/dto/requests"
	"dermacare-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type HospitalMongoRepository struct {
	Collection *mongo.Collection
}

func NewHospitalMongoRepository(db *mongo.Client, dbName string) contracts.HospitalRepository {
	return &HospitalMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionHospitals),
	}
}

func (repo *HospitalMongoRepository) FindAll(ctx context.Context, query *requests.HospitalQuery) ([]models.Hospital, error) {
	filter := bson.M{}
	if query.Search != "" {
		pattern := primitive.Regex{Pattern: query.Search, Options: "i"}
		filter["$or"] = []bson.M{
			{"name": pattern},
			{"city": pattern},
			{"specialties": pattern},
		}
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "rating", Value: -1}}).
		SetLimit(int64(query.Limit))

	cursor, err := repo.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	hospitals := make([]models.Hospital, 0)
	err = cursor.All(ctx, &hospitals)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return hospitals, nil
}

func (repo *HospitalMongoRepository) FindByID(ctx context.Context, hospitalID string) (*models.Hospital, error) {
	objectID, err := primitive.ObjectIDFromHex(hospitalID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var hospital models.Hospital
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&hospital)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &hospital, nil
}

func (repo *HospitalMongoRepository) CreateHospital(ctx context.Context, hospital *models.Hospital) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, hospital)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *HospitalMongoRepository) IncrementDoctorCount(ctx context.Context, hospitalID string, delta int) error {
	objectID, err := primitive.ObjectIDFromHex(hospitalID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$inc": bson.M{"doctorCount": delta}}
	_, err = repo.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
