package appointments

import (
	"context"
	"dermacare-service/internal/app/contracts"
	"dermacare-service/internal/app/models"
	"dermacare-service/internal/pkg/constvars"
	"dermacare-service/internal/pkg/dto/requests"
	"dermacare-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AppointmentMongoRepository struct {
	Collection *mongo.Collection
}

// NewAppointmentMongoRepository ensures the slot uniqueness index before
// returning the repository. Booking must not run without it.
func NewAppointmentMongoRepository(db *mongo.Client, dbName string) (contracts.AppointmentRepository, error) {
	repo := &AppointmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAppointments),
	}
	if err := repo.ensureIndexes(context.Background()); err != nil {
		return nil, err
	}
	return repo, nil
}

// ensureIndexes creates a unique index on (doctorId, appointmentDate,
// timeSlot) restricted to documents with active=true. Two concurrent
// bookings for the same slot make the second insert fail with a duplicate
// key error, whatever the request interleaving.
func (repo *AppointmentMongoRepository) ensureIndexes(ctx context.Context) error {
	indexModel := mongo.IndexModel{
		Keys: bson.D{
			{Key: "doctorId", Value: 1},
			{Key: "appointmentDate", Value: 1},
			{Key: "timeSlot", Value: 1},
		},
		Options: options.Index().
			SetUnique(true).
			SetName("unique_active_slot").
			SetPartialFilterExpression(bson.M{"active": true}),
	}

	_, err := repo.Collection.Indexes().CreateOne(ctx, indexModel)
	if err != nil {
		return exceptions.ErrMongoDBEnsureIndexes(err)
	}
	return nil
}

func (repo *AppointmentMongoRepository) FindAll(ctx context.Context, query *requests.AppointmentQuery) ([]models.Appointment, error) {
	filter := bson.M{}
	if query.PatientEmail != "" {
		filter["patientEmail"] = query.PatientEmail
	}
	if query.DoctorID != "" {
		filter["doctorId"] = query.DoctorID
	}
	if query.Status != "" {
		filter["status"] = query.Status
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "appointmentDate", Value: 1}}).
		SetLimit(int64(query.Limit))

	cursor, err := repo.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	appointments := make([]models.Appointment, 0)
	err = cursor.All(ctx, &appointments)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointments, nil
}

func (repo *AppointmentMongoRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var appointment models.Appointment
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&appointment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &appointment, nil
}

func (repo *AppointmentMongoRepository) HasActiveAppointment(ctx context.Context, doctorID string, date time.Time, timeSlot string) (bool, error) {
	filter := bson.M{
		"doctorId":        doctorID,
		"appointmentDate": date,
		"timeSlot":        timeSlot,
		"active":          true,
	}

	count, err := repo.Collection.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, exceptions.ErrMongoDBFindDocument(err)
	}
	return count > 0, nil
}

func (repo *AppointmentMongoRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, appointment)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", exceptions.ErrSlotAlreadyBooked(err)
		}
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *AppointmentMongoRepository) UpdateStatus(ctx context.Context, appointmentID, status string, active bool) (*models.Appointment, error) {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": bson.M{
		"status":    status,
		"active":    active,
		"updatedAt": time.Now(),
	}}
	updateOptions := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var appointment models.Appointment
	err = repo.Collection.FindOneAndUpdate(ctx, bson.M{"_id": objectID}, update, updateOptions).Decode(&appointment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		// reactivating a cancelled or completed appointment re-enters the
		// partial unique index; a collision with the slot's current active
		// appointment is the same conflict CreateAppointment reports
		if mongo.IsDuplicateKeyError(err) {
			return nil, exceptions.ErrSlotAlreadyBooked(err)
		}
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &appointment, nil
}
