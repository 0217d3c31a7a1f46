package doctorRepo

import (
	"context"
	"fmt"
	"time"

	"doctorsportal/database"
	"doctorsportal/models"
	"doctorsportal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// MongoDoctorRepo implements DoctorRepository using MongoDB.
type MongoDoctorRepo struct {
	coll *mongo.Collection
}

// NewMongoDoctorRepo creates a new instance of DoctorRepository using MongoDB.
func NewMongoDoctorRepo() DoctorRepository {
	coll := database.Collection("doctors")
	repo := &MongoDoctorRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("Failed to create doctor indexes", zap.Error(err))
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoDoctorRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetAll retrieves all doctors.
func (r *MongoDoctorRepo) GetAll() ([]models.Doctor, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve doctors: %w", err)
	}
	defer cursor.Close(ctx)

	var doctors []models.Doctor
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, fmt.Errorf("failed to decode doctors: %w", err)
	}
	return doctors, nil
}

// Create inserts a new doctor document and returns its application id.
func (r *MongoDoctorRepo) Create(doctor *models.Doctor) (string, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	doctor.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, doctor); err != nil {
		return "", fmt.Errorf("failed to create doctor: %w", err)
	}
	return doctor.ID, nil
}

// Delete removes a doctor document by the id the list path exposes.
func (r *MongoDoctorRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete doctor with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("doctor with id %s not found", id)
	}
	return nil
}
