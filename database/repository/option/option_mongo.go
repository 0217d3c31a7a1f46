package optionRepo

import (
	"context"
	"fmt"
	"time"

	"doctorsportal/database"
	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoOptionRepo implements OptionRepository using MongoDB.
type MongoOptionRepo struct {
	coll *mongo.Collection
}

// NewMongoOptionRepo creates a new instance of OptionRepository using MongoDB.
func NewMongoOptionRepo() OptionRepository {
	coll := database.Collection("appointmentOptions")
	return &MongoOptionRepo{coll: coll}
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// GetAll retrieves the full option catalog in stored order.
func (r *MongoOptionRepo) GetAll() ([]models.AppointmentOption, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve appointment options: %w", err)
	}
	defer cursor.Close(ctx)

	var opts []models.AppointmentOption
	if err := cursor.All(ctx, &opts); err != nil {
		return nil, fmt.Errorf("failed to decode appointment options: %w", err)
	}
	return opts, nil
}

// GetSpecialties retrieves only the treatment names, using a projection.
func (r *MongoOptionRepo) GetSpecialties() ([]string, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"name": 1})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve specialties: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []struct {
		Name string `bson:"name"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode specialties: %w", err)
	}

	names := make([]string, 0, len(docs))
	for _, d := range docs {
		names = append(names, d.Name)
	}
	return names, nil
}
