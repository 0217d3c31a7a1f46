package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"doctorsportal/database"
	"doctorsportal/models"
	"doctorsportal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	coll := database.Collection("bookings")
	repo := &MongoBookingRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("Failed to create booking indexes", zap.Error(err))
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
// The (appointmentDate, treatmentName) index backs availability computation;
// the email index backs per-patient listings. Neither is unique: the
// one-booking-per-day rule is enforced by the admission check, not storage.
func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "appointmentDate", Value: 1}, {Key: "treatmentName", Value: 1}}},
		{Keys: bson.D{{Key: "email", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByDate retrieves all bookings for the given appointment date.
func (r *MongoBookingRepo) GetByDate(date string) ([]models.Booking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"appointmentDate": date})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings for date %s: %w", date, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

// GetByEmail retrieves all bookings made by the given patient.
func (r *MongoBookingRepo) GetByEmail(email string) ([]models.Booking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings for %s: %w", email, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

// CountByOwner counts bookings matching the (date, email, treatment) triple.
func (r *MongoBookingRepo) CountByOwner(date, email, treatment string) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"appointmentDate": date,
		"email":           email,
		"treatmentName":   treatment,
	}
	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings for %s on %s: %w", email, date, err)
	}
	return count, nil
}

// CountBySlot counts bookings holding the given slot for a date and treatment.
func (r *MongoBookingRepo) CountBySlot(date, treatment, slot string) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"appointmentDate": date,
		"treatmentName":   treatment,
		"selectedSlot":    slot,
	}
	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count slot bookings for %s on %s: %w", treatment, date, err)
	}
	return count, nil
}

// Insert stores a new booking document and returns its application id, the
// same id later listings expose.
func (r *MongoBookingRepo) Insert(booking *models.Booking) (string, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	booking.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return "", fmt.Errorf("failed to insert booking: %w", err)
	}
	return booking.ID, nil
}
