package bookingRepo

import (
	"context"
	"errors"
	"time"

	"rihla/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new booking record and returns its ID.
func (r *mongoBookingRepo) Create(ctx context.Context, record models.BookingRecord) (string, error) {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.Status == "" {
		record.Status = models.BookingActive
	}
	record.CreatedAt = time.Now()
	record.UpdatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, record)
	if err != nil {
		return "", err
	}
	return record.ID, nil
}

// GetByReference returns a booking record by its customer-facing reference.
func (r *mongoBookingRepo) GetByReference(ctx context.Context, reference string) (*models.BookingRecord, error) {
	var record models.BookingRecord
	err := r.coll.FindOne(ctx, bson.M{"reference": reference}).Decode(&record)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// UpdateStatus transitions a booking record to a new status.
func (r *mongoBookingRepo) UpdateStatus(ctx context.Context, reference string, status models.BookingStatus) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"reference": reference},
		bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("booking not found")
	}
	return nil
}
