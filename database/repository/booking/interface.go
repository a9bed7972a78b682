package bookingRepo

import (
	"context"

	"rihla/database"
	"rihla/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRecordRepository stores submitted bookings. Create is used
// fire-and-forget by the submission pipeline; the lookup and status methods
// back the reference/cancel endpoints.
type BookingRecordRepository interface {
	Create(ctx context.Context, record models.BookingRecord) (string, error)
	GetByReference(ctx context.Context, reference string) (*models.BookingRecord, error)
	UpdateStatus(ctx context.Context, reference string, status models.BookingStatus) error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a BookingRecordRepository backed by MongoDB.
func NewMongoBookingRepo() BookingRecordRepository {
	db := database.MongoClient.Database("rihla")
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
