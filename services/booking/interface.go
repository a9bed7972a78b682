package booking

import (
	"context"

	bookingRepo "rihla/database/repository/booking"
	"rihla/models"
	"rihla/services/form"

	"go.uber.org/zap"
)

// BookingService turns validated form values into an operator handoff and
// answers reference lookups.
type BookingService interface {
	Submit(ctx context.Context, slug string, values map[string]string) (*models.SubmissionResult, []form.FieldError, error)
	Lookup(ctx context.Context, reference, phone string) (*models.BookingRecord, error)
	RequestCancellation(ctx context.Context, reference, phone string) (*models.BookingRecord, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo   bookingRepo.BookingRecordRepository
	Logger *zap.Logger
}
