package booking

import (
	"context"
	"strings"
	"time"

	"rihla/models"
	"rihla/services/catalog"
	"rihla/services/form"
	"rihla/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *DefaultBookingService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return utils.GetLogger()
}

func newReference() string {
	return "RH-" + strings.ToUpper(uuid.New().String()[:8])
}

// Submit validates the form values against the service's schema, then hands
// the booking off: the record write is fire-and-forget, and the WhatsApp
// message and link are always produced regardless of how the write went —
// getting the request to the operator must never wait on storage.
func (s *DefaultBookingService) Submit(ctx context.Context, slug string, values map[string]string) (*models.SubmissionResult, []form.FieldError, error) {
	svc, ok := catalog.BySlug(slug)
	if !ok {
		return nil, nil, ErrServiceNotFound
	}

	schema := form.BuildSchema(svc)
	if fieldErrs := schema.Validate(values); len(fieldErrs) > 0 {
		return nil, fieldErrs, nil
	}

	sub := Normalize(values, svc)
	reference := newReference()

	record := models.BookingRecord{
		Reference:   reference,
		ServiceID:   sub.ServiceID,
		ServiceName: sub.ServiceName,
		Fields:      sub.Values,
		Phone:       sub.Phone,
		Status:      models.BookingActive,
	}
	go s.persist(record)

	message := FormatOutboundMessage(sub, svc)
	return &models.SubmissionResult{
		Reference:    reference,
		Message:      message,
		WhatsAppLink: BuildOutboundLink(svc, message),
	}, nil, nil
}

// persist runs detached from the request. Its outcome is observed only for
// logging; there is no retry.
func (s *DefaultBookingService) persist(record models.BookingRecord) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := s.Repo.Create(ctx, record); err != nil {
		s.logger().Error("booking: persist failed",
			zap.String("reference", record.Reference), zap.Error(err))
	}
}

// Lookup returns a booking record after an equality check on the phone
// number it was submitted with.
func (s *DefaultBookingService) Lookup(ctx context.Context, reference, phone string) (*models.BookingRecord, error) {
	record, err := s.Repo.GetByReference(ctx, reference)
	if err != nil {
		return nil, ErrBookingNotFound
	}
	if record.Phone != phone {
		return nil, ErrBookingNotFound
	}
	return record, nil
}

// RequestCancellation moves an active booking to "cancel_requested".
// Records already cancelled or completed are rejected.
func (s *DefaultBookingService) RequestCancellation(ctx context.Context, reference, phone string) (*models.BookingRecord, error) {
	record, err := s.Lookup(ctx, reference, phone)
	if err != nil {
		return nil, err
	}
	if record.Status == models.BookingCancelled || record.Status == models.BookingCompleted {
		return nil, ErrNotCancellable
	}
	if err := s.Repo.UpdateStatus(ctx, reference, models.BookingCancelRequested); err != nil {
		return nil, err
	}
	record.Status = models.BookingCancelRequested
	return record, nil
}
