package models

import "time"

// BookingSubmission is the normalized, ephemeral result of one form submit.
// It carries every raw field value plus the derived fields the outbound
// message is built from. It is persisted once and then discarded.
type BookingSubmission struct {
	ServiceID   int               `json:"serviceId"`
	ServiceName string            `json:"serviceName"`
	Values      map[string]string `json:"values"`
	Phone       string            `json:"phone"` // dial code + local digits
	Date        string            `json:"date"`  // "2 janvier 2006"
	CreatedAt   time.Time         `json:"createdAt"`
}

// BookingStatus tracks the lifecycle of a stored booking record.
type BookingStatus string

const (
	BookingActive          BookingStatus = "active"
	BookingCancelRequested BookingStatus = "cancel_requested"
	BookingCancelled       BookingStatus = "cancelled"
	BookingCompleted       BookingStatus = "completed"
)

// BookingRecord is the stored shape of a submission.
type BookingRecord struct {
	ID          string            `bson:"id" json:"id"`
	Reference   string            `bson:"reference" json:"reference"`
	ServiceID   int               `bson:"serviceId" json:"serviceId"`
	ServiceName string            `bson:"serviceName" json:"serviceName"`
	Fields      map[string]string `bson:"fields" json:"fields"`
	Phone       string            `bson:"phone" json:"phone"`
	Status      BookingStatus     `bson:"status" json:"status"`
	CreatedAt   time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time         `bson:"updatedAt" json:"updatedAt"`
}

// SubmissionResult is what the client receives after a successful submit.
// The WhatsApp link is always produced, whatever happened to the write.
type SubmissionResult struct {
	Reference    string `json:"reference"`
	Message      string `json:"message"`
	WhatsAppLink string `json:"whatsappLink"`
}
