package store

import (
	"context"

	"github.com/daralshefa/chatbot/backend/pkg/dialog"
)

// AppointmentParams is one appointment request keyed by a resolved user.
type AppointmentParams struct {
	UserID       int64
	PatientName  string
	PatientPhone string
	ClinicName   string
}

// InsuranceInquiryParams is one insurance inquiry keyed by a resolved user.
type InsuranceInquiryParams struct {
	UserID           int64
	PatientName      string
	PatientPhone     string
	InsuranceCompany string
}

// MedicalApprovalParams is one medical approval request keyed by a resolved
// user. RequestDate is kept as the authored string; the chat flow collects
// free-form dates.
type MedicalApprovalParams struct {
	UserID         int64
	IdentityNumber string
	PhoneNumber    string
	RequestDate    string
}

// Storage is the backing-store capability used by the request path. All
// methods are safe for concurrent use; any error returned here means the
// owning request fails as a backing-store failure.
type Storage interface {
	// ListKnowledgeRecords returns all authored dialog rows in insertion
	// order. An empty result is not an error at this layer.
	ListKnowledgeRecords(ctx context.Context) ([]dialog.KnowledgeRecord, error)

	// ResolveUser maps a platform identifier to the stable internal user id,
	// creating the user on first sight. Repeated calls with the same
	// platform id always return the same id, including under concurrent
	// resolution.
	ResolveUser(ctx context.Context, platformID string) (int64, error)

	InsertAppointment(ctx context.Context, params AppointmentParams) error
	InsertInsuranceInquiry(ctx context.Context, params InsuranceInquiryParams) error
	InsertMedicalApproval(ctx context.Context, params MedicalApprovalParams) error
}
