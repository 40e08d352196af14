package ports

import (
	"context"

	"parcel-tracker/internal/features/tracking/domain"
	"parcel-tracker/internal/features/tracking/parser"
)

// TrackingBackend is an external text-generation service queried for shipment status.
// This is a Secondary Port (Driven Port).
type TrackingBackend interface {
	// Name identifies the backend; it becomes the record's source.
	Name() string
	// Configured reports whether the backend's credential is present.
	// Unconfigured backends are never attempted.
	Configured() bool
	// Query returns the backend's raw answer for a tracking number.
	// carrierHint may be empty.
	Query(ctx context.Context, trackingNumber, carrierHint string) (string, error)
}

// FallbackSource fabricates a plausible record when no backend answered.
// It must never fail.
type FallbackSource interface {
	Generate(number domain.TrackingNumber, carrierHint string) *parser.RawRecord
}

// RecordCache stores normalized records produced by real backends.
type RecordCache interface {
	// Get returns the cached record, or (nil, nil) on a miss.
	Get(ctx context.Context, number domain.TrackingNumber) (*domain.TrackingRecord, error)
	// Save stores the record under its tracking number.
	Save(ctx context.Context, record *domain.TrackingRecord) error
}
