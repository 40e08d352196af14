package ports

import (
	"context"

	"parcel-tracker/internal/features/offers/domain"
	tracking "parcel-tracker/internal/features/tracking/domain"
)

// OfferService defines the primary port for offer lookups.
type OfferService interface {
	GetOffers(ctx context.Context, code tracking.StatusCode) ([]domain.Offer, error)
	SetOffers(ctx context.Context, code tracking.StatusCode, offers []domain.Offer) error
	ResetOffers(ctx context.Context, code tracking.StatusCode) error
}

// OfferRepository defines the secondary port for offer overrides.
type OfferRepository interface {
	Save(ctx context.Context, code tracking.StatusCode, offers []domain.Offer) error
	// Get returns (nil, nil) when no override is stored.
	Get(ctx context.Context, code tracking.StatusCode) ([]domain.Offer, error)
	Delete(ctx context.Context, code tracking.StatusCode) error
}
