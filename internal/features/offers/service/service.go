package service

import (
	"context"
	"errors"
	"fmt"

	"parcel-tracker/internal/core/logger"
	"parcel-tracker/internal/features/offers/domain"
	"parcel-tracker/internal/features/offers/ports"
	tracking "parcel-tracker/internal/features/tracking/domain"

	"go.uber.org/zap"
)

// ErrStoreUnavailable is returned by writes when no override store is configured.
var ErrStoreUnavailable = errors.New("offer store unavailable")

// OfferServiceImpl implements ports.OfferService.
// Stored overrides win over the built-in catalog.
type OfferServiceImpl struct {
	repo ports.OfferRepository
}

// NewOfferService creates a new OfferServiceImpl. repo may be nil, in which case only
// the built-in catalog is served.
func NewOfferService(repo ports.OfferRepository) *OfferServiceImpl {
	return &OfferServiceImpl{
		repo: repo,
	}
}

// GetOffers returns the offers for a status code. Store failures degrade to the catalog.
func (s *OfferServiceImpl) GetOffers(ctx context.Context, code tracking.StatusCode) ([]domain.Offer, error) {
	if !code.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownStatusCode, code)
	}

	if s.repo != nil {
		offers, err := s.repo.Get(ctx, code)
		if err != nil {
			logger.Get().Warn("Failed to read offer override", zap.String("status_code", string(code)), zap.Error(err))
		} else if offers != nil {
			return offers, nil
		}
	}

	return domain.DefaultOffers(code), nil
}

// SetOffers validates and stores an override.
func (s *OfferServiceImpl) SetOffers(ctx context.Context, code tracking.StatusCode, offers []domain.Offer) error {
	if !code.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrUnknownStatusCode, code)
	}
	if err := domain.ValidateOffers(offers); err != nil {
		return err
	}
	if s.repo == nil {
		return ErrStoreUnavailable
	}

	if err := s.repo.Save(ctx, code, offers); err != nil {
		return fmt.Errorf("service: failed to save offers: %w", err)
	}
	return nil
}

// ResetOffers removes the override so the catalog applies again.
func (s *OfferServiceImpl) ResetOffers(ctx context.Context, code tracking.StatusCode) error {
	if !code.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrUnknownStatusCode, code)
	}
	if s.repo == nil {
		return ErrStoreUnavailable
	}

	if err := s.repo.Delete(ctx, code); err != nil {
		return fmt.Errorf("service: failed to remove offers: %w", err)
	}
	return nil
}
