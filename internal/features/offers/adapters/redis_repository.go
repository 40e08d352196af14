package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"parcel-tracker/internal/core/cache"
	"parcel-tracker/internal/features/offers/domain"
	tracking "parcel-tracker/internal/features/tracking/domain"
)

const offersKeyPrefix = "offers:"

// RedisOfferRepository implements ports.OfferRepository using the cache adapter.
type RedisOfferRepository struct {
	cache cache.Cache
}

// NewRedisOfferRepository creates a new RedisOfferRepository.
func NewRedisOfferRepository(c cache.Cache) *RedisOfferRepository {
	return &RedisOfferRepository{
		cache: c,
	}
}

// Save stores the override without expiration.
func (r *RedisOfferRepository) Save(ctx context.Context, code tracking.StatusCode, offers []domain.Offer) error {
	if offers == nil {
		offers = []domain.Offer{}
	}
	data, err := json.Marshal(offers)
	if err != nil {
		return fmt.Errorf("failed to marshal offers: %w", err)
	}

	if err := r.cache.Set(ctx, offersKeyPrefix+string(code), data, 0); err != nil {
		return fmt.Errorf("failed to save offers to cache: %w", err)
	}
	return nil
}

// Get retrieves the override for code.
func (r *RedisOfferRepository) Get(ctx context.Context, code tracking.StatusCode) ([]domain.Offer, error) {
	data, err := r.cache.Get(ctx, offersKeyPrefix+string(code))
	if errors.Is(err, cache.ErrCacheMiss) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get offers from cache: %w", err)
	}

	offers := []domain.Offer{}
	if err := json.Unmarshal(data, &offers); err != nil {
		return nil, fmt.Errorf("failed to unmarshal offers: %w", err)
	}
	return offers, nil
}

// Delete removes the override for code.
func (r *RedisOfferRepository) Delete(ctx context.Context, code tracking.StatusCode) error {
	if err := r.cache.Delete(ctx, offersKeyPrefix+string(code)); err != nil {
		return fmt.Errorf("failed to delete offers from cache: %w", err)
	}
	return nil
}
