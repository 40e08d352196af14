package service

import (
	"context"
	"errors"
	"strings"

	"parcel-tracker/internal/core/logger"
	"parcel-tracker/internal/features/tracking/classifier"
	"parcel-tracker/internal/features/tracking/domain"
	"parcel-tracker/internal/features/tracking/ports"

	"go.uber.org/zap"
)

// ErrTrackingNumberRequired is returned when the input is empty.
var ErrTrackingNumberRequired = errors.New("tracking number required")

// TrackingService classifies input and resolves it into a normalized record.
type TrackingService struct {
	resolver *Resolver
	cache    ports.RecordCache
}

// NewTrackingService creates a new TrackingService. cache may be nil to disable caching.
func NewTrackingService(resolver *Resolver, cache ports.RecordCache) *TrackingService {
	return &TrackingService{
		resolver: resolver,
		cache:    cache,
	}
}

// Classify validates input without contacting any backend.
func (s *TrackingService) Classify(input string) (domain.CarrierMatch, error) {
	if strings.TrimSpace(input) == "" {
		return domain.CarrierMatch{}, ErrTrackingNumberRequired
	}
	return classifier.Classify(input)
}

// Track returns the tracking record for input.
// The only errors are ErrTrackingNumberRequired and *domain.RejectedError; resolution itself never fails.
func (s *TrackingService) Track(ctx context.Context, input string) (*domain.TrackingRecord, error) {
	match, err := s.Classify(input)
	if err != nil {
		return nil, err
	}

	log := logger.Get().With(zap.String("tracking_number", match.TrackingNumber.String()))

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, match.TrackingNumber)
		if err != nil {
			log.Warn("Record cache read failed", zap.Error(err))
		} else if cached != nil {
			log.Debug("Record served from cache", zap.String("source", cached.Source))
			return cached, nil
		}
	}

	record := s.resolver.Resolve(ctx, match)

	if s.cache != nil && record.Source != domain.SourceFallback {
		if err := s.cache.Save(ctx, record); err != nil {
			log.Warn("Record cache write failed", zap.Error(err))
		}
	}

	return record, nil
}
