package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"parcel-tracker/internal/core/cache"
	"parcel-tracker/internal/features/tracking/domain"
)

const recordKeyPrefix = "record:"

// RedisRecordCache implements ports.RecordCache on top of the cache port.
type RedisRecordCache struct {
	cache cache.Cache
	ttl   time.Duration
}

// NewRedisRecordCache creates a record cache whose entries live for ttl.
func NewRedisRecordCache(c cache.Cache, ttl time.Duration) *RedisRecordCache {
	return &RedisRecordCache{
		cache: c,
		ttl:   ttl,
	}
}

// Get returns the cached record, or (nil, nil) when absent.
func (r *RedisRecordCache) Get(ctx context.Context, number domain.TrackingNumber) (*domain.TrackingRecord, error) {
	data, err := r.cache.Get(ctx, recordKeyPrefix+number.String())
	if errors.Is(err, cache.ErrCacheMiss) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get record from cache: %w", err)
	}

	var record domain.TrackingRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal record: %w", err)
	}
	return &record, nil
}

// Save stores the record under its tracking number.
func (r *RedisRecordCache) Save(ctx context.Context, record *domain.TrackingRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	if err := r.cache.Set(ctx, recordKeyPrefix+record.TrackingNumber.String(), data, r.ttl); err != nil {
		return fmt.Errorf("failed to save record to cache: %w", err)
	}
	return nil
}
