package service

import (
	"context"
	"time"

	"parcel-tracker/internal/core/logger"
	"parcel-tracker/internal/features/tracking/domain"
	"parcel-tracker/internal/features/tracking/parser"
	"parcel-tracker/internal/features/tracking/ports"

	"go.uber.org/zap"
)

// Resolver runs the resolution pipeline: configured backends in priority order,
// first parseable answer wins, synthetic fallback when none answered.
type Resolver struct {
	backends []ports.TrackingBackend
	fallback ports.FallbackSource
	timeout  time.Duration
	now      func() time.Time
}

// NewResolver creates a Resolver. The backend slice order is the priority order and is
// never modified afterwards. A nil clock uses time.Now.
func NewResolver(backends []ports.TrackingBackend, fallback ports.FallbackSource, timeout time.Duration, now func() time.Time) *Resolver {
	if now == nil {
		now = time.Now
	}
	return &Resolver{
		backends: backends,
		fallback: fallback,
		timeout:  timeout,
		now:      now,
	}
}

// ConfiguredBackends returns the names of the backends that will be attempted, in order.
func (r *Resolver) ConfiguredBackends() []string {
	var names []string
	for _, b := range r.backends {
		if b.Configured() {
			names = append(names, b.Name())
		}
	}
	return names
}

// Resolve never fails: backend errors are logged and skipped.
// Calls are sequential and each is bounded by the per-backend timeout; once ctx is done
// no further backend is attempted.
func (r *Resolver) Resolve(ctx context.Context, match domain.CarrierMatch) *domain.TrackingRecord {
	log := logger.Named("resolver").With(zap.String("tracking_number", match.TrackingNumber.String()))

	for _, backend := range r.backends {
		if !backend.Configured() {
			continue
		}
		if ctx.Err() != nil {
			log.Warn("Request cancelled, skipping remaining backends", zap.Error(ctx.Err()))
			break
		}

		raw, err := r.query(ctx, backend, match)
		if err != nil {
			log.Warn("Backend failed",
				zap.String("backend", backend.Name()),
				zap.String("reason", err.Error()),
			)
			continue
		}

		log.Debug("Backend answered", zap.String("backend", backend.Name()))
		return Normalize(raw, match, backend.Name(), r.now())
	}

	log.Info("Using synthetic fallback")
	raw := r.fallback.Generate(match.TrackingNumber, match.CarrierName)
	return Normalize(raw, match, domain.SourceFallback, r.now())
}

func (r *Resolver) query(ctx context.Context, backend ports.TrackingBackend, match domain.CarrierMatch) (*parser.RawRecord, error) {
	callCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	text, err := backend.Query(callCtx, match.TrackingNumber.String(), match.CarrierName)
	if err != nil {
		return nil, err
	}
	return parser.Parse(text)
}
