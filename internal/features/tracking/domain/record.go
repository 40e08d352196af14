package domain

import (
	"errors"
	"strings"
	"time"
)

// SourceFallback marks records fabricated by the synthetic generator.
const SourceFallback = "fallback"

// Location is the last known position of a shipment.
type Location struct {
	City     string `json:"city"`
	State    string `json:"state"`
	Country  string `json:"country"`
	Facility string `json:"facility"`
}

// IsZero reports whether no part of the location is known.
func (l Location) IsZero() bool {
	return l == Location{}
}

// String joins the known parts, most specific first.
func (l Location) String() string {
	parts := make([]string, 0, 4)
	for _, p := range []string{l.Facility, l.City, l.State, l.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// Checkpoint is one timestamped event in a shipment's history.
type Checkpoint struct {
	Timestamp   time.Time `json:"timestamp"`
	Status      string    `json:"status"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	// IsCurrent is true only for the newest checkpoint.
	IsCurrent bool `json:"isCurrent"`
}

// TrackingRecord is the normalized shape every resolution path produces.
type TrackingRecord struct {
	TrackingNumber TrackingNumber `json:"trackingNumber"`
	Carrier        string         `json:"carrier"`
	// Status is the display label for StatusCode.
	Status     string     `json:"status"`
	StatusCode StatusCode `json:"statusCode"`
	Location   Location   `json:"location"`
	// EstimatedDelivery is a YYYY-MM-DD date, nil once delivered.
	EstimatedDelivery *string `json:"estimatedDelivery"`
	Confidence        int     `json:"confidence"`
	// Checkpoints are ordered newest first.
	Checkpoints []Checkpoint `json:"checkpoints"`
	AIInsight   string       `json:"aiInsight"`
	// ValidationConfidence is the classifier's confidence in the input format.
	ValidationConfidence int `json:"validationConfidence"`
	// Source names the backend that produced the data, or SourceFallback.
	Source string `json:"source"`
}

var (
	ErrNoCheckpoints        = errors.New("record has no checkpoints")
	ErrCheckpointOrder      = errors.New("checkpoints are not sorted newest first")
	ErrCurrentCheckpoint    = errors.New("only the first checkpoint may be current")
	ErrDeliveredHasETA      = errors.New("delivered record carries an estimated delivery")
	ErrInvalidStatusCode    = errors.New("status code outside the closed set")
	ErrConfidenceOutOfRange = errors.New("confidence outside [0,100]")
)

// Validate checks the record invariants.
func (r *TrackingRecord) Validate() error {
	if !r.StatusCode.Valid() {
		return ErrInvalidStatusCode
	}
	if r.Confidence < 0 || r.Confidence > 100 {
		return ErrConfidenceOutOfRange
	}
	if r.StatusCode == StatusDelivered && r.EstimatedDelivery != nil {
		return ErrDeliveredHasETA
	}
	if len(r.Checkpoints) == 0 {
		return ErrNoCheckpoints
	}
	for i, cp := range r.Checkpoints {
		if cp.IsCurrent != (i == 0) {
			return ErrCurrentCheckpoint
		}
		if i > 0 && cp.Timestamp.After(r.Checkpoints[i-1].Timestamp) {
			return ErrCheckpointOrder
		}
	}
	return nil
}
