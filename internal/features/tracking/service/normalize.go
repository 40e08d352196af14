package service

import (
	"sort"
	"strings"
	"time"

	"parcel-tracker/internal/features/tracking/domain"
	"parcel-tracker/internal/features/tracking/parser"
)

const (
	defaultConfidence = 80
	defaultETADays    = 3
	defaultFacility   = "Processing at facility"
	defaultInsight    = "Package is progressing through delivery network."
	dateLayout        = "2006-01-02"
)

// statusKeywords infers a code from free-text status, checked in order.
var statusKeywords = []struct {
	code     domain.StatusCode
	keywords []string
}{
	{domain.StatusNotFound, []string{"not found", "no record", "invalid tracking"}},
	{domain.StatusOutForDelivery, []string{"out for delivery", "with courier for delivery", "on vehicle"}},
	{domain.StatusException, []string{"exception", "undelivered", "not delivered", "attempted", "failed", "held", "returned", "delay", "damaged", "refused"}},
	{domain.StatusDelivered, []string{"delivered"}},
	{domain.StatusInTransit, []string{"transit", "departed", "arrived", "shipped", "dispatched", "hub", "in route"}},
	{domain.StatusProcessing, []string{"processing", "label", "created", "pending", "received", "booked", "picked up"}},
}

// Normalize fills every field of the canonical record from raw data, the classifier hint
// and documented defaults. The result always satisfies TrackingRecord.Validate.
func Normalize(raw *parser.RawRecord, hint domain.CarrierMatch, source string, now time.Time) *domain.TrackingRecord {
	if raw == nil {
		raw = &parser.RawRecord{}
	}

	code, reportedNotFound := resolveStatusCode(raw)
	label := domain.StatusLabel(code, reportedNotFound)

	location := raw.Location
	if location.IsZero() {
		location = domain.Location{Facility: defaultFacility}
	}

	record := &domain.TrackingRecord{
		TrackingNumber:       hint.TrackingNumber,
		Carrier:              firstNonEmpty(raw.Carrier, hint.CarrierName, domain.UnknownCarrier),
		Status:               label,
		StatusCode:           code,
		Location:             location,
		EstimatedDelivery:    estimatedDelivery(raw.EstimatedDelivery, code, now),
		Confidence:           confidence(raw.Confidence),
		AIInsight:            firstNonEmpty(raw.AIInsight, defaultInsight),
		ValidationConfidence: hint.Confidence,
		Source:               source,
	}

	record.Checkpoints = checkpoints(raw.Checkpoints, record, now)
	return record
}

// resolveStatusCode prefers an explicit code, then the not-found flag, then keywords in the status text.
// Without a code the record defaults to in transit; only a present but unrecognized code yields NF.
func resolveStatusCode(raw *parser.RawRecord) (domain.StatusCode, bool) {
	if code, ok := domain.ParseStatusCode(raw.StatusCode); ok {
		return code, raw.NotFound || code == domain.StatusNotFound
	}
	if raw.NotFound {
		return domain.StatusNotFound, true
	}
	if code, ok := domain.ParseStatusCode(raw.Status); ok {
		return code, code == domain.StatusNotFound
	}
	if code, ok := inferStatusCode(raw.Status); ok {
		return code, code == domain.StatusNotFound
	}
	if strings.TrimSpace(raw.StatusCode) == "" {
		return domain.StatusInTransit, false
	}
	return domain.StatusNotFound, false
}

func inferStatusCode(text string) (domain.StatusCode, bool) {
	text = strings.ToLower(text)
	if text == "" {
		return "", false
	}
	for _, rule := range statusKeywords {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				return rule.code, true
			}
		}
	}
	return "", false
}

func estimatedDelivery(raw string, code domain.StatusCode, now time.Time) *string {
	if code == domain.StatusDelivered {
		return nil
	}

	eta := now.AddDate(0, 0, defaultETADays).Format(dateLayout)
	if raw != "" {
		if t, err := parser.ParseTimestamp(raw); err == nil {
			eta = t.Format(dateLayout)
		}
	}
	return &eta
}

func confidence(raw *int) int {
	if raw == nil {
		return defaultConfidence
	}
	return min(max(*raw, 0), 100)
}

// checkpoints orders history newest first and flags index 0 as current.
// Entries without a usable timestamp are dropped; an empty history gets one synthesized entry.
func checkpoints(raw []parser.RawCheckpoint, record *domain.TrackingRecord, now time.Time) []domain.Checkpoint {
	out := make([]domain.Checkpoint, 0, len(raw))
	for _, cp := range raw {
		if cp.Timestamp.IsZero() {
			continue
		}
		out = append(out, domain.Checkpoint{
			Timestamp:   cp.Timestamp,
			Status:      firstNonEmpty(cp.Status, record.Status),
			Location:    firstNonEmpty(cp.Location, record.Location.String()),
			Description: cp.Description,
		})
	}

	if len(out) == 0 {
		out = append(out, domain.Checkpoint{
			Timestamp:   now,
			Status:      record.Status,
			Location:    record.Location.String(),
			Description: "Latest status reported by " + record.Source,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	out[0].IsCurrent = true
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
