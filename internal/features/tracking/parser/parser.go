// Package parser turns untrusted, semi-structured backend text into a RawRecord.
// Upstream text generators wrap JSON in prose or markdown fences and name the
// same fields differently, so every lookup here is best-effort.
package parser

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"parcel-tracker/internal/features/tracking/domain"
)

var (
	// ErrNoJSONObject is returned when the text holds no {...} span.
	ErrNoJSONObject = errors.New("no JSON object found in response")
	// ErrMalformedJSON is returned when the {...} span does not decode.
	ErrMalformedJSON = errors.New("malformed JSON in response")
	// ErrMissingSignal is returned when neither a carrier nor a status is present.
	ErrMissingSignal = errors.New("response has neither carrier nor status")
)

// RawRecord holds the fields recovered from one backend response.
// Zero values mean "not supplied"; normalization fills defaults.
type RawRecord struct {
	Carrier           string
	Status            string
	StatusCode        string
	NotFound          bool
	Location          domain.Location
	EstimatedDelivery string
	// Confidence is nil when absent or unparseable.
	Confidence  *int
	Checkpoints []RawCheckpoint
	AIInsight   string
}

// HasSignal reports whether the record carries the minimum usable information.
func (r *RawRecord) HasSignal() bool {
	return r.Carrier != "" || r.Status != "" || r.StatusCode != ""
}

// RawCheckpoint is one history entry as supplied by a backend.
type RawCheckpoint struct {
	// Timestamp is zero when the backend gave none or it could not be parsed.
	Timestamp   time.Time
	Status      string
	Location    string
	Description string
}

var trailingComma = regexp.MustCompile(`,\s*([}\]])`)

// ExtractJSON returns the span from the first '{' to the last '}' in text.
func ExtractJSON(text string) (string, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return "", ErrNoJSONObject
	}
	return text[start : end+1], nil
}

// Parse extracts and decodes a tracking object from free-form text.
// It fails with ErrMissingSignal when the object carries neither carrier nor status.
func Parse(text string) (*RawRecord, error) {
	fields, err := decodeObject(text)
	if err != nil {
		return nil, err
	}

	fields = unwrap(fields)
	record := fromFields(fields)
	if !record.HasSignal() {
		return nil, ErrMissingSignal
	}
	return record, nil
}

func decodeObject(text string) (map[string]interface{}, error) {
	span, err := ExtractJSON(text)
	if err != nil {
		return nil, err
	}

	var fields map[string]interface{}
	if err := json.Unmarshal([]byte(span), &fields); err == nil {
		return fields, nil
	}

	// Models frequently leave trailing commas behind.
	repaired := trailingComma.ReplaceAllString(span, "$1")
	if err := json.Unmarshal([]byte(repaired), &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}
	return fields, nil
}

// unwrap descends into a single envelope key such as {"data": {...}}.
func unwrap(fields map[string]interface{}) map[string]interface{} {
	if hasAny(fields, carrierKeys...) || hasAny(fields, statusKeys...) || hasAny(fields, statusCodeKeys...) {
		return fields
	}
	for _, key := range []string{"data", "tracking", "result", "shipment"} {
		if inner, ok := lookup(fields, key).(map[string]interface{}); ok {
			return inner
		}
	}
	return fields
}

var (
	carrierKeys     = []string{"carrier", "carrierName", "carrier_name", "courier"}
	statusKeys      = []string{"status", "currentStatus", "current_status", "state"}
	statusCodeKeys  = []string{"statusCode", "status_code"}
	notFoundKeys    = []string{"notFound", "not_found"}
	locationKeys    = []string{"location", "currentLocation", "current_location", "lastLocation"}
	etaKeys         = []string{"estimatedDelivery", "estimated_delivery", "eta", "expectedDelivery", "deliveryDate"}
	confidenceKeys  = []string{"confidence", "confidenceScore", "confidence_score"}
	checkpointKeys  = []string{"checkpoints", "events", "history", "trackingHistory", "tracking_history"}
	insightKeys     = []string{"aiInsight", "ai_insight", "insight", "summary"}
	timestampKeys   = []string{"timestamp", "date", "time", "datetime", "dateTime"}
	descriptionKeys = []string{"description", "details", "message", "activity"}
)

func fromFields(fields map[string]interface{}) *RawRecord {
	record := &RawRecord{
		Carrier:           stringField(fields, carrierKeys...),
		Status:            stringField(fields, statusKeys...),
		StatusCode:        stringField(fields, statusCodeKeys...),
		EstimatedDelivery: stringField(fields, etaKeys...),
		AIInsight:         stringField(fields, insightKeys...),
		Confidence:        intField(fields, confidenceKeys...),
		Location:          locationField(first(fields, locationKeys...)),
	}

	if v, ok := first(fields, notFoundKeys...).(bool); ok {
		record.NotFound = v
	}
	if strings.Contains(strings.ToLower(record.Status), "not found") {
		record.NotFound = true
	}

	if items, ok := first(fields, checkpointKeys...).([]interface{}); ok {
		for _, item := range items {
			obj, ok := item.(map[string]interface{})
			if !ok {
				continue
			}
			loc := locationField(first(obj, locationKeys...))
			record.Checkpoints = append(record.Checkpoints, RawCheckpoint{
				Timestamp:   timeField(first(obj, timestampKeys...)),
				Status:      stringField(obj, statusKeys...),
				Location:    loc.String(),
				Description: stringField(obj, descriptionKeys...),
			})
		}
	}

	return record
}

// lookup finds key case-insensitively.
func lookup(fields map[string]interface{}, key string) interface{} {
	if v, ok := fields[key]; ok {
		return v
	}
	for k, v := range fields {
		if strings.EqualFold(k, key) {
			return v
		}
	}
	return nil
}

func first(fields map[string]interface{}, keys ...string) interface{} {
	for _, key := range keys {
		if v := lookup(fields, key); v != nil {
			return v
		}
	}
	return nil
}

func hasAny(fields map[string]interface{}, keys ...string) bool {
	return first(fields, keys...) != nil
}

func stringField(fields map[string]interface{}, keys ...string) string {
	switch v := first(fields, keys...).(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return ""
}

var leadingNumber = regexp.MustCompile(`^-?\d+(\.\d+)?`)

func intField(fields map[string]interface{}, keys ...string) *int {
	var f float64
	switch v := first(fields, keys...).(type) {
	case float64:
		f = v
	case string:
		m := leadingNumber.FindString(strings.TrimSpace(v))
		if m == "" {
			return nil
		}
		parsed, err := strconv.ParseFloat(m, 64)
		if err != nil {
			return nil
		}
		f = parsed
	default:
		return nil
	}

	// Some models answer on a 0..1 scale.
	if f > 0 && f <= 1 {
		f *= 100
	}
	n := int(f + 0.5)
	return &n
}

// locationField accepts either "City, State, Country" text or an object.
func locationField(v interface{}) domain.Location {
	switch loc := v.(type) {
	case string:
		return parseLocationText(loc)
	case map[string]interface{}:
		return domain.Location{
			City:     stringField(loc, "city", "town"),
			State:    stringField(loc, "state", "region", "province"),
			Country:  stringField(loc, "country", "countryCode", "country_code"),
			Facility: stringField(loc, "facility", "hub", "name"),
		}
	}
	return domain.Location{}
}

func parseLocationText(text string) domain.Location {
	var parts []string
	for _, p := range strings.Split(text, ",") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}

	switch len(parts) {
	case 0:
		return domain.Location{}
	case 1:
		return domain.Location{City: parts[0]}
	case 2:
		return domain.Location{City: parts[0], Country: parts[1]}
	case 3:
		return domain.Location{City: parts[0], State: parts[1], Country: parts[2]}
	default:
		n := len(parts)
		return domain.Location{
			Facility: strings.Join(parts[:n-3], ", "),
			City:     parts[n-3],
			State:    parts[n-2],
			Country:  parts[n-1],
		}
	}
}

func timeField(v interface{}) time.Time {
	switch t := v.(type) {
	case string:
		parsed, _ := ParseTimestamp(t)
		return parsed
	case float64:
		return fromEpoch(int64(t))
	}
	return time.Time{}
}

func fromEpoch(n int64) time.Time {
	if n <= 0 {
		return time.Time{}
	}
	// Values past 1e12 are milliseconds.
	if n > 1e12 {
		return time.UnixMilli(n).UTC()
	}
	return time.Unix(n, 0).UTC()
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"Jan 2, 2006 3:04 PM",
	"January 2, 2006 3:04 PM",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006 15:04",
	"2 January 2006",
}

// ParseTimestamp parses the timestamp spellings seen from backends.
// Layouts without a zone are read as UTC.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("empty timestamp")
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		if t := fromEpoch(n); !t.IsZero() {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
