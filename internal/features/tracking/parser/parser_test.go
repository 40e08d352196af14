package parser

import (
	"testing"
	"time"

	"parcel-tracker/internal/features/tracking/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
		err      error
	}{
		{"Bare object", `{"a":1}`, `{"a":1}`, nil},
		{"Prose wrapped", `Sure! Here you go: {"a":1} Hope this helps.`, `{"a":1}`, nil},
		{"Nested braces", "x {\"a\":{\"b\":2}} y", `{"a":{"b":2}}`, nil},
		{"No braces", "I could not find that shipment.", "", ErrNoJSONObject},
		{"Reversed braces", "} nothing {", "", ErrNoJSONObject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSON(tt.text)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParse_MalformedFixtures(t *testing.T) {
	fixtures := map[string]string{
		"code fence": "```json\n{\"carrier\": \"UPS\", \"status\": \"In Transit\"}\n```",
		"prose before and after": "Based on my search of the UPS website, here is the data:\n" +
			"{\"carrier\": \"UPS\", \"status\": \"In Transit\"}\n" +
			"Note: this information may be delayed by a few hours.",
		"trailing commas": "{\"carrier\": \"UPS\", \"status\": \"In Transit\", \"checkpoints\": [],}",
		"citation markers after": "{\"carrier\": \"UPS\", \"status\": \"In Transit\"} [1][2]",
	}

	for name, text := range fixtures {
		t.Run(name, func(t *testing.T) {
			record, err := Parse(text)
			require.NoError(t, err)
			assert.Equal(t, "UPS", record.Carrier)
			assert.Equal(t, "In Transit", record.Status)
		})
	}
}

func TestParse_Failures(t *testing.T) {
	tests := []struct {
		name string
		text string
		err  error
	}{
		{"Plain prose", "I'm sorry, I cannot access real-time tracking data.", ErrNoJSONObject},
		{"Broken JSON", "{\"carrier\": \"UPS\", \"status\": }", ErrMalformedJSON},
		{"Two objects", "{\"carrier\": \"UPS\"} and {\"status\": \"x\"}", ErrMalformedJSON},
		{"No signal", "{\"location\": \"Memphis, TN, US\", \"confidence\": 90}", ErrMissingSignal},
		{"Empty object", "{}", ErrMissingSignal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, err := Parse(tt.text)
			assert.Nil(t, record)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestParse_FullRecord(t *testing.T) {
	text := `{
		"carrier": "FedEx",
		"status": "Out for delivery",
		"statusCode": "OFD",
		"location": "Memphis, TN, USA",
		"estimatedDelivery": "2026-03-04",
		"confidence": "92%",
		"checkpoints": [
			{"date": "2026-03-01T08:00:00Z", "status": "Picked up", "location": "Dallas, TX, USA", "description": "Shipment picked up"},
			{"timestamp": "2026-03-02 10:30:00", "status": "Arrived", "location": {"city": "Memphis", "state": "TN", "facility": "FedEx Hub"}, "details": "Arrived at hub"}
		],
		"aiInsight": "On schedule."
	}`

	record, err := Parse(text)
	require.NoError(t, err)

	expected := &RawRecord{
		Carrier:           "FedEx",
		Status:            "Out for delivery",
		StatusCode:        "OFD",
		Location:          domain.Location{City: "Memphis", State: "TN", Country: "USA"},
		EstimatedDelivery: "2026-03-04",
		Confidence:        intPtr(92),
		AIInsight:         "On schedule.",
		Checkpoints: []RawCheckpoint{
			{
				Timestamp:   time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC),
				Status:      "Picked up",
				Location:    "Dallas, TX, USA",
				Description: "Shipment picked up",
			},
			{
				Timestamp:   time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC),
				Status:      "Arrived",
				Location:    "FedEx Hub, Memphis, TN",
				Description: "Arrived at hub",
			},
		},
	}

	if diff := cmp.Diff(expected, record); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_FieldAliases(t *testing.T) {
	text := `{"data": {"Courier": "DHL", "current_status": "Delivered", "eta": "2026-01-01",
		"events": [{"time": 1767225600, "activity": "Delivered"}], "confidence_score": 0.8}}`

	record, err := Parse(text)
	require.NoError(t, err)

	assert.Equal(t, "DHL", record.Carrier)
	assert.Equal(t, "Delivered", record.Status)
	assert.Equal(t, "2026-01-01", record.EstimatedDelivery)
	require.NotNil(t, record.Confidence)
	assert.Equal(t, 80, *record.Confidence)
	require.Len(t, record.Checkpoints, 1)
	assert.Equal(t, time.Unix(1767225600, 0).UTC(), record.Checkpoints[0].Timestamp)
	assert.Equal(t, "Delivered", record.Checkpoints[0].Description)
}

func TestParse_NotFound(t *testing.T) {
	record, err := Parse(`{"carrier": "USPS", "status": "Tracking number not found"}`)
	require.NoError(t, err)
	assert.True(t, record.NotFound)

	record, err = Parse(`{"statusCode": "NF", "notFound": true}`)
	require.NoError(t, err)
	assert.True(t, record.NotFound)
}

func TestParse_UnparseableValuesAreDropped(t *testing.T) {
	record, err := Parse(`{"carrier": "UPS", "confidence": "high", "checkpoints": ["bad", {"date": "yesterday", "status": "x"}]}`)
	require.NoError(t, err)

	assert.Nil(t, record.Confidence)
	require.Len(t, record.Checkpoints, 1)
	assert.True(t, record.Checkpoints[0].Timestamp.IsZero())
	assert.Equal(t, "x", record.Checkpoints[0].Status)
}

func TestParseLocationText(t *testing.T) {
	assert.Equal(t, domain.Location{}, parseLocationText(" , "))
	assert.Equal(t, domain.Location{City: "Mumbai"}, parseLocationText("Mumbai"))
	assert.Equal(t, domain.Location{City: "Mumbai", Country: "India"}, parseLocationText("Mumbai, India"))
	assert.Equal(t,
		domain.Location{Facility: "Gateway", City: "Louisville", State: "KY", Country: "US"},
		parseLocationText("Gateway, Louisville, KY, US"),
	)
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		in       string
		expected time.Time
	}{
		{"2026-03-01T08:00:00Z", time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)},
		{"2026-03-01T08:00:00.123", time.Date(2026, 3, 1, 8, 0, 0, 123000000, time.UTC)},
		{"2026-03-01 08:00", time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)},
		{"2026-03-01", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"Mar 1, 2026 8:00 AM", time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)},
		{"1767225600000", time.UnixMilli(1767225600000).UTC()},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTimestamp(tt.in)
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(got), "got %s", got)
		})
	}

	_, err := ParseTimestamp("")
	assert.Error(t, err)
	_, err = ParseTimestamp("soon")
	assert.Error(t, err)
}
