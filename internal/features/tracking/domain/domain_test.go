package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseStatusCode(t *testing.T) {
	tests := []struct {
		raw      string
		expected StatusCode
		ok       bool
	}{
		{"IT", StatusInTransit, true},
		{" ofd ", StatusOutForDelivery, true},
		{"dl", StatusDelivered, true},
		{"PS", StatusProcessing, true},
		{"EX", StatusException, true},
		{"NF", StatusNotFound, true},
		{"in transit", StatusInTransit, true},
		{"out-for-delivery", StatusOutForDelivery, true},
		{"Delivered", StatusDelivered, true},
		{"", "", false},
		{"ZZ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			code, ok := ParseStatusCode(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, code)
		})
	}
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "In Transit", StatusLabel(StatusInTransit, false))
	assert.Equal(t, "Out For Delivery", StatusLabel(StatusOutForDelivery, false))
	assert.Equal(t, "Delivered", StatusLabel(StatusDelivered, false))
	assert.Equal(t, "Processing", StatusLabel(StatusProcessing, false))
	assert.Equal(t, "Exception", StatusLabel(StatusException, false))
	assert.Equal(t, "Unknown Status", StatusLabel(StatusNotFound, false))
	assert.Equal(t, "Courier Not Found", StatusLabel(StatusNotFound, true))
	assert.Equal(t, "Unknown Status", StatusLabel("??", false))
}

func TestAllStatusCodes_AreValid(t *testing.T) {
	for _, code := range AllStatusCodes() {
		assert.True(t, code.Valid(), code)
	}
	assert.False(t, StatusCode("XX").Valid())
}

func TestNormalizeTrackingNumber(t *testing.T) {
	assert.Equal(t, TrackingNumber("1Z999AA10123456784"), NormalizeTrackingNumber("  1z999aa10123456784\n"))
}

func TestCarrierMatch_DisplayCarrier(t *testing.T) {
	assert.Equal(t, "UPS", CarrierMatch{CarrierName: "UPS"}.DisplayCarrier())
	assert.Equal(t, UnknownCarrier, CarrierMatch{}.DisplayCarrier())
}

func TestRejectedError(t *testing.T) {
	err := &RejectedError{Reason: ReasonTooShort, HoaxDetected: true}
	assert.Contains(t, err.Error(), "Tracking number too short")
}

func TestLocation_String(t *testing.T) {
	assert.Equal(t, "", Location{}.String())
	assert.True(t, Location{}.IsZero())
	assert.Equal(t, "Hub 4, Mumbai, India", Location{City: "Mumbai", Country: "India", Facility: "Hub 4"}.String())
}

func TestTrackingRecord_Validate(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	eta := "2026-03-04"

	valid := func() *TrackingRecord {
		return &TrackingRecord{
			StatusCode:        StatusInTransit,
			Confidence:        80,
			EstimatedDelivery: &eta,
			Checkpoints: []Checkpoint{
				{Timestamp: now, IsCurrent: true},
				{Timestamp: now.Add(-time.Hour)},
			},
		}
	}

	assert.NoError(t, valid().Validate())

	r := valid()
	r.StatusCode = StatusDelivered
	assert.ErrorIs(t, r.Validate(), ErrDeliveredHasETA)

	r = valid()
	r.Checkpoints[0], r.Checkpoints[1] = r.Checkpoints[1], r.Checkpoints[0]
	assert.Error(t, r.Validate())

	r = valid()
	r.Checkpoints[0].IsCurrent = false
	assert.ErrorIs(t, r.Validate(), ErrCurrentCheckpoint)

	r = valid()
	r.Checkpoints = nil
	assert.ErrorIs(t, r.Validate(), ErrNoCheckpoints)

	r = valid()
	r.StatusCode = "ZZ"
	assert.ErrorIs(t, r.Validate(), ErrInvalidStatusCode)

	r = valid()
	r.Confidence = 140
	assert.ErrorIs(t, r.Validate(), ErrConfidenceOutOfRange)
}
