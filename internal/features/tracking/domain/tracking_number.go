package domain

import (
	"fmt"
	"strings"
)

// TrackingNumber is a trimmed, uppercased user input. It lives for one request only.
type TrackingNumber string

// NormalizeTrackingNumber trims and uppercases raw user input.
func NormalizeTrackingNumber(raw string) TrackingNumber {
	return TrackingNumber(strings.ToUpper(strings.TrimSpace(raw)))
}

// String implements fmt.Stringer.
func (n TrackingNumber) String() string {
	return string(n)
}

// UnknownCarrier is rendered when neither the backend nor the classifier named a carrier.
const UnknownCarrier = "Unknown Carrier"

// CarrierMatch is the result of a successful classification.
type CarrierMatch struct {
	// TrackingNumber is the normalized input.
	TrackingNumber TrackingNumber `json:"trackingNumber"`
	// CarrierName is empty when only the generic pattern matched.
	CarrierName string `json:"carrierName,omitempty"`
	// Confidence is a fixed per-tier value in [0,100].
	Confidence int `json:"confidence"`
	// Matched is true when a carrier-specific pattern matched.
	Matched bool `json:"matched"`
}

// DisplayCarrier returns the carrier name or UnknownCarrier.
func (m CarrierMatch) DisplayCarrier() string {
	if m.CarrierName == "" {
		return UnknownCarrier
	}
	return m.CarrierName
}

// Rejection reasons surfaced to clients.
const (
	ReasonTooShort      = "Tracking number too short"
	ReasonInvalidFormat = "Invalid format"
	ReasonInvalidLayout = "Invalid tracking format"
)

// RejectedError is returned when input does not plausibly resemble a tracking number.
type RejectedError struct {
	// Reason is a machine-readable explanation.
	Reason string
	// HoaxDetected distinguishes "not a tracking number" from "not found".
	HoaxDetected bool
}

// Error implements error.
func (e *RejectedError) Error() string {
	return fmt.Sprintf("tracking number rejected: %s", e.Reason)
}
