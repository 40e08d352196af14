package domain

import "strings"

// StatusCode is the closed set of shipment states every record is reduced to.
type StatusCode string

const (
	// StatusInTransit indicates the shipment is moving through the network.
	StatusInTransit StatusCode = "IT"
	// StatusOutForDelivery indicates the shipment is on the final delivery vehicle.
	StatusOutForDelivery StatusCode = "OFD"
	// StatusDelivered indicates the shipment reached the recipient.
	StatusDelivered StatusCode = "DL"
	// StatusProcessing indicates the carrier has the label but the parcel has not moved yet.
	StatusProcessing StatusCode = "PS"
	// StatusException indicates a delivery problem (failed attempt, held, returned).
	StatusException StatusCode = "EX"
	// StatusNotFound indicates no usable status could be determined.
	StatusNotFound StatusCode = "NF"
)

// Display labels rendered for each status code.
const (
	LabelInTransit       = "In Transit"
	LabelOutForDelivery  = "Out For Delivery"
	LabelDelivered       = "Delivered"
	LabelProcessing      = "Processing"
	LabelException       = "Exception"
	LabelUnknownStatus   = "Unknown Status"
	LabelCourierNotFound = "Courier Not Found"
)

var statusLabels = map[StatusCode]string{
	StatusInTransit:      LabelInTransit,
	StatusOutForDelivery: LabelOutForDelivery,
	StatusDelivered:      LabelDelivered,
	StatusProcessing:     LabelProcessing,
	StatusException:      LabelException,
}

// Long-form spellings upstreams have been seen to use instead of the short codes.
var statusAliases = map[string]StatusCode{
	"IN_TRANSIT":       StatusInTransit,
	"INTRANSIT":        StatusInTransit,
	"OUT_FOR_DELIVERY": StatusOutForDelivery,
	"DELIVERED":        StatusDelivered,
	"PROCESSING":       StatusProcessing,
	"EXCEPTION":        StatusException,
	"NOT_FOUND":        StatusNotFound,
}

// AllStatusCodes returns every code in display order.
func AllStatusCodes() []StatusCode {
	return []StatusCode{
		StatusInTransit,
		StatusOutForDelivery,
		StatusDelivered,
		StatusProcessing,
		StatusException,
		StatusNotFound,
	}
}

// ParseStatusCode maps a raw upstream code onto the closed set.
// The second return is false when the value is not recognized.
func ParseStatusCode(raw string) (StatusCode, bool) {
	key := strings.ToUpper(strings.TrimSpace(raw))
	key = strings.NewReplacer(" ", "_", "-", "_").Replace(key)
	if key == "" {
		return "", false
	}

	code := StatusCode(key)
	if code.Valid() {
		return code, true
	}
	if alias, ok := statusAliases[key]; ok {
		return alias, true
	}
	return "", false
}

// Valid reports whether c belongs to the closed set.
func (c StatusCode) Valid() bool {
	switch c {
	case StatusInTransit, StatusOutForDelivery, StatusDelivered,
		StatusProcessing, StatusException, StatusNotFound:
		return true
	}
	return false
}

// StatusLabel returns the display label for a code.
// NF renders as "Courier Not Found" only when the upstream explicitly reported it.
func StatusLabel(code StatusCode, reportedNotFound bool) string {
	if label, ok := statusLabels[code]; ok {
		return label
	}
	if code == StatusNotFound && reportedNotFound {
		return LabelCourierNotFound
	}
	return LabelUnknownStatus
}
