package classifier

import "regexp"

// Confidence tiers. They are fixed per tier, not computed.
const (
	CarrierConfidence = 95
	GenericConfidence = 70
)

// PatternEntry associates a tracking-number shape with a carrier.
type PatternEntry struct {
	Regex       *regexp.Regexp
	Carrier     string
	Confidence  int
	Description string
}

// carrierPatterns is evaluated top to bottom and the first match wins.
// Several shapes overlap in digit length (DHL, Blue Dart, FedEx and numeric Amazon),
// so the order decides which carrier an ambiguous number is attributed to.
var carrierPatterns = []PatternEntry{
	{
		Regex:       regexp.MustCompile(`^1Z[A-Z0-9]{16}$`),
		Carrier:     "UPS",
		Confidence:  CarrierConfidence,
		Description: "1Z followed by 16 alphanumerics",
	},
	{
		Regex:       regexp.MustCompile(`^\d{12,14}$`),
		Carrier:     "FedEx",
		Confidence:  CarrierConfidence,
		Description: "12 to 14 digits",
	},
	{
		Regex:       regexp.MustCompile(`^\d{20,22}$`),
		Carrier:     "USPS",
		Confidence:  CarrierConfidence,
		Description: "20 to 22 digits",
	},
	{
		Regex:       regexp.MustCompile(`^\d{10,11}$`),
		Carrier:     "DHL",
		Confidence:  CarrierConfidence,
		Description: "10 or 11 digits",
	},
	{
		Regex:       regexp.MustCompile(`^\d{10,12}$`),
		Carrier:     "Blue Dart",
		Confidence:  CarrierConfidence,
		Description: "10 to 12 digits",
	},
	{
		Regex:       regexp.MustCompile(`^TBA\d{12}$|^\d{12,20}$`),
		Carrier:     "Amazon",
		Confidence:  CarrierConfidence,
		Description: "TBA plus 12 digits, or 12 to 20 digits",
	},
	{
		Regex:       regexp.MustCompile(`^[A-Z]{2}\d{9}CN$`),
		Carrier:     "China Post",
		Confidence:  CarrierConfidence,
		Description: "UPU S10 item ending in CN",
	},
	{
		Regex:       regexp.MustCompile(`^[A-Z]{2}\d{9}[A-Z]{2}$`),
		Carrier:     "India Post",
		Confidence:  CarrierConfidence,
		Description: "UPU S10 item (2 letters, 9 digits, 2 letters)",
	},
}

var (
	hasAlphanumeric = regexp.MustCompile(`[A-Z0-9]`)
	genericPattern  = regexp.MustCompile(`^[A-Z0-9]{8,}$`)
)

const genericDescription = "8 or more alphanumerics, carrier unknown"

// Describe returns the shape rule that attributes a number to carrier.
// An empty carrier describes the generic pattern; an unknown one yields "".
func Describe(carrier string) string {
	if carrier == "" {
		return genericDescription
	}
	for _, p := range carrierPatterns {
		if p.Carrier == carrier {
			return p.Description
		}
	}
	return ""
}
