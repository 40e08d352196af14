package adapter

import "fmt"

const trackingSystemPrompt = "You are a shipment tracking expert. Search the web for REAL tracking data " +
	"from carrier websites. Return ONLY valid JSON."

const trackingSchema = `{
  "carrier": "actual carrier name",
  "status": "current status",
  "statusCode": "one of IT, OFD, DL, PS, EX, NF",
  "location": "city, state, country",
  "estimatedDelivery": "YYYY-MM-DD",
  "confidence": 90,
  "checkpoints": [{"date": "ISO timestamp", "status": "status", "location": "location", "description": "details"}],
  "aiInsight": "brief delivery analysis"
}`

// buildTrackingPrompt renders the user prompt shared by every text backend.
func buildTrackingPrompt(trackingNumber, carrierHint string) string {
	subject := trackingNumber
	if carrierHint != "" {
		subject = fmt.Sprintf("%s (%s)", trackingNumber, carrierHint)
	}
	return fmt.Sprintf("Track shipment %s. Search carrier websites for real data.\n\nReturn ONLY this JSON:\n%s",
		subject, trackingSchema)
}
